package batch

import (
	"runtime"
	"sync"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/scene"
)

// Task represents one scene to generate
type Task struct {
	Index int // Position in the batch, for deterministic ordering
	Seed  uint64
}

// Result contains the outcome of one task. Scene may be partial when Err is a *scene.PlacementError.
type Result struct {
	Index int
	Seed  uint64
	Scene *scene.Scene
	Stats scene.Stats
	Err   error
}

// WorkerPool manages parallel scene generation
type WorkerPool struct {
	taskQueue   chan Task
	resultQueue chan Result
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker generates scenes for the tasks it receives. Each task gets its own seeded populator.
type Worker struct {
	ID          int
	placement   scene.PlacementConfig
	camera      geometry.CameraConfig
	logger      core.Logger
	taskQueue   chan Task
	resultQueue chan Result
}

// NewWorkerPool creates a worker pool with the specified number of workers and room for maxTasks tasks
func NewWorkerPool(placement scene.PlacementConfig, camera geometry.CameraConfig, logger core.Logger, maxTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		taskQueue:   make(chan Task, maxTasks),
		resultQueue: make(chan Result, maxTasks),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			placement:   placement,
			camera:      camera,
			logger:      logger,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop waits for queued tasks to finish and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a task to the worker pool
func (wp *WorkerPool) SubmitTask(task Task) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed result
func (wp *WorkerPool) GetResult() (Result, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		s, stats, err := scene.NewSeededPopulator(w.placement, task.Seed, w.logger).Populate(w.camera)
		w.resultQueue <- Result{
			Index: task.Index,
			Seed:  task.Seed,
			Scene: s,
			Stats: stats,
			Err:   err,
		}
	}
}
