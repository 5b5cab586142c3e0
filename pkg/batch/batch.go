// Package batch generates many independently seeded scenes in parallel.
package batch

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-scene-generator/pkg/core"
	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/scene"
)

// Config controls a batch run
type Config struct {
	Placement  scene.PlacementConfig
	Camera     geometry.CameraConfig
	Seeds      []uint64
	NumWorkers int // 0 means runtime.NumCPU()
}

// Summary aggregates placement statistics over the successful scenes of a batch
type Summary struct {
	Scenes             int
	Failed             int
	MeanRejections     float64
	StdDevRejections   float64
	MeanAcceptanceRate float64 // Placed / Candidates
}

// Seeds returns count consecutive seeds starting at base
func Seeds(base uint64, count int) []uint64 {
	seeds := make([]uint64, count)
	for i := range seeds {
		seeds[i] = base + uint64(i)
	}
	return seeds
}

// Generate populates one scene per seed. Results are ordered like cfg.Seeds; a
// cancelled context stops submitting new seeds and returns ctx.Err() with the
// results completed so far.
func Generate(ctx context.Context, cfg Config, logger core.Logger) ([]Result, error) {
	pool := NewWorkerPool(cfg.Placement, cfg.Camera, logger, len(cfg.Seeds), cfg.NumWorkers)
	pool.Start()

	var ctxErr error
	for i, seed := range cfg.Seeds {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		pool.SubmitTask(Task{Index: i, Seed: seed})
	}
	pool.Stop()

	results := make([]Result, 0, len(cfg.Seeds))
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	return results, ctxErr
}

// Summarize computes placement statistics across results
func Summarize(results []Result) Summary {
	var summary Summary
	var rejections, acceptance []float64
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Scenes++
		rejections = append(rejections, float64(r.Stats.Rejections))
		if r.Stats.Candidates > 0 {
			acceptance = append(acceptance, float64(r.Stats.Placed)/float64(r.Stats.Candidates))
		}
	}

	if len(rejections) > 0 {
		summary.MeanRejections = stat.Mean(rejections, nil)
	}
	if len(rejections) > 1 {
		summary.StdDevRejections = stat.StdDev(rejections, nil)
	}
	if len(acceptance) > 0 {
		summary.MeanAcceptanceRate = stat.Mean(acceptance, nil)
	}
	return summary
}
