package batch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-scene-generator/pkg/geometry"
	"github.com/df07/go-scene-generator/pkg/scene"
)

func testConfig(seeds []uint64, workers int) Config {
	return Config{
		Placement:  scene.DefaultPlacementConfig(),
		Camera:     geometry.DefaultCameraConfig(),
		Seeds:      seeds,
		NumWorkers: workers,
	}
}

func TestSeeds(t *testing.T) {
	assert.Equal(t, []uint64{10, 11, 12}, Seeds(10, 3))
	assert.Empty(t, Seeds(10, 0))
}

func TestGenerate_OrderedAndValid(t *testing.T) {
	seeds := Seeds(100, 12)
	results, err := Generate(context.Background(), testConfig(seeds, 4), nil)
	require.NoError(t, err)
	require.Len(t, results, len(seeds))

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, seeds[i], r.Seed)
		require.NoError(t, r.Err)
		assert.Len(t, r.Scene.Spheres, 53)
		assert.NoError(t, r.Scene.Validate())
	}
}

func TestGenerate_MatchesSequentialGeneration(t *testing.T) {
	seeds := Seeds(7, 6)
	results, err := Generate(context.Background(), testConfig(seeds, 3), nil)
	require.NoError(t, err)

	for _, r := range results {
		expected, _, err := scene.NewSeededPopulator(scene.DefaultPlacementConfig(), r.Seed, nil).
			Populate(geometry.DefaultCameraConfig())
		require.NoError(t, err)
		assert.Equal(t, expected.Spheres, r.Scene.Spheres, "seed %d", r.Seed)
	}
}

func TestGenerate_WorkerCountDoesNotChangeOutput(t *testing.T) {
	seeds := Seeds(1, 8)
	single, err := Generate(context.Background(), testConfig(seeds, 1), nil)
	require.NoError(t, err)
	parallel, err := Generate(context.Background(), testConfig(seeds, 0), nil)
	require.NoError(t, err)

	require.Len(t, parallel, len(single))
	for i := range single {
		assert.Equal(t, single[i].Scene.Spheres, parallel[i].Scene.Spheres)
	}
}

func TestGenerate_PlacementFailuresAreReported(t *testing.T) {
	cfg := testConfig(Seeds(1, 3), 2)
	cfg.Placement.RegionMin = 100
	cfg.Placement.RegionMax = 100.5
	cfg.Placement.Spheres = 2
	cfg.Placement.MaxAttempts = 10

	results, err := Generate(context.Background(), cfg, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, errors.Is(r.Err, scene.ErrPlacementExhausted))
	}

	summary := Summarize(results)
	assert.Equal(t, 0, summary.Scenes)
	assert.Equal(t, 3, summary.Failed)
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Generate(ctx, testConfig(Seeds(1, 5), 2), nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)
}

func TestWorkerPool_DefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(scene.DefaultPlacementConfig(), geometry.DefaultCameraConfig(), nil, 1, 0)
	assert.Greater(t, pool.GetNumWorkers(), 0)

	pool.Start()
	pool.SubmitTask(Task{Index: 0, Seed: 3})
	pool.Stop()

	result, ok := pool.GetResult()
	require.True(t, ok)
	assert.Equal(t, uint64(3), result.Seed)
	_, ok = pool.GetResult()
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Stats: scene.Stats{Placed: 4, Candidates: 8, Rejections: 4}},
		{Stats: scene.Stats{Placed: 4, Candidates: 4, Rejections: 0}},
		{Err: scene.ErrPlacementExhausted},
	}

	summary := Summarize(results)
	assert.Equal(t, 2, summary.Scenes)
	assert.Equal(t, 1, summary.Failed)
	assert.InDelta(t, 2.0, summary.MeanRejections, 1e-12)
	assert.InDelta(t, 2.8284271247461903, summary.StdDevRejections, 1e-9)
	assert.InDelta(t, 0.75, summary.MeanAcceptanceRate, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
