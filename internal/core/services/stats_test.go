package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/storage/memory"
	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

func newTestStats(store *memory.SceneStore, runs *memory.ImportStateStore) *Stats {
	if runs == nil {
		runs = memory.NewImportStateStore()
	}
	return NewStats(store, runs, NewQuery(store))
}

func TestStats_Durations(t *testing.T) {
	ctx := context.Background()

	t.Run("summary of known sample", func(t *testing.T) {
		store := memory.NewSceneStore()
		for i, d := range []int64{100, 200, 300, 400} {
			seedScene(t, store, 1, i+1, timedObject("011 banana", d))
		}
		stats := newTestStats(store, nil)

		got, err := stats.Durations(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, got.Count)
		assert.InDelta(t, 250, got.Mean, 1e-9)
		assert.InDelta(t, 129.099, got.StdDev, 0.001)
		assert.Equal(t, 100.0, got.Min)
		assert.Equal(t, 400.0, got.Max)
		assert.Equal(t, 200.0, got.Median)
		assert.Equal(t, 400.0, got.P90)
	})

	t.Run("single scene has zero stddev", func(t *testing.T) {
		store := memory.NewSceneStore()
		seedScene(t, store, 1, 1, timedObject("011 banana", 5000))
		stats := newTestStats(store, nil)

		got, err := stats.Durations(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Count)
		assert.Zero(t, got.StdDev)
		assert.Equal(t, 5000.0, got.Mean)
	})

	t.Run("empty dataset", func(t *testing.T) {
		stats := newTestStats(memory.NewSceneStore(), nil)
		_, err := stats.Durations(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})
}

func TestStats_Trajectories(t *testing.T) {
	ctx := context.Background()

	t.Run("path length and sample interval", func(t *testing.T) {
		store := memory.NewSceneStore()
		seedScene(t, store, 1, 1, domain.Object{
			Name: "011 banana",
			Trajectory: []domain.TimedPose{
				{TimestampMS: 0},
				{Pose: domain.Pose{Translation: [3]float64{1, 0, 0}}, TimestampMS: 50},
				{Pose: domain.Pose{Translation: [3]float64{1, 1, 0}}, TimestampMS: 100},
			},
		}, domain.Object{Name: "025 mug"}) // no trajectory, not counted
		stats := newTestStats(store, nil)

		got, err := stats.Trajectories(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, got.Objects)
		assert.Equal(t, 3, got.Samples)
		assert.InDelta(t, 2.0, got.TotalPathLength, 1e-9)
		assert.InDelta(t, 2.0, got.MeanPathLength, 1e-9)
		assert.InDelta(t, domain.NominalSampleIntervalMS, got.MeanSampleInterval, 1e-9)
	})

	t.Run("no trajectories at all", func(t *testing.T) {
		store := memory.NewSceneStore()
		seedScene(t, store, 1, 1, domain.Object{Name: "025 mug"})
		stats := newTestStats(store, nil)

		_, err := stats.Trajectories(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})
}

func TestStats_Build(t *testing.T) {
	ctx := context.Background()

	t.Run("report data", func(t *testing.T) {
		store := memory.NewSceneStore()
		seedScene(t, store, 1, 1, timedObject("011 banana", 2000), domain.Object{Name: "025 mug"})
		seedScene(t, store, 1, 2, timedObject("013 apple", 4000))

		runs := memory.NewImportStateStore()
		require.NoError(t, runs.SaveRun(ctx, domain.ImportRun{ID: "run-1", Root: "/data/boxed"}))
		stats := newTestStats(store, runs)

		data, err := stats.Build(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/data/boxed", data.Root)
		assert.False(t, data.GeneratedAt.IsZero())
		assert.Equal(t, []int{2, 1}, data.SequenceLengths)
		assert.Equal(t, []float64{2000, 4000}, data.DurationsMS)
		assert.Equal(t, 2, data.Durations.Count)
		assert.InDelta(t, 3000, data.Durations.Mean, 1e-9)
		assert.Len(t, data.Coverage, len(domain.AllObjects))
	})

	t.Run("empty dataset", func(t *testing.T) {
		stats := newTestStats(memory.NewSceneStore(), nil)
		_, err := stats.Build(ctx)
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})
}
