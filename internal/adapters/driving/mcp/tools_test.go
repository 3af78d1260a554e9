package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

func TestServer_handleSequences(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sequences", func(t *testing.T) {
		mockQuery := &mockQueryService{
			sequences: [][]string{
				{"011 banana", "025 mug"},
				{"013 apple"},
			},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleSequences(ctx, nil, SequencesInput{})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, []string{"011 banana", "025 mug"}, output.Sequences[0])
	})

	t.Run("returns error on query failure", func(t *testing.T) {
		mockQuery := &mockQueryService{err: errors.New("store unavailable")}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, _, err = server.handleSequences(ctx, nil, SequencesInput{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}

func TestServer_handleGraspPoses(t *testing.T) {
	ctx := context.Background()

	t.Run("returns poses grouped by object", func(t *testing.T) {
		mockQuery := &mockQueryService{
			poses: map[string][]domain.Pose{
				"011 banana": {
					{Translation: [3]float64{0.1, 0.2, 0.3}},
					{Translation: [3]float64{0.4, 0.5, 0.6}},
				},
			},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleGraspPoses(ctx, nil, GraspPosesInput{Kind: "pick"})
		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		require.Len(t, output.Poses["011 banana"], 2)
		assert.Equal(t, [3]float64{0.1, 0.2, 0.3}, output.Poses["011 banana"][0].Translation)
	})

	t.Run("rejects invalid kind", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		_, _, err = server.handleGraspPoses(ctx, nil, GraspPosesInput{Kind: "throw"})
		assert.ErrorIs(t, err, domain.ErrInvalidGraspKind)
	})
}

func TestServer_handleDurations(t *testing.T) {
	ctx := context.Background()

	t.Run("includes summary statistics", func(t *testing.T) {
		ports := &Ports{
			Query: &mockQueryService{durations: []int64{1000, 2000}},
			Stats: &mockStatsService{durations: &domain.DurationStats{
				Count: 2, Mean: 1500, Median: 1000,
			}},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleDurations(ctx, nil, struct{}{})
		require.NoError(t, err)
		assert.Equal(t, []int64{1000, 2000}, output.DurationsMS)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, 1500.0, output.Mean)
		assert.Equal(t, 1000.0, output.Median)
	})

	t.Run("works without a stats service", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{durations: []int64{500}}})
		require.NoError(t, err)

		_, output, err := server.handleDurations(ctx, nil, struct{}{})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Zero(t, output.Mean)
	})

	t.Run("tolerates an empty dataset summary", func(t *testing.T) {
		ports := &Ports{
			Query: &mockQueryService{},
			Stats: &mockStatsService{err: domain.ErrEmptyDataset},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, output, err := server.handleDurations(ctx, nil, struct{}{})
		require.NoError(t, err)
		assert.Zero(t, output.Count)
	})
}
