package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
)

// Ensure Stats implements the interfaces.
var (
	_ driving.StatsService  = (*Stats)(nil)
	_ driving.ReportService = (*Stats)(nil)
)

// Stats computes summary statistics over the imported dataset.
type Stats struct {
	scenes driven.SceneStore
	runs   driven.ImportStateStore
	query  driving.QueryService
}

// NewStats creates a new stats service.
func NewStats(scenes driven.SceneStore, runs driven.ImportStateStore, query driving.QueryService) *Stats {
	return &Stats{scenes: scenes, runs: runs, query: query}
}

// Durations summarises scene durations.
func (s *Stats) Durations(ctx context.Context) (*domain.DurationStats, error) {
	durations, err := s.query.SceneDurations(ctx)
	if err != nil {
		return nil, err
	}
	if len(durations) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	ms := make([]float64, len(durations))
	for i, d := range durations {
		ms[i] = float64(d)
	}
	return summarise(ms), nil
}

// Trajectories summarises object motion across the dataset.
func (s *Stats) Trajectories(ctx context.Context) (*domain.TrajectoryStats, error) {
	scenes, err := s.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	out := &domain.TrajectoryStats{}
	var intervalSumMS float64
	var intervals int
	for i := range scenes {
		for j := range scenes[i].Objects {
			traj := scenes[i].Objects[j].Trajectory
			if len(traj) == 0 {
				continue
			}
			out.Objects++
			out.Samples += len(traj)
			out.TotalPathLength += domain.PathLength(traj)
			if len(traj) > 1 {
				intervalSumMS += float64(domain.TrajectoryDuration(traj))
				intervals += len(traj) - 1
			}
		}
	}
	if out.Objects == 0 {
		return nil, domain.ErrEmptyDataset
	}

	out.MeanPathLength = out.TotalPathLength / float64(out.Objects)
	if intervals > 0 {
		out.MeanSampleInterval = intervalSumMS / float64(intervals)
	}
	return out, nil
}

// Build collects the data behind the HTML report.
func (s *Stats) Build(ctx context.Context) (*domain.ReportData, error) {
	scenes, err := s.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	if len(scenes) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	data := &domain.ReportData{GeneratedAt: time.Now()}
	for i := range scenes {
		data.SequenceLengths = append(data.SequenceLengths, len(scenes[i].Objects))
		if d := scenes[i].Duration(); d > 0 {
			data.DurationsMS = append(data.DurationsMS, float64(d))
		}
	}
	if len(data.DurationsMS) > 0 {
		data.Durations = *summarise(data.DurationsMS)
	}

	coverage, err := s.query.Objects(ctx)
	if err != nil {
		return nil, err
	}
	data.Coverage = coverage

	if run, err := s.runs.LatestRun(ctx); err == nil {
		data.Root = run.Root
	}
	return data, nil
}

// summarise computes the duration summary of a non-empty sample.
func summarise(ms []float64) *domain.DurationStats {
	sorted := make([]float64, len(ms))
	copy(sorted, ms)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	out := &domain.DurationStats{
		Count:  len(sorted),
		Mean:   mean,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
	}
	// StdDev is NaN for a single sample.
	if len(sorted) > 1 {
		out.StdDev = std
	}
	return out
}
