package driving

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// StatsService computes summary statistics over the imported dataset.
type StatsService interface {
	// Durations summarises scene durations.
	// Returns domain.ErrEmptyDataset when nothing is imported.
	Durations(ctx context.Context) (*domain.DurationStats, error)

	// Trajectories summarises object motion: path lengths and the
	// observed sample interval against the nominal 20 Hz.
	Trajectories(ctx context.Context) (*domain.TrajectoryStats, error)
}

// ReportService assembles the data behind the HTML report.
type ReportService interface {
	// Build collects durations, sequence lengths, and grasp coverage
	// for rendering.
	Build(ctx context.Context) (*domain.ReportData, error)
}
