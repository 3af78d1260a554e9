package mcp

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	sequences    [][]string
	poses        map[string][]domain.Pose
	durations    []int64
	scene        *domain.Scene
	coverage     []domain.ObjectCoverage
	participants []domain.Participant
	err          error
}

func (m *mockQueryService) Sequences(_ context.Context, _ domain.SequenceOptions) ([][]string, error) {
	return m.sequences, m.err
}

func (m *mockQueryService) GraspPoses(
	_ context.Context,
	kind domain.GraspKind,
	_ []string,
) (map[string][]domain.Pose, error) {
	if !kind.IsValid() {
		return nil, domain.ErrInvalidGraspKind
	}
	return m.poses, m.err
}

func (m *mockQueryService) SceneDurations(_ context.Context) ([]int64, error) {
	return m.durations, m.err
}

func (m *mockQueryService) InitialLayout(_ context.Context, _, _ int) (*domain.Scene, error) {
	return m.scene, m.err
}

func (m *mockQueryService) Objects(_ context.Context) ([]domain.ObjectCoverage, error) {
	return m.coverage, m.err
}

func (m *mockQueryService) Participants(_ context.Context) ([]domain.Participant, error) {
	return m.participants, m.err
}

// mockStatsService is a mock implementation of driving.StatsService.
type mockStatsService struct {
	durations    *domain.DurationStats
	trajectories *domain.TrajectoryStats
	err          error
}

func (m *mockStatsService) Durations(_ context.Context) (*domain.DurationStats, error) {
	return m.durations, m.err
}

func (m *mockStatsService) Trajectories(_ context.Context) (*domain.TrajectoryStats, error) {
	return m.trajectories, m.err
}
