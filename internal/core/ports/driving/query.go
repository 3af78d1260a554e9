package driving

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// QueryService answers questions about the imported dataset.
type QueryService interface {
	// Sequences returns the ordered packing sequences of all scenes.
	Sequences(ctx context.Context, opts domain.SequenceOptions) ([][]string, error)

	// GraspPoses returns the grasp poses of the requested kind,
	// keyed by clean object name. An empty objects list selects the
	// whole catalog. Unknown names return domain.ErrUnknownObject.
	GraspPoses(ctx context.Context, kind domain.GraspKind, objects []string) (map[string][]domain.Pose, error)

	// SceneDurations returns the duration in milliseconds of every
	// scene with trajectories, ordered by participant then scene.
	SceneDurations(ctx context.Context) ([]int64, error)

	// InitialLayout returns the scene with its starting layout and
	// snapshot info.
	InitialLayout(ctx context.Context, participant, scene int) (*domain.Scene, error)

	// Objects returns per-object grasp counts in catalog order.
	Objects(ctx context.Context) ([]domain.ObjectCoverage, error)

	// Participants returns all imported participants with their
	// scenes.
	Participants(ctx context.Context) ([]domain.Participant, error)
}
