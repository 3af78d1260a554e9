package driven

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// SceneStore persists imported scenes.
// Backed by SQLite for metadata storage.
type SceneStore interface {
	// SaveScene stores or updates a scene. Scenes are keyed by
	// (participant, scene number); re-imports overwrite in place.
	SaveScene(ctx context.Context, scene *domain.Scene) error

	// GetScene retrieves one scene.
	GetScene(ctx context.Context, participant, number int) (*domain.Scene, error)

	// ListScenes returns all scenes ordered by participant then
	// scene number.
	ListScenes(ctx context.Context) ([]domain.Scene, error)

	// ListParticipants returns all scenes grouped by participant.
	ListParticipants(ctx context.Context) ([]domain.Participant, error)

	// DeleteScene removes a scene and its objects.
	DeleteScene(ctx context.Context, participant, number int) error

	// Count returns the number of stored scenes and objects.
	Count(ctx context.Context) (scenes, objects int, err error)
}

// ImportStateStore records importer runs.
type ImportStateStore interface {
	// SaveRun stores or updates an import run.
	SaveRun(ctx context.Context, run domain.ImportRun) error

	// LatestRun returns the most recently started run.
	// Returns domain.ErrNotFound when no import has happened.
	LatestRun(ctx context.Context) (*domain.ImportRun, error)

	// ListRuns returns all runs, most recent first.
	ListRuns(ctx context.Context) ([]domain.ImportRun, error)
}
