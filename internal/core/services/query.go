package services

import (
	"context"
	"fmt"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
)

// Ensure Query implements the interface.
var _ driving.QueryService = (*Query)(nil)

// Query answers questions about the imported dataset from the scene
// store.
type Query struct {
	scenes driven.SceneStore
}

// NewQuery creates a new query service.
func NewQuery(scenes driven.SceneStore) *Query {
	return &Query{scenes: scenes}
}

// Sequences returns the ordered packing sequences of all scenes.
func (q *Query) Sequences(ctx context.Context, opts domain.SequenceOptions) ([][]string, error) {
	scenes, err := q.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	var sequences [][]string
	for i := range scenes {
		if opts.UniqueOnly && !scenes[i].HasUniqueObjectsOnly() {
			continue
		}
		seq := scenes[i].PackingOrder()
		if opts.StartToken {
			seq = append([]string{domain.StartToken}, seq...)
		}
		sequences = append(sequences, seq)
	}
	return sequences, nil
}

// GraspPoses returns grasp poses keyed by clean object name.
func (q *Query) GraspPoses(
	ctx context.Context,
	kind domain.GraspKind,
	objects []string,
) (map[string][]domain.Pose, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidGraspKind, kind)
	}

	targets := make(map[string]bool, len(objects))
	for _, name := range objects {
		if !domain.IsKnownObject(name) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownObject, name)
		}
		targets[name] = true
	}

	scenes, err := q.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	poses := make(map[string][]domain.Pose)
	for i := range scenes {
		for j := range scenes[i].Objects {
			obj := &scenes[i].Objects[j]
			if len(targets) > 0 && !targets[obj.Name] {
				continue
			}
			if kind == domain.GraspPick {
				poses[obj.Name] = append(poses[obj.Name], obj.PickPose)
			} else {
				poses[obj.Name] = append(poses[obj.Name], obj.PlacePose)
			}
		}
	}
	return poses, nil
}

// SceneDurations returns the duration of every scene with trajectories.
func (q *Query) SceneDurations(ctx context.Context) ([]int64, error) {
	scenes, err := q.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	var durations []int64
	for i := range scenes {
		if d := scenes[i].Duration(); d > 0 {
			durations = append(durations, d)
		}
	}
	return durations, nil
}

// InitialLayout returns one scene with its starting layout.
func (q *Query) InitialLayout(ctx context.Context, participant, scene int) (*domain.Scene, error) {
	s, err := q.scenes.GetScene(ctx, participant, scene)
	if err != nil {
		return nil, fmt.Errorf("get scene %d/%d: %w", participant, scene, err)
	}
	return s, nil
}

// Objects returns per-object grasp counts in catalog order.
func (q *Query) Objects(ctx context.Context) ([]domain.ObjectCoverage, error) {
	scenes, err := q.scenes.ListScenes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}

	counts := make(map[string]*domain.ObjectCoverage, len(domain.AllObjects))
	coverage := make([]domain.ObjectCoverage, len(domain.AllObjects))
	for i, name := range domain.AllObjects {
		coverage[i] = domain.ObjectCoverage{Name: name}
		counts[name] = &coverage[i]
	}

	for i := range scenes {
		for j := range scenes[i].Objects {
			if c, ok := counts[scenes[i].Objects[j].Name]; ok {
				// Every packed object carries both poses.
				c.PickCount++
				c.PlaceCount++
			}
		}
	}
	return coverage, nil
}

// Participants returns all imported participants with their scenes.
func (q *Query) Participants(ctx context.Context) ([]domain.Participant, error) {
	participants, err := q.scenes.ListParticipants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}
