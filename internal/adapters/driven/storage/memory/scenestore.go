// Package memory provides in-memory store implementations, used in
// tests and for ephemeral imports.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// Ensure SceneStore implements the interface.
var _ driven.SceneStore = (*SceneStore)(nil)

// SceneStore is an in-memory implementation of driven.SceneStore.
type SceneStore struct {
	mu     sync.RWMutex
	scenes map[sceneKey]domain.Scene
}

type sceneKey struct {
	participant int
	number      int
}

// NewSceneStore creates a new in-memory scene store.
func NewSceneStore() *SceneStore {
	return &SceneStore{scenes: make(map[sceneKey]domain.Scene)}
}

// SaveScene stores or updates a scene.
func (s *SceneStore) SaveScene(_ context.Context, scene *domain.Scene) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := sceneKey{scene.Participant, scene.Number}
	now := time.Now().UTC()
	if existing, ok := s.scenes[key]; ok {
		scene.CreatedAt = existing.CreatedAt
	} else if scene.CreatedAt.IsZero() {
		scene.CreatedAt = now
	}
	scene.UpdatedAt = now
	s.scenes[key] = *scene
	return nil
}

// GetScene retrieves one scene.
func (s *SceneStore) GetScene(_ context.Context, participant, number int) (*domain.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scene, ok := s.scenes[sceneKey{participant, number}]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &scene, nil
}

// ListScenes returns all scenes ordered by participant then number.
func (s *SceneStore) ListScenes(_ context.Context) ([]domain.Scene, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scenes := make([]domain.Scene, 0, len(s.scenes))
	for key := range s.scenes {
		scenes = append(scenes, s.scenes[key])
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Participant != scenes[j].Participant {
			return scenes[i].Participant < scenes[j].Participant
		}
		return scenes[i].Number < scenes[j].Number
	})
	return scenes, nil
}

// ListParticipants returns all scenes grouped by participant.
func (s *SceneStore) ListParticipants(ctx context.Context) ([]domain.Participant, error) {
	scenes, err := s.ListScenes(ctx)
	if err != nil {
		return nil, err
	}
	return groupByParticipant(scenes), nil
}

// DeleteScene removes a scene.
func (s *SceneStore) DeleteScene(_ context.Context, participant, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scenes, sceneKey{participant, number})
	return nil
}

// Count returns the number of stored scenes and objects.
func (s *SceneStore) Count(_ context.Context) (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects := 0
	for key := range s.scenes {
		objects += len(s.scenes[key].Objects)
	}
	return len(s.scenes), objects, nil
}

// groupByParticipant folds an ordered scene list into participants.
func groupByParticipant(scenes []domain.Scene) []domain.Participant {
	var participants []domain.Participant
	for i := range scenes {
		n := len(participants)
		if n == 0 || participants[n-1].Number != scenes[i].Participant {
			participants = append(participants, domain.Participant{Number: scenes[i].Participant})
			n++
		}
		participants[n-1].Scenes = append(participants[n-1].Scenes, scenes[i])
	}
	return participants
}
