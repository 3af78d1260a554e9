package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// Ensure ImportStateStore implements the interface.
var _ driven.ImportStateStore = (*ImportStateStore)(nil)

// ImportStateStore is an in-memory implementation of
// driven.ImportStateStore.
type ImportStateStore struct {
	mu   sync.RWMutex
	runs map[string]domain.ImportRun
}

// NewImportStateStore creates a new in-memory import state store.
func NewImportStateStore() *ImportStateStore {
	return &ImportStateStore{runs: make(map[string]domain.ImportRun)}
}

// SaveRun stores or updates an import run.
func (s *ImportStateStore) SaveRun(_ context.Context, run domain.ImportRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// LatestRun returns the most recently started run.
func (s *ImportStateStore) LatestRun(ctx context.Context) (*domain.ImportRun, error) {
	runs, err := s.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &runs[0], nil
}

// ListRuns returns all runs, most recent first.
func (s *ImportStateStore) ListRuns(_ context.Context) ([]domain.ImportRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.ImportRun, 0, len(s.runs))
	for id := range s.runs {
		runs = append(runs, s.runs[id])
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	return runs, nil
}
