package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/storage/memory"
	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// fakeScanner replays canned records instead of walking a real tree.
type fakeScanner struct {
	root     string
	records  []domain.RawRecord
	errs     []error
	validate error
	scanGate chan struct{}
	changes  chan domain.RecordChange
}

func (f *fakeScanner) Root() string                     { return f.root }
func (f *fakeScanner) Validate(_ context.Context) error { return f.validate }
func (f *fakeScanner) Close() error                     { return nil }

func (f *fakeScanner) Scan(ctx context.Context) (<-chan domain.RawRecord, <-chan error) {
	records := make(chan domain.RawRecord)
	errs := make(chan error)
	go func() {
		defer close(records)
		defer close(errs)
		if f.scanGate != nil {
			<-f.scanGate
		}
		for _, err := range f.errs {
			select {
			case errs <- err:
			case <-ctx.Done():
				return
			}
		}
		for _, r := range f.records {
			select {
			case records <- r:
			case <-ctx.Done():
				return
			}
		}
	}()
	return records, errs
}

func (f *fakeScanner) Watch(_ context.Context) (<-chan domain.RecordChange, error) {
	if f.changes == nil {
		f.changes = make(chan domain.RecordChange)
	}
	return f.changes, nil
}

func (f *fakeScanner) factory() driven.ScannerFactory {
	return driven.ScannerFactoryFunc(func(root string, _ bool) (driven.DatasetScanner, error) {
		f.root = root
		return f, nil
	})
}

// fakeRegistry decodes records from shorthand content: pick/place files
// carry a comma-separated object list, trajectories two fixed samples.
type fakeRegistry struct {
	failPaths map[string]bool
}

func (r *fakeRegistry) Register(_ driven.RecordDecoder) {}

func (r *fakeRegistry) Decode(_ context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if r.failPaths[raw.Path] {
		return nil, domain.ErrInvalidInput
	}

	result := &driven.DecodeResult{Kind: raw.Kind}
	switch raw.Kind {
	case domain.KindPickPlace:
		for _, name := range strings.Split(string(raw.Content), ",") {
			result.Objects = append(result.Objects, domain.Object{Name: name})
		}
	case domain.KindObjectTrajectory:
		result.Object = raw.Object
		result.Trajectory = []domain.TimedPose{
			{TimestampMS: 0},
			{Pose: domain.Pose{Translation: [3]float64{1, 0, 0}}, TimestampMS: 50},
		}
	case domain.KindInitialLayout:
		result.Layout = []domain.LayoutEntry{{Name: "011 banana"}}
	case domain.KindSnapshot:
		result.Snapshot = &domain.SnapshotInfo{Path: raw.Path, Width: 640, Height: 480}
	}
	return result, nil
}

func record(kind domain.RecordKind, participant, scene int, object, path, content string) domain.RawRecord {
	return domain.RawRecord{
		Kind:        kind,
		Participant: participant,
		Scene:       scene,
		Object:      object,
		Path:        path,
		Content:     []byte(content),
	}
}

func newTestOrchestrator(scanner *fakeScanner, registry driven.DecoderRegistry) (*ImportOrchestrator, *memory.SceneStore, *memory.ImportStateStore) {
	scenes := memory.NewSceneStore()
	runs := memory.NewImportStateStore()
	if registry == nil {
		registry = &fakeRegistry{}
	}
	return NewImportOrchestrator(scanner.factory(), registry, scenes, runs, false), scenes, runs
}

func TestImportOrchestrator_Import(t *testing.T) {
	ctx := context.Background()

	t.Run("assembles scenes from scanned records", func(t *testing.T) {
		scanner := &fakeScanner{records: []domain.RawRecord{
			record(domain.KindPickPlace, 1, 1, "", "p1/s1/pickplace.json", "011 banana,025 mug"),
			record(domain.KindObjectTrajectory, 1, 1, "011 banana", "p1/s1/banana.json", ""),
			record(domain.KindInitialLayout, 1, 1, "", "p1/s1/layout.json", ""),
			record(domain.KindSnapshot, 1, 1, "", "p1/s1/top_down.png", ""),
		}}
		orch, scenes, runs := newTestOrchestrator(scanner, nil)

		status, err := orch.Import(ctx, "/data/boxed")
		require.NoError(t, err)
		assert.Equal(t, 1, status.Scenes)
		assert.Equal(t, 2, status.Objects)
		assert.Zero(t, status.ErrorCount)
		assert.False(t, status.Running)

		got, err := scenes.GetScene(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"011 banana", "025 mug"}, got.PackingOrder())
		assert.Len(t, got.Objects[0].Trajectory, 2, "trajectory attached by clean name")
		assert.Empty(t, got.Objects[1].Trajectory, "missing trajectory stays empty")
		assert.Len(t, got.InitialLayout, 1)
		require.NotNil(t, got.Snapshot)
		assert.Equal(t, 640, got.Snapshot.Width)

		run, err := runs.LatestRun(ctx)
		require.NoError(t, err)
		assert.Equal(t, "/data/boxed", run.Root)
		assert.Equal(t, 1, run.Scenes)
		assert.Equal(t, 2, run.Objects)
		assert.False(t, run.CompletedAt.IsZero())
	})

	t.Run("repeated objects consume trajectories in packing order", func(t *testing.T) {
		scanner := &fakeScanner{records: []domain.RawRecord{
			record(domain.KindPickPlace, 1, 1, "", "pp", "011 banana,011 banana"),
			record(domain.KindObjectTrajectory, 1, 1, "011 banana", "t1", ""),
		}}
		orch, scenes, _ := newTestOrchestrator(scanner, nil)

		_, err := orch.Import(ctx, "/data/boxed")
		require.NoError(t, err)

		got, err := scenes.GetScene(ctx, 1, 1)
		require.NoError(t, err)
		assert.NotEmpty(t, got.Objects[0].Trajectory, "first instance gets the trajectory")
		assert.Empty(t, got.Objects[1].Trajectory)
	})

	t.Run("decode failures are counted and skipped", func(t *testing.T) {
		scanner := &fakeScanner{records: []domain.RawRecord{
			record(domain.KindPickPlace, 1, 1, "", "good", "011 banana"),
			record(domain.KindInitialLayout, 1, 1, "", "bad", ""),
		}}
		registry := &fakeRegistry{failPaths: map[string]bool{"bad": true}}
		orch, scenes, _ := newTestOrchestrator(scanner, registry)

		status, err := orch.Import(ctx, "/data/boxed")
		require.NoError(t, err)
		assert.Equal(t, 1, status.ErrorCount)
		assert.Equal(t, 1, status.Scenes)

		got, err := scenes.GetScene(ctx, 1, 1)
		require.NoError(t, err)
		assert.Empty(t, got.InitialLayout)
	})

	t.Run("scan errors do not abort the import", func(t *testing.T) {
		scanner := &fakeScanner{
			records: []domain.RawRecord{record(domain.KindPickPlace, 1, 1, "", "pp", "011 banana")},
			errs:    []error{domain.ErrInvalidInput},
		}
		orch, _, _ := newTestOrchestrator(scanner, nil)

		status, err := orch.Import(ctx, "/data/boxed")
		require.NoError(t, err)
		assert.Equal(t, 1, status.ErrorCount)
		assert.Equal(t, 1, status.Scenes)
	})

	t.Run("empty dataset is an error", func(t *testing.T) {
		orch, _, _ := newTestOrchestrator(&fakeScanner{}, nil)

		_, err := orch.Import(ctx, "/data/empty")
		assert.ErrorIs(t, err, domain.ErrEmptyDataset)
	})

	t.Run("validation failure aborts before scanning", func(t *testing.T) {
		scanner := &fakeScanner{validate: domain.ErrInvalidInput}
		orch, _, _ := newTestOrchestrator(scanner, nil)

		_, err := orch.Import(ctx, "/does/not/exist")
		assert.ErrorIs(t, err, domain.ErrScannerValidation)
	})

	t.Run("concurrent imports are rejected", func(t *testing.T) {
		gate := make(chan struct{})
		scanner := &fakeScanner{
			records:  []domain.RawRecord{record(domain.KindPickPlace, 1, 1, "", "pp", "011 banana")},
			scanGate: gate,
		}
		orch, _, _ := newTestOrchestrator(scanner, nil)

		done := make(chan error, 1)
		go func() {
			_, err := orch.Import(ctx, "/data/boxed")
			done <- err
		}()

		require.Eventually(t, func() bool {
			return orch.Status(ctx).Running
		}, time.Second, 5*time.Millisecond)

		_, err := orch.Import(ctx, "/data/boxed")
		assert.ErrorIs(t, err, domain.ErrImportInProgress)

		close(gate)
		require.NoError(t, <-done)
	})
}

func TestImportOrchestrator_Watch(t *testing.T) {
	scanner := &fakeScanner{
		records: []domain.RawRecord{record(domain.KindPickPlace, 1, 1, "", "pp", "011 banana")},
		changes: make(chan domain.RecordChange),
	}
	orch, _, runs := newTestOrchestrator(scanner, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- orch.Watch(ctx, "/data/boxed") }()

	// Initial import.
	require.Eventually(t, func() bool {
		all, err := runs.ListRuns(context.Background())
		return err == nil && len(all) == 1
	}, time.Second, 5*time.Millisecond)

	// A change burst triggers exactly one re-import after the settle.
	scanner.changes <- domain.RecordChange{Type: domain.ChangeUpdated}
	scanner.changes <- domain.RecordChange{Type: domain.ChangeUpdated}

	require.Eventually(t, func() bool {
		all, err := runs.ListRuns(context.Background())
		return err == nil && len(all) == 2
	}, 3*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
