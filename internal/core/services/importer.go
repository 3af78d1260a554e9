package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
	"github.com/vislab-robotics/boxed-cli/internal/logger"
)

// Ensure ImportOrchestrator implements the interface.
var _ driving.Importer = (*ImportOrchestrator)(nil)

// watchSettle is how long the watcher waits after the last change
// event before re-importing, so file bursts coalesce into one run.
const watchSettle = 500 * time.Millisecond

// ImportOrchestrator coordinates the scan -> decode -> store pipeline.
type ImportOrchestrator struct {
	factory       driven.ScannerFactory
	registry      driven.DecoderRegistry
	scenes        driven.SceneStore
	runs          driven.ImportStateStore
	includeCamera bool

	// Status tracking
	mu     sync.RWMutex
	status driving.ImportStatus
}

// NewImportOrchestrator creates a new import orchestrator.
// includeCamera controls whether headset trajectories are imported;
// they are large and off by default.
func NewImportOrchestrator(
	factory driven.ScannerFactory,
	registry driven.DecoderRegistry,
	scenes driven.SceneStore,
	runs driven.ImportStateStore,
	includeCamera bool,
) *ImportOrchestrator {
	return &ImportOrchestrator{
		factory:       factory,
		registry:      registry,
		scenes:        scenes,
		runs:          runs,
		includeCamera: includeCamera,
	}
}

// Import scans the dataset root and persists the assembled scenes.
func (o *ImportOrchestrator) Import(ctx context.Context, root string) (*driving.ImportStatus, error) {
	runID := uuid.New().String()
	if err := o.begin(runID, root); err != nil {
		return nil, err
	}
	defer o.finish()

	scanner, err := o.factory.Create(root, o.includeCamera)
	if err != nil {
		return nil, fmt.Errorf("create scanner: %w", err)
	}
	defer scanner.Close()

	if err := scanner.Validate(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrScannerValidation, err)
	}

	run := domain.ImportRun{ID: runID, Root: root, StartedAt: time.Now().UTC()}
	logger.Info("Starting import of %s (run %s)", root, runID)

	builders, err := o.collect(ctx, scanner)
	if err != nil {
		return nil, err
	}
	if len(builders) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	for _, b := range builders {
		scene := b.build()
		if err := o.scenes.SaveScene(ctx, scene); err != nil {
			return nil, fmt.Errorf("save scene %d/%d: %w", scene.Participant, scene.Number, err)
		}
		o.mu.Lock()
		o.status.Scenes++
		o.status.Objects += len(scene.Objects)
		o.mu.Unlock()
	}

	status := o.Status(ctx)
	run.CompletedAt = time.Now().UTC()
	run.Scenes = status.Scenes
	run.Objects = status.Objects
	run.Errors = status.ErrorCount
	if err := o.runs.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("save import run: %w", err)
	}

	logger.Info("Import complete: %d scenes, %d objects, %d errors",
		run.Scenes, run.Objects, run.Errors)
	return status, nil
}

// Watch runs an initial import, then re-imports when dataset files
// change. Blocks until the context is cancelled.
func (o *ImportOrchestrator) Watch(ctx context.Context, root string) error {
	if _, err := o.Import(ctx, root); err != nil {
		return err
	}

	scanner, err := o.factory.Create(root, o.includeCamera)
	if err != nil {
		return fmt.Errorf("create scanner: %w", err)
	}
	defer scanner.Close()

	changes, err := scanner.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}

	// Coalesce change bursts: re-import once the tree settles.
	var settle *time.Timer
	var settleCh <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Change detected: %s", change.Record.Path)
			if settle == nil {
				settle = time.NewTimer(watchSettle)
				settleCh = settle.C
			} else {
				settle.Reset(watchSettle)
			}

		case <-settleCh:
			settle = nil
			settleCh = nil
			if _, err := o.Import(ctx, root); err != nil {
				logger.Warn("Re-import failed: %v", err)
			}
		}
	}
}

// Status returns a copy of the current import status.
func (o *ImportOrchestrator) Status(_ context.Context) *driving.ImportStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	status := o.status
	return &status
}

func (o *ImportOrchestrator) begin(runID, root string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.status.Running {
		return domain.ErrImportInProgress
	}
	o.status = driving.ImportStatus{RunID: runID, Root: root, Running: true}
	return nil
}

func (o *ImportOrchestrator) finish() {
	o.mu.Lock()
	o.status.Running = false
	o.mu.Unlock()
}

// collect drains the scanner, decoding each record into per-scene
// builders. Decode failures are counted and skipped.
func (o *ImportOrchestrator) collect(
	ctx context.Context,
	scanner driven.DatasetScanner,
) (map[sceneKey]*sceneBuilder, error) {
	builders := make(map[sceneKey]*sceneBuilder)
	records, errs := scanner.Scan(ctx)

	for records != nil || errs != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			o.countError()
			logger.Warn("Scan error: %v", err)

		case record, ok := <-records:
			if !ok {
				records = nil
				continue
			}
			logger.Debug("Decoding: %s", record.Path)
			if err := o.decodeInto(ctx, builders, &record); err != nil {
				o.countError()
				logger.Warn("Skipping %s: %v", record.Path, err)
			}
		}
	}
	return builders, nil
}

func (o *ImportOrchestrator) decodeInto(
	ctx context.Context,
	builders map[sceneKey]*sceneBuilder,
	record *domain.RawRecord,
) error {
	result, err := o.registry.Decode(ctx, record)
	if err != nil {
		return err
	}

	key := sceneKey{participant: record.Participant, number: record.Scene}
	b, ok := builders[key]
	if !ok {
		b = newSceneBuilder(key)
		builders[key] = b
	}
	b.add(result)
	return nil
}

func (o *ImportOrchestrator) countError() {
	o.mu.Lock()
	o.status.ErrorCount++
	o.mu.Unlock()
}

// sceneKey identifies a scene within the dataset tree.
type sceneKey struct {
	participant int
	number      int
}

// sceneBuilder accumulates the decoded records of one scene until the
// scan finishes, then assembles them into a Scene.
type sceneBuilder struct {
	key          sceneKey
	objects      []domain.Object
	trajectories map[string][][]domain.TimedPose
	camera       []domain.TimedPose
	layout       []domain.LayoutEntry
	snapshot     *domain.SnapshotInfo
}

func newSceneBuilder(key sceneKey) *sceneBuilder {
	return &sceneBuilder{
		key:          key,
		trajectories: make(map[string][][]domain.TimedPose),
	}
}

func (b *sceneBuilder) add(result *driven.DecodeResult) {
	switch result.Kind {
	case domain.KindPickPlace:
		b.objects = result.Objects
	case domain.KindObjectTrajectory:
		b.trajectories[result.Object] = append(b.trajectories[result.Object], result.Trajectory)
	case domain.KindCameraTrajectory:
		b.camera = result.Trajectory
	case domain.KindInitialLayout:
		b.layout = result.Layout
	case domain.KindSnapshot:
		b.snapshot = result.Snapshot
	}
}

// build assembles the scene, attaching trajectories to objects by
// clean name in packing order. Objects whose trajectory file is
// missing keep an empty trajectory.
func (b *sceneBuilder) build() *domain.Scene {
	scene := &domain.Scene{
		ID:               uuid.New().String(),
		Participant:      b.key.participant,
		Number:           b.key.number,
		Objects:          b.objects,
		CameraTrajectory: b.camera,
		InitialLayout:    b.layout,
		Snapshot:         b.snapshot,
	}

	remaining := make(map[string][][]domain.TimedPose, len(b.trajectories))
	for name, trajs := range b.trajectories {
		remaining[name] = trajs
	}
	for i := range scene.Objects {
		name := scene.Objects[i].Name
		trajs := remaining[name]
		if len(trajs) == 0 {
			logger.Warn("No trajectory for %s in scene %d/%d",
				name, scene.Participant, scene.Number)
			continue
		}
		scene.Objects[i].Trajectory = trajs[0]
		remaining[name] = trajs[1:]
	}
	return scene
}
