// Package filesystem scans a BoxED dataset tree on local disk.
//
// The expected layout is <root>/<participant dir>/<scene dir>/<files>,
// where the participant and scene numbers are the first integers in
// the respective directory names. File kinds are recognised by name
// markers (PickPlace_dataset, trajectory, main_camera_trajectory,
// initial_layout, top_down).
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
	"github.com/vislab-robotics/boxed-cli/internal/logger"
)

// Ensure Scanner implements the interface.
var _ driven.DatasetScanner = (*Scanner)(nil)

// Scanner walks a dataset tree on local disk.
type Scanner struct {
	root          string
	includeCamera bool
	watcher       *fsnotify.Watcher
}

// New creates a scanner for the given dataset root. includeCamera
// controls whether headset trajectory files are emitted.
func New(root string, includeCamera bool) *Scanner {
	return &Scanner{root: root, includeCamera: includeCamera}
}

// Root returns the dataset root directory.
func (s *Scanner) Root() string {
	return s.root
}

// Validate checks that the root exists and is a directory.
func (s *Scanner) Validate(_ context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", s.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", s.root)
	}
	return nil
}

// Scan emits every dataset record under the root. Per-file read errors
// are sent on the error channel and do not stop the scan.
func (s *Scanner) Scan(ctx context.Context) (<-chan domain.RawRecord, <-chan error) {
	records := make(chan domain.RawRecord, 16)
	errs := make(chan error, 1)

	go func() {
		defer close(records)
		defer close(errs)

		walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if d.IsDir() {
				// Skip hidden directories entirely.
				if d.Name() != "." && d.Name()[0] == '.' && path != s.root {
					return filepath.SkipDir
				}
				return nil
			}

			record, ok, err := s.load(path)
			if err != nil {
				select {
				case errs <- err:
				case <-ctx.Done():
					return ctx.Err()
				}
				return nil
			}
			if !ok {
				return nil
			}

			select {
			case records <- *record:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
		if walkErr != nil && ctx.Err() == nil {
			errs <- fmt.Errorf("walking %s: %w", s.root, walkErr)
		}
	}()

	return records, errs
}

// load classifies and reads one file. ok is false for files that are
// not dataset records or are filtered out.
func (s *Scanner) load(path string) (*domain.RawRecord, bool, error) {
	kind, object, ok := Classify(path)
	if !ok {
		return nil, false, nil
	}
	if kind == domain.KindCameraTrajectory && !s.includeCamera {
		logger.Debug("Skipping camera trajectory: %s", path)
		return nil, false, nil
	}

	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return nil, false, fmt.Errorf("relativising %s: %w", path, err)
	}
	participant, scene, err := parseNumbers(rel)
	if err != nil {
		return nil, false, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	return &domain.RawRecord{
		Kind:        kind,
		Participant: participant,
		Scene:       scene,
		Object:      object,
		Path:        path,
		Content:     content,
	}, true, nil
}

// Watch listens for changes to dataset files under the root. Change
// events carry the record location only; content is not read.
func (s *Scanner) Watch(ctx context.Context) (<-chan domain.RecordChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	s.watcher = watcher

	// Watch every directory in the tree; fsnotify is not recursive.
	err = filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.root, err)
	}

	changes := make(chan domain.RecordChange)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				s.handleEvent(ctx, event, changes)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

func (s *Scanner) handleEvent(ctx context.Context, event fsnotify.Event, changes chan<- domain.RecordChange) {
	// New directories must be added to the watch set.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := s.watcher.Add(event.Name); err != nil {
				logger.Warn("Watching %s: %v", event.Name, err)
			}
			return
		}
	}

	kind, object, ok := Classify(event.Name)
	if !ok {
		return
	}
	if kind == domain.KindCameraTrajectory && !s.includeCamera {
		return
	}

	rel, err := filepath.Rel(s.root, event.Name)
	if err != nil {
		return
	}
	participant, scene, err := parseNumbers(rel)
	if err != nil {
		return
	}

	var changeType domain.ChangeType
	switch {
	case event.Op.Has(fsnotify.Create):
		changeType = domain.ChangeCreated
	case event.Op.Has(fsnotify.Write):
		changeType = domain.ChangeUpdated
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		changeType = domain.ChangeDeleted
	default:
		return
	}

	change := domain.RecordChange{
		Type: changeType,
		Record: domain.RawRecord{
			Kind:        kind,
			Participant: participant,
			Scene:       scene,
			Object:      object,
			Path:        event.Name,
		},
	}
	select {
	case changes <- change:
	case <-ctx.Done():
	}
}

// Close releases the watcher, if any.
func (s *Scanner) Close() error {
	if s.watcher != nil {
		return s.watcher.Close()
	}
	return nil
}

// Factory returns a ScannerFactory producing filesystem scanners.
func Factory() driven.ScannerFactory {
	return driven.ScannerFactoryFunc(func(root string, includeCamera bool) (driven.DatasetScanner, error) {
		return New(root, includeCamera), nil
	})
}
