package driven

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// DatasetScanner walks a BoxED dataset tree and emits raw records.
type DatasetScanner interface {
	// Root returns the dataset root directory.
	Root() string

	// Validate checks that the root exists and is a readable
	// directory. Returns nil if ready to scan.
	Validate(ctx context.Context) error

	// Scan emits every dataset record under the root.
	// Returns channels for records and errors; both are closed when
	// the scan finishes. Per-file read errors are sent on the error
	// channel and do not stop the scan.
	Scan(ctx context.Context) (<-chan domain.RawRecord, <-chan error)

	// Watch listens for changes to dataset files under the root.
	// The channel stays open until the context is cancelled.
	Watch(ctx context.Context) (<-chan domain.RecordChange, error)

	// Close releases resources.
	Close() error
}

// ScannerFactory builds scanners for a dataset root.
// The orchestrator uses it so tests can substitute fake scanners.
type ScannerFactory interface {
	// Create returns a scanner for the given root. includeCamera
	// controls whether headset trajectory files are emitted; they
	// are large and off by default.
	Create(root string, includeCamera bool) (DatasetScanner, error)
}

// ScannerFactoryFunc adapts a function to the ScannerFactory interface.
type ScannerFactoryFunc func(root string, includeCamera bool) (DatasetScanner, error)

// Create calls the wrapped function.
func (f ScannerFactoryFunc) Create(root string, includeCamera bool) (DatasetScanner, error) {
	return f(root, includeCamera)
}
