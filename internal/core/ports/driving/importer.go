package driving

import "context"

// Importer coordinates dataset imports.
type Importer interface {
	// Import scans the dataset root, decodes every record, and
	// persists the assembled scenes. Only one import may run at a
	// time; a concurrent call returns domain.ErrImportInProgress.
	Import(ctx context.Context, root string) (*ImportStatus, error)

	// Watch runs an initial import, then re-imports scenes whose
	// files change on disk. Blocks until the context is cancelled.
	Watch(ctx context.Context, root string) error

	// Status returns the state of the running or last import.
	Status(ctx context.Context) *ImportStatus
}

// ImportStatus reports importer progress.
type ImportStatus struct {
	// RunID is the identifier of the import run.
	RunID string

	// Root is the dataset root being imported.
	Root string

	// Running is true while the import is in progress.
	Running bool

	// Scenes and Objects count what has been persisted so far.
	Scenes  int
	Objects int

	// ErrorCount counts records that failed to decode and were
	// skipped.
	ErrorCount int
}
