package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates a record kind no decoder handles.
	ErrUnsupportedKind = errors.New("unsupported record kind")

	// ErrUnknownObject indicates an object name outside the catalog.
	ErrUnknownObject = errors.New("unknown object")

	// ErrInvalidGraspKind indicates a grasp kind other than pick or place.
	ErrInvalidGraspKind = errors.New("invalid grasp kind")

	// ErrImportInProgress indicates an import is already running.
	ErrImportInProgress = errors.New("import in progress")

	// ErrEmptyDataset indicates a scan found no dataset records under the root.
	ErrEmptyDataset = errors.New("no dataset records found")

	// Scanner Errors.

	// ErrScannerValidation indicates the dataset root failed validation.
	// The root is missing, unreadable, or not a directory.
	ErrScannerValidation = errors.New("scanner validation failed")

	// ErrScannerClosed indicates the scanner has been closed.
	ErrScannerClosed = errors.New("scanner closed")

	// ErrWatchUnsupported indicates the scanner cannot push change events.
	ErrWatchUnsupported = errors.New("watch not supported")
)
