package domain

// RecordKind identifies which dataset file a raw record came from.
type RecordKind string

// Record kinds found in a BoxED dataset tree.
const (
	// KindPickPlace is the per-scene pick and place file. Array order
	// is the packing order.
	KindPickPlace RecordKind = "pickplace"

	// KindObjectTrajectory is a per-object motion file at 20 Hz.
	KindObjectTrajectory RecordKind = "object_trajectory"

	// KindCameraTrajectory is the headset viewpoint path of a scene.
	KindCameraTrajectory RecordKind = "camera_trajectory"

	// KindInitialLayout is the starting poses of a scene's objects.
	KindInitialLayout RecordKind = "initial_layout"

	// KindSnapshot is the top-down PNG of the initial layout.
	KindSnapshot RecordKind = "snapshot"
)

// IsValid returns true if the record kind is recognised.
func (k RecordKind) IsValid() bool {
	switch k {
	case KindPickPlace, KindObjectTrajectory, KindCameraTrajectory,
		KindInitialLayout, KindSnapshot:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k RecordKind) String() string {
	return string(k)
}

// RawRecord represents opaque bytes fetched by a dataset scanner.
// It is the scanner's output before decoding.
type RawRecord struct {
	// Kind identifies the dataset file type.
	Kind RecordKind

	// Participant and Scene locate the record in the dataset tree.
	Participant int
	Scene       int

	// Object is the clean object name hint derived from the file
	// name. Set for object trajectories only.
	Object string

	// Path is the file location on disk.
	Path string

	// Content is the raw bytes.
	Content []byte
}

// ChangeType represents the type of record change.
type ChangeType int

const (
	// ChangeCreated indicates a new record.
	ChangeCreated ChangeType = iota

	// ChangeUpdated indicates a modified record.
	ChangeUpdated

	// ChangeDeleted indicates a removed record.
	ChangeDeleted
)

// RecordChange represents a change event from a scanner watch.
// Used to re-import scenes whose files change on disk.
type RecordChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Record is the affected record.
	Record RawRecord
}
