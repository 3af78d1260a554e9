package domain

import "time"

// LayoutEntry is the starting pose of one object at scene start.
type LayoutEntry struct {
	// Name is the clean catalog name.
	Name string

	// UniqueID is the per-instance id.
	UniqueID int

	// Pose is the object's pose before packing started.
	Pose Pose
}

// SnapshotInfo describes the top-down PNG captured at scene start.
// Pixels stay on disk; only the location and dimensions are indexed.
type SnapshotInfo struct {
	// Path is the snapshot location on disk.
	Path string

	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
}

// Scene is one box-packing episode: the set of objects a participant
// packed into the box, in packing order, plus the scene-level captures.
type Scene struct {
	// ID is the unique identifier assigned at import time.
	ID string

	// Participant is the participant number.
	Participant int

	// Number is the scene number within the participant.
	Number int

	// Objects holds the packed objects. Slice order is packing order.
	Objects []Object

	// CameraTrajectory is the headset viewpoint path. Loaded only on
	// request; the files are large.
	CameraTrajectory []TimedPose

	// InitialLayout holds the starting poses of the scene objects.
	InitialLayout []LayoutEntry

	// Snapshot describes the top-down image of the initial layout.
	Snapshot *SnapshotInfo

	// CreatedAt is when the scene was first imported.
	CreatedAt time.Time

	// UpdatedAt is when the scene was last re-imported.
	UpdatedAt time.Time
}

// PackingOrder returns the clean object names in the order they were
// packed into the box.
func (s *Scene) PackingOrder() []string {
	names := make([]string, len(s.Objects))
	for i := range s.Objects {
		names[i] = s.Objects[i].Name
	}
	return names
}

// Duration returns the episode duration in milliseconds: the last
// trajectory sample of the last-packed object minus the first sample of
// the first-packed object. Zero when trajectories are missing.
func (s *Scene) Duration() int64 {
	first, last := s.boundarySamples()
	if first == nil || last == nil {
		return 0
	}
	return last.TimestampMS - first.TimestampMS
}

func (s *Scene) boundarySamples() (first, last *TimedPose) {
	for i := range s.Objects {
		if len(s.Objects[i].Trajectory) > 0 {
			first = &s.Objects[i].Trajectory[0]
			break
		}
	}
	for i := len(s.Objects) - 1; i >= 0; i-- {
		traj := s.Objects[i].Trajectory
		if len(traj) > 0 {
			last = &traj[len(traj)-1]
			break
		}
	}
	return first, last
}

// HasUniqueObjectsOnly reports whether this scene is guaranteed to
// contain each object at most once. Only the first scene of
// participants from UniqueObjectsFirstParticipant onwards qualifies.
func (s *Scene) HasUniqueObjectsOnly() bool {
	return s.Participant >= UniqueObjectsFirstParticipant && s.Number == 1
}

// Participant groups the scenes packed by one study participant.
type Participant struct {
	// Number is the participant number, starting at 1.
	Number int

	// Scenes holds the participant's episodes in scene order.
	Scenes []Scene
}
