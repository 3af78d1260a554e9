package domain

import (
	"strconv"
	"strings"
)

// Object is one packed object of a scene: its catalog name, the unique
// instance id assigned during capture, the grasp poses, and the motion
// it followed between them.
type Object struct {
	// Name is the clean catalog name, e.g. "011 banana".
	Name string

	// UniqueID is the per-instance id carried in the raw object id.
	UniqueID int

	// PickPose is the 6-DoF pose at which the object was grasped.
	PickPose Pose

	// PlacePose is the 6-DoF pose at which the object was released.
	PlacePose Pose

	// Trajectory is the object's path between pick and place,
	// sampled at a nominal 20 Hz. May be empty if the trajectory
	// file was not found or not loaded.
	Trajectory []TimedPose
}

// CleanName strips the clone marker and unique id from a raw object id.
// E.g. "010 potted meat can(clone)-2993" becomes "010 potted meat can".
func CleanName(raw string) string {
	idx1 := strings.Index(raw, "(")
	idx2 := strings.Index(raw, "-")
	cut := len(raw)

	if idx1 != -1 || idx2 != -1 {
		if min(idx1, idx2) > 0 {
			cut = min(idx1, idx2)
		} else {
			cut = max(idx1, idx2)
		}
	}
	return raw[:cut]
}

// ParseUniqueID extracts the unique instance id from a raw object id.
// The id is carried in the last four characters of the raw string.
func ParseUniqueID(raw string) (int, error) {
	if len(raw) < 4 {
		return 0, ErrInvalidInput
	}
	id, err := strconv.Atoi(raw[len(raw)-4:])
	if err != nil {
		return 0, ErrInvalidInput
	}
	return id, nil
}
