package domain

import "math"

// Pose is a 6-DoF transform: a 3x3 rotation matrix plus a translation
// vector, both in the scene frame used during capture.
type Pose struct {
	// Rotation is a row-major 3x3 rotation matrix.
	Rotation [3][3]float64

	// Translation is the position in metres.
	Translation [3]float64
}

// TimedPose is a pose sampled on the scene master clock, which starts
// at zero when the scene starts.
type TimedPose struct {
	Pose

	// TimestampMS is the sample time in milliseconds.
	TimestampMS int64
}

// Distance returns the Euclidean distance between the translations of
// two poses.
func (p Pose) Distance(other Pose) float64 {
	dx := p.Translation[0] - other.Translation[0]
	dy := p.Translation[1] - other.Translation[1]
	dz := p.Translation[2] - other.Translation[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PathLength returns the length in metres of the polyline described by
// the trajectory translations. Zero for fewer than two samples.
func PathLength(trajectory []TimedPose) float64 {
	var total float64
	for i := 1; i < len(trajectory); i++ {
		total += trajectory[i].Distance(trajectory[i-1].Pose)
	}
	return total
}

// TrajectoryDuration returns the time in milliseconds spanned by a
// trajectory. Zero for fewer than two samples.
func TrajectoryDuration(trajectory []TimedPose) int64 {
	if len(trajectory) < 2 {
		return 0
	}
	return trajectory[len(trajectory)-1].TimestampMS - trajectory[0].TimestampMS
}
