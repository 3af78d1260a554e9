package domain

import "time"

// NominalSampleIntervalMS is the expected spacing between trajectory
// samples: the capture rig recorded at 20 Hz.
const NominalSampleIntervalMS = 50.0

// SequenceOptions controls how packing sequences are returned.
type SequenceOptions struct {
	// UniqueOnly restricts the result to scenes guaranteed to contain
	// each object at most once.
	UniqueOnly bool

	// StartToken prepends the start token to every sequence.
	StartToken bool
}

// DurationStats summarises the scene durations of the dataset.
// All values are in milliseconds.
type DurationStats struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Median float64
	P90    float64
}

// TrajectoryStats summarises object motion across the dataset.
type TrajectoryStats struct {
	// Objects is the number of objects with a non-empty trajectory.
	Objects int

	// Samples is the total number of trajectory samples.
	Samples int

	// TotalPathLength and MeanPathLength are in metres.
	TotalPathLength float64
	MeanPathLength  float64

	// MeanSampleInterval is the observed mean spacing in
	// milliseconds. Compare against NominalSampleIntervalMS.
	MeanSampleInterval float64
}

// ObjectCoverage counts the grasp poses recorded for one catalog object.
type ObjectCoverage struct {
	Name       string
	PickCount  int
	PlaceCount int
}

// ImportRun records one execution of the importer.
type ImportRun struct {
	// ID is the unique identifier of the run.
	ID string

	// Root is the dataset root that was imported.
	Root string

	// StartedAt and CompletedAt bound the run.
	StartedAt   time.Time
	CompletedAt time.Time

	// Scenes and Objects count what was imported.
	Scenes  int
	Objects int

	// Errors counts records that failed to decode and were skipped.
	Errors int
}

// ReportData aggregates everything the HTML report renders.
type ReportData struct {
	// Root is the dataset root of the latest import.
	Root string

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time

	// DurationsMS holds one entry per scene.
	DurationsMS []float64

	// SequenceLengths holds the object count of each scene.
	SequenceLengths []int

	// Coverage holds per-object grasp counts, in catalog order.
	Coverage []ObjectCoverage

	// Durations summarises DurationsMS.
	Durations DurationStats
}
