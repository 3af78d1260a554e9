// Package domain defines the core entities of the BoxED importer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Pose: A 6-DoF transform (3x3 rotation + translation)
//   - TimedPose: A pose sampled on the scene master clock
//   - Object: A packed object with pick/place poses and trajectory
//   - Scene: One box-packing episode of a participant
//   - RawRecord: Opaque bytes emitted by a dataset scanner
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
