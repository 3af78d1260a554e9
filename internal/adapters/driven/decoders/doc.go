// Package decoders routes raw dataset records to the decoder for
// their kind. Each file format of the BoxED tree has its own
// sub-package:
//
//   - pickplace: per-scene pick and place poses, in packing order
//   - trajectory: object and headset motion samples at 20 Hz
//   - layout: starting poses of the scene objects
//   - snapshot: the top-down PNG of the initial layout
package decoders
