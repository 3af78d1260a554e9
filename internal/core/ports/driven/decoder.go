package driven

import (
	"context"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// RecordDecoder turns the raw bytes of one dataset file into domain
// values. Each decoder handles specific record kinds.
type RecordDecoder interface {
	// Kinds returns the record kinds this decoder handles.
	Kinds() []domain.RecordKind

	// Decode parses a raw record into a decode result.
	Decode(ctx context.Context, raw *domain.RawRecord) (*DecodeResult, error)
}

// DecodeResult contains the output of decoding one record. Exactly one
// of the payload fields is populated, selected by Kind.
type DecodeResult struct {
	// Kind echoes the decoded record kind.
	Kind domain.RecordKind

	// Objects holds the packed objects of a pick/place record, in
	// packing order. Trajectories are attached later by the importer.
	Objects []domain.Object

	// Trajectory holds the samples of a trajectory record. For
	// object trajectories, Object names the trajectory's owner.
	Trajectory []domain.TimedPose
	Object     string

	// Layout holds the entries of an initial layout record.
	Layout []domain.LayoutEntry

	// Snapshot describes a top-down image record.
	Snapshot *domain.SnapshotInfo
}

// DecoderRegistry routes raw records to the decoder for their kind.
type DecoderRegistry interface {
	// Register adds a decoder for its supported kinds.
	Register(decoder RecordDecoder)

	// Decode routes the record to its decoder.
	// Returns domain.ErrUnsupportedKind if no decoder matches.
	Decode(ctx context.Context, raw *domain.RawRecord) (*DecodeResult, error)
}
