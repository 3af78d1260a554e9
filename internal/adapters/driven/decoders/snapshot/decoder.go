// Package snapshot decodes the top-down PNG of a scene's initial
// layout. Only the header is read; pixels stay on disk.
package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.RecordDecoder = (*Decoder)(nil)

// Decoder handles top-down snapshot records.
type Decoder struct{}

// New creates a new snapshot decoder.
func New() *Decoder {
	return &Decoder{}
}

// Kinds returns the record kinds this decoder handles.
func (d *Decoder) Kinds() []domain.RecordKind {
	return []domain.RecordKind{domain.KindSnapshot}
}

// Decode reads the PNG header and records the image dimensions.
func (d *Decoder) Decode(_ context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(raw.Content))
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", raw.Path, err)
	}

	return &driven.DecodeResult{
		Kind: domain.KindSnapshot,
		Snapshot: &domain.SnapshotInfo{
			Path:   raw.Path,
			Width:  cfg.Width,
			Height: cfg.Height,
		},
	}, nil
}
