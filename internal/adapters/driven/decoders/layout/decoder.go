// Package layout decodes the initial layout file: the pose of every
// scene object before packing started.
package layout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vislab-robotics/boxed-cli/internal/adapters/driven/decoders/posejson"
	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.RecordDecoder = (*Decoder)(nil)

// Decoder handles initial layout records.
type Decoder struct{}

// New creates a new layout decoder.
func New() *Decoder {
	return &Decoder{}
}

// Kinds returns the record kinds this decoder handles.
func (d *Decoder) Kinds() []domain.RecordKind {
	return []domain.RecordKind{domain.KindInitialLayout}
}

// entry is the wire format of one layout entry.
type entry struct {
	ID          string      `json:"id"`
	Rotation    [][]float64 `json:"rotation"`
	Translation []float64   `json:"translation"`
}

// Decode parses an initial layout record.
func (d *Decoder) Decode(_ context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var entries []entry
	if err := json.Unmarshal(raw.Content, &entries); err != nil {
		return nil, fmt.Errorf("parsing layout file: %w", err)
	}

	layout := make([]domain.LayoutEntry, 0, len(entries))
	for i, e := range entries {
		uid, err := domain.ParseUniqueID(e.ID)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): unique id: %w", i, e.ID, err)
		}
		le := domain.LayoutEntry{
			Name:     domain.CleanName(e.ID),
			UniqueID: uid,
		}
		if le.Pose.Rotation, err = posejson.Matrix(e.Rotation); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.ID, err)
		}
		if le.Pose.Translation, err = posejson.Vector(e.Translation); err != nil {
			return nil, fmt.Errorf("entry %d (%q): %w", i, e.ID, err)
		}
		layout = append(layout, le)
	}

	return &driven.DecodeResult{
		Kind:   domain.KindInitialLayout,
		Layout: layout,
	}, nil
}
