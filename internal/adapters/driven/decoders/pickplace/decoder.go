// Package pickplace decodes the per-scene pick and place file. The
// array order of the file is the packing order of the scene.
package pickplace

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

// Decoder handles pick and place records.
type Decoder struct{}

// New creates a new pick and place decoder.
func New() *Decoder {
	return &Decoder{}
}

// Kinds returns the record kinds this decoder handles.
func (d *Decoder) Kinds() []domain.RecordKind {
	return []domain.RecordKind{domain.KindPickPlace}
}

// entry is the wire format of one object in the pick and place file.
type entry struct {
	ID               string      `json:"id"`
	PickRotation     [][]float64 `json:"pickRotation"`
	PickTranslation  []float64   `json:"pickTranslation"`
	PlaceRotation    [][]float64 `json:"placeRotation"`
	PlaceTranslation []float64   `json:"placeTranslation"`
}

// Decode parses a pick and place record into objects in packing order.
func (d *Decoder) Decode(_ context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var entries []entry
	if err := json.Unmarshal(raw.Content, &entries); err != nil {
		return nil, fmt.Errorf("parsing pick place file: %w", err)
	}

	objects := make([]domain.Object, 0, len(entries))
	for i, e := range entries {
		obj, err := toObject(e)
		if err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, e.ID, err)
		}
		objects = append(objects, obj)
	}

	return &driven.DecodeResult{
		Kind:    domain.KindPickPlace,
		Objects: objects,
	}, nil
}

func toObject(e entry) (domain.Object, error) {
	uid, err := domain.ParseUniqueID(e.ID)
	if err != nil {
		return domain.Object{}, fmt.Errorf("unique id: %w", err)
	}

	obj := domain.Object{
		Name:     domain.CleanName(e.ID),
		UniqueID: uid,
	}
	if obj.PickPose.Rotation, err = posejson.Matrix(e.PickRotation); err != nil {
		return domain.Object{}, fmt.Errorf("pick pose: %w", err)
	}
	if obj.PickPose.Translation, err = posejson.Vector(e.PickTranslation); err != nil {
		return domain.Object{}, fmt.Errorf("pick pose: %w", err)
	}
	if obj.PlacePose.Rotation, err = posejson.Matrix(e.PlaceRotation); err != nil {
		return domain.Object{}, fmt.Errorf("place pose: %w", err)
	}
	if obj.PlacePose.Translation, err = posejson.Vector(e.PlaceTranslation); err != nil {
		return domain.Object{}, fmt.Errorf("place pose: %w", err)
	}
	return obj, nil
}
