// Package trajectory decodes object and headset trajectory files:
// pose samples on the scene master clock at a nominal 20 Hz.
package trajectory

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

// Decoder handles object and camera trajectory records.
type Decoder struct{}

// New creates a new trajectory decoder.
func New() *Decoder {
	return &Decoder{}
}

// Kinds returns the record kinds this decoder handles.
func (d *Decoder) Kinds() []domain.RecordKind {
	return []domain.RecordKind{
		domain.KindObjectTrajectory,
		domain.KindCameraTrajectory,
	}
}

// sample is the wire format of one trajectory sample.
type sample struct {
	Rotation    [][]float64 `json:"rotation"`
	Translation []float64   `json:"translation"`
	TimeStamp   int64       `json:"timeStamp"`
}

// Decode parses a trajectory record. Timestamps must be non-decreasing.
func (d *Decoder) Decode(_ context.Context, raw *domain.RawRecord) (*driven.DecodeResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	var samples []sample
	if err := json.Unmarshal(raw.Content, &samples); err != nil {
		return nil, fmt.Errorf("parsing trajectory file: %w", err)
	}

	trajectory := make([]domain.TimedPose, 0, len(samples))
	for i, s := range samples {
		pose, err := toTimedPose(s)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
		if i > 0 && pose.TimestampMS < trajectory[i-1].TimestampMS {
			return nil, fmt.Errorf("%w: sample %d goes back in time (%d < %d)",
				domain.ErrInvalidInput, i, pose.TimestampMS, trajectory[i-1].TimestampMS)
		}
		trajectory = append(trajectory, pose)
	}

	return &driven.DecodeResult{
		Kind:       raw.Kind,
		Object:     raw.Object,
		Trajectory: trajectory,
	}, nil
}

func toTimedPose(s sample) (domain.TimedPose, error) {
	var pose domain.TimedPose
	var err error
	if pose.Rotation, err = posejson.Matrix(s.Rotation); err != nil {
		return pose, err
	}
	if pose.Translation, err = posejson.Vector(s.Translation); err != nil {
		return pose, err
	}
	pose.TimestampMS = s.TimeStamp
	return pose, nil
}
