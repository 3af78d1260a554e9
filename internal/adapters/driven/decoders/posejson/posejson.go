// Package posejson validates the pose arrays shared by the JSON
// record formats of the dataset.
package posejson

import (
	"fmt"

	"github.com/vislab-robotics/boxed-cli/internal/core/domain"
)

// Matrix converts a decoded JSON rotation into a 3x3 matrix.
func Matrix(rows [][]float64) ([3][3]float64, error) {
	var m [3][3]float64
	if len(rows) != 3 {
		return m, fmt.Errorf("%w: rotation has %d rows, want 3", domain.ErrInvalidInput, len(rows))
	}
	for i, row := range rows {
		if len(row) != 3 {
			return m, fmt.Errorf("%w: rotation row %d has %d columns, want 3", domain.ErrInvalidInput, i, len(row))
		}
		copy(m[i][:], row)
	}
	return m, nil
}

// Vector converts a decoded JSON translation into a 3-vector.
func Vector(values []float64) ([3]float64, error) {
	var v [3]float64
	if len(values) != 3 {
		return v, fmt.Errorf("%w: translation has %d components, want 3", domain.ErrInvalidInput, len(values))
	}
	copy(v[:], values)
	return v, nil
}
