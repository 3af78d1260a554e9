// Package tui provides an interactive terminal browser for the imported
// dataset. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"errors"

	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
)

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query answers dataset questions.
	Query driving.QueryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
