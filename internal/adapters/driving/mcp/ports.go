package mcp

import (
	"github.com/vislab-robotics/boxed-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Query answers dataset questions.
	Query driving.QueryService

	// Stats computes summary statistics.
	Stats driving.StatsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	// Stats is optional; the tools degrade gracefully without it.
	return nil
}
