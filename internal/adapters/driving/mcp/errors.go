// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the boxed CLI. It lets AI assistants query the imported dataset:
// packing sequences, grasp poses and scene statistics.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
