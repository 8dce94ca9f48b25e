package mcp

import (
	"github.com/campus-labs/tutor-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Index builds and inspects the course index.
	Index driving.IndexService

	// Search provides chunk retrieval.
	Search driving.SearchService

	// Tutor answers questions. Optional: without it only search and
	// stats tools are registered.
	Tutor driving.TutorService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Index == nil {
		return ErrMissingIndexService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
