package mcp

import (
	"github.com/atlaslens/jira-mcp/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. This provides a single injection point for dependency
// injection.
type Ports struct {
	// Issues provides issue search and mutation.
	Issues driving.IssueService

	// Projects provides project and field-catalog reads.
	Projects driving.ProjectService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Issues == nil {
		return ErrMissingIssueService
	}
	if p.Projects == nil {
		return ErrMissingProjectService
	}
	return nil
}
