// Package mcp provides the MCP (Model Context Protocol) server adapter
// for jira-mcp. It exposes the issue and project services as typed
// tools for AI assistants.
package mcp

import "errors"

var (
	// ErrMissingIssueService is returned when the issue service is not provided.
	ErrMissingIssueService = errors.New("mcp: issue service is required")

	// ErrMissingProjectService is returned when the project service is not provided.
	ErrMissingProjectService = errors.New("mcp: project service is required")
)
