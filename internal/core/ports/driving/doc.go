// Package driving defines the inbound ports: the interfaces adapters
// (MCP server, CLI) call to drive the core services.
package driving
