// Package driven defines the outbound ports: interfaces the core
// services require from infrastructure adapters (the Jira connector).
package driven
