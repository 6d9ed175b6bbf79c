// Package services implements the core use cases on top of the driven
// ports: issue search and mutation, project reads, and the composition
// of retry, caching, and field normalisation around the Jira connector.
package services
