// Package jira implements the Jira Cloud REST connector: an
// authenticated request executor with a closed error taxonomy, the two
// pagination contracts the API exposes (legacy offset and token-based),
// an Atlassian Document Format transcoder, and a schema-agnostic field
// normaliser for compacting issue field values.
package jira
