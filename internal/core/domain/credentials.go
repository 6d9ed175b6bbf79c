package domain

import (
	"fmt"
	"strings"
)

// Credentials is the immutable connection bundle for a Jira site.
// It is resolved once at startup and never mutated afterwards.
//
// Two authentication modes are supported: Basic auth with an Atlassian
// Cloud email + API token, and Bearer auth with a Data Center personal
// access token. Exactly one mode is populated.
type Credentials struct {
	// BaseURL is the site origin, e.g. "https://acme.atlassian.net".
	// Never carries a trailing slash.
	BaseURL string

	// Email is the account identity for Basic authentication.
	Email string

	// APIToken is the secret paired with Email for Basic authentication.
	APIToken string

	// PAT is a personal access token for Bearer authentication.
	// When set, Email and APIToken are empty.
	PAT string
}

// NewCredentials builds a Basic-auth credential bundle.
// The base URL is normalised to drop any trailing slash.
func NewCredentials(baseURL, email, apiToken string) Credentials {
	return Credentials{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Email:    email,
		APIToken: apiToken,
	}
}

// NewPATCredentials builds a Bearer-auth credential bundle.
func NewPATCredentials(baseURL, pat string) Credentials {
	return Credentials{
		BaseURL: strings.TrimRight(baseURL, "/"),
		PAT:     pat,
	}
}

// IsBearer returns true if the bundle uses Bearer (PAT) authentication.
func (c Credentials) IsBearer() bool {
	return c.PAT != ""
}

// IsComplete returns true if the bundle can authenticate a request.
func (c Credentials) IsComplete() bool {
	if c.BaseURL == "" {
		return false
	}
	if c.IsBearer() {
		return true
	}
	return c.Email != "" && c.APIToken != ""
}

// String returns a loggable description with secrets redacted.
func (c Credentials) String() string {
	if c.IsBearer() {
		return fmt.Sprintf("jira{url: %s, auth: pat(redacted)}", c.BaseURL)
	}
	return fmt.Sprintf("jira{url: %s, email: %s, token: redacted}", c.BaseURL, c.Email)
}
