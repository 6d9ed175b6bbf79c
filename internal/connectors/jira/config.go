package jira

import (
	"os"

	"github.com/atlaslens/jira-mcp/internal/core/domain"
)

// Configuration keys for credential resolution.
const (
	// KeyBaseURL is the Jira site origin, e.g. "https://acme.atlassian.net".
	KeyBaseURL = "JIRA_BASE_URL"

	// KeyEmail is the account email for Basic authentication.
	KeyEmail = "JIRA_EMAIL"

	// KeyAPIToken is the API token paired with the email.
	KeyAPIToken = "JIRA_API_TOKEN"

	// KeyPAT is a Data Center personal access token (Bearer auth).
	// When set it takes precedence over email + API token.
	KeyPAT = "JIRA_PAT"
)

// Source provides configuration values by key.
type Source interface {
	// Lookup returns the value for a key and whether it is set.
	Lookup(key string) (string, bool)
}

// EnvSource resolves configuration keys from environment variables.
type EnvSource struct{}

// Lookup returns the environment value; empty counts as unset.
func (EnvSource) Lookup(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

// MapSource resolves configuration keys from a fixed map. Used by the
// file-backed config store adapter and by tests.
type MapSource map[string]string

// Lookup returns the map value; empty counts as unset.
func (m MapSource) Lookup(key string) (string, bool) {
	v := m[key]
	return v, v != ""
}

// ResolveCredentials reads the connection settings from the given
// sources, earlier sources winning per key. It either returns a complete
// credential bundle or an *AuthError naming the first missing key; it
// never partially succeeds. The base URL is normalised to drop any
// trailing slash.
func ResolveCredentials(sources ...Source) (domain.Credentials, error) {
	lookup := func(key string) string {
		for _, s := range sources {
			if v, ok := s.Lookup(key); ok {
				return v
			}
		}
		return ""
	}

	baseURL := lookup(KeyBaseURL)
	if baseURL == "" {
		return domain.Credentials{}, &AuthError{Reason: KeyBaseURL + " is not set"}
	}

	if pat := lookup(KeyPAT); pat != "" {
		return domain.NewPATCredentials(baseURL, pat), nil
	}

	email := lookup(KeyEmail)
	if email == "" {
		return domain.Credentials{}, &AuthError{Reason: KeyEmail + " is not set"}
	}
	token := lookup(KeyAPIToken)
	if token == "" {
		return domain.Credentials{}, &AuthError{Reason: KeyAPIToken + " is not set"}
	}

	return domain.NewCredentials(baseURL, email, token), nil
}
