package jira

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCredentials_Complete(t *testing.T) {
	src := MapSource{
		KeyBaseURL:  "https://acme.atlassian.net",
		KeyEmail:    "you@acme.com",
		KeyAPIToken: "secret",
	}

	creds, err := ResolveCredentials(src)

	require.NoError(t, err)
	assert.Equal(t, "https://acme.atlassian.net", creds.BaseURL)
	assert.Equal(t, "you@acme.com", creds.Email)
	assert.Equal(t, "secret", creds.APIToken)
	assert.False(t, creds.IsBearer())
	assert.True(t, creds.IsComplete())
}

func TestResolveCredentials_StripsTrailingSlash(t *testing.T) {
	src := MapSource{
		KeyBaseURL:  "https://acme.atlassian.net/",
		KeyEmail:    "you@acme.com",
		KeyAPIToken: "secret",
	}

	creds, err := ResolveCredentials(src)

	require.NoError(t, err)
	assert.Equal(t, "https://acme.atlassian.net", creds.BaseURL)
}

func TestResolveCredentials_MissingKeysNamed(t *testing.T) {
	tests := []struct {
		name    string
		src     MapSource
		mention string
	}{
		{
			name:    "missing base url",
			src:     MapSource{KeyEmail: "a@b.c", KeyAPIToken: "t"},
			mention: KeyBaseURL,
		},
		{
			name:    "missing email",
			src:     MapSource{KeyBaseURL: "https://x", KeyAPIToken: "t"},
			mention: KeyEmail,
		},
		{
			name:    "missing token",
			src:     MapSource{KeyBaseURL: "https://x", KeyEmail: "a@b.c"},
			mention: KeyAPIToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveCredentials(tt.src)
			require.Error(t, err)
			assert.True(t, IsUnauthorized(err))
			assert.Contains(t, err.Error(), tt.mention)
		})
	}
}

func TestResolveCredentials_PATMode(t *testing.T) {
	src := MapSource{
		KeyBaseURL: "https://jira.acme.com",
		KeyPAT:     "pat-token",
		// Email deliberately absent: PAT mode does not need it.
	}

	creds, err := ResolveCredentials(src)

	require.NoError(t, err)
	assert.True(t, creds.IsBearer())
	assert.Equal(t, "pat-token", creds.PAT)
	assert.True(t, creds.IsComplete())
}

func TestResolveCredentials_EarlierSourceWins(t *testing.T) {
	env := MapSource{KeyBaseURL: "https://from-env"}
	stored := MapSource{
		KeyBaseURL:  "https://from-file",
		KeyEmail:    "file@acme.com",
		KeyAPIToken: "file-token",
	}

	creds, err := ResolveCredentials(env, stored)

	require.NoError(t, err)
	assert.Equal(t, "https://from-env", creds.BaseURL)
	assert.Equal(t, "file@acme.com", creds.Email)
}
