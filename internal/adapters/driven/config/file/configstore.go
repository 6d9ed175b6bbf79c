// Package file provides the TOML-backed configuration store. It is the
// fallback credential source for shells that do not export the JIRA_*
// environment variables, and the target of `jira-mcp auth login`.
package file

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/atlaslens/jira-mcp/internal/connectors/jira"
)

// Ensure ConfigStore satisfies the credential source interface.
var _ jira.Source = (*ConfigStore)(nil)

// Config is the persisted configuration shape.
type Config struct {
	// BaseURL is the Jira site origin.
	BaseURL string `toml:"base_url"`
	// Email is the account email for Basic authentication.
	Email string `toml:"email"`
	// APIToken is the secret paired with Email.
	APIToken string `toml:"api_token"`
	// PAT is a Data Center personal access token (Bearer auth).
	PAT string `toml:"pat,omitempty"`
}

// ConfigStore loads and saves the config file.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	config   Config
}

// NewConfigStore creates a config store rooted at configDir.
// If configDir is empty, defaults to ~/.jira-mcp/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".jira-mcp")
	}

	// Tokens live in this file: keep it out of group/other reach.
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}
	if err := s.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Load reads the config file from disk.
func (s *ConfigStore) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	return nil
}

// Save writes the config file to disk.
func (s *ConfigStore) Save(cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// Config returns a copy of the loaded configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Lookup resolves a credential key from the stored configuration,
// making the store usable as a jira.Source behind the environment.
func (s *ConfigStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var v string
	switch key {
	case jira.KeyBaseURL:
		v = s.config.BaseURL
	case jira.KeyEmail:
		v = s.config.Email
	case jira.KeyAPIToken:
		v = s.config.APIToken
	case jira.KeyPAT:
		v = s.config.PAT
	}
	return v, v != ""
}
