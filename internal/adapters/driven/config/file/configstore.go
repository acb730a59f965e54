// Package file provides the TOML-backed application configuration.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the user-editable settings.
type Config struct {
	// GitHubToken authenticates GitHub API calls. Optional:
	// unauthenticated access proceeds at lower rate limits.
	GitHubToken string `toml:"github_token"`

	// IndexPath overrides the local index file location.
	IndexPath string `toml:"index_path"`

	// DefaultMode is the retrieval mode at startup ("github" or "local").
	DefaultMode string `toml:"default_mode"`
}

// ConfigStore is a file-based configuration store using TOML.
// Configuration lives in a TOML file within the expressdocs config
// directory.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      Config
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.expressdocs/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".expressdocs")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	// Load existing data if file exists
	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// Config returns a copy of the current configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// GitHubToken returns the configured token, letting the environment
// override the file (EXPRESSDOCS_GITHUB_TOKEN, then GITHUB_TOKEN).
func (s *ConfigStore) GitHubToken() string {
	if v := os.Getenv("EXPRESSDOCS_GITHUB_TOKEN"); v != "" {
		return v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		return v
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.GitHubToken
}

// Save writes the configuration to disk.
func (s *ConfigStore) Save(cfg Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(s.filePath, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s.cfg = cfg
	return nil
}

// Load reads the configuration file from disk.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	s.cfg = loaded
	return nil
}
