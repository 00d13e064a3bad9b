// ABOUTME: Configuration for the record store connection
// ABOUTME: Merges config file, environment, and defaults; env wins
package recordstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	// DefaultHost is the hosted record store endpoint.
	DefaultHost = "https://api.trellis-crm.dev"

	// AppName is used for the config directory.
	AppName = "trellis"

	// ConfigFileName is where non-secret settings live.
	ConfigFileName = "store-config.json"

	// DefaultTimeout bounds a single store call.
	DefaultTimeout = 15 * time.Second
)

// Config holds record store connection settings. ProjectID and
// PublicKey identify the tenant and are required; there is no default.
type Config struct {
	Host      string        `json:"host,omitempty"`
	ProjectID string        `json:"-"`
	PublicKey string        `json:"-"`
	Timeout   time.Duration `json:"timeout,omitempty"`
}

// DefaultConfig returns settings without credentials.
func DefaultConfig() *Config {
	return &Config{
		Host:    DefaultHost,
		Timeout: DefaultTimeout,
	}
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// LoadConfig builds the effective config: file settings over defaults,
// environment over both. Missing credentials are a startup error, not
// something the services paper over.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if path, err := configPath(); err == nil {
		if data, err := os.ReadFile(path); err == nil {
			// Invalid config file falls back to defaults
			_ = json.Unmarshal(data, cfg)
		}
	}

	if host := os.Getenv("TRELLIS_HOST"); host != "" {
		cfg.Host = host
	}
	cfg.ProjectID = os.Getenv("TRELLIS_PROJECT_ID")
	cfg.PublicKey = os.Getenv("TRELLIS_PUBLIC_KEY")

	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.ProjectID == "" || cfg.PublicKey == "" {
		return nil, fmt.Errorf("TRELLIS_PROJECT_ID and TRELLIS_PUBLIC_KEY must be set")
	}

	return cfg, nil
}

// Save persists the non-secret settings to the config file.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
