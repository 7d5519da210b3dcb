// Package config reads and writes the global opsdesk config at
// ~/.config/opsdesk/config.json. Environment variables override the
// file, the file overrides built-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const (
	defaultAPIURL       = "https://adminmanagement.fibepe.com"
	defaultPollInterval = 5 * time.Second
	defaultPageSize     = 10
)

// ConsoleConfig holds reconciliation console settings.
type ConsoleConfig struct {
	PollInterval string `json:"poll_interval,omitempty"` // duration string, default "5s"
	PageSize     int    `json:"page_size,omitempty"`     // default 10
}

// ViewState is the persisted console view state: search and sort
// survive restarts, the current page does not.
type ViewState struct {
	SearchTerm string `json:"search_term,omitempty"`
	SortKey    string `json:"sort_key,omitempty"`
	SortDesc   bool   `json:"sort_desc,omitempty"`
}

// Config is the global opsdesk config.
type Config struct {
	APIURL  string        `json:"api_url,omitempty"`
	Console ConsoleConfig `json:"console"`
	View    ViewState     `json:"view"`
}

// Dir returns ~/.config/opsdesk, creating it if necessary.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "opsdesk")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// Load reads the global config. A missing file yields a zero config.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the global config.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// GetAPIURL returns the admin API base URL.
// Priority: OPSDESK_API_URL env > config.json > default.
func GetAPIURL() string {
	if v := os.Getenv("OPSDESK_API_URL"); v != "" {
		return v
	}
	cfg, err := Load()
	if err == nil && cfg.APIURL != "" {
		return cfg.APIURL
	}
	return defaultAPIURL
}

// GetPollInterval returns the console poll interval.
// Priority: OPSDESK_POLL_INTERVAL env > config.json > 5s.
func GetPollInterval() time.Duration {
	if v := os.Getenv("OPSDESK_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	cfg, err := Load()
	if err == nil && cfg.Console.PollInterval != "" {
		if d, err := time.ParseDuration(cfg.Console.PollInterval); err == nil && d > 0 {
			return d
		}
	}
	return defaultPollInterval
}

// GetPageSize returns the console page size.
// Priority: OPSDESK_PAGE_SIZE env > config.json > 10.
func GetPageSize() int {
	if v := os.Getenv("OPSDESK_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	cfg, err := Load()
	if err == nil && cfg.Console.PageSize > 0 {
		return cfg.Console.PageSize
	}
	return defaultPageSize
}

// GetViewState returns the saved console view state.
func GetViewState() (ViewState, error) {
	cfg, err := Load()
	if err != nil {
		return ViewState{}, err
	}
	return cfg.View, nil
}

// SetViewState saves the console view state.
func SetViewState(state ViewState) error {
	cfg, err := Load()
	if err != nil {
		return err
	}
	cfg.View = state
	return Save(cfg)
}
