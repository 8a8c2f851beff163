// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Paths
	DayDir      string `json:"day_dir,omitempty"`      // Run day directory (default runs/<date>_day1)
	ResearchDir string `json:"research_dir,omitempty"` // Shared research tree directory

	// Run parameters
	Date       string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ImageModel string `json:"image_model,omitempty"`
	Iterations int    `json:"iterations,omitempty" validate:"omitempty,min=1,max=12"`

	// Credentials and endpoints
	APIKey       string `json:"api_key,omitempty"`        // Image service key; empty means fallback images
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Optional curator narrative key
	DatabaseURL  string `json:"database_url,omitempty"`   // Gallery record store (sync/reset only)

	// Behavior
	NoImages   bool `json:"no_images,omitempty"`
	UseBrowser bool `json:"use_browser,omitempty"`
	Verbose    bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration values. Malformed configuration is
// fatal at startup, before any artifact writes begin.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. CLI flags take priority over config file values, which take
// priority over defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DayDir == "" {
		result.DayDir = defaults.DayDir
	}
	if result.ResearchDir == "" {
		result.ResearchDir = defaults.ResearchDir
	}
	if result.Date == "" {
		result.Date = defaults.Date
	}
	if result.ImageModel == "" {
		result.ImageModel = defaults.ImageModel
	}
	if result.Iterations == 0 {
		result.Iterations = defaults.Iterations
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so CLI flags always
	// win and no merging happens here.

	return result
}
