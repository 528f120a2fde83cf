// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// hexColorPattern matches a #rrggbb palette entry.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Grid span
	BirthDate string `json:"birth_date,omitempty"` // ISO birth date, 2006-01-02
	StartYear int    `json:"start_year,omitempty"` // First year to walk (default: birth year)
	EndYear   int    `json:"end_year,omitempty"`   // Last year to walk (default: current year)

	// Event sources
	PersonalEvents  string `json:"personal_events,omitempty"`  // Path to personal events JSON
	WorldEvents     string `json:"world_events,omitempty"`     // Path to world events JSON
	PresidentEvents string `json:"president_events,omitempty"` // Path to presidency events JSON

	// Toggles
	IncludeWorld      bool `json:"include_world,omitempty"`       // Merge in world events
	IncludePresident  bool `json:"include_president,omitempty"`   // Merge in presidency events
	ShowPersonalDates bool `json:"show_personal_dates,omitempty"` // Expose day-of-month in personal tooltips
	Compact           bool `json:"compact,omitempty"`             // Emoji-only compact rendering
	Verbose           bool `json:"verbose,omitempty"`             // Print detailed debug information

	// Layout
	MeasuredWidth float64 `json:"measured_width,omitempty"` // Measured container width, px
	ViewportWidth float64 `json:"viewport_width,omitempty"` // Viewport width, px

	// Rendering
	Palette  []string `json:"palette,omitempty"`  // Milestone color sequence, #rrggbb
	Format   string   `json:"format,omitempty"`   // Output format: json or html
	Template string   `json:"template,omitempty"` // Path to an HTML template override
	Output   string   `json:"output,omitempty"`   // Output file path (default: stdout)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", c.BirthDate); err != nil {
			return fmt.Errorf("config error: 'birth_date' must be an ISO date: %w", err)
		}
	}

	if c.StartYear < 0 || c.EndYear < 0 {
		return fmt.Errorf("config error: years must be non-negative")
	}

	if c.MeasuredWidth < 0 || math.IsNaN(c.MeasuredWidth) || math.IsInf(c.MeasuredWidth, 0) {
		return fmt.Errorf("config error: 'measured_width' must be a non-negative finite number")
	}
	if c.ViewportWidth < 0 || math.IsNaN(c.ViewportWidth) || math.IsInf(c.ViewportWidth, 0) {
		return fmt.Errorf("config error: 'viewport_width' must be a non-negative finite number")
	}

	for _, color := range c.Palette {
		if !hexColorPattern.MatchString(color) {
			return fmt.Errorf("config error: palette entry %q is not a #rrggbb color", color)
		}
	}

	if c.Format != "" && c.Format != "json" && c.Format != "html" {
		return fmt.Errorf("config error: 'format' must be json or html, got %q", c.Format)
	}

	// Validate file paths exist (if specified)
	for _, path := range []string{c.PersonalEvents, c.WorldEvents, c.PresidentEvents, c.Template} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BirthDate == "" {
		result.BirthDate = defaults.BirthDate
	}
	if result.PersonalEvents == "" {
		result.PersonalEvents = defaults.PersonalEvents
	}
	if result.WorldEvents == "" {
		result.WorldEvents = defaults.WorldEvents
	}
	if result.PresidentEvents == "" {
		result.PresidentEvents = defaults.PresidentEvents
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}

	// Int fields: use default if zero
	if result.StartYear == 0 {
		result.StartYear = defaults.StartYear
	}
	if result.EndYear == 0 {
		result.EndYear = defaults.EndYear
	}

	// Float fields
	if result.MeasuredWidth == 0 {
		result.MeasuredWidth = defaults.MeasuredWidth
	}
	if result.ViewportWidth == 0 {
		result.ViewportWidth = defaults.ViewportWidth
	}

	if len(result.Palette) == 0 {
		result.Palette = defaults.Palette
	}

	if result.Format == "" {
		if defaults.Format != "" {
			result.Format = defaults.Format
		} else {
			result.Format = "json"
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
