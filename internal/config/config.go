package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/stechuhr/internal/clock"
	"github.com/stechuhr/internal/work"
)

// ColorMode controls when the report is rendered with styling.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

type Config struct {
	WeeklyGoal    string    `yaml:"WeeklyGoal"`
	DailyGoal     string    `yaml:"DailyGoal,omitempty"`
	EarliestStart string    `yaml:"EarliestStart"`
	TimeZone      string    `yaml:"TimeZone,omitempty"`
	Color         ColorMode `yaml:"Color"`
}

func Load() (*Config, error) {
	configPath := getConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.WeeklyGoal == "" {
		cfg.WeeklyGoal = work.DefaultWeeklyGoal
	}
	if cfg.EarliestStart == "" {
		cfg.EarliestStart = work.EarliestStart
	}
	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	return &cfg, nil
}

func Save(cfg *Config) error {
	configPath := getConfigPath()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".stechuhr.yaml")
}

func getDefaultConfig() *Config {
	return &Config{
		WeeklyGoal:    work.DefaultWeeklyGoal,
		EarliestStart: work.EarliestStart,
		Color:         ColorAuto,
	}
}

// GetLocation resolves the configured timezone, falling back to the system
// local zone.
func (c *Config) GetLocation() *time.Location {
	if c.TimeZone != "" {
		if loc, err := time.LoadLocation(c.TimeZone); err == nil {
			return loc
		}
	}
	return time.Local
}

// Now returns the current time in the configured location.
func (c *Config) Now() time.Time {
	return time.Now().In(c.GetLocation())
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if c.WeeklyGoal == "" && c.DailyGoal == "" {
		return &ValidationError{Field: "WeeklyGoal", Message: "a weekly or daily goal is required"}
	}
	if c.WeeklyGoal != "" {
		if _, err := clock.ParseSpan(c.WeeklyGoal); err != nil {
			return &ValidationError{Field: "WeeklyGoal", Message: err.Error()}
		}
	}
	if c.DailyGoal != "" {
		if _, err := clock.ParseSpan(c.DailyGoal); err != nil {
			return &ValidationError{Field: "DailyGoal", Message: err.Error()}
		}
	}
	if _, err := clock.ParseSpan(c.EarliestStart); err != nil {
		return &ValidationError{Field: "EarliestStart", Message: err.Error()}
	}
	if c.TimeZone != "" {
		if _, err := time.LoadLocation(c.TimeZone); err != nil {
			return &ValidationError{Field: "TimeZone", Message: fmt.Sprintf("unknown timezone %q", c.TimeZone)}
		}
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return &ValidationError{Field: "Color", Message: "must be auto, always, or never"}
	}
	return nil
}
