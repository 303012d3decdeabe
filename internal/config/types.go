package config

import (
	"time"

	"github.com/rileyhilliard/dash/internal/stats"
)

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .dash.yaml configuration file.
type Config struct {
	Version      int                 `yaml:"version" mapstructure:"version"`
	Header       HeaderConfig        `yaml:"header" mapstructure:"header"`
	Refresh      RefreshConfig       `yaml:"refresh" mapstructure:"refresh"`
	Layout       LayoutConfig        `yaml:"layout" mapstructure:"layout"`
	Statistics   []stats.Record      `yaml:"statistics,omitempty" mapstructure:"statistics"`
	QuickActions []QuickActionConfig `yaml:"quick_actions,omitempty" mapstructure:"quick_actions"`

	// DataFile is an optional YAML, TOML or JSON file with a top-level
	// "statistics" list. When set it replaces Statistics.
	DataFile string `yaml:"data_file,omitempty" mapstructure:"data_file"`

	// Watch reloads DataFile when it changes.
	Watch bool `yaml:"watch" mapstructure:"watch"`

	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// HeaderConfig controls the screen header.
type HeaderConfig struct {
	Title string `yaml:"title" mapstructure:"title"`
}

// RefreshConfig controls what the refresh key does.
type RefreshConfig struct {
	// Delay before the refreshed value appears.
	Delay time.Duration `yaml:"delay" mapstructure:"delay"`

	// SentinelID is the statistic whose value the refresh replaces.
	SentinelID string `yaml:"sentinel_id" mapstructure:"sentinel_id"`

	// Value is the replacement value.
	Value string `yaml:"value" mapstructure:"value"`
}

// MarshalYAML writes Delay as a duration string ("1.5s") instead of nanoseconds.
func (r RefreshConfig) MarshalYAML() (any, error) {
	return struct {
		Delay      string `yaml:"delay"`
		SentinelID string `yaml:"sentinel_id"`
		Value      string `yaml:"value"`
	}{r.Delay.String(), r.SentinelID, r.Value}, nil
}

// LayoutConfig controls responsive layout.
type LayoutConfig struct {
	// TabletBreakpoint is the terminal width, in cells, at which the screen
	// switches from the mobile to the tablet layout.
	TabletBreakpoint int `yaml:"tablet_breakpoint" mapstructure:"tablet_breakpoint"`
}

// QuickActionConfig is a button in the Quick Actions panel.
type QuickActionConfig struct {
	Title string `yaml:"title" mapstructure:"title"`
	Icon  string `yaml:"icon,omitempty" mapstructure:"icon"`
	Color string `yaml:"color,omitempty" mapstructure:"color"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`
}

// LogConfig controls debug logging.
type LogConfig struct {
	// Level is "debug", "info", "warn", "error" or "off".
	Level string `yaml:"level" mapstructure:"level"`

	// File receives log output while the dashboard owns the terminal.
	File string `yaml:"file,omitempty" mapstructure:"file"`
}

// DefaultLogFile is where the dashboard logs when logging is enabled and no file is set.
const DefaultLogFile = "dash-debug.log"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Header: HeaderConfig{
			Title: "Dashboard",
		},
		Refresh: RefreshConfig{
			Delay:      1500 * time.Millisecond,
			SentinelID: "1",
			Value:      "$25.2K",
		},
		Layout: LayoutConfig{
			TabletBreakpoint: 100,
		},
		Watch: true,
		Output: OutputConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "off",
		},
	}
}
