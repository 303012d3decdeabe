package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/stats"
)

// MaxRefreshDelay bounds refresh.delay.
const MaxRefreshDelay = time.Minute

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but dash only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade dash, or lower 'version' in your config")
	}

	if err := validateRefresh(cfg.Refresh); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'refresh' section in your .dash.yaml.")
	}

	if cfg.Layout.TabletBreakpoint <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("layout.tablet_breakpoint must be positive, got %d", cfg.Layout.TabletBreakpoint),
			"Use a terminal width in cells, like 100")
	}

	if err := stats.Validate(cfg.Statistics); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid 'statistics' list",
			"Every statistic needs a unique, non-empty id")
	}

	for i, a := range cfg.QuickActions {
		if strings.TrimSpace(a.Title) == "" {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Quick action #%d has no title", i+1),
				"Give every entry in 'quick_actions' a title")
		}
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .dash.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'log' section in your .dash.yaml.")
	}

	return nil
}

func validateRefresh(r RefreshConfig) error {
	if r.Delay < 0 {
		return fmt.Errorf("refresh.delay can't be negative (%s)", r.Delay)
	}
	if r.Delay > MaxRefreshDelay {
		return fmt.Errorf("refresh.delay %s is longer than %s", r.Delay, MaxRefreshDelay)
	}
	if strings.TrimSpace(r.SentinelID) == "" {
		return fmt.Errorf("refresh.sentinel_id is empty")
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	switch strings.ToLower(out.Color) {
	case "", "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("output.color must be auto, always or never, got %q", out.Color)
	}
}

func validateLog(l LogConfig) error {
	if LoggingDisabled(l.Level) {
		return nil
	}
	if _, err := logger.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// LoggingDisabled reports whether level turns logging off.
func LoggingDisabled(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "off", "none":
		return true
	}
	return false
}
