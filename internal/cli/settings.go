package cli

import (
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/stats"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/widgets"
)

const defaultLogFileHint = config.DefaultLogFile

// loadSettings finds and loads the config, applies the --data override and
// the config's color mode, and validates the result.
func loadSettings(configPath, dataOverride string) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}
	if dataOverride != "" {
		cwd, _ := os.Getwd()
		cfg.DataFile = config.ResolvePath(cwd, dataOverride)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if !noColor {
		ui.SetColorMode(cfg.Output.Color)
	}
	return cfg, nil
}

// initialRecords returns the records the dashboard starts with: the data
// file when set, then the config's statistics. Nil means the built-in sample.
func initialRecords(cfg *config.Config) ([]stats.Record, error) {
	if cfg.DataFile != "" {
		return stats.LoadFile(cfg.DataFile)
	}
	if len(cfg.Statistics) > 0 {
		return cfg.Statistics, nil
	}
	return nil, nil
}

// quickActions converts configured actions, or returns nil for the defaults.
func quickActions(cfg *config.Config) []widgets.QuickAction {
	if len(cfg.QuickActions) == 0 {
		return nil
	}
	out := make([]widgets.QuickAction, len(cfg.QuickActions))
	for i, a := range cfg.QuickActions {
		out[i] = widgets.QuickAction{Title: a.Title, Icon: a.Icon, Color: a.Color}
	}
	return out
}

// logLevel resolves the effective level. ok is false when logging is off.
func logLevel(cfg *config.Config, debug bool) (level slog.Level, ok bool, err error) {
	if debug || os.Getenv(logger.DebugEnvVar) != "" {
		return slog.LevelDebug, true, nil
	}
	if config.LoggingDisabled(cfg.Log.Level) {
		return 0, false, nil
	}
	level, err = logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return 0, false, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid log level", "Use debug, info, warn, error or off")
	}
	return level, true, nil
}

// tuiLogger opens the log file for a full-screen session. The terminal
// belongs to the renderer, so logs never go to stdout or stderr. The
// returned closer is never nil.
func tuiLogger(cfg *config.Config, debug bool, path string) (logger.Logger, io.Closer, error) {
	level, ok, err := logLevel(cfg, debug)
	if err != nil || !ok {
		return logger.Noop(), io.NopCloser(nil), err
	}
	if path == "" {
		path = cfg.Log.File
	}
	if path == "" {
		path = config.DefaultLogFile
	}
	f, err := tea.LogToFile(path, "dash")
	if err != nil {
		return logger.Noop(), io.NopCloser(nil), errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+path,
			"Check the path in --log-file or log.file")
	}
	return logger.New(f, level), f, nil
}

// cliLogger is for commands that don't take over the terminal: logs go to stderr.
func cliLogger(cfg *config.Config, debug bool) (logger.Logger, error) {
	level, ok, err := logLevel(cfg, debug)
	if err != nil || !ok {
		return logger.Noop(), err
	}
	return logger.New(os.Stderr, level), nil
}
