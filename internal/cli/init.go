package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/rileyhilliard/dash/internal/config"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; defaults to ./.dash.yaml
	Title          string
	SentinelID     string
	RefreshValue   string
	DataFile       string
	Overwrite      bool // Replace an existing config without asking
	NonInteractive bool // Skip prompts and use flags or defaults
}

// Init writes a new .dash.yaml.
func Init(w io.Writer, opts InitOptions) error {
	path := opts.Path
	if path == "" {
		path = filepath.Join(".", config.ConfigFileName)
	}

	if _, err := os.Stat(path); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", path),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	applyInitOptions(cfg, opts)

	if !opts.NonInteractive {
		if err := initForm(cfg).Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --yes")
		}
	}

	if err := config.Save(path, cfg, true); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s Created %s\n\n", ui.SymbolSuccess, path)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  dash          - Open the dashboard")
	fmt.Fprintln(w, "  dash stats    - Print the statistics grid")
	return nil
}

// applyInitOptions copies non-empty flag values over the defaults.
func applyInitOptions(cfg *config.Config, opts InitOptions) {
	if opts.Title != "" {
		cfg.Header.Title = opts.Title
	}
	if opts.SentinelID != "" {
		cfg.Refresh.SentinelID = opts.SentinelID
	}
	if opts.RefreshValue != "" {
		cfg.Refresh.Value = opts.RefreshValue
	}
	if opts.DataFile != "" {
		cfg.DataFile = opts.DataFile
	}
}

func initForm(cfg *config.Config) *huh.Form {
	required := func(what string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", what)
			}
			return nil
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dashboard title").
				Description("Shown in the header and the welcome line").
				Placeholder("Dashboard").
				Value(&cfg.Header.Title).
				Validate(required("title")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Refreshed statistic").
				Description("ID of the statistic whose value the refresh key replaces").
				Placeholder("1").
				Value(&cfg.Refresh.SentinelID).
				Validate(required("statistic id")),
			huh.NewInput().
				Title("Refreshed value").
				Placeholder("$25.2K").
				Value(&cfg.Refresh.Value).
				Validate(required("value")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Statistics file (optional)").
				Description("YAML, TOML or JSON with a top-level statistics list").
				Placeholder("stats.yaml (leave empty for the sample data)").
				Value(&cfg.DataFile),
		),
	)
}
