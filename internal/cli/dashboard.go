package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/dash/internal/dashboard"
	"github.com/rileyhilliard/dash/internal/logger"
	"github.com/rileyhilliard/dash/internal/responsive"
	"github.com/rileyhilliard/dash/internal/stats"
)

type dashboardOptions struct {
	ConfigPath string
	DataFile   string
	Debug      bool
	LogFile    string
}

// dashboardCommand runs the full-screen dashboard until the user quits.
func dashboardCommand(opts dashboardOptions) error {
	cfg, err := loadSettings(opts.ConfigPath, opts.DataFile)
	if err != nil {
		return err
	}

	log, closer, err := tuiLogger(cfg, opts.Debug, opts.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger.SetDefault(log)

	records, err := initialRecords(cfg)
	if err != nil {
		return err
	}

	providerOpts := []responsive.Option{
		responsive.WithBreakpoint(cfg.Layout.TabletBreakpoint),
		responsive.WithLogger(log),
	}
	if dims, ok := responsive.TerminalDimensions(int(os.Stdout.Fd())); ok {
		providerOpts = append(providerOpts, responsive.WithDimensions(dims.Width, dims.Height))
	}
	provider := responsive.NewProvider(providerOpts...)

	ctrl, err := dashboard.NewController(provider, records, dashboard.RefreshPolicy{
		Delay:      cfg.Refresh.Delay,
		SentinelID: cfg.Refresh.SentinelID,
		Value:      cfg.Refresh.Value,
	}, log)
	if err != nil {
		return err
	}
	defer ctrl.Unmount()

	model := dashboard.New(ctrl, dashboard.Options{
		Title:        cfg.Header.Title,
		QuickActions: quickActions(cfg),
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.DataFile != "" && cfg.Watch {
		go func() {
			err := stats.Watch(ctx, cfg.DataFile, stats.DefaultDebounce, log, func(records []stats.Record, err error) {
				p.Send(dashboard.RecordsMsg{Records: records, Err: err})
			})
			if err != nil {
				log.Warn("data file watch stopped", "path", cfg.DataFile, "error", err.Error())
			}
		}()
	}

	log.Info("dashboard starting",
		"records", len(ctrl.Records()),
		"data_file", cfg.DataFile,
		"watch", cfg.Watch)

	_, err = p.Run()
	return err
}
