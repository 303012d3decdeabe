package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/util"
)

// Global flags
var (
	cfgFile   string
	dataFile  string
	debugFlag bool
	logFile   string
	noColor   bool
)

// rootCmd runs the dashboard when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "Terminal dashboard with a responsive statistics grid",
	Long: `dash shows a dashboard of statistic cards and quick actions in your terminal.

The grid adapts to the window: one column on narrow portrait windows, two on
landscape or tablet-width windows, four on wide landscape windows.

Keys:
  r          refresh
  arrows     move focus
  enter      open the focused card or action
  m / n / p  menu, notifications, profile
  ?          help
  q          quit

Examples:
  dash
  dash --data stats.yaml
  dash stats --width 120 --height 40`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			ui.DisableColors()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(dashboardOptions{
			ConfigPath: cfgFile,
			DataFile:   dataFile,
			Debug:      debugFlag,
			LogFile:    logFile,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .dash.yaml, then ~/.config/dash/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "statistics file (YAML, TOML or JSON)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (default: "+defaultLogFileHint+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" {
				if hint := suggestCommands(name); hint != "" {
					fmt.Fprintln(os.Stderr, hint)
				}
			}
			fmt.Fprintf(os.Stderr, "\nRun 'dash --help' to see the available commands.\n")
		}
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the command name out of cobra's
// `unknown command "foo" for "dash"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

// suggestCommands returns a "Did you mean" line for a mistyped command name,
// or "" when nothing is close.
func suggestCommands(name string) string {
	var names []string
	for _, c := range rootCmd.Commands() {
		if c.Hidden || !c.IsAvailableCommand() {
			continue
		}
		names = append(names, c.Name())
	}
	similar := util.SuggestSimilar(name, names, 3)
	if len(similar) == 0 {
		return ""
	}
	return "\nDid you mean: " + util.JoinOrNone(similar) + "?"
}
