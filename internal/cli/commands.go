package cli

import (
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/util"
)

// Command flags
var (
	statsWidth  int
	statsHeight int
	statsFormat string

	initTitle        string
	initSentinel     string
	initRefreshValue string
	initForce        bool
	initYes          bool
)

// statsCmd prints the statistics grid without taking over the terminal.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the statistics grid",
	Long: `Print the statistics grid as the dashboard would lay it out.

The width and height default to the current terminal size (80x24 when
output is not a terminal). Use them to preview other layouts.

Examples:
  dash stats
  dash stats --width 120 --height 40
  dash stats --width 60 --height 80 --format json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statsCommand(cmd.OutOrStdout(), statsOptions{
			ConfigPath: cfgFile,
			DataFile:   dataFile,
			Width:      statsWidth,
			Height:     statsHeight,
			Format:     statsFormat,
		})
	},
}

// initCmd creates a new .dash.yaml
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .dash.yaml config in the current directory",
	Long: `Create a .dash.yaml config in the current directory.

Prompts for the dashboard title, the refreshed statistic and an optional
statistics file. Use --yes to skip the prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(cmd.OutOrStdout(), InitOptions{
			Path:           cfgFile,
			Title:          initTitle,
			SentinelID:     initSentinel,
			RefreshValue:   initRefreshValue,
			DataFile:       dataFile,
			Overwrite:      initForce,
			NonInteractive: initYes,
		})
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for dash.

To load completions:

Bash:
  dash completion bash > /etc/bash_completion.d/dash

Zsh:
  dash completion zsh > "${fpath[1]}/_dash"

Fish:
  dash completion fish > ~/.config/fish/completions/dash.fish`,
	ValidArgs: slices.Clone(completionShells),
	Args:      cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletion(cmd.Root(), cmd.OutOrStdout(), args[0])
	},
}

func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(w)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletion(w)
	}
	return errors.InvalidArgument("Unknown shell "+shell,
		"Use one of: "+util.JoinOrNone(completionShells))
}

func init() {
	statsCmd.Flags().IntVar(&statsWidth, "width", 0, "layout width in cells (default: terminal width)")
	statsCmd.Flags().IntVar(&statsHeight, "height", 0, "layout height in cells (default: terminal height)")
	statsCmd.Flags().StringVar(&statsFormat, "format", "table", "output format: table, markdown, csv or json")

	initCmd.Flags().StringVar(&initTitle, "title", "", "dashboard title")
	initCmd.Flags().StringVar(&initSentinel, "refresh-id", "", "statistic the refresh key updates")
	initCmd.Flags().StringVar(&initRefreshValue, "refresh-value", "", "value the refresh key sets")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVarP(&initYes, "yes", "y", false, "skip prompts and use flags or defaults")

	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
