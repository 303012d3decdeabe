// Package cli implements the dash command-line interface.
//
// Each Cobra command is a thin shell that reads its flags and calls a plain
// function (dashboardCommand, statsCommand, Init) which does the work and
// can be tested without Cobra.
//
// # Command Structure
//
//	dash                 - Open the dashboard
//	dash stats           - Print the statistics grid for a given size
//	dash init            - Create .dash.yaml
//	dash completion      - Generate shell completions
//	dash version         - Print version information
//
// # Logging
//
// While the dashboard runs the terminal belongs to Bubble Tea, so logs go to
// a file (--log-file, log.file, or dash-debug.log). Other commands log to
// stderr. Logging is off unless --debug, DASH_DEBUG or log.level enables it.
package cli
