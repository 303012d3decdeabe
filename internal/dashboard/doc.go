// Package dashboard implements the dashboard screen: a header, a responsive
// grid of statistic cards and a Quick Actions panel.
//
// # Architecture
//
// The screen is a Bubble Tea model (Model) wrapped around a Controller:
//
//   - Controller: owns the records, the refresh state machine and the
//     orientation derived from dimension notifications
//   - Model: turns key presses and window sizes into controller calls and
//     renders the result with the widgets package
//
// # Refresh
//
// A refresh moves the controller from PhaseIdle to PhaseRefreshing and
// returns a single tea.Tick command. When the tick fires, refreshDoneMsg
// carries the sequence number back and CompleteRefresh replaces the sentinel
// record's value. Requests while refreshing are ignored, and completions that
// arrive after Unmount do nothing.
//
// # Layout
//
// Column count comes from StatColumns:
//
//	tablet + landscape  4
//	landscape           2
//	tablet              2
//	otherwise           1
//
// Every dimension notification bumps LayoutVersion, which resets the body's
// scroll position.
package dashboard
