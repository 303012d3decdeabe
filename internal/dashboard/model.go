package dashboard

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/dash/internal/grid"
	"github.com/rileyhilliard/dash/internal/stats"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/widgets"
)

// DefaultTitle is the header title when none is configured.
const DefaultTitle = "Dashboard"

// RecordsMsg carries records reloaded from a data file. Err is set when the
// file could not be loaded; the current records are kept in that case.
type RecordsMsg struct {
	Records []stats.Record
	Err     error
}

// Options configures the screen.
type Options struct {
	Title        string
	QuickActions []widgets.QuickAction
}

// Model is the Bubble Tea model for the dashboard screen.
type Model struct {
	ctrl    *Controller
	title   string
	actions []widgets.QuickAction

	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	body    viewport.Model

	width      int
	height     int
	focus      int
	seenLayout uint64
	showHelp   bool
	alert      *Alert
	loadErr    error
	quitting   bool
}

// New creates the screen model around a controller. The controller is
// mounted by Init and unmounted when the screen quits.
func New(ctrl *Controller, opts Options) Model {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	if opts.QuickActions == nil {
		opts.QuickActions = widgets.DefaultQuickActions()
	}

	dims := ctrl.Provider().Dimensions()
	m := Model{
		ctrl:    ctrl,
		title:   opts.Title,
		actions: opts.QuickActions,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: ui.NewRefreshSpinner(),
		body:    viewport.New(dims.Width, dims.Height),
		width:   dims.Width,
		height:  dims.Height,
	}
	m.syncBody()
	return m
}

// Controller returns the screen's controller.
func (m Model) Controller() *Controller {
	return m.ctrl
}

// Init mounts the controller.
func (m Model) Init() tea.Cmd {
	m.ctrl.Mount()
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ctrl.Provider().Report(msg.Width, msg.Height)
		m.syncBody()

	case refreshDoneMsg:
		if m.ctrl.CompleteRefresh(msg.seq) {
			m.syncBody()
		}

	case RecordsMsg:
		m.applyRecords(msg)
		m.syncBody()

	case spinner.TickMsg:
		// Let the animation stop once the refresh is over.
		if !m.ctrl.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.alert != nil {
		return m.renderAlertOverlay()
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	return m.renderScreen()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.ctrl.Unmount()
		return m, tea.Quit
	}

	// A visible alert swallows input until dismissed.
	if m.alert != nil {
		if key.Matches(msg, m.keys.Dismiss, m.keys.Activate) {
			m.alert = nil
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Dismiss) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Refresh):
		cmd, ok := m.ctrl.RequestRefresh()
		if !ok {
			return m, nil
		}
		m.syncBody()
		return m, tea.Batch(cmd, m.spinner.Tick)

	case key.Matches(msg, m.keys.Menu):
		m.showAlert(Target{Kind: TargetMenu})
	case key.Matches(msg, m.keys.Notifications):
		m.showAlert(Target{Kind: TargetNotifications})
	case key.Matches(msg, m.keys.Profile):
		m.showAlert(Target{Kind: TargetProfile})

	case key.Matches(msg, m.keys.Activate):
		cells := m.cells(m.ctrl.Records())
		if m.focus >= 0 && m.focus < len(cells) {
			cells[m.focus].Activate()
		}

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1)

	case key.Matches(msg, m.keys.PageUp):
		m.body.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.body.HalfViewDown()
	}

	return m, nil
}

func (m *Model) showAlert(t Target) {
	a := m.ctrl.Activate(t)
	m.alert = &a
}

func (m *Model) applyRecords(msg RecordsMsg) {
	if msg.Err != nil {
		m.ctrl.Logger().Warn("data reload failed", "error", msg.Err.Error())
		m.loadErr = msg.Err
		return
	}
	if err := m.ctrl.ReplaceRecords(msg.Records); err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil
	if total := len(msg.Records) + len(m.actions); m.focus >= total {
		m.focus = max(total-1, 0)
	}
}

// cells lists every focusable element: statistics first, then quick actions.
func (m *Model) cells(records []stats.Record) []widgets.Cell {
	cells := make([]widgets.Cell, 0, len(records)+len(m.actions))
	for _, rec := range records {
		cells = append(cells, widgets.Cell{
			Render: func(width int, focused bool) string {
				return widgets.StatisticCard(rec, width, focused)
			},
			OnActivate: func() {
				m.showAlert(Target{Kind: TargetStatistic, Title: rec.DisplayTitle()})
			},
		})
	}
	for _, a := range m.actions {
		cells = append(cells, widgets.Cell{
			Render: func(width int, focused bool) string {
				return widgets.QuickActionTile(a, width, focused)
			},
			OnActivate: func() {
				m.ctrl.Logger().Debug("quick action pressed", "title", a.Title)
				m.showAlert(Target{Kind: TargetQuickAction, Title: a.Title})
			},
		})
	}
	return cells
}

// moveFocus moves focus by rows or columns. Statistics and quick actions are
// two grids stacked vertically; moving down off the last statistics row
// enters the actions grid and moving up off its first row goes back.
func (m *Model) moveFocus(dRow, dCol int) {
	nStats := len(m.ctrl.Records())
	total := nStats + len(m.actions)
	if total == 0 {
		return
	}
	statCols := m.ctrl.Columns()
	actCols := m.actionColumns()

	switch {
	case dCol != 0:
		m.focus = clamp(m.focus+dCol, 0, total-1)

	case dRow > 0 && m.focus < nStats:
		row, col := grid.Position(m.focus, statCols)
		if row < grid.RowCount(nStats, statCols)-1 {
			m.focus = min(m.focus+statCols, nStats-1)
		} else if len(m.actions) > 0 {
			m.focus = nStats + min(col, actCols-1, len(m.actions)-1)
		}

	case dRow > 0:
		if next := m.focus + actCols; next < total {
			m.focus = next
		}

	case dRow < 0 && m.focus >= nStats:
		a := m.focus - nStats
		row, col := grid.Position(a, actCols)
		if row > 0 {
			m.focus -= actCols
		} else if nStats > 0 {
			lastRow := grid.RowCount(nStats, statCols) - 1
			m.focus = min(lastRow*statCols+col, nStats-1)
		}

	case dRow < 0:
		if m.focus-statCols >= 0 {
			m.focus -= statCols
		}
	}
	m.syncBody()
}

func (m Model) actionColumns() int {
	return max(m.ctrl.Provider().Columns(), 1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
