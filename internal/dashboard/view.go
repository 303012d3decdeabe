package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/grid"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/widgets"
)

const (
	quickActionsTitle = "Quick Actions"
	quickActionsIcon  = "flash-on"
)

// bodyLayout is the rendered scrollable body and where the focused cell is in it.
type bodyLayout struct {
	content     string
	focusTop    int
	focusHeight int
}

func (m Model) renderScreen() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.body.View(),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	state := m.ctrl.State()
	status := ""
	if state.Busy {
		status = m.spinner.View()
	}
	return widgets.Header(widgets.HeaderInfo{
		Title:    m.title,
		Subtitle: fmt.Sprintf("Welcome back, %s user!", state.DeviceClass),
		Status:   status,
		Buttons:  widgets.DefaultHeaderButtons(),
	}, max(m.width, 1))
}

func (m Model) renderFooter() string {
	var lines []string
	if m.loadErr != nil {
		msg := strings.SplitN(m.loadErr.Error(), "\n", 2)[0]
		lines = append(lines, widgets.TrendDownStyle.Render(widgets.Fit(msg, max(m.width-2, 1))))
	}
	lines = append(lines, FooterStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	return strings.Join(lines, "\n")
}

// syncBody re-renders the scrollable body into the viewport, resets scroll
// when the layout version changed and keeps the focused cell in view.
func (m *Model) syncBody() {
	headerHeight := lipgloss.Height(m.renderHeader())
	footerHeight := lipgloss.Height(m.renderFooter())
	m.body.Width = max(m.width, 1)
	m.body.Height = max(m.height-headerHeight-footerHeight, 1)

	layout := m.renderBody()
	m.body.SetContent(layout.content)

	if v := m.ctrl.LayoutVersion(); v != m.seenLayout {
		m.seenLayout = v
		m.body.GotoTop()
	}

	if layout.focusTop < m.body.YOffset {
		m.body.SetYOffset(layout.focusTop)
	} else if bottom := layout.focusTop + layout.focusHeight; bottom > m.body.YOffset+m.body.Height {
		m.body.SetYOffset(bottom - m.body.Height)
	}
}

// renderBody lays out the statistics grid and the quick actions panel.
func (m *Model) renderBody() bodyLayout {
	state := m.ctrl.State()
	provider := m.ctrl.Provider()
	pad := provider.AdaptivePadding()
	width := max(m.width-2*pad, widgets.MinCardWidth)
	cells := m.cells(state.Records)
	log := m.ctrl.Logger()

	var out bodyLayout
	var lines []string

	// Statistics
	columns := StatColumns(state.DeviceClass, state.Orientation)
	statLines, top := m.renderGrid(cells[:len(state.Records)], 0, columns, width, pad, widgets.CardHeight)
	if len(state.Records) == 0 {
		statLines = []string{emptyStyle.Render("No statistics to show")}
	}
	if m.focus < len(state.Records) {
		out.focusTop, out.focusHeight = top, widgets.CardHeight
	}
	lines = append(lines, statLines...)
	lines = append(lines, "")
	log.Debug("grid rendered",
		"items", len(state.Records),
		"columns", columns,
		"rows", grid.RowCount(len(state.Records), columns),
		"layout_version", m.ctrl.LayoutVersion())

	// Quick actions, inside a panel: border and padding take 4 cells.
	if len(m.actions) > 0 {
		panelInner := width - 4
		actionLines, actionTop := m.renderGrid(cells[len(state.Records):], len(state.Records), m.actionColumns(), panelInner, 1, widgets.TileHeight)
		if m.focus >= len(state.Records) {
			// One line for the panel header.
			out.focusTop, out.focusHeight = len(lines)+1+actionTop, widgets.TileHeight
		}
		panel := widgets.Panel(quickActionsTitle, quickActionsIcon, string(ui.ColorWarning), strings.Join(actionLines, "\n"), width)
		lines = append(lines, panel)
	}

	out.content = lipgloss.NewStyle().PaddingLeft(pad).Render(strings.Join(lines, "\n"))
	return out
}

// renderGrid renders cells in rows of columns. offset is the focus index of
// the first cell. It also returns the line where the focused cell's row
// starts, if the focused cell is among these cells.
func (m *Model) renderGrid(cells []widgets.Cell, offset, columns, width, gap, cellHeight int) ([]string, int) {
	indexes := make([]int, len(cells))
	for i := range indexes {
		indexes[i] = i
	}
	rows, err := grid.Layout(indexes, columns)
	if err != nil {
		m.ctrl.Logger().Error("grid layout failed", "error", err.Error())
		return nil, 0
	}

	cellWidth := widgets.ColumnWidth(width, columns, gap, widgets.MinCardWidth)
	var lines []string
	focusTop := 0
	for r, row := range rows {
		blocks := make([]string, 0, len(row))
		for _, slot := range row {
			i, ok := slot.Value()
			if !ok {
				m.ctrl.Logger().Debug("placeholder cell", "row", r)
				blocks = append(blocks, widgets.Placeholder(cellWidth, cellHeight))
				continue
			}
			focused := offset+i == m.focus
			if focused {
				focusTop = len(lines)
			}
			blocks = append(blocks, cells[i].View(cellWidth, focused))
		}
		lines = append(lines, strings.Split(widgets.JoinRow(blocks, gap), "\n")...)
	}
	return lines, focusTop
}
