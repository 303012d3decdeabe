package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/stats"
	"github.com/rileyhilliard/dash/internal/ui"
)

// Card geometry, border included.
const (
	MinCardWidth = 10
	CardHeight   = 6
)

// StatisticCard renders one statistic as a bordered card exactly width cells
// wide and CardHeight lines tall.
func StatisticCard(rec stats.Record, width int, focused bool) string {
	rec = rec.WithDefaults()
	width = max(width, MinCardWidth)

	style := CardStyle
	if focused {
		style = CardFocusedStyle
	}
	// Border takes one cell on each side, padding one more.
	inner := width - 4

	icon := lipgloss.NewStyle().
		Foreground(ui.ColorOr(rec.IconColor, ui.ColorPrimary)).
		Render(ui.Icon(rec.Icon))

	lines := []string{
		spread(icon, trendBadge(rec), inner),
		line(ValueStyle.Render(rec.Value), inner),
		line(TitleStyle.Render(rec.DisplayTitle()), inner),
		line(SubtitleStyle.Render(rec.Subtitle), inner),
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// trendBadge renders "▲ +12%" in the trend color, or nothing without a delta.
func trendBadge(rec stats.Record) string {
	if strings.TrimSpace(rec.TrendValue) == "" {
		return ""
	}
	if rec.Trend == stats.TrendDown {
		return TrendDownStyle.Render(ui.SymbolTrendDown + " " + rec.TrendValue)
	}
	return TrendUpStyle.Render(ui.SymbolTrendUp + " " + rec.TrendValue)
}

// Placeholder renders a blank block used to pad the last grid row.
func Placeholder(width, height int) string {
	width = max(width, 0)
	height = max(height, 1)
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}
