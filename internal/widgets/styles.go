package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rileyhilliard/dash/internal/ui"
)

// Ellipsis is appended to text cut to fit a cell.
const Ellipsis = "…"

var (
	// Card styles. The width is set per render so a card fills its grid cell.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorBorder).
			Padding(0, 1)

	CardFocusedStyle = CardStyle.
				BorderForeground(ui.ColorPrimary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted)

	TrendUpStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSuccess)

	TrendDownStyle = lipgloss.NewStyle().
			Foreground(ui.ColorDanger)

	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextPrimary).
				Bold(true)

	HeaderSubtitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextSecondary)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary)

	ButtonKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true)

	borderStyle = lipgloss.NewStyle().Foreground(ui.ColorBorder)
)

// Fit truncates s to width visible cells, ANSI-aware, ending in an ellipsis
// when it had to cut.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, Ellipsis)
}

// line pads content with spaces out to width, truncating first if needed.
func line(content string, width int) string {
	content = Fit(content, width)
	if pad := width - lipgloss.Width(content); pad > 0 {
		content += strings.Repeat(" ", pad)
	}
	return content
}

// spread places left and right on one line of the given width, right-aligning
// right. left is truncated when both don't fit.
func spread(left, right string, width int) string {
	rw := lipgloss.Width(right)
	if rw >= width {
		return line(right, width)
	}
	left = Fit(left, width-rw-1)
	gap := width - lipgloss.Width(left) - rw
	return left + strings.Repeat(" ", gap) + right
}

// JoinRow places blocks side by side with gap blank columns between them.
func JoinRow(blocks []string, gap int) string {
	if len(blocks) == 0 {
		return ""
	}
	parts := make([]string, 0, len(blocks)*2-1)
	spacer := strings.Repeat(" ", max(gap, 0))
	for i, b := range blocks {
		if i > 0 && gap > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// ColumnWidth splits total cells across columns separated by gap cells.
// The result never drops below minWidth.
func ColumnWidth(total, columns, gap, minWidth int) int {
	if columns < 1 {
		columns = 1
	}
	w := (total - gap*(columns-1)) / columns
	if w < minWidth {
		return minWidth
	}
	return w
}
