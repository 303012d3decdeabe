package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/ui"
)

// Panel wraps body in a titled frame:
//
//	╭─ ϟ Quick Actions ─────────────╮
//	│ body                          │
//	╰───────────────────────────────╯
func Panel(title, icon, color, body string, width int) string {
	width = max(width, 10)
	lines := []string{panelHeader(title, icon, color, width)}
	for _, l := range strings.Split(body, "\n") {
		lines = append(lines, panelLine(l, width))
	}
	lines = append(lines, panelFooter(width))
	return strings.Join(lines, "\n")
}

func panelHeader(title, icon, color string, width int) string {
	label := lipgloss.NewStyle().Foreground(ui.ColorTextPrimary).Bold(true).Render(title)
	if icon != "" {
		glyph := lipgloss.NewStyle().Foreground(ui.ColorOr(color, ui.ColorWarning)).Render(ui.Icon(icon))
		label = glyph + " " + label
	}
	// "╭─ " + label + " " ... "╮"
	label = Fit(label, width-6)
	fill := width - 3 - lipgloss.Width(label) - 1 - 1
	if fill < 1 {
		fill = 1
	}
	return borderStyle.Render("╭─ ") + label + borderStyle.Render(" "+strings.Repeat("─", fill)+"╮")
}

func panelFooter(width int) string {
	return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
}

func panelLine(content string, width int) string {
	return borderStyle.Render("│") + " " + line(content, width-4) + " " + borderStyle.Render("│")
}
