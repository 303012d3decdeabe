package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/ui"
)

var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted).
			Padding(0, 1)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorPrimary).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true).
				MarginBottom(1)

	overlayTextStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextPrimary)

	overlayHintStyle = lipgloss.NewStyle().
				Foreground(ui.ColorTextMuted)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextPrimary).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextSecondary)

	emptyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorTextMuted).
			Italic(true)
)
