package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/ui"
)

// TileHeight is the height of a quick-action tile, border included.
const TileHeight = 4

// QuickAction is one button in the Quick Actions panel.
type QuickAction struct {
	Title string
	Icon  string
	Color string
}

// DefaultQuickActions returns the built-in actions.
func DefaultQuickActions() []QuickAction {
	return []QuickAction{
		{Title: "Add Product", Icon: "add-box", Color: string(ui.ColorPrimary)},
		{Title: "View Reports", Icon: "assessment", Color: string(ui.ColorSecondary)},
		{Title: "Manage Users", Icon: "group", Color: string(ui.ColorAccent)},
		{Title: "Settings", Icon: "settings", Color: string(ui.ColorGray600)},
	}
}

// QuickActionTile renders an action as a bordered tile width cells wide.
func QuickActionTile(a QuickAction, width int, focused bool) string {
	width = max(width, MinCardWidth)
	style := CardStyle
	if focused {
		style = CardFocusedStyle
	}
	inner := width - 4

	icon := lipgloss.NewStyle().
		Foreground(ui.ColorOr(a.Color, ui.ColorPrimary)).
		Render(ui.Icon(a.Icon))
	title := TitleStyle.Render(a.Title)
	if focused {
		title = ValueStyle.Render(a.Title)
	}

	lines := []string{
		line(icon, inner),
		line(title, inner),
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}
