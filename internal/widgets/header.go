package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/dash/internal/ui"
)

// HeaderButton is one of the header's key-activated buttons.
type HeaderButton struct {
	Key   string
	Icon  string
	Label string
}

// DefaultHeaderButtons are the menu, notifications and profile buttons.
func DefaultHeaderButtons() []HeaderButton {
	return []HeaderButton{
		{Key: "m", Icon: "menu", Label: "menu"},
		{Key: "n", Icon: "notifications", Label: "alerts"},
		{Key: "p", Icon: "account", Label: "profile"},
	}
}

// HeaderInfo is what the header shows.
type HeaderInfo struct {
	Title    string
	Subtitle string
	// Status is drawn after the title, e.g. a spinner frame while refreshing.
	Status  string
	Buttons []HeaderButton
}

// Header renders the screen header (title line, subtitle, divider), width cells wide.
// Buttons sit on the right of the title line and are dropped first when the
// width is too small for both.
func Header(info HeaderInfo, width int) string {
	width = max(width, 1)

	title := HeaderTitleStyle.Render(info.Title)
	if info.Status != "" {
		title += " " + info.Status
	}

	var buttons []string
	for _, b := range info.Buttons {
		buttons = append(buttons,
			ButtonKeyStyle.Render(b.Key)+" "+ButtonStyle.Render(ui.Icon(b.Icon)+" "+b.Label))
	}
	right := strings.Join(buttons, "  ")

	top := line(title, width)
	if right != "" && lipgloss.Width(title)+1+lipgloss.Width(right) <= width {
		top = spread(title, right, width)
	}
	sub := line(HeaderSubtitleStyle.Render(info.Subtitle), width)
	divider := borderStyle.Render(strings.Repeat("─", width))

	return strings.Join([]string{top, sub, divider}, "\n")
}
