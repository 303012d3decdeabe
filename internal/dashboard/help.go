package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders a centered box listing every binding.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, overlayTitleStyle.Render("Keyboard Shortcuts"))

	for _, group := range m.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, helpKeyStyle.Render(h.Key)+helpDescStyle.Render(h.Desc))
		}
	}

	lines = append(lines, "")
	lines = append(lines, overlayHintStyle.Render("Press ? or esc to close"))

	return m.place(overlayBoxStyle.Render(strings.Join(lines, "\n")))
}

// renderAlertOverlay renders the pending alert as a centered dialog.
func (m Model) renderAlertOverlay() string {
	content := strings.Join([]string{
		overlayTitleStyle.Render(m.alert.Title),
		overlayTextStyle.Render(m.alert.Message),
		"",
		overlayHintStyle.Render("Press enter or esc to dismiss"),
	}, "\n")
	return m.place(overlayBoxStyle.Render(content))
}

func (m Model) place(box string) string {
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
	)
}
