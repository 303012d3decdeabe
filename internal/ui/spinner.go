package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RefreshFrames is the spinner animation shown while a refresh is in flight.
var RefreshFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10,
}

// NewRefreshSpinner returns a Bubble Tea spinner styled for the dashboard header.
func NewRefreshSpinner() spinner.Model {
	return spinner.New(
		spinner.WithSpinner(RefreshFrames),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)
}
