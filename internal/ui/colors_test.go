package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestColorConstants(t *testing.T) {
	colors := []lipgloss.Color{
		ColorDarkBg,
		ColorSurfaceBg,
		ColorBorder,
		ColorPrimary,
		ColorSecondary,
		ColorAccent,
		ColorSuccess,
		ColorWarning,
		ColorDanger,
		ColorTextPrimary,
		ColorTextSecondary,
		ColorTextMuted,
		ColorGray600,
	}

	for _, color := range colors {
		colorStr := string(color)
		assert.NotEmpty(t, colorStr, "color should not be empty")
		assert.True(t, colorStr[0] == '#', "color should start with #: %s", colorStr)
		assert.Len(t, colorStr, 7, "color should be 7 chars (#RRGGBB): %s", colorStr)
	}
}

func TestSetColorMode(t *testing.T) {
	original := lipgloss.ColorProfile()
	defer lipgloss.SetColorProfile(original)

	SetColorMode(ColorModeNever)
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())

	SetColorMode(ColorModeAlways)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	// auto leaves the current profile alone
	SetColorMode(ColorModeAuto)
	assert.Equal(t, termenv.TrueColor, lipgloss.ColorProfile())

	DisableColors()
	assert.Equal(t, termenv.Ascii, lipgloss.ColorProfile())
	assert.Equal(t, "plain", lipgloss.NewStyle().Foreground(ColorDanger).Render("plain"))
}

func TestColorOr(t *testing.T) {
	assert.Equal(t, ColorPrimary, ColorOr("", ColorPrimary))
	assert.Equal(t, ColorPrimary, ColorOr("   ", ColorPrimary))
	assert.Equal(t, lipgloss.Color("#123456"), ColorOr("#123456", ColorPrimary))
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "↗", Icon("trending-up"))
	assert.Equal(t, "$", Icon("attach-money"))
	assert.Equal(t, IconFallback, Icon("insights"))
	assert.Equal(t, IconFallback, Icon(""))
	assert.Equal(t, IconFallback, Icon("does-not-exist"))
}

func TestNewRefreshSpinner(t *testing.T) {
	s := NewRefreshSpinner()
	assert.Equal(t, RefreshFrames.Frames, s.Spinner.Frames)
	assert.NotEmpty(t, s.View())
}
