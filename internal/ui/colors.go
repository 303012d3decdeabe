package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Dashboard palette
const (
	// Backgrounds
	ColorDarkBg    = lipgloss.Color("#0F1420")
	ColorSurfaceBg = lipgloss.Color("#171E2E")
	ColorBorder    = lipgloss.Color("#2C3750")

	// Brand
	ColorPrimary   = lipgloss.Color("#3498DB")
	ColorSecondary = lipgloss.Color("#9B59B6")
	ColorAccent    = lipgloss.Color("#E67E22")

	// Semantic
	ColorSuccess = lipgloss.Color("#2ECC71")
	ColorWarning = lipgloss.Color("#F1C40F")
	ColorDanger  = lipgloss.Color("#E74C3C")

	// Text
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#AAB4C8")
	ColorTextMuted     = lipgloss.Color("#66718A")
	ColorGray600       = lipgloss.Color("#7F8C8D")
)

// Color modes accepted by SetColorMode.
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// SetColorMode switches the Lip Gloss renderer's color profile.
// "never" renders plain text, "always" forces true color, and "auto" (or
// anything else) leaves terminal detection in place.
func SetColorMode(mode string) {
	switch strings.ToLower(mode) {
	case ColorModeNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case ColorModeAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// DisableColors switches to monochrome output (for --no-color).
func DisableColors() {
	SetColorMode(ColorModeNever)
}

// ColorOr parses s as a color, falling back to def when s is empty.
func ColorOr(s string, def lipgloss.Color) lipgloss.Color {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return lipgloss.Color(s)
}
