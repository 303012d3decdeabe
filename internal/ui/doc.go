// Package ui holds the dashboard's shared look: the color palette, icon and
// trend glyphs, and the Bubble Tea spinner used while a refresh is running.
//
// # Color Scheme
//
//	ColorPrimary   (blue)   - Brand, focused borders, spinner
//	ColorSuccess   (green)  - Upward trends
//	ColorDanger    (red)    - Downward trends
//	ColorWarning   (yellow) - Quick Actions panel icon
//	ColorTextMuted (gray)   - Subtitles, footer hints
//
// Use SetColorMode("never") or DisableColors() for monochrome output
// (the --no-color flag and output.color: never).
//
// # Icons
//
// Records reference icons by name ("trending-up", "people", ...). Icon maps a
// name to a single-cell glyph and falls back to IconFallback for unknown names,
// so a missing or misspelled icon never breaks rendering.
package ui
