package ui

// Trend and state symbols.
const (
	SymbolTrendUp    = "▲"
	SymbolTrendDown  = "▼"
	SymbolFocus      = "›"
	SymbolRefreshing = "◐"
	SymbolFail       = "✗"
	SymbolSuccess    = "✓"
)

// IconFallback is drawn for unknown or missing icon names.
const IconFallback = "◆"

// icons maps icon names from the data model to single-cell glyphs.
var icons = map[string]string{
	"insights":      IconFallback,
	"trending-up":   "↗",
	"trending-down": "↘",
	"people":        "☺",
	"group":         "☷",
	"shopping-cart": "⊞",
	"attach-money":  "$",
	"add-box":       "⊕",
	"assessment":    "▤",
	"settings":      "⚙",
	"flash-on":      "ϟ",
	"menu":          "≡",
	"notifications": "♪",
	"account":       "◉",
}

// Icon returns the glyph for name, or IconFallback if name is unknown.
func Icon(name string) string {
	if g, ok := icons[name]; ok {
		return g
	}
	return IconFallback
}
