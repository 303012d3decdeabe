// Package widgets renders the dashboard's building blocks as strings: statistic
// cards, quick-action tiles, the header, titled panels and blank placeholders.
// Renderers are pure. Focus and activation are owned by the caller.
package widgets
