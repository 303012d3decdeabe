package widgets

// Cell is one focusable element on screen: how to draw it and what happens
// when it is activated. Cells hold no state of their own.
type Cell struct {
	Render     func(width int, focused bool) string
	OnActivate func()
}

// View renders the cell, or a blank block when it has no renderer.
func (c Cell) View(width int, focused bool) string {
	if c.Render == nil {
		return Placeholder(width, 1)
	}
	return c.Render(width, focused)
}

// Activate runs the cell's callback. It reports false when there is none.
func (c Cell) Activate() bool {
	if c.OnActivate == nil {
		return false
	}
	c.OnActivate()
	return true
}
