// Package camera provides vertical viewport control over UI content taller
// than the window.
package camera

// Camera tracks how far the content is scrolled.
type Camera struct {
	// Offset is the content Y shown at the top of the viewport
	Offset float32

	// Viewport height (screen size)
	ViewportH float32

	// Content height from the last layout
	ContentH float32
}

// New creates a camera at the top of the content.
func New(viewportH float32) *Camera {
	return &Camera{ViewportH: viewportH}
}

// MaxOffset returns the largest offset that keeps content on screen.
func (c *Camera) MaxOffset() float32 {
	return max(c.ContentH-c.ViewportH, 0)
}

// Resize updates the viewport height and re-clamps the offset.
func (c *Camera) Resize(viewportH float32) {
	if viewportH == c.ViewportH {
		return
	}
	c.ViewportH = viewportH
	c.Offset = clamp(c.Offset, 0, c.MaxOffset())
}

// SetContentHeight records the laid-out content height and re-clamps the offset.
func (c *Camera) SetContentHeight(h float32) {
	c.ContentH = h
	c.Offset = clamp(c.Offset, 0, c.MaxOffset())
}

// Pan moves the view by dy screen pixels; positive scrolls down.
func (c *Camera) Pan(dy float32) {
	c.Offset = clamp(c.Offset+dy, 0, c.MaxOffset())
}

// Reset returns to the top of the content.
func (c *Camera) Reset() {
	c.Offset = 0
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
