package world

import "github.com/vovakirdan/sandrunner/internal/core"

// Camera follows the player horizontally across a level.
// Smoothing is a fixed fraction per Follow call, independent of frame time.
type Camera struct {
	x         float64
	viewportW float64
	viewportH float64
	levelW    float64
	levelH    float64
	smoothing float64
}

// NewCamera creates a camera with the given viewport and smoothing fraction.
func NewCamera(viewportW, viewportH, smoothing float64) *Camera {
	return &Camera{
		viewportW: viewportW,
		viewportH: viewportH,
		levelW:    viewportW,
		levelH:    viewportH,
		smoothing: core.ClampF(smoothing, 0, 1),
	}
}

// SetLevelBounds updates the level extent and re-clamps the offset.
func (c *Camera) SetLevelBounds(width, height float64) {
	c.levelW = width
	c.levelH = height
	c.x = c.clamp(c.x)
}

// Follow eases the offset toward centering target.
func (c *Camera) Follow(target Entity) {
	if c == nil || target == nil {
		return
	}
	c.x += (c.targetX(target) - c.x) * c.smoothing
	c.x = c.clamp(c.x)
}

// Snap centers on target immediately, used at level starts.
func (c *Camera) Snap(target Entity) {
	if c == nil || target == nil {
		return
	}
	c.x = c.clamp(c.targetX(target))
}

func (c *Camera) targetX(target Entity) float64 {
	b := target.Bounds()
	return b.X - c.viewportW/2 + b.W/2
}

// clamp keeps the offset within [0, levelW-viewportW]; narrow levels pin to 0.
func (c *Camera) clamp(x float64) float64 {
	maxX := c.levelW - c.viewportW
	if maxX < 0 {
		maxX = 0
	}
	return core.ClampF(x, 0, maxX)
}

// X returns the horizontal offset.
func (c *Camera) X() float64 { return c.x }

// ViewportWidth returns the viewport width in world units.
func (c *Camera) ViewportWidth() float64 { return c.viewportW }

// ViewportHeight returns the viewport height in world units.
func (c *Camera) ViewportHeight() float64 { return c.viewportH }

// WorldToScreenX converts a world x into viewport space.
func (c *Camera) WorldToScreenX(x float64) float64 { return x - c.x }

// IsVisible reports whether obj overlaps the viewport.
func (c *Camera) IsVisible(obj Entity) bool {
	if obj == nil {
		return false
	}
	b := obj.Bounds()
	return !(b.Right() < c.x || b.X > c.x+c.viewportW || b.Bottom() < 0 || b.Y > c.viewportH)
}
