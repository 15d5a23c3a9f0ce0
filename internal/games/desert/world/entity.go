// Package world contains the simulated objects of a desert level: the player,
// enemies, obstacles, collectibles, decoration, the level container and the
// camera. Everything here is pure data plus per-tick update rules; nothing
// touches the terminal.
package world

import "github.com/vovakirdan/sandrunner/internal/core"

// Kind tags the concrete type of an entity so renderers and collision
// resolution can switch on it without type assertions.
type Kind int

const (
	KindPlayer Kind = iota
	KindScorpion
	KindSnake
	KindVulture
	KindPlatform
	KindSpike
	KindCoin
	KindFlag
	KindDecor
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindScorpion:
		return "scorpion"
	case KindSnake:
		return "snake"
	case KindVulture:
		return "vulture"
	case KindPlatform:
		return "platform"
	case KindSpike:
		return "spike"
	case KindCoin:
		return "coin"
	case KindFlag:
		return "flag"
	case KindDecor:
		return "decor"
	default:
		return "unknown"
	}
}

// Entity is the contract shared by every simulated object.
// Inactive entities are skipped by update, collision and rendering.
type Entity interface {
	Bounds() core.Box
	Active() bool
	SetActive(active bool)
	Update(dt float64)
	Kind() Kind
}

// Body holds the position, size and active flag embedded by every concrete kind.
type Body struct {
	X, Y   float64
	W, H   float64
	active bool
}

func newBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, W: w, H: h, active: true}
}

// Bounds returns the world-space bounding box.
func (b *Body) Bounds() core.Box {
	return core.NewBox(b.X, b.Y, b.W, b.H)
}

// Active reports whether the body takes part in the simulation.
func (b *Body) Active() bool {
	return b.active
}

// SetActive toggles participation in the simulation.
func (b *Body) SetActive(active bool) {
	b.active = active
}

// Collide reports whether two entities overlap.
// It is symmetric and false if either side is nil or inactive.
func Collide(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	if !a.Active() || !b.Active() {
		return false
	}
	return a.Bounds().Intersects(b.Bounds())
}
