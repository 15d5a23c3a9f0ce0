package world

// DecorType selects a decorative desert element.
type DecorType int

const (
	DecorDune DecorType = iota
	DecorCactus
	DecorRock
)

// String returns a human-readable name for the decor type.
func (t DecorType) String() string {
	switch t {
	case DecorDune:
		return "dune"
	case DecorCactus:
		return "cactus"
	case DecorRock:
		return "rock"
	default:
		return "unknown"
	}
}

// decorShape is the placement of each decor type relative to the ground.
var decorShape = map[DecorType]struct{ y, w, h float64 }{
	DecorDune:   {620, 200, 50},
	DecorCactus: {570, 30, 50},
	DecorRock:   {590, 80, 30},
}

// Decor is a cosmetic element. It never collides.
type Decor struct {
	Body
	decorType DecorType
	sway      float64
}

// NewDecor creates a decorative element at horizontal position x.
func NewDecor(x float64, t DecorType) *Decor {
	shape, ok := decorShape[t]
	if !ok {
		t = DecorRock
		shape = decorShape[t]
	}
	return &Decor{
		Body:      newBody(x, shape.y, shape.w, shape.h),
		decorType: t,
	}
}

// Kind implements Entity.
func (d *Decor) Kind() Kind { return KindDecor }

// Type returns the decor type.
func (d *Decor) Type() DecorType { return d.decorType }

// Update advances the sway phase used by cacti in the renderer.
func (d *Decor) Update(dt float64) {
	if !d.active || dt <= 0 {
		return
	}
	d.sway += dt
	if d.sway > 60 {
		d.sway -= 60
	}
}

// Sway returns the sway phase in seconds.
func (d *Decor) Sway() float64 { return d.sway }
