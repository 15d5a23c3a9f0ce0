package world

import "math"

// Flag marks the level exit.
type Flag struct {
	Body
	wave float64
}

const (
	flagWidth     = 20
	flagHeight    = 40
	flagWaveSpeed = 2.0
)

// NewFlag places the level exit at (x, y).
func NewFlag(x, y float64) *Flag {
	return &Flag{Body: newBody(x, y, flagWidth, flagHeight)}
}

// Kind implements Entity.
func (f *Flag) Kind() Kind { return KindFlag }

// Update advances the waving cloth.
func (f *Flag) Update(dt float64) {
	if dt <= 0 {
		return
	}
	f.wave = math.Mod(f.wave+dt*flagWaveSpeed, 2*math.Pi)
}

// Wave returns the cloth phase in radians.
func (f *Flag) Wave() float64 { return f.wave }
