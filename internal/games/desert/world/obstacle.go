package world

import "github.com/vovakirdan/sandrunner/internal/config"

// Obstacle is a level fixture the player interacts with.
type Obstacle interface {
	Entity
	Damaging() bool
}

// MovingPlatform bounces horizontally within [originX, originX+range] and
// carries a player standing on it.
type MovingPlatform struct {
	Body
	originX     float64
	travel      float64
	speed       float64
	vx          float64
	movingRight bool
}

// NewMovingPlatform creates a platform at (x, y).
func NewMovingPlatform(x, y float64, p config.PlatformParams) *MovingPlatform {
	return &MovingPlatform{
		Body:        newBody(x, y, p.Width, p.Height),
		originX:     x,
		travel:      p.Range,
		speed:       p.Speed,
		vx:          p.Speed,
		movingRight: true,
	}
}

// Kind implements Entity.
func (m *MovingPlatform) Kind() Kind { return KindPlatform }

// Damaging implements Obstacle.
func (m *MovingPlatform) Damaging() bool { return false }

// Update moves the platform and recomputes its velocity.
func (m *MovingPlatform) Update(dt float64) {
	if !m.active || dt <= 0 {
		return
	}
	if m.movingRight {
		m.vx = m.speed
		m.X += m.speed * dt
		if m.X >= m.originX+m.travel {
			m.X = m.originX + m.travel
			m.movingRight = false
		}
	} else {
		m.vx = -m.speed
		m.X -= m.speed * dt
		if m.X <= m.originX {
			m.X = m.originX
			m.movingRight = true
		}
	}
}

// Velocity returns the platform velocity from the last update.
func (m *MovingPlatform) Velocity() (vx, vy float64) {
	return m.vx, 0
}

// Spike is a stationary hazard.
type Spike struct {
	Body
	damage float64
}

// NewSpike creates a spike at (x, y).
func NewSpike(x, y float64, p config.SpikeParams) *Spike {
	return &Spike{
		Body:   newBody(x, y, p.Width, p.Height),
		damage: p.Damage,
	}
}

// Kind implements Entity.
func (s *Spike) Kind() Kind { return KindSpike }

// Damaging implements Obstacle.
func (s *Spike) Damaging() bool { return true }

// Damage returns the health lost on contact.
func (s *Spike) Damage() float64 { return s.damage }

// Update implements Entity. Spikes never move.
func (s *Spike) Update(float64) {}
