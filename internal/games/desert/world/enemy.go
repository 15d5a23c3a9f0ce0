package world

import (
	"math"

	"github.com/vovakirdan/sandrunner/internal/config"
)

// Enemy is a hostile entity that can damage the player on contact.
type Enemy interface {
	Entity
	// Attack applies damage when the enemy overlaps the player and reports
	// whether damage landed. Contact also starts the attack flash.
	Attack(p *Player) bool
	Damage() float64
	// Flashing reports whether the attack feedback is showing.
	Flashing() bool
}

// enemyBase is the state shared by all enemy variants.
type enemyBase struct {
	Body
	speed  float64
	damage float64

	flash      float64
	flashTimer float64
}

func (e *enemyBase) Damage() float64 { return e.damage }

func (e *enemyBase) Flashing() bool { return e.flashTimer > 0 }

// Speed returns the movement speed in units per second.
func (e *enemyBase) Speed() float64 { return e.speed }

func (e *enemyBase) tickFlash(dt float64) {
	if e.flashTimer > 0 {
		e.flashTimer = math.Max(0, e.flashTimer-dt)
	}
}

// strike starts the flash and hands the damage to the player.
func (e *enemyBase) strike(p *Player) bool {
	e.flashTimer = e.flash
	return p.TakeDamage(e.damage)
}

// contact reports whether an active enemy body overlaps an active player.
func (e *enemyBase) contact(p *Player) bool {
	if p == nil || !e.active || !p.active {
		return false
	}
	return e.Bounds().Intersects(p.Bounds())
}

// Scorpion patrols back and forth around its spawn point.
type Scorpion struct {
	enemyBase
	originX     float64
	patrol      float64
	movingRight bool
}

// NewScorpion creates a patrolling enemy at (x, y).
func NewScorpion(x, y float64, p config.ScorpionParams, flash float64) *Scorpion {
	return &Scorpion{
		enemyBase: enemyBase{
			Body:   newBody(x, y, p.Width, p.Height),
			speed:  p.Speed,
			damage: p.Damage,
			flash:  flash,
		},
		originX:     x,
		patrol:      p.Range,
		movingRight: true,
	}
}

// Kind implements Entity.
func (s *Scorpion) Kind() Kind { return KindScorpion }

// Update moves the scorpion within [originX-range, originX+range].
func (s *Scorpion) Update(dt float64) {
	if !s.active || dt <= 0 {
		return
	}
	s.tickFlash(dt)
	if s.movingRight {
		s.X += s.speed * dt
		if s.X >= s.originX+s.patrol {
			s.X = s.originX + s.patrol
			s.movingRight = false
		}
	} else {
		s.X -= s.speed * dt
		if s.X <= s.originX-s.patrol {
			s.X = s.originX - s.patrol
			s.movingRight = true
		}
	}
}

// Attack implements Enemy.
func (s *Scorpion) Attack(p *Player) bool {
	if !s.contact(p) {
		return false
	}
	return s.strike(p)
}

// MovingRight reports the patrol direction.
func (s *Scorpion) MovingRight() bool { return s.movingRight }

// Snake waits out a cooldown, darts forward and slides back to its origin.
type Snake struct {
	enemyBase
	originX  float64
	lunge    float64
	cooldown float64
	timer    float64
	lunging  bool
}

// NewSnake creates a lunging enemy at (x, y). It lunges on its first update.
func NewSnake(x, y float64, p config.SnakeParams, flash float64) *Snake {
	return &Snake{
		enemyBase: enemyBase{
			Body:   newBody(x, y, p.Width, p.Height),
			speed:  p.Speed,
			damage: p.Damage,
			flash:  flash,
		},
		originX:  x,
		lunge:    p.LungeDistance,
		cooldown: p.Cooldown,
	}
}

// Kind implements Entity.
func (s *Snake) Kind() Kind { return KindSnake }

// Update advances the lunge cycle. X stays within [originX, originX+lunge].
func (s *Snake) Update(dt float64) {
	if !s.active || dt <= 0 {
		return
	}
	s.tickFlash(dt)
	if s.lunging {
		s.X -= s.speed * dt
		if s.X <= s.originX {
			s.X = s.originX
			s.lunging = false
			s.timer = s.cooldown
		}
		return
	}
	s.timer -= dt
	if s.timer <= 0 {
		s.lunging = true
		s.X = s.originX + s.lunge
	}
}

// Attack implements Enemy.
func (s *Snake) Attack(p *Player) bool {
	if !s.contact(p) {
		return false
	}
	return s.strike(p)
}

// Lunging reports whether the snake is out of its den.
func (s *Snake) Lunging() bool { return s.lunging }

// Vulture dives between its perch and perch+height; only the dive hurts.
type Vulture struct {
	enemyBase
	originY  float64
	height   float64
	swooping bool
}

// NewVulture creates a swooping enemy perched at (x, y).
func NewVulture(x, y float64, p config.VultureParams, flash float64) *Vulture {
	return &Vulture{
		enemyBase: enemyBase{
			Body:   newBody(x, y, p.Width, p.Height),
			speed:  p.Speed,
			damage: p.Damage,
			flash:  flash,
		},
		originY:  y,
		height:   p.SwoopHeight,
		swooping: true,
	}
}

// Kind implements Entity.
func (v *Vulture) Kind() Kind { return KindVulture }

// Update moves the vulture within [originY, originY+height].
func (v *Vulture) Update(dt float64) {
	if !v.active || dt <= 0 {
		return
	}
	v.tickFlash(dt)
	if v.swooping {
		v.Y += v.speed * dt
		if v.Y >= v.originY+v.height {
			v.Y = v.originY + v.height
			v.swooping = false
		}
	} else {
		v.Y -= v.speed * dt
		if v.Y <= v.originY {
			v.Y = v.originY
			v.swooping = true
		}
	}
}

// Attack implements Enemy. Contact while climbing back up is harmless.
func (v *Vulture) Attack(p *Player) bool {
	if !v.swooping || !v.contact(p) {
		return false
	}
	return v.strike(p)
}

// Swooping reports whether the vulture is diving.
func (v *Vulture) Swooping() bool { return v.swooping }
