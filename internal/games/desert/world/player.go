package world

import (
	"math"

	"github.com/vovakirdan/sandrunner/internal/config"
	"github.com/vovakirdan/sandrunner/internal/core"
)

// PlayerState is the discrete animation/behavior state of the player.
type PlayerState int

const (
	StateIdle PlayerState = iota
	StateRunning
	StateJumping
	StateDying
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateDying:
		return "dying"
	default:
		return "unknown"
	}
}

const (
	runThreshold   = 30.0 // |vx| above which the player counts as running
	facingDeadband = 5.0  // |vx| needed to flip facing
	snapDistance   = 5.0  // easing snaps to target within this distance
	frameDuration  = 0.2  // animation frame length
	deathEpsilon   = 1e-9 // absorbs float drift when summing many small dt
)

// Player is the controllable character.
type Player struct {
	Body

	cfg     config.DesertPlayer
	gravity float64
	ground  float64

	health     float64
	vx, vy     float64
	targetVX   float64
	platformVX float64
	prevBottom float64

	facingRight bool
	jumping     bool
	invincible  float64

	dying      bool
	deathTimer float64
	rotation   float64
	fade       float64

	state      PlayerState
	frame      int
	frameTimer float64

	minX, maxX float64
}

// NewPlayer creates a player at the configured start position with full health.
func NewPlayer(cfg config.DesertPlayer, phys config.DesertPhysics) *Player {
	p := &Player{
		Body:        newBody(cfg.StartX, cfg.StartY, cfg.Width, cfg.Height),
		cfg:         cfg,
		gravity:     phys.Gravity,
		ground:      phys.GroundLevel,
		health:      cfg.MaxHealth,
		facingRight: true,
		fade:        1,
		maxX:        math.Inf(1),
	}
	p.prevBottom = p.Y + p.H
	return p
}

// Kind implements Entity.
func (p *Player) Kind() Kind { return KindPlayer }

// SetLevelBounds limits horizontal movement to [0, levelWidth-width].
func (p *Player) SetLevelBounds(levelWidth float64) {
	p.minX = 0
	p.maxX = math.Max(0, levelWidth-p.W)
	p.X = core.ClampF(p.X, p.minX, p.maxX)
}

// Update advances the player by dt seconds.
func (p *Player) Update(dt float64) {
	if p == nil || !p.active {
		return
	}
	if dt < 0 {
		dt = 0
	}
	p.prevBottom = p.Y + p.H

	if p.dying {
		p.updateDeath(dt)
		return
	}

	if p.invincible > 0 {
		p.invincible = math.Max(0, p.invincible-dt)
	}

	p.frameTimer += dt
	if p.frameTimer >= frameDuration {
		p.frameTimer = 0
		switch p.state {
		case StateRunning:
			p.frame = (p.frame + 1) % 3
		case StateJumping:
			p.frame = (p.frame + 1) % 2
		}
	}

	switch {
	case p.jumping:
		p.state = StateJumping
	case math.Abs(p.vx) > runThreshold:
		p.state = StateRunning
	default:
		p.state = StateIdle
	}

	if p.vx > facingDeadband {
		p.facingRight = true
	} else if p.vx < -facingDeadband {
		p.facingRight = false
	}

	p.easeHorizontal(dt)
	p.vy += p.gravity * dt

	x := p.X + (p.vx+p.platformVX)*dt
	p.platformVX = 0
	if x < p.minX || x > p.maxX {
		x = core.ClampF(x, p.minX, p.maxX)
		p.vx = 0
		p.targetVX = 0
	}
	p.X = x
	p.Y += p.vy * dt

	if p.Y+p.H > p.ground {
		p.Land(p.ground)
	}
}

// easeHorizontal moves vx toward the target speed. Speeding up toward a
// nonzero target uses the acceleration rate, slowing toward zero uses the
// deceleration rate.
func (p *Player) easeHorizontal(dt float64) {
	if math.Abs(p.vx-p.targetVX) <= snapDistance {
		p.vx = p.targetVX
		return
	}
	rate := p.cfg.Acceleration
	if p.targetVX == 0 {
		rate = p.cfg.Deceleration
	}
	p.vx = core.Approach(p.vx, p.targetVX, rate*dt)
}

func (p *Player) updateDeath(dt float64) {
	p.deathTimer += dt
	p.rotation = math.Mod(p.rotation+dt*p.cfg.DeathSpin, 360)
	p.Y += p.cfg.DeathFallSpeed * dt
	p.fade = math.Max(0, 1-p.deathTimer/p.cfg.DeathDuration)
	if p.deathTimer >= p.cfg.DeathDuration-deathEpsilon {
		p.fade = 0
		p.active = false
	}
}

// Jump starts a jump unless already airborne or dying.
func (p *Player) Jump() {
	if p == nil || p.jumping || p.dying || !p.active {
		return
	}
	p.jumping = true
	p.vy = p.cfg.JumpImpulse
	p.state = StateJumping
	p.frame = 0
}

// MoveLeft sets the horizontal target speed to run left.
func (p *Player) MoveLeft() {
	if p == nil || p.dying {
		return
	}
	p.targetVX = -p.cfg.Speed
	p.facingRight = false
}

// MoveRight sets the horizontal target speed to run right.
func (p *Player) MoveRight() {
	if p == nil || p.dying {
		return
	}
	p.targetVX = p.cfg.Speed
	p.facingRight = true
}

// StopMoving clears the horizontal target speed; the player decelerates.
func (p *Player) StopMoving() {
	if p == nil || p.dying {
		return
	}
	p.targetVX = 0
}

// TakeDamage subtracts amount from health and reports whether it landed.
// It is a no-op while invincible or dying. Negative amounts count as zero.
func (p *Player) TakeDamage(amount float64) bool {
	if p == nil || !p.active || p.dying || p.invincible > 0 {
		return false
	}
	if amount <= 0 {
		return false
	}
	p.health = math.Max(0, p.health-amount)
	p.invincible = p.cfg.Invincibility
	p.vx *= p.cfg.KnockbackDamping
	p.vy = p.cfg.DamageKnockback
	p.jumping = true
	if p.health <= 0 {
		p.StartDeathAnimation()
	}
	return true
}

// StartDeathAnimation enters the dying state.
func (p *Player) StartDeathAnimation() {
	if p == nil {
		return
	}
	p.dying = true
	p.deathTimer = 0
	p.rotation = 0
	p.fade = 1
	p.state = StateDying
	p.vx = 0
	p.targetVX = 0
	p.vy = p.cfg.DeathKnockback
	p.jumping = true
}

// SetHealth sets health clamped to [0, max]. Zero starts the death sequence.
func (p *Player) SetHealth(h float64) {
	if p == nil {
		return
	}
	p.health = core.ClampF(h, 0, p.cfg.MaxHealth)
	if p.health <= 0 && !p.dying {
		p.StartDeathAnimation()
	}
}

// Land puts the player's feet on a surface at height y.
func (p *Player) Land(y float64) {
	p.Y = y - p.H
	p.vy = 0
	p.jumping = false
}

// Carry adds a platform velocity to the next horizontal integration.
func (p *Player) Carry(vx float64) {
	if p == nil || p.dying {
		return
	}
	p.platformVX = vx
}

// ResetAt moves the player to (x, y) for a new level, keeping health.
func (p *Player) ResetAt(x, y float64) {
	if p == nil {
		return
	}
	p.X, p.Y = x, y
	p.prevBottom = y + p.H
	p.vx, p.vy = 0, 0
	p.targetVX, p.platformVX = 0, 0
	p.jumping = false
	p.state = StateIdle
	p.facingRight = true
}

// Respawn revives the player at (x, y) with the given health.
func (p *Player) Respawn(x, y, health float64) {
	if p == nil {
		return
	}
	p.dying = false
	p.deathTimer = 0
	p.rotation = 0
	p.fade = 1
	p.invincible = 0
	p.active = true
	p.ResetAt(x, y)
	p.SetHealth(health)
}

// Health returns the fractional health.
func (p *Player) Health() float64 { return p.health }

// MaxHealth returns the configured health ceiling.
func (p *Player) MaxHealth() float64 { return p.cfg.MaxHealth }

// Hearts returns health rounded up, the value shown to the player.
func (p *Player) Hearts() int {
	if p == nil {
		return 0
	}
	return int(math.Ceil(p.health))
}

// Velocity returns the current velocity.
func (p *Player) Velocity() (vx, vy float64) { return p.vx, p.vy }

// TargetSpeed returns the horizontal speed the player is easing toward.
func (p *Player) TargetSpeed() float64 { return p.targetVX }

// PrevBottom returns the y of the player's feet before the last update.
func (p *Player) PrevBottom() float64 { return p.prevBottom }

// Falling reports whether the player is moving downward.
func (p *Player) Falling() bool { return p.vy >= 0 }

// Jumping reports whether the player is airborne from a jump or knockback.
func (p *Player) Jumping() bool { return p.jumping }

// Dying reports whether the death animation is running.
func (p *Player) Dying() bool { return p.dying }

// Invincible reports whether damage is currently suppressed.
func (p *Player) Invincible() bool { return p.invincible > 0 }

// Blinking reports whether the sprite should be hidden this frame to show
// invincibility.
func (p *Player) Blinking() bool {
	return p.invincible > 0 && !p.dying && int(p.invincible*10)%2 == 0
}

// State returns the discrete state.
func (p *Player) State() PlayerState { return p.state }

// FacingRight reports the facing direction.
func (p *Player) FacingRight() bool { return p.facingRight }

// Frame returns the current animation frame index.
func (p *Player) Frame() int { return p.frame }

// Rotation returns the death spin angle in degrees.
func (p *Player) Rotation() float64 { return p.rotation }

// Fade returns the death fade-out alpha in [0, 1].
func (p *Player) Fade() float64 { return p.fade }
