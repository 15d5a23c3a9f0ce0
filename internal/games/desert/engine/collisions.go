package engine

import "github.com/vovakirdan/sandrunner/internal/games/desert/world"

// landingTolerance is how far below a platform's top the player's feet may
// have been on the previous frame and still land on it.
const landingTolerance = 4.0

// resolveCollisions applies every contact between the player and the nearby
// entities. It reports whether the player touched the flag.
// Entities are only deactivated here, never removed from their collections.
func (e *Engine) resolveCollisions(nearby []world.Entity) bool {
	p := e.player
	reachedFlag := false
	for _, ent := range nearby {
		if p.Dying() {
			break
		}
		switch obj := ent.(type) {
		case world.Enemy:
			if obj.Attack(p) {
				e.onDamage(obj.Damage())
			}
		case *world.MovingPlatform:
			e.ridePlatform(obj)
		case *world.Spike:
			if world.Collide(p, obj) && p.TakeDamage(obj.Damage()) {
				e.onDamage(obj.Damage())
			}
		case *world.Coin:
			if !world.Collide(p, obj) {
				continue
			}
			if value, ok := obj.Collect(); ok {
				e.score.AddScore(value)
				e.obs.CoinCollected(value)
			}
		case *world.Flag:
			if world.Collide(p, obj) {
				reachedFlag = true
			}
		}
	}
	return reachedFlag
}

// onDamage applies the score penalty for a hit that landed.
func (e *Engine) onDamage(amount float64) {
	e.score.ApplyDamagePenalty()
	e.obs.PlayerHit(amount)
	e.log.Debug("player hit", "damage", amount, "health", e.player.Health())
}

// ridePlatform puts a player falling onto the platform on top of it and
// carries them with it. Contact from the side or below is ignored.
func (e *Engine) ridePlatform(m *world.MovingPlatform) {
	p := e.player
	if !world.Collide(p, m) || !p.Falling() {
		return
	}
	if p.PrevBottom() > m.Y+landingTolerance {
		return
	}
	p.Land(m.Y)
	vx, _ := m.Velocity()
	p.Carry(vx)
}
