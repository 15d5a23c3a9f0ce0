package world

import (
	"testing"

	"github.com/vovakirdan/sandrunner/internal/config"
)

func TestScorpionPatrolRange(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	s := NewScorpion(500, 585, cfg.Enemies.Scorpion, 0.2)

	sawLeft, sawRight := false, false
	for i := 0; i < 2000; i++ {
		s.Update(1.0 / 30)
		if s.X < 400 || s.X > 600 {
			t.Fatalf("step %d: x = %f outside patrol range [400, 600]", i, s.X)
		}
		if s.X == 400 {
			sawLeft = true
		}
		if s.X == 600 {
			sawRight = true
		}
	}
	if !sawLeft || !sawRight {
		t.Error("scorpion should reach both ends of its patrol")
	}
}

func TestSnakeLungeCycle(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	s := NewSnake(500, 585, cfg.Enemies.Snake, 0.2)

	s.Update(0.01)
	if !s.Lunging() || s.X != 580 {
		t.Fatalf("snake should lunge immediately to 580, got lunging=%v x=%f", s.Lunging(), s.X)
	}

	// Slides back at 100/s: 0.8s to return
	for i := 0; i < 100 && s.Lunging(); i++ {
		s.Update(0.01)
	}
	if s.Lunging() || s.X != 500 {
		t.Fatalf("snake should be back at origin, lunging=%v x=%f", s.Lunging(), s.X)
	}

	// Cooldown of 2s before the next lunge
	for i := 0; i < 190; i++ {
		s.Update(0.01)
		if s.Lunging() {
			t.Fatalf("snake lunged after %fs, before the cooldown", float64(i+1)*0.01)
		}
	}
	for i := 0; i < 20 && !s.Lunging(); i++ {
		s.Update(0.01)
	}
	if !s.Lunging() {
		t.Error("snake should lunge again after the cooldown")
	}
}

func TestVultureSwoop(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	v := NewVulture(500, 400, cfg.Enemies.Vulture, 0.2)

	for i := 0; i < 1000; i++ {
		prevY := v.Y
		v.Update(1.0 / 60)
		if v.Y < 400 || v.Y > 550 {
			t.Fatalf("step %d: y = %f outside swoop range", i, v.Y)
		}
		if v.Y > prevY && !v.Swooping() && v.Y != 550 {
			t.Fatalf("step %d: descending without swooping", i)
		}
	}
}

func TestEnemyAttack(t *testing.T) {
	cfg := config.DefaultDesertConfig()

	tests := []struct {
		name     string
		enemy    func(p *Player) Enemy
		expected float64
		landed   bool
	}{
		{
			name: "scorpion overlapping",
			enemy: func(p *Player) Enemy {
				return NewScorpion(p.X, p.Y+p.H-20, cfg.Enemies.Scorpion, 0.2)
			},
			expected: 2.0,
			landed:   true,
		},
		{
			name: "snake overlapping",
			enemy: func(p *Player) Enemy {
				return NewSnake(p.X, p.Y+p.H-15, cfg.Enemies.Snake, 0.2)
			},
			expected: 2.5,
			landed:   true,
		},
		{
			name: "swooping vulture",
			enemy: func(p *Player) Enemy {
				return NewVulture(p.X, p.Y, cfg.Enemies.Vulture, 0.2)
			},
			expected: 2.25,
			landed:   true,
		},
		{
			name: "scorpion out of reach",
			enemy: func(p *Player) Enemy {
				return NewScorpion(p.X+300, p.Y, cfg.Enemies.Scorpion, 0.2)
			},
			expected: 3.0,
			landed:   false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPlayer()
			e := tc.enemy(p)
			if landed := e.Attack(p); landed != tc.landed {
				t.Errorf("Attack() = %v, expected %v", landed, tc.landed)
			}
			if p.Health() != tc.expected {
				t.Errorf("health = %f, expected %f", p.Health(), tc.expected)
			}
			if e.Flashing() != tc.landed {
				t.Errorf("Flashing() = %v, expected %v", e.Flashing(), tc.landed)
			}
		})
	}
}

func TestVultureHarmlessWhileClimbing(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	p := newTestPlayer()
	v := NewVulture(p.X, p.Y-150, cfg.Enemies.Vulture, 0.2)

	// Dive to the bottom, where it turns around and climbs
	for v.Swooping() {
		v.Update(1.0 / 60)
	}
	if !v.Bounds().Intersects(p.Bounds()) {
		t.Fatal("vulture should overlap the player at the bottom of its dive")
	}
	if v.Attack(p) {
		t.Error("climbing vulture should not deal damage")
	}
	if p.Health() != 3 {
		t.Errorf("health = %f, expected 3", p.Health())
	}
}

func TestFlashExpires(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	p := newTestPlayer()
	s := NewScorpion(p.X, p.Y+30, cfg.Enemies.Scorpion, 0.2)
	s.Attack(p)
	if !s.Flashing() {
		t.Fatal("attack should start the flash")
	}
	for i := 0; i < 15; i++ {
		s.Update(1.0 / 60)
	}
	if s.Flashing() {
		t.Error("flash should clear after 0.2s")
	}
}

func TestInactiveEnemyDoesNothing(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	p := newTestPlayer()
	s := NewScorpion(p.X, p.Y+30, cfg.Enemies.Scorpion, 0.2)
	s.SetActive(false)

	s.Update(1)
	if s.X != p.X {
		t.Error("inactive enemy should not move")
	}
	if s.Attack(p) {
		t.Error("inactive enemy should not attack")
	}
	if s.Attack(nil) {
		t.Error("attacking a nil player should be a no-op")
	}
}
