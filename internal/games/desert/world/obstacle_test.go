package world

import (
	"testing"

	"github.com/vovakirdan/sandrunner/internal/config"
)

func TestMovingPlatformBounce(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	m := NewMovingPlatform(500, 480, cfg.Obstacles.Platform)

	for i := 0; i < 1000; i++ {
		prevX := m.X
		m.Update(1.0 / 60)
		if m.X < 500 || m.X > 700 {
			t.Fatalf("step %d: x = %f outside [500, 700]", i, m.X)
		}
		vx, vy := m.Velocity()
		if vy != 0 {
			t.Fatalf("platform vy = %f, expected 0", vy)
		}
		if (m.X > prevX && vx <= 0) || (m.X < prevX && vx >= 0) {
			t.Fatalf("step %d: velocity %f disagrees with movement %f -> %f", i, vx, prevX, m.X)
		}
	}
	if m.Damaging() {
		t.Error("platforms are not damaging")
	}
}

func TestSpike(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	s := NewSpike(300, 590, cfg.Obstacles.Spike)
	s.Update(10)
	if s.X != 300 || s.Y != 590 {
		t.Error("spikes should not move")
	}
	if !s.Damaging() || s.Damage() != 0.5 {
		t.Errorf("spike should be damaging for 0.5, got %v %f", s.Damaging(), s.Damage())
	}
}

func TestCoinCollectIdempotent(t *testing.T) {
	cfg := config.DefaultDesertConfig()

	tests := []struct {
		coinType CoinType
		value    int
	}{
		{CoinSilver, 10},
		{CoinGold, 50},
	}

	for _, tc := range tests {
		t.Run(tc.coinType.String(), func(t *testing.T) {
			c := NewCoin(0, 0, tc.coinType, cfg.Coins)
			v, ok := c.Collect()
			if !ok || v != tc.value {
				t.Errorf("first Collect() = %d, %v; expected %d, true", v, ok, tc.value)
			}
			v, ok = c.Collect()
			if ok || v != 0 {
				t.Errorf("second Collect() = %d, %v; expected 0, false", v, ok)
			}
			if !c.Collected() {
				t.Error("coin should report collected")
			}
		})
	}
}

func TestCoinFadesOut(t *testing.T) {
	cfg := config.DefaultDesertConfig()
	c := NewCoin(0, 0, CoinSilver, cfg.Coins)
	c.Update(0.3)
	if !c.Active() || c.Alpha() != 1 {
		t.Error("uncollected coin should stay fully visible")
	}

	c.Collect()
	c.Update(0.25)
	if !c.Active() {
		t.Fatal("coin should still be fading")
	}
	if a := c.Alpha(); a <= 0 || a >= 1 {
		t.Errorf("mid-fade alpha = %f, expected within (0, 1)", a)
	}
	c.Update(0.25)
	if c.Active() {
		t.Error("coin should be inactive after the fade")
	}
	if _, ok := c.Collect(); ok {
		t.Error("inactive coin should not award points")
	}
}

func TestFlagWave(t *testing.T) {
	f := NewFlag(1850, 540)
	if f.W != 20 || f.H != 40 {
		t.Errorf("flag size = %fx%f, expected 20x40", f.W, f.H)
	}
	for i := 0; i < 600; i++ {
		f.Update(1.0 / 60)
		if f.Wave() < 0 || f.Wave() >= 6.3 {
			t.Fatalf("wave phase %f should wrap within [0, 2pi)", f.Wave())
		}
	}
	if !f.Active() {
		t.Error("flag should stay active")
	}
}

func TestDecorShapes(t *testing.T) {
	tests := []struct {
		decorType DecorType
		y, w, h   float64
	}{
		{DecorDune, 620, 200, 50},
		{DecorCactus, 570, 30, 50},
		{DecorRock, 590, 80, 30},
	}

	for _, tc := range tests {
		t.Run(tc.decorType.String(), func(t *testing.T) {
			d := NewDecor(400, tc.decorType)
			b := d.Bounds()
			if b.X != 400 || b.Y != tc.y || b.W != tc.w || b.H != tc.h {
				t.Errorf("bounds = %+v, expected (400, %f, %f, %f)", b, tc.y, tc.w, tc.h)
			}
		})
	}
}
