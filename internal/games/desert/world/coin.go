package world

import (
	"math"

	"github.com/vovakirdan/sandrunner/internal/config"
)

// CoinType distinguishes coin denominations.
type CoinType int

const (
	CoinSilver CoinType = iota
	CoinGold
)

// String returns a human-readable name for the coin type.
func (t CoinType) String() string {
	if t == CoinGold {
		return "gold"
	}
	return "silver"
}

// Coin is a collectible. Active -> collected (fading) -> inactive.
type Coin struct {
	Body
	coinType  CoinType
	value     int
	collected bool

	fade      float64
	fadeTimer float64
	spin      float64
	rotation  float64
}

// NewCoin creates a coin at (x, y).
func NewCoin(x, y float64, t CoinType, cfg config.DesertCoins) *Coin {
	value := cfg.SilverValue
	if t == CoinGold {
		value = cfg.GoldValue
	}
	return &Coin{
		Body:     newBody(x, y, cfg.Size, cfg.Size),
		coinType: t,
		value:    value,
		fade:     cfg.Fade,
		spin:     cfg.Spin,
	}
}

// Kind implements Entity.
func (c *Coin) Kind() Kind { return KindCoin }

// Update spins the coin and runs the post-collection fade.
func (c *Coin) Update(dt float64) {
	if !c.active || dt <= 0 {
		return
	}
	c.rotation = math.Mod(c.rotation+c.spin*dt, 360)
	if c.collected {
		c.fadeTimer += dt
		if c.fadeTimer >= c.fade {
			c.active = false
		}
	}
}

// Collect marks the coin collected and returns its value.
// Only the first call awards points.
func (c *Coin) Collect() (int, bool) {
	if c == nil || !c.active || c.collected {
		return 0, false
	}
	c.collected = true
	return c.value, true
}

// Collected reports whether the coin has been picked up.
func (c *Coin) Collected() bool { return c.collected }

// Type returns the denomination.
func (c *Coin) Type() CoinType { return c.coinType }

// Value returns the points awarded on collection.
func (c *Coin) Value() int { return c.value }

// Rotation returns the spin angle in degrees.
func (c *Coin) Rotation() float64 { return c.rotation }

// Alpha returns the fade-out opacity in [0, 1].
func (c *Coin) Alpha() float64 {
	if !c.collected || c.fade <= 0 {
		return 1
	}
	return math.Max(0, 1-c.fadeTimer/c.fade)
}
