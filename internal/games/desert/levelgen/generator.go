// Package levelgen builds desert levels from a level number.
package levelgen

import (
	"math/rand"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/sandrunner/internal/config"
	"github.com/vovakirdan/sandrunner/internal/games/desert/world"
)

// Level-number brackets for width tiers, enemy mix and coin counts.
const (
	narrowMax = 3
	mediumMax = 7

	platformsFrom = 4
	spikesFrom    = 7
	maxPlatforms  = 3

	coinMargin  = 200.0
	spikeMargin = 250.0
	decorMargin = 150.0
)

// Perlin parameters for decoration: smoothing, frequency, octaves.
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// Generator populates levels. All randomness comes from one shared source.
type Generator struct {
	cfg   config.DesertConfig
	diff  *config.DifficultyManager
	rng   *rand.Rand
	noise *perlin.Perlin
}

// New creates a generator seeded with seed.
func New(cfg config.DesertConfig, seed int64) *Generator {
	return &Generator{
		cfg:   cfg,
		diff:  config.NewDifficultyManager(cfg.Difficulty),
		rng:   rand.New(rand.NewSource(seed)),
		noise: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Rand returns the shared random source.
func (g *Generator) Rand() *rand.Rand {
	return g.rng
}

// Difficulty returns the manager scaling enemy speed and count.
func (g *Generator) Difficulty() *config.DifficultyManager {
	return g.diff
}

// CreateLevel builds level n (1-based). Values below 1 are treated as 1.
func (g *Generator) CreateLevel(n int) *world.Level {
	if n < 1 {
		n = 1
	}
	width := g.WidthFor(n)
	level := world.NewLevel(n, width, g.cfg.Level.Height, g.rng)
	level.SetDecorUpdateChance(g.cfg.Level.DecorUpdateChance)
	level.Initialize()

	g.addDecor(level, n)
	g.addEnemies(level, n)
	g.addObstacles(level, n)
	g.addCoins(level, n)
	level.SetFlag(world.NewFlag(width-g.cfg.Level.FlagOffset, g.cfg.Level.FlagY))
	return level
}

// WidthFor returns the level width tier for level n.
func (g *Generator) WidthFor(n int) float64 {
	w := g.cfg.Level.Widths
	switch {
	case n <= narrowMax:
		return w[0]
	case n <= mediumMax:
		return w[1]
	default:
		return w[2]
	}
}

// EnemyCount returns how many enemies level n gets. It never decreases as n grows.
func (g *Generator) EnemyCount(n int) int {
	var base int
	switch {
	case n <= narrowMax:
		base = 1 + n
	case n <= mediumMax:
		base = 5 + (n - narrowMax)
	default:
		base = 5 + n
	}
	return base + g.diff.ExtraEnemies(n)
}

// CoinCounts returns the silver and gold coin counts for level n.
func CoinCounts(n int) (silver, gold int) {
	switch {
	case n <= narrowMax:
		return 10 + 3*n, 3 + n
	case n <= mediumMax:
		return 15 + 3*(n-narrowMax), 6 + 2*(n-narrowMax)
	default:
		return 30 + 3*(n-mediumMax), 14 + 2*(n-mediumMax)
	}
}

// addDecor scatters dunes, cacti and rocks. Perlin noise picks the type so
// neighbouring elements tend to match.
func (g *Generator) addDecor(level *world.Level, n int) {
	width := level.Width()
	count := 5 + n
	for i := 0; i < count; i++ {
		x := g.rng.Float64()*(width-2*decorMargin) + decorMargin
		v := (g.noise.Noise2D(x/width*4, float64(n)*0.37) + 1) / 2
		var t world.DecorType
		switch {
		case v < 0.45:
			t = world.DecorDune
		case v < 0.6:
			t = world.DecorCactus
		default:
			t = world.DecorRock
		}
		level.AddDecor(world.NewDecor(x, t))
	}
}

// addEnemies spaces enemies evenly across the level.
func (g *Generator) addEnemies(level *world.Level, n int) {
	count := g.EnemyCount(n)
	spacing := level.Width() / float64(count+1)
	for i := 0; i < count; i++ {
		x := spacing * float64(i+1)
		level.AddEnemy(g.enemyFor(n, x))
	}
}

// enemyFor picks the variant mix for level n: scorpions only early on,
// scorpions and snakes mid-game, all three late.
func (g *Generator) enemyFor(n int, x float64) world.Enemy {
	e := g.cfg.Enemies
	y := e.SpawnY
	switch {
	case n <= narrowMax:
		return g.scorpion(n, x, y)
	case n <= mediumMax:
		if g.rng.Intn(2) == 0 {
			return g.scorpion(n, x, y)
		}
		return g.snake(n, x, y)
	default:
		switch g.rng.Intn(3) {
		case 0:
			return g.scorpion(n, x, y)
		case 1:
			return g.vulture(n, x, y)
		default:
			return g.snake(n, x, y)
		}
	}
}

func (g *Generator) scorpion(n int, x, y float64) world.Enemy {
	p := g.cfg.Enemies.Scorpion
	p.Speed = g.diff.Speed(p.Speed, n)
	return world.NewScorpion(x, y, p, g.cfg.Enemies.Flash)
}

func (g *Generator) snake(n int, x, y float64) world.Enemy {
	p := g.cfg.Enemies.Snake
	p.Speed = g.diff.Speed(p.Speed, n)
	return world.NewSnake(x, y, p, g.cfg.Enemies.Flash)
}

// vulture perches one swoop above the spawn line so its dive ends at ground level.
func (g *Generator) vulture(n int, x, y float64) world.Enemy {
	p := g.cfg.Enemies.Vulture
	p.Speed = g.diff.Speed(p.Speed, n)
	return world.NewVulture(x, y-p.SwoopHeight, p, g.cfg.Enemies.Flash)
}

// addObstacles adds moving platforms from level 4 and spikes from level 7.
func (g *Generator) addObstacles(level *world.Level, n int) {
	width := level.Width()
	obs := g.cfg.Obstacles

	if n >= platformsFrom {
		count := maxPlatforms
		if n < platformsFrom+maxPlatforms-1 {
			count = n - (platformsFrom - 1)
		}
		spacing := width / float64(count+1)
		for i := 0; i < count; i++ {
			x := spacing * float64(i+1)
			y := obs.Platform.MinY
			if obs.Platform.SpanY > 0 {
				y += float64(g.rng.Intn(obs.Platform.SpanY))
			}
			level.AddObstacle(world.NewMovingPlatform(x, y, obs.Platform))
		}
	}

	if n >= spikesFrom {
		var count int
		if n < 10 {
			count = n - spikesFrom + g.rng.Intn(3)
		} else {
			count = 3 + g.rng.Intn(3)
		}
		for i := 0; i < count; i++ {
			x := g.rng.Float64()*(width-2*spikeMargin) + spikeMargin
			level.AddObstacle(world.NewSpike(x, obs.Spike.Y, obs.Spike))
		}
	}
}

// addCoins scatters coins between the level margins; gold sits in a
// narrower, higher band than silver.
func (g *Generator) addCoins(level *world.Level, n int) {
	width := level.Width()
	silver, gold := CoinCounts(n)
	for i := 0; i < silver; i++ {
		x := coinMargin + g.rng.Float64()*(width-2*coinMargin)
		y := 450 + g.rng.Float64()*150
		level.AddCoin(world.NewCoin(x, y, world.CoinSilver, g.cfg.Coins))
	}
	for i := 0; i < gold; i++ {
		x := coinMargin + g.rng.Float64()*(width-2*coinMargin)
		y := 450 + g.rng.Float64()*100
		level.AddCoin(world.NewCoin(x, y, world.CoinGold, g.cfg.Coins))
	}
}
