package world

import (
	"math"
	"math/rand"
)

// baselineDuneSpacing is the gap between the dunes every level starts with.
const baselineDuneSpacing = 700.0

// Level owns every entity of one stage.
// Collections are appended to only while the level is built; afterwards
// entities are removed logically by deactivation until Cleanup.
type Level struct {
	number int
	width  float64
	height float64

	enemies   []Enemy
	obstacles []Obstacle
	coins     []*Coin
	flag      *Flag
	decor     []*Decor

	rng         *rand.Rand
	decorChance float64
	initialized bool

	near    []Entity
	visible []Entity
}

// LevelCounts summarizes a level's population.
type LevelCounts struct {
	Enemies     int
	Platforms   int
	Spikes      int
	Coins       int
	ActiveCoins int
	Decor       int
}

// NewLevel creates an empty level. rng drives the sampled decoration updates.
func NewLevel(number int, width, height float64, rng *rand.Rand) *Level {
	if rng == nil {
		rng = rand.New(rand.NewSource(int64(number)))
	}
	return &Level{
		number: number,
		width:  width,
		height: height,
		rng:    rng,
	}
}

// Initialize seeds the baseline dunes along the ground. Repeat calls do nothing.
func (l *Level) Initialize() {
	if l == nil || l.initialized {
		return
	}
	l.initialized = true
	for x := 0.0; x < l.width; x += baselineDuneSpacing {
		l.AddDecor(NewDecor(x, DecorDune))
	}
}

// Number returns the 1-based level number.
func (l *Level) Number() int {
	if l == nil {
		return 0
	}
	return l.number
}

// Width returns the level width in world units.
func (l *Level) Width() float64 {
	if l == nil {
		return 0
	}
	return l.width
}

// Height returns the level height in world units.
func (l *Level) Height() float64 {
	if l == nil {
		return 0
	}
	return l.height
}

// SetDecorUpdateChance sets the per-tick probability of animating decoration
// in UpdateEfficiently.
func (l *Level) SetDecorUpdateChance(p float64) {
	l.decorChance = p
}

// AddEnemy appends an enemy.
func (l *Level) AddEnemy(e Enemy) { l.enemies = append(l.enemies, e) }

// AddObstacle appends an obstacle.
func (l *Level) AddObstacle(o Obstacle) { l.obstacles = append(l.obstacles, o) }

// AddCoin appends a coin.
func (l *Level) AddCoin(c *Coin) { l.coins = append(l.coins, c) }

// AddDecor appends a decorative element.
func (l *Level) AddDecor(d *Decor) { l.decor = append(l.decor, d) }

// SetFlag places the level exit.
func (l *Level) SetFlag(f *Flag) { l.flag = f }

// Enemies returns the enemy collection.
func (l *Level) Enemies() []Enemy { return l.enemies }

// Obstacles returns the obstacle collection.
func (l *Level) Obstacles() []Obstacle { return l.obstacles }

// Coins returns the coin collection.
func (l *Level) Coins() []*Coin { return l.coins }

// Decor returns the decoration collection.
func (l *Level) Decor() []*Decor { return l.decor }

// Flag returns the level exit, nil before it is placed.
func (l *Level) Flag() *Flag { return l.flag }

// Update advances every active entity.
func (l *Level) Update(dt float64) {
	if l == nil {
		return
	}
	for _, e := range l.enemies {
		if e.Active() {
			e.Update(dt)
		}
	}
	for _, o := range l.obstacles {
		if o.Active() {
			o.Update(dt)
		}
	}
	for _, c := range l.coins {
		if c.Active() {
			c.Update(dt)
		}
	}
	if l.flag != nil {
		l.flag.Update(dt)
	}
	for _, d := range l.decor {
		if d.Active() {
			d.Update(dt)
		}
	}
}

// UpdateEfficiently advances only entities within radius of playerX.
// Decoration is advanced on a sampled tick since it never affects play.
// It returns the number of gameplay entities updated.
func (l *Level) UpdateEfficiently(dt, playerX, radius float64) int {
	if l == nil {
		return 0
	}
	updated := 0
	for _, e := range l.enemies {
		if e.Active() && near(e, playerX, radius) {
			e.Update(dt)
			updated++
		}
	}
	for _, o := range l.obstacles {
		if o.Active() && near(o, playerX, radius) {
			o.Update(dt)
			updated++
		}
	}
	for _, c := range l.coins {
		if c.Active() && near(c, playerX, radius) {
			c.Update(dt)
			updated++
		}
	}
	if l.flag != nil {
		l.flag.Update(dt)
	}
	if l.decorChance > 0 && l.rng.Float64() < l.decorChance {
		for _, d := range l.decor {
			if d.Active() {
				d.Update(dt)
			}
		}
	}
	return updated
}

// ObjectsNearPlayer returns active gameplay entities within radius of playerX.
// The returned slice is reused by the next call.
func (l *Level) ObjectsNearPlayer(playerX, radius float64) []Entity {
	if l == nil {
		return nil
	}
	l.near = l.near[:0]
	for _, e := range l.enemies {
		if e.Active() && near(e, playerX, radius) {
			l.near = append(l.near, e)
		}
	}
	for _, o := range l.obstacles {
		if o.Active() && near(o, playerX, radius) {
			l.near = append(l.near, o)
		}
	}
	for _, c := range l.coins {
		if c.Active() && near(c, playerX, radius) {
			l.near = append(l.near, c)
		}
	}
	if l.flag != nil && l.flag.Active() && near(l.flag, playerX, radius) {
		l.near = append(l.near, l.flag)
	}
	return l.near
}

// VisibleObjects returns active entities overlapping [cameraX, cameraX+viewportWidth],
// decoration first so it draws underneath. The returned slice is reused by
// the next call.
func (l *Level) VisibleObjects(cameraX, viewportWidth float64) []Entity {
	if l == nil {
		return nil
	}
	x0, x1 := cameraX, cameraX+viewportWidth
	l.visible = l.visible[:0]
	add := func(e Entity) {
		if e.Active() && e.Bounds().OverlapsSpan(x0, x1) {
			l.visible = append(l.visible, e)
		}
	}
	for _, d := range l.decor {
		add(d)
	}
	for _, o := range l.obstacles {
		add(o)
	}
	for _, c := range l.coins {
		add(c)
	}
	if l.flag != nil {
		add(l.flag)
	}
	for _, e := range l.enemies {
		add(e)
	}
	return l.visible
}

// IsCompleted reports whether the player touches the flag.
func (l *Level) IsCompleted(p *Player) bool {
	if l == nil || l.flag == nil || p == nil {
		return false
	}
	return Collide(p, l.flag)
}

// Counts summarizes the level population.
func (l *Level) Counts() LevelCounts {
	if l == nil {
		return LevelCounts{}
	}
	c := LevelCounts{
		Enemies: len(l.enemies),
		Coins:   len(l.coins),
		Decor:   len(l.decor),
	}
	for _, o := range l.obstacles {
		switch o.Kind() {
		case KindPlatform:
			c.Platforms++
		case KindSpike:
			c.Spikes++
		}
	}
	for _, coin := range l.coins {
		if coin.Active() && !coin.Collected() {
			c.ActiveCoins++
		}
	}
	return c
}

// Cleanup deactivates and releases every owned entity.
func (l *Level) Cleanup() {
	if l == nil {
		return
	}
	for _, e := range l.enemies {
		e.SetActive(false)
	}
	for _, o := range l.obstacles {
		o.SetActive(false)
	}
	for _, c := range l.coins {
		c.SetActive(false)
	}
	for _, d := range l.decor {
		d.SetActive(false)
	}
	if l.flag != nil {
		l.flag.SetActive(false)
	}
	l.enemies = nil
	l.obstacles = nil
	l.coins = nil
	l.decor = nil
	l.flag = nil
	l.near = nil
	l.visible = nil
}

// near is the locality test shared by culled update and collision scanning.
func near(e Entity, playerX, radius float64) bool {
	return math.Abs(e.Bounds().X-playerX) <= radius
}
