package desert

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sandrunner/internal/core"
	"github.com/vovakirdan/sandrunner/internal/games/desert/engine"
	"github.com/vovakirdan/sandrunner/internal/games/desert/world"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Visual characters for rendering
const (
	GroundChar   = '▒'
	DuneChar     = '▓'
	CactusChar   = '│'
	RockChar     = '▄'
	PlatformChar = '▀'
	SpikeChar    = '▲'
	SilverChar   = '○'
	GoldChar     = '●'
	ScorpionChar = 'M'
	SnakeChar    = '~'
	VultureChar  = 'V'
	FlagChar     = '▶'
	PoleChar     = '│'
	PlayerChar   = '@'
	DyingChar    = 'x'
	HeartFull    = '♥'
	HeartEmpty   = '♡'
)

// viewport maps world units to screen cells. The camera's world viewport is
// stretched over the playfield below the HUD.
type viewport struct {
	camX   float64
	sx, sy float64
	top    int
}

func newViewport(snap engine.Snapshot, w, h int) viewport {
	w = max(w, 1)
	h = max(h, 1)
	return viewport{
		camX: snap.CameraX,
		sx:   snap.ViewportW / float64(w),
		sy:   snap.ViewportH / float64(h),
		top:  hudRows,
	}
}

// cells returns the screen rectangle covering b. Anything with a nonzero
// size covers at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - v.camX) / v.sx))
	x1 := int(math.Ceil((b.Right() - v.camX) / v.sx))
	y0 := int(math.Floor(b.Y / v.sy))
	y1 := int(math.Ceil(b.Bottom() / v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

func (v viewport) row(worldY float64) int {
	return int(math.Floor(worldY/v.sy)) + v.top
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.eng == nil {
		return
	}

	snap := g.eng.Snapshot()
	v := newViewport(snap, dst.Width(), dst.Height()-hudRows)

	ground := v.row(snap.GroundY)
	dst.DrawRect(core.NewRect(0, ground, dst.Width(), dst.Height()-ground), GroundChar, core.ColorOrange)

	for _, obj := range snap.Objects {
		drawEntity(dst, v, obj)
	}
	drawPlayer(dst, v, snap.Player)

	g.drawHUD(dst, snap)

	switch {
	case g.hud.over != nil:
		o := g.hud.over
		title := "GAME OVER"
		if o.won {
			title = "DESERT CLEARED"
		}
		drawCenteredMessage(dst, title, fmt.Sprintf("Score: %d  Level: %d  |  Press R to restart", o.score, o.level))
	case g.hud.death != nil:
		drawCenteredMessage(dst, "YOU FELL",
			fmt.Sprintf("%s left  |  C to continue, Esc to give up", plural(g.hud.death.livesLeft, "life", "lives")))
	case snap.Phase == engine.PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func drawEntity(dst *core.Screen, v viewport, obj world.Entity) {
	r := v.cells(obj.Bounds())
	switch o := obj.(type) {
	case *world.Decor:
		switch o.Type() {
		case world.DecorDune:
			dst.DrawRect(r, DuneChar, core.ColorYellow)
		case world.DecorCactus:
			dst.DrawRect(r, CactusChar, core.ColorGreen)
		case world.DecorRock:
			dst.DrawRect(r, RockChar, core.ColorGray)
		}
	case *world.MovingPlatform:
		dst.DrawRect(r, PlatformChar, core.ColorOrange)
	case *world.Spike:
		dst.DrawRect(r, SpikeChar, core.ColorBrightWhite)
	case *world.Coin:
		if o.Alpha() < 0.5 {
			return
		}
		if o.Type() == world.CoinGold {
			dst.SetColored(r.X, r.Y, GoldChar, core.ColorBrightYellow)
		} else {
			dst.SetColored(r.X, r.Y, SilverChar, core.ColorWhite)
		}
	case *world.Flag:
		for y := r.Y; y < r.Bottom(); y++ {
			dst.SetColored(r.X, y, PoleChar, core.ColorWhite)
		}
		dst.SetColored(r.X+1, r.Y, FlagChar, core.ColorBrightRed)
	case world.Enemy:
		dst.DrawRect(r, enemyChar(o), enemyColor(o))
	}
}

func enemyChar(e world.Enemy) rune {
	switch e.Kind() {
	case world.KindSnake:
		return SnakeChar
	case world.KindVulture:
		return VultureChar
	default:
		return ScorpionChar
	}
}

func enemyColor(e world.Enemy) core.Color {
	if e.Flashing() {
		return core.ColorBrightWhite
	}
	switch e.Kind() {
	case world.KindSnake:
		return core.ColorGreen
	case world.KindVulture:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

func drawPlayer(dst *core.Screen, v viewport, p *world.Player) {
	if p == nil || !p.Active() || p.Blinking() {
		return
	}
	r := v.cells(p.Bounds())
	if p.Dying() {
		dst.DrawRect(r, DyingChar, core.ColorRed)
		return
	}
	dst.DrawRect(r, PlayerChar, core.ColorBrightCyan)
}

// drawHUD draws hearts, score, level and lives on the top row.
func (g *Game) drawHUD(dst *core.Screen, snap engine.Snapshot) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), hudRows), ' ', core.ColorDefault)

	x := 1
	maxHearts := int(math.Ceil(g.cfg.Player.MaxHealth))
	for i := 0; i < maxHearts; i++ {
		if i < g.hud.hearts {
			dst.SetColored(x, 0, HeartFull, core.ColorBrightRed)
		} else {
			dst.SetColored(x, 0, HeartEmpty, core.ColorGray)
		}
		x++
	}

	level := fmt.Sprintf("Level: %d/%d", g.hud.level, g.cfg.Gameplay.FinalLevel)
	if snap.Mode == engine.ModeEndless {
		level = fmt.Sprintf("Level: %d", g.hud.level)
	}
	text := fmt.Sprintf("  Score: %d  %s  Lives: %d", g.hud.score, level, snap.Lives)
	dst.DrawTextColored(x, 0, text, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return fmt.Sprintf("%d %s", n, many)
}
