// Package desert adapts the desert runner engine to the game registry.
// The engine owns the simulation; this package turns platform input frames
// into movement intents, collects HUD updates through the engine's Sink and
// draws snapshots into a character screen.
package desert

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandrunner/internal/config"
	"github.com/vovakirdan/sandrunner/internal/core"
	"github.com/vovakirdan/sandrunner/internal/games/desert/engine"
	"github.com/vovakirdan/sandrunner/internal/registry"
)

const (
	// IDCampaign is the ten-level campaign.
	IDCampaign = "desert"
	// IDEndless keeps generating levels until the player runs out of lives.
	IDEndless = "desert_endless"

	// holdDuration keeps a direction held after its last key event.
	// Terminals only report presses, so auto-repeat has to bridge the gap.
	holdDuration = 350 * time.Millisecond

	defaultTickRate = 60
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
	observer         engine.Observer = engine.NopObserver{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config's own difficulty settings.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes engine logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetObserver installs a metrics observer for new runs. Nil disables it.
func SetObserver(o engine.Observer) {
	if o == nil {
		o = engine.NopObserver{}
	}
	observer = o
}

// Game implements registry.Game for the desert runner.
type Game struct {
	id    string
	title string
	mode  engine.Mode

	cfg     config.DesertConfig
	runtime core.RuntimeConfig
	eng     *engine.Engine
	hud     *hud

	// Synthetic clock advanced once per Step, so time bonuses follow game
	// time rather than wall time.
	now      time.Time
	interval time.Duration

	holdTicks int
	heldLeft  int
	heldRight int
}

// New creates the campaign game.
func New() *Game {
	return &Game{id: IDCampaign, title: "Desert Runner", mode: engine.ModeCampaign, hud: &hud{}}
}

// NewEndless creates the endless game.
func NewEndless() *Game {
	return &Game{id: IDEndless, title: "Desert Runner (Endless)", mode: engine.ModeEndless, hud: &hud{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	dc, err := config.LoadDesert(configPath)
	if err != nil {
		logger.Warn("could not load config, using defaults", "path", configPath, "err", err)
		dc = config.DefaultDesertConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDesertPreset(&dc, difficultyPreset)
	}
	g.cfg = dc

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	g.interval = time.Second / time.Duration(tickRate)
	g.holdTicks = int(math.Ceil(holdDuration.Seconds() * float64(tickRate)))
	g.heldLeft, g.heldRight = 0, 0
	g.now = time.Unix(0, 0)
	g.hud = &hud{}

	if g.eng != nil {
		g.eng.Shutdown()
	}
	g.eng = engine.New(dc,
		engine.WithSink(g.hud),
		engine.WithObserver(observer),
		engine.WithLogger(logger.With("game", g.id)),
		engine.WithClock(g.clock),
		engine.WithSeed(cfg.Seed),
		engine.WithMode(g.mode),
	)
	g.eng.Start()
}

func (g *Game) clock() time.Time {
	return g.now
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		return core.StepResult{State: g.State()}
	}
	g.now = g.now.Add(g.interval)

	if g.hud.death != nil {
		g.answerDeath(in)
	}
	if g.eng.Phase() == engine.PhaseGameOver {
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.hud.over = nil
			g.heldLeft, g.heldRight = 0, 0
			g.eng.Restart()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.eng.TogglePause()
	}
	g.eng.Tick(g.now, g.intents(in))

	return core.StepResult{State: g.State()}
}

// answerDeath resolves the death prompt from player input. The engine
// applies the answer on its next tick.
func (g *Game) answerDeath(in core.InputFrame) {
	prompt := g.hud.death
	switch {
	case in.Has(core.ActionContinue), in.Has(core.ActionConfirm):
		g.hud.death = nil
		prompt.onContinue()
	case in.Has(core.ActionBack):
		g.hud.death = nil
		prompt.onQuit()
	}
}

// intents converts a frame of key presses into held movement.
func (g *Game) intents(in core.InputFrame) engine.Intents {
	switch {
	case in.Has(core.ActionLeft):
		g.heldLeft, g.heldRight = g.holdTicks, 0
	case in.Has(core.ActionRight):
		g.heldRight, g.heldLeft = g.holdTicks, 0
	default:
		g.heldLeft = max(0, g.heldLeft-1)
		g.heldRight = max(0, g.heldRight-1)
	}
	return engine.Intents{
		Left:  g.heldLeft > 0,
		Right: g.heldRight > 0,
		Jump:  in.Has(core.ActionJump),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:  g.hud.score,
		Level:  g.hud.level,
		Hearts: g.hud.hearts,
	}
	if g.eng == nil {
		return s
	}
	if r := g.eng.Result(); r.Over && g.eng.Phase() == engine.PhaseGameOver {
		s.GameOver = true
		s.Won = r.Won
		s.Score = r.Score
		s.Level = r.Level
	}
	s.Paused = g.eng.Phase() == engine.PhasePaused
	return s
}

// Lives returns the lives left in the current run.
func (g *Game) Lives() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.Lives()
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}
