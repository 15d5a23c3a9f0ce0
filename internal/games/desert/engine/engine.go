// Package engine drives a desert run: it owns the player, the current level,
// the camera and the score, and advances them once per tick.
//
// The engine is single-threaded. Only the death-dialog callbacks handed to
// the Sink may be called from other goroutines; their decision is applied
// on the next tick.
package engine

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sandrunner/internal/config"
	"github.com/vovakirdan/sandrunner/internal/games/desert/levelgen"
	"github.com/vovakirdan/sandrunner/internal/games/desert/world"
)

// decisionBuffer holds late callbacks from stale dialogs without blocking the UI.
const decisionBuffer = 8

type choice int

const (
	choiceContinue choice = iota
	choiceQuit
)

type decision struct {
	dialog uint64
	choice choice
}

// Engine runs the simulation.
type Engine struct {
	cfg  config.DesertConfig
	mode Mode
	seed int64

	sink Sink
	obs  Observer
	log  *log.Logger
	now  func() time.Time

	gen    *levelgen.Generator
	level  *world.Level
	player *world.Player
	camera *world.Camera
	score  *ScoreTracker

	phase       Phase
	levelNumber int
	lives       int
	result      Result
	autoRestart bool

	lastFrame time.Time
	hasFrame  bool

	decisions chan decision
	dialog    uint64

	sent struct {
		valid                bool
		score, hearts, level int
	}
}

// New creates an engine in the Initializing phase. Call Start to begin.
func New(cfg config.DesertConfig, opts ...Option) *Engine {
	e := &Engine{
		cfg:       cfg,
		sink:      NopSink{},
		obs:       NopObserver{},
		log:       log.New(io.Discard),
		now:       time.Now,
		decisions: make(chan decision, decisionBuffer),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.camera = world.NewCamera(cfg.Camera.ViewportWidth, cfg.Camera.ViewportHeight, cfg.Camera.Smoothing)
	e.score = NewScoreTracker(cfg.Scoring, e.now)
	e.gen = levelgen.New(cfg, e.seed)
	return e
}

// Start builds level 1 with a fresh player and enters Running.
// It does nothing unless the engine is Initializing.
func (e *Engine) Start() {
	if e.phase != PhaseInitializing {
		return
	}
	e.levelNumber = 1
	e.lives = e.cfg.Gameplay.Lives
	e.result = Result{}
	e.score.Reset()
	e.player = world.NewPlayer(e.cfg.Player, e.cfg.Physics)
	e.loadLevel(1)
	e.hasFrame = false
	e.sent.valid = false
	e.setPhase(PhaseRunning)
	e.log.Info("run started", "mode", e.mode, "lives", e.lives, "seed", e.seed)
	e.publish()
}

// Reset discards the run and returns to Initializing. Pending dialogs are
// invalidated.
func (e *Engine) Reset() {
	e.dialog++
	e.drainDecisions()
	e.level.Cleanup()
	e.level = nil
	e.player = nil
	e.hasFrame = false
	e.setPhase(PhaseInitializing)
}

// Restart is Reset followed by Start.
func (e *Engine) Restart() {
	e.Reset()
	e.Start()
}

// Shutdown releases the current level. The engine stays inert until Start.
func (e *Engine) Shutdown() {
	e.Reset()
	e.log.Debug("engine shut down")
}

// Pause suspends a running game. Ticks are no-ops until Resume.
func (e *Engine) Pause() {
	if e.phase != PhaseRunning {
		return
	}
	e.hasFrame = false
	e.score.Pause()
	e.setPhase(PhasePaused)
}

// Resume continues a paused game without replaying the paused time.
func (e *Engine) Resume() {
	if e.phase != PhasePaused {
		return
	}
	e.hasFrame = false
	e.score.Resume()
	e.setPhase(PhaseRunning)
}

// TogglePause switches between Running and Paused.
func (e *Engine) TogglePause() {
	switch e.phase {
	case PhaseRunning:
		e.Pause()
	case PhasePaused:
		e.Resume()
	}
}

// Tick advances the simulation to wall-clock time now. The first tick after
// Start, Resume or a decision only records the timestamp. dt is capped by
// the configured maximum frame delta.
func (e *Engine) Tick(now time.Time, in Intents) {
	if e.phase == PhasePaused {
		return
	}
	dt := 0.0
	if e.hasFrame {
		dt = now.Sub(e.lastFrame).Seconds()
	}
	e.lastFrame = now
	e.hasFrame = true
	if dt < 0 {
		dt = 0
	}
	if limit := e.cfg.Physics.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}
	e.Update(dt, in)
}

// Update advances the simulation by a fixed dt seconds.
func (e *Engine) Update(dt float64, in Intents) {
	if dt < 0 {
		dt = 0
	}
	switch e.phase {
	case PhaseRunning:
		e.stepRunning(dt, in)
	case PhasePlayerDying:
		e.stepDying(dt)
	case PhaseAwaitingDecision:
		e.applyDecision()
	}
}

// stepRunning is one gameplay frame: input, player, level, collisions,
// HUD, completion, death.
func (e *Engine) stepRunning(dt float64, in Intents) {
	if e.player == nil || e.level == nil {
		return
	}
	e.applyIntents(in)
	e.player.Update(dt)

	radius := e.cfg.Level.CullRadius
	e.level.UpdateEfficiently(dt, e.player.X, radius)

	nearby := e.level.ObjectsNearPlayer(e.player.X, radius)
	reachedFlag := e.resolveCollisions(nearby)
	e.camera.Follow(e.player)
	e.publish()
	e.obs.FrameDone(dt, len(nearby))

	// Death wins over a flag touched on the same frame
	if e.player.Dying() || !e.player.Active() {
		e.log.Debug("player dying", "level", e.levelNumber, "health", e.player.Health())
		e.setPhase(PhasePlayerDying)
		return
	}
	if reachedFlag || e.level.IsCompleted(e.player) {
		e.advanceLevel()
	}
}

func (e *Engine) applyIntents(in Intents) {
	switch {
	case in.Left && !in.Right:
		e.player.MoveLeft()
	case in.Right && !in.Left:
		e.player.MoveRight()
	default:
		e.player.StopMoving()
	}
	if in.Jump {
		e.player.Jump()
	}
}

// stepDying runs the death animation with the world frozen.
func (e *Engine) stepDying(dt float64) {
	if e.player == nil {
		return
	}
	e.player.Update(dt)
	e.camera.Follow(e.player)
	if !e.player.Active() {
		e.handleDeath()
	}
}

// handleDeath spends a life and either asks the UI whether to continue or
// ends the run.
func (e *Engine) handleDeath() {
	e.lives--
	e.obs.PlayerDied(e.lives)
	e.log.Info("player died", "level", e.levelNumber, "lives", e.lives)
	if e.lives <= 0 {
		e.lives = 0
		e.gameOver(false)
		return
	}

	e.setPhase(PhaseAwaitingDecision)
	e.dialog++
	onContinue, onQuit := e.dialogCallbacks(e.dialog)
	e.sink.ShowDeathDialog(e.lives, onContinue, onQuit)
}

// dialogCallbacks returns callbacks that resolve dialog id at most once.
func (e *Engine) dialogCallbacks(id uint64) (onContinue, onQuit func()) {
	var once sync.Once
	resolve := func(c choice) {
		once.Do(func() {
			select {
			case e.decisions <- decision{dialog: id, choice: c}:
			default:
			}
		})
	}
	return func() { resolve(choiceContinue) }, func() { resolve(choiceQuit) }
}

// applyDecision consumes a pending choice for the current dialog.
func (e *Engine) applyDecision() {
	for {
		select {
		case d := <-e.decisions:
			if d.dialog != e.dialog {
				continue
			}
			if d.choice == choiceContinue {
				e.continueRun()
			} else {
				e.gameOver(false)
			}
			return
		default:
			return
		}
	}
}

func (e *Engine) drainDecisions() {
	for {
		select {
		case <-e.decisions:
		default:
			return
		}
	}
}

// continueRun respawns the player at the level start with one heart per
// remaining life.
func (e *Engine) continueRun() {
	health := min(float64(e.lives), e.cfg.Player.MaxHealth)
	e.player.Respawn(e.cfg.Player.StartX, e.cfg.Player.StartY, health)
	e.player.SetLevelBounds(e.level.Width())
	e.camera.Snap(e.player)
	e.hasFrame = false
	e.setPhase(PhaseRunning)
	e.log.Info("run continued", "level", e.levelNumber, "health", health)
	e.publish()
}

// advanceLevel banks the level score and loads the next level, keeping the
// player's health.
func (e *Engine) advanceLevel() {
	e.setPhase(PhaseLevelTransition)
	levelScore := e.score.CalculateLevelScore()
	e.obs.LevelCompleted(e.levelNumber, levelScore)
	e.log.Info("level completed", "level", e.levelNumber, "level_score", levelScore, "total", e.score.TotalScore())

	if e.mode == ModeCampaign && e.levelNumber >= e.cfg.Gameplay.FinalLevel {
		e.gameOver(true)
		return
	}

	e.levelNumber++
	e.loadLevel(e.levelNumber)
	e.setPhase(PhaseRunning)
	e.publish()
}

// loadLevel replaces the current level and puts the player at its start.
func (e *Engine) loadLevel(n int) {
	e.level.Cleanup()
	e.level = e.gen.CreateLevel(n)
	e.player.SetLevelBounds(e.level.Width())
	e.player.ResetAt(e.cfg.Player.StartX, e.cfg.Player.StartY)
	e.camera.SetLevelBounds(e.level.Width(), e.level.Height())
	e.camera.Snap(e.player)
	e.score.StartLevelTimer()
	c := e.level.Counts()
	e.log.Debug("level loaded", "level", n, "width", e.level.Width(),
		"enemies", c.Enemies, "platforms", c.Platforms, "spikes", c.Spikes, "coins", c.Coins)
}

// gameOver ends the run. A win has already banked its time bonus; a loss
// scores the carried total plus the unfinished level.
func (e *Engine) gameOver(won bool) {
	score := e.score.FinalScore()
	e.result = Result{Over: true, Won: won, Score: score, Level: e.levelNumber}
	e.setPhase(PhaseGameOver)
	e.publish()
	e.log.Info("game over", "won", won, "score", score, "level", e.levelNumber)
	e.obs.GameOver(won, score, e.levelNumber)
	e.sink.ShowGameOverDialog(won, score, e.levelNumber)

	if e.autoRestart {
		e.Restart()
	}
}

// publish sends changed HUD values to the sink.
func (e *Engine) publish() {
	score := e.score.TotalScore()
	hearts := 0
	if e.player != nil {
		hearts = e.player.Hearts()
	}
	if !e.sent.valid || e.sent.score != score {
		e.sink.UpdateScore(score)
	}
	if !e.sent.valid || e.sent.hearts != hearts {
		e.sink.UpdateHearts(hearts)
	}
	if !e.sent.valid || e.sent.level != e.levelNumber {
		e.sink.UpdateLevel(e.levelNumber)
	}
	e.sent.valid = true
	e.sent.score, e.sent.hearts, e.sent.level = score, hearts, e.levelNumber
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.log.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Mode returns the run mode.
func (e *Engine) Mode() Mode { return e.mode }

// LevelNumber returns the 1-based level number, 0 before Start.
func (e *Engine) LevelNumber() int { return e.levelNumber }

// Lives returns the remaining lives.
func (e *Engine) Lives() int { return e.lives }

// Score returns the score shown on the HUD.
func (e *Engine) Score() int { return e.score.TotalScore() }

// TimeBonus returns the bonus the current level would bank if it ended now.
func (e *Engine) TimeBonus() int { return e.score.TimeBonus() }

// Result returns how the run ended. Over is false while it is still going.
func (e *Engine) Result() Result { return e.result }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() config.DesertConfig { return e.cfg }
