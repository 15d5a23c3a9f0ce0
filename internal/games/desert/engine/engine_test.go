package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/sandrunner/internal/config"
	"github.com/vovakirdan/sandrunner/internal/games/desert/world"
)

const frame = 1.0 / 60

type gameOverCall struct {
	won          bool
	score, level int
}

// recordingSink remembers everything the engine sends.
type recordingSink struct {
	mu         sync.Mutex
	scores     []int
	hearts     []int
	levels     []int
	deaths     []int
	onContinue func()
	onQuit     func()
	gameOvers  []gameOverCall
}

func (s *recordingSink) UpdateScore(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, v)
}

func (s *recordingSink) UpdateHearts(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hearts = append(s.hearts, v)
}

func (s *recordingSink) UpdateLevel(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.levels = append(s.levels, v)
}

func (s *recordingSink) ShowDeathDialog(remaining int, onContinue, onQuit func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deaths = append(s.deaths, remaining)
	s.onContinue, s.onQuit = onContinue, onQuit
}

func (s *recordingSink) ShowGameOverDialog(won bool, score, level int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gameOvers = append(s.gameOvers, gameOverCall{won, score, level})
}

func last(v []int) int {
	if len(v) == 0 {
		return -1
	}
	return v[len(v)-1]
}

func newTestEngine(t *testing.T, mutate func(*config.DesertConfig), opts ...Option) (*Engine, *recordingSink, *fakeClock) {
	t.Helper()
	cfg := config.DefaultDesertConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	sink := &recordingSink{}
	clock := newFakeClock()
	opts = append([]Option{WithSink(sink), WithClock(clock.Now), WithSeed(1)}, opts...)
	e := New(cfg, opts...)
	e.Start()
	return e, sink, clock
}

// stage replaces the generated level with a hand-built one of the given width.
func stage(e *Engine, width float64, build func(l *world.Level)) *world.Level {
	l := world.NewLevel(e.levelNumber, width, 720, nil)
	build(l)
	e.level.Cleanup()
	e.level = l
	e.player.SetLevelBounds(width)
	e.camera.SetLevelBounds(width, 720)
	return l
}

func runUntil(e *Engine, maxFrames int, done func() bool) bool {
	for i := 0; i < maxFrames; i++ {
		if done() {
			return true
		}
		e.Update(frame, Intents{})
	}
	return done()
}

func TestStartPublishesHUD(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)

	if e.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", e.Phase())
	}
	if last(sink.scores) != 0 || last(sink.hearts) != 3 || last(sink.levels) != 1 {
		t.Errorf("initial HUD = score %v hearts %v level %v", sink.scores, sink.hearts, sink.levels)
	}

	// Unchanged values are not re-sent
	e.level.Cleanup()
	e.level = world.NewLevel(1, 2000, 720, nil)
	e.Update(frame, Intents{})
	if len(sink.scores) != 1 || len(sink.hearts) != 1 || len(sink.levels) != 1 {
		t.Errorf("unchanged HUD values should not be re-sent: %v %v %v", sink.scores, sink.hearts, sink.levels)
	}
}

func TestPatrolHitsUntilDeath(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	cfg := e.Config()

	still := cfg.Enemies.Scorpion
	still.Speed = 0
	stage(e, 2000, func(l *world.Level) {
		l.AddEnemy(world.NewScorpion(e.player.X, cfg.Enemies.SpawnY, still, cfg.Enemies.Flash))
	})

	if !runUntil(e, 10, func() bool { return e.player.Health() < 3 }) {
		t.Fatal("scorpion should hit the player")
	}
	if e.player.Health() != 2.0 {
		t.Errorf("health after one hit = %f, expected 2.0", e.player.Health())
	}
	if last(sink.hearts) != 2 {
		t.Errorf("hearts shown = %d, expected 2", last(sink.hearts))
	}

	if !runUntil(e, 600, func() bool { return e.player.Health() < 2 }) {
		t.Fatal("second hit should land after invincibility")
	}
	if !runUntil(e, 600, func() bool { return e.player.Health() <= 0 }) {
		t.Fatal("third hit should land")
	}
	if !e.player.Dying() {
		t.Error("health 0 should start the death sequence")
	}

	e.Update(frame, Intents{})
	if e.Phase() != PhasePlayerDying {
		t.Fatalf("Phase() = %v, expected player_dying", e.Phase())
	}

	if !runUntil(e, 120, func() bool { return e.Phase() == PhaseAwaitingDecision }) {
		t.Fatalf("death animation should end in a decision, phase %v", e.Phase())
	}
	if len(sink.deaths) != 1 || sink.deaths[0] != 2 {
		t.Errorf("death dialog calls = %v, expected [2]", sink.deaths)
	}
}

func killPlayer(t *testing.T, e *Engine) {
	t.Helper()
	e.player.TakeDamage(e.player.Health())
	e.Update(frame, Intents{})
	if !runUntil(e, 120, func() bool { return e.Phase() != PhasePlayerDying }) {
		t.Fatal("death animation did not finish")
	}
}

func TestDeathDialogContinue(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	stage(e, 2000, func(*world.Level) {})
	e.player.X = 900

	killPlayer(t, e)
	if e.Phase() != PhaseAwaitingDecision {
		t.Fatalf("Phase() = %v, expected awaiting_decision", e.Phase())
	}

	// Simulation is blocked until a choice is made
	for i := 0; i < 10; i++ {
		e.Update(frame, Intents{Right: true})
	}
	if e.Phase() != PhaseAwaitingDecision {
		t.Fatal("engine should wait for the decision")
	}

	sink.onContinue()
	e.Update(frame, Intents{})
	if e.Phase() != PhaseRunning {
		t.Fatalf("Phase() = %v after continue, expected running", e.Phase())
	}
	if e.Lives() != 2 || e.player.Health() != 2 {
		t.Errorf("lives = %d health = %f, expected 2 and 2.0", e.Lives(), e.player.Health())
	}
	if e.player.X != e.cfg.Player.StartX {
		t.Errorf("player should respawn at level start, x = %f", e.player.X)
	}
	if last(sink.hearts) != 2 {
		t.Errorf("hearts shown = %d, expected 2", last(sink.hearts))
	}
}

func TestDeathDialogQuit(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	stage(e, 2000, func(*world.Level) {})
	e.score.AddScore(70)

	killPlayer(t, e)
	sink.onQuit()
	e.Update(frame, Intents{})

	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game_over", e.Phase())
	}
	want := gameOverCall{won: false, score: 70, level: 1}
	if len(sink.gameOvers) != 1 || sink.gameOvers[0] != want {
		t.Errorf("game over calls = %+v, expected %+v", sink.gameOvers, want)
	}
	if r := e.Result(); !r.Over || r.Won || r.Score != 70 {
		t.Errorf("Result() = %+v", r)
	}
}

func TestLastLifeEndsRun(t *testing.T) {
	e, sink, _ := newTestEngine(t, func(c *config.DesertConfig) { c.Gameplay.Lives = 1 })
	stage(e, 2000, func(*world.Level) {})

	killPlayer(t, e)
	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game_over", e.Phase())
	}
	if len(sink.deaths) != 0 {
		t.Error("no dialog should be shown without lives left")
	}
	if len(sink.gameOvers) != 1 || sink.gameOvers[0].won {
		t.Errorf("game over calls = %+v", sink.gameOvers)
	}
}

func TestDeathCallbacksResolveOnce(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	stage(e, 2000, func(*world.Level) {})
	killPlayer(t, e)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.onContinue()
			sink.onQuit()
		}()
	}
	wg.Wait()

	e.Update(frame, Intents{})
	phase := e.Phase()
	if phase != PhaseRunning && phase != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected a resolved dialog", phase)
	}
	if phase == PhaseRunning {
		for i := 0; i < 5; i++ {
			e.Update(frame, Intents{})
		}
		if e.Phase() != PhaseRunning || len(sink.gameOvers) != 0 {
			t.Error("a second callback should not change the outcome")
		}
	}
}

func TestStaleDialogIgnoredAfterReset(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	stage(e, 2000, func(*world.Level) {})
	killPlayer(t, e)
	staleQuit := sink.onQuit

	e.Restart()
	staleQuit()
	e.Update(frame, Intents{})
	if e.Phase() != PhaseRunning {
		t.Errorf("stale callback changed phase to %v", e.Phase())
	}
}

func TestFlagAdvancesLevel(t *testing.T) {
	e, sink, clock := newTestEngine(t, nil)
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.AddCoin(world.NewCoin(e.player.X, e.player.Y+10, world.CoinGold, cfg.Coins))
		l.SetFlag(world.NewFlag(e.player.X+5, cfg.Level.FlagY))
	})
	e.player.SetHealth(2.5)
	clock.Advance(12 * time.Second)

	e.Update(frame, Intents{})

	if e.LevelNumber() != 2 || last(sink.levels) != 2 {
		t.Fatalf("level = %d (sink %v), expected 2", e.LevelNumber(), sink.levels)
	}
	if e.player.Health() != 2.5 {
		t.Errorf("health = %f, expected carried 2.5", e.player.Health())
	}
	if e.level.Width() < 2000 {
		t.Errorf("level 2 width %f should not shrink", e.level.Width())
	}
	if got := e.score.CarriedScore(); got != 50+380 {
		t.Errorf("carried score = %d, expected coin 50 + bonus 380", got)
	}
	if e.score.CurrentScore() != 0 {
		t.Error("level score should reset after the flag")
	}
	if e.player.X != cfg.Player.StartX {
		t.Errorf("player should start level 2 at x %f, got %f", cfg.Player.StartX, e.player.X)
	}
}

func TestFatalHitOnFlagFrameKillsPlayer(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.AddObstacle(world.NewSpike(e.player.X, cfg.Obstacles.Spike.Y, cfg.Obstacles.Spike))
		l.SetFlag(world.NewFlag(e.player.X+5, cfg.Level.FlagY))
	})
	e.player.SetHealth(cfg.Obstacles.Spike.Damage)

	e.Update(frame, Intents{})

	if e.Phase() != PhasePlayerDying {
		t.Errorf("Phase() = %v, expected %v", e.Phase(), PhasePlayerDying)
	}
	if e.LevelNumber() != 1 || last(sink.levels) != 1 {
		t.Errorf("LevelNumber() = %d, expected 1", e.LevelNumber())
	}
}

func TestWidthGrowsAtTierBoundary(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	e.levelNumber = 3
	e.loadLevel(3)
	narrow := e.level.Width()
	health := e.player.Health()

	cfg := e.Config()
	stage(e, narrow, func(l *world.Level) {
		l.SetFlag(world.NewFlag(e.player.X, cfg.Level.FlagY))
	})
	e.Update(frame, Intents{})

	if e.LevelNumber() != 4 {
		t.Fatalf("level = %d, expected 4", e.LevelNumber())
	}
	if e.level.Width() <= narrow {
		t.Errorf("level 4 width %f should exceed level 3 width %f", e.level.Width(), narrow)
	}
	if e.player.Health() != health {
		t.Errorf("health = %f, expected %f", e.player.Health(), health)
	}
}

func TestCampaignWin(t *testing.T) {
	e, sink, _ := newTestEngine(t, func(c *config.DesertConfig) { c.Gameplay.FinalLevel = 1 })
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.SetFlag(world.NewFlag(e.player.X, cfg.Level.FlagY))
	})
	e.Update(frame, Intents{})

	if e.Phase() != PhaseGameOver {
		t.Fatalf("Phase() = %v, expected game_over", e.Phase())
	}
	want := gameOverCall{won: true, score: 500, level: 1}
	if len(sink.gameOvers) != 1 || sink.gameOvers[0] != want {
		t.Errorf("game over calls = %+v, expected %+v", sink.gameOvers, want)
	}

	// Game over is terminal until reset
	e.Update(frame, Intents{Right: true})
	if e.Phase() != PhaseGameOver {
		t.Error("engine should stay over until Reset")
	}
	e.Restart()
	if e.Phase() != PhaseRunning || e.LevelNumber() != 1 || e.Score() != 0 {
		t.Errorf("Restart should begin a fresh run: phase %v level %d score %d", e.Phase(), e.LevelNumber(), e.Score())
	}
}

func TestEndlessNeverWins(t *testing.T) {
	e, sink, _ := newTestEngine(t, func(c *config.DesertConfig) { c.Gameplay.FinalLevel = 1 }, WithMode(ModeEndless))
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.SetFlag(world.NewFlag(e.player.X, cfg.Level.FlagY))
	})
	e.Update(frame, Intents{})

	if e.Phase() != PhaseRunning || e.LevelNumber() != 2 {
		t.Errorf("endless run should continue to level 2, phase %v level %d", e.Phase(), e.LevelNumber())
	}
	if len(sink.gameOvers) != 0 {
		t.Error("endless run should not end on a flag")
	}
}

func TestAutoRestart(t *testing.T) {
	e, sink, _ := newTestEngine(t, func(c *config.DesertConfig) { c.Gameplay.Lives = 1 }, WithAutoRestart(true))
	stage(e, 2000, func(*world.Level) {})
	e.score.AddScore(40)

	killPlayer(t, e)
	if len(sink.gameOvers) != 1 {
		t.Fatalf("game over should be shown once, got %d", len(sink.gameOvers))
	}
	if e.Phase() != PhaseRunning || e.Score() != 0 || e.player.Health() != 3 {
		t.Errorf("auto restart should resume a fresh run: phase %v score %d health %f",
			e.Phase(), e.Score(), e.player.Health())
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	e, sink, _ := newTestEngine(t, nil)
	cfg := e.Config()
	var coin *world.Coin
	stage(e, 2000, func(l *world.Level) {
		coin = world.NewCoin(e.player.X, e.player.Y+10, world.CoinSilver, cfg.Coins)
		l.AddCoin(coin)
	})

	for i := 0; i < 10; i++ {
		e.Update(frame, Intents{})
	}
	if e.Score() != 10 || last(sink.scores) != 10 {
		t.Errorf("score = %d (sink %v), expected 10", e.Score(), sink.scores)
	}
	if !coin.Collected() {
		t.Error("coin should be collected")
	}
}

func TestSpikeDamageAndPenalty(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.AddObstacle(world.NewSpike(e.player.X, cfg.Obstacles.Spike.Y, cfg.Obstacles.Spike))
	})
	e.score.AddScore(20)

	e.Update(frame, Intents{})
	if e.player.Health() != 2.5 {
		t.Errorf("health = %f, expected 2.5", e.player.Health())
	}
	if e.score.CurrentScore() != 15 {
		t.Errorf("score = %d, expected 15 after penalty", e.score.CurrentScore())
	}

	// Invincible: no damage, no penalty
	e.Update(frame, Intents{})
	if e.score.CurrentScore() != 15 {
		t.Errorf("penalty applied without damage, score %d", e.score.CurrentScore())
	}
}

func TestPlatformLandingAndCarry(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	cfg := e.Config()
	var platform *world.MovingPlatform
	stage(e, 2000, func(l *world.Level) {
		platform = world.NewMovingPlatform(e.player.X-20, 500, cfg.Obstacles.Platform)
		l.AddObstacle(platform)
	})
	// Drop the player from above the platform
	e.player.ResetAt(e.player.X, 400)

	landed := runUntil(e, 120, func() bool {
		return !e.player.Jumping() && e.player.Y+e.player.H == platform.Y
	})
	if !landed {
		t.Fatalf("player should stand on the platform, feet at %f, platform top %f", e.player.Y+e.player.H, platform.Y)
	}

	startX := e.player.X
	for i := 0; i < 30; i++ {
		e.Update(frame, Intents{})
	}
	if e.player.X <= startX {
		t.Errorf("platform moving right should carry the player, x %f -> %f", startX, e.player.X)
	}
	if e.player.Y+e.player.H > platform.Y+1 {
		t.Errorf("player should stay on top, feet at %f, top %f", e.player.Y+e.player.H, platform.Y)
	}
}

func TestWalkingUnderPlatformDoesNotSnap(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.AddObstacle(world.NewMovingPlatform(e.player.X+40, cfg.Physics.GroundLevel-30, cfg.Obstacles.Platform))
	})
	for i := 0; i < 60; i++ {
		e.Update(frame, Intents{Right: true})
	}
	if e.player.Y+e.player.H != cfg.Physics.GroundLevel {
		t.Errorf("side contact should not lift the player, feet at %f", e.player.Y+e.player.H)
	}
}

func TestPauseResetsFrameDelta(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	stage(e, 2000, func(*world.Level) {})
	t0 := time.Unix(100, 0)

	e.Tick(t0, Intents{})
	e.Tick(t0.Add(50*time.Millisecond), Intents{Right: true})
	x := e.player.X

	e.Pause()
	if e.Phase() != PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", e.Phase())
	}
	e.Tick(t0.Add(10*time.Second), Intents{Right: true})
	if e.player.X != x {
		t.Error("paused ticks should not move the player")
	}

	e.TogglePause()
	e.Tick(t0.Add(20*time.Second), Intents{})
	vx, _ := e.player.Velocity()
	if e.player.X != x {
		t.Errorf("first tick after resume should use dt 0, x moved %f -> %f (vx %f)", x, e.player.X, vx)
	}
}

func TestPausedTimeKeepsLevelBonus(t *testing.T) {
	e, sink, clock := newTestEngine(t, nil)
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.SetFlag(world.NewFlag(e.player.X+5, cfg.Level.FlagY))
	})

	clock.Advance(2 * time.Second)
	e.Pause()
	clock.Advance(10 * time.Second)
	e.Resume()
	e.Update(frame, Intents{})

	if e.LevelNumber() != 2 || last(sink.levels) != 2 {
		t.Fatalf("level = %d, expected the flag to advance to 2", e.LevelNumber())
	}
	if got := e.score.CarriedScore(); got != 480 {
		t.Errorf("carried score = %d, expected bonus 480 for 2s of play", got)
	}
}

func TestTickCapsDelta(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	stage(e, 5000, func(*world.Level) {})
	t0 := time.Unix(100, 0)

	e.Tick(t0, Intents{})
	e.player.ResetAt(e.player.X, 570)
	e.Tick(t0.Add(5*time.Second), Intents{Right: true})

	// One capped step: 0.1s of acceleration, then 0.1s of travel
	limit := min(e.cfg.Player.Acceleration*0.1, e.cfg.Player.Speed) * 0.1
	if moved := e.player.X - e.cfg.Player.StartX; moved > limit+1e-9 {
		t.Errorf("player moved %f in one capped tick", moved)
	}
}

func TestNoOpsWithoutRun(t *testing.T) {
	e := New(config.DefaultDesertConfig())
	e.Update(frame, Intents{Left: true, Jump: true})
	e.Tick(time.Now(), Intents{Right: true})
	e.Pause()
	e.Resume()
	e.Shutdown()

	snap := e.Snapshot()
	if snap.Player != nil || snap.Objects != nil {
		t.Error("snapshot before Start should be empty")
	}
	if e.Phase() != PhaseInitializing {
		t.Errorf("Phase() = %v, expected initializing", e.Phase())
	}
}

func TestShutdownReleasesLevel(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	enemies := e.level.Enemies()
	e.Shutdown()
	for _, en := range enemies {
		if en.Active() {
			t.Fatal("shutdown should deactivate level entities")
		}
	}
	e.Update(frame, Intents{Right: true})
	if e.Phase() != PhaseInitializing {
		t.Errorf("Phase() = %v after shutdown", e.Phase())
	}
}

func TestSnapshotVisibleObjects(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	snap := e.Snapshot()

	if snap.Player == nil || snap.Level != 1 || snap.Hearts != 3 {
		t.Fatalf("snapshot = %+v", snap)
	}
	for _, obj := range snap.Objects {
		b := obj.Bounds()
		if b.Right() < snap.CameraX || b.X > snap.CameraX+snap.ViewportW {
			t.Errorf("%v at %f is outside the viewport", obj.Kind(), b.X)
		}
		if !obj.Active() {
			t.Errorf("inactive %v in snapshot", obj.Kind())
		}
	}
}

type countingObserver struct {
	frames, coins, hits, levels, deaths, overs int
}

func (o *countingObserver) FrameDone(float64, int) { o.frames++ }
func (o *countingObserver) CoinCollected(int) { o.coins++ }
func (o *countingObserver) PlayerHit(float64) { o.hits++ }
func (o *countingObserver) LevelCompleted(int, int) { o.levels++ }
func (o *countingObserver) PlayerDied(int) { o.deaths++ }
func (o *countingObserver) GameOver(bool, int, int) { o.overs++ }

func TestObserverEvents(t *testing.T) {
	obs := &countingObserver{}
	e, _, _ := newTestEngine(t, func(c *config.DesertConfig) { c.Gameplay.Lives = 1 }, WithObserver(obs))
	cfg := e.Config()
	stage(e, 2000, func(l *world.Level) {
		l.AddCoin(world.NewCoin(e.player.X, e.player.Y+10, world.CoinSilver, cfg.Coins))
		l.AddObstacle(world.NewSpike(e.player.X, cfg.Obstacles.Spike.Y, cfg.Obstacles.Spike))
		l.SetFlag(world.NewFlag(e.player.X, cfg.Level.FlagY))
	})

	e.Update(frame, Intents{})
	if obs.frames != 1 || obs.coins != 1 || obs.hits != 1 || obs.levels != 1 {
		t.Errorf("after one frame: %+v", *obs)
	}

	killPlayer(t, e)
	if obs.deaths != 1 || obs.overs != 1 {
		t.Errorf("after death: %+v", *obs)
	}
}
