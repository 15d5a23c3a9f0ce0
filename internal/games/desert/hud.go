package desert

// hud is the engine.Sink for terminal play. It keeps the latest values and
// the open dialog for the renderer and the input handler.
type hud struct {
	score  int
	hearts int
	level  int

	death *deathPrompt
	over  *gameOverInfo
}

type deathPrompt struct {
	livesLeft  int
	onContinue func()
	onQuit     func()
}

type gameOverInfo struct {
	won   bool
	score int
	level int
}

func (h *hud) UpdateScore(score int) { h.score = score }

func (h *hud) UpdateHearts(hearts int) { h.hearts = hearts }

func (h *hud) UpdateLevel(level int) { h.level = level }

func (h *hud) ShowDeathDialog(livesLeft int, onContinue, onQuit func()) {
	h.death = &deathPrompt{livesLeft: livesLeft, onContinue: onContinue, onQuit: onQuit}
}

func (h *hud) ShowGameOverDialog(won bool, score, level int) {
	h.death = nil
	h.over = &gameOverInfo{won: won, score: score, level: level}
}
