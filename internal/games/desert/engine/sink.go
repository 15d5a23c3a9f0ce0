package engine

// Sink receives plain data from the engine for display.
// Score, hearts and level updates are only sent when the value changed.
// Dialog calls must not block; the UI resolves a death dialog later by
// calling exactly one of the supplied callbacks from any goroutine.
type Sink interface {
	UpdateScore(score int)
	UpdateHearts(hearts int)
	UpdateLevel(level int)
	ShowDeathDialog(heartsRemaining int, onContinue, onQuit func())
	ShowGameOverDialog(won bool, score, level int)
}

// NopSink discards everything. A death dialog shown to it is never resolved.
type NopSink struct{}

func (NopSink) UpdateScore(int) {}
func (NopSink) UpdateHearts(int) {}
func (NopSink) UpdateLevel(int) {}
func (NopSink) ShowDeathDialog(int, func(), func()) {}
func (NopSink) ShowGameOverDialog(bool, int, int) {}
