package engine

// Observer receives simulation events for metrics. Calls happen on the
// goroutine driving the engine and must return quickly.
type Observer interface {
	FrameDone(dt float64, nearby int)
	CoinCollected(value int)
	PlayerHit(damage float64)
	LevelCompleted(level, levelScore int)
	PlayerDied(livesLeft int)
	GameOver(won bool, score, level int)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) FrameDone(float64, int) {}
func (NopObserver) CoinCollected(int) {}
func (NopObserver) PlayerHit(float64) {}
func (NopObserver) LevelCompleted(int, int) {}
func (NopObserver) PlayerDied(int) {}
func (NopObserver) GameOver(bool, int, int) {}
