package engine

import (
	"time"

	"github.com/vovakirdan/sandrunner/internal/config"
)

// ScoreTracker accumulates points per level and carries them across levels.
// It is not safe for concurrent use.
type ScoreTracker struct {
	total      int
	current    int
	levelStart time.Time
	pausedAt   time.Time
	paused     bool

	timeBonus  int
	bonusDecay int
	penalty    int

	now func() time.Time
}

// NewScoreTracker creates a tracker reading time from now.
func NewScoreTracker(cfg config.DesertScoring, now func() time.Time) *ScoreTracker {
	if now == nil {
		now = time.Now
	}
	s := &ScoreTracker{
		timeBonus:  cfg.TimeBonus,
		bonusDecay: cfg.BonusDecay,
		penalty:    cfg.DamagePenalty,
		now:        now,
	}
	s.levelStart = now()
	return s
}

// StartLevelTimer marks the start of a level for the time bonus.
func (s *ScoreTracker) StartLevelTimer() {
	s.levelStart = s.now()
	s.paused = false
}

// Pause stops the level timer. Time until Resume does not reduce the bonus.
func (s *ScoreTracker) Pause() {
	if s.paused {
		return
	}
	s.pausedAt = s.now()
	s.paused = true
}

// Resume restarts the level timer, shifting the level start past the pause.
func (s *ScoreTracker) Resume() {
	if !s.paused {
		return
	}
	if d := s.now().Sub(s.pausedAt); d > 0 {
		s.levelStart = s.levelStart.Add(d)
	}
	s.paused = false
}

// elapsed is the unpaused time spent on the current level.
func (s *ScoreTracker) elapsed() time.Duration {
	end := s.now()
	if s.paused {
		end = s.pausedAt
	}
	return end.Sub(s.levelStart)
}

// AddScore adds points to the current level. The level score never goes below 0.
func (s *ScoreTracker) AddScore(points int) {
	s.current += points
	if s.current < 0 {
		s.current = 0
	}
}

// ApplyDamagePenalty removes the flat damage penalty, flooring at 0.
func (s *ScoreTracker) ApplyDamagePenalty() {
	s.AddScore(-s.penalty)
}

// TimeBonus returns the bonus earned if the level ended now.
func (s *ScoreTracker) TimeBonus() int {
	seconds := int(s.elapsed() / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return max(0, s.timeBonus-s.bonusDecay*seconds)
}

// CalculateLevelScore closes the level: the level score plus time bonus moves
// into the carried total and the level score resets. It returns the amount
// carried.
func (s *ScoreTracker) CalculateLevelScore() int {
	levelScore := s.current + s.TimeBonus()
	s.total += levelScore
	s.current = 0
	return levelScore
}

// FinalScore returns the score for a run that ends without finishing the
// current level: carried total plus level score, no bonus.
func (s *ScoreTracker) FinalScore() int {
	return s.total + s.current
}

// TotalScore returns the score shown on the HUD.
func (s *ScoreTracker) TotalScore() int {
	return s.total + s.current
}

// CarriedScore returns the total from completed levels.
func (s *ScoreTracker) CarriedScore() int {
	return s.total
}

// CurrentScore returns the score earned on the current level.
func (s *ScoreTracker) CurrentScore() int {
	return s.current
}

// Reset clears all scores and restarts the level timer.
func (s *ScoreTracker) Reset() {
	s.total = 0
	s.current = 0
	s.levelStart = s.now()
	s.paused = false
}
