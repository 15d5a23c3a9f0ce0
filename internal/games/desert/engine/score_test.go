package engine

import (
	"testing"
	"time"

	"github.com/vovakirdan/sandrunner/internal/config"
)

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestTracker(clock *fakeClock) *ScoreTracker {
	return NewScoreTracker(config.DefaultDesertConfig().Scoring, clock.Now)
}

func TestAddScoreClampsAtZero(t *testing.T) {
	s := newTestTracker(newFakeClock())
	s.AddScore(30)
	s.AddScore(-100)
	if s.CurrentScore() != 0 {
		t.Errorf("CurrentScore() = %d, expected 0", s.CurrentScore())
	}
}

func TestDamagePenalty(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		expected int
	}{
		{"enough points", 20, 15},
		{"exactly the penalty", 5, 0},
		{"fewer than the penalty", 3, 0},
		{"nothing to lose", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestTracker(newFakeClock())
			s.AddScore(tc.start)
			s.ApplyDamagePenalty()
			if s.CurrentScore() != tc.expected {
				t.Errorf("after penalty score = %d, expected %d", s.CurrentScore(), tc.expected)
			}
		})
	}
}

func TestTimeBonus(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		bonus   int
	}{
		{0, 500},
		{900 * time.Millisecond, 500}, // partial seconds do not count
		{12 * time.Second, 380},
		{50 * time.Second, 0},
		{10 * time.Minute, 0},
	}

	for _, tc := range tests {
		clock := newFakeClock()
		s := newTestTracker(clock)
		s.StartLevelTimer()
		clock.Advance(tc.elapsed)
		if got := s.TimeBonus(); got != tc.bonus {
			t.Errorf("TimeBonus() after %v = %d, expected %d", tc.elapsed, got, tc.bonus)
		}
	}
}

func TestCalculateLevelScoreCarries(t *testing.T) {
	clock := newFakeClock()
	s := newTestTracker(clock)

	s.StartLevelTimer()
	s.AddScore(60)
	clock.Advance(10 * time.Second)
	if got := s.CalculateLevelScore(); got != 460 {
		t.Errorf("level score = %d, expected 60 + 400", got)
	}
	if s.CurrentScore() != 0 || s.CarriedScore() != 460 {
		t.Errorf("current = %d, carried = %d; expected 0, 460", s.CurrentScore(), s.CarriedScore())
	}

	s.StartLevelTimer()
	s.AddScore(10)
	if s.FinalScore() != 470 || s.TotalScore() != 470 {
		t.Errorf("FinalScore() = %d, TotalScore() = %d; expected 470", s.FinalScore(), s.TotalScore())
	}

	s.Reset()
	if s.TotalScore() != 0 {
		t.Errorf("Reset should clear scores, got %d", s.TotalScore())
	}
}

func TestTimeBonusExcludesPause(t *testing.T) {
	clock := newFakeClock()
	s := newTestTracker(clock)

	clock.Advance(3 * time.Second)
	s.Pause()
	s.Pause()
	clock.Advance(20 * time.Second)
	if got := s.TimeBonus(); got != 470 {
		t.Errorf("TimeBonus() while paused = %d, expected 470", got)
	}

	s.Resume()
	s.Resume()
	clock.Advance(2 * time.Second)
	if got := s.TimeBonus(); got != 450 {
		t.Errorf("TimeBonus() after resume = %d, expected 450", got)
	}

	s.Pause()
	s.StartLevelTimer()
	clock.Advance(4 * time.Second)
	if got := s.TimeBonus(); got != 460 {
		t.Errorf("a new level should clear the pause, TimeBonus() = %d, expected 460", got)
	}
}
