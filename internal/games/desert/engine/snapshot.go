package engine

import "github.com/vovakirdan/sandrunner/internal/games/desert/world"

// Snapshot is the read-only view a renderer needs for one frame.
// Objects and Player point into live engine state: they are valid until the
// next Update and must not be mutated.
type Snapshot struct {
	Phase  Phase
	Mode   Mode
	Level  int
	Lives  int
	Score  int
	Hearts int
	Health float64

	LevelWidth  float64
	LevelHeight float64
	GroundY     float64

	CameraX   float64
	ViewportW float64
	ViewportH float64

	Player  *world.Player
	Objects []world.Entity
}

// Snapshot collects the visible world for rendering.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:     e.phase,
		Mode:      e.mode,
		Level:     e.levelNumber,
		Lives:     e.lives,
		Score:     e.score.TotalScore(),
		GroundY:   e.cfg.Physics.GroundLevel,
		CameraX:   e.camera.X(),
		ViewportW: e.camera.ViewportWidth(),
		ViewportH: e.camera.ViewportHeight(),
	}
	if e.player != nil {
		s.Player = e.player
		s.Hearts = e.player.Hearts()
		s.Health = e.player.Health()
	}
	if e.level != nil {
		s.LevelWidth = e.level.Width()
		s.LevelHeight = e.level.Height()
		s.Objects = e.level.VisibleObjects(s.CameraX, s.ViewportW)
	}
	return s
}
