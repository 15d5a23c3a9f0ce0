package engine

// Phase is the engine's lifecycle state.
type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseRunning
	PhasePaused
	PhaseLevelTransition
	PhasePlayerDying
	PhaseAwaitingDecision
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseLevelTransition:
		return "level_transition"
	case PhasePlayerDying:
		return "player_dying"
	case PhaseAwaitingDecision:
		return "awaiting_decision"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Mode selects how a run ends.
type Mode int

const (
	// ModeCampaign wins after the final level's flag.
	ModeCampaign Mode = iota
	// ModeEndless keeps generating levels until the player runs out of lives.
	ModeEndless
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// Intents is the player input for one tick.
type Intents struct {
	Left  bool
	Right bool
	Jump  bool
}

// Result describes how a finished run ended.
type Result struct {
	Over  bool
	Won   bool
	Score int
	Level int
}
