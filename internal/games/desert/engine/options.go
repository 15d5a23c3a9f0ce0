package engine

import (
	"time"

	"github.com/charmbracelet/log"
)

// Option configures an Engine.
type Option func(*Engine)

// WithSink sets the UI collaborator.
func WithSink(s Sink) Option {
	return func(e *Engine) {
		if s != nil {
			e.sink = s
		}
	}
}

// WithObserver sets the metrics collaborator.
func WithObserver(o Observer) Option {
	return func(e *Engine) {
		if o != nil {
			e.obs = o
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithClock sets the time source used by the score tracker.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSeed seeds level generation.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

// WithMode selects campaign or endless play.
func WithMode(m Mode) Option {
	return func(e *Engine) {
		e.mode = m
	}
}

// WithAutoRestart makes the engine reset and resume by itself after game
// over instead of waiting for Reset.
func WithAutoRestart(enabled bool) Option {
	return func(e *Engine) {
		e.autoRestart = enabled
	}
}
