package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sandrunner/internal/core"
	"github.com/vovakirdan/sandrunner/internal/games/desert"
	"github.com/vovakirdan/sandrunner/internal/platform/tui"
	"github.com/vovakirdan/sandrunner/internal/registry"
	"github.com/vovakirdan/sandrunner/internal/storage"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Desert Runner",
	Long: `Start a run. Without arguments this plays the ten-level campaign.

Controls:
  A/D, Left/Right  - Run
  Space/W/Up       - Jump
  P                - Pause
  C / Esc          - Continue or give up after losing a life
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, 2s invincibility after a hit, difficulty starts at 0.0
  normal - 3 lives, 1.5s invincibility, difficulty starts at 0.3
  hard   - 2 lives, 1s invincibility, difficulty starts at 0.7
  fixed  - Default lives, difficulty never ramps between levels

Examples:
  sandrunner play
  sandrunner play desert_endless
  sandrunner play --endless --difficulty hard
  sandrunner play --config ./my-desert.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := desert.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = desert.IDEndless
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'sandrunner list' to see modes)", err)
	}

	// Without storage the game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	logger.Info("starting game", "game", gameID, "seed", flagSeed, "fps", flagFPS)
	if err := tui.Run(game, store, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig sizes the game to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
