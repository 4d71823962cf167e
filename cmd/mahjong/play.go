package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
	"github.com/vovakirdan/tui-mahjong/internal/platform/tui"
	"github.com/vovakirdan/tui-mahjong/internal/registry"
	"github.com/vovakirdan/tui-mahjong/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [layout]",
	Short: "Play a deal",
	Long: `Deal a new game on the given layout, or on a random one.

Controls:
  Arrows/HJKL   - Move the cursor
  Space/Enter   - Pick the top tile under the cursor (or click it)
  U             - Undo the last match
  R             - Redo
  ?/T           - Show a matching pair
  N             - New deal
  P             - Pause
  B/Esc         - Leave the game
  Q/Ctrl+C      - Quit
  Ctrl+S        - Save a text screenshot

Examples:
  mahjong play
  mahjong play turtle
  mahjong play fish --seed 7
  mahjong play --config ./my-mahjong.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	if err := withGameLogger(func(logger *log.Logger) error {
		return play(logger, args)
	}); err != nil {
		exitf("%v", err)
	}
}

func play(logger *log.Logger, args []string) error {
	opts, tickRate, err := setupGame(logger)
	if err != nil {
		return err
	}

	cfg := runtimeConfig(tickRate)
	if len(args) == 1 {
		if _, ok := core.FindLayout(opts.Layouts, args[0]); !ok {
			return fmt.Errorf("unknown layout %q; run 'mahjong layouts' to see available layouts", args[0])
		}
		cfg.Variant = args[0]
	}

	game, err := registry.Create(mahjong.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
