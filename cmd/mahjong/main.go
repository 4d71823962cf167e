// mahjong is a Mahjong solitaire game for the terminal.
//
// Usage:
//
//	mahjong play [layout]    - Play a deal, random layout if none given
//	mahjong menu             - Pick layouts interactively
//	mahjong layouts          - List playable layouts
//	mahjong scores [layout]  - Show the fastest clears
//	mahjong config           - Print the default config
//	mahjong serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: from config, 30)
//	--seed <value>     - Set RNG seed for a reproducible deal
//	--config <path>    - Use a custom config YAML
//	--db <path>        - Set database path (default: ~/.arcade/mahjong.db)
//	--strict           - Refuse to deal when the deck does not fit a layout
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mahjong/internal/config"
	"github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagStrict   bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mahjong",
	Short: "Mahjong solitaire in your terminal",
	Long: `Mahjong solitaire: clear the board by removing matching pairs of free tiles.

A tile is free when nothing lies on top of it and its left or right
neighbour on the same layer is empty.

Available commands:
  play     - Play a deal directly
  menu     - Interactive layout picker
  layouts  - List playable layouts
  scores   - View the fastest clears
  config   - Print the default config
  serve    - Start SSH server for remote play

Examples:
  mahjong play
  mahjong play turtle --seed 42
  mahjong menu
  mahjong scores fish
  mahjong serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = gameplay.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/mahjong.db", "Path to results database")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail when the deck size does not match a layout")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mahjong",
	})
	if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// withGameLogger runs fn with a logger for interactive play and closes the
// log file before returning fn's error.
func withGameLogger(fn func(logger *log.Logger) error) error {
	logger, closeLog := gameLogger()
	defer closeLog()
	return fn(logger)
}

// gameLogger returns a logger for interactive play. The terminal belongs
// to the game, so logs go to ~/.arcade/mahjong.log.
// The returned closer must be called on exit.
func gameLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "mahjong.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// setupGame loads configuration and configures the mahjong game.
// It returns the tick rate to run at.
func setupGame(logger *log.Logger) (mahjong.Options, int, error) {
	cfg, err := config.LoadMahjong(flagConfig)
	if err != nil {
		return mahjong.Options{}, 0, err
	}

	opts, err := mahjong.OptionsFromConfig(cfg, logger)
	if err != nil {
		return mahjong.Options{}, 0, err
	}
	opts.Strict = opts.Strict || flagStrict
	mahjong.Configure(opts)

	tickRate := cfg.Gameplay.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return opts, tickRate, nil
}

// layoutNames lists the configured layout names in menu order.
func layoutNames(opts mahjong.Options) []string {
	names := make([]string, len(opts.Layouts))
	for i, l := range opts.Layouts {
		names[i] = l.Name
	}
	return names
}

// runtimeConfig builds the config for a new game from the terminal size.
func runtimeConfig(tickRate int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = tickRate
	cfg.Seed = flagSeed
	cfg.Strict = flagStrict
	return cfg
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
