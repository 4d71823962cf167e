package mahjong

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mahjong/internal/config"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/layouts"
)

// Options configures how new games deal and behave.
type Options struct {
	Layouts     []core.Layout // Playable layouts, in menu order
	Faces       []string      // Deck faces; empty means core.DefaultFaces
	Copies      int           // Copies per face; 0 means core.DefaultCopies
	Strict      bool          // Deck/layout mismatch aborts the deal
	HintSeconds int           // How long a hint stays highlighted
	Logger      *log.Logger
}

// DefaultOptions returns options for the built-in layouts and deck.
func DefaultOptions() Options {
	return Options{
		Layouts:     core.BuiltinLayouts(),
		Copies:      core.DefaultCopies,
		HintSeconds: 3,
	}
}

// OptionsFromConfig builds options from a loaded config, adding layouts from
// the configured directory and keeping only the enabled ones.
// Layout files that fail to load are logged and skipped.
func OptionsFromConfig(cfg config.MahjongConfig, logger *log.Logger) (Options, error) {
	opts := Options{
		Faces:       cfg.Deck.Faces,
		Copies:      cfg.Deck.Copies,
		Strict:      cfg.Gameplay.Strict,
		HintSeconds: cfg.Gameplay.HintSeconds,
		Logger:      logger,
	}

	all := core.BuiltinLayouts()
	if cfg.Layouts.Dir != "" {
		loader := layouts.NewLoader(config.ExpandHome(cfg.Layouts.Dir))
		loader.Want = opts.DeckSize()
		loader.OnSkip = func(path string, err error) {
			if logger != nil {
				logger.Warn("skipping layout file", "path", path, "err", err)
			}
		}
		extra, err := loader.LoadAll()
		if err != nil {
			return opts, err
		}
		all = layouts.Merge(all, extra)
	}

	opts.Layouts = layouts.Filter(all, cfg.LayoutEnabled)
	return opts, nil
}

// DeckSize is the number of tiles dealt: faces times copies.
func (o Options) DeckSize() int {
	o = o.withDefaults()
	return len(o.Faces) * o.Copies
}

func (o Options) withDefaults() Options {
	if len(o.Layouts) == 0 {
		o.Layouts = core.BuiltinLayouts()
	}
	if len(o.Faces) == 0 {
		o.Faces = core.DefaultFaces
	}
	if o.Copies <= 0 {
		o.Copies = core.DefaultCopies
	}
	if o.HintSeconds <= 0 {
		o.HintSeconds = 3
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Package-level options picked up by registry-created games.
var (
	optionsMu      sync.RWMutex
	currentOptions = DefaultOptions()
)

// Configure sets the options used by games created from the registry.
func Configure(opts Options) {
	optionsMu.Lock()
	defer optionsMu.Unlock()
	currentOptions = opts
}

// CurrentOptions returns the options set by Configure.
func CurrentOptions() Options {
	optionsMu.RLock()
	defer optionsMu.RUnlock()
	return currentOptions
}
