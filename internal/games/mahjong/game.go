// Package mahjong adapts the tile-matching core to the terminal platform.
// It owns the cursor, hint highlight, pause state and tick-to-second
// conversion; all rules live in the core subpackage.
package mahjong

import (
	"math/rand"

	"github.com/google/uuid"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
	"github.com/vovakirdan/tui-mahjong/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "mahjong"

const (
	msgStuck    = "No available matches. Try undo or start a new game."
	msgNoHint   = "No available matches."
	msgBlocked  = "That tile is blocked."
	msgMismatch = "Deck does not fit this layout; faces were repeated."
)

// Game implements registry.Game for Mahjong solitaire.
type Game struct {
	opts   Options
	styles map[string]faceStyle

	rng     *rand.Rand
	session *core.Session
	dealErr error
	dealID  string
	variant string // requested layout name, empty for random
	strict  bool

	bounds  core.Bounds
	cursorX int
	cursorY int

	hint      core.MatchRecord
	hintTicks int

	message      string
	messageTicks int

	tickRate int
	subTicks int

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a game using the options set by Configure.
func New() *Game {
	return NewWithOptions(CurrentOptions())
}

// NewWithOptions creates a game with explicit options.
func NewWithOptions(opts Options) *Game {
	opts = opts.withDefaults()
	return &Game{
		opts:   opts,
		styles: faceStyles(opts.Faces),
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Mahjong"
}

// Variants lists the playable layout names.
func (g *Game) Variants() []string {
	out := make([]string, len(g.opts.Layouts))
	for i, l := range g.opts.Layouts {
		out[i] = l.Name
	}
	return out
}

// Layouts returns the playable layouts.
func (g *Game) Layouts() []core.Layout {
	return g.opts.Layouts
}

// Reset seeds the generator and deals a new game.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.variant = cfg.Variant
	g.strict = cfg.Strict || g.opts.Strict
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = platformcore.DefaultConfig().TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.session = nil

	g.deal()
}

// deal builds a new board from the current rng state.
func (g *Game) deal() {
	g.paused = false
	g.subTicks = 0
	g.clearHint()
	g.message = ""
	g.messageTicks = 0
	g.dealErr = nil

	layout, ok := g.chooseLayout()
	if !ok {
		g.fail(errNoLayouts)
		return
	}

	deck := core.BuildDeck(g.opts.Faces, g.opts.Copies)
	d, err := core.NewDeal(layout, deck, g.rng, core.DealOptions{Strict: g.strict})
	if err != nil {
		g.fail(err)
		return
	}
	if d.Mismatch != nil {
		g.opts.Logger.Warn("deck does not fit layout",
			"layout", d.Mismatch.Layout,
			"slots", d.Mismatch.Slots,
			"deck", d.Mismatch.Deck,
		)
		g.flash(msgMismatch)
	}

	if g.session == nil {
		g.session = core.NewSession(d)
	} else {
		g.session.NewGame(d)
	}
	g.dealID = uuid.NewString()
	g.bounds = core.SlotBounds(d.Board.Slots())
	g.cursorX = g.bounds.MinX + g.bounds.Width()/2
	g.cursorY = g.bounds.MinY + g.bounds.Height()/2
	g.checkScreenSize()

	g.opts.Logger.Debug("new deal",
		"deal", g.dealID,
		"layout", layout.Name,
		"tiles", d.Board.Len(),
	)
}

func (g *Game) chooseLayout() (core.Layout, bool) {
	if g.variant != "" {
		if l, ok := core.FindLayout(g.opts.Layouts, g.variant); ok {
			return l, true
		}
		g.opts.Logger.Warn("unknown layout, picking one at random", "layout", g.variant)
	}
	return core.Pick(g.opts.Layouts, g.rng)
}

func (g *Game) fail(err error) {
	g.opts.Logger.Error("cannot deal", "err", err)
	g.dealErr = err
	g.session = nil
	g.dealID = ""
}

// Err returns the error that prevented the last deal, if any.
func (g *Game) Err() error {
	return g.dealErr
}

// Session exposes the controller of the current deal. It is nil when the
// last deal failed.
func (g *Game) Session() *core.Session {
	return g.session
}

// DealID returns the identifier of the current deal.
func (g *Game) DealID() string {
	return g.dealID
}

// checkScreenSize checks if the board fits the screen.
func (g *Game) checkScreenSize() {
	w, h := g.minSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionNewGame) {
		if g.session == nil {
			// The requested layout could not be dealt; try any layout.
			g.variant = ""
		}
		g.deal()
		return platformcore.StepResult{State: g.State()}
	}

	if g.session == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return platformcore.StepResult{State: g.State()}
	}

	if in.Has(platformcore.ActionPause) && !g.session.Won() {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(platformcore.ActionSelect) {
		g.selectAt(g.cursorX, g.cursorY)
	}
	for _, c := range in.Clicks {
		if x, y, ok := g.hitTest(c.X, c.Y); ok {
			g.cursorX, g.cursorY = x, y
			g.selectAt(x, y)
		}
	}

	switch {
	case in.Has(platformcore.ActionUndo):
		if g.session.Undo() {
			g.clearHint()
		}
	case in.Has(platformcore.ActionRedo):
		if g.session.Redo() {
			g.clearHint()
		}
	}

	if in.Has(platformcore.ActionHint) {
		g.showHint()
	}

	g.advanceClock()
	g.decay()

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	switch {
	case in.Has(platformcore.ActionUp):
		g.cursorY--
	case in.Has(platformcore.ActionDown):
		g.cursorY++
	case in.Has(platformcore.ActionLeft):
		g.cursorX--
	case in.Has(platformcore.ActionRight):
		g.cursorX++
	}
	g.cursorX = platformcore.Clamp(g.cursorX, g.bounds.MinX, g.bounds.MaxX)
	g.cursorY = platformcore.Clamp(g.cursorY, g.bounds.MinY, g.bounds.MaxY)
}

// selectAt picks the topmost tile of a grid column.
func (g *Game) selectAt(x, y int) {
	id := g.session.Board().TopAt(x, y)
	if id == core.NoTile {
		return
	}

	switch out := g.session.Select(id); out {
	case core.OutcomeIgnored:
		g.flash(msgBlocked)
	case core.OutcomeMatched, core.OutcomeWon:
		g.clearHint()
		if out == core.OutcomeWon {
			sum, _ := g.session.Summary()
			g.opts.Logger.Info("board cleared",
				"deal", g.dealID,
				"layout", g.session.Deal().Layout.Name,
				"seconds", sum.Elapsed,
				"moves", sum.Moves,
			)
		}
	}
}

func (g *Game) showHint() {
	pair, ok := g.session.Hint()
	if !ok {
		g.flash(msgNoHint)
		return
	}
	g.hint = pair
	g.hintTicks = g.opts.HintSeconds * g.tickRate
}

func (g *Game) clearHint() {
	g.hint = core.MatchRecord{A: core.NoTile, B: core.NoTile}
	g.hintTicks = 0
}

// Hinted reports whether a tile is part of the highlighted hint.
func (g *Game) Hinted(id int) bool {
	return g.hintTicks > 0 && (g.hint.A == id || g.hint.B == id)
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = 2 * max(1, g.tickRate)
}

// advanceClock converts ticks to whole seconds on the session clock.
func (g *Game) advanceClock() {
	if !g.session.ClockRunning() {
		g.subTicks = 0
		return
	}
	g.subTicks++
	if g.subTicks >= g.tickRate {
		g.subTicks = 0
		g.session.Tick()
	}
}

func (g *Game) decay() {
	if g.hintTicks > 0 {
		g.hintTicks--
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	if g.session == nil {
		return platformcore.GameState{Variant: g.variant}
	}
	return platformcore.GameState{
		DealID:  g.dealID,
		Variant: g.session.Deal().Layout.Name,
		Moves:   g.session.Moves(),
		Elapsed: g.session.Elapsed(),
		Won:     g.session.Won(),
		Stuck:   g.session.Stuck(),
		Paused:  g.paused || g.tooSmall,
	}
}
