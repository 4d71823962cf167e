package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/storage"
)

// scriptedGame reports whatever state the test sets.
type scriptedGame struct {
	state  core.GameState
	frames []core.InputFrame
}

func (g *scriptedGame) ID() string               { return "scripted" }
func (g *scriptedGame) Title() string            { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) {}
func (g *scriptedGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState    { return g.state }
func (g *scriptedGame) Variants() []string       { return []string{"turtle", "fish"} }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// resultFor returns the stored result of a deal, or nil.
func resultFor(t *testing.T, store *storage.Store, dealID string) *storage.Result {
	t.Helper()
	recent, err := store.RecentResults(100)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	for i := range recent {
		if recent[i].DealID == dealID {
			return &recent[i]
		}
	}
	return nil
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(time.Now()))
	return next.(Model)
}

func press(t *testing.T, m Model, keys string) (Model, tea.Cmd) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionSelect, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")}, core.ActionUndo, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRedo, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")}, core.ActionHint, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, core.ActionNewGame, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}, core.ActionHint, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion}, &frame) {
		t.Error("motion should not count as a click")
	}
	if !km.MapMouseToFrame(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame) {
		t.Fatal("left press should count as a click")
	}
	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v", frame.Clicks)
	}
}

func TestModelPassesInputToGame(t *testing.T) {
	g := &scriptedGame{}
	m := NewModel(g, nil, core.DefaultConfig(), nil)

	m, _ = press(t, m, "u")
	next, _ := m.Update(tea.MouseMsg{X: 1, Y: 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, next.(Model))

	if len(g.frames) != 1 {
		t.Fatalf("game stepped %d times, want 1", len(g.frames))
	}
	in := g.frames[0]
	if !in.Has(core.ActionUndo) || len(in.Clicks) != 1 {
		t.Errorf("frame = %+v", in)
	}

	tick(t, m)
	if !g.frames[1].Empty() {
		t.Error("input was not cleared after the tick")
	}
}

func TestModelSavesWinOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{state: core.GameState{DealID: "d1", Variant: "fish", Moves: 72, Elapsed: 300, Won: true}}
	m := NewModel(g, store, core.DefaultConfig(), nil)

	m = tick(t, m)
	m = tick(t, m)

	r := resultFor(t, store, "d1")
	if r == nil {
		t.Fatal("win was not saved")
	}
	if !r.Won || r.Seconds != 300 || r.Moves != 72 || r.Layout != "fish" || r.GameID != "scripted" {
		t.Errorf("saved result = %+v", r)
	}

	recent, _ := store.RecentResults(10)
	if len(recent) != 1 {
		t.Errorf("stored %d results, want 1", len(recent))
	}
	_ = m
}

func TestModelSavesAbandonedDeal(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{state: core.GameState{DealID: "d1", Variant: "turtle", Moves: 4, Elapsed: 20}}
	m := NewModel(g, store, core.DefaultConfig(), nil)
	m = tick(t, m)

	// The player dealt again.
	g.state = core.GameState{DealID: "d2", Variant: "turtle"}
	m = tick(t, m)

	r := resultFor(t, store, "d1")
	if r == nil || r.Won || r.Moves != 4 {
		t.Fatalf("abandoned deal result = %+v", r)
	}

	// Quitting an untouched deal stores nothing.
	m, cmd := press(t, m, "q")
	if cmd == nil || !m.IsQuitting() {
		t.Error("q did not quit")
	}
	if r := resultFor(t, store, "d2"); r != nil {
		t.Errorf("untouched deal was saved: %+v", r)
	}
}

func TestModelBackToMenu(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{state: core.GameState{DealID: "d1", Variant: "turtle", Moves: 1}}
	m := NewModel(g, store, core.DefaultConfig(), nil)
	m = tick(t, m)

	m, cmd := press(t, m, "b")
	if !m.BackToMenu() || cmd == nil {
		t.Fatal("b should leave the game")
	}
	if r := resultFor(t, store, "d1"); r == nil {
		t.Error("leaving did not save the deal in progress")
	}

	// Embedded models leave the program running.
	m = NewModel(g, nil, core.DefaultConfig(), nil)
	m.embedded = true
	m, cmd = press(t, m, "b")
	if !m.BackToMenu() || cmd != nil {
		t.Error("embedded model should not quit the program")
	}
}

func TestModelView(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 20, 3
	m := NewModel(&scriptedGame{}, nil, cfg, nil)

	if !strings.Contains(m.View(), "scripted") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextWithColor(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextWithColor(0, 1, "xy", core.ColorBrightWhite)

	out := defaultRenderer.Render(s)
	for _, want := range []string{"ab", "cd", "xy"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() = %q, missing %q", out, want)
		}
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("Render() has %d newlines, want 1", got)
	}
}

func TestMenuSelectsLayout(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), []string{"turtle", "fish"})
	if len(m.items) != 3 || m.items[0].Variant != "" || m.items[2].Title != "Fish" {
		t.Fatalf("items = %+v", m.items)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("selecting should finish the menu")
	}

	res := menuResult(next.(MenuModel))
	if res.Quit || res.Variant != "fish" || res.Config.Variant != "fish" {
		t.Errorf("menu result = %+v", res)
	}
}

func TestMenuShowsStats(t *testing.T) {
	store := openStore(t)
	for i, won := range []bool{true, false} {
		_, err := store.SaveResult(storage.Result{
			DealID: string(rune('a' + i)), GameID: "mahjong", Layout: "turtle",
			Seconds: 125, Moves: 72, Won: won,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	m := NewMenuModel(store, core.DefaultConfig(), []string{"turtle", "fish"})
	view := m.View()
	if !strings.Contains(view, "best 02:05") || !strings.Contains(view, "won 1/2") {
		t.Errorf("menu view missing turtle stats:\n%s", view)
	}
	if !strings.Contains(view, "not played yet") {
		t.Error("menu view missing placeholder for fish")
	}
}

func TestMenuResultScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), []string{"turtle"})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := menuResult(next.(MenuModel)); !res.WantsScoreboard {
		t.Errorf("tab result = %+v", res)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if res := menuResult(next.(MenuModel)); !res.Quit {
		t.Errorf("q result = %+v", res)
	}
}

func TestScoreboardCyclesLayouts(t *testing.T) {
	store := openStore(t)
	for i, layout := range []string{"turtle", "fish", "fish"} {
		_, err := store.SaveResult(storage.Result{
			DealID: "deal-" + string(rune('0'+i)), GameID: "mahjong", Layout: layout,
			Seconds: 100 + i, Moves: 72, Won: true,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, []string{"turtle", "fish"}, 100, 30)
	if len(m.results) != 3 {
		t.Errorf("all-layouts view has %d results, want 3", len(m.results))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyTab})
	sb := next.(ScoreboardModel)
	if sb.currentLayout() != "fish" || len(sb.results) != 2 {
		t.Errorf("layout %q has %d results", sb.currentLayout(), len(sb.results))
	}
	if sb.stats == nil || sb.stats.Won != 2 {
		t.Errorf("stats = %+v", sb.stats)
	}

	next, _ = sb.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := next.(ScoreboardModel).currentLayout(); got != "turtle" {
		t.Errorf("shift+tab went to %q", got)
	}

	next, cmd := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}

func TestSessionModelFlow(t *testing.T) {
	cfg := core.DefaultConfig()
	m := SessionModel{
		gameID:   "scripted",
		config:   cfg,
		variants: []string{"turtle"},
		menu:     NewMenuModel(nil, cfg, []string{"turtle"}),
		renderer: defaultRenderer,
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	sm := next.(SessionModel)
	if sm.screen != screenScores {
		t.Fatalf("screen = %v, want scores", sm.screen)
	}

	next, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	sm = next.(SessionModel)
	if sm.screen != screenMenu || sm.quitting {
		t.Errorf("esc from scores: screen %v quitting %v", sm.screen, sm.quitting)
	}
	_ = cmd
}
