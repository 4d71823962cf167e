package core_test

import (
	"errors"
	"math/rand"
	"testing"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
)

func TestBuiltinLayoutsSlotCount(t *testing.T) {
	for _, l := range core.BuiltinLayouts() {
		t.Run(l.Name, func(t *testing.T) {
			slots := l.Slots()
			if len(slots) != core.StandardTileCount {
				t.Errorf("len(Slots()) = %d, want %d", len(slots), core.StandardTileCount)
			}
			if l.Count() != len(slots) {
				t.Errorf("Count() = %d, want %d", l.Count(), len(slots))
			}

			seen := make(map[core.Pos]bool)
			for _, p := range slots {
				if seen[p] {
					t.Errorf("duplicate slot %s", p)
				}
				seen[p] = true
			}

			if err := core.Validate(l, core.StandardTileCount); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}

func TestBuiltinLayoutsMatchDeck(t *testing.T) {
	deck := core.BuildDeck(core.DefaultFaces, core.DefaultCopies)
	for _, l := range core.BuiltinLayouts() {
		if l.Count() != len(deck) {
			t.Errorf("layout %s has %d slots, deck has %d tiles", l.Name, l.Count(), len(deck))
		}
	}
}

func TestBuiltinLayoutNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, l := range core.BuiltinLayouts() {
		if seen[l.Name] {
			t.Errorf("duplicate layout name %q", l.Name)
		}
		seen[l.Name] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 built-in layouts, got %d", len(seen))
	}
}

func TestSlotsOrder(t *testing.T) {
	l := core.Layout{
		Name: "tiny",
		Layers: []core.Layer{
			{Z: 0, Rects: []platformcore.Rect{platformcore.NewRect(0, 0, 2, 2)}},
			{Z: 1, Rects: []platformcore.Rect{platformcore.NewRect(1, 1, 1, 1)}},
		},
	}

	want := []core.Pos{
		core.P(0, 0, 0), core.P(1, 0, 0),
		core.P(0, 1, 0), core.P(1, 1, 0),
		core.P(1, 1, 1),
	}

	got := l.Slots()
	if len(got) != len(want) {
		t.Fatalf("len(Slots()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slots()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if l.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", l.Depth())
	}
}

func TestValidate(t *testing.T) {
	rect := platformcore.NewRect

	tests := []struct {
		name   string
		layout core.Layout
		want   int
		code   string
	}{
		{
			name: "valid",
			layout: core.Layout{Name: "ok", Layers: []core.Layer{
				{Z: 0, Rects: []platformcore.Rect{rect(0, 0, 2, 1)}},
			}},
			want: 2,
		},
		{
			name:   "no layers",
			layout: core.Layout{Name: "empty"},
			code:   "EMPTY_LAYOUT",
		},
		{
			name: "overlapping rects",
			layout: core.Layout{Name: "overlap", Layers: []core.Layer{
				{Z: 0, Rects: []platformcore.Rect{rect(0, 0, 2, 2), rect(1, 1, 2, 2)}},
			}},
			code: "OVERLAPPING_RECTS",
		},
		{
			name: "adjacent rects",
			layout: core.Layout{Name: "adjacent", Layers: []core.Layer{
				{Z: 0, Rects: []platformcore.Rect{rect(0, 0, 2, 2), rect(2, 0, 2, 2)}},
			}},
			want: 8,
		},
		{
			name: "same layer declared twice",
			layout: core.Layout{Name: "twice", Layers: []core.Layer{
				{Z: 1, Rects: []platformcore.Rect{rect(0, 0, 1, 1)}},
				{Z: 1, Rects: []platformcore.Rect{rect(0, 0, 1, 1)}},
			}},
			code: "DUPLICATE_SLOT",
		},
		{
			name: "wrong count",
			layout: core.Layout{Name: "short", Layers: []core.Layer{
				{Z: 0, Rects: []platformcore.Rect{rect(0, 0, 3, 1)}},
			}},
			want: 4,
			code: "SLOT_COUNT",
		},
		{
			name: "empty rect",
			layout: core.Layout{Name: "zero", Layers: []core.Layer{
				{Z: 0, Rects: []platformcore.Rect{rect(0, 0, 0, 3)}},
			}},
			code: "EMPTY_RECT",
		},
		{
			name: "negative layer",
			layout: core.Layout{Name: "neg", Layers: []core.Layer{
				{Z: -1, Rects: []platformcore.Rect{rect(0, 0, 1, 1)}},
			}},
			code: "NEGATIVE_LAYER",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := core.Validate(tc.layout, tc.want)
			if tc.code == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr core.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("Validate() code = %s, want %s", verr.Code, tc.code)
			}
		})
	}
}

func TestPickUniform(t *testing.T) {
	layouts := core.BuiltinLayouts()
	rng := rand.New(rand.NewSource(7))

	counts := make(map[string]int)
	const trials = 8000
	for range trials {
		l, ok := core.Pick(layouts, rng)
		if !ok {
			t.Fatal("Pick() returned false for non-empty list")
		}
		counts[l.Name]++
	}

	expected := trials / len(layouts)
	for _, l := range layouts {
		got := counts[l.Name]
		if got < expected*8/10 || got > expected*12/10 {
			t.Errorf("layout %s picked %d times, expected about %d", l.Name, got, expected)
		}
	}
}

func TestPickEmpty(t *testing.T) {
	if _, ok := core.Pick(nil, rand.New(rand.NewSource(1))); ok {
		t.Error("Pick(nil) should return false")
	}
}

func TestSlotBounds(t *testing.T) {
	b := core.SlotBounds(core.Turtle.Slots())
	if b.MinX != 0 || b.MaxX != 14 || b.MinY != 0 || b.MaxY != 5 || b.MaxZ != 2 {
		t.Errorf("SlotBounds(turtle) = %+v", b)
	}
	if b.Width() != 15 || b.Height() != 6 {
		t.Errorf("Width/Height = %d/%d, want 15/6", b.Width(), b.Height())
	}

	if got := core.SlotBounds(nil); got != (core.Bounds{}) {
		t.Errorf("SlotBounds(nil) = %+v, want zero", got)
	}
}

func TestFindLayout(t *testing.T) {
	l, ok := core.FindLayout(core.BuiltinLayouts(), "fish")
	if !ok || l.Name != "fish" {
		t.Errorf("FindLayout(fish) = %v, %v", l.Name, ok)
	}
	if _, ok := core.FindLayout(core.BuiltinLayouts(), "dragon"); ok {
		t.Error("FindLayout(dragon) should fail")
	}
}
