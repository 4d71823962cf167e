package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
)

// Rand is the subset of *math/rand.Rand used by layout picking and shuffling.
type Rand interface {
	Intn(n int) int
}

// Layer is one stacking level of a layout, described as a union of rectangles.
type Layer struct {
	Z     int
	Rects []platformcore.Rect
}

// Layout is a named board shape.
type Layout struct {
	Name   string
	Title  string
	Layers []Layer
}

// Slots returns every tile slot of the layout.
// Order: layers as declared, rectangles as declared, rows top to bottom,
// columns left to right. Tile IDs are assigned in this order.
func (l Layout) Slots() []Pos {
	slots := make([]Pos, 0, l.Count())
	for _, layer := range l.Layers {
		for _, r := range layer.Rects {
			for y := r.Y; y < r.Bottom(); y++ {
				for x := r.X; x < r.Right(); x++ {
					slots = append(slots, Pos{X: x, Y: y, Z: layer.Z})
				}
			}
		}
	}
	return slots
}

// Count returns the number of slots without materializing them.
func (l Layout) Count() int {
	n := 0
	for _, layer := range l.Layers {
		for _, r := range layer.Rects {
			n += r.Area()
		}
	}
	return n
}

// Depth returns the number of layers in use (max Z + 1).
func (l Layout) Depth() int {
	depth := 0
	for _, layer := range l.Layers {
		if layer.Z+1 > depth {
			depth = layer.Z + 1
		}
	}
	return depth
}

// Validate checks that the layout yields exactly want slots and that no two
// slots coincide. want <= 0 skips the count check.
func Validate(l Layout, want int) error {
	if len(l.Layers) == 0 {
		return ValidationError{
			Code:    "EMPTY_LAYOUT",
			Message: fmt.Sprintf("layout %q has no layers", l.Name),
		}
	}

	for _, layer := range l.Layers {
		if layer.Z < 0 {
			return ValidationError{
				Code:    "NEGATIVE_LAYER",
				Message: fmt.Sprintf("layout %q has layer z=%d", l.Name, layer.Z),
			}
		}
		for i, r := range layer.Rects {
			if r.Empty() {
				return ValidationError{
					Code:    "EMPTY_RECT",
					Message: fmt.Sprintf("layout %q has empty rect %dx%d on layer %d", l.Name, r.W, r.H, layer.Z),
				}
			}
			for _, prev := range layer.Rects[:i] {
				if r.Intersects(prev) {
					return ValidationError{
						Code: "OVERLAPPING_RECTS",
						Message: fmt.Sprintf("layout %q has overlapping rects at (%d,%d) and (%d,%d) on layer %d",
							l.Name, prev.X, prev.Y, r.X, r.Y, layer.Z),
					}
				}
			}
		}
	}

	seen := make(map[Pos]bool)
	for _, p := range l.Slots() {
		if seen[p] {
			return ValidationError{
				Code:    "DUPLICATE_SLOT",
				Message: fmt.Sprintf("layout %q has duplicate slot %s", l.Name, p),
			}
		}
		seen[p] = true
	}

	if want > 0 && len(seen) != want {
		return ValidationError{
			Code:    "SLOT_COUNT",
			Message: fmt.Sprintf("layout %q has %d slots, want %d", l.Name, len(seen), want),
		}
	}

	return nil
}

// Pick returns a uniformly random layout from the list.
// Returns false if the list is empty.
func Pick(layouts []Layout, rng Rand) (Layout, bool) {
	if len(layouts) == 0 {
		return Layout{}, false
	}
	return layouts[rng.Intn(len(layouts))], true
}

// Bounds is the grid extent covered by a set of slots.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	MaxZ       int
}

// Width returns the number of columns spanned.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows spanned.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// SlotBounds computes the extent of the given slots.
// An empty slice yields the zero Bounds.
func SlotBounds(slots []Pos) Bounds {
	if len(slots) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: slots[0].X, MaxX: slots[0].X,
		MinY: slots[0].Y, MaxY: slots[0].Y,
		MaxZ: slots[0].Z,
	}
	for _, p := range slots[1:] {
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
		b.MaxZ = max(b.MaxZ, p.Z)
	}
	return b
}

// ValidationError describes why a layout or deal is malformed.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}
