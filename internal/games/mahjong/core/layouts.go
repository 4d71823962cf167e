package core

import (
	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
)

// StandardTileCount is the slot count of every built-in layout (36 faces x 4 copies).
const StandardTileCount = 144

// r is shorthand for the rectangle literals below.
func r(x, y, w, h int) platformcore.Rect {
	return platformcore.NewRect(x, y, w, h)
}

// Turtle is a wide low pyramid: 15x6, 13x4, and a 1x2 cap.
var Turtle = Layout{
	Name:  "turtle",
	Title: "Turtle",
	Layers: []Layer{
		{Z: 0, Rects: []platformcore.Rect{r(0, 0, 15, 6)}},
		{Z: 1, Rects: []platformcore.Rect{r(1, 1, 13, 4)}},
		{Z: 2, Rects: []platformcore.Rect{r(7, 2, 1, 2)}},
	},
}

// Fortress is a square keep with a raised inner wall and tower.
var Fortress = Layout{
	Name:  "fortress",
	Title: "Fortress",
	Layers: []Layer{
		{Z: 0, Rects: []platformcore.Rect{r(0, 0, 12, 8)}},
		{Z: 1, Rects: []platformcore.Rect{r(1, 2, 10, 4)}},
		{Z: 2, Rects: []platformcore.Rect{r(4, 3, 4, 2)}},
	},
}

// Fish has a tail and head around a tall five-layer body.
var Fish = Layout{
	Name:  "fish",
	Title: "Fish",
	Layers: []Layer{
		{Z: 0, Rects: []platformcore.Rect{
			r(0, 1, 2, 4),  // tail
			r(2, 0, 10, 6), // body
			r(12, 1, 2, 4), // head
		}},
		{Z: 1, Rects: []platformcore.Rect{r(3, 1, 8, 4)}},
		{Z: 2, Rects: []platformcore.Rect{r(4, 1, 6, 4)}},
		{Z: 3, Rects: []platformcore.Rect{r(5, 2, 3, 2)}},
		{Z: 4, Rects: []platformcore.Rect{r(5, 2, 3, 2)}},
	},
}

// Butterfly has two wings joined by a narrow body.
var Butterfly = Layout{
	Name:  "butterfly",
	Title: "Butterfly",
	Layers: []Layer{
		{Z: 0, Rects: []platformcore.Rect{
			r(0, 0, 5, 8), // left wing
			r(5, 2, 3, 4), // body
			r(8, 0, 5, 8), // right wing
		}},
		{Z: 1, Rects: []platformcore.Rect{
			r(1, 1, 3, 6),
			r(6, 1, 1, 6),
			r(9, 1, 3, 6),
		}},
		{Z: 2, Rects: []platformcore.Rect{
			r(2, 2, 1, 4),
			r(6, 3, 1, 2),
			r(10, 2, 1, 4),
		}},
	},
}

// BuiltinLayouts returns the built-in layout variants in a stable order.
func BuiltinLayouts() []Layout {
	return []Layout{Turtle, Fortress, Fish, Butterfly}
}

// FindLayout returns the layout with the given name.
func FindLayout(layouts []Layout, name string) (Layout, bool) {
	for _, l := range layouts {
		if l.Name == name {
			return l, true
		}
	}
	return Layout{}, false
}
