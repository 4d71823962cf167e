// Package core provides the game logic for Mahjong solitaire.
// This package is UI-agnostic and deterministic for a given RNG seed.
package core

import "fmt"

// Pos is a tile slot on the layered grid.
// X increases to the right, Y increases downward, Z is the stacking layer.
type Pos struct {
	X int
	Y int
	Z int
}

// P is a convenience constructor for Pos.
func P(x, y, z int) Pos {
	return Pos{X: x, Y: y, Z: z}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Left returns the slot immediately left of p on the same layer.
func (p Pos) Left() Pos {
	return Pos{X: p.X - 1, Y: p.Y, Z: p.Z}
}

// Right returns the slot immediately right of p on the same layer.
func (p Pos) Right() Pos {
	return Pos{X: p.X + 1, Y: p.Y, Z: p.Z}
}

// Tile is a single tile in a deal.
// ID equals the slot index the tile was dealt into and never changes.
type Tile struct {
	ID      int
	Face    string
	Pos     Pos
	Removed bool
}

// MatchRecord is a pair of tiles removed together in one move.
// It is the unit of undo and redo.
type MatchRecord struct {
	A int
	B int
}

// NoTile is returned by lookups that find nothing.
const NoTile = -1
