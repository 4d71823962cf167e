package core

// Board holds the tiles of one deal and answers accessibility queries.
// Tile positions are unique, so the occupancy index never changes after
// construction; removal only flips the Removed flag.
type Board struct {
	tiles []Tile
	index map[Pos]int // position -> tile ID, including removed tiles
	maxZ  int
}

// NewBoard zips slots with faces by slot index.
// If faces is shorter than slots it is cycled; callers that care about a
// mismatch check it before building (see NewDeal).
func NewBoard(slots []Pos, faces []string) *Board {
	b := &Board{
		tiles: make([]Tile, len(slots)),
		index: make(map[Pos]int, len(slots)),
	}

	for i, p := range slots {
		face := ""
		if len(faces) > 0 {
			face = faces[i%len(faces)]
		}
		b.tiles[i] = Tile{ID: i, Face: face, Pos: p}
		b.index[p] = i
		if p.Z > b.maxZ {
			b.maxZ = p.Z
		}
	}

	return b
}

// Len returns the total number of tiles, removed or not.
func (b *Board) Len() int {
	return len(b.tiles)
}

// MaxZ returns the highest layer present in the deal.
func (b *Board) MaxZ() int {
	return b.maxZ
}

// Tile returns the tile with the given ID.
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// Tiles returns a copy of all tiles in ID order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Slots returns the positions of all tiles in ID order.
func (b *Board) Slots() []Pos {
	slots := make([]Pos, len(b.tiles))
	for i, t := range b.tiles {
		slots[i] = t.Pos
	}
	return slots
}

// TileAt returns the ID of the non-removed tile at (z, x, y), or NoTile.
func (b *Board) TileAt(z, x, y int) int {
	id, ok := b.index[Pos{X: x, Y: y, Z: z}]
	if !ok || b.tiles[id].Removed {
		return NoTile
	}
	return id
}

// occupied reports whether a non-removed tile sits at p.
func (b *Board) occupied(p Pos) bool {
	return b.TileAt(p.Z, p.X, p.Y) != NoTile
}

// TopAt returns the highest non-removed tile in column (x, y), or NoTile.
func (b *Board) TopAt(x, y int) int {
	for z := b.maxZ; z >= 0; z-- {
		if id := b.TileAt(z, x, y); id != NoTile {
			return id
		}
	}
	return NoTile
}

// IsFree reports whether the tile can be selected.
// A tile is free when it is not removed, nothing covers it on any higher
// layer at the same (x, y), and at least one of its same-row neighbours on
// its own layer is empty.
func (b *Board) IsFree(id int) bool {
	if id < 0 || id >= len(b.tiles) {
		return false
	}
	t := b.tiles[id]
	if t.Removed {
		return false
	}

	for z := t.Pos.Z + 1; z <= b.maxZ; z++ {
		if b.TileAt(z, t.Pos.X, t.Pos.Y) != NoTile {
			return false
		}
	}

	hasLeft := b.occupied(t.Pos.Left())
	hasRight := b.occupied(t.Pos.Right())
	return !(hasLeft && hasRight)
}

// FreeTiles returns the IDs of all free tiles in ID order.
func (b *Board) FreeTiles() []int {
	var free []int
	for id := range b.tiles {
		if b.IsFree(id) {
			free = append(free, id)
		}
	}
	return free
}

// Remaining returns the number of non-removed tiles.
func (b *Board) Remaining() int {
	n := 0
	for _, t := range b.tiles {
		if !t.Removed {
			n++
		}
	}
	return n
}

// PairsRemaining returns floor(Remaining / 2).
func (b *Board) PairsRemaining() int {
	return b.Remaining() / 2
}

// Cleared reports whether every tile has been removed.
func (b *Board) Cleared() bool {
	for _, t := range b.tiles {
		if !t.Removed {
			return false
		}
	}
	return true
}

// setRemoved flips the removed flag of a valid tile ID.
func (b *Board) setRemoved(id int, removed bool) {
	if id < 0 || id >= len(b.tiles) {
		return
	}
	b.tiles[id].Removed = removed
}
