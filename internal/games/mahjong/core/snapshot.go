package core

// TileView is the read-only state of one tile as seen by renderers.
type TileView struct {
	ID      int
	Face    string
	Pos     Pos
	Removed bool
	Free    bool
}

// Snapshot captures the observable session state for renderers and
// determinism tests. It shares no memory with the session.
type Snapshot struct {
	Layout         string
	Tiles          []TileView
	Selected       int
	Moves          int
	Elapsed        int
	ClockRunning   bool
	PairsRemaining int
	CanUndo        bool
	CanRedo        bool
	Won            bool
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	tiles := make([]TileView, s.board.Len())
	for i, t := range s.board.tiles {
		tiles[i] = TileView{
			ID:      t.ID,
			Face:    t.Face,
			Pos:     t.Pos,
			Removed: t.Removed,
			Free:    s.board.IsFree(t.ID),
		}
	}

	return Snapshot{
		Layout:         s.deal.Layout.Name,
		Tiles:          tiles,
		Selected:       s.selected,
		Moves:          s.moves,
		Elapsed:        s.clock.Elapsed(),
		ClockRunning:   s.clock.Running(),
		PairsRemaining: s.board.PairsRemaining(),
		CanUndo:        s.CanUndo(),
		CanRedo:        s.CanRedo(),
		Won:            s.won,
	}
}
