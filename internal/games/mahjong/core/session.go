package core

// Outcome describes what a Select call did.
type Outcome int

const (
	OutcomeIgnored    Outcome = iota // removed, blocked or unknown tile
	OutcomeSelected                  // tile became the selection
	OutcomeDeselected                // selected tile clicked again
	OutcomeReselected                // faces differ, selection moved
	OutcomeMatched                   // pair removed
	OutcomeWon                       // pair removed and board cleared
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeReselected:
		return "reselected"
	case OutcomeMatched:
		return "matched"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// Summary is the terminal result of a won session.
type Summary struct {
	Elapsed int
	Moves   int
}

// Session is the game controller for one deal.
// It is not safe for concurrent use; events must be applied one at a time.
type Session struct {
	deal     *Deal
	board    *Board
	selected int
	history  []MatchRecord
	redo     []MatchRecord
	moves    int
	clock    Clock
	won      bool
}

// NewSession starts a session on the given deal.
func NewSession(deal *Deal) *Session {
	s := &Session{}
	s.NewGame(deal)
	return s
}

// NewGame replaces the deal and resets selection, history, moves and clock.
func (s *Session) NewGame(deal *Deal) {
	s.deal = deal
	s.board = deal.Board
	s.selected = NoTile
	s.history = nil
	s.redo = nil
	s.moves = 0
	s.clock.Reset()
	s.won = false
}

// Deal returns the current deal.
func (s *Session) Deal() *Deal {
	return s.deal
}

// Board returns the board of the current deal.
func (s *Session) Board() *Board {
	return s.board
}

// Selected returns the selected tile ID, or NoTile.
func (s *Session) Selected() int {
	return s.selected
}

// Moves returns the number of matches currently applied.
func (s *Session) Moves() int {
	return s.moves
}

// Elapsed returns the elapsed seconds.
func (s *Session) Elapsed() int {
	return s.clock.Elapsed()
}

// ClockRunning reports whether elapsed time is being counted.
func (s *Session) ClockRunning() bool {
	return s.clock.Running()
}

// Won reports whether the board has been cleared.
func (s *Session) Won() bool {
	return s.won
}

// CanUndo reports whether there is a match to undo.
func (s *Session) CanUndo() bool {
	return len(s.history) > 0
}

// CanRedo reports whether there is an undone match to reapply.
func (s *Session) CanRedo() bool {
	return len(s.redo) > 0
}

// Summary returns the final time and moves once the session is won.
func (s *Session) Summary() (Summary, bool) {
	if !s.won {
		return Summary{}, false
	}
	return Summary{Elapsed: s.clock.Elapsed(), Moves: s.moves}, true
}

// Tick advances the clock by one second.
func (s *Session) Tick() {
	s.clock.Tick()
}

// Select applies a player pick of the given tile.
func (s *Session) Select(id int) Outcome {
	if !s.board.IsFree(id) {
		return OutcomeIgnored
	}

	s.clock.Start()
	s.redo = nil

	if s.selected == NoTile {
		s.selected = id
		return OutcomeSelected
	}

	if s.selected == id {
		s.selected = NoTile
		return OutcomeDeselected
	}

	prev, ok := s.board.Tile(s.selected)
	if !ok || prev.Removed {
		s.selected = id
		return OutcomeSelected
	}

	cur, _ := s.board.Tile(id)
	if prev.Face != cur.Face {
		s.selected = id
		return OutcomeReselected
	}

	s.board.setRemoved(prev.ID, true)
	s.board.setRemoved(cur.ID, true)
	s.history = append(s.history, MatchRecord{A: prev.ID, B: cur.ID})
	s.selected = NoTile
	s.moves++

	if s.checkWin() {
		return OutcomeWon
	}
	return OutcomeMatched
}

// Undo restores the most recent match. Returns false if there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}

	last := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]

	s.board.setRemoved(last.A, false)
	s.board.setRemoved(last.B, false)
	s.moves = max(0, s.moves-1)
	s.selected = NoTile
	s.redo = append(s.redo, last)
	s.won = false
	return true
}

// Redo reapplies the most recently undone match. Returns false if the redo
// stack is empty.
func (s *Session) Redo() bool {
	if len(s.redo) == 0 {
		return false
	}

	last := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]

	s.board.setRemoved(last.A, true)
	s.board.setRemoved(last.B, true)
	s.history = append(s.history, last)
	s.moves++
	s.selected = NoTile
	s.checkWin()
	return true
}

// checkWin marks the session won and stops the clock when the board is clear.
func (s *Session) checkWin() bool {
	if !s.board.Cleared() {
		return false
	}
	s.won = true
	s.clock.Stop()
	return true
}

// Hint returns a pair of free tiles sharing a face.
// Free tiles are scanned in ID order and grouped by face in first-seen order;
// the first face with two free tiles wins. It never mutates the session.
func (s *Session) Hint() (MatchRecord, bool) {
	return FindPair(s.board)
}

// Stuck reports whether the game is not won and no pair is available.
func (s *Session) Stuck() bool {
	if s.won {
		return false
	}
	_, ok := FindPair(s.board)
	return !ok
}

// FindPair returns the first available pair of free tiles with equal faces.
func FindPair(b *Board) (MatchRecord, bool) {
	var order []string
	groups := make(map[string][]int)

	for _, id := range b.FreeTiles() {
		t, _ := b.Tile(id)
		if _, seen := groups[t.Face]; !seen {
			order = append(order, t.Face)
		}
		groups[t.Face] = append(groups[t.Face], id)
	}

	for _, face := range order {
		if ids := groups[face]; len(ids) >= 2 {
			return MatchRecord{A: ids[0], B: ids[1]}, true
		}
	}
	return MatchRecord{}, false
}
