package core

import "fmt"

// DealOptions controls how a deal is assembled.
type DealOptions struct {
	// Strict turns a deck/layout size mismatch into an error instead of
	// cycling the deck. Tests and debug builds set it.
	Strict bool
}

// Deal is one generated layout paired with a shuffled deck.
type Deal struct {
	Layout Layout
	Board  *Board

	// Mismatch is set when the deck size differed from the slot count and the
	// deal was built by cycling the deck. It is always nil in strict mode.
	Mismatch *MismatchError
}

// NewDeal validates the layout, shuffles a copy of the deck and builds the board.
// A nil rng keeps the deck in the given order.
func NewDeal(layout Layout, deck []string, rng Rand, opts DealOptions) (*Deal, error) {
	if err := Validate(layout, 0); err != nil {
		return nil, fmt.Errorf("mahjong: invalid layout: %w", err)
	}

	slots := layout.Slots()
	if len(deck) == 0 && len(slots) > 0 {
		return nil, &MismatchError{Layout: layout.Name, Slots: len(slots), Deck: 0}
	}

	var mismatch *MismatchError
	if len(deck) != len(slots) {
		mismatch = &MismatchError{Layout: layout.Name, Slots: len(slots), Deck: len(deck)}
		if opts.Strict {
			return nil, mismatch
		}
	}

	faces := make([]string, len(deck))
	copy(faces, deck)
	if rng != nil {
		Shuffle(faces, rng)
	}

	return &Deal{
		Layout:   layout,
		Board:    NewBoard(slots, faces),
		Mismatch: mismatch,
	}, nil
}
