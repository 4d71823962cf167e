package core

import "fmt"

// DefaultCopies is how many times each face appears in a standard deck.
const DefaultCopies = 4

// DefaultFaces is the reference vocabulary of 36 tile faces.
var DefaultFaces = []string{
	"Iron Man",
	"Captain America",
	"Thor",
	"Hulk",
	"Black Widow",
	"Hawkeye",
	"Spider-Man",
	"Black Panther",
	"Doctor Strange",
	"Scarlet Witch",
	"Vision",
	"Ant-Man",
	"Wasp",
	"Captain Marvel",
	"Falcon",
	"Winter Soldier",
	"Star-Lord",
	"Gamora",
	"Drax",
	"Rocket",
	"Groot",
	"Mantis",
	"Nebula",
	"Nick Fury",
	"War Machine",
	"Shuri",
	"Okoye",
	"Wong",
	"Valkyrie",
	"Korg",
	"Loki",
	"Heimdall",
	"Peggy Carter",
	"Quicksilver",
	"Kate Bishop",
	"Ms. Marvel",
}

// BuildDeck returns each face repeated copies times, grouped by face.
func BuildDeck(faces []string, copies int) []string {
	if copies < 0 {
		copies = 0
	}
	deck := make([]string, 0, len(faces)*copies)
	for _, face := range faces {
		for range copies {
			deck = append(deck, face)
		}
	}
	return deck
}

// Shuffle permutes the deck in place with the Fisher-Yates algorithm:
// for i from the last index down to 1, swap i with a uniform index in [0, i].
func Shuffle(deck []string, rng Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// MismatchError reports a deck whose size differs from the layout slot count.
// It indicates a broken layout or deck definition.
type MismatchError struct {
	Layout string
	Slots  int
	Deck   int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mahjong: deck size %d does not match %d slots of layout %q", e.Deck, e.Slots, e.Layout)
}
