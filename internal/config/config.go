// Package config provides YAML-based configuration loading for the
// mahjong game.
package config

import "fmt"

// MahjongConfig contains all configuration for the mahjong game.
type MahjongConfig struct {
	Deck     DeckConfig     `yaml:"deck"`
	Layouts  LayoutsConfig  `yaml:"layouts"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// DeckConfig defines the tile faces and how many copies of each are dealt.
type DeckConfig struct {
	Faces  []string `yaml:"faces"`  // Empty means the built-in faces
	Copies int      `yaml:"copies"` // Copies of each face
}

// LayoutsConfig selects which board layouts are playable.
type LayoutsConfig struct {
	Enabled []string `yaml:"enabled"` // Layout names; empty enables all
	Dir     string   `yaml:"dir"`     // Directory of extra YAML layouts
}

// GameplayConfig holds session tuning.
type GameplayConfig struct {
	HintSeconds int  `yaml:"hint_seconds"` // How long a hint stays highlighted
	TickRate    int  `yaml:"tick_rate"`    // Simulation ticks per second
	Strict      bool `yaml:"strict"`       // Deck/layout mismatch is fatal
}

// Validate reports configuration values that cannot produce a deal.
func (c MahjongConfig) Validate() error {
	if c.Deck.Copies <= 0 {
		return fmt.Errorf("config: deck.copies must be positive, got %d", c.Deck.Copies)
	}
	if c.Deck.Copies%2 != 0 {
		return fmt.Errorf("config: deck.copies must be even, got %d", c.Deck.Copies)
	}

	seen := make(map[string]bool, len(c.Deck.Faces))
	for _, f := range c.Deck.Faces {
		if f == "" {
			return fmt.Errorf("config: deck.faces contains an empty face")
		}
		if seen[f] {
			return fmt.Errorf("config: deck.faces lists %q twice", f)
		}
		seen[f] = true
	}

	if c.Gameplay.HintSeconds < 0 {
		return fmt.Errorf("config: gameplay.hint_seconds must not be negative")
	}
	if c.Gameplay.TickRate < 0 {
		return fmt.Errorf("config: gameplay.tick_rate must not be negative")
	}
	return nil
}

// LayoutEnabled reports whether the named layout is playable.
func (c MahjongConfig) LayoutEnabled(name string) bool {
	if len(c.Layouts.Enabled) == 0 {
		return true
	}
	for _, n := range c.Layouts.Enabled {
		if n == name {
			return true
		}
	}
	return false
}
