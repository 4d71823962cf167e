package config

import (
	_ "embed"
)

//go:embed defaults/mahjong.yaml
var defaultMahjongYAML []byte

// DefaultMahjongConfig returns the hardcoded mahjong configuration.
// Faces are left empty so the game falls back to its built-in deck.
func DefaultMahjongConfig() MahjongConfig {
	return MahjongConfig{
		Deck: DeckConfig{
			Copies: 4,
		},
		Layouts: LayoutsConfig{
			Dir: "~/.arcade/layouts",
		},
		Gameplay: GameplayConfig{
			HintSeconds: 3,
			TickRate:    30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mahjong":
		return defaultMahjongYAML
	default:
		return nil
	}
}

// applyDefaults fills zero values left by a partial config file.
func applyDefaults(cfg *MahjongConfig) {
	def := DefaultMahjongConfig()
	if cfg.Deck.Copies == 0 {
		cfg.Deck.Copies = def.Deck.Copies
	}
	if cfg.Gameplay.HintSeconds == 0 {
		cfg.Gameplay.HintSeconds = def.Gameplay.HintSeconds
	}
	if cfg.Gameplay.TickRate == 0 {
		cfg.Gameplay.TickRate = def.Gameplay.TickRate
	}
}
