package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/config"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in configuration as YAML.

Save it to ~/.arcade/configs/mahjong.yaml or ./configs/mahjong.yaml and
edit it to change the deck, enable layouts or load extra layout files.

Examples:
  mahjong config > ~/.arcade/configs/mahjong.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.GetDefaultYAML(mahjong.GameID)); err != nil {
			exitf("%v", err)
		}
	},
}
