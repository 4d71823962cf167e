package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/layouts"
)

var flagExport string

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List playable layouts",
	Long: `Shows the built-in layouts and any loaded from layouts.dir in the
config, filtered by layouts.enabled.

Each layout is checked against the configured deck. Layout files whose
slot count differs from the deck size are skipped with a warning.

Use --export to print a layout as YAML, a starting point for your own.

Examples:
  mahjong layouts
  mahjong layouts --export turtle > ~/.arcade/layouts/my-turtle.yaml`,
	Args: cobra.NoArgs,
	Run:  runLayouts,
}

func init() {
	layoutsCmd.Flags().StringVar(&flagExport, "export", "", "Print the named layout as YAML")
}

func runLayouts(_ *cobra.Command, _ []string) {
	// Skipped layout files are reported on stderr.
	logger := newLogger(os.Stderr)

	opts, _, err := setupGame(logger)
	if err != nil {
		exitf("%v", err)
	}

	if flagExport != "" {
		err = exportLayout(os.Stdout, opts, flagExport)
	} else {
		printLayouts(os.Stdout, opts)
	}
	if err != nil {
		exitf("%v", err)
	}
}

// exportLayout writes the named layout in the layout file format.
func exportLayout(w io.Writer, opts mahjong.Options, name string) error {
	l, ok := core.FindLayout(opts.Layouts, name)
	if !ok {
		return fmt.Errorf("unknown layout %q", name)
	}
	data, err := layouts.MarshalYAML(l)
	if err != nil {
		return fmt.Errorf("encoding layout %s: %w", name, err)
	}
	_, err = w.Write(data)
	return err
}

// printLayouts writes a table of layouts with their validation status.
func printLayouts(w io.Writer, opts mahjong.Options) {
	if len(opts.Layouts) == 0 {
		fmt.Fprintln(w, "No layouts enabled.")
		return
	}

	deckSize := opts.DeckSize()
	fmt.Fprintf(w, "Available layouts (deck of %d tiles):\n", deckSize)
	fmt.Fprintln(w)

	maxNameLen := 4 // "Name" header
	for _, l := range opts.Layouts {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-5s  %-5s  %s\n", maxNameLen, "Name", "Tiles", "Depth", "Status")
	fmt.Fprintf(w, "  %-*s  %-5s  %-5s  %s\n", maxNameLen, "----", "-----", "-----", "------")

	for _, l := range opts.Layouts {
		status := "ok"
		if err := core.Validate(l, deckSize); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(w, "  %-*s  %-5d  %-5d  %s\n", maxNameLen, l.Name, l.Count(), l.Depth(), status)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mahjong play <name>' to play a layout.")
}
