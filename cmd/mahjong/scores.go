package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
	"github.com/vovakirdan/tui-mahjong/internal/storage"
)

var (
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [layout]",
	Short: "Show the fastest clears",
	Long: `Display the 10 fastest cleared deals, for one layout or for all of them,
followed by per-layout statistics.

Examples:
  mahjong scores
  mahjong scores turtle
  mahjong scores --recent
  mahjong scores fish --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest deals, won or not")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored results for the layout (all layouts if none given)")
}

func runScores(_ *cobra.Command, args []string) {
	layout := ""
	if len(args) == 1 {
		layout = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		exitf("opening results database: %v", err)
	}

	switch {
	case flagClear:
		err = store.ClearResults(layout)
		if err == nil {
			fmt.Printf("Cleared results for %s.\n", layoutTitle(layout))
		}
	case flagRecent:
		err = printRecent(os.Stdout, store, 10)
	default:
		err = printScores(os.Stdout, store, layout, 10)
	}
	store.Close()

	if err != nil {
		exitf("%v", err)
	}
}

func layoutTitle(layout string) string {
	if layout == "" {
		return "all layouts"
	}
	return layout
}

// printScores writes the fastest wins and the layout statistics.
func printScores(w io.Writer, store *storage.Store, layout string, limit int) error {
	results, err := store.BestResults(layout, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Fastest clears - %s\n", layoutTitle(layout))
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No cleared deals recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'mahjong play' to set the first time!")
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-10s  %s\n", "Rank", "Time", "Moves", "Layout", "Date")
	fmt.Fprintf(w, "  %-4s  %-6s  %-5s  %-10s  %s\n", "----", "----", "-----", "------", "----")
	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-6s  %-5d  %-10s  %s\n", i+1, core.FormatTime(r.Seconds), r.Moves, r.Layout, dateStr)
	}

	fmt.Fprintln(w)
	if layout != "" {
		stats, err := store.LayoutStats(layout)
		if err != nil {
			return err
		}
		printStats(w, stats)
		return nil
	}

	all, err := store.AllStats()
	if err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(all)) {
		printStats(w, all[name])
	}
	return nil
}

// printRecent writes the latest deals in any outcome.
func printRecent(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.RecentResults(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Recent deals")
	fmt.Fprintln(w)
	if len(results) == 0 {
		fmt.Fprintln(w, "No deals recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-5s  %s\n", "Date", "Layout", "Time", "Moves", "Result")
	fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-5s  %s\n", "----", "------", "----", "-----", "------")
	for _, r := range results {
		outcome := "abandoned"
		if r.Won {
			outcome = "cleared"
		}
		fmt.Fprintf(w, "  %-16s  %-10s  %-6s  %-5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Layout, core.FormatTime(r.Seconds), r.Moves, outcome)
	}
	return nil
}

func printStats(w io.Writer, s *storage.LayoutStats) {
	fmt.Fprintf(w, "%s: won %d of %d (%.0f%%), best %s\n",
		s.Layout, s.Won, s.Played, s.WinRate()*100, core.FormatTime(s.BestSeconds))
}
