package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/layouts"
	"github.com/vovakirdan/tui-mahjong/internal/storage"
)

func TestWithGameLoggerReturnsError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	errBoom := errors.New("boom")
	err := withGameLogger(func(logger *log.Logger) error {
		logger.Error("deal failed", "layout", "turtle")
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("withGameLogger() = %v, want %v", err, errBoom)
	}

	data, err := os.ReadFile(filepath.Join(home, ".arcade", "mahjong.log"))
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "deal failed") {
		t.Errorf("log = %q, missing the entry", data)
	}
}

func TestPlayUnknownLayout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	err := withGameLogger(func(logger *log.Logger) error {
		return play(logger, []string{"no-such-layout"})
	})
	if err == nil || !strings.Contains(err.Error(), "unknown layout") {
		t.Errorf("play() = %v, want unknown layout error", err)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printScores(&buf, store, "", 10); err != nil {
		t.Fatalf("printScores() on empty store: %v", err)
	}
	if !strings.Contains(buf.String(), "No cleared deals") {
		t.Errorf("empty output = %q", buf.String())
	}

	for _, r := range []storage.Result{
		{DealID: "a", Layout: "fish", Seconds: 125, Moves: 72, Won: true},
		{DealID: "b", Layout: "fish", Seconds: 30, Moves: 3},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	buf.Reset()
	if err := printScores(&buf, store, "fish", 10); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Fastest clears - fish", "02:05", "fish: won 1 of 2 (50%), best 02:05"} {
		if !strings.Contains(out, want) {
			t.Errorf("printScores() output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := printRecent(&buf, store, 10); err != nil {
		t.Fatalf("printRecent() failed: %v", err)
	}
	out = buf.String()
	if !strings.Contains(out, "cleared") || !strings.Contains(out, "abandoned") {
		t.Errorf("printRecent() output:\n%s", out)
	}
}

func TestExportLayout(t *testing.T) {
	opts := mahjong.DefaultOptions()

	var buf bytes.Buffer
	if err := exportLayout(&buf, opts, "turtle"); err != nil {
		t.Fatalf("exportLayout() failed: %v", err)
	}
	l, err := layouts.ParseYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("exported layout does not parse: %v", err)
	}
	if l.Name != "turtle" || l.Count() != opts.DeckSize() {
		t.Errorf("exported layout %s has %d slots", l.Name, l.Count())
	}

	if err := exportLayout(&buf, opts, "nope"); err == nil {
		t.Error("exportLayout() of an unknown layout should fail")
	}
}

func TestPrintLayouts(t *testing.T) {
	var buf bytes.Buffer
	printLayouts(&buf, mahjong.DefaultOptions())

	out := buf.String()
	if !strings.Contains(out, "deck of 144 tiles") {
		t.Errorf("output missing deck size:\n%s", out)
	}
	for _, name := range []string{"turtle", "fortress", "fish", "butterfly"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing %s:\n%s", name, out)
		}
	}
	if strings.Count(out, "  ok\n") != 4 {
		t.Errorf("expected 4 valid layouts:\n%s", out)
	}
}
