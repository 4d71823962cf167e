package layouts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
)

// Loader reads layout files from a directory tree.
type Loader struct {
	Root string

	// Want, if positive, is the slot count every loaded layout must have.
	Want int

	// OnSkip, if set, is called for every layout file that fails to load.
	OnSkip func(path string, err error)
}

// NewLoader creates a new layout loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all layout files.
// Invalid files are skipped. A missing root yields no layouts and no error.
// Returns layouts sorted by name; on duplicate names the first path wins.
func (l *Loader) LoadAll() ([]core.Layout, error) {
	if _, err := os.Stat(l.Root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var paths []string
	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if slices.Contains(FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layouts: walking directory %s: %w", l.Root, err)
	}

	seen := make(map[string]bool)
	var out []core.Layout
	for _, path := range paths {
		layout, err := l.LoadFile(path)
		if err != nil {
			l.skip(path, err)
			continue
		}
		if l.Want > 0 {
			if err := core.Validate(layout, l.Want); err != nil {
				l.skip(path, fmt.Errorf("layouts: %s does not fit the deck: %w", path, err))
				continue
			}
		}
		if seen[layout.Name] {
			l.skip(path, fmt.Errorf("layouts: duplicate layout name %q", layout.Name))
			continue
		}
		seen[layout.Name] = true
		out = append(out, layout)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})

	return out, nil
}

// LoadFile loads a single layout file.
func (l *Loader) LoadFile(path string) (core.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Layout{}, fmt.Errorf("layouts: reading file %s: %w", path, err)
	}

	layout, err := ParseYAML(data)
	if err != nil {
		return core.Layout{}, fmt.Errorf("layouts: parsing file %s: %w", path, err)
	}
	return layout, nil
}

func (l *Loader) skip(path string, err error) {
	if l.OnSkip != nil {
		l.OnSkip(path, err)
	}
}

// Merge appends extra layouts to the base list, dropping extras whose name
// is already taken. Base order is preserved.
func Merge(base, extra []core.Layout) []core.Layout {
	out := slices.Clone(base)
	for _, e := range extra {
		if _, ok := core.FindLayout(out, e.Name); ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Filter keeps the layouts accepted by keep, in order.
func Filter(all []core.Layout, keep func(name string) bool) []core.Layout {
	var out []core.Layout
	for _, l := range all {
		if keep(l.Name) {
			out = append(out, l)
		}
	}
	return out
}
