package mahjong

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
)

// labelWidth is the number of cells a face label occupies.
const labelWidth = 2

// faceStyle is how one face is drawn on a tile.
type faceStyle struct {
	Label string
	Color platformcore.Color
}

// faceStyles assigns every face a short label and a color.
// Labels are unique within the set; colors cycle through the tile palette in
// face order.
func faceStyles(faces []string) map[string]faceStyle {
	styles := make(map[string]faceStyle, len(faces))
	used := make(map[string]bool, len(faces))

	for i, face := range faces {
		if _, ok := styles[face]; ok {
			continue
		}
		label := pickLabel(face, used)
		used[label] = true
		styles[face] = faceStyle{
			Label: label,
			Color: platformcore.TilePalette[i%len(platformcore.TilePalette)],
		}
	}
	return styles
}

// unknownLabel is drawn when every two-cell label is taken.
const unknownLabel = "??"

func pickLabel(face string, used map[string]bool) string {
	for _, c := range labelCandidates(face) {
		if fitsCell(c) && !used[c] {
			return c
		}
	}
	// Fall back to a letter plus a digit, then to a number, then to a
	// pair of letters.
	if r := []rune(strings.TrimSpace(face)); len(r) > 0 {
		first := string(unicode.ToUpper(r[0]))
		for d := range 10 {
			c := first + strconv.Itoa(d)
			if fitsCell(c) && !used[c] {
				return c
			}
		}
	}
	for n := 10; n < 100; n++ {
		if c := strconv.Itoa(n); !used[c] {
			return c
		}
	}
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			if c := string([]rune{a, b}); !used[c] {
				return c
			}
		}
	}
	return unknownLabel
}

// fitsCell reports whether a label fills exactly labelWidth terminal cells,
// one rune per cell.
func fitsCell(label string) bool {
	return len([]rune(label)) == labelWidth && lipgloss.Width(label) == labelWidth
}

// labelCandidates lists label choices for a face, best first:
// initials of the first two words, then the first two letters, then the
// first and last letter.
func labelCandidates(face string) []string {
	words := strings.FieldsFunc(face, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return nil
	}

	var out []string
	if len(words) >= 2 {
		a := []rune(words[0])
		b := []rune(words[1])
		out = append(out, string([]rune{unicode.ToUpper(a[0]), unicode.ToUpper(b[0])}))
	}

	letters := []rune(strings.Join(words, ""))
	if len(letters) >= 2 {
		out = append(out, string([]rune{unicode.ToUpper(letters[0]), unicode.ToLower(letters[1])}))
		out = append(out, string([]rune{unicode.ToUpper(letters[0]), unicode.ToLower(letters[len(letters)-1])}))
	} else {
		out = append(out, string(unicode.ToUpper(letters[0]))+" ")
	}
	return out
}
