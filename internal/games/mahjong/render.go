package mahjong

import (
	"errors"
	"fmt"
	"strconv"

	platformcore "github.com/vovakirdan/tui-mahjong/internal/core"
	"github.com/vovakirdan/tui-mahjong/internal/games/mahjong/core"
)

var errNoLayouts = errors.New("mahjong: no layouts available")

const (
	cellWidth  = labelWidth + 3 // brackets plus a gap column
	cellHeight = 2              // face row and depth row
	hudHeight  = 2
	footHeight = 2
)

// minSize returns the smallest screen that fits the board and HUD.
func (g *Game) minSize() (w, h int) {
	w = g.bounds.Width()*cellWidth + 1
	h = g.bounds.Height()*cellHeight + hudHeight + footHeight
	return max(w, 40), h
}

// boardOrigin returns the screen position of the top-left grid column.
func (g *Game) boardOrigin() (x, y int) {
	bw := g.bounds.Width() * cellWidth
	bh := g.bounds.Height() * cellHeight
	x = (g.screenW - bw) / 2
	y = hudHeight + (g.screenH-hudHeight-footHeight-bh)/2
	return max(0, x), max(hudHeight, y)
}

// cellOrigin maps a grid column to its screen position.
func (g *Game) cellOrigin(gx, gy int) (x, y int) {
	ox, oy := g.boardOrigin()
	return ox + (gx-g.bounds.MinX)*cellWidth, oy + (gy-g.bounds.MinY)*cellHeight
}

// hitTest maps a screen position to a grid column.
func (g *Game) hitTest(sx, sy int) (x, y int, ok bool) {
	ox, oy := g.boardOrigin()
	if sx < ox || sy < oy {
		return 0, 0, false
	}
	col := (sx - ox) / cellWidth
	row := (sy - oy) / cellHeight
	if col >= g.bounds.Width() || row >= g.bounds.Height() {
		return 0, 0, false
	}
	return g.bounds.MinX + col, g.bounds.MinY + row, true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	if g.session == nil {
		g.renderError(dst)
		return
	}

	g.checkScreenSize()
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderError(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCenteredWithColor(y-1, "Cannot deal a game", platformcore.ColorRed)
	if g.dealErr != nil {
		dst.DrawTextCentered(y, g.dealErr.Error())
	}
	dst.DrawTextCenteredWithColor(y+2, "Check the deck and layout config", platformcore.ColorGray)
	dst.DrawTextCenteredWithColor(y+3, "N: try another layout | Q: quit", platformcore.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	w, h := g.minSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y-1, "Window too small")
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", w, h, g.screenW, g.screenH))
	dst.DrawTextCenteredWithColor(y+1, "Please resize terminal", platformcore.ColorGray)
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.session
	layout := s.Deal().Layout

	left := fmt.Sprintf(" %s | %s", g.Title(), layout.Title)
	dst.DrawTextWithColor(0, 0, left, platformcore.ColorCyan)

	right := fmt.Sprintf("Time %s  Moves %d  Pairs %d ",
		core.FormatTime(s.Elapsed()), s.Moves(), s.Board().PairsRemaining())
	dst.DrawTextWithColor(g.screenW-len(right), 0, right, platformcore.ColorCyan)

	dst.DrawHLine(0, 1, g.screenW, '─', platformcore.ColorGray)
}

func (g *Game) renderBoard(dst *platformcore.Screen) {
	b := g.session.Board()
	for y := g.bounds.MinY; y <= g.bounds.MaxY; y++ {
		for x := g.bounds.MinX; x <= g.bounds.MaxX; x++ {
			px, py := g.cellOrigin(x, y)
			cursor := x == g.cursorX && y == g.cursorY

			id := b.TopAt(x, y)
			if id == core.NoTile {
				if cursor {
					dst.DrawTextWithColor(px, py+1, "▔▔▔▔", platformcore.ColorCyan)
				}
				continue
			}
			t, _ := b.Tile(id)
			g.drawTile(dst, px, py, t, b.IsFree(id), cursor)
		}
	}
}

// drawTile draws the top tile of a column. The second row shows how many
// tiles are stacked below it, or the cursor.
func (g *Game) drawTile(dst *platformcore.Screen, px, py int, t core.Tile, free, cursor bool) {
	style, ok := g.styles[t.Face]
	if !ok {
		style = faceStyle{Label: "??", Color: platformcore.ColorWhite}
	}

	open, closed := '[', ']'
	bracket := platformcore.ColorWhite
	label := style.Color
	if !free {
		bracket, label = platformcore.ColorGray, platformcore.ColorGray
	}
	switch {
	case g.session.Selected() == t.ID:
		open, closed = '<', '>'
		bracket = platformcore.ColorBrightWhite
	case g.Hinted(t.ID):
		open, closed = '*', '*'
		bracket = platformcore.ColorBrightYellow
	}

	dst.SetWithColor(px, py, open, bracket)
	dst.DrawTextWithColor(px+1, py, style.Label, label)
	dst.SetWithColor(px+1+labelWidth, py, closed, bracket)

	if cursor {
		dst.DrawTextWithColor(px, py+1, "▔▔▔▔", platformcore.ColorCyan)
		return
	}
	switch {
	case t.Pos.Z == 0:
	case t.Pos.Z <= 3:
		for i := range t.Pos.Z {
			dst.SetWithColor(px+1+i, py+1, '·', platformcore.ColorGray)
		}
	default:
		dst.DrawTextWithColor(px+1, py+1, "×"+strconv.Itoa(t.Pos.Z), platformcore.ColorGray)
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen) {
	msgY := g.screenH - 2
	switch {
	case g.message != "":
		dst.DrawTextCenteredWithColor(msgY, g.message, platformcore.ColorYellow)
	case g.session.Stuck():
		dst.DrawTextCenteredWithColor(msgY, msgStuck, platformcore.ColorBrightRed)
	case g.session.Selected() != core.NoTile:
		t, _ := g.session.Board().Tile(g.session.Selected())
		dst.DrawTextCenteredWithColor(msgY, "Selected: "+t.Face, platformcore.ColorWhite)
	default:
		if id := g.session.Board().TopAt(g.cursorX, g.cursorY); id != core.NoTile {
			t, _ := g.session.Board().Tile(id)
			dst.DrawTextCenteredWithColor(msgY, fmt.Sprintf("%s (layer %d)", t.Face, t.Pos.Z+1), platformcore.ColorGray)
		}
	}

	dst.DrawTextCenteredWithColor(g.screenH-1, g.Controls(), platformcore.ColorGray)
}

func (g *Game) renderOverlays(dst *platformcore.Screen) {
	cx := g.screenW / 2
	cy := g.screenH / 2

	if sum, ok := g.session.Summary(); ok {
		g.drawOverlay(dst, cx, cy,
			"BOARD CLEARED!",
			fmt.Sprintf("Time %s  Moves %d", core.FormatTime(sum.Elapsed), sum.Moves),
			"N: new game | U: undo",
		)
		return
	}

	if g.paused {
		g.drawOverlay(dst, cx, cy, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *platformcore.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := platformcore.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxWithColor(box, platformcore.ColorYellow)
	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextWithColor(x, box.Y+1+i, line, platformcore.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←↑↓→ move  space pick  u undo  r redo  ? hint  n new  p pause  b menu  q quit"
}
