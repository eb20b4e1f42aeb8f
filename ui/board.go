// Package ui renders a game as two tview boards, one per side, each drawn in its
// own side's frame.
package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/config"
	"github.com/daystram/reversi/game"
	"github.com/daystram/reversi/position"
)

const (
	styleBoard = iota
	styleBoardAlt
	styleSide1
	styleSide2
	styleLegal
	styleCursor
	styleLastPlayed
)

// BoardUI draws the game from one side's point of view and keeps that side's cursor.
type BoardUI struct {
	Box    *tview.Box
	side   board.Side
	game   *game.Game
	cfg    *config.Config
	styles []tcell.Color

	// cursor, in side's frame
	selRow int
	selCol int
}

func NewBoardUI(g *game.Game, s board.Side, c *config.Config) *BoardUI {
	b := &BoardUI{
		Box:    tview.NewBox(),
		side:   s,
		game:   g,
		selRow: 2,
		selCol: 3,
	}
	b.SetConfig(c)
	b.Box.SetBorder(true)
	b.Box.SetTitle(" " + c.Player(s).Name + " ")
	b.Box.SetDrawFunc(b.draw)
	return b
}

func (b *BoardUI) SetConfig(c *config.Config) {
	b.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // styleBoard
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // styleBoardAlt
		tcell.PaletteColor(c.Theme.Colors.Side1Color),        // styleSide1
		tcell.PaletteColor(c.Theme.Colors.Side2Color),        // styleSide2
		tcell.PaletteColor(c.Theme.Colors.LegalColor),        // styleLegal
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // styleCursor
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // styleLastPlayed
	}
	b.cfg = c
}

func (b *BoardUI) Side() board.Side {
	return b.side
}

// Selected returns the cursor cell in this board's side frame.
func (b *BoardUI) Selected() position.Pos {
	pos, _ := position.NewPos(b.selRow, b.selCol)
	return pos
}

// MoveSelection shifts the cursor, staying inside the grid.
func (b *BoardUI) MoveSelection(dr, dc int) {
	if !position.InBounds(b.selRow+dr, b.selCol+dc) {
		return
	}
	b.selRow += dr
	b.selCol += dc
}

func (b *BoardUI) active() bool {
	return b.game.Turn() == b.side
}

// lastPlayed returns the last committed cell in this board's frame.
func (b *BoardUI) lastPlayed() (int, int, bool) {
	mv := b.game.LastMove()
	if mv.IsNull() {
		return 0, 0, false
	}
	canonical := mv.Canonical()
	r, c := b.side.Orient(canonical.Row(), canonical.Col())
	return r, c, true
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	// 2 characters per cell for square appearance, 3 columns of row labels
	left, top := x+4, y+1
	view := b.game.View(b.side)
	lastRow, lastCol, hasLast := b.lastPlayed()

	for r := 0; r < board.Height; r++ {
		for c := 0; c < board.Width; c++ {
			bg := b.styles[styleBoard]
			if (r%2+c%2)%2 == 1 {
				bg = b.styles[styleBoardAlt]
			}
			if hasLast && r == lastRow && c == lastCol && b.cfg.Theme.DrawLastPlayedBackground {
				bg = b.styles[styleLastPlayed]
			}
			if b.active() && r == b.selRow && c == b.selCol && b.cfg.Theme.DrawCursorBackground {
				bg = b.styles[styleCursor]
			}

			sym, fg := b.cfg.Theme.Symbols.Empty, b.styles[styleLegal]
			switch view[r][c] {
			case board.SpaceSide1:
				sym, fg = b.cfg.Theme.Symbols.Side1Disc, b.styles[styleSide1]
			case board.SpaceSide2:
				sym, fg = b.cfg.Theme.Symbols.Side2Disc, b.styles[styleSide2]
			default:
				if b.active() && b.cfg.Theme.HighlightLegalMoves && b.game.CountCapture(b.side, mustPos(r, c)) > 0 {
					sym = b.cfg.Theme.Symbols.Legal
				}
			}
			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			screen.SetContent(left+c*2, top+r, sym, nil, style)
			screen.SetContent(left+c*2+1, top+r, ' ', nil, style)
		}
	}
	b.drawCoordinates(screen, x, top)
	return x, y, width, height
}

func (b *BoardUI) drawCoordinates(screen tcell.Screen, x, top int) {
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(b.styles[styleCursor])
	for c := 0; c < board.Width; c++ {
		s := style
		if b.active() && c == b.selCol {
			s = highlight
		}
		screen.SetContent(x+4+c*2, top+board.Height, rune(position.NotationComponentCol(c)[0]), nil, s)
	}
	for r := 0; r < board.Height; r++ {
		s := style
		if b.active() && r == b.selRow {
			s = highlight
		}
		screen.SetContent(x+2, top+r, rune(position.NotationComponentRow(r)[0]), nil, s)
	}
}

func mustPos(row, col int) position.Pos {
	pos, ok := position.NewPos(row, col)
	if !ok {
		panic("ui: cell out of bounds")
	}
	return pos
}
