package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/reversi/position"
)

var (
	ErrInvalidLayout = errors.New("invalid layout")
)

// Board is the single canonical 8x8 grid shared by both sides.
// Every operation taking a side converts that side's coordinates with Side.Orient
// before touching the grid. Board is not safe for concurrent use.
type Board struct {
	// grid data, row-major in canonical frame
	cells [Height][Width]Space

	// meta
	state State

	// snapshot, only written by a terminal IsTerminal sweep
	side1Score int
	side2Score int
}

type boardConfig struct {
	layout string
}

type BoardOption func(*boardConfig)

func WithLayout(layout string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.layout = layout
	}
}

func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		layout: DefaultLayout,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{}
	if err := UnmarshalLayout(cfg.layout, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset puts the opening position back on the board. The score snapshot of the
// previous round is left readable.
func (b *Board) Reset() {
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			b.cells[r][c] = SpaceEmpty
		}
	}
	b.cells[3][3] = SpaceSide2
	b.cells[4][4] = SpaceSide2
	b.cells[3][4] = SpaceSide1
	b.cells[4][3] = SpaceSide1
	b.state = StateInProgress
}

// Read returns the canonical cell at (row, col), or SpaceOutOfBounds outside the grid.
func (b *Board) Read(row, col int) Space {
	if !position.InBounds(row, col) {
		return SpaceOutOfBounds
	}
	return b.cells[row][col]
}

// Place writes s's piece at (row, col) in s's frame. No capture is performed and
// occupancy is not checked; Place must always be followed by Capture.
func (b *Board) Place(row, col int, s Side) {
	row, col = s.Orient(row, col)
	b.cells[row][col] = s.Space()
	b.state = StateUnknown
}

// Capture flips every opposing run bracketed by s's pieces from the piece s has
// just placed at (row, col) in s's frame.
func (b *Board) Capture(row, col int, s Side) {
	row, col = s.Orient(row, col)
	own, opponent := s.Space(), s.Opposite().Space()

	// all runs are measured against the board as it was before any flip
	var runs [len(compass)]int
	for i, d := range compass {
		runs[i] = b.scanRun(row, col, d[0], d[1], own, opponent)
	}
	for i, d := range compass {
		for step := 1; step <= runs[i]; step++ {
			b.cells[row+step*d[0]][col+step*d[1]] = own
		}
	}
	b.state = StateUnknown
}

// CountCapture returns how many opposing pieces s would capture by playing at
// (row, col) in s's frame. Occupied and off-board cells count 0. A move is legal
// iff the count is positive.
func (b *Board) CountCapture(row, col int, s Side) int {
	row, col = s.Orient(row, col)
	return b.countCapture(row, col, s)
}

func (b *Board) countCapture(row, col int, s Side) int {
	if b.Read(row, col) != SpaceEmpty {
		return 0
	}
	own, opponent := s.Space(), s.Opposite().Space()
	var total int
	for _, d := range compass {
		total += b.scanRun(row, col, d[0], d[1], own, opponent)
	}
	return total
}

// IsTerminal reports whether neither side can capture anywhere. Only a terminal
// sweep stores the piece tally read by Scores.
func (b *Board) IsTerminal() bool {
	// local to the sweep so an early return leaves the snapshot untouched
	var side1, side2 int
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if b.countCapture(r, c, Side1) != 0 || b.countCapture(r, c, Side2) != 0 {
				b.state = StateInProgress
				return false
			}
			switch b.cells[r][c] {
			case SpaceSide1:
				side1++
			case SpaceSide2:
				side2++
			}
		}
	}
	b.side1Score = side1
	b.side2Score = side2
	b.state = StateTerminal
	return true
}

// Scores returns the tally taken by the last terminal IsTerminal call.
func (b *Board) Scores() (int, int) {
	return b.side1Score, b.side2Score
}

func (b *Board) State() State {
	if b.state == StateUnknown {
		b.IsTerminal()
	}
	return b.state
}

// Apply commits a move for s at (row, col) in s's frame: Place then Capture.
// Committing a move that captures nothing is a caller bug and panics.
func (b *Board) Apply(row, col int, s Side) Move {
	n := b.CountCapture(row, col, s)
	if n == 0 {
		panic(fmt.Sprintf("board: illegal move (%d,%d) for %s", row, col, s))
	}
	b.Place(row, col, s)
	b.Capture(row, col, s)
	pos, _ := position.NewPos(row, col)
	return Move{Pos: pos, Side: s, Captures: n}
}

// LegalMoves lists s's capturing moves in row-major order of s's frame.
func (b *Board) LegalMoves(s Side) []Move {
	var mvs []Move
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		if n := b.CountCapture(pos.Row(), pos.Col(), s); n > 0 {
			mvs = append(mvs, Move{Pos: pos, Side: s, Captures: n})
		}
	}
	return mvs
}

func (b *Board) HasLegalMove(s Side) bool {
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if b.countCapture(r, c, s) > 0 {
				return true
			}
		}
	}
	return false
}

// View returns a copy of the grid as seen from s's frame.
func (b *Board) View(s Side) [Height][Width]Space {
	var v [Height][Width]Space
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			cr, cc := s.Orient(r, c)
			v[r][c] = b.cells[cr][cc]
		}
	}
	return v
}

// Count returns the number of cells holding sp.
func (b *Board) Count(sp Space) int {
	var n int
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if b.cells[r][c] == sp {
				n++
			}
		}
	}
	return n
}

func (b *Board) Layout() string {
	return MarshalLayout(b)
}

func (b *Board) Dump(s Side) string {
	v := b.View(s)
	builder := strings.Builder{}
	for r := 0; r < Height; r++ {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %s |", position.NotationComponentRow(r)))
		for c := 0; c < Width; c++ {
			sym := v[r][c].SymbolLayout()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for c := 0; c < Width; c++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NotationComponentCol(c)))
	}
	return builder.String()
}

// Draw renders the board in s's frame with terminal colours, marking s's legal cells.
func (b *Board) Draw(s Side) string {
	v := b.View(s)
	label := color.New(color.Bold)
	builder := strings.Builder{}
	for r := 0; r < Height; r++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", position.NotationComponentRow(r)))
		for c := 0; c < Width; c++ {
			bg := color.BgGreen
			if r%2^c%2 == 1 {
				bg = color.BgHiGreen
			}
			var cell string
			switch v[r][c] {
			case SpaceSide1:
				cell = color.New(color.FgBlack, bg).Sprint(" ● ")
			case SpaceSide2:
				cell = color.New(color.FgHiWhite, bg).Sprint(" ● ")
			default:
				sym := " "
				if b.CountCapture(r, c, s) > 0 {
					sym = "·"
				}
				cell = color.New(color.FgBlack, bg).Sprintf(" %s ", sym)
			}
			_, _ = builder.WriteString(cell)
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for c := 0; c < Width; c++ {
		_, _ = builder.WriteString(label.Sprintf(" %s ", position.NotationComponentCol(c)))
	}
	return builder.String()
}

func (b *Board) DebugString() string {
	side1, side2 := b.Scores()
	return fmt.Sprintf("stat: %s\nsnap: %d : %d\nside1: %2d\nside2: %2d",
		b.State(), side1, side2, b.Count(SpaceSide1), b.Count(SpaceSide2))
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}
