package engine

import (
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/position"
)

var (
	// Classic corner/edge weighting, in the owner's frame.
	// TODO: tune against self-play results
	scoreSpacePosition = [position.TotalCells]int32{
		100, -20, 10, 5, 5, 10, -20, 100,
		-20, -50, -2, -2, -2, -2, -50, -20,
		10, -2, -1, -1, -1, -1, -2, 10,
		5, -2, -1, -1, -1, -1, -2, 5,
		5, -2, -1, -1, -1, -1, -2, 5,
		10, -2, -1, -1, -1, -1, -2, 10,
		-20, -50, -2, -2, -2, -2, -50, -20,
		100, -20, 10, 5, 5, 10, -20, 100,
	}
)

// Evaluation is a static reading of a board from one side's point of view.
type Evaluation struct {
	Material int32
	Position int32
	Mobility int32
}

func (e Evaluation) Total() int32 {
	return e.Material + e.Position + e.Mobility
}

// Evaluate scores b relative to s: positive favours s.
func Evaluate(b *board.Board, s board.Side) Evaluation {
	var ev Evaluation
	view := b.View(s)
	own, opponent := s.Space(), s.Opposite().Space()
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		switch view[pos.Row()][pos.Col()] {
		case own:
			ev.Material++
			ev.Position += scoreSpacePosition[pos]
		case opponent:
			ev.Material--
			ev.Position -= scoreSpacePosition[pos]
		}
	}
	ev.Mobility = int32(len(b.LegalMoves(s))) - int32(len(b.LegalMoves(s.Opposite())))
	return ev
}
