package game

import (
	"fmt"

	"github.com/daystram/reversi/board"
)

// Result is the standing of a round. Scores are only final when Over is set.
type Result struct {
	Over   bool
	Side1  int
	Side2  int
	Winner board.Side
}

// Summary formats the final line as "<winner> wins: <side2> : <side1>", or
// "Draw: <side2> : <side1>" on a tie.
func (r Result) Summary() string {
	if r.Winner == board.SideUnknown {
		return fmt.Sprintf("Draw: %d : %d", r.Side2, r.Side1)
	}
	return fmt.Sprintf("%s wins: %d : %d", r.Winner, r.Side2, r.Side1)
}

func (r Result) String() string {
	if !r.Over {
		return fmt.Sprintf("In progress: %d : %d", r.Side2, r.Side1)
	}
	return r.Summary()
}

// Result returns the terminal tally once the round is over, and the live piece
// count before that.
func (g *Game) Result() Result {
	if !g.IsOver() {
		return Result{
			Side1: g.board.Count(board.SpaceSide1),
			Side2: g.board.Count(board.SpaceSide2),
		}
	}

	res := Result{Over: true}
	res.Side1, res.Side2 = g.board.Scores()
	switch {
	case res.Side1 > res.Side2:
		res.Winner = board.Side1
	case res.Side2 > res.Side1:
		res.Winner = board.Side2
	}
	return res
}
