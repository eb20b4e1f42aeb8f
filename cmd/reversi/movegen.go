package main

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
)

func movegen(layout string, turn board.Side) error {
	log.Info().Msg("============ movegen")
	b, err := board.NewBoard(board.WithLayout(layout))
	if err != nil {
		return err
	}
	fmt.Println("to move:", turn)
	fmt.Println(b.Dump(turn))
	fmt.Println(b.Draw(turn))
	fmt.Println(b.Layout())
	fmt.Println(b.DebugString())
	fmt.Println(formatEvaluation(engine.Evaluate(b, turn)))
	dumpMoves(b, turn)
	return nil
}

func dumpMoves(b *board.Board, turn board.Side) {
	mvs := b.LegalMoves(turn)
	if len(mvs) == 0 {
		fmt.Println("no legal move, pass")
		return
	}
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] (canonical=%s) (cap=%d)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.Pos, mv.Canonical(), mv.Captures)
	}
}

func formatEvaluation(ev engine.Evaluation) string {
	return fmt.Sprintf("eval=%+d material=%+d position=%+d mobility=%+d",
		ev.Total(), ev.Material, ev.Position, ev.Mobility)
}
