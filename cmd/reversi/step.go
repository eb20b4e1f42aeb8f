package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/bench"
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/game"
)

// step plays one round ply by ply, random moves for Side2 and greedy moves for
// Side1, printing every position and the average cost of each phase.
func step(ctx context.Context, layout string, turn board.Side, seed uint64) error {
	log.Info().Msg("============ step")
	var (
		timesLegalMoves []time.Duration
		timesPlay       []time.Duration
	)
	g, err := game.New(game.WithLayout(layout, turn))
	if err != nil {
		return err
	}
	r := bench.NewPseudoRand()
	r.Seed(seed | 1)

	for !g.IsOver() {
		s := g.Turn()

		t1 := time.Now()
		mvs := g.LegalMoves(s)
		timesLegalMoves = append(timesLegalMoves, time.Since(t1))

		t1 = time.Now()
		var mv board.Move
		if s == board.Side1 {
			mv, err = g.PlayGreedy(ctx, s)
		} else {
			mv, err = g.Play(s, mvs[r.Intn(len(mvs))].Pos)
		}
		if err != nil {
			return err
		}
		timesPlay = append(timesPlay, time.Since(t1))

		b := g.Board()
		fmt.Printf("\n===== [#%d] %s: %s\n", g.Plies(), s, mv)
		fmt.Println(b.Draw(board.Side1))
		fmt.Println(b.Layout())
		fmt.Println(b.DebugString())
		if p := g.LastPass(); p != board.SideUnknown {
			fmt.Println("pass:", p)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Println(g.Result())
	fmt.Println("moves:", avg(timesLegalMoves))
	fmt.Println("play: ", avg(timesPlay))
	return nil
}
