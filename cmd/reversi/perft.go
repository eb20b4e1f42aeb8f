package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/bench"
	"github.com/daystram/reversi/board"
)

func perft(depth int, layout string, turn board.Side, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Info().Msgf("============ perft(%d): %s", depth, name)

	return drain(func(out chan string) error {
		return bench.Perft(depth, layout, turn, parallel, true, out)
	})
}

func selfplay(ctx context.Context, logger zerolog.Logger, games, plies int, seed uint64) error {
	log.Info().Msgf("============ selfplay(%d): seed=%d plies=%d", games, seed, plies)

	return drain(func(out chan string) error {
		_, err := bench.SelfPlay(ctx, games, plies, seed, logger, out)
		return err
	})
}

// drain prints every line run reports until run returns.
func drain(run func(out chan string) error) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			fmt.Println(s)
		}
	}()

	err := run(out)
	close(out)
	<-done
	return err
}
