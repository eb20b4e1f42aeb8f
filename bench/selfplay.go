package bench

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
	"github.com/daystram/reversi/game"
)

// SelfPlayStats aggregates greedy-vs-greedy rounds.
type SelfPlayStats struct {
	Games     int
	Side1Wins int
	Side2Wins int
	Draws     int

	TotalPlies   int
	ShortestGame int
	LongestGame  int
	TotalDiscs   int
	WidestMargin int
	Passes       int
}

func (s SelfPlayStats) String() string {
	p := message.NewPrinter(language.English)
	if s.Games == 0 {
		return p.Sprintf("games=%d", s.Games)
	}
	return p.Sprintf("games=%d p1=%d p2=%d draw=%d plies=%d (%d..%d, avg %.1f) discs=%.1f margin<=%d passes=%d",
		s.Games, s.Side1Wins, s.Side2Wins, s.Draws,
		s.TotalPlies, s.ShortestGame, s.LongestGame, float64(s.TotalPlies)/float64(s.Games),
		float64(s.TotalDiscs)/float64(s.Games), s.WidestMargin, s.Passes)
}

// SelfPlay plays games rounds where both sides move greedily after randomPlies
// random opening plies drawn from seed. The same seed replays the same games.
func SelfPlay(ctx context.Context, games, randomPlies int, seed uint64, logger zerolog.Logger, out chan string) (SelfPlayStats, error) {
	stats := SelfPlayStats{ShortestGame: math.MaxInt}
	if games <= 0 {
		stats.ShortestGame = 0
		return stats, nil
	}

	r := NewPseudoRand()
	// xorshift never leaves zero
	r.Seed(seed | 1)

	g, err := game.New(
		game.WithLogger(logger),
		game.WithEngine(engine.NewEngine(&engine.EngineConfig{
			Logger: func(...any) {},
		})),
	)
	if err != nil {
		return stats, err
	}

	start := time.Now()
	for i := 0; i < games; i++ {
		if i > 0 {
			g.NewRound()
		}
		passes := 0
		for !g.IsOver() {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
			s := g.Turn()
			if g.Plies() < randomPlies {
				mvs := g.LegalMoves(s)
				mv := mvs[r.Intn(len(mvs))]
				if _, err := g.Play(s, mv.Pos); err != nil {
					return stats, err
				}
			} else if _, err := g.PlayGreedy(ctx, s); err != nil {
				return stats, err
			}
			if g.LastPass() != board.SideUnknown {
				passes++
			}
		}

		res := g.Result()
		stats.Games++
		switch res.Winner {
		case board.Side1:
			stats.Side1Wins++
		case board.Side2:
			stats.Side2Wins++
		default:
			stats.Draws++
		}
		stats.TotalPlies += g.Plies()
		stats.ShortestGame = min(stats.ShortestGame, g.Plies())
		stats.LongestGame = max(stats.LongestGame, g.Plies())
		stats.TotalDiscs += res.Side1 + res.Side2
		stats.WidestMargin = max(stats.WidestMargin, abs(res.Side1-res.Side2))
		stats.Passes += passes

		if out != nil {
			out <- fmt.Sprintf("game %d: %s (%d plies)", i+1, res.Summary(), g.Plies())
		}
	}

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("%s (%.3fs elapsed)", stats, time.Since(start).Seconds())
	}
	return stats, nil
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func min[T constraints.Ordered](x1, x2 T) T {
	if x1 < x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
