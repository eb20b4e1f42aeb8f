package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/reversi/board"
)

// Perft walks every line of play depth plies deep from layout with side to move and
// reports the leaf count to out. A forced pass counts as a ply. A finished game
// before depth counts as one leaf.
func Perft(depth int, layout string, side board.Side, parallel, verbose bool, out chan string) error {
	var nodes, cap, pas, end uint64
	b, err := board.NewBoard(
		board.WithLayout(layout),
	)
	if err != nil {
		return err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	run(b, side, depth, true, verbose, out, &nodes, &cap, &pas, &end)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d pas=%d end=%d (%.3fs elapsed)",
			depth, nodes, int(float64(nodes)/(elapsed+1).Seconds()), cap, pas, end, elapsed.Seconds())

	return nil
}

type perftFunc func(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap, pas, end *uint64) uint64

func runPerft(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap, pas, end *uint64) uint64 {
	if d == 0 {
		*nodes++
		return 1
	}

	mvs := b.LegalMoves(s)
	if len(mvs) == 0 {
		if !b.HasLegalMove(s.Opposite()) {
			*nodes++
			*end++
			return 1
		}
		if d == 1 {
			*pas++
		}
		child := runPerft(b, s.Opposite(), d-1, false, verbose, out, nodes, cap, pas, end)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", board.Move{}, child)
		}
		return child
	}

	var sum uint64
	for _, mv := range mvs {
		var child uint64
		if d == 1 {
			child = 1
			*nodes++
			*cap += uint64(mv.Captures)
		} else {
			bb := b.Clone()
			bb.Apply(mv.Pos.Row(), mv.Pos.Col(), s)
			child = runPerft(bb, s.Opposite(), d-1, false, verbose, out, nodes, cap, pas, end)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", mv.Pos.Notation(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, s board.Side, d int, root, verbose bool, out chan string, nodes, cap, pas, end *uint64) uint64 {
	if d == 0 {
		atomic.AddUint64(nodes, 1)
		return 1
	}

	mvs := b.LegalMoves(s)
	if len(mvs) == 0 {
		if !b.HasLegalMove(s.Opposite()) {
			atomic.AddUint64(nodes, 1)
			atomic.AddUint64(end, 1)
			return 1
		}
		if d == 1 {
			atomic.AddUint64(pas, 1)
		}
		child := runPerftParallel(b, s.Opposite(), d-1, false, verbose, out, nodes, cap, pas, end)
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", board.Move{}, child)
		}
		return child
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range mvs {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				child = 1
				atomic.AddUint64(nodes, 1)
				atomic.AddUint64(cap, uint64(mv.Captures))
			} else {
				// every goroutine walks its own copy
				bb := b.Clone()
				bb.Apply(mv.Pos.Row(), mv.Pos.Col(), s)
				child = runPerftParallel(bb, s.Opposite(), d-1, false, verbose, out, nodes, cap, pas, end)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", mv.Pos.Notation(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
