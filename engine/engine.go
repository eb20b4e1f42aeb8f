package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/position"
)

var (
	ErrNoLegalMove = errors.New("no legal move")
)

func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

type EngineConfig struct {
	Logger func(...any)
	Debug  bool
}

// Engine picks one-ply greedy moves. It holds no board state, an Engine may be
// reused across rounds but not across goroutines.
type Engine struct {
	debug  bool
	logger func(...any)

	nodes       uint32
	elapsedTime time.Duration
}

func NewEngine(cfg *EngineConfig) *Engine {
	if cfg == nil {
		cfg = &EngineConfig{}
	}
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}

	return &Engine{
		debug:  cfg.Debug,
		logger: cfg.Logger,
	}
}

// Search returns s's move capturing the most pieces. Ties go to the first cell in
// row-major order of s's frame. ErrNoLegalMove is returned when s must pass.
func (e *Engine) Search(ctx context.Context, b *board.Board, s board.Side) (board.Move, error) {
	if err := ctx.Err(); err != nil {
		return board.Move{}, err
	}

	e.nodes = 0
	startTime := time.Now()
	mv := e.search(b, s)
	e.elapsedTime = time.Since(startTime)

	if mv.IsNull() {
		return board.Move{}, fmt.Errorf("%w for %s", ErrNoLegalMove, s)
	}

	if e.debug {
		e.logger(message.NewPrinter(language.English).
			Sprintf("side:%s best:[%s] nodes:%d t:%s\n%s",
				s, mv, e.nodes, e.elapsedTime, formatEvaluationDebug(Evaluate(b, s))))
	} else {
		e.logger(fmt.Sprintf("info side %s nodes %d time %d best %s",
			s, e.nodes, e.elapsedTime.Microseconds(), mv))
	}
	return mv, nil
}

func (e *Engine) search(b *board.Board, s board.Side) board.Move {
	var bestMove board.Move
	for pos := position.Pos(0); pos < position.TotalCells; pos++ {
		e.nodes++
		// strictly greater keeps the earliest cell on ties
		if n := b.CountCapture(pos.Row(), pos.Col(), s); n > bestMove.Captures {
			bestMove = board.Move{Pos: pos, Side: s, Captures: n}
		}
	}
	return bestMove
}

func (e *Engine) Nodes() uint32 {
	return e.nodes
}

func formatEvaluationDebug(ev Evaluation) string {
	return fmt.Sprintf("    eval %+d (material %+d position %+d mobility %+d)",
		ev.Total(), ev.Material, ev.Position, ev.Mobility)
}
