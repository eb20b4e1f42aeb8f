package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
	"github.com/daystram/reversi/position"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNotYourTurn = errors.New("not your turn")
	ErrRoundOver   = errors.New("round over")
)

// Game owns one board and serializes the turns played on it. Side1 opens every
// round started by NewRound. Game is not safe for concurrent use.
type Game struct {
	board  *board.Board
	engine *engine.Engine
	log    zerolog.Logger

	id       uuid.UUID
	turn     board.Side
	lastMove board.Move
	lastPass board.Side
	plies    int
}

type gameConfig struct {
	logger zerolog.Logger
	engine *engine.Engine
	layout string
	turn   board.Side
}

type Option func(*gameConfig)

func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *gameConfig) {
		cfg.logger = logger
	}
}

func WithEngine(e *engine.Engine) Option {
	return func(cfg *gameConfig) {
		cfg.engine = e
	}
}

// WithLayout starts the first round from layout with turn to move instead of the
// opening position.
func WithLayout(layout string, turn board.Side) Option {
	return func(cfg *gameConfig) {
		cfg.layout = layout
		cfg.turn = turn
	}
}

func New(opts ...Option) (*Game, error) {
	cfg := &gameConfig{
		logger: zerolog.Nop(),
		layout: board.DefaultLayout,
		turn:   board.Side1,
	}
	for _, f := range opts {
		f(cfg)
	}

	g := &Game{
		engine: cfg.engine,
		log:    cfg.logger,
	}
	if g.engine == nil {
		g.engine = engine.NewEngine(&engine.EngineConfig{
			Logger: func(a ...any) {
				g.log.Debug().Str("round", g.id.String()).Msg(fmt.Sprint(a...))
			},
		})
	}
	if err := g.Load(cfg.layout, cfg.turn); err != nil {
		return nil, err
	}
	return g, nil
}

// Load replaces the board with layout and hands the move to turn, starting a new
// round. The previous board is kept when layout does not parse.
func (g *Game) Load(layout string, turn board.Side) error {
	if turn != board.Side1 && turn != board.Side2 {
		return fmt.Errorf("invalid side to move: %d", turn)
	}
	b, err := board.NewBoard(board.WithLayout(layout))
	if err != nil {
		return err
	}
	g.board = b
	g.start(turn)
	return nil
}

// NewRound puts the opening position back and starts a new round with Side1 to move.
// The previous round's final scores stay readable through the board snapshot.
func (g *Game) NewRound() {
	g.board.Reset()
	g.start(board.Side1)
}

func (g *Game) start(turn board.Side) {
	g.id = uuid.New()
	g.turn = turn
	g.lastMove = board.Move{}
	g.lastPass = board.SideUnknown
	g.plies = 0
	g.log.Info().
		Str("round", g.id.String()).
		Str("layout", g.board.Layout()).
		Stringer("turn", turn).
		Msg("round started")
	g.settle(turn)
}

// settle ends the round when neither side can move, otherwise hands the turn to
// next, or back to its opponent when next has to pass.
func (g *Game) settle(next board.Side) {
	if g.board.IsTerminal() {
		g.turn = board.SideUnknown
		res := g.Result()
		g.log.Info().
			Str("round", g.id.String()).
			Int("side1", res.Side1).
			Int("side2", res.Side2).
			Stringer("winner", res.Winner).
			Int("plies", g.plies).
			Msg("round over")
		return
	}

	if g.board.HasLegalMove(next) {
		g.turn = next
		return
	}
	g.lastPass = next
	g.turn = next.Opposite()
	g.log.Info().
		Str("round", g.id.String()).
		Stringer("side", next).
		Msg("pass")
}

// Play commits s's move at pos, given in s's own frame.
func (g *Game) Play(s board.Side, pos position.Pos) (board.Move, error) {
	if g.turn == board.SideUnknown {
		return board.Move{}, ErrRoundOver
	}
	if s != g.turn {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	if !pos.Valid() || g.board.CountCapture(pos.Row(), pos.Col(), s) == 0 {
		return board.Move{}, fmt.Errorf("%w: %s at %s", ErrIllegalMove, s, pos)
	}
	return g.commit(s, pos), nil
}

// PlayGreedy commits the engine's choice for s.
func (g *Game) PlayGreedy(ctx context.Context, s board.Side) (board.Move, error) {
	if g.turn == board.SideUnknown {
		return board.Move{}, ErrRoundOver
	}
	if s != g.turn {
		return board.Move{}, fmt.Errorf("%w: %s to move", ErrNotYourTurn, g.turn)
	}
	mv, err := g.engine.Search(ctx, g.board, s)
	if err != nil {
		return board.Move{}, err
	}
	return g.commit(s, mv.Pos), nil
}

func (g *Game) commit(s board.Side, pos position.Pos) board.Move {
	mv := g.board.Apply(pos.Row(), pos.Col(), s)
	g.plies++
	g.lastMove = mv
	g.lastPass = board.SideUnknown
	g.log.Debug().
		Str("round", g.id.String()).
		Stringer("side", s).
		Str("pos", pos.Notation()).
		Int("captures", mv.Captures).
		Msg("move")
	g.settle(s.Opposite())
	return mv
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

// Turn returns the side to move, SideUnknown once the round is over.
func (g *Game) Turn() board.Side {
	return g.turn
}

func (g *Game) IsOver() bool {
	return g.turn == board.SideUnknown
}

func (g *Game) LastMove() board.Move {
	return g.lastMove
}

// LastPass returns the side whose turn was skipped after the last commit, if any.
func (g *Game) LastPass() board.Side {
	return g.lastPass
}

func (g *Game) Plies() int {
	return g.plies
}

func (g *Game) View(s board.Side) [board.Height][board.Width]board.Space {
	return g.board.View(s)
}

func (g *Game) LegalMoves(s board.Side) []board.Move {
	return g.board.LegalMoves(s)
}

func (g *Game) CountCapture(s board.Side, pos position.Pos) int {
	return g.board.CountCapture(pos.Row(), pos.Col(), s)
}

// Board returns a copy of the current board.
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}
