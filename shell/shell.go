package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/reversi/bench"
	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/engine"
	"github.com/daystram/reversi/game"
	"github.com/daystram/reversi/position"
)

var (
	EngineName = "Reversi"

	defaultOptions = options{
		color:         false,
		parallelPerft: true,
	}
)

type options struct {
	color         bool
	parallelPerft bool
}

// Interface is a line protocol over one game. Each command writes one or more
// lines: "ok <move>", "error <msg>", "pass <side>" and "gameover <summary>".
type Interface struct {
	game    *game.Game
	out     io.Writer
	options options
}

func NewInterface(g *game.Game, out io.Writer) *Interface {
	return &Interface{
		game:    g,
		out:     out,
		options: defaultOptions,
	}
}

// Run reads commands from in until quit or end of input.
func (i *Interface) Run(ctx context.Context, in io.Reader) error {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if quit := i.Execute(ctx, line); quit {
			return nil
		}
		if err != nil {
			return nil
		}
	}
}

// Execute runs a single command line and reports whether it asked to quit.
func (i *Interface) Execute(ctx context.Context, line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "hello":
		i.println(fmt.Sprintf("id name %s", EngineName))
		i.println("ready")
	case "newgame":
		i.game.NewRound()
		i.println("ok")
	case "setoption":
		i.commandSetOption(ctx, args[1:])
	case "layout":
		i.commandLayout(ctx, args[1:])
	case "d":
		i.commandDraw(ctx, args[1:])
	case "moves":
		i.commandMoves(ctx, args[1:])
	case "count":
		i.commandCount(ctx, args[1:])
	case "play":
		i.commandPlay(ctx, args[1:])
	case "ai":
		i.commandAI(ctx, args[1:])
	case "score":
		i.commandScore(ctx)
	case "perft":
		i.commandPerft(ctx, args[1:])
	case "quit":
		return true
	default:
		i.printError(fmt.Errorf("unknown command %q", args[0]))
	}
	return false
}

func (i *Interface) commandSetOption(_ context.Context, args []string) {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		i.printError(errors.New("usage: setoption name <name> value <value>"))
		return
	}
	value, err := strconv.ParseBool(args[3])
	if err != nil {
		i.printError(err)
		return
	}
	switch name := strings.ToLower(args[1]); name {
	case "color":
		i.options.color = value
	case "parallelperft":
		i.options.parallelPerft = value
	default:
		i.printError(fmt.Errorf("unknown option %q", name))
		return
	}
	i.println("ok")
}

func (i *Interface) commandLayout(_ context.Context, args []string) {
	if len(args) == 0 {
		i.printError(errors.New("usage: layout <layout> [side] | startpos"))
		return
	}

	layout := args[0]
	if layout == "startpos" {
		layout = board.DefaultLayout
	}
	turn := board.Side1
	if len(args) > 1 {
		s, err := parseSide(args[1])
		if err != nil {
			i.printError(err)
			return
		}
		turn = s
	}
	if err := i.game.Load(layout, turn); err != nil {
		i.printError(err)
		return
	}
	i.println("ok")
	i.printAfterMove()
}

func (i *Interface) commandDraw(_ context.Context, args []string) {
	s := board.Side1
	if len(args) > 0 {
		var err error
		if s, err = parseSide(args[0]); err != nil {
			i.printError(err)
			return
		}
	}
	b := i.game.Board()
	if i.options.color {
		i.println(b.Draw(s))
	} else {
		i.println(b.Dump(s))
	}
	i.println(fmt.Sprintf("layout: %s", b.Layout()))
	i.println(fmt.Sprintf("turn: %s", i.game.Turn()))
}

func (i *Interface) commandMoves(_ context.Context, args []string) {
	if len(args) != 1 {
		i.printError(errors.New("usage: moves <side>"))
		return
	}
	s, err := parseSide(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	mvs := i.game.LegalMoves(s)
	notations := make([]string, 0, len(mvs))
	for _, mv := range mvs {
		notations = append(notations, mv.Pos.Notation())
	}
	i.println(strings.TrimSpace("moves " + strings.Join(notations, " ")))
}

func (i *Interface) commandCount(_ context.Context, args []string) {
	s, pos, err := parseSidePos(args)
	if err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("count %d", i.game.CountCapture(s, pos)))
}

func (i *Interface) commandPlay(_ context.Context, args []string) {
	s, pos, err := parseSidePos(args)
	if err != nil {
		i.printError(err)
		return
	}
	mv, err := i.game.Play(s, pos)
	if err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("ok %s", mv))
	i.printAfterMove()
}

func (i *Interface) commandAI(ctx context.Context, args []string) {
	if len(args) != 1 {
		i.printError(errors.New("usage: ai <side>"))
		return
	}
	s, err := parseSide(args[0])
	if err != nil {
		i.printError(err)
		return
	}
	mv, err := i.game.PlayGreedy(ctx, s)
	if err != nil {
		i.printError(err)
		return
	}
	i.println(fmt.Sprintf("ok %s", mv))
	i.printAfterMove()
}

func (i *Interface) commandScore(_ context.Context) {
	res := i.game.Result()
	b := i.game.Board()
	i.println(fmt.Sprintf("score %d %d eval %+d", res.Side1, res.Side2, engine.Evaluate(b, board.Side1).Total()))
}

func (i *Interface) commandPerft(_ context.Context, args []string) {
	if len(args) != 1 {
		i.printError(errors.New("usage: perft <depth>"))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		i.printError(fmt.Errorf("invalid depth %q", args[0]))
		return
	}
	turn := i.game.Turn()
	if turn == board.SideUnknown {
		turn = board.Side1
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()

	err = bench.Perft(depth, i.game.Board().Layout(), turn, i.options.parallelPerft, true, out)
	close(out)
	<-done
	if err != nil {
		i.printError(err)
	}
}

func (i *Interface) printAfterMove() {
	if s := i.game.LastPass(); s != board.SideUnknown {
		i.println(fmt.Sprintf("pass %s", sideToken(s)))
	}
	if i.game.IsOver() {
		i.println(fmt.Sprintf("gameover %s", i.game.Result().Summary()))
	}
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func (i *Interface) printError(err error) {
	i.println(fmt.Sprintf("error %s", err))
}

func parseSide(str string) (board.Side, error) {
	s, ok := board.NewSideFromString(str)
	if !ok {
		return board.SideUnknown, fmt.Errorf("invalid side %q", str)
	}
	return s, nil
}

func parseSidePos(args []string) (board.Side, position.Pos, error) {
	if len(args) != 2 {
		return board.SideUnknown, 0, errors.New("usage: <side> <pos>")
	}
	s, err := parseSide(args[0])
	if err != nil {
		return board.SideUnknown, 0, err
	}
	pos, err := position.NewPosFromNotation(args[1])
	if err != nil {
		return board.SideUnknown, 0, fmt.Errorf("%w %q", err, args[1])
	}
	return s, pos, nil
}

func sideToken(s board.Side) string {
	switch s {
	case board.Side1:
		return "1"
	case board.Side2:
		return "2"
	default:
		return "-"
	}
}
