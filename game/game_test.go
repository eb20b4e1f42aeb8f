package game

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/position"
)

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	pos, err := position.NewPosFromNotation(n)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return pos
}

func TestNew(t *testing.T) {
	t.Parallel()
	g, err := New()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := g.Turn(); got != board.Side1 {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.Side1)
	}
	if g.ID() == uuid.Nil {
		t.Error("unexpected nil round id")
	}
	if res := g.Result(); res.Over || res.Side1 != 2 || res.Side2 != 2 {
		t.Errorf("unexpected result: got=%+v", res)
	}
	if got := g.LastMove(); !got.IsNull() {
		t.Errorf("unexpected last move: got=%s", got)
	}
}

func TestPlay(t *testing.T) {
	t.Parallel()
	g, err := New()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if _, err := g.Play(board.Side2, mustPos(t, "e3")); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNotYourTurn)
	}
	if _, err := g.Play(board.Side1, mustPos(t, "a1")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalMove)
	}
	if _, err := g.Play(board.Side1, mustPos(t, "d4")); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error on occupied cell: got=%v want=%v", err, ErrIllegalMove)
	}
	if _, err := g.Play(board.Side1, position.Pos(-1)); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("unexpected error on invalid pos: got=%v want=%v", err, ErrIllegalMove)
	}
	if g.Plies() != 0 {
		t.Fatalf("unexpected plies after rejected moves: got=%d want=0", g.Plies())
	}

	mv, err := g.Play(board.Side1, mustPos(t, "d3"))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if mv.Captures != 1 {
		t.Errorf("unexpected captures: got=%d want=%d", mv.Captures, 1)
	}
	if got := g.Turn(); got != board.Side2 {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.Side2)
	}
	if got := g.LastMove(); got != mv {
		t.Errorf("unexpected last move: got=%s want=%s", got, mv)
	}
	if res := g.Result(); res.Side1 != 4 || res.Side2 != 1 {
		t.Errorf("unexpected result: got=%+v", res)
	}

	replies := g.LegalMoves(board.Side2)
	if len(replies) != 3 {
		t.Fatalf("unexpected reply count: got=%d want=%d", len(replies), 3)
	}
	if got := g.CountCapture(board.Side2, replies[0].Pos); got != replies[0].Captures {
		t.Errorf("unexpected count: got=%d want=%d", got, replies[0].Captures)
	}
	if _, err := g.Play(board.Side2, replies[0].Pos); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := g.Turn(); got != board.Side1 {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.Side1)
	}
	if got := g.Plies(); got != 2 {
		t.Errorf("unexpected plies: got=%d want=%d", got, 2)
	}
}

func TestPass(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	g, err := New(
		WithLogger(zerolog.New(&buf)),
		WithLayout("xo6/8/8/8/8/8/8/xo6", board.Side1),
	)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if _, err := g.Play(board.Side1, mustPos(t, "c1")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := g.LastPass(); got != board.Side2 {
		t.Errorf("unexpected pass: got=%s want=%s", got, board.Side2)
	}
	if got := g.Turn(); got != board.Side1 {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.Side1)
	}

	if _, err := g.Play(board.Side1, mustPos(t, "c8")); err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := g.LastPass(); got != board.SideUnknown {
		t.Errorf("unexpected pass: got=%s want=none", got)
	}
	if !g.IsOver() {
		t.Fatal("expected round over")
	}
	res := g.Result()
	if !res.Over || res.Side1 != 6 || res.Side2 != 0 || res.Winner != board.Side1 {
		t.Errorf("unexpected result: got=%+v", res)
	}
	if got, want := res.Summary(), "Player 1 wins: 0 : 6"; got != want {
		t.Errorf("unexpected summary: got=%q want=%q", got, want)
	}
	if _, err := g.Play(board.Side1, mustPos(t, "d1")); !errors.Is(err, ErrRoundOver) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrRoundOver)
	}

	logs := buf.String()
	for _, want := range []string{`"round started"`, `"pass"`, `"round over"`, g.ID().String()} {
		if !strings.Contains(logs, want) {
			t.Errorf("unexpected logs: missing %s in %s", want, logs)
		}
	}
}

func TestPassOnLoad(t *testing.T) {
	t.Parallel()
	g, err := New(WithLayout("xo6/8/8/8/8/8/8/8", board.Side2))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if got := g.LastPass(); got != board.Side2 {
		t.Errorf("unexpected pass: got=%s want=%s", got, board.Side2)
	}
	if got := g.Turn(); got != board.Side1 {
		t.Errorf("unexpected turn: got=%s want=%s", got, board.Side1)
	}
}

func TestResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		layout      string
		wantWinner  board.Side
		wantSummary string
	}{
		{
			name:        "side1 wins",
			layout:      "x7/8/8/8/8/8/8/8",
			wantWinner:  board.Side1,
			wantSummary: "Player 1 wins: 0 : 1",
		},
		{
			name:        "side2 wins",
			layout:      "oooooooo/xxxxxxxx/oooooooo/xxxxxxxx/oooooooo/xxxxxxxx/oooooooo/oooooooo",
			wantWinner:  board.Side2,
			wantSummary: "Player 2 wins: 40 : 24",
		},
		{
			name:        "draw",
			layout:      "xxxxxxxx/oooooooo/xxxxxxxx/oooooooo/xxxxxxxx/oooooooo/xxxxxxxx/oooooooo",
			wantWinner:  board.SideUnknown,
			wantSummary: "Draw: 32 : 32",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := New(WithLayout(tt.layout, board.Side1))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if !g.IsOver() {
				t.Fatal("expected round over")
			}
			res := g.Result()
			if res.Winner != tt.wantWinner {
				t.Errorf("unexpected winner: got=%s want=%s", res.Winner, tt.wantWinner)
			}
			if got := res.Summary(); got != tt.wantSummary {
				t.Errorf("unexpected summary: got=%q want=%q", got, tt.wantSummary)
			}
			if got := res.String(); got != tt.wantSummary {
				t.Errorf("unexpected string: got=%q want=%q", got, tt.wantSummary)
			}
			if _, err := g.PlayGreedy(context.Background(), board.Side1); !errors.Is(err, ErrRoundOver) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrRoundOver)
			}
		})
	}
}

func TestPlayGreedyFullRound(t *testing.T) {
	t.Parallel()
	g, err := New()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	ctx := context.Background()

	for i := 0; !g.IsOver(); i++ {
		if i > int(position.TotalCells) {
			t.Fatal("round did not end")
		}
		s := g.Turn()
		want := g.LegalMoves(s)
		mv, err := g.PlayGreedy(ctx, s)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		for _, cand := range want {
			if cand.Captures > mv.Captures {
				t.Fatalf("unexpected greedy move %s: %s captures more", mv, cand)
			}
		}
	}

	res := g.Result()
	b := g.Board()
	if res.Side1 != b.Count(board.SpaceSide1) || res.Side2 != b.Count(board.SpaceSide2) {
		t.Errorf("unexpected result: got=%+v", res)
	}
	if b.HasLegalMove(board.Side1) || b.HasLegalMove(board.Side2) {
		t.Error("unexpected legal move after round over")
	}
}

func TestNewRound(t *testing.T) {
	t.Parallel()
	g, err := New(WithLayout("x7/8/8/8/8/8/8/8", board.Side1))
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	id := g.ID()
	g.NewRound()

	if g.ID() == id {
		t.Error("unexpected reused round id")
	}
	if g.IsOver() || g.Turn() != board.Side1 {
		t.Errorf("unexpected turn: got=%s want=%s", g.Turn(), board.Side1)
	}
	if got := g.Board().Layout(); got != board.DefaultLayout {
		t.Errorf("unexpected layout: got=%s want=%s", got, board.DefaultLayout)
	}
	if side1, side2 := g.Board().Scores(); side1 != 1 || side2 != 0 {
		t.Errorf("unexpected previous scores: got=%d:%d want=1:0", side1, side2)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	g, err := New()
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if err := g.Load("8/8/8", board.Side1); !errors.Is(err, board.ErrInvalidLayout) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidLayout)
	}
	if err := g.Load(board.DefaultLayout, board.SideUnknown); err == nil {
		t.Error("expected error on unknown side")
	}
	if got := g.Board().Layout(); got != board.DefaultLayout {
		t.Errorf("unexpected layout: got=%s want=%s", got, board.DefaultLayout)
	}
	if _, err := New(WithLayout("9/8/8/8/8/8/8/8", board.Side1)); !errors.Is(err, board.ErrInvalidLayout) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidLayout)
	}
}
