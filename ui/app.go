package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/config"
	"github.com/daystram/reversi/engine"
	"github.com/daystram/reversi/game"
)

// App is the terminal front-end: both sides' boards next to a status panel.
type App struct {
	app    *tview.Application
	root   *tview.Flex
	boards [2]*BoardUI
	status *tview.TextView

	ctx  context.Context
	game *game.Game
	cfg  *config.Config
	log  zerolog.Logger

	lastErr error
}

func NewApp(ctx context.Context, g *game.Game, c *config.Config, logger zerolog.Logger) *App {
	a := &App{
		app:  tview.NewApplication(),
		ctx:  ctx,
		game: g,
		cfg:  c,
		log:  logger,
	}
	a.boards[0] = NewBoardUI(g, board.Side1, c)
	a.boards[1] = NewBoardUI(g, board.Side2, c)

	a.status = tview.NewTextView()
	a.status.SetDynamicColors(true)
	a.status.SetBorder(true)
	a.status.SetBorderPadding(0, 0, 1, 1)
	a.status.SetTitle(" Status ")
	a.status.SetTitleAlign(tview.AlignLeft)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(a.boards[0].Box, 24, 0, true)
	boardRow.AddItem(a.boards[1].Box, 24, 0, false)
	boardRow.AddItem(a.status, 0, 1, false)

	a.root = tview.NewFlex().SetDirection(tview.FlexRow)
	a.root.SetBorder(true).SetTitle(" reversi ")
	a.root.AddItem(boardRow, 12, 0, true)
	a.root.AddItem(nil, 0, 1, false)
	a.root.SetInputCapture(a.handleKey)

	a.advance()
	a.refresh()
	return a
}

func (a *App) Run() error {
	return a.app.SetRoot(a.root, true).Run()
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		a.MoveSelection(-1, 0)
	case tcell.KeyDown:
		a.MoveSelection(1, 0)
	case tcell.KeyLeft:
		a.MoveSelection(0, -1)
	case tcell.KeyRight:
		a.MoveSelection(0, 1)
	case tcell.KeyEnter:
		a.PlaySelected()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'h':
			a.MoveSelection(0, -1)
		case 'j':
			a.MoveSelection(1, 0)
		case 'k':
			a.MoveSelection(-1, 0)
		case 'l':
			a.MoveSelection(0, 1)
		case 'g':
			a.PlayGreedy()
		case 'n':
			a.NewRound()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// activeBoard returns the board of the side to move, nil once the round is over.
func (a *App) activeBoard() *BoardUI {
	for _, b := range a.boards {
		if b.Side() == a.game.Turn() {
			return b
		}
	}
	return nil
}

func (a *App) MoveSelection(dr, dc int) {
	if b := a.activeBoard(); b != nil {
		b.MoveSelection(dr, dc)
	}
	a.refresh()
}

// PlaySelected plays the side to move at its cursor.
func (a *App) PlaySelected() {
	b := a.activeBoard()
	if b == nil {
		return
	}
	_, err := a.game.Play(b.Side(), b.Selected())
	a.after(err)
}

// PlayGreedy lets the engine move for the side to move.
func (a *App) PlayGreedy() {
	b := a.activeBoard()
	if b == nil {
		return
	}
	_, err := a.game.PlayGreedy(a.ctx, b.Side())
	a.after(err)
}

// NewRound starts over once the current round has ended.
func (a *App) NewRound() {
	if !a.game.IsOver() {
		return
	}
	a.game.NewRound()
	a.after(nil)
}

func (a *App) after(err error) {
	a.lastErr = err
	if err != nil {
		a.log.Debug().Err(err).Msg("move rejected")
	} else {
		a.advance()
	}
	a.refresh()
}

// advance plays every turn owned by an AI side.
func (a *App) advance() {
	for !a.game.IsOver() && a.cfg.Player(a.game.Turn()).AI {
		if _, err := a.game.PlayGreedy(a.ctx, a.game.Turn()); err != nil {
			if !errors.Is(err, engine.ErrNoLegalMove) {
				a.lastErr = err
			}
			return
		}
	}
}

func (a *App) refresh() {
	a.status.SetText(a.StatusText())
}

func (a *App) StatusText() string {
	builder := strings.Builder{}
	res := a.game.Result()

	_, _ = builder.WriteString("[white::b]Game Info[-:-:-]\n")
	_, _ = builder.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, s := range []board.Side{board.Side1, board.Side2} {
		score := res.Side1
		if s == board.Side2 {
			score = res.Side2
		}
		marker := " "
		if a.game.Turn() == s {
			marker = "[yellow]>[-]"
		}
		name := tview.Escape(a.cfg.Player(s).Name)
		if a.cfg.Player(s).AI {
			name += " (ai)"
		}
		_, _ = builder.WriteString(fmt.Sprintf("%s %s: %d\n", marker, name, score))
	}
	_, _ = builder.WriteString(fmt.Sprintf("[white]Move:[-:-:-] %d\n", a.game.Plies()))
	if mv := a.game.LastMove(); !mv.IsNull() {
		_, _ = builder.WriteString(fmt.Sprintf("[white]Last:[-:-:-] %s %s\n", tview.Escape(a.cfg.Player(mv.Side).Name), mv))
	}
	if s := a.game.LastPass(); s != board.SideUnknown {
		_, _ = builder.WriteString(fmt.Sprintf("[white]Pass:[-:-:-] %s\n", tview.Escape(a.cfg.Player(s).Name)))
	}
	if a.lastErr != nil {
		_, _ = builder.WriteString(fmt.Sprintf("[red]%s[-]\n", tview.Escape(a.lastErr.Error())))
	}

	if a.game.IsOver() {
		_, _ = builder.WriteString("\n[white::b]Game Complete[-:-:-]\n")
		_, _ = builder.WriteString(fmt.Sprintf("  %s\n", res.Summary()))
		_, _ = builder.WriteString("\n  n new round   q quit")
	} else {
		_, _ = builder.WriteString("\n  ↑↓←→ move   ⏎ play\n  g greedy   q quit")
	}
	return builder.String()
}
