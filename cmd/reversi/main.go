package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/daystram/reversi/board"
	"github.com/daystram/reversi/config"
	"github.com/daystram/reversi/game"
	"github.com/daystram/reversi/shell"
	"github.com/daystram/reversi/ui"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")
	logFile = flag.String("log", "", "write logs to file")

	layout = flag.String("layout", board.DefaultLayout, "starting layout")
	side   = flag.String("side", "1", "side to move from the starting layout")

	textRun = flag.Bool("text", false, "run text protocol on stdin/stdout")

	perftDepth  = flag.Int("perft", 0, "run perft to depth")
	perftSerial = flag.Bool("perft.serial", false, "run perft on a single goroutine")

	selfplayGames = flag.Int("selfplay", 0, "play greedy self-play games")
	selfplaySeed  = flag.Uint64("seed", 1, "seed for random opening plies")
	selfplayPlies = flag.Int("plies", 4, "random opening plies per self-play game")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")
	stepRun    = flag.Bool("step", false, "run step mode")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()

	if *profile {
		runProfiler()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := realMain(ctx)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("reversi exited")
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Info().Msgf("starting pprof endpoint: http://%s/debug/pprof", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(ctx context.Context) error {
	cfg, err := config.InitConfig()
	if err != nil {
		return err
	}
	turn, ok := board.NewSideFromString(*side)
	if !ok {
		return fmt.Errorf("invalid side %q", *side)
	}

	tui := !*textRun && *perftDepth == 0 && *selfplayGames == 0 && !*movegenRun && !*stepRun
	logger, closeLog, err := newLogger(cfg.LogLevel, *logFile, !tui)
	if err != nil {
		return err
	}
	defer closeLog()

	if *perftDepth > 0 {
		return perft(*perftDepth, *layout, turn, !*perftSerial)
	}
	if *selfplayGames > 0 {
		return selfplay(ctx, logger, *selfplayGames, *selfplayPlies, *selfplaySeed)
	}
	if *movegenRun {
		return movegen(*layout, turn)
	}
	if *stepRun {
		return step(ctx, *layout, turn, *selfplaySeed)
	}

	g, err := game.New(
		game.WithLogger(logger),
		game.WithLayout(*layout, turn),
	)
	if err != nil {
		return err
	}
	if *textRun {
		return shell.NewInterface(g, os.Stdout).Run(ctx, os.Stdin)
	}
	return ui.NewApp(ctx, g, cfg, logger).Run()
}
