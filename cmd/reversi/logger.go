package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const envLogLevel = "REVERSI_LOG_LEVEL"

// newLogger builds the process logger. Logs go to path when set, to stderr when
// console is set, and nowhere otherwise since the TUI owns the terminal.
func newLogger(level, path string, console bool) (zerolog.Logger, func(), error) {
	if env := os.Getenv(envLogLevel); env != "" {
		level = env
	}
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), func() {}, err
		}
		logger := zerolog.New(f).With().Timestamp().Logger()
		log.Logger = logger
		return logger, func() { _ = f.Close() }, nil
	case console:
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Logger = logger
		return logger, func() {}, nil
	default:
		return zerolog.Nop(), func() {}, nil
	}
}
