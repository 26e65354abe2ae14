package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
	"golang.org/x/term"
)

func main() {
	out, closeLog, err := config.OpenLogOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	logger := config.NewLogger(out, "game")

	seed, err := config.GetEnvInt64("INVADERS_SEED", 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := loop.Options{
		Seed:   seed,
		Logger: logger,
	}
	if err := loop.Run(context.Background(), reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
