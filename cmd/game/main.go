package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/loop"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	seed, err := config.GetEnvInt("SEED", int(time.Now().UnixNano()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	// The game owns stdout; logs only go to LOG_FILE.
	logger, closeLog, err := config.NewLogger("whuacamole", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger.Info("starting", "display", fmt.Sprintf("%.0fx%.0f", cfg.DisplayWidth, cfg.DisplayHeight), "seed", seed)

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(int64(seed))),
		Logger: logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		logger.Error("game error", "err", err)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
