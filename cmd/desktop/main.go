package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/tomz197/whuacamole/internal/config"
	"github.com/tomz197/whuacamole/internal/desktop"
	"github.com/tomz197/whuacamole/internal/loop"
)

func main() {
	logger, closeLog, err := config.NewLogger("desktop", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	w, h := desktop.DisplaySize()
	cfg, err := config.New(w, h)
	if err != nil {
		logger.Fatal("invalid display", "err", err)
	}

	seed, err := config.GetEnvInt("SEED", int(time.Now().UnixNano()))
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	state := loop.NewState(cfg, rand.New(rand.NewSource(int64(seed))), logger)
	if err := desktop.Run(state, logger); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
