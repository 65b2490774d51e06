// Command quadblox plays QuadBlox in a window or headless.
package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/plus3/quadblox/frontend/headless"
	"github.com/plus3/quadblox/internal/log"
)

// runner starts a frontend and blocks until it ends.
type runner func(ctx context.Context, cfg Config, rng *rand.Rand, logger *log.Logger) error

// frontends holds the frontends compiled in. The windowed ones register
// themselves from build-tagged files: ebiten by default, raylib with
// -tags raylib. Both vendor GLFW, so they are never linked together.
var frontends = map[string]runner{
	"headless": runHeadless,
}

// defaultFrontend is the windowed frontend compiled in.
var defaultFrontend = "headless"

func main() {
	logger := log.New(os.Stderr, log.LevelInfo)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warnf("loading .env: %v", err)
	}

	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}
	logger.SetLevel(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf("%v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, logger *log.Logger) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
		cfg.Seed = seed
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	logger.Debugf("starting with %s", cfg)
	start, ok := frontends[cfg.Frontend]
	if !ok {
		return fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
	if err := start(ctx, cfg, rng, logger); err != nil {
		return fmt.Errorf("%s frontend: %w", cfg.Frontend, err)
	}
	return nil
}

func runHeadless(ctx context.Context, cfg Config, _ *rand.Rand, logger *log.Logger) error {
	opts := headless.DefaultOptions()
	opts.Seed = cfg.Seed
	opts.Logger = logger
	opts.Duration = cfg.Duration
	opts.Interval = cfg.Interval
	opts.MaxFrames = cfg.Frames

	report, err := headless.Run(ctx, opts)
	if err != nil {
		return err
	}
	return report.Generate(os.Stdout)
}
