//go:build !raylib

package main

import (
	"context"
	"math/rand/v2"

	"github.com/plus3/quadblox/frontend/ebiten"
	"github.com/plus3/quadblox/internal/log"
)

func init() {
	defaultFrontend = "ebiten"
	frontends["ebiten"] = func(_ context.Context, cfg Config, rng *rand.Rand, logger *log.Logger) error {
		return ebiten.Run(ebiten.Options{
			Rand:    rng,
			Logger:  logger,
			DebugUI: cfg.DebugUI,
		})
	}
}
