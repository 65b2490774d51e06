//go:build raylib

package main

import (
	"context"
	"math/rand/v2"

	"github.com/plus3/quadblox/frontend/raylib"
	"github.com/plus3/quadblox/internal/log"
)

func init() {
	defaultFrontend = "raylib"
	frontends["raylib"] = func(_ context.Context, _ Config, rng *rand.Rand, logger *log.Logger) error {
		return raylib.Run(raylib.Options{Rand: rng, Logger: logger})
	}
}
