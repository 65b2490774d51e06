// Package headless plays QuadBlox without a window: a seeded bot presses
// keys, time advances by a fixed step per frame and drawing is only counted.
package headless

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/internal/log"
	"github.com/plus3/quadblox/scene"
)

type Options struct {
	Seed   uint64
	Logger *log.Logger

	// Duration bounds the wall-clock length of the run.
	Duration time.Duration
	// Interval is the wall-clock time between frames.
	Interval time.Duration
	// FrameDelta is the simulated time each frame advances, in seconds.
	FrameDelta float64
	// MaxFrames stops the run after that many frames. Zero means no limit.
	MaxFrames int
	// PressChance is the probability that the bot presses a given key in a
	// frame.
	PressChance float64
}

func DefaultOptions() Options {
	return Options{
		Duration:    10 * time.Second,
		Interval:    time.Millisecond,
		FrameDelta:  1.0 / 60.0,
		PressChance: 0.1,
	}
}

func (o Options) validate() error {
	if o.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", o.Interval)
	}
	if o.FrameDelta <= 0 {
		return fmt.Errorf("frame delta must be positive, got %v", o.FrameDelta)
	}
	if o.PressChance < 0 || o.PressChance > 1 {
		return fmt.Errorf("press chance must be within [0, 1], got %v", o.PressChance)
	}
	if o.MaxFrames < 0 {
		return errors.New("max frames must not be negative")
	}
	return nil
}

// bot presses every key at random, and Start always.
type bot struct {
	rng    *rand.Rand
	chance float64
	done   bool
}

func (b *bot) IsActionPressed(action scene.Action) bool {
	if b.done {
		return false
	}
	if action == scene.ActionStart {
		return true
	}
	return b.rng.Float64() < b.chance
}

type frameClock struct {
	now float64
}

func (c *frameClock) Now() float64 {
	return c.now
}

// countingRenderer tallies draw calls.
type countingRenderer struct {
	clears, rects, texts int
}

func (r *countingRenderer) Clear(color.RGBA) { r.clears++ }

func (r *countingRenderer) DrawRect(x, y, w, h int, c color.RGBA) { r.rects++ }

func (r *countingRenderer) DrawText(text string, x, y, size int, c color.RGBA) { r.texts++ }

// frameSystem closes each update frame: it draws, advances the clock and
// ends the run at the frame limit. After the limit the bot and the clock
// freeze, so frames the scheduler still runs change nothing.
type frameSystem struct {
	draw   *ecs.Scheduler
	clock  *frameClock
	bot    *bot
	delta  float64
	max    int
	frames int
	cancel context.CancelFunc
}

func (s *frameSystem) Execute(frame *ecs.UpdateFrame) {
	if s.bot.done {
		return
	}

	s.draw.Once(s.delta)
	s.clock.now += s.delta
	s.frames++

	if s.max > 0 && s.frames >= s.max {
		s.bot.done = true
		s.cancel()
	}
}

// Run plays until ctx ends, opts.Duration elapses or opts.MaxFrames frames
// have run, and reports what happened.
func Run(ctx context.Context, opts Options) (*Report, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("headless options: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}

	runCtx := ctx
	var cancelTimeout context.CancelFunc = func() {}
	if opts.Duration > 0 {
		runCtx, cancelTimeout = context.WithTimeout(ctx, opts.Duration)
	}
	defer cancelTimeout()
	runCtx, cancel := context.WithCancel(runCtx)
	defer cancel()

	player := &bot{
		rng:    rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x5bd1e995)),
		chance: opts.PressChance,
	}
	clock := &frameClock{}
	renderer := &countingRenderer{}

	world := scene.NewWorld(scene.Options{
		Input:    player,
		Clock:    clock,
		Renderer: renderer,
		Logger:   logger,
		Rand:     rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
	})

	frames := &frameSystem{
		draw:   world.Draw,
		clock:  clock,
		bot:    player,
		delta:  opts.FrameDelta,
		max:    opts.MaxFrames,
		cancel: cancel,
	}
	world.Update.Register(frames)

	logger.Infof("headless run started, seed %d", opts.Seed)
	start := time.Now()
	world.Update.Run(runCtx, opts.Interval)
	wall := time.Since(start)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("headless run: %w", err)
	}

	report := newReport(opts, world, frames.frames, clock.now, wall, renderer)
	logger.Infof("headless run finished after %d frames, score %d", report.Frames, report.Score)
	return report, nil
}
