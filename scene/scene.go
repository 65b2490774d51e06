// Package scene runs a QuadBlox session on the ecs frame pipeline. Frontends
// supply the input, clock and renderer collaborators and drive the two
// schedulers of a World once per frame.
package scene

import (
	"image/color"
	"math/rand/v2"

	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/internal/log"
	"github.com/plus3/quadblox/quadblox"
)

type Action int

const (
	ActionRotate Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionStart
)

// AllActions lists every action in sampling order.
var AllActions = [...]Action{ActionRotate, ActionMoveLeft, ActionMoveRight, ActionSoftDrop, ActionStart}

func (a Action) String() string {
	switch a {
	case ActionRotate:
		return "rotate"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionSoftDrop:
		return "soft-drop"
	case ActionStart:
		return "start"
	default:
		return "unknown"
	}
}

// Input reports whether an action was pressed this frame.
type Input interface {
	IsActionPressed(action Action) bool
}

// Clock returns monotonic time in seconds.
type Clock interface {
	Now() float64
}

// Renderer draws rectangles and text in screen pixels.
type Renderer interface {
	Clear(c color.RGBA)
	DrawRect(x, y, w, h int, c color.RGBA)
	DrawText(text string, x, y, size int, c color.RGBA)
}

// RegisterComponents registers the singleton types the scene systems use.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[quadblox.Session](registry)
	ecs.RegisterComponent[quadblox.Actions](registry)
	ecs.RegisterComponent[quadblox.Step](registry)
	ecs.RegisterComponent[Tally](registry)
}

type Options struct {
	Input    Input
	Clock    Clock
	Renderer Renderer
	Logger   *log.Logger
	Rand     *rand.Rand

	// Registry receives the scene types. A new one is created when nil.
	Registry *ecs.ComponentRegistry
}

// World holds the storage and the two schedulers a frontend drives: Update
// once per game tick, Draw once per rendered frame.
type World struct {
	Storage *ecs.Storage
	Update  *ecs.Scheduler
	Draw    *ecs.Scheduler
}

// NewWorld creates the session singletons and registers the systems. The
// draw scheduler is empty when no Renderer is given.
func NewWorld(opts Options) *World {
	registry := opts.Registry
	if registry == nil {
		registry = ecs.NewComponentRegistry()
	}
	RegisterComponents(registry)

	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	storage := ecs.NewStorage(registry)
	ecs.NewSingleton(storage, *quadblox.NewSession(rng))
	ecs.NewSingleton[quadblox.Actions](storage)
	ecs.NewSingleton[quadblox.Step](storage)
	ecs.NewSingleton[Tally](storage)

	update := ecs.NewScheduler(storage)
	update.Register(&InputSystem{Input: opts.Input})
	update.Register(&PlaySystem{Clock: opts.Clock})
	update.Register(&EventSystem{Log: logger})

	draw := ecs.NewScheduler(storage)
	if opts.Renderer != nil {
		draw.Register(&RenderSystem{Renderer: opts.Renderer})
	}

	return &World{
		Storage: storage,
		Update:  update,
		Draw:    draw,
	}
}

// Session returns the live session.
func (w *World) Session() *quadblox.Session {
	return ecs.ReadSingletonOf[quadblox.Session](w.Storage)
}

// Tally returns the running event counters.
func (w *World) Tally() *Tally {
	return ecs.ReadSingletonOf[Tally](w.Storage)
}
