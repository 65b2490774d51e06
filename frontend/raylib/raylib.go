// Package raylib runs QuadBlox in a raylib window.
package raylib

import (
	"image/color"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/quadblox/internal/log"
	"github.com/plus3/quadblox/scene"
)

type Options struct {
	Rand   *rand.Rand
	Logger *log.Logger
}

// binding is how an action is read from the keyboard. Start reacts to a held
// key, everything else to a fresh press.
type binding struct {
	key  int32
	held bool
}

var Keys = map[scene.Action]binding{
	scene.ActionRotate:    {key: rl.KeyUp},
	scene.ActionMoveLeft:  {key: rl.KeyLeft},
	scene.ActionMoveRight: {key: rl.KeyRight},
	scene.ActionSoftDrop:  {key: rl.KeyDown},
	scene.ActionStart:     {key: rl.KeyEnter, held: true},
}

type keyboardInput struct{}

func (keyboardInput) IsActionPressed(action scene.Action) bool {
	b, ok := Keys[action]
	if !ok {
		return false
	}
	if b.held {
		return rl.IsKeyDown(b.key)
	}
	return rl.IsKeyPressed(b.key)
}

type clock struct{}

func (clock) Now() float64 {
	return rl.GetTime()
}

type renderer struct{}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (renderer) Clear(c color.RGBA) {
	rl.ClearBackground(toColor(c))
}

func (renderer) DrawRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toColor(c))
}

func (renderer) DrawText(text string, x, y, size int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toColor(c))
}

// Run opens the window and plays until it is closed. Escape closes it.
func Run(opts Options) error {
	rl.InitWindow(scene.ScreenWidth, scene.ScreenHeight, "QuadBlox")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	world := scene.NewWorld(scene.Options{
		Input:    keyboardInput{},
		Clock:    clock{},
		Renderer: renderer{},
		Logger:   opts.Logger,
		Rand:     opts.Rand,
	})

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		world.Update.Once(deltaTime)

		rl.BeginDrawing()
		world.Draw.Once(deltaTime)
		rl.EndDrawing()
	}
	return nil
}
