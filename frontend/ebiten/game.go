// Package ebiten runs QuadBlox in an Ebitengine window, optionally with a
// Dear ImGui debug overlay.
package ebiten

import (
	"math/rand/v2"
	"reflect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/ecs/debugui"
	debugui_ebiten "github.com/plus3/quadblox/ecs/debugui/ebiten"
	"github.com/plus3/quadblox/internal/log"
	"github.com/plus3/quadblox/quadblox"
	"github.com/plus3/quadblox/scene"
)

const windowTitle = "QuadBlox"

type Options struct {
	Rand    *rand.Rand
	Logger  *log.Logger
	DebugUI bool
}

// Game implements ebiten.Game on top of a scene.World.
type Game struct {
	world    *scene.World
	renderer *screenRenderer
	imgui    *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

// NewGame builds the world and, with DebugUI set, the ImGui backend and its
// windows. The ImGui backend creates the window itself.
func NewGame(opts Options) *Game {
	registry := ecs.NewComponentRegistry()
	if opts.DebugUI {
		ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
		debugui.RegisterDebugUIComponents(registry)
	}

	input := &keyboardInput{}
	renderer := &screenRenderer{}
	world := scene.NewWorld(scene.Options{
		Input:    input,
		Clock:    newWallClock(),
		Renderer: renderer,
		Logger:   opts.Logger,
		Rand:     opts.Rand,
		Registry: registry,
	})

	g := &Game{
		world:    world,
		renderer: renderer,
	}

	if !opts.DebugUI {
		ebiten.SetWindowSize(scene.ScreenWidth, scene.ScreenHeight)
		ebiten.SetWindowTitle(windowTitle)
		return g
	}

	ecs.NewSingleton(world.Storage, debugui_ebiten.NewImguiBackend(windowTitle, scene.ScreenWidth, scene.ScreenHeight))
	g.imgui = ecs.NewSingleton[debugui_ebiten.ImguiBackend](world.Storage)

	world.Update.Register(&debugui.ImguiSystem{})
	windows := debugui.InstallDebugUI(world.Storage, map[string]*ecs.Scheduler{
		"Update": world.Update,
		"Draw":   world.Draw,
	}, reflect.TypeFor[quadblox.Session]())
	windows.Add("Session", newSessionWindow(world).Render)

	captured := ecs.NewSingleton[debugui.ImguiInputState](world.Storage)
	input.captured = func() bool {
		return captured.Get().WantCaptureKeyboard
	}

	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui != nil {
		g.imgui.Get().BeginFrame()
	}

	g.world.Update.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.Get().EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.world.Draw.Once(0)

	if g.imgui != nil {
		g.imgui.Get().Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Get().Layout(scene.ScreenWidth, scene.ScreenHeight)
	}
	return scene.ScreenWidth, scene.ScreenHeight
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(opts Options) error {
	return ebiten.RunGame(NewGame(opts))
}
