package ebiten_test

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/ecs/debugui"
	debugui_ebiten "github.com/plus3/quadblox/ecs/debugui/ebiten"
)

// Game implements ebiten.Game and integrates the ECS with ImGui rendering.
type Game struct {
	scheduler    *ecs.Scheduler
	imguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
}

func (g *Game) Update() error {
	// Begin ImGui frame before executing systems
	g.imguiBackend.Get().BeginFrame()

	// Execute all ECS systems (including ImguiSystem)
	g.scheduler.Once(1.0 / 60.0)

	// End ImGui frame after systems complete
	g.imguiBackend.Get().EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.imguiBackend.Get().Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.imguiBackend.Get().Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[debugui_ebiten.ImguiBackend](registry)
	debugui.RegisterDebugUIComponents(registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend("ECS ImGui Example", 1280, 720))

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&debugui.ImguiSystem{})

	windows := debugui.InstallDebugUI(storage, map[string]*ecs.Scheduler{"update": scheduler})
	windows.Add("Debug Window", func() {
		imgui.Begin("Debug Window")
		imgui.Text("Hello from ECS!")
		imgui.End()
	})

	game := &Game{
		scheduler:    scheduler,
		imguiBackend: ecs.NewSingleton[debugui_ebiten.ImguiBackend](storage),
	}

	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
