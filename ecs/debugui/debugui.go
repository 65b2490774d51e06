// Package debugui provides immediate-mode GUI integration for ECS applications using Dear ImGui.
// It manages ImGui rendering and input state through ECS singletons and systems.
package debugui

import (
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/quadblox/ecs"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// ImguiWindows is a singleton listing the ImGui render functions to run
// each frame, in order.
type ImguiWindows struct {
	Items []ImguiItem
}

// Add appends a render function.
func (w *ImguiWindows) Add(name string, render func()) {
	w.Items = append(w.Items, ImguiItem{Name: name, Render: render})
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton component.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers the render functions of the ImguiWindows singleton.
// It also updates the ImguiInputState singleton with current input capture state.
type ImguiSystem struct {
	Windows    ecs.Singleton[ImguiWindows]
	InputState ecs.Singleton[ImguiInputState]
}

// Execute updates input state and queues all ImGui render functions for execution.
func (i *ImguiSystem) Execute(frame *ecs.UpdateFrame) {
	if state := i.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	windows := i.Windows.Get()
	if windows == nil {
		return
	}
	for _, item := range windows.Items {
		frame.Commands.Defer(item.Render)
	}
}

// RegisterDebugUIComponents registers the singleton types used by the debug UI.
func RegisterDebugUIComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[ImguiWindows](registry)
	ecs.RegisterComponent[ImguiInputState](registry)
}

// InstallDebugUI adds the input state singleton and the stock windows: a
// performance window watching schedulers and a singleton inspector that
// shows the readOnly types without edit widgets. Callers may add their own
// windows to the returned list.
func InstallDebugUI(storage *ecs.Storage, schedulers map[string]*ecs.Scheduler, readOnly ...reflect.Type) *ImguiWindows {
	ecs.NewSingleton[ImguiInputState](storage)
	windows := ecs.NewSingleton[ImguiWindows](storage).Get()

	perf := NewPerformanceStats(storage, 120)
	for name, scheduler := range schedulers {
		perf.Watch(name, scheduler)
	}
	timer := NewFrameTimer()
	windows.Add("Performance Stats", func() {
		perf.Render(timer.GetDeltaTime())
	})

	inspector := NewSingletonInspector(storage)
	inspector.ReadOnly(readOnly...)
	windows.Add("Singleton Inspector", inspector.Render)

	return windows
}
