package debugui

import (
	"fmt"
	"sort"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/quadblox/ecs"
)

type watchedScheduler struct {
	name      string
	scheduler *ecs.Scheduler
}

// PerformanceStats renders frame times, scheduler timings and storage
// contents.
type PerformanceStats struct {
	storage       *ecs.Storage
	schedulers    []watchedScheduler
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(storage *ecs.Storage, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		storage:       storage,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Watch adds a scheduler to the system timing table. Schedulers are listed by
// name.
func (ps *PerformanceStats) Watch(name string, scheduler *ecs.Scheduler) {
	ps.schedulers = append(ps.schedulers, watchedScheduler{name: name, scheduler: scheduler})
	sort.Slice(ps.schedulers, func(i, j int) bool {
		return ps.schedulers[i].name < ps.schedulers[j].name
	})
}

func (ps *PerformanceStats) record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

func (ps *PerformanceStats) averageFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.record(deltaTime)
	stats := ps.storage.CollectStats()

	imgui.Text(fmt.Sprintf("Registered Types: %d", stats.RegisteredTypes))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avgFrameTime := ps.averageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	for _, watched := range ps.schedulers {
		if imgui.TreeNodeStr(watched.name + " Systems") {
			renderSystemTable(watched.name, watched.scheduler.GetStats())
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Singleton Details") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSystemTable(id string, stats *ecs.SchedulerStats) {
	imgui.Text(fmt.Sprintf("Frames: %d, last %s", stats.Frames, stats.LastFrameDuration))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV(id+"SystemsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Last")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(system.LastDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.MaxDuration.String())
	}

	imgui.EndTable()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
