package ebiten

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/quadblox/quadblox"
	"github.com/plus3/quadblox/scene"
)

// sessionWindow shows the live session and the running tally.
type sessionWindow struct {
	world *scene.World
}

func newSessionWindow(world *scene.World) *sessionWindow {
	return &sessionWindow{world: world}
}

func (w *sessionWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(260, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(230, 300), imgui.CondOnce)

	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := w.world.Session()
	imgui.Text(fmt.Sprintf("ID: %s", session.ID))
	imgui.Text(fmt.Sprintf("State: %s", session.State))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d", session.Score, session.Lines))
	imgui.Text(fmt.Sprintf("Last tick: %.2fs", session.LastTick()))

	if session.State == quadblox.StatePlaying {
		active := session.Active
		c := scene.White
		for _, tile := range active.Tiles() {
			c = scene.ColorOf(tile)
			break
		}
		imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1))
		imgui.Text(fmt.Sprintf("Active: %s at (%d, %d)", active.Shape, active.X, active.Y))
		imgui.PopStyleColor()
	}

	imgui.Separator()
	tally := w.world.Tally()
	imgui.Text(fmt.Sprintf("Games: %d  Frames: %d", tally.Games, tally.Frames))
	imgui.Text(fmt.Sprintf("Locks: %d  Best score: %d", tally.Locks, tally.BestScore))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ClearsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Rows")
		imgui.TableSetupColumn("Clears")
		imgui.TableHeadersRow()
		for rows := 1; rows < len(tally.Clears); rows++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", rows))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", tally.Clears[rows]))
		}
		imgui.EndTable()
	}

	imgui.End()
}
