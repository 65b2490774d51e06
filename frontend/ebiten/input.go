package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/quadblox/scene"
)

// Keys maps each action to its key.
var Keys = map[scene.Action]ebiten.Key{
	scene.ActionRotate:    ebiten.KeyArrowUp,
	scene.ActionMoveLeft:  ebiten.KeyArrowLeft,
	scene.ActionMoveRight: ebiten.KeyArrowRight,
	scene.ActionSoftDrop:  ebiten.KeyArrowDown,
	scene.ActionStart:     ebiten.KeyEnter,
}

// keyboardInput reports keys pressed since the previous tick. Nothing is
// pressed while captured reports true.
type keyboardInput struct {
	captured func() bool
}

func (k *keyboardInput) IsActionPressed(action scene.Action) bool {
	if k.captured != nil && k.captured() {
		return false
	}
	key, ok := Keys[action]
	return ok && inpututil.IsKeyJustPressed(key)
}

type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
