package scene

import (
	"github.com/plus3/quadblox/ecs"
	"github.com/plus3/quadblox/internal/log"
	"github.com/plus3/quadblox/quadblox"
)

// Tally accumulates session events over the lifetime of a World.
type Tally struct {
	Games     int
	Frames    int
	Locks     int
	Lines     int
	BestScore int
	// Clears counts line clears by the number of rows removed at once.
	Clears [5]int
}

// InputSystem samples Input into the Actions singleton.
type InputSystem struct {
	Input   Input
	Actions ecs.Singleton[quadblox.Actions]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	actions := s.Actions.Get()
	if actions == nil {
		return
	}
	if s.Input == nil {
		*actions = quadblox.Actions{}
		return
	}

	*actions = quadblox.Actions{
		Rotate:    s.Input.IsActionPressed(ActionRotate),
		MoveLeft:  s.Input.IsActionPressed(ActionMoveLeft),
		MoveRight: s.Input.IsActionPressed(ActionMoveRight),
		SoftDrop:  s.Input.IsActionPressed(ActionSoftDrop),
		Start:     s.Input.IsActionPressed(ActionStart),
	}
}

// PlaySystem advances the session by one frame.
type PlaySystem struct {
	Clock   Clock
	Session ecs.Singleton[quadblox.Session]
	Actions ecs.Singleton[quadblox.Actions]
	Step    ecs.Singleton[quadblox.Step]
}

func (s *PlaySystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	actions := s.Actions.Get()
	step := s.Step.Get()
	if session == nil || actions == nil || step == nil {
		return
	}

	*step = session.Update(*actions, s.Clock.Now())
}

// EventSystem logs what the last step did and keeps the Tally.
type EventSystem struct {
	Log     *log.Logger
	Session ecs.Singleton[quadblox.Session]
	Step    ecs.Singleton[quadblox.Step]
	Tally   ecs.Singleton[Tally]
}

func (s *EventSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	step := s.Step.Get()
	tally := s.Tally.Get()
	if session == nil || step == nil || tally == nil {
		return
	}

	tally.Frames++
	if session.Score > tally.BestScore {
		tally.BestScore = session.Score
	}
	if !step.Started && !step.Locked {
		return
	}

	logger := s.Log.With("session", session.ID)
	if step.Started {
		tally.Games++
		logger.Infof("game started")
	}
	if step.Locked {
		tally.Locks++
		logger.Debugf("piece locked, next %s", session.Active.Shape)
	}
	if step.Cleared > 0 {
		tally.Lines += step.Cleared
		tally.Clears[step.Cleared]++
		logger.Infof("cleared %d rows for %d points, score %d", step.Cleared, step.Points, session.Score)
	}
}
