package ecs

// UpdateFrame is passed to every system during one Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage, commands *Commands) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  commands,
		Storage:   storage,
	}
}
