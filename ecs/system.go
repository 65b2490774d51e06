package ecs

// System is one stage of a frame. Systems may declare Singleton fields,
// which the Scheduler wires on Register, and keep their own state between
// frames in ordinary fields.
type System interface {
	Execute(frame *UpdateFrame)
}
