package ecs

// Commands buffers work that must run after every system of the frame has
// executed, such as draw calls queued by an update system.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at flush time. Deferred functions run in the order
// they were queued.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs every queued function and resets the buffer. Functions queued
// during the flush run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
