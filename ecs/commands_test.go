package ecs_test

import (
	"testing"

	"github.com/plus3/quadblox/ecs"
	"github.com/stretchr/testify/assert"
)

type deferringSystem struct {
	name string
	log  *[]string
}

func (s *deferringSystem) Execute(frame *ecs.UpdateFrame) {
	*s.log = append(*s.log, "exec "+s.name)
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "defer "+s.name)
	})
}

func TestCommandsFlushAfterSystems(t *testing.T) {
	var log []string
	scheduler := ecs.NewScheduler(ecs.NewStorage(newTestRegistry()))
	scheduler.Register(&deferringSystem{name: "a", log: &log})
	scheduler.Register(&deferringSystem{name: "b", log: &log})

	scheduler.Once(0)

	assert.Equal(t, []string{"exec a", "exec b", "defer a", "defer b"}, log)

	log = nil
	scheduler.Once(0)
	assert.Equal(t, []string{"exec a", "exec b", "defer a", "defer b"}, log, "buffer is reset between frames")
}

func TestCommandsDeferDuringFlush(t *testing.T) {
	var log []string
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(systemFunc(func(frame *ecs.UpdateFrame) {
		frame.Commands.Defer(func() {
			log = append(log, "outer")
			frame.Commands.Defer(func() { log = append(log, "inner") })
		})
	}))

	scheduler.Once(0)

	assert.Equal(t, []string{"outer", "inner"}, log)
}

type systemFunc func(frame *ecs.UpdateFrame)

func (f systemFunc) Execute(frame *ecs.UpdateFrame) { f(frame) }
