package ecs_test

import (
	"fmt"

	"github.com/plus3/quadblox/ecs"
)

type Clock struct {
	Elapsed float64
}

type Announcements struct {
	Lines []string
}

type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}

type AnnounceSystem struct {
	Clock         ecs.Singleton[Clock]
	Announcements ecs.Singleton[Announcements]
}

func (s *AnnounceSystem) Execute(frame *ecs.UpdateFrame) {
	elapsed := s.Clock.Get().Elapsed
	frame.Commands.Defer(func() {
		a := s.Announcements.Get()
		a.Lines = append(a.Lines, fmt.Sprintf("t=%.2f", elapsed))
	})
}

// ExampleScheduler builds a two-stage frame. Systems run in registration
// order against shared singletons, and deferred commands run after the
// last system.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Clock](registry)
	ecs.RegisterComponent[Announcements](registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton[Clock](storage)
	announcements := ecs.NewSingleton[Announcements](storage)

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ClockSystem{})
	scheduler.Register(&AnnounceSystem{})

	scheduler.Once(0.5)
	scheduler.Once(0.25)

	for _, line := range announcements.Get().Lines {
		fmt.Println(line)
	}

	// Output:
	// t=0.50
	// t=0.75
}

// ExampleStorage_ReadSingleton reads a singleton outside of any system.
func ExampleStorage_ReadSingleton() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Clock](registry)
	ecs.RegisterComponent[Announcements](registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, Clock{Elapsed: 3})

	var clock *Clock
	if storage.ReadSingleton(&clock) {
		fmt.Printf("elapsed %.0f\n", clock.Elapsed)
	}

	var announcements *Announcements
	if !storage.ReadSingleton(&announcements) {
		fmt.Println("no announcements")
	}

	// Output:
	// elapsed 3
	// no announcements
}
