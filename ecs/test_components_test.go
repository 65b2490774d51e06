package ecs_test

import "github.com/plus3/quadblox/ecs"

// Common test singleton types
type Counter struct {
	Value int
}

type Config struct {
	Name  string
	Level int
}

type Unregistered struct{}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Counter](registry)
	ecs.RegisterComponent[Config](registry)
	return registry
}
