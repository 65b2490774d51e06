package ecs_test

import (
	"testing"

	"github.com/plus3/quadblox/ecs"
	"github.com/stretchr/testify/assert"
)

func TestNewSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	counter := ecs.NewSingleton(storage, Counter{Value: 10})
	assert.Equal(t, 10, counter.Get().Value)

	again := ecs.NewSingleton(storage, Counter{Value: 99})
	assert.Equal(t, 10, again.Get().Value, "initializer is ignored once the singleton exists")
	assert.Same(t, counter.Get(), again.Get())

	zero := ecs.NewSingleton[Config](storage)
	assert.Equal(t, Config{}, *zero.Get())
}

func TestSingletonLateAdd(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var counter ecs.Singleton[Counter]
	assert.Nil(t, counter.Get(), "uninitialized accessor")

	counter.Init(storage)
	assert.False(t, counter.Exists())

	storage.AddSingleton(Counter{Value: 2})
	assert.True(t, counter.Exists())
	assert.Equal(t, 2, counter.Get().Value)
}
