package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/quadblox/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterComponentTwice(t *testing.T) {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Counter](registry)
	ecs.RegisterComponent[Counter](registry)

	assert.Equal(t, 1, registry.Len())
}

func TestAddSingleton(t *testing.T) {
	t.Run("value and pointer", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())

		storage.AddSingleton(Counter{Value: 3})
		storage.AddSingleton(&Config{Name: "a"})

		assert.Equal(t, 3, ecs.ReadSingletonOf[Counter](storage).Value)
		assert.Equal(t, "a", ecs.ReadSingletonOf[Config](storage).Name)
	})

	t.Run("overwrite keeps the address", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		storage.AddSingleton(Counter{Value: 1})
		first := ecs.ReadSingletonOf[Counter](storage)

		storage.AddSingleton(Counter{Value: 2})

		assert.Same(t, first, ecs.ReadSingletonOf[Counter](storage))
		assert.Equal(t, 2, first.Value)
	})

	t.Run("pointer input is copied", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		src := &Counter{Value: 5}
		storage.AddSingleton(src)

		src.Value = 6

		assert.Equal(t, 5, ecs.ReadSingletonOf[Counter](storage).Value)
	})

	t.Run("unregistered type panics", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		assert.PanicsWithValue(t, "component type ecs_test.Unregistered not registered", func() {
			storage.AddSingleton(Unregistered{})
		})
	})

	t.Run("nil panics", func(t *testing.T) {
		storage := ecs.NewStorage(newTestRegistry())
		assert.Panics(t, func() { storage.AddSingleton(nil) })
		assert.Panics(t, func() { storage.AddSingleton((*Counter)(nil)) })
	})
}

func TestReadSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(Config{Name: "x", Level: 4})

	var config *Config
	require.True(t, storage.ReadSingleton(&config))
	assert.Equal(t, 4, config.Level)

	config.Level = 9
	assert.Equal(t, 9, ecs.ReadSingletonOf[Config](storage).Level)

	var counter *Counter
	assert.False(t, storage.ReadSingleton(&counter))
	assert.Nil(t, counter)

	var unregistered *Unregistered
	assert.False(t, storage.ReadSingleton(&unregistered))

	assert.Panics(t, func() { storage.ReadSingleton(config) })
}

func TestHasSingleton(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	assert.False(t, storage.HasSingleton(reflect.TypeFor[Counter]()))

	storage.AddSingleton(Counter{})
	assert.True(t, storage.HasSingleton(reflect.TypeFor[Counter]()))
}

func TestCollectStats(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	stats := storage.CollectStats()
	assert.Equal(t, 2, stats.RegisteredTypes)
	assert.Zero(t, stats.SingletonCount)
	assert.Empty(t, stats.SingletonTypes)

	storage.AddSingleton(Counter{})
	storage.AddSingleton(Config{})

	stats = storage.CollectStats()
	assert.Equal(t, 2, stats.SingletonCount)
	assert.Equal(t, []string{"ecs_test.Config", "ecs_test.Counter"}, stats.SingletonTypes)
}

func TestStorageSingletons(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.AddSingleton(Counter{Value: 1})
	storage.AddSingleton(Config{Name: "easy"})

	var names []string
	for typ, value := range storage.Singletons() {
		names = append(names, typ.Name())
		if typ == reflect.TypeFor[Counter]() {
			value.Field(0).SetInt(9)
		}
	}

	assert.Equal(t, []string{"Config", "Counter"}, names)
	assert.Equal(t, 9, ecs.ReadSingletonOf[Counter](storage).Value, "values are writable in place")

	count := 0
	for range storage.Singletons() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
