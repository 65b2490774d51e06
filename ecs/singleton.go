package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton provides cached, typed access to a singleton resource. Declare
// it as a field of a System and the Scheduler initializes it on Register.
type Singleton[T any] struct {
	storage       *Storage
	componentPtr  unsafe.Pointer
	componentType reflect.Type
}

// NewSingleton creates an accessor for T. If the singleton does not exist
// yet it is created from initializer, or from the zero value.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	componentType := reflect.TypeFor[T]()

	entry := storage.getSingletonEntry(componentType)
	if entry == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
		entry = storage.getSingletonEntry(componentType)
	}

	return &Singleton[T]{
		storage:       storage,
		componentPtr:  entry.dataPtr,
		componentType: componentType,
	}
}

// Init binds the accessor to storage. Called by the Scheduler.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.componentType = reflect.TypeFor[T]()
	s.updateCache()
}

// Get returns the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.componentPtr == nil {
		s.updateCache()
	}
	if s.componentPtr == nil {
		return nil
	}
	return (*T)(s.componentPtr)
}

// Exists reports whether the singleton has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}

func (s *Singleton[T]) updateCache() {
	if s.storage == nil {
		return
	}
	if entry := s.storage.getSingletonEntry(s.componentType); entry != nil {
		s.componentPtr = entry.dataPtr
	} else {
		s.componentPtr = nil
	}
}
