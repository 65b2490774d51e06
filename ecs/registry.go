package ecs

import "reflect"

// ComponentRegistry assigns a stable id to every component type a Storage
// may hold. Each Storage has its own registry.
type ComponentRegistry struct {
	ids   map[reflect.Type]uint32
	types []reflect.Type
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids: make(map[reflect.Type]uint32),
	}
}

// RegisterComponent registers T with the registry. Registering the same type
// twice is a no-op.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.register(reflect.TypeFor[T]())
}

func (r *ComponentRegistry) register(t reflect.Type) uint32 {
	if id, ok := r.ids[t]; ok {
		return id
	}
	r.types = append(r.types, t)
	id := uint32(len(r.types))
	r.ids[t] = id
	return id
}

// lookup returns the id of t, or false if t was never registered.
func (r *ComponentRegistry) lookup(t reflect.Type) (uint32, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// mustLookup panics for unregistered types.
func (r *ComponentRegistry) mustLookup(t reflect.Type) uint32 {
	id, ok := r.ids[t]
	if !ok {
		panic("component type " + t.String() + " not registered")
	}
	return id
}

// Len returns the number of registered types.
func (r *ComponentRegistry) Len() int {
	return len(r.types)
}
