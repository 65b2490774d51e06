package ecs

import (
	"iter"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value // *T
	dataPtr unsafe.Pointer
}

// Storage holds the singleton resources shared by the systems of a world:
// game sessions, sampled input, per-frame reports and similar state that
// exists exactly once.
type Storage struct {
	registry   *ComponentRegistry
	singletons *intmap.Map[uint32, *singletonEntry]
}

// NewStorage creates a storage bound to registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		singletons: intmap.New[uint32, *singletonEntry](16),
	}
}

// Registry returns the registry the storage was created with.
func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// AddSingleton stores value as the singleton of its type. A pointer is
// dereferenced and its target copied. If the singleton already exists it is
// overwritten in place, so pointers handed out earlier stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		panic("cannot add a nil singleton")
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			panic("cannot add a nil singleton")
		}
		v = v.Elem()
	}

	t := v.Type()
	id := s.registry.mustLookup(t)

	if entry, ok := s.singletons.Get(id); ok {
		entry.value.Elem().Set(v)
		return
	}

	ptr := reflect.New(t)
	ptr.Elem().Set(v)
	s.singletons.Put(id, &singletonEntry{
		typ:     t,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
}

// HasSingleton reports whether a singleton of type t exists.
func (s *Storage) HasSingleton(t reflect.Type) bool {
	return s.getSingletonEntry(t) != nil
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	id, ok := s.registry.lookup(t)
	if !ok {
		return nil
	}
	entry, ok := s.singletons.Get(id)
	if !ok {
		return nil
	}
	return entry
}

// ReadSingleton points *target at the stored singleton and reports whether
// it exists. target must be a **T:
//
//	var session *quadblox.Session
//	if storage.ReadSingleton(&session) { ... }
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}

	entry := s.getSingletonEntry(v.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	v.Elem().Set(entry.value)
	return true
}

// ReadSingletonOf returns the singleton of type T, or nil.
func ReadSingletonOf[T any](s *Storage) *T {
	entry := s.getSingletonEntry(reflect.TypeFor[T]())
	if entry == nil {
		return nil
	}
	return (*T)(entry.dataPtr)
}

// Singletons yields every stored singleton ordered by type name. The yielded
// value is the addressable singleton itself, so setting its fields writes
// through to storage.
func (s *Storage) Singletons() iter.Seq2[reflect.Type, reflect.Value] {
	return func(yield func(reflect.Type, reflect.Value) bool) {
		entries := make([]*singletonEntry, 0, s.singletons.Len())
		s.singletons.ForEach(func(_ uint32, entry *singletonEntry) bool {
			entries = append(entries, entry)
			return true
		})
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].typ.String() < entries[j].typ.String()
		})

		for _, entry := range entries {
			if !yield(entry.typ, entry.value.Elem()) {
				return
			}
		}
	}
}
