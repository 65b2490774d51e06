package debugui

import (
	"reflect"
	"sync"
)

// FieldInfo describes an exported struct field shown by the inspector.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Index     int
	IsPointer bool
}

// ReflectionCache memoizes the exported fields of struct types.
type ReflectionCache struct {
	mu         sync.RWMutex
	fieldCache map[reflect.Type][]FieldInfo
}

func NewReflectionCache() *ReflectionCache {
	return &ReflectionCache{
		fieldCache: make(map[reflect.Type][]FieldInfo),
	}
}

// GetFields returns the exported fields of t in declaration order. Pointer
// fields report their element type. Non-struct types have no fields.
func (rc *ReflectionCache) GetFields(t reflect.Type) []FieldInfo {
	rc.mu.RLock()
	cached, ok := rc.fieldCache[t]
	rc.mu.RUnlock()
	if ok {
		return cached
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if cached, ok := rc.fieldCache[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}

			fieldType := field.Type
			isPointer := fieldType.Kind() == reflect.Ptr
			if isPointer {
				fieldType = fieldType.Elem()
			}

			fields = append(fields, FieldInfo{
				Name:      field.Name,
				Type:      fieldType,
				Index:     i,
				IsPointer: isPointer,
			})
		}
	}

	rc.fieldCache[t] = fields
	return fields
}

var globalReflectionCache = NewReflectionCache()
