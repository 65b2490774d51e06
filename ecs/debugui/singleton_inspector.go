package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/quadblox/ecs"
)

// SingletonInspector renders every singleton in a storage as a tree of
// editable fields. Edits are written straight into the stored value, except
// for types marked read-only.
type SingletonInspector struct {
	storage  *ecs.Storage
	readOnly map[reflect.Type]bool
}

func NewSingletonInspector(storage *ecs.Storage) *SingletonInspector {
	return &SingletonInspector{storage: storage, readOnly: make(map[reflect.Type]bool)}
}

// ReadOnly shows the singletons of the given types without edit widgets.
func (si *SingletonInspector) ReadOnly(types ...reflect.Type) {
	for _, typ := range types {
		si.readOnly[typ] = true
	}
}

// Editable reports whether singletons of typ get edit widgets.
func (si *SingletonInspector) Editable(typ reflect.Type) bool {
	return !si.readOnly[typ]
}

func (si *SingletonInspector) Render() {
	if !imgui.BeginV("Singleton Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	empty := true
	for typ, val := range si.storage.Singletons() {
		empty = false
		if imgui.TreeNodeStr(typ.String()) {
			if si.Editable(typ) {
				si.renderStruct(typ.String(), val)
			} else {
				si.renderReadOnly(val)
			}
			imgui.TreePop()
		}
	}
	if empty {
		imgui.Text("No singletons")
	}

	imgui.End()
}

func (si *SingletonInspector) renderStruct(path string, val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		fieldVal := val.Field(field.Index)
		if field.IsPointer {
			if fieldVal.IsNil() {
				imgui.Text(fmt.Sprintf("%s: nil", field.Name))
				continue
			}
			fieldVal = fieldVal.Elem()
		}
		si.renderField(path+"."+field.Name, field.Name, fieldVal)
	}
}

func (si *SingletonInspector) renderField(path, name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	id := "##" + path
	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(id, &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(id, &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name+id, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(id, "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name + id) {
			si.renderStruct(path, val)
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	case reflect.Func, reflect.Chan, reflect.Interface:
		imgui.Text(fmt.Sprintf("%s: %s", name, val.Type()))

	default:
		imgui.Text(fmt.Sprintf("%s: %v", name, val.Interface()))
	}
}

func (si *SingletonInspector) renderReadOnly(val reflect.Value) {
	for _, field := range globalReflectionCache.GetFields(val.Type()) {
		imgui.Text(fmt.Sprintf("%s: %+v", field.Name, val.Field(field.Index).Interface()))
	}
}
