package meta

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/vk/autoreg/internal/marker"
)

// Reflect is a Facility backed by runtime reflection over struct types.
// Singleton instances come from the supplied Instances registry.
type Reflect struct {
	instances *Instances
}

// NewReflect creates a reflection facility resolving instances from inst.
func NewReflect(inst *Instances) *Reflect {
	if inst == nil {
		inst = NewInstances()
	}
	return &Reflect{instances: inst}
}

// Instances returns the singleton registry used by the facility.
func (r *Reflect) Instances() *Instances {
	return r.instances
}

func structType(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

// RegistrarMarker implements Facility. A type declaring more than one
// registrar marker field reports no marker.
func (r *Reflect) RegistrarMarker(t reflect.Type) (RegistrarMarker, bool) {
	st, ok := structType(t)
	if !ok {
		return RegistrarMarker{}, false
	}
	var found []reflect.Type
	for i := 0; i < st.NumField(); i++ {
		if kind, ok := marker.IsRegistrarField(st.Field(i).Type); ok {
			found = append(found, kind)
		}
	}
	if len(found) != 1 {
		return RegistrarMarker{}, false
	}
	return RegistrarMarker{ContentKind: found[0]}, true
}

// Instance implements Facility.
func (r *Reflect) Instance(t reflect.Type) (any, error) {
	if _, ok := structType(t); !ok {
		return nil, ErrNotStruct
	}
	inst, ok := r.instances.Lookup(t)
	if !ok {
		return nil, ErrNoInstance
	}
	return inst, nil
}

// Describe implements Facility.
func (r *Reflect) Describe(t reflect.Type, instance any) ([]Member, error) {
	st, ok := structType(t)
	if !ok {
		return nil, ErrNotStruct
	}
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Type().Elem() != st {
		return nil, fmt.Errorf("instance %T does not point to %s", instance, st)
	}
	rv = rv.Elem()

	members := make([]Member, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if field.Name == "_" {
			continue
		}
		if _, ok := marker.IsRegistrarField(field.Type); ok {
			continue
		}
		m := Member{
			Name:     field.Name,
			Exported: field.IsExported(),
			Type:     field.Type,
			Value:    fieldAccessor(rv.Field(i)),
		}
		if mm, ok := marker.ParseTag(field.Tag); ok {
			m.Marker = mm
		}
		members = append(members, m)
	}
	return members, nil
}

// fieldAccessor reads a field of an addressable struct, including
// unexported fields.
func fieldAccessor(f reflect.Value) func() (any, bool) {
	return func() (any, bool) {
		v := f
		if !v.CanInterface() {
			v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
		}
		if isNil(v) {
			return nil, false
		}
		return v.Interface(), true
	}
}
