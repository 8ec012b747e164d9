package meta

import (
	"errors"
	"reflect"

	"github.com/vk/autoreg/internal/marker"
)

var (
	// ErrNotStruct is returned when a type cannot hold members.
	ErrNotStruct = errors.New("type is not a struct")
	// ErrNoInstance is returned when no singleton is bound for a type.
	ErrNoInstance = errors.New("no instance bound for type")
)

// Facility exposes the structural metadata the scan engine needs.
type Facility interface {
	// RegistrarMarker returns the type-level marker, if the type carries
	// exactly one.
	RegistrarMarker(t reflect.Type) (RegistrarMarker, bool)
	// Instance resolves the single process-wide instance of t.
	Instance(t reflect.Type) (any, error)
	// Describe enumerates the declared members of t, read from instance,
	// in declaration order. Marker fields are not members.
	Describe(t reflect.Type, instance any) ([]Member, error)
}

// RegistrarMarker is the type-level marker of a registrar.
type RegistrarMarker struct {
	// ContentKind is the type values must match to be registered.
	ContentKind reflect.Type
}

// Member is a single declared member of a registrar type.
type Member struct {
	Name     string
	Exported bool
	// Marker is nil when the member carries no member marker.
	Marker *marker.Member
	// Type is the declared type of the member.
	Type reflect.Type
	// Value reads the member. The boolean is false when the value is absent.
	Value func() (any, bool)
}

// HasMarker reports whether the member carries a member marker.
func (m Member) HasMarker() bool {
	return m.Marker != nil
}

// ExplicitName returns the marker's explicit name, or marker.Derive.
func (m Member) ExplicitName() string {
	if m.Marker == nil {
		return marker.Derive
	}
	return m.Marker.ExplicitName
}

// Const returns a value accessor for a fixed value. A nil value is absent.
func Const(v any) func() (any, bool) {
	return func() (any, bool) {
		if v == nil || isNil(reflect.ValueOf(v)) {
			return nil, false
		}
		return v, true
	}
}

// TypeName renders t for error messages and logs.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
