// Package marker declares the two markers the scan engine understands.
//
// A registrar is marked by declaring a field of type Registrar[T], by
// convention the blank field:
//
//	type Widgets struct {
//		_ marker.Registrar[*Widget]
//
//		RedWidget *Widget
//		BlueOne   *Widget `autoreg:"blue_widget"`
//	}
//
// A member is marked by the `autoreg` struct tag. The tag's presence is the
// marker; its value is the explicit local name, or empty (Derive) to derive
// the name from the field identifier.
package marker

import "reflect"

// TagName is the struct tag key carrying the member marker.
const TagName = "autoreg"

// Derive is the explicit-name sentinel meaning "derive from the identifier".
const Derive = ""

// Kinded is implemented by registrar marker types.
type Kinded interface {
	ContentKind() reflect.Type
}

// Registrar marks the enclosing struct as a registrar of content kind T.
type Registrar[T any] struct{}

// ContentKind returns the type of values the registrar may register.
func (Registrar[T]) ContentKind() reflect.Type {
	return reflect.TypeFor[T]()
}

var kindedType = reflect.TypeFor[Kinded]()

// IsRegistrarField reports whether a struct field of type t is a registrar
// marker, returning its content kind.
func IsRegistrarField(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || !t.Implements(kindedType) {
		return nil, false
	}
	k, ok := reflect.Zero(t).Interface().(Kinded)
	if !ok {
		return nil, false
	}
	return k.ContentKind(), true
}

// Member is the parsed member marker of a field.
type Member struct {
	// ExplicitName is the override name, or Derive.
	ExplicitName string
}

// Named reports whether the marker carries an explicit name.
func (m Member) Named() bool {
	return m.ExplicitName != Derive
}

// ParseTag reads the member marker from a struct tag. The boolean is false
// when the field carries no marker at all.
func ParseTag(tag reflect.StructTag) (*Member, bool) {
	v, ok := tag.Lookup(TagName)
	if !ok {
		return nil, false
	}
	return &Member{ExplicitName: v}, true
}
