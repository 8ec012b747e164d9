package meta

import (
	"fmt"
	"reflect"
)

// Instances is an explicit singleton registry. Each registrar type resolves
// to exactly one bound instance.
type Instances struct {
	byType map[reflect.Type]any
	order  []reflect.Type
}

// NewInstances creates an empty singleton registry.
func NewInstances() *Instances {
	return &Instances{byType: make(map[reflect.Type]any)}
}

// Bind registers instance as the canonical instance of its struct type.
// The instance must be a non-nil pointer to a struct.
func (i *Instances) Bind(instance any) error {
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("instance must be a non-nil pointer to a struct, got %T", instance)
	}
	t := rv.Type().Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("instance must be a non-nil pointer to a struct, got %T", instance)
	}
	if _, exists := i.byType[t]; exists {
		return fmt.Errorf("instance for type '%s' already bound", t)
	}
	i.byType[t] = instance
	i.order = append(i.order, t)
	return nil
}

// Lookup returns the instance bound for t. Pointer types resolve to their
// element type.
func (i *Instances) Lookup(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	inst, ok := i.byType[t]
	return inst, ok
}

// Types returns the bound types in bind order.
func (i *Instances) Types() []reflect.Type {
	out := make([]reflect.Type, len(i.order))
	copy(out, i.order)
	return out
}
