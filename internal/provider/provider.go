// Package provider contains the destinations a scan forwards (key, value)
// pairs to.
//
// Every provider performs an unchecked downcast of the value to its
// destination type V. The scan engine only forwards values that matched the
// registrar's content kind, so V must be that kind (or a type it is
// assignable to). Pairing a provider with a registrar of another kind is a
// programming error and panics.
package provider

import (
	"errors"
	"fmt"
)

// ErrImmutableStore is returned when a registry provider is built over a
// store that does not accept writes.
var ErrImmutableStore = errors.New("store is immutable")

// Provider accepts registration pairs.
type Provider interface {
	Register(key string, value any) error
}

// Map registers into a caller-owned map. Colliding keys are overwritten.
type Map[V any] struct {
	m map[string]V
}

// NewMap creates a provider writing into m, which must be non-nil.
func NewMap[V any](m map[string]V) *Map[V] {
	if m == nil {
		panic("provider: map must not be nil")
	}
	return &Map[V]{m: m}
}

// Register implements Provider.
func (p *Map[V]) Register(key string, value any) error {
	p.m[key] = value.(V)
	return nil
}

// Store is an external, key-addressable registry.
type Store[V any] interface {
	Put(key string, value V) error
	// Mutable reports whether the store accepts writes.
	Mutable() bool
}

// Registry forwards registrations to an external store.
type Registry[V any] struct {
	store Store[V]
}

// NewRegistry creates a provider over store. It fails if the store is
// immutable.
func NewRegistry[V any](store Store[V]) (*Registry[V], error) {
	if store == nil {
		return nil, errors.New("provider: store must not be nil")
	}
	if !store.Mutable() {
		return nil, fmt.Errorf("provider: cannot register into %T: %w", store, ErrImmutableStore)
	}
	return &Registry[V]{store: store}, nil
}

// Register implements Provider.
func (p *Registry[V]) Register(key string, value any) error {
	return p.store.Put(key, value.(V))
}

// Func forwards registrations to a callback.
type Func[V any] func(key string, value V) error

// Register implements Provider.
func (f Func[V]) Register(key string, value any) error {
	return f(key, value.(V))
}
