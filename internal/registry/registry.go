package registry

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrDuplicateKey is returned when a key is registered twice.
	ErrDuplicateKey = errors.New("key already registered")
	// ErrFrozen is returned when writing to a frozen registry.
	ErrFrozen = errors.New("registry is frozen")
)

// Registry holds registered content values keyed by registration key.
type Registry[V any] struct {
	entries map[string]V
	order   []string
	frozen  bool
}

// New creates and initializes a new, mutable Registry instance.
func New[V any]() *Registry[V] {
	return &Registry[V]{
		entries: make(map[string]V),
	}
}

// Put registers value under key. Keys are unique; a frozen registry rejects
// every write.
func (r *Registry[V]) Put(key string, value V) error {
	if r.frozen {
		return fmt.Errorf("cannot register '%s': %w", key, ErrFrozen)
	}
	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("cannot register '%s': %w", key, ErrDuplicateKey)
	}
	slog.Debug("Registering content.", "key", key)
	r.entries[key] = value
	r.order = append(r.order, key)
	return nil
}

// Mutable reports whether the registry still accepts writes.
func (r *Registry[V]) Mutable() bool {
	return !r.frozen
}

// Freeze makes the registry read-only.
func (r *Registry[V]) Freeze() {
	r.frozen = true
}

// Get returns the value registered under key.
func (r *Registry[V]) Get(key string) (V, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// Keys returns all keys in registration order.
func (r *Registry[V]) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered entries.
func (r *Registry[V]) Len() int {
	return len(r.order)
}

// Snapshot returns an immutable view of the current contents.
func (r *Registry[V]) Snapshot() *Frozen[V] {
	entries := make(map[string]V, len(r.entries))
	for k, v := range r.entries {
		entries[k] = v
	}
	return &Frozen[V]{entries: entries, order: r.Keys()}
}

// Frozen is a read-only registry view. It satisfies the store contract but
// reports itself immutable, so providers refuse to wrap it.
type Frozen[V any] struct {
	entries map[string]V
	order   []string
}

// Put always fails.
func (f *Frozen[V]) Put(key string, _ V) error {
	return fmt.Errorf("cannot register '%s': %w", key, ErrFrozen)
}

// Mutable always reports false.
func (f *Frozen[V]) Mutable() bool {
	return false
}

// Get returns the value registered under key.
func (f *Frozen[V]) Get(key string) (V, bool) {
	v, ok := f.entries[key]
	return v, ok
}

// Keys returns all keys in registration order.
func (f *Frozen[V]) Keys() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}
