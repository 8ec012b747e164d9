package engine

import (
	"context"
	"reflect"

	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/provider"
	"github.com/vk/autoreg/internal/scanerr"
)

// ScanIntoMap scans t into a caller-owned map. V must be the registrar's
// content kind or a type it is assignable to.
func ScanIntoMap[V any](ctx context.Context, b *Block, t reflect.Type, m map[string]V) (Result, error) {
	return b.Scan(ctx, t, provider.NewMap(m))
}

// ScanIntoRegistry scans t into an external store. An immutable store fails
// with a ProviderRegistrationError before any member is visited.
func ScanIntoRegistry[V any](ctx context.Context, b *Block, t reflect.Type, store provider.Store[V]) (Result, error) {
	p, err := provider.NewRegistry(store)
	if err != nil {
		return Result{}, &scanerr.ProviderRegistrationError{Registrar: meta.TypeName(t), Err: err}
	}
	return b.Scan(ctx, t, p)
}

// ScanType scans the registrar type R.
func ScanType[R any](ctx context.Context, b *Block, p provider.Provider) (Result, error) {
	return b.Scan(ctx, reflect.TypeFor[R](), p)
}
