package engine

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/vk/autoreg/internal/ctxlog"
	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/policy"
	"github.com/vk/autoreg/internal/provider"
	"github.com/vk/autoreg/internal/scanerr"
)

// Result describes a completed scan.
type Result struct {
	Registrar reflect.Type
	Kind      reflect.Type
	// Keys are the registered keys in member declaration order.
	Keys []string
}

// Scan registers the qualifying members of registrar t into p.
//
// Preconditions are checked in order: namespace, registrar marker, singleton
// instance. Members are then visited in declaration order; the first naming,
// value, provider or listener failure aborts the scan. Pairs registered
// before the failure stay registered. The completion hook fires once, only
// when every member was processed.
func (b *Block) Scan(ctx context.Context, t reflect.Type, p provider.Provider) (Result, error) {
	e := b.engine
	name := meta.TypeName(t)
	logger := e.logger
	if ctxlog.Has(ctx) {
		logger = ctxlog.FromContext(ctx)
	}
	logger = logger.With("scan_id", uuid.NewString(), "registrar", name, "namespace", b.namespace)

	if b.namespace == "" {
		return Result{}, &scanerr.NamespaceUnsetError{Registrar: name}
	}
	if p == nil {
		return Result{}, ErrNilProvider
	}
	rm, ok := e.facility.RegistrarMarker(t)
	if !ok {
		return Result{}, &scanerr.MissingRegistrarMarkerError{Registrar: name}
	}
	instance, err := e.facility.Instance(t)
	if err != nil {
		return Result{}, &scanerr.NotScannableSingletonError{Registrar: name, Reason: err}
	}
	members, err := e.facility.Describe(t, instance)
	if err != nil {
		return Result{}, &scanerr.NotScannableSingletonError{Registrar: name, Reason: err}
	}
	logger.Debug("Scanning registrar.", "kind", meta.TypeName(rm.ContentKind), "members", len(members), "mode", b.mode.String())

	keys := make([]string, 0, len(members))
	for _, member := range members {
		if include, reason := b.mode.Include(member, rm.ContentKind); !include {
			logger.Debug("Skipping member.", "member", member.Name, "reason", string(reason))
			continue
		}

		local, err := policy.LocalName(member)
		if err != nil {
			return Result{}, err
		}

		value, ok := member.Value()
		if !ok {
			return Result{}, &scanerr.MissingValueError{Registrar: name, Member: member.Name}
		}

		key := policy.Key(b.namespace, local)
		if err := p.Register(key, value); err != nil {
			return Result{}, &scanerr.ProviderRegistrationError{Registrar: name, Member: member.Name, Key: key, Err: err}
		}
		keys = append(keys, key)
		logger.Debug("Registered member.", "member", member.Name, "key", key)

		err = e.hooks.EmitMember(ctx, hooks.MemberEvent{
			Registrar: t,
			Kind:      rm.ContentKind,
			Mode:      b.mode,
			Namespace: b.namespace,
			Provider:  p,
			Member:    member,
			Key:       key,
		})
		if err != nil {
			return Result{}, &scanerr.HookError{Event: "member registered", Registrar: name, Err: err}
		}
	}

	err = e.hooks.EmitScan(ctx, hooks.ScanEvent{
		Registrar:  t,
		Kind:       rm.ContentKind,
		Mode:       b.mode,
		Namespace:  b.namespace,
		Provider:   p,
		Registered: keys,
	})
	if err != nil {
		return Result{}, &scanerr.HookError{Event: "scan completed", Registrar: name, Err: err}
	}

	logger.Info("Registrar scan complete.", slog.Int("registered", len(keys)))
	return Result{Registrar: t, Kind: rm.ContentKind, Keys: keys}, nil
}
