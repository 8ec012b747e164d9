// Package hooks implements the observation channels fired during registrar
// scans.
//
// A Bus belongs to one engine instance. Listeners are called synchronously,
// in subscription order; the first listener error stops the remaining
// listeners of that event and is returned to the scan, which aborts.
package hooks

import (
	"context"
	"reflect"

	"github.com/vk/autoreg/internal/meta"
	"github.com/vk/autoreg/internal/policy"
	"github.com/vk/autoreg/internal/provider"
)

// MemberEvent is fired after a member was registered.
type MemberEvent struct {
	Registrar reflect.Type
	Kind      reflect.Type
	Mode      policy.Mode
	Namespace string
	Provider  provider.Provider
	Member    meta.Member
	Key       string
}

// ScanEvent is fired once after a registrar scan completed.
type ScanEvent struct {
	Registrar  reflect.Type
	Kind       reflect.Type
	Mode       policy.Mode
	Namespace  string
	Provider   provider.Provider
	Registered []string
}

// MemberFunc listens for member registrations.
type MemberFunc func(ctx context.Context, e MemberEvent) error

// ScanFunc listens for completed scans.
type ScanFunc func(ctx context.Context, e ScanEvent) error

// Listener subscribes to both channels.
type Listener interface {
	MemberRegistered(ctx context.Context, e MemberEvent) error
	ScanCompleted(ctx context.Context, e ScanEvent) error
}

// Bus holds the subscribed listeners. A nil Bus has no listeners.
type Bus struct {
	members []MemberFunc
	scans   []ScanFunc
}

// NewBus creates a bus with no listeners.
func NewBus() *Bus {
	return &Bus{}
}

// OnMember subscribes fn to member registrations.
func (b *Bus) OnMember(fn MemberFunc) {
	b.members = append(b.members, fn)
}

// OnScan subscribes fn to completed scans.
func (b *Bus) OnScan(fn ScanFunc) {
	b.scans = append(b.scans, fn)
}

// Subscribe subscribes l to both channels.
func (b *Bus) Subscribe(l Listener) {
	b.OnMember(l.MemberRegistered)
	b.OnScan(l.ScanCompleted)
}

// EmitMember notifies member listeners.
func (b *Bus) EmitMember(ctx context.Context, e MemberEvent) error {
	if b == nil {
		return nil
	}
	for _, fn := range b.members {
		if err := fn(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// EmitScan notifies scan listeners.
func (b *Bus) EmitScan(ctx context.Context, e ScanEvent) error {
	if b == nil {
		return nil
	}
	for _, fn := range b.scans {
		if err := fn(ctx, e); err != nil {
			return err
		}
	}
	return nil
}
