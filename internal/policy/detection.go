// Package policy holds the detection rules deciding which registrar members
// are registered and the naming rules deriving their keys.
package policy

import (
	"fmt"
	"reflect"

	"github.com/vk/autoreg/internal/meta"
)

// Mode is the detection policy of a scan. The zero value scans every member;
// DefaultMode restricts scanning to exported members.
type Mode struct {
	// PublicOnly excludes unexported members.
	PublicOnly bool
	// AnnotatedOnly excludes members without a member marker.
	AnnotatedOnly bool
	// NamedOnly excludes members without a marker carrying an explicit name.
	NamedOnly bool
}

// DefaultMode returns the detection policy used when none is configured.
func DefaultMode() Mode {
	return Mode{PublicOnly: true}
}

// String renders the mode for logs.
func (m Mode) String() string {
	return fmt.Sprintf("public_only=%t annotated_only=%t named_only=%t", m.PublicOnly, m.AnnotatedOnly, m.NamedOnly)
}

// Reason names the check that excluded a member.
type Reason string

const (
	Included     Reason = ""
	NotPublic    Reason = "not public"
	NotAnnotated Reason = "no member marker"
	NotNamed     Reason = "no explicit name"
	KindMismatch Reason = "content kind mismatch"
)

// Include applies the detection checks to m in order, stopping at the first
// exclusion. The kind check applies regardless of the mode's flags.
func (m Mode) Include(member meta.Member, kind reflect.Type) (bool, Reason) {
	if m.PublicOnly && !member.Exported {
		return false, NotPublic
	}
	if m.AnnotatedOnly && !member.HasMarker() {
		return false, NotAnnotated
	}
	if m.NamedOnly {
		if !member.HasMarker() {
			return false, NotAnnotated
		}
		if !member.Marker.Named() {
			return false, NotNamed
		}
	}
	if !MatchesKind(member, kind) {
		return false, KindMismatch
	}
	return true, Included
}

// MatchesKind reports whether the member's value can be registered as kind.
// The declared type decides; a member declared as an interface falls back
// to the dynamic type of its current value.
func MatchesKind(member meta.Member, kind reflect.Type) bool {
	if kind == nil {
		return false
	}
	if member.Type != nil && member.Type.AssignableTo(kind) {
		return true
	}
	if member.Type != nil && member.Type.Kind() != reflect.Interface {
		return false
	}
	if member.Value == nil {
		return false
	}
	v, ok := member.Value()
	if !ok {
		return false
	}
	return reflect.TypeOf(v).AssignableTo(kind)
}
