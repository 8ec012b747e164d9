package meta

import "reflect"

// TableEntry is the hand-written metadata of one registrar type.
type TableEntry struct {
	Type reflect.Type
	// Kind is the registrar content kind. Nil means the type carries no
	// registrar marker.
	Kind reflect.Type
	// Instance is the singleton. Nil means no instance is bound.
	Instance any
	Members  []Member
}

// Table is a Facility served from explicit registration tables.
type Table struct {
	entries map[reflect.Type]TableEntry
}

// NewTable builds a table facility. Later entries replace earlier ones for
// the same type.
func NewTable(entries ...TableEntry) *Table {
	t := &Table{entries: make(map[reflect.Type]TableEntry, len(entries))}
	for _, e := range entries {
		t.entries[e.Type] = e
	}
	return t
}

// RegistrarMarker implements Facility.
func (t *Table) RegistrarMarker(typ reflect.Type) (RegistrarMarker, bool) {
	e, ok := t.entries[typ]
	if !ok || e.Kind == nil {
		return RegistrarMarker{}, false
	}
	return RegistrarMarker{ContentKind: e.Kind}, true
}

// Instance implements Facility.
func (t *Table) Instance(typ reflect.Type) (any, error) {
	e, ok := t.entries[typ]
	if !ok || e.Instance == nil {
		return nil, ErrNoInstance
	}
	return e.Instance, nil
}

// Describe implements Facility.
func (t *Table) Describe(typ reflect.Type, _ any) ([]Member, error) {
	e, ok := t.entries[typ]
	if !ok {
		return nil, ErrNoInstance
	}
	out := make([]Member, len(e.Members))
	copy(out, e.Members)
	return out, nil
}
