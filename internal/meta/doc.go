// Package meta is the metadata facility consumed by the scan engine.
//
// Given a registrar type, a Facility reports whether the type carries a
// registrar marker, resolves the type's single canonical instance, and
// enumerates the type's declared members in declaration order. The engine is
// agnostic to how the metadata is obtained: Reflect reads struct fields and
// tags at runtime, Table serves explicit hand-written tables.
package meta
