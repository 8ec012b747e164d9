// Package registry provides the in-process content registry populated by
// registrar scans.
//
// A Registry maps registration keys (e.g., "mymod:redwidget") to content
// values and remembers insertion order. It is mutable until frozen. Once the
// application finishes its startup scans it freezes the registry, and any
// further write is rejected, which surfaces to a scan as a provider failure.
package registry
