// Package engine is the scan-and-register engine.
//
// An Engine pairs a metadata facility with an observation hook bus. Callers
// open a configuration Block with a detection mode and a namespace, then scan
// one or more registrar types into registration providers:
//
//	eng, _ := engine.New(meta.NewReflect(instances))
//	err := eng.Configure(engine.Options{Namespace: "mymod"}, func(b *engine.Block) error {
//		_, err := engine.ScanIntoMap(ctx, b, reflect.TypeFor[widgets.Widgets](), widgetsByKey)
//		return err
//	})
//
// A scan is synchronous, single pass and terminal on its first error. It is
// meant to run once at startup, before the populated stores are read.
package engine
