// Package registry owns the catalog of pattern examples.
//
// A Registry keeps examples in registration order and rejects duplicate
// names instead of overwriting them. Registration is a setup phase: once
// the process has registered every example it calls Seal, and from then
// on the registry is only read.
//
// Typical usage:
//
//	reg := registry.New()
//	registry.MustRegister(reg, patterntypes.NewExample("Singleton", patterntypes.Creational, demo))
//	reg.Seal()
//	for ex := range reg.ListByCategory(patterntypes.Creational) {
//	    ...
//	}
package registry
