// Package typebridge maps runtime type descriptors onto a static symbolic
// model of modules and derives the canonical names generated code uses for
// them.
//
// A Bridge is built once from a configuration and the set of known modules:
//
//	cfg, err := config.Load("typebridge.yaml")
//	...
//	b, err := typebridge.New(cfg, entries)
//	...
//	rt, ok := b.Resolve(td)
//	if !ok {
//	    // unsupported type, skip it
//	}
//	name := b.UniqueCompilableName(td)
//
// Absence is reported with a false result and is not an error. Passing an
// open generic type to a naming method is a programming error and panics;
// use NamesOf or naming.CheckBound to validate untrusted descriptors.
package typebridge
