package naming

import (
	"errors"
	"fmt"

	"github.com/broady/typebridge/internal/metaname"
	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/resolve"
)

// DefaultRootObject is the full name of the type that terminates base-type walks.
const DefaultRootObject = "System.Object"

// Options configures a Canonicalizer.
type Options struct {
	// NullableDefinition is the one-parameter generic definition that wraps
	// nullable value types. Descriptors cannot identify it structurally, so
	// it must be supplied. Required.
	NullableDefinition ir.TypeDescriptor

	// CoreAliases are module names that all mean the core module. A nullable
	// instantiation whose definition comes from any of them matches a
	// definition from any other. Default: resolve.DefaultCoreAliases.
	CoreAliases []string

	// RootObject is the full name of the root object type.
	// Default: DefaultRootObject.
	RootObject string
}

// Canonicalizer answers the type-shape questions that depend on
// caller-supplied identities. It is immutable and safe for concurrent use.
type Canonicalizer struct {
	nullable ir.TypeDescriptor
	core     map[string]bool // folded simple module names
	root     string
}

// NewCanonicalizer returns a Canonicalizer for opts.
func NewCanonicalizer(opts Options) (*Canonicalizer, error) {
	if opts.NullableDefinition == nil {
		return nil, errors.New("naming: nullable definition is required")
	}
	if n := ir.Arity(opts.NullableDefinition); n != 1 {
		return nil, fmt.Errorf("naming: nullable definition %s must declare one type parameter, has %d", opts.NullableDefinition.FullName(), n)
	}
	if opts.RootObject == "" {
		opts.RootObject = DefaultRootObject
	}
	if opts.CoreAliases == nil {
		opts.CoreAliases = resolve.DefaultCoreAliases
	}

	core := make(map[string]bool, len(opts.CoreAliases))
	for _, a := range opts.CoreAliases {
		key, ok := metaname.ModuleKey(a)
		if !ok {
			return nil, fmt.Errorf("naming: malformed core alias %q", a)
		}
		core[key] = true
	}
	return &Canonicalizer{nullable: opts.NullableDefinition, core: core, root: opts.RootObject}, nil
}

// IsNullableValueType reports whether td instantiates the nullable wrapper
// and returns the wrapped type. When the configured definition lives in a
// core module, a definition from any core alias matches it.
func (c *Canonicalizer) IsNullableValueType(td ir.TypeDescriptor) (ir.TypeDescriptor, bool) {
	g, ok := td.(*ir.GenericDescriptor)
	if !ok || len(g.Args) != 1 || !c.isNullableDefinition(g.Definition) {
		return nil, false
	}
	return g.Args[0], true
}

func (c *Canonicalizer) isNullableDefinition(def ir.TypeDescriptor) bool {
	if ir.Identical(def, c.nullable) {
		return true
	}
	if def == nil || def.Kind() != c.nullable.Kind() || def.FullName() != c.nullable.FullName() {
		return false
	}
	return c.isCore(def.Module()) && c.isCore(c.nullable.Module())
}

func (c *Canonicalizer) isCore(module string) bool {
	key, ok := metaname.ModuleKey(module)
	return ok && c.core[key]
}

// CompatibleBaseClass walks from td up its base chain and returns the first
// type whose full name is fullName. The root object type ends the walk and
// is never returned. It returns nil if no such type exists.
func (c *Canonicalizer) CompatibleBaseClass(td ir.TypeDescriptor, fullName string) ir.TypeDescriptor {
	for cur := td; cur != nil && cur.FullName() != c.root; cur = ir.BaseType(cur) {
		if cur.FullName() == fullName {
			return cur
		}
	}
	return nil
}
