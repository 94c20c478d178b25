// Package resolve maps runtime type descriptors to symbols of a catalog.
//
// Resolution reconciles two naming universes: descriptors name the module a
// type was loaded from at run time, while the catalog holds the modules the
// generated code compiles against. The standard library is split differently
// in the two, so core-library types are looked up in the core module first,
// then in the collections module, and types relocated after a library split
// are followed to the module named by their forward redirect.
package resolve

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/internal/metaname"
	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/symbols"
)

// DefaultCoreAliases are the historical names of the module containing the
// root object type.
var DefaultCoreAliases = []string{"mscorlib", "System.Runtime", "System.Private.CoreLib"}

// DefaultSequenceInterface is the full name of the non-generic sequence
// capability that gates the collections-module fallback.
const DefaultSequenceInterface = "System.Collections.IEnumerable"

// ResolvedType pairs a descriptor with the symbol it resolved to.
type ResolvedType struct {
	Descriptor ir.TypeDescriptor
	Symbol     symbols.Symbol
}

// String returns the qualified symbol name.
func (r ResolvedType) String() string {
	if r.Symbol == nil {
		return "<unresolved>"
	}
	return r.Symbol.String()
}

// Options configures a Resolver.
type Options struct {
	// CoreAliases lists module names treated as synonyms for the core
	// module. Default: DefaultCoreAliases.
	CoreAliases []string

	// SequenceInterface is the full name of the sequence capability.
	// Default: DefaultSequenceInterface.
	SequenceInterface string

	// Logger receives debug output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Resolver finds catalog symbols for type descriptors. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	cat      *catalog.Catalog
	aliases  map[string]bool
	sequence string
	logger   *slog.Logger
}

// New returns a resolver over cat.
func New(cat *catalog.Catalog, opts Options) (*Resolver, error) {
	if cat == nil {
		return nil, errors.New("resolve: nil catalog")
	}
	if opts.CoreAliases == nil {
		opts.CoreAliases = DefaultCoreAliases
	}
	if opts.SequenceInterface == "" {
		opts.SequenceInterface = DefaultSequenceInterface
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	aliases := make(map[string]bool, len(opts.CoreAliases))
	for _, a := range opts.CoreAliases {
		key, ok := metaname.ModuleKey(a)
		if !ok {
			return nil, fmt.Errorf("resolve: core alias: %w", &catalog.ModuleNameError{Name: a})
		}
		aliases[key] = true
	}
	return &Resolver{
		cat:      cat,
		aliases:  aliases,
		sequence: opts.SequenceInterface,
		logger:   opts.Logger,
	}, nil
}

// Resolve returns the symbol matching td. It reports false if the type is
// absent from the catalog; absence is expected for runtime-only types and is
// never an error. Nil descriptors and descriptors containing a type
// parameter anywhere are never found. A descriptor whose origin module name is malformed is a
// contract violation and panics with a *catalog.ModuleNameError.
func (r *Resolver) Resolve(td ir.TypeDescriptor) (ResolvedType, bool) {
	if ir.HasTypeParam(td) {
		return ResolvedType{}, false
	}
	sym, ok := r.resolve(td)
	if !ok {
		r.logger.Debug("type not found",
			slog.String("type", td.FullName()),
			slog.String("module", td.Module()))
		return ResolvedType{}, false
	}
	r.logger.Debug("type resolved",
		slog.String("type", td.FullName()),
		slog.String("symbol", sym.String()))
	return ResolvedType{Descriptor: td, Symbol: sym}, true
}

func (r *Resolver) resolve(td ir.TypeDescriptor) (symbols.Symbol, bool) {
	origin := td.Module()

	if r.isCore(origin) {
		if core := r.cat.Core(); core != nil {
			if sym, ok := r.resolveIn(core, td); ok {
				return sym, true
			}
		}
		if coll := r.cat.Collections(); coll != nil && r.isSequence(td) {
			if sym, ok := r.resolveIn(coll, td); ok {
				return sym, true
			}
		}
	}

	if fwd := ir.ForwardOf(td); fwd != nil {
		r.logger.Debug("following forward redirect",
			slog.String("type", td.FullName()),
			slog.String("from", origin),
			slog.String("to", fwd.Module))
		origin = fwd.Module
	}

	m, ok := r.cat.Lookup(origin)
	if !ok {
		return nil, false
	}
	return r.resolveIn(m, td)
}

// resolveIn resolves td by name inside m. Array elements are resolved in the
// same module; generic arguments go through the full algorithm since they
// may come from any module.
func (r *Resolver) resolveIn(m *symbols.Module, td ir.TypeDescriptor) (symbols.Symbol, bool) {
	switch d := td.(type) {
	case *ir.ArrayDescriptor:
		elem, ok := r.resolveIn(m, d.Element)
		if !ok {
			return nil, false
		}
		return symbols.ArrayOf(elem), true
	case *ir.GenericDescriptor:
		def, ok := m.LookupType(d.Definition.FullName())
		if !ok {
			return nil, false
		}
		args := make([]symbols.Symbol, len(d.Args))
		for i, a := range d.Args {
			sym, ok := r.resolve(a)
			if !ok {
				return nil, false
			}
			args[i] = sym
		}
		sym, err := def.Construct(args...)
		if err != nil {
			r.logger.Debug("cannot construct generic",
				slog.String("type", td.FullName()),
				slog.String("error", err.Error()))
			return nil, false
		}
		return sym, true
	case *ir.NamedDescriptor, *ir.NestedDescriptor:
		sym, ok := m.LookupType(td.FullName())
		if !ok {
			return nil, false
		}
		return sym, true
	default:
		return nil, false
	}
}

func (r *Resolver) isCore(module string) bool {
	key, ok := metaname.ModuleKey(module)
	return ok && r.aliases[key]
}

// isSequence is a broad test: any array or any type implementing the
// sequence interface qualifies, not only the types moved by the split.
func (r *Resolver) isSequence(td ir.TypeDescriptor) bool {
	if td.Kind() == ir.KindArray {
		return true
	}
	return ir.Implements(td, r.sequence)
}
