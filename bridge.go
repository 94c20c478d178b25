package typebridge

import (
	"fmt"
	"log/slog"

	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/collections"
	"github.com/broady/typebridge/config"
	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/naming"
	"github.com/broady/typebridge/resolve"
)

// Bridge is the query service exposed to code emitters. It owns one
// catalog, resolver, canonicalizer and collection cache, all built from
// an explicit configuration. A Bridge is safe for concurrent use.
type Bridge struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	resolver *resolve.Resolver
	canon    *naming.Canonicalizer
	cache    *collections.Cache
	logger   *slog.Logger
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithLogger sets the logger. If not set, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) { b.logger = l }
}

// New builds a Bridge over the given modules.
func New(cfg config.Config, entries []catalog.Entry, opts ...Option) (*Bridge, error) {
	b := &Bridge{cfg: cfg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := catalog.New(entries, catalog.Options{
		CollectionsModule: cfg.CollectionsModule,
		RootObjectType:    cfg.RootObjectType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	b.catalog = cat

	b.resolver, err = resolve.New(cat, resolve.Options{
		CoreAliases:       cfg.CoreModuleAliases,
		SequenceInterface: cfg.SequenceInterface,
		Logger:            b.logger,
	})
	if err != nil {
		return nil, err
	}

	defs := make(map[string]ir.TypeDescriptor, 4)
	for _, name := range []string{
		cfg.NullableDefinition,
		cfg.ListDefinition,
		cfg.SequenceDefinition,
		cfg.IndexableListDefinition,
	} {
		td, err := ir.ParseName(name, cfg.StandardModule)
		if err != nil {
			return nil, fmt.Errorf("invalid definition %q: %w", name, err)
		}
		defs[name] = td
	}

	b.canon, err = naming.NewCanonicalizer(naming.Options{
		NullableDefinition: defs[cfg.NullableDefinition],
		CoreAliases:        cfg.CoreModuleAliases,
		RootObject:         cfg.RootObjectType,
	})
	if err != nil {
		return nil, err
	}
	b.cache, err = collections.NewCache(collections.Definitions{
		List:          defs[cfg.ListDefinition],
		Sequence:      defs[cfg.SequenceDefinition],
		IndexableList: defs[cfg.IndexableListDefinition],
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{slog.Int("modules", cat.Len())}
	if core := cat.Core(); core != nil {
		attrs = append(attrs, slog.String("core", core.Name()))
	} else {
		b.logger.Warn("no module defines the root object type", slog.String("type", cfg.RootObjectType))
	}
	if coll := cat.Collections(); coll != nil {
		attrs = append(attrs, slog.String("collections", coll.Name()))
	}
	b.logger.Debug("bridge ready", attrs...)
	return b, nil
}

// Config returns the configuration the bridge was built with.
func (b *Bridge) Config() config.Config { return b.cfg }

// Catalog returns the module catalog.
func (b *Bridge) Catalog() *catalog.Catalog { return b.catalog }

// Logger returns the bridge logger.
func (b *Bridge) Logger() *slog.Logger { return b.logger }

// Resolve finds the catalog symbol for td. See resolve.Resolver.Resolve.
func (b *Bridge) Resolve(td ir.TypeDescriptor) (resolve.ResolvedType, bool) {
	return b.resolver.Resolve(td)
}

// CompilableName returns the short compilable name of td.
// It panics with *naming.OpenGenericError if td is not bound.
func (b *Bridge) CompilableName(td ir.TypeDescriptor) string { return naming.CompilableName(td) }

// UniqueCompilableName returns the fully qualified compilable name of td.
// It panics with *naming.OpenGenericError if td is not bound.
func (b *Bridge) UniqueCompilableName(td ir.TypeDescriptor) string {
	return naming.UniqueCompilableName(td)
}

// FriendlyName returns the short identifier-safe name of td.
func (b *Bridge) FriendlyName(td ir.TypeDescriptor) string { return naming.FriendlyName(td) }

// UniqueFriendlyName returns the fully qualified identifier-safe name of td.
func (b *Bridge) UniqueFriendlyName(td ir.TypeDescriptor) string {
	return naming.UniqueFriendlyName(td)
}

// IsNullableValueType reports whether td wraps a nullable value type and
// returns the wrapped type.
func (b *Bridge) IsNullableValueType(td ir.TypeDescriptor) (ir.TypeDescriptor, bool) {
	return b.canon.IsNullableValueType(td)
}

// CompatibleBaseClass returns the type named fullName on td's base chain,
// or nil.
func (b *Bridge) CompatibleBaseClass(td ir.TypeDescriptor, fullName string) ir.TypeDescriptor {
	return b.canon.CompatibleBaseClass(td, fullName)
}

// Names holds every canonical name of one type.
type Names struct {
	Compilable       string `json:"compilable"`
	UniqueCompilable string `json:"uniqueCompilable"`
	Friendly         string `json:"friendly"`
	UniqueFriendly   string `json:"uniqueFriendly"`
}

// NamesOf returns all names of td, or an error if td is not bound.
// Unlike the individual name methods it never panics.
func (b *Bridge) NamesOf(td ir.TypeDescriptor) (Names, error) {
	if err := naming.CheckBound(td); err != nil {
		return Names{}, err
	}
	return Names{
		Compilable:       naming.CompilableName(td),
		UniqueCompilable: naming.UniqueCompilableName(td),
		Friendly:         naming.FriendlyName(td),
		UniqueFriendly:   naming.UniqueFriendlyName(td),
	}, nil
}

// Collection returns the memoized collection descriptor for elements of Go
// type T. See collections.Get.
func Collection[T any](b *Bridge, shape collections.Shape, elem collections.ElementInfo, conv collections.ElementConverter, nh *collections.NumberHandling) *collections.Descriptor {
	return collections.Get[T](b.cache, shape, elem, conv, nh)
}

// CollectionCount returns the number of collection descriptors built so far.
func (b *Bridge) CollectionCount() int { return b.cache.Len() }
