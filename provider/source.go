// Package provider builds symbolic modules and runtime type descriptors
// from Go code.
//
// The source provider turns Go packages into module symbol tables: every
// package is a module named by its import path, and every exported type is
// declared under the metadata name "pkgname.Type" with a backtick arity
// suffix for generic types. The first embedded struct of a struct type is
// recorded as its base type.
package provider

import (
	"context"
	"fmt"
	"go/types"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/internal/metaname"
	"github.com/broady/typebridge/symbols"
)

// BuiltinModuleName is the module name used for Go's predeclared types.
const BuiltinModuleName = "builtin"

// SourceProvider loads modules by analyzing Go source code.
type SourceProvider struct{}

// SourceOptions configures source loading.
type SourceOptions struct {
	// Patterns are the package patterns to load (e.g. "./...").
	Patterns []string

	// Dir is the directory patterns are resolved in. Default: current directory.
	Dir string
}

// LoadModules loads the packages matching opts and returns one catalog
// entry per package, sorted by import path.
func (p *SourceProvider) LoadModules(ctx context.Context, opts SourceOptions) ([]catalog.Entry, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("no packages specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode:    packages.NeedName | packages.NeedTypes,
	}
	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].PkgPath < pkgs[j].PkgPath })
	entries := make([]catalog.Entry, 0, len(pkgs))
	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}
		m, err := PackageModule(pkg.Types)
		if err != nil {
			return nil, err
		}
		entries = append(entries, catalog.Entry{Name: pkg.PkgPath, Module: m})
	}
	return entries, nil
}

// PackageModule converts the exported types of pkg into a module named by
// its import path. Aliases are skipped.
func PackageModule(pkg *types.Package) (*symbols.Module, error) {
	scope := pkg.Scope()
	var defs []symbols.TypeDef
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() || tn.IsAlias() {
			continue
		}
		named, ok := tn.Type().(*types.Named)
		if !ok {
			continue
		}
		defs = append(defs, symbols.TypeDef{
			MetadataName: MetadataName(named),
			Base:         baseName(named),
		})
	}
	return symbols.NewModule(pkg.Path(), defs...)
}

// BuiltinModule returns a module declaring Go's predeclared types
// (bool, int, string, error, any, ...) without a namespace.
func BuiltinModule() *symbols.Module {
	var defs []symbols.TypeDef
	for _, name := range types.Universe.Names() {
		if _, ok := types.Universe.Lookup(name).(*types.TypeName); ok {
			defs = append(defs, symbols.TypeDef{MetadataName: name})
		}
	}
	return symbols.MustNewModule(BuiltinModuleName, defs...)
}

// MetadataName returns the metadata name of a named type: "pkgname.Type",
// plus "`N" for generic types. Predeclared types have no namespace.
func MetadataName(named *types.Named) string {
	obj := named.Origin().Obj()
	simple := obj.Name()
	if n := named.Origin().TypeParams().Len(); n > 0 {
		simple += string(metaname.AritySeparator) + strconv.Itoa(n)
	}
	if obj.Pkg() == nil {
		return simple
	}
	return metaname.Join(obj.Pkg().Name(), simple)
}

// baseName returns the metadata name of the first embedded named struct
// field of named, or "".
func baseName(named *types.Named) string {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return ""
	}
	for i := range st.NumFields() {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}
		t := f.Type()
		if ptr, ok := t.(*types.Pointer); ok {
			t = ptr.Elem()
		}
		en, ok := t.(*types.Named)
		if !ok {
			continue
		}
		if _, isStruct := en.Underlying().(*types.Struct); isStruct {
			return MetadataName(en)
		}
	}
	return ""
}
