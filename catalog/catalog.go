// Package catalog indexes the symbolic modules available to a generation run.
//
// A Catalog is built once by New and is read-only afterwards. Module names
// are compared case-insensitively using Unicode case folding.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/broady/typebridge/internal/metaname"
	"github.com/broady/typebridge/symbols"
)

// Default distinguished names.
const (
	DefaultCollectionsModule = "System.Collections"
	DefaultRootObjectType    = "System.Object"
)

// ErrAmbiguousCore is returned by New when more than one module defines the
// root object type.
var ErrAmbiguousCore = errors.New("catalog: root object type defined by more than one module")

// ModuleNameError reports a malformed module name passed to the catalog.
// Lookup panics with it since such a name indicates an upstream bug.
type ModuleNameError struct {
	Name string
}

func (e *ModuleNameError) Error() string {
	return fmt.Sprintf("catalog: malformed module name %q", e.Name)
}

// Entry is a module with the name it was declared under.
// Name may be a full display name ("System.Runtime, Version=8.0.0.0, ...").
type Entry struct {
	Name   string
	Module *symbols.Module
}

// Options configures the distinguished modules.
type Options struct {
	// CollectionsModule is the name of the standard collections module.
	// Default: DefaultCollectionsModule.
	CollectionsModule string

	// RootObjectType is the metadata name of the root object type; the
	// module that defines it is the core module.
	// Default: DefaultRootObjectType.
	RootObjectType string
}

// Catalog maps module names to symbol tables.
type Catalog struct {
	modules     map[string]*symbols.Module
	core        *symbols.Module
	collections *symbols.Module
}

// New builds a catalog from entries. Later entries replace earlier entries
// with the same name.
func New(entries []Entry, opts Options) (*Catalog, error) {
	if opts.CollectionsModule == "" {
		opts.CollectionsModule = DefaultCollectionsModule
	}
	if opts.RootObjectType == "" {
		opts.RootObjectType = DefaultRootObjectType
	}

	c := &Catalog{modules: make(map[string]*symbols.Module, len(entries))}
	for i, e := range entries {
		key, ok := metaname.ModuleKey(e.Name)
		if !ok {
			return nil, fmt.Errorf("entry %d: %w", i, &ModuleNameError{Name: e.Name})
		}
		if e.Module == nil {
			return nil, fmt.Errorf("entry %d (%s): nil module", i, e.Name)
		}
		c.modules[key] = e.Module
	}

	if collKey, ok := metaname.ModuleKey(opts.CollectionsModule); ok {
		c.collections = c.modules[collKey]
	}
	for _, key := range c.sortedKeys() {
		m := c.modules[key]
		if _, ok := m.LookupType(opts.RootObjectType); !ok {
			continue
		}
		if c.core != nil && c.core != m {
			return nil, fmt.Errorf("%w: %s and %s", ErrAmbiguousCore, c.core.Name(), m.Name())
		}
		c.core = m
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(entries []Entry, opts Options) *Catalog {
	c, err := New(entries, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseModuleName returns the simple name of a module display name.
func ParseModuleName(display string) (string, error) {
	name, ok := metaname.ModuleName(display)
	if !ok {
		return "", &ModuleNameError{Name: display}
	}
	return name, nil
}

// Lookup returns the module registered under name. It panics with a
// *ModuleNameError if name is empty or malformed.
func (c *Catalog) Lookup(name string) (*symbols.Module, bool) {
	key, ok := metaname.ModuleKey(name)
	if !ok {
		panic(&ModuleNameError{Name: name})
	}
	m, ok := c.modules[key]
	return m, ok
}

// Core returns the module defining the root object type, or nil.
func (c *Catalog) Core() *symbols.Module { return c.core }

// Collections returns the standard collections module, or nil.
func (c *Catalog) Collections() *symbols.Module { return c.collections }

// Len returns the number of distinct modules.
func (c *Catalog) Len() int { return len(c.modules) }

// Modules returns the modules ordered by name.
func (c *Catalog) Modules() []*symbols.Module {
	keys := c.sortedKeys()
	out := make([]*symbols.Module, len(keys))
	for i, k := range keys {
		out[i] = c.modules[k]
	}
	return out
}

func (c *Catalog) sortedKeys() []string {
	keys := make([]string, 0, len(c.modules))
	for k := range c.modules {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String returns a short summary such as "catalog(3 modules, core=System.Private.CoreLib)".
func (c *Catalog) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog(%d modules", len(c.modules))
	if c.core != nil {
		fmt.Fprintf(&b, ", core=%s", c.core.Name())
	}
	if c.collections != nil {
		fmt.Fprintf(&b, ", collections=%s", c.collections.Name())
	}
	b.WriteString(")")
	return b.String()
}
