package symbols

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/broady/typebridge/internal/metaname"
)

var (
	// ErrEmptyModuleName is returned when a module is created without a name.
	ErrEmptyModuleName = errors.New("symbols: empty module name")
	// ErrEmptyTypeName is returned when a type definition has no name.
	ErrEmptyTypeName = errors.New("symbols: empty type name")
	// ErrDuplicateType is returned when a module defines a name twice.
	ErrDuplicateType = errors.New("symbols: duplicate type")
)

// TypeDef declares a type in a module.
type TypeDef struct {
	// MetadataName is the full metadata name (e.g., "System.Collections.Generic.List`1").
	MetadataName string

	// Base is the metadata name of the base type. Empty for root types.
	Base string
}

// Module is the symbol table of one library. It is immutable once
// NewModule returns and safe for concurrent lookups.
type Module struct {
	name  string
	types map[string]*TypeSymbol
}

// NewModule creates a module declaring defs.
func NewModule(name string, defs ...TypeDef) (*Module, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyModuleName
	}
	m := &Module{
		name:  name,
		types: make(map[string]*TypeSymbol, len(defs)),
	}
	for _, def := range defs {
		if def.MetadataName == "" {
			return nil, fmt.Errorf("%w in module %s", ErrEmptyTypeName, name)
		}
		if _, exists := m.types[def.MetadataName]; exists {
			return nil, fmt.Errorf("%w %s in module %s", ErrDuplicateType, def.MetadataName, name)
		}
		m.types[def.MetadataName] = &TypeSymbol{module: m, name: def.MetadataName, base: def.Base}
	}
	return m, nil
}

// MustNewModule is like NewModule but panics on error.
func MustNewModule(name string, defs ...TypeDef) *Module {
	m, err := NewModule(name, defs...)
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the module's declared name.
func (m *Module) Name() string { return m.name }

// LookupType returns the type with the given full metadata name.
func (m *Module) LookupType(metadataName string) (*TypeSymbol, bool) {
	s, ok := m.types[metadataName]
	return s, ok
}

// Len returns the number of types the module declares.
func (m *Module) Len() int { return len(m.types) }

// Types returns the declared types sorted by metadata name.
func (m *Module) Types() []*TypeSymbol {
	out := make([]*TypeSymbol, 0, len(m.types))
	for _, s := range m.types {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Namespaces returns the distinct namespaces declared in the module.
func (m *Module) Namespaces() []string {
	seen := make(map[string]bool)
	var out []string
	for name := range m.types {
		ns, _ := metaname.Split(name)
		if !seen[ns] {
			seen[ns] = true
			out = append(out, ns)
		}
	}
	sort.Strings(out)
	return out
}
