// Package symbols is the read-only symbolic model that runtime descriptors
// are resolved against: one Module per known library, each mapping metadata
// names to type symbols.
package symbols

import (
	"fmt"
	"strings"

	"github.com/broady/typebridge/internal/metaname"
)

// SymbolKind identifies the variant of a symbol.
type SymbolKind int

const (
	KindType        SymbolKind = iota // Type declared by a module
	KindArray                         // Array constructed from an element symbol
	KindConstructed                   // Generic definition bound to arguments
)

// String returns the string representation of the symbol kind.
func (k SymbolKind) String() string {
	switch k {
	case KindType:
		return "Type"
	case KindArray:
		return "Array"
	case KindConstructed:
		return "Constructed"
	default:
		return "Unknown"
	}
}

// Symbol is a type in the symbolic model.
type Symbol interface {
	// Kind returns the symbol kind for type switching.
	Kind() SymbolKind

	// MetadataName returns the name the symbol is known by. Constructed
	// symbols render their arguments in brackets: "List`1[System.Int32]".
	MetadataName() string

	// ContainingModule returns the module that declares the symbol (for
	// arrays and constructed symbols, the module of the element or
	// definition).
	ContainingModule() *Module

	// String returns MetadataName qualified by the module name.
	String() string

	sealed()
}

// TypeSymbol is a type declared by a module.
type TypeSymbol struct {
	module *Module
	name   string
	base   string
}

// Kind returns KindType.
func (s *TypeSymbol) Kind() SymbolKind { return KindType }

// MetadataName returns the full metadata name.
func (s *TypeSymbol) MetadataName() string { return s.name }

// ContainingModule returns the declaring module.
func (s *TypeSymbol) ContainingModule() *Module { return s.module }

// Arity returns the number of generic parameters the type declares.
func (s *TypeSymbol) Arity() int {
	_, name := metaname.Split(s.name)
	return metaname.TotalArity(name)
}

// BaseName returns the metadata name of the base type, or "".
func (s *TypeSymbol) BaseName() string { return s.base }

func (s *TypeSymbol) String() string { return qualified(s) }

func (*TypeSymbol) sealed() {}

// Construct binds the generic definition s to args.
func (s *TypeSymbol) Construct(args ...Symbol) (*ConstructedSymbol, error) {
	n := s.Arity()
	if n == 0 {
		return nil, fmt.Errorf("symbols: %s is not a generic definition", s.name)
	}
	if len(args) != n {
		return nil, fmt.Errorf("symbols: %s expects %d type argument(s), got %d", s.name, n, len(args))
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("symbols: %s argument %d is nil", s.name, i)
		}
	}
	return &ConstructedSymbol{Definition: s, Args: append([]Symbol(nil), args...)}, nil
}

// ArraySymbol is an array type built from an element symbol.
type ArraySymbol struct {
	Element Symbol
}

// ArrayOf returns an array symbol of element.
func ArrayOf(element Symbol) *ArraySymbol {
	return &ArraySymbol{Element: element}
}

// Kind returns KindArray.
func (s *ArraySymbol) Kind() SymbolKind { return KindArray }

// MetadataName returns the element name followed by "[]".
func (s *ArraySymbol) MetadataName() string { return s.Element.MetadataName() + "[]" }

// ContainingModule returns the element's module.
func (s *ArraySymbol) ContainingModule() *Module { return s.Element.ContainingModule() }

func (s *ArraySymbol) String() string { return qualified(s) }

func (*ArraySymbol) sealed() {}

// ConstructedSymbol is a generic definition bound to type arguments.
type ConstructedSymbol struct {
	Definition *TypeSymbol
	Args       []Symbol
}

// Kind returns KindConstructed.
func (s *ConstructedSymbol) Kind() SymbolKind { return KindConstructed }

// MetadataName returns the definition name with bracketed arguments.
func (s *ConstructedSymbol) MetadataName() string {
	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = a.MetadataName()
	}
	return s.Definition.MetadataName() + "[" + strings.Join(args, ",") + "]"
}

// ContainingModule returns the definition's module.
func (s *ConstructedSymbol) ContainingModule() *Module { return s.Definition.ContainingModule() }

func (s *ConstructedSymbol) String() string { return qualified(s) }

func (*ConstructedSymbol) sealed() {}

func qualified(s Symbol) string {
	if m := s.ContainingModule(); m != nil {
		return "[" + m.Name() + "]" + s.MetadataName()
	}
	return s.MetadataName()
}
