// Package naming derives the canonical identifiers used by generated code.
//
// The compilable name of a type is a valid source-level type expression
// (e.g. "Dictionary<System.String,System.Collections.Generic.List<System.Int32>>").
// The friendly name removes every character that cannot appear in a bare
// identifier (e.g. "DictionarySystemStringSystemCollectionsGenericListSystemInt32").
// The unique variants use full names instead of short names as the base case.
//
// Generic arguments always render with the unique rule so that same-named
// types from different namespaces never collide inside one generated scope.
package naming

import (
	"fmt"
	"strings"

	"github.com/broady/typebridge/internal/metaname"
	"github.com/broady/typebridge/ir"
)

// OpenGenericError reports a descriptor that still carries unbound generic
// parameters. The naming functions panic with it: names for such types
// would be malformed, which means the caller skipped validation.
type OpenGenericError struct {
	Type string
	Err  error
}

func (e *OpenGenericError) Error() string {
	return fmt.Sprintf("naming: %s is not a closed type: %v", e.Type, e.Err)
}

func (e *OpenGenericError) Unwrap() error { return e.Err }

// CheckBound returns an *OpenGenericError if td cannot be named.
// Use it on untrusted input before calling the naming functions.
func CheckBound(td ir.TypeDescriptor) error {
	if err := ir.CheckBound(td); err != nil {
		name := "<nil>"
		if td != nil {
			name = td.FullName()
			if name == "" {
				name = td.Name()
			}
		}
		return &OpenGenericError{Type: name, Err: err}
	}
	return nil
}

// CompilableName returns the short compilable name of td.
// It panics with *OpenGenericError if td is not bound.
func CompilableName(td ir.TypeDescriptor) string {
	mustBeBound(td)
	return compilable(td, false)
}

// UniqueCompilableName returns the namespace-qualified compilable name of td.
// It panics with *OpenGenericError if td is not bound.
func UniqueCompilableName(td ir.TypeDescriptor) string {
	mustBeBound(td)
	return compilable(td, true)
}

// FriendlyName returns CompilableName reduced to a bare identifier.
func FriendlyName(td ir.TypeDescriptor) string {
	return Friendly(CompilableName(td))
}

// UniqueFriendlyName returns UniqueCompilableName reduced to a bare identifier.
func UniqueFriendlyName(td ir.TypeDescriptor) string {
	return Friendly(UniqueCompilableName(td))
}

var friendlyReplacer = strings.NewReplacer(
	"[]", "Array",
	".", "",
	"<", "",
	">", "",
	",", "",
)

// Friendly rewrites a compilable name as a bare identifier: array markers
// become "Array" and separators, brackets and commas are dropped.
func Friendly(compilableName string) string {
	return friendlyReplacer.Replace(compilableName)
}

func mustBeBound(td ir.TypeDescriptor) {
	if err := CheckBound(td); err != nil {
		panic(err)
	}
}

func compilable(td ir.TypeDescriptor, unique bool) string {
	switch d := td.(type) {
	case *ir.ArrayDescriptor:
		return compilable(d.Element, unique) + "[]"
	case *ir.GenericDescriptor:
		var b strings.Builder
		b.WriteString(metaname.Dotted(metaname.StripArity(baseName(d.Definition, unique))))
		b.WriteByte('<')
		for i, arg := range d.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(compilable(arg, true))
		}
		b.WriteByte('>')
		return b.String()
	default:
		return metaname.Dotted(baseName(td, unique))
	}
}

func baseName(td ir.TypeDescriptor, unique bool) string {
	if unique {
		return td.FullName()
	}
	return td.Name()
}
