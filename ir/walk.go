package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/broady/typebridge/internal/metaname"
)

// BaseType returns the base type of td, or nil if it has none.
// Generic instantiations fall back to their definition's base type.
func BaseType(td TypeDescriptor) TypeDescriptor {
	switch d := td.(type) {
	case *NamedDescriptor:
		return d.Base
	case *NestedDescriptor:
		return d.Base
	case *GenericDescriptor:
		if d.Base != nil {
			return d.Base
		}
		return BaseType(d.Definition)
	case *ArrayDescriptor, *TypeParameterDescriptor:
		return nil
	default:
		return nil
	}
}

// ForwardOf returns the forward redirect declared by td, or nil.
// Generic instantiations report their definition's redirect.
func ForwardOf(td TypeDescriptor) *ForwardRedirect {
	switch d := td.(type) {
	case *NamedDescriptor:
		return d.Forward
	case *NestedDescriptor:
		return d.Forward
	case *GenericDescriptor:
		return ForwardOf(d.Definition)
	default:
		return nil
	}
}

// InterfacesOf returns the interfaces td declares directly.
func InterfacesOf(td TypeDescriptor) []string {
	switch d := td.(type) {
	case *NamedDescriptor:
		return d.Interfaces
	case *NestedDescriptor:
		return d.Interfaces
	case *GenericDescriptor:
		return InterfacesOf(d.Definition)
	default:
		return nil
	}
}

// Implements reports whether td is, or implements, the interface with the
// given full name. The base chain is searched too.
func Implements(td TypeDescriptor, iface string) bool {
	for cur := td; cur != nil; cur = BaseType(cur) {
		if cur.FullName() == iface {
			return true
		}
		if slices.Contains(InterfacesOf(cur), iface) {
			return true
		}
	}
	return false
}

// Arity returns the number of generic parameters a definition declares.
// Nested definitions include the parameters of their declaring types.
func Arity(td TypeDescriptor) int {
	switch d := td.(type) {
	case *NamedDescriptor:
		return metaname.Arity(d.Simple)
	case *NestedDescriptor:
		return Arity(d.Declaring) + metaname.Arity(d.Simple)
	default:
		return 0
	}
}

// Identical reports whether a and b describe the same type.
// Module names are compared by simple name, case-insensitively.
func Identical(a, b TypeDescriptor) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *NamedDescriptor:
		y, ok := b.(*NamedDescriptor)
		return ok && x.Namespace == y.Namespace && x.Simple == y.Simple && sameModule(x.Origin, y.Origin)
	case *NestedDescriptor:
		y, ok := b.(*NestedDescriptor)
		return ok && x.Simple == y.Simple && Identical(x.Declaring, y.Declaring)
	case *ArrayDescriptor:
		y, ok := b.(*ArrayDescriptor)
		return ok && Identical(x.Element, y.Element)
	case *GenericDescriptor:
		y, ok := b.(*GenericDescriptor)
		if !ok || len(x.Args) != len(y.Args) || !Identical(x.Definition, y.Definition) {
			return false
		}
		for i := range x.Args {
			if !Identical(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *TypeParameterDescriptor:
		y, ok := b.(*TypeParameterDescriptor)
		return ok && x.ParamName == y.ParamName
	default:
		return false
	}
}

func sameModule(a, b string) bool {
	return moduleKey(a) == moduleKey(b)
}

// moduleKey falls back to the raw name, marked so it cannot equal a folded
// simple name, when display is malformed.
func moduleKey(display string) string {
	if key, ok := metaname.ModuleKey(display); ok {
		return key
	}
	return "!" + display
}

// Key returns a string identifying td. Identical descriptors have equal
// keys, and descriptors that differ in any module, name, element or type
// argument have different keys.
func Key(td TypeDescriptor) string {
	var b strings.Builder
	writeKey(&b, td)
	return b.String()
}

func writeKey(b *strings.Builder, td TypeDescriptor) {
	switch d := td.(type) {
	case *NamedDescriptor:
		b.WriteByte('[')
		b.WriteString(moduleKey(d.Origin))
		b.WriteByte(']')
		b.WriteString(d.FullName())
	case *NestedDescriptor:
		writeKey(b, d.Declaring)
		b.WriteString(metaname.NestedSeparator)
		b.WriteString(d.Simple)
	case *ArrayDescriptor:
		writeKey(b, d.Element)
		b.WriteString("[]")
	case *GenericDescriptor:
		writeKey(b, d.Definition)
		b.WriteByte('<')
		for i, arg := range d.Args {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, arg)
		}
		b.WriteByte('>')
	case *TypeParameterDescriptor:
		b.WriteByte('!')
		b.WriteString(d.ParamName)
	}
}

// HasTypeParam reports whether td is nil or reaches a type parameter
// through its elements and type arguments.
func HasTypeParam(td TypeDescriptor) bool {
	switch d := td.(type) {
	case nil:
		return true
	case *TypeParameterDescriptor:
		return true
	case *ArrayDescriptor:
		return HasTypeParam(d.Element)
	case *GenericDescriptor:
		if HasTypeParam(d.Definition) {
			return true
		}
		return slices.ContainsFunc(d.Args, HasTypeParam)
	default:
		return false
	}
}

// CheckBound returns an error if td, or anything reachable through its
// element and type arguments, is an unbound generic parameter or an
// uninstantiated generic definition.
func CheckBound(td TypeDescriptor) error {
	switch d := td.(type) {
	case nil:
		return fmt.Errorf("nil type descriptor")
	case *NamedDescriptor, *NestedDescriptor:
		if n := Arity(d); n > 0 {
			return fmt.Errorf("%s is an open generic definition with %d parameter(s)", d.FullName(), n)
		}
		return nil
	case *ArrayDescriptor:
		return CheckBound(d.Element)
	case *GenericDescriptor:
		want := Arity(d.Definition)
		if want == 0 {
			return fmt.Errorf("%s is not a generic definition", d.Definition.FullName())
		}
		if len(d.Args) != want {
			return fmt.Errorf("%s expects %d type argument(s), got %d", d.Definition.FullName(), want, len(d.Args))
		}
		for i, arg := range d.Args {
			if err := CheckBound(arg); err != nil {
				return fmt.Errorf("%s argument %d: %w", d.Definition.FullName(), i, err)
			}
		}
		return nil
	case *TypeParameterDescriptor:
		return fmt.Errorf("unbound type parameter %s", d.ParamName)
	default:
		return fmt.Errorf("unknown descriptor %T", td)
	}
}
