package provider

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/broady/typebridge/ir"
)

// ErrUnsupported is returned for types reflection cannot describe:
// generic instantiations (reflection does not expose type arguments) and
// unnamed composite types other than slices and arrays.
var ErrUnsupported = errors.New("unsupported type")

// Describer builds runtime type descriptors with reflection.
type Describer struct {
	// Interfaces are checked against every named type; the names of those
	// it implements are recorded on its descriptor ("pkgname.Iface").
	Interfaces []reflect.Type
}

// Describe returns the descriptor of t with no interface information.
func Describe(t reflect.Type) (ir.TypeDescriptor, error) {
	return (&Describer{}).Describe(t)
}

// Describe returns the descriptor of t. Pointers are dereferenced, slices
// and arrays become array descriptors, and named types carry their package
// path as origin module. Predeclared types belong to BuiltinModuleName.
func (d *Describer) Describe(t reflect.Type) (ir.TypeDescriptor, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil type", ErrUnsupported)
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		if t.Name() == "" {
			elem, err := d.Describe(t.Elem())
			if err != nil {
				return nil, err
			}
			return ir.ArrayOf(elem), nil
		}
	case t.Name() == "":
		return nil, fmt.Errorf("%w: unnamed %s type %s", ErrUnsupported, t.Kind(), t)
	}
	return d.named(t)
}

func (d *Describer) named(t reflect.Type) (ir.TypeDescriptor, error) {
	if strings.Contains(t.Name(), "[") {
		return nil, fmt.Errorf("%w: generic instantiation %s", ErrUnsupported, t)
	}

	module := t.PkgPath()
	namespace := ""
	if module == "" {
		module = BuiltinModuleName
	} else {
		// t.String() is "pkgname.Type"; reflection has no other access to
		// the package name.
		namespace, _, _ = strings.Cut(t.String(), ".")
	}

	nd := ir.Named(namespace, t.Name(), module)
	for _, iface := range d.Interfaces {
		if iface.Kind() == reflect.Interface && t.Implements(iface) {
			nd.Interfaces = append(nd.Interfaces, iface.String())
		}
	}
	if base, ok := embeddedBase(t); ok {
		bd, err := d.named(base)
		if err != nil {
			return nil, fmt.Errorf("base of %s: %w", t, err)
		}
		nd.Base = bd
	}
	return nd, nil
}

// embeddedBase returns the first embedded named struct of t.
func embeddedBase(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct {
		return nil, false
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct && ft.Name() != "" {
			return ft, true
		}
	}
	return nil, false
}
