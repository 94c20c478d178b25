// Package manifest reads module symbol tables and runtime type descriptors
// from a YAML document.
//
// A manifest has two sections:
//
//	modules:
//	  - name: System.Private.CoreLib
//	    types:
//	      - name: System.Object
//	      - name: System.Int32
//	        base: System.ValueType
//	types:
//	  - name: System.Collections.Generic.List`1
//	    module: System.Runtime
//	    interfaces: [System.Collections.IEnumerable]
//	    args:
//	      - {name: System.Int32, module: mscorlib}
//	  - array: {name: System.String, module: mscorlib}
//
// Each entry of types is a descriptor node: exactly one of name (with
// module), array or param. Nested types use '+' in name
// ("My.App.Outer+Inner").
package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/internal/validation"
	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/symbols"
)

// Manifest is a decoded manifest document.
type Manifest struct {
	Modules []Module `yaml:"modules" validate:"dive"`
	Types   []Node   `yaml:"types" validate:"dive"`
}

// Module declares a module and its types.
type Module struct {
	Name  string `yaml:"name" validate:"required,modulename"`
	Types []Type `yaml:"types" validate:"dive"`
}

// Type declares one type of a module.
type Type struct {
	Name string `yaml:"name" validate:"required,metaname"`
	Base string `yaml:"base" validate:"omitempty,metaname"`
}

// Node describes a runtime type.
type Node struct {
	Name   string `yaml:"name" validate:"omitempty,metaname"`
	Module string `yaml:"module" validate:"omitempty,modulename"`

	// Array makes the node an array of the given element.
	Array *Node `yaml:"array"`

	// Args instantiates the generic definition Name.
	Args []Node `yaml:"args" validate:"dive"`

	// Param makes the node an unbound type parameter.
	Param string `yaml:"param"`

	Base        *Node    `yaml:"base"`
	Interfaces  []string `yaml:"interfaces" validate:"dive,metaname"`
	ForwardedTo string   `yaml:"forwardedTo" validate:"omitempty,modulename"`
}

// Load decodes and validates a manifest. Unknown keys are errors.
func Load(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadFile loads the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks field formats and the shape of every descriptor node.
func (m *Manifest) Validate() error {
	if err := validation.Struct(m); err != nil {
		return err
	}
	for i := range m.Types {
		if err := m.Types[i].check("types[" + strconv.Itoa(i) + "]"); err != nil {
			return err
		}
	}
	return nil
}

func (n *Node) check(path string) error {
	set := 0
	for _, ok := range []bool{n.Name != "", n.Array != nil, n.Param != ""} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return fmt.Errorf("%s: exactly one of name, array or param is required", path)
	}
	if n.Name == "" && (n.Module != "" || len(n.Args) > 0 || n.Base != nil || len(n.Interfaces) > 0 || n.ForwardedTo != "") {
		return fmt.Errorf("%s: module, args, base, interfaces and forwardedTo require name", path)
	}
	if n.Name != "" && n.Module == "" {
		return fmt.Errorf("%s: module is required with name", path)
	}
	if n.Array != nil {
		if err := n.Array.check(path + ".array"); err != nil {
			return err
		}
	}
	if n.Base != nil {
		if err := n.Base.check(path + ".base"); err != nil {
			return err
		}
	}
	for i := range n.Args {
		if err := n.Args[i].check(path + ".args[" + strconv.Itoa(i) + "]"); err != nil {
			return err
		}
	}
	return nil
}

// Entries builds the symbol table of every declared module.
func (m *Manifest) Entries() ([]catalog.Entry, error) {
	entries := make([]catalog.Entry, 0, len(m.Modules))
	for _, mod := range m.Modules {
		defs := make([]symbols.TypeDef, len(mod.Types))
		for i, t := range mod.Types {
			defs[i] = symbols.TypeDef{MetadataName: t.Name, Base: t.Base}
		}
		sm, err := symbols.NewModule(mod.Name, defs...)
		if err != nil {
			return nil, err
		}
		entries = append(entries, catalog.Entry{Name: mod.Name, Module: sm})
	}
	return entries, nil
}

// Descriptors converts the types section, in order.
func (m *Manifest) Descriptors() ([]ir.TypeDescriptor, error) {
	out := make([]ir.TypeDescriptor, len(m.Types))
	for i := range m.Types {
		td, err := m.Types[i].Descriptor()
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		out[i] = td
	}
	return out, nil
}

// Descriptor converts n into a type descriptor.
func (n *Node) Descriptor() (ir.TypeDescriptor, error) {
	switch {
	case n.Param != "":
		return ir.TypeParam(n.Param), nil
	case n.Array != nil:
		elem, err := n.Array.Descriptor()
		if err != nil {
			return nil, err
		}
		return ir.ArrayOf(elem), nil
	case n.Name != "":
		return n.named()
	default:
		return nil, errors.New("empty descriptor node")
	}
}

func (n *Node) named() (ir.TypeDescriptor, error) {
	td, err := ir.ParseName(n.Name, n.Module)
	if err != nil {
		return nil, err
	}

	var base ir.TypeDescriptor
	if n.Base != nil {
		if base, err = n.Base.Descriptor(); err != nil {
			return nil, fmt.Errorf("base: %w", err)
		}
	}
	var fwd *ir.ForwardRedirect
	if n.ForwardedTo != "" {
		fwd = &ir.ForwardRedirect{Module: n.ForwardedTo}
	}
	switch d := td.(type) {
	case *ir.NamedDescriptor:
		d.Base, d.Interfaces, d.Forward = base, n.Interfaces, fwd
	case *ir.NestedDescriptor:
		d.Base, d.Interfaces, d.Forward = base, n.Interfaces, fwd
	}

	if len(n.Args) == 0 {
		return td, nil
	}
	args := make([]ir.TypeDescriptor, len(n.Args))
	for i := range n.Args {
		if args[i], err = n.Args[i].Descriptor(); err != nil {
			return nil, fmt.Errorf("args[%d]: %w", i, err)
		}
	}
	return ir.Generic(td, args...), nil
}
