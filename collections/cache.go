// Package collections memoizes the metadata a serializer needs to read and
// write collections of a given element type.
//
// For every (element type, Go element type, shape) the cache builds exactly
// one Descriptor, on first use, and returns that same pointer on every later
// call. Downstream code compares descriptors by identity.
package collections

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/naming"
)

// ElementInfo describes the element type of a collection.
// It is supplied by the caller and shared read-only.
type ElementInfo interface {
	Type() ir.TypeDescriptor
}

// ElementConverter converts single elements.
// It is supplied by the caller and shared read-only.
type ElementConverter interface {
	ElementType() ir.TypeDescriptor
}

// Converter is the shape-specific wrapper that delegates each element to
// an ElementConverter.
type Converter struct {
	Shape   Shape
	Element ElementConverter
}

// Name returns the converter name for the shape, e.g. "ListConverter".
func (c *Converter) Name() string { return c.Shape.String() + "Converter" }

// Descriptor is the metadata for one collection of one element type.
type Descriptor struct {
	Shape Shape

	// Type is the collection type, e.g. List<System.Int32>.
	Type ir.TypeDescriptor

	Element   ElementInfo
	Converter *Converter

	// NumberHandling overrides the serializer default when non-nil.
	NumberHandling *NumberHandling

	// New returns a pointer to a new, empty backing slice (*[]T).
	New func() any
}

// Definitions are the generic definitions backing the non-array shapes.
// Each must declare exactly one type parameter.
type Definitions struct {
	List          ir.TypeDescriptor
	Sequence      ir.TypeDescriptor
	IndexableList ir.TypeDescriptor
}

type key struct {
	element string // ir.Key of the element type
	goType  reflect.Type
	shape   Shape
}

// Cache holds one Descriptor per (element type, Go element type, shape).
// It is safe for concurrent use.
type Cache struct {
	defs    [IndexableList + 1]ir.TypeDescriptor
	entries sync.Map // key -> *Descriptor
	n       atomic.Int64
}

// NewCache returns an empty cache for defs.
func NewCache(defs Definitions) (*Cache, error) {
	c := &Cache{}
	c.defs[List] = defs.List
	c.defs[Sequence] = defs.Sequence
	c.defs[IndexableList] = defs.IndexableList
	for shape := List; shape <= IndexableList; shape++ {
		def := c.defs[shape]
		if def == nil {
			return nil, fmt.Errorf("collections: missing %s definition", shape)
		}
		if n := ir.Arity(def); n != 1 {
			return nil, fmt.Errorf("collections: %s definition %s must declare one type parameter, has %d", shape, def.FullName(), n)
		}
	}
	return c, nil
}

// Len returns the number of descriptors built so far.
func (c *Cache) Len() int { return int(c.n.Load()) }

// Get returns the descriptor for a collection of T with the given shape,
// building it on first use. T is the Go type of the elements and determines
// the backing slice returned by Descriptor.New.
//
// The key is the identity of elem.Type() (module included, see ir.Key), T
// and shape. Later calls for the same key return the first descriptor
// unchanged; conv and nh are only consulted when the descriptor is built.
//
// Get panics if shape is unknown, elem is nil, or elem.Type() is not a
// closed type.
func Get[T any](c *Cache, shape Shape, elem ElementInfo, conv ElementConverter, nh *NumberHandling) *Descriptor {
	if !shape.valid() {
		panic(fmt.Sprintf("collections: unknown shape %d", int(shape)))
	}
	if elem == nil {
		panic(errors.New("collections: nil element info"))
	}
	et := elem.Type()
	if err := naming.CheckBound(et); err != nil {
		panic(err)
	}
	k := key{element: ir.Key(et), goType: reflect.TypeFor[T](), shape: shape}
	if d, ok := c.entries.Load(k); ok {
		return d.(*Descriptor)
	}

	d := c.build(shape, elem, conv, nh)
	d.New = func() any {
		s := make([]T, 0)
		return &s
	}
	actual, loaded := c.entries.LoadOrStore(k, d)
	if !loaded {
		c.n.Add(1)
	}
	return actual.(*Descriptor)
}

func (c *Cache) build(shape Shape, elem ElementInfo, conv ElementConverter, nh *NumberHandling) *Descriptor {
	var typ ir.TypeDescriptor
	if shape == Array {
		typ = ir.ArrayOf(elem.Type())
	} else {
		typ = ir.Generic(c.defs[shape], elem.Type())
	}
	d := &Descriptor{
		Shape:     shape,
		Type:      typ,
		Element:   elem,
		Converter: &Converter{Shape: shape, Element: conv},
	}
	if nh != nil {
		h := *nh
		d.NumberHandling = &h
	}
	return d
}
