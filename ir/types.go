package ir

import "github.com/broady/typebridge/internal/metaname"

// NamedDescriptor represents a top-level named type.
//
// When Simple carries an arity suffix (List`1) the descriptor is an open
// generic definition; it only appears bound as GenericDescriptor.Definition.
type NamedDescriptor struct {
	// Namespace is the dotted namespace. Empty for the global namespace.
	Namespace string

	// Simple is the simple metadata name, including any arity suffix.
	Simple string

	// Origin is the module the runtime type was loaded from.
	Origin string

	// Base is the base type, or nil for root types and interfaces.
	Base TypeDescriptor

	// Interfaces lists the full names of interfaces the type implements.
	Interfaces []string

	// Forward is set when the type declares that it was forwarded from
	// another module.
	Forward *ForwardRedirect
}

// Kind returns KindNamed.
func (d *NamedDescriptor) Kind() DescriptorKind { return KindNamed }

// Name returns the simple name.
func (d *NamedDescriptor) Name() string { return d.Simple }

// FullName returns the namespace-qualified name.
func (d *NamedDescriptor) FullName() string { return metaname.Join(d.Namespace, d.Simple) }

// Module returns the origin module.
func (d *NamedDescriptor) Module() string { return d.Origin }

func (*NamedDescriptor) sealed() {}

// NestedDescriptor represents a type declared inside another type.
// Its namespace and module are those of the outermost declaring type.
type NestedDescriptor struct {
	// Declaring is the enclosing type (NamedDescriptor or NestedDescriptor).
	Declaring TypeDescriptor

	// Simple is the simple metadata name, including any arity suffix.
	Simple string

	// Base is the base type, or nil.
	Base TypeDescriptor

	// Interfaces lists the full names of interfaces the type implements.
	Interfaces []string

	// Forward is the forward redirect, if any.
	Forward *ForwardRedirect
}

// Kind returns KindNested.
func (d *NestedDescriptor) Kind() DescriptorKind { return KindNested }

// Name returns the declaring chain and simple name joined by '+'.
func (d *NestedDescriptor) Name() string {
	return d.Declaring.Name() + metaname.NestedSeparator + d.Simple
}

// FullName returns the declaring type's full name joined with the simple name.
func (d *NestedDescriptor) FullName() string {
	return d.Declaring.FullName() + metaname.NestedSeparator + d.Simple
}

// Module returns the declaring type's module.
func (d *NestedDescriptor) Module() string { return d.Declaring.Module() }

func (*NestedDescriptor) sealed() {}

// Named returns a NamedDescriptor for namespace.simple loaded from module.
func Named(namespace, simple, module string) *NamedDescriptor {
	return &NamedDescriptor{Namespace: namespace, Simple: simple, Origin: module}
}

// Nested returns a NestedDescriptor for simple declared in declaring.
func Nested(declaring TypeDescriptor, simple string) *NestedDescriptor {
	return &NestedDescriptor{Declaring: declaring, Simple: simple}
}
