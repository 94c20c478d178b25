// Package ir defines the descriptor model for runtime types.
//
// A TypeDescriptor is a static description of a type taken from a running
// program's type metadata: its name, the module it was loaded from, and its
// shape. The model is a closed sum type; callers switch on the concrete
// descriptor type (or on Kind) rather than testing boolean shape flags.
package ir

// DescriptorKind identifies the variant of a type descriptor.
type DescriptorKind int

const (
	KindNamed         DescriptorKind = iota // Top-level named type or generic definition
	KindNested                              // Type nested in a declaring type
	KindArray                               // Array of an element type
	KindGeneric                             // Instantiation of a generic definition
	KindTypeParameter                       // Unbound generic placeholder (T, TKey, ...)
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindNamed:
		return "Named"
	case KindNested:
		return "Nested"
	case KindArray:
		return "Array"
	case KindGeneric:
		return "Generic"
	case KindTypeParameter:
		return "TypeParameter"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// Name returns the short metadata name. Nested types include their
	// declaring chain joined by '+', generic definitions keep their arity
	// suffix, and arrays append "[]".
	Name() string

	// FullName returns the namespace-qualified metadata name. For generic
	// instantiations this is the full name of the definition.
	// Type parameters have no full name.
	FullName() string

	// Module returns the name of the module the type was loaded from.
	// It may be a display name ("mscorlib, Version=4.0.0.0, ...").
	Module() string

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// ForwardRedirect states that a type's canonical home is another module,
// typically because it moved when a library was split.
type ForwardRedirect struct {
	// Module is the target module name. Display names are accepted.
	Module string
}
