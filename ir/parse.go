package ir

import (
	"fmt"

	"github.com/broady/typebridge/internal/metaname"
)

// ParseName builds a descriptor for a full metadata name loaded from module.
// Nested names ("Ns.Outer+Inner") produce a chain of NestedDescriptors over a
// NamedDescriptor. The result is a definition; wrap it with Generic to bind
// parameters.
func ParseName(fullName, module string) (TypeDescriptor, error) {
	if fullName == "" {
		return nil, fmt.Errorf("empty type name")
	}
	namespace, name := metaname.Split(fullName)
	segments := metaname.Nesting(name)
	for _, seg := range segments {
		if seg == "" {
			return nil, fmt.Errorf("malformed type name %q", fullName)
		}
	}

	var td TypeDescriptor = Named(namespace, segments[0], module)
	for _, seg := range segments[1:] {
		td = Nested(td, seg)
	}
	return td, nil
}

// MustParseName is like ParseName but panics on error.
func MustParseName(fullName, module string) TypeDescriptor {
	td, err := ParseName(fullName, module)
	if err != nil {
		panic(err)
	}
	return td
}
