// Package metaname implements the metadata naming conventions shared by
// descriptors and symbol tables.
//
// A metadata name joins namespace and simple name with '.', joins a nested
// type to its declaring type with '+', and marks generic definitions with a
// backtick arity suffix (e.g. "System.Collections.Generic.Dictionary`2").
package metaname

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

const (
	// NamespaceSeparator separates namespace segments and the simple name.
	NamespaceSeparator = "."

	// NestedSeparator separates a declaring type from a nested type.
	NestedSeparator = "+"

	// AritySeparator introduces the generic arity suffix.
	AritySeparator = '`'
)

// Join returns the full name of a simple name inside namespace.
func Join(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + NamespaceSeparator + name
}

// Split splits a full metadata name into namespace and the remaining
// (possibly nested) type name. The namespace ends at the last '.' that
// precedes the first nested separator.
func Split(fullName string) (namespace, name string) {
	head := fullName
	if i := strings.Index(fullName, NestedSeparator); i >= 0 {
		head = fullName[:i]
	}
	dot := strings.LastIndex(head, NamespaceSeparator)
	if dot < 0 {
		return "", fullName
	}
	return fullName[:dot], fullName[dot+1:]
}

// Nesting splits a type name into its declaring chain, outermost first.
func Nesting(name string) []string {
	return strings.Split(name, NestedSeparator)
}

// Arity returns the arity encoded in the suffix of a single simple name.
// Names without a well-formed suffix have arity 0.
func Arity(simple string) int {
	i := strings.LastIndexByte(simple, AritySeparator)
	if i < 0 || i == len(simple)-1 {
		return 0
	}
	n, err := strconv.Atoi(simple[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// TotalArity sums the arity of every segment of a nested name.
func TotalArity(name string) int {
	total := 0
	for _, seg := range Nesting(name) {
		total += Arity(seg)
	}
	return total
}

// StripArity removes every arity suffix from name, including suffixes on
// declaring types of a nested name ("Outer`1+Inner`2" -> "Outer+Inner").
func StripArity(name string) string {
	if strings.IndexByte(name, AritySeparator) < 0 {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		if name[i] != AritySeparator {
			b.WriteByte(name[i])
			continue
		}
		j := i + 1
		for j < len(name) && name[j] >= '0' && name[j] <= '9' {
			j++
		}
		if j == i+1 {
			// lone backtick, keep it
			b.WriteByte(name[i])
			continue
		}
		i = j - 1
	}
	return b.String()
}

// Dotted rewrites nested separators as namespace separators.
func Dotted(name string) string {
	return strings.ReplaceAll(name, NestedSeparator, NamespaceSeparator)
}

// ModuleName returns the simple name of a module display name such as
// "System.Runtime, Version=4.2.0.0, Culture=neutral, PublicKeyToken=b03f5f7f11d50a3a".
// It reports false if display is empty or its simple name is blank.
func ModuleName(display string) (string, bool) {
	name := display
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "=\"") {
		return "", false
	}
	return name, true
}

// A Caser holds transform state and must not be shared between goroutines.
var folders = sync.Pool{New: func() any {
	c := cases.Fold()
	return &c
}}

// ModuleKey returns the simple name of a module display name folded for
// case-insensitive comparison. It reports false where ModuleName does.
func ModuleKey(display string) (string, bool) {
	name, ok := ModuleName(display)
	if !ok {
		return "", false
	}
	c := folders.Get().(*cases.Caser)
	defer folders.Put(c)
	return c.String(name), true
}
