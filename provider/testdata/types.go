// Package testdata contains types for the source provider tests.
package testdata

import "io"

// Entity is the root of the entity hierarchy.
type Entity struct {
	ID string
}

// Account embeds Entity, which becomes its base type.
type Account struct {
	Entity
	Owner string
}

// Premium embeds a pointer to Account.
type Premium struct {
	*Account
	io.Reader
	Tier int
}

// Page is a generic container.
type Page[T any] struct {
	Items []T
	Next  string
}

// Pair has two type parameters.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Status is a named string.
type Status string

// Lister is an interface type.
type Lister interface {
	List() []string
}

// Alias is skipped because aliases do not declare a type.
type Alias = Account

type internal struct{}
