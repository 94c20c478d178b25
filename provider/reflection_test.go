package provider

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"testing"

	"github.com/broady/typebridge/ir"
)

type entity struct{ ID string }

type account struct {
	entity
	Owner string
}

type premium struct {
	*account
	io.Reader
}

type names []string

type box[T any] struct{ V T }

func (account) String() string { return "account" }

func TestDescribe(t *testing.T) {
	const pkg = "github.com/broady/typebridge/provider"

	tests := []struct {
		name   string
		typ    reflect.Type
		kind   ir.DescriptorKind
		full   string
		module string
	}{
		{"builtin", reflect.TypeFor[int](), ir.KindNamed, "int", BuiltinModuleName},
		{"named struct", reflect.TypeFor[account](), ir.KindNamed, "provider.account", pkg},
		{"pointer", reflect.TypeFor[*account](), ir.KindNamed, "provider.account", pkg},
		{"slice", reflect.TypeFor[[]int](), ir.KindArray, "int[]", BuiltinModuleName},
		{"array of slices", reflect.TypeFor[[2][]*entity](), ir.KindArray, "provider.entity[][]", pkg},
		{"named slice", reflect.TypeFor[names](), ir.KindNamed, "provider.names", pkg},
		{"error interface", reflect.TypeFor[error](), ir.KindNamed, "error", BuiltinModuleName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td, err := Describe(tt.typ)
			if err != nil {
				t.Fatalf("Describe() error = %v", err)
			}
			if td.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", td.Kind(), tt.kind)
			}
			if td.FullName() != tt.full {
				t.Errorf("FullName() = %q, want %q", td.FullName(), tt.full)
			}
			if td.Module() != tt.module {
				t.Errorf("Module() = %q, want %q", td.Module(), tt.module)
			}
		})
	}
}

func TestDescribe_Base(t *testing.T) {
	td, err := Describe(reflect.TypeFor[premium]())
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	var chain []string
	for cur := ir.BaseType(td); cur != nil; cur = ir.BaseType(cur) {
		chain = append(chain, cur.FullName())
	}
	want := []string{"provider.account", "provider.entity"}
	if !reflect.DeepEqual(chain, want) {
		t.Errorf("base chain = %v, want %v", chain, want)
	}
}

func TestDescriber_Interfaces(t *testing.T) {
	d := &Describer{Interfaces: []reflect.Type{
		reflect.TypeFor[fmt.Stringer](),
		reflect.TypeFor[io.Reader](),
		reflect.TypeFor[int](),
	}}

	td, err := d.Describe(reflect.TypeFor[account]())
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if !ir.Implements(td, "fmt.Stringer") {
		t.Error("account should implement fmt.Stringer")
	}
	if ir.Implements(td, "io.Reader") {
		t.Error("account does not implement io.Reader")
	}

	td, err = d.Describe(reflect.TypeFor[premium]())
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if got := ir.InterfacesOf(td); !reflect.DeepEqual(got, []string{"fmt.Stringer", "io.Reader"}) {
		t.Errorf("InterfacesOf(premium) = %v", got)
	}
}

func TestDescribe_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"nil", nil},
		{"map", reflect.TypeFor[map[string]int]()},
		{"func", reflect.TypeFor[func()]()},
		{"unnamed struct", reflect.TypeFor[struct{ A int }]()},
		{"generic instantiation", reflect.TypeFor[box[int]]()},
		{"slice of map", reflect.TypeFor[[]map[string]int]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Describe(tt.typ)
			if !errors.Is(err, ErrUnsupported) {
				t.Errorf("Describe() error = %v, want ErrUnsupported", err)
			}
		})
	}
}
