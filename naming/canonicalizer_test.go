package naming

import (
	"testing"

	"github.com/broady/typebridge/ir"
)

func newCanonicalizer(t *testing.T) *Canonicalizer {
	t.Helper()
	c, err := NewCanonicalizer(Options{NullableDefinition: ir.Named("System", "Nullable`1", coreLib)})
	if err != nil {
		t.Fatalf("NewCanonicalizer() error = %v", err)
	}
	return c
}

func TestNewCanonicalizer_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"missing definition", Options{}},
		{"not generic", Options{NullableDefinition: int32Type}},
		{"two parameters", Options{NullableDefinition: dictDef}},
		{"malformed alias", Options{NullableDefinition: ir.Named("System", "Nullable`1", coreLib), CoreAliases: []string{""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCanonicalizer(tt.opts); err == nil {
				t.Error("NewCanonicalizer() should fail")
			}
		})
	}
}

func TestIsNullableValueType(t *testing.T) {
	c := newCanonicalizer(t)
	nullableFrom := func(module string) ir.TypeDescriptor {
		return ir.Generic(ir.Named("System", "Nullable`1", module), int32Type)
	}

	tests := []struct {
		name   string
		td     ir.TypeDescriptor
		want   ir.TypeDescriptor
		wantOK bool
	}{
		{"nullable int", ir.Generic(ir.Named("System", "Nullable`1", coreLib), int32Type), int32Type, true},
		{"module display name", ir.Generic(ir.Named("System", "Nullable`1", "system.private.corelib, Version=8.0.0.0"), int32Type), int32Type, true},
		{"other single-arg generic", ir.Generic(listDef, int32Type), nil, false},
		{"System.Runtime alias", nullableFrom("System.Runtime"), int32Type, true},
		{"mscorlib alias", nullableFrom("mscorlib"), int32Type, true},
		{"alias display name", nullableFrom("MSCORLIB, Version=4.0.0.0, Culture=neutral"), int32Type, true},
		{"same name other module", nullableFrom("Legacy"), nil, false},
		{"plain", int32Type, nil, false},
		{"array", ir.ArrayOf(int32Type), nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.IsNullableValueType(tt.td)
			if ok != tt.wantOK {
				t.Fatalf("IsNullableValueType() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("IsNullableValueType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNullableValueType_CustomAliases(t *testing.T) {
	c, err := NewCanonicalizer(Options{
		NullableDefinition: ir.Named("Go", "Optional`1", "Runtime"),
		CoreAliases:        []string{"Runtime", "Base"},
	})
	if err != nil {
		t.Fatalf("NewCanonicalizer() error = %v", err)
	}
	if _, ok := c.IsNullableValueType(ir.Generic(ir.Named("Go", "Optional`1", "base"), int32Type)); !ok {
		t.Error("definition from an alias of the configured module should match")
	}
	if _, ok := c.IsNullableValueType(ir.Generic(ir.Named("Go", "Optional`1", "mscorlib"), int32Type)); ok {
		t.Error("default aliases should not apply when CoreAliases is set")
	}
	if _, ok := c.IsNullableValueType(ir.Generic(ir.Named("Go", "Maybe`1", "Base"), int32Type)); ok {
		t.Error("a different definition name should not match")
	}
}

func TestCompatibleBaseClass(t *testing.T) {
	c := newCanonicalizer(t)
	object := ir.Named("System", "Object", coreLib)
	typeC := &ir.NamedDescriptor{Namespace: "App", Simple: "C", Origin: "App", Base: object}
	typeB := &ir.NamedDescriptor{Namespace: "App", Simple: "B", Origin: "App", Base: typeC}
	typeA := &ir.NamedDescriptor{Namespace: "App", Simple: "A", Origin: "App", Base: typeB}

	tests := []struct {
		name     string
		fullName string
		want     ir.TypeDescriptor
	}{
		{"self", "App.A", typeA},
		{"parent", "App.B", typeB},
		{"grandparent", "App.C", typeC},
		{"root object excluded", "System.Object", nil},
		{"absent", "App.D", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CompatibleBaseClass(typeA, tt.fullName); got != tt.want {
				t.Errorf("CompatibleBaseClass(A, %q) = %v, want %v", tt.fullName, got, tt.want)
			}
		})
	}

	if got := c.CompatibleBaseClass(nil, "App.A"); got != nil {
		t.Errorf("CompatibleBaseClass(nil) = %v, want nil", got)
	}
}
