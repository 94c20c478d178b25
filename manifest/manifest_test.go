package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/typebridge/ir"
)

const sample = `
modules:
  - name: System.Private.CoreLib, Version=8.0.0.0
    types:
      - name: System.Object
      - name: System.Int32
        base: System.ValueType
  - name: App
    types:
      - name: App.Outer+Inner
types:
  - name: System.Collections.Generic.List` + "`1" + `
    module: System.Runtime
    interfaces: [System.Collections.IEnumerable]
    args:
      - {name: System.Int32, module: mscorlib}
  - array:
      array: {name: System.String, module: mscorlib}
  - name: App.Outer+Inner
    module: App
    base: {name: App.Base, module: App}
    forwardedTo: Modern
  - param: T
`

func TestLoad(t *testing.T) {
	m, err := Load(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	entries, err := m.Entries()
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Name != "System.Private.CoreLib, Version=8.0.0.0" || entries[0].Module.Len() != 2 {
		t.Errorf("entries[0] = %s with %d types", entries[0].Name, entries[0].Module.Len())
	}
	if s, ok := entries[0].Module.LookupType("System.Int32"); !ok || s.BaseName() != "System.ValueType" {
		t.Errorf("System.Int32 = %v, %v", s, ok)
	}

	tds, err := m.Descriptors()
	if err != nil {
		t.Fatalf("Descriptors() error = %v", err)
	}
	if len(tds) != 4 {
		t.Fatalf("len(Descriptors()) = %d, want 4", len(tds))
	}

	list, ok := tds[0].(*ir.GenericDescriptor)
	if !ok {
		t.Fatalf("tds[0] = %T, want generic", tds[0])
	}
	if list.FullName() != "System.Collections.Generic.List`1" || list.Module() != "System.Runtime" {
		t.Errorf("list = %s in %s", list.FullName(), list.Module())
	}
	if !ir.Implements(list, "System.Collections.IEnumerable") {
		t.Error("list should implement IEnumerable")
	}
	if len(list.Args) != 1 || list.Args[0].FullName() != "System.Int32" {
		t.Errorf("list.Args = %v", list.Args)
	}

	if got := tds[1].FullName(); got != "System.String[][]" {
		t.Errorf("tds[1].FullName() = %q", got)
	}

	nested, ok := tds[2].(*ir.NestedDescriptor)
	if !ok {
		t.Fatalf("tds[2] = %T, want nested", tds[2])
	}
	if nested.Forward == nil || nested.Forward.Module != "Modern" {
		t.Errorf("Forward = %v", nested.Forward)
	}
	if nested.Base == nil || nested.Base.FullName() != "App.Base" {
		t.Errorf("Base = %v", nested.Base)
	}

	if tds[3].Kind() != ir.KindTypeParameter || tds[3].Name() != "T" {
		t.Errorf("tds[3] = %v", tds[3])
	}
}

func TestLoad_Empty(t *testing.T) {
	m, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(m.Modules) != 0 || len(m.Types) != 0 {
		t.Errorf("Load(\"\") = %+v", m)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"unknown key", "modules: []\nextra: 1\n", "field extra not found"},
		{"module without name", "modules:\n  - types: []\n", "modules[0].name: required"},
		{"bad type name", "modules:\n  - name: M\n    types:\n      - name: A..B\n", "modules[0].types[0].name: must be a metadata name"},
		{"name without module", "types:\n  - name: A.B\n", "types[0]: module is required with name"},
		{"two shapes", "types:\n  - name: A.B\n    module: M\n    param: T\n", "types[0]: exactly one of name, array or param"},
		{"empty node", "types:\n  - {}\n", "types[0]: exactly one of"},
		{"module on array", "types:\n  - array: {param: T}\n    module: M\n", "require name"},
		{"bad nested arg", "types:\n  - name: L`1\n    module: M\n    args:\n      - {name: X}\n", "types[0].args[0]: module is required"},
		{"bad forward", "types:\n  - name: A.B\n    module: M\n    forwardedTo: \"Version=1\"\n", "types[0].forwardedTo: must be a module name"},
		{"syntax", "types: [\n", "failed to decode manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestEntries_Duplicate(t *testing.T) {
	m, err := Load(strings.NewReader("modules:\n  - name: M\n    types:\n      - name: A\n      - name: A\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, err := m.Entries(); err == nil || !strings.Contains(err.Error(), "duplicate type") {
		t.Errorf("Entries() error = %v, want duplicate type", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "types.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(m.Types) != 4 {
		t.Errorf("len(Types) = %d, want 4", len(m.Types))
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() of a missing file should fail")
	}
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("types:\n  - {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("LoadFile() error = %v, want path in message", err)
	}
}
