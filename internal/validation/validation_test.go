package validation

import (
	"errors"
	"strings"
	"testing"
)

type inner struct {
	Name string `yaml:"name" validate:"required,metaname"`
}

type sample struct {
	Module   string   `koanf:"module" validate:"required,modulename"`
	Nullable string   `koanf:"nullable" validate:"required,generic1"`
	Aliases  []string `koanf:"aliases" validate:"min=1,dive,modulename"`
	Level    string   `koanf:"level" validate:"oneof=debug info"`
	Items    []inner  `yaml:"items" validate:"dive"`
}

func valid() sample {
	return sample{
		Module:   "System.Private.CoreLib, Version=8.0.0.0",
		Nullable: "System.Nullable`1",
		Aliases:  []string{"mscorlib"},
		Level:    "info",
		Items:    []inner{{Name: "My.App.Outer+Inner"}},
	}
}

func TestStruct_Valid(t *testing.T) {
	s := valid()
	if err := Struct(s); err != nil {
		t.Errorf("Struct() = %v, want nil", err)
	}
}

func TestStruct_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*sample)
		field   string
		message string
	}{
		{"missing module", func(s *sample) { s.Module = "" }, "module", "required"},
		{"bad module", func(s *sample) { s.Module = "Version=1" }, "module", "must be a module name"},
		{"not generic", func(s *sample) { s.Nullable = "System.Int32" }, "nullable", "must name a generic definition with one type parameter"},
		{"two params", func(s *sample) { s.Nullable = "System.Collections.Generic.Dictionary`2" }, "nullable", "must name a generic definition with one type parameter"},
		{"no aliases", func(s *sample) { s.Aliases = nil }, "aliases", "must have at least 1 item(s)"},
		{"bad alias", func(s *sample) { s.Aliases = []string{"ok", ""} }, "aliases[1]", "must be a module name"},
		{"bad level", func(s *sample) { s.Level = "trace" }, "level", "must be one of: debug info"},
		{"empty segment", func(s *sample) { s.Items[0].Name = "My..Thing" }, "items[0].name", "must be a metadata name"},
		{"empty nested", func(s *sample) { s.Items[0].Name = "Outer+" }, "items[0].name", "must be a metadata name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(&s)
			err := Struct(s)
			var verr *Error
			if !errors.As(err, &verr) {
				t.Fatalf("Struct() = %v, want *Error", err)
			}
			if got := verr.Fields[tt.field]; got != tt.message {
				t.Errorf("Fields[%q] = %q, want %q (all: %v)", tt.field, got, tt.message, verr.Fields)
			}
			if !strings.Contains(err.Error(), tt.field+": "+tt.message) {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	if err == nil {
		t.Fatal("Struct(42) should fail")
	}
	var verr *Error
	if errors.As(err, &verr) {
		t.Errorf("Struct(42) = %v, want a non-field error", err)
	}
}
