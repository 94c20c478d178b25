package setup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/broady/typebridge/ir"
	"github.com/broady/typebridge/provider"
)

func TestLoad_Defaults(t *testing.T) {
	f := &Flags{}
	s, err := f.Load(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Bridge.Catalog().Len() != 0 {
		t.Errorf("Catalog().Len() = %d, want 0", s.Bridge.Catalog().Len())
	}
	if s.Config.Workers != 4 {
		t.Errorf("Workers = %d, want 4", s.Config.Workers)
	}
}

func TestLoad_ConfigAndOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typebridge.yaml")
	if err := os.WriteFile(path, []byte("workers: 8\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var logs bytes.Buffer
	f := &Flags{Config: path, Set: []string{"workers=2"}}
	s, err := f.Load(context.Background(), &logs)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Config.Workers != 2 {
		t.Errorf("Workers = %d, want 2", s.Config.Workers)
	}
	if !strings.Contains(logs.String(), "bridge ready") {
		t.Errorf("debug logs missing bridge ready:\n%s", logs.String())
	}
}

func TestLoad_Packages(t *testing.T) {
	const pkg = "github.com/broady/typebridge/provider/testdata"
	f := &Flags{Packages: []string{pkg}, Set: []string{"log_level=error"}}
	s, err := f.Load(context.Background(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Bridge.Catalog().Len() != 2 {
		t.Errorf("Catalog().Len() = %d, want 2", s.Bridge.Catalog().Len())
	}

	tests := []struct {
		td   ir.TypeDescriptor
		want bool
	}{
		{ir.Named("testdata", "Account", pkg), true},
		{ir.Named("testdata", "Missing", pkg), false},
		{ir.Named("", "string", provider.BuiltinModuleName), true},
		{ir.ArrayOf(ir.Named("testdata", "Entity", pkg)), true},
	}
	for _, tt := range tests {
		t.Run(tt.td.FullName(), func(t *testing.T) {
			if _, ok := s.Bridge.Resolve(tt.td); ok != tt.want {
				t.Errorf("Resolve() found = %v, want %v", ok, tt.want)
			}
		})
	}
}
