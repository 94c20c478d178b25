package metaname

import (
	"sync"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		full      string
		namespace string
		name      string
	}{
		{"System.Int32", "System", "Int32"},
		{"Int32", "", "Int32"},
		{"System.Collections.Generic.List`1", "System.Collections.Generic", "List`1"},
		{"My.App.Outer+Inner", "My.App", "Outer+Inner"},
		{"Outer+Inner", "", "Outer+Inner"},
	}
	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			ns, name := Split(tt.full)
			if ns != tt.namespace || name != tt.name {
				t.Errorf("Split(%q) = (%q, %q), want (%q, %q)", tt.full, ns, name, tt.namespace, tt.name)
			}
			if got := Join(ns, name); got != tt.full {
				t.Errorf("Join(Split(%q)) = %q", tt.full, got)
			}
		})
	}
}

func TestArity(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"List`1", 1},
		{"Dictionary`2", 2},
		{"Int32", 0},
		{"Broken`", 0},
		{"Broken`x", 0},
	}
	for _, tt := range tests {
		if got := Arity(tt.name); got != tt.want {
			t.Errorf("Arity(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}

	if got := TotalArity("Outer`1+Inner`2"); got != 3 {
		t.Errorf("TotalArity() = %d, want 3", got)
	}
}

func TestStripArity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"List`1", "List"},
		{"System.Collections.Generic.Dictionary`2", "System.Collections.Generic.Dictionary"},
		{"Outer`1+Inner`2", "Outer+Inner"},
		{"Plain", "Plain"},
		{"Odd`", "Odd`"},
		{"Many`12", "Many"},
	}
	for _, tt := range tests {
		if got := StripArity(tt.in); got != tt.want {
			t.Errorf("StripArity(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDotted(t *testing.T) {
	if got := Dotted("Ns.Outer+Mid+Inner"); got != "Ns.Outer.Mid.Inner" {
		t.Errorf("Dotted() = %q", got)
	}
}

func TestModuleName(t *testing.T) {
	tests := []struct {
		display string
		want    string
		ok      bool
	}{
		{"System.Runtime", "System.Runtime", true},
		{"System.Runtime, Version=4.2.0.0, Culture=neutral, PublicKeyToken=b03f5f7f11d50a3a", "System.Runtime", true},
		{"  mscorlib ", "mscorlib", true},
		{"", "", false},
		{"   ", "", false},
		{", Version=1.0.0.0", "", false},
		{"Version=1.0.0.0", "", false},
	}
	for _, tt := range tests {
		got, ok := ModuleName(tt.display)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ModuleName(%q) = (%q, %v), want (%q, %v)", tt.display, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModuleKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
		ok      bool
	}{
		{"System.Runtime", "system.runtime", true},
		{"SYSTEM.RUNTIME, Version=4.2.0.0", "system.runtime", true},
		{"", "", false},
		{"Version=1.0.0.0", "", false},
	}
	for _, tt := range tests {
		got, ok := ModuleKey(tt.display)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ModuleKey(%q) = (%q, %v), want (%q, %v)", tt.display, got, ok, tt.want, tt.ok)
		}
	}
}

func TestModuleKey_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				if got, _ := ModuleKey("MsCorLib, Version=4.0.0.0"); got != "mscorlib" {
					t.Errorf("ModuleKey() = %q, want mscorlib", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
