// Package config loads typebridge configuration.
//
// Values are layered, lowest precedence first: built-in defaults, a YAML
// file, TYPEBRIDGE_* environment variables, and key=value overrides.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/broady/typebridge/internal/validation"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "TYPEBRIDGE_"

// Config holds the identities of the well-known types and modules the
// resolver, canonicalizer and collection cache depend on.
type Config struct {
	// CoreModuleAliases are module names that all mean "the module
	// containing the root object type".
	CoreModuleAliases []string `koanf:"core_module_aliases" schema:"core_module_aliases" validate:"min=1,dive,modulename"`

	// CollectionsModule is the module holding collection types that moved
	// out of the core module.
	CollectionsModule string `koanf:"collections_module" schema:"collections_module" validate:"required,modulename"`

	RootObjectType    string `koanf:"root_object_type" schema:"root_object_type" validate:"required,metaname"`
	SequenceInterface string `koanf:"sequence_interface" schema:"sequence_interface" validate:"required,metaname"`

	// StandardModule is the origin module of the definitions below.
	StandardModule string `koanf:"standard_module" schema:"standard_module" validate:"required,modulename"`

	NullableDefinition      string `koanf:"nullable_definition" schema:"nullable_definition" validate:"required,generic1"`
	ListDefinition          string `koanf:"list_definition" schema:"list_definition" validate:"required,generic1"`
	SequenceDefinition      string `koanf:"sequence_definition" schema:"sequence_definition" validate:"required,generic1"`
	IndexableListDefinition string `koanf:"indexable_list_definition" schema:"indexable_list_definition" validate:"required,generic1"`

	// Workers bounds parallel resolution.
	Workers int `koanf:"workers" schema:"workers" validate:"min=1,max=256"`

	LogLevel string `koanf:"log_level" schema:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		CoreModuleAliases:       []string{"mscorlib", "System.Runtime", "System.Private.CoreLib"},
		CollectionsModule:       "System.Collections",
		RootObjectType:          "System.Object",
		SequenceInterface:       "System.Collections.IEnumerable",
		StandardModule:          "System.Private.CoreLib",
		NullableDefinition:      "System.Nullable`1",
		ListDefinition:          "System.Collections.Generic.List`1",
		SequenceDefinition:      "System.Collections.Generic.IEnumerable`1",
		IndexableListDefinition: "System.Collections.Generic.IList`1",
		Workers:                 4,
		LogLevel:                "info",
	}
}

func (c Config) toMap() map[string]any {
	return map[string]any{
		"core_module_aliases":       c.CoreModuleAliases,
		"collections_module":        c.CollectionsModule,
		"root_object_type":          c.RootObjectType,
		"sequence_interface":        c.SequenceInterface,
		"standard_module":           c.StandardModule,
		"nullable_definition":       c.NullableDefinition,
		"list_definition":           c.ListDefinition,
		"sequence_definition":       c.SequenceDefinition,
		"indexable_list_definition": c.IndexableListDefinition,
		"workers":                   c.Workers,
		"log_level":                 c.LogLevel,
	}
}

// Load reads the configuration from defaults, the YAML file at path (if
// non-empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Default().toMap(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// TYPEBRIDGE_COLLECTIONS_MODULE -> collections_module
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "core_module_aliases" {
			return key, splitList(value)
		}
		return key, value
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var overrideDecoder = schema.NewDecoder()

// ApplyOverrides sets fields from "key=value" pairs using the config keys.
// Repeating a list key (core_module_aliases) appends to the new list.
// The result is validated.
func (c *Config) ApplyOverrides(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}
	values := url.Values{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid override %q: want key=value", p)
		}
		values.Add(key, strings.TrimSpace(value))
	}
	if err := overrideDecoder.Decode(c, values); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	return c.Validate()
}

// Validate checks every field.
func (c Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Level returns the slog level for LogLevel.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
