// Package setup builds a Bridge from command-line flags.
package setup

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/broady/typebridge"
	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/config"
	"github.com/broady/typebridge/manifest"
	"github.com/broady/typebridge/provider"
)

// Flags are shared by every command that needs a Bridge.
type Flags struct {
	Manifest string   `arg:"" optional:"" help:"YAML manifest of modules and types." type:"path"`
	Config   string   `help:"YAML configuration file." short:"c" type:"path"`
	Set      []string `help:"Override a configuration key (key=value). Repeatable." short:"s"`
	Packages []string `help:"Go package patterns to load as modules." short:"p"`
	Dir      string   `help:"Directory package patterns are resolved in." default:"."`
}

// Session is everything a command works with.
type Session struct {
	Config   config.Config
	Manifest *manifest.Manifest
	Bridge   *typebridge.Bridge
	Logger   *slog.Logger
}

// Load reads the configuration, the manifest and any Go packages, and
// builds a Bridge over all their modules. Logs go to logOut.
func (f *Flags) Load(ctx context.Context, logOut io.Writer) (*Session, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyOverrides(f.Set); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Level()}))

	m := &manifest.Manifest{}
	if f.Manifest != "" {
		if m, err = manifest.LoadFile(f.Manifest); err != nil {
			return nil, err
		}
	}
	entries, err := m.Entries()
	if err != nil {
		return nil, err
	}

	if len(f.Packages) > 0 {
		sp := &provider.SourceProvider{}
		pkgEntries, err := sp.LoadModules(ctx, provider.SourceOptions{Patterns: f.Packages, Dir: f.Dir})
		if err != nil {
			return nil, fmt.Errorf("load packages: %w", err)
		}
		entries = append(entries, catalog.Entry{Name: provider.BuiltinModuleName, Module: provider.BuiltinModule()})
		entries = append(entries, pkgEntries...)
		logger.Debug("loaded packages", slog.Int("modules", len(pkgEntries)))
	}

	b, err := typebridge.New(cfg, entries, typebridge.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &Session{Config: cfg, Manifest: m, Bridge: b, Logger: logger}, nil
}
