package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/broady/typebridge/cmd/typebridge/internal/setup"
	"github.com/broady/typebridge/internal/batch"
)

type Cmd struct {
	setup.Flags `embed:""`

	Strict bool `help:"Fail if any manifest type does not resolve."`
}

func (c *Cmd) Run() error {
	return c.run(context.Background(), os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	s, err := c.Load(ctx, stderr)
	if err != nil {
		return err
	}
	cat := s.Bridge.Catalog()

	fmt.Fprintf(stdout, "✓ %d modules\n", cat.Len())
	for _, m := range cat.Modules() {
		ns := m.Namespaces()
		fmt.Fprintf(stdout, "  %s: %d types", m.Name(), m.Len())
		if len(ns) > 0 {
			fmt.Fprintf(stdout, " in %s", strings.Join(ns, ", "))
		}
		fmt.Fprintln(stdout)
	}

	if core := cat.Core(); core != nil {
		fmt.Fprintf(stdout, "✓ Core module: %s\n", core.Name())
	} else {
		fmt.Fprintf(stdout, "✗ No module defines %s\n", s.Config.RootObjectType)
	}
	if coll := cat.Collections(); coll != nil {
		fmt.Fprintf(stdout, "✓ Collections module: %s\n", coll.Name())
	} else {
		fmt.Fprintf(stdout, "- Collections module %s not loaded\n", s.Config.CollectionsModule)
	}

	tds, err := s.Manifest.Descriptors()
	if err != nil {
		return err
	}
	if len(tds) == 0 {
		return nil
	}
	results, err := batch.Resolve(ctx, s.Bridge, tds, s.Config.Workers)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	var unresolved []string
	for _, r := range results {
		if r.Found {
			continue
		}
		line := r.Type + " (" + r.Module + ")"
		if r.Error != "" {
			line += ": " + r.Error
		}
		unresolved = append(unresolved, line)
	}
	fmt.Fprintf(stdout, "✓ %d of %d types resolved\n", len(results)-len(unresolved), len(results))
	for _, u := range unresolved {
		fmt.Fprintf(stdout, "  ✗ %s\n", u)
	}
	if c.Strict && len(unresolved) > 0 {
		return fmt.Errorf("%d types did not resolve", len(unresolved))
	}
	return nil
}
