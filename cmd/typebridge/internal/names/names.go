package names

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/broady/typebridge/cmd/typebridge/internal/setup"
	"github.com/broady/typebridge/internal/batch"
	"github.com/broady/typebridge/sink"
)

// ReportFile is the report name used when printing to stdout.
const ReportFile = "names.json"

type Cmd struct {
	setup.Flags `embed:""`

	Out     string `help:"Write the report to this file instead of stdout." short:"o" type:"path"`
	Workers int    `help:"Parallel workers (default: from config)." short:"w"`
}

// Report is the JSON document written by the names command.
type Report struct {
	Catalog string         `json:"catalog"`
	Types   []batch.Result `json:"types"`
}

func (c *Cmd) Run() error {
	return c.run(context.Background(), os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	s, err := c.Load(ctx, stderr)
	if err != nil {
		return err
	}

	tds, err := s.Manifest.Descriptors()
	if err != nil {
		return err
	}

	workers := c.Workers
	if workers == 0 {
		workers = s.Config.Workers
	}
	results, err := batch.Resolve(ctx, s.Bridge, tds, workers)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	report := Report{Catalog: s.Bridge.Catalog().String(), Types: results}

	if c.Out == "" {
		return sink.WriteJSON(ctx, &sink.WriterSink{W: stdout}, ReportFile, report)
	}
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("resolve output path: %w", err)
	}
	fs := sink.NewFilesystemSink(filepath.Dir(out))
	if err := sink.WriteJSON(ctx, fs, filepath.Base(out), report); err != nil {
		return err
	}
	fmt.Fprintf(stderr, "✓ Wrote %d types to %s\n", len(results), out)
	return nil
}
