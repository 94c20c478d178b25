// Package batch resolves and names many independent descriptors in parallel.
package batch

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/broady/typebridge"
	"github.com/broady/typebridge/catalog"
	"github.com/broady/typebridge/ir"
)

// Result is the outcome for one descriptor.
type Result struct {
	Type   string            `json:"type"`
	Module string            `json:"module"`
	Found  bool              `json:"found"`
	Symbol string            `json:"symbol,omitempty"`
	Names  *typebridge.Names `json:"names,omitempty"`

	// Error is set when the descriptor cannot be named or resolved.
	Error string `json:"error,omitempty"`
}

// Resolve resolves and names every descriptor using at most workers
// goroutines. Results are returned in input order. It stops early only if
// ctx is canceled.
func Resolve(ctx context.Context, b *typebridge.Bridge, tds []ir.TypeDescriptor, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(tds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, td := range tds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = one(b, td)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	found := 0
	for _, r := range results {
		if r.Found {
			found++
		}
	}
	b.Logger().Info("batch resolved",
		slog.Int("types", len(tds)),
		slog.Int("found", found),
		slog.Int("workers", workers))
	return results, nil
}

func one(b *typebridge.Bridge, td ir.TypeDescriptor) (r Result) {
	if td == nil {
		return Result{Error: "nil type descriptor"}
	}
	r = Result{Type: td.FullName(), Module: td.Module()}
	if r.Type == "" {
		r.Type = td.Name()
	}

	// A malformed module name is reported per type instead of taking down
	// the whole batch.
	defer func() {
		if rec := recover(); rec != nil {
			err, ok := rec.(error)
			var mne *catalog.ModuleNameError
			if !ok || !errors.As(err, &mne) {
				panic(rec)
			}
			r.Found = false
			r.Symbol = ""
			r.Error = err.Error()
		}
	}()

	names, err := b.NamesOf(td)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.Names = &names
	if rt, ok := b.Resolve(td); ok {
		r.Found = true
		r.Symbol = rt.Symbol.String()
	}
	return r
}
