// Package batch runs many independent simplifications concurrently. Each
// expression gets its own aref.Cache and its own search.Run call -- the
// core's single-threaded-per-search contract (§5) is untouched; only
// independent searches run concurrently with each other, the way
// golang.org/x/sync/errgroup's SetLimit fan-out idiom is used throughout
// the example pack for bounded concurrent independent work.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lexiform/algex/internal/aref"
	"github.com/lexiform/algex/internal/config"
	"github.com/lexiform/algex/internal/exprparse"
	"github.com/lexiform/algex/internal/search"
	"github.com/lexiform/algex/internal/smodel"
)

// Result is one expression's outcome, indexed back to its input position.
type Result struct {
	Index      int
	Expression string
	Outcome    smodel.Outcome
	Err        error
}

// Run simplifies every expr in exprs concurrently, bounded by workers
// in-flight at once. A cancelled ctx cancels every in-flight search.
func Run(ctx context.Context, exprs []string, cfg *config.Config, opts smodel.Options, workers int) ([]Result, error) {
	results := make([]Result, len(exprs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, expr := range exprs {
		i, expr := i, expr
		g.Go(func() error {
			results[i] = Result{Index: i, Expression: expr}

			cache := aref.NewCache(0)
			refs, err := exprparse.Parse(expr, cache)
			if err != nil {
				results[i].Err = err
				return nil // a single bad expression doesn't cancel the batch
			}

			root := smodel.NewRoot(refs, cfg)
			outcome, err := search.Run(gctx, cache, root, cfg, opts)
			results[i].Outcome = outcome
			results[i].Err = err
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
