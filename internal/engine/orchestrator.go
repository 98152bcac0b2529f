// Package engine evaluates catalog categories concurrently and merges their
// results into a single types.AuditResults.
package engine

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ancients-collective/winaudit/internal/catalog"
	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// Progress is reported after each category finishes.
type Progress struct {
	Done     int
	Total    int
	Category string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithWorkers caps how many categories, and how many rules within each
// category, run at once. n < 1 selects runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *Orchestrator) {
		if n >= 1 {
			o.workers = n
		}
	}
}

// WithLogger sets the logger used for faults and timing.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithProgress registers an observer. Calls are serialized but arrive in
// completion order, not request order.
func WithProgress(fn func(Progress)) Option {
	return func(o *Orchestrator) { o.progress = fn }
}

// Orchestrator runs categories against one prober.
type Orchestrator struct {
	categories []catalog.Category
	prober     probe.Prober
	workers    int
	log        *zap.Logger
	progress   func(Progress)

	// evalCategory is catalog.Category.EvaluateWith outside tests.
	evalCategory func(catalog.Category, context.Context, probe.Prober, int) types.CategoryResults
}

// New returns an Orchestrator over the given categories.
func New(categories []catalog.Category, p probe.Prober, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		categories: categories,
		prober:     p,
		workers:    runtime.NumCPU(),
		log:        zap.NewNop(),

		evalCategory: catalog.Category.EvaluateWith,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// IDs returns the IDs of every category known to o, in catalog order.
func (o *Orchestrator) IDs() []string {
	ids := make([]string, len(o.categories))
	for i, c := range o.categories {
		ids[i] = c.ID
	}
	return ids
}

// resolve maps requested IDs to categories. An empty request selects every
// category. Duplicates keep their first position.
func (o *Orchestrator) resolve(ids []string) ([]catalog.Category, error) {
	if len(ids) == 0 {
		out := make([]catalog.Category, len(o.categories))
		copy(out, o.categories)
		return out, nil
	}

	byID := make(map[string]catalog.Category, len(o.categories))
	for _, c := range o.categories {
		byID[c.ID] = c
	}

	seen := make(map[string]bool, len(ids))
	out := make([]catalog.Category, 0, len(ids))
	for _, id := range ids {
		c, ok := byID[id]
		if !ok {
			return nil, &UnknownCategoryError{Name: id, Known: o.IDs()}
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, c)
	}
	return out, nil
}

// Run evaluates the requested categories and returns their merged results.
// The only error is *UnknownCategoryError, returned before any work starts.
func (o *Orchestrator) Run(ctx context.Context, ids []string) (*types.AuditResults, error) {
	selected, err := o.resolve(ids)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]types.CategoryResults, len(selected))

	var (
		mu   sync.Mutex
		done int
	)
	report := func(name string) {
		if o.progress == nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		done++
		o.progress(Progress{Done: done, Total: len(selected), Category: name})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, c := range selected {
		i, c := i, c
		g.Go(func() error {
			results[i] = o.evaluate(gctx, c)
			report(c.Name)
			return nil
		})
	}
	_ = g.Wait()

	audit := types.NewAuditResults()
	for _, cr := range results {
		audit.AddCategory(cr)
	}

	o.log.Debug("audit finished",
		zap.Int("categories", len(selected)),
		zap.Int("checks", audit.TotalChecks()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return audit, nil
}

// evaluate runs one category, converting a panic into a single Issue check.
func (o *Orchestrator) evaluate(ctx context.Context, c catalog.Category) (cr types.CategoryResults) {
	defer func() {
		if rec := recover(); rec != nil {
			o.log.Error("category evaluation failed",
				zap.String("category", c.Name),
				zap.Any("panic", rec),
			)
			cr = types.CategoryResults{
				Name: c.Name,
				Checks: []types.Check{{
					Name:        "Evaluation",
					Value:       "Error",
					Status:      types.StatusIssue,
					Description: fmt.Sprintf("category evaluation failed: %v", rec),
				}},
			}
		}
	}()
	return o.evalCategory(c, ctx, o.prober, o.workers)
}
