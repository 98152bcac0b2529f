// Package catalog holds the fixed set of configuration checks, grouped into
// categories. Every check is a pure function of the facts a probe.Prober
// returns, so categories can be evaluated concurrently and against fakes.
package catalog

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

// Outcome is what a rule observed and how it classified the observation.
type Outcome struct {
	Value  string
	Status types.CheckStatus

	// Description replaces the rule's static description when non-empty.
	Description string
}

// Rule produces exactly one check.
type Rule struct {
	// Name becomes Check.Name and must be stable across releases.
	Name string

	// Description explains what is inspected and what the recommendation is.
	Description string

	// Eval reads facts through p, substitutes defaults for absent facts and
	// classifies the result. It must not depend on any other rule.
	Eval func(p probe.Prober) Outcome
}

// Category is a named, ordered list of rules.
type Category struct {
	// ID is the short lowercase identifier used on the command line.
	ID string

	// Name is the display name and the key in types.AuditResults.
	Name string

	Rules []Rule
}

// run evaluates r, turning a panic into an Issue check so one broken rule
// cannot take down its siblings.
func (r Rule) run(p probe.Prober) (check types.Check) {
	defer func() {
		if rec := recover(); rec != nil {
			check = types.Check{
				Name:        r.Name,
				Value:       "Error",
				Status:      types.StatusIssue,
				Description: fmt.Sprintf("check failed: %v", rec),
			}
		}
	}()

	out := r.Eval(p)
	desc := out.Description
	if desc == "" {
		desc = r.Description
	}
	return types.Check{
		Name:        r.Name,
		Value:       out.Value,
		Status:      out.Status,
		Description: desc,
	}
}

// Evaluate runs every rule of c concurrently with up to runtime.NumCPU()
// workers.
func (c Category) Evaluate(ctx context.Context, p probe.Prober) types.CategoryResults {
	return c.EvaluateWith(ctx, p, runtime.NumCPU())
}

// EvaluateWith runs every rule of c with at most limit concurrent rules.
// Checks are stored by declaration index, so the result order never depends
// on which rule finished first.
func (c Category) EvaluateWith(ctx context.Context, p probe.Prober, limit int) types.CategoryResults {
	if limit < 1 {
		limit = 1
	}
	checks := make([]types.Check, len(c.Rules))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, rule := range c.Rules {
		i, rule := i, rule
		g.Go(func() error {
			checks[i] = rule.run(p)
			return nil
		})
	}
	_ = g.Wait()

	return types.CategoryResults{Name: c.Name, Checks: checks}
}

var categories = []Category{
	{ID: "latency", Name: "Latency", Rules: latencyRules},
	{ID: "cpu", Name: "CPU", Rules: cpuRules},
	{ID: "gpu", Name: "GPU", Rules: gpuRules},
	{ID: "memory", Name: "Memory", Rules: memoryRules},
	{ID: "storage", Name: "Storage", Rules: storageRules},
	{ID: "network", Name: "Network", Rules: networkRules},
	{ID: "audio", Name: "Audio", Rules: audioRules},
	{ID: "input", Name: "Input", Rules: inputRules},
	{ID: "stability", Name: "Stability", Rules: stabilityRules},
	{ID: "services", Name: "Services", Rules: servicesRules},
	{ID: "security", Name: "Security", Rules: securityRules},
	{ID: "platform", Name: "Platform", Rules: platformRules},
	{ID: "thermal", Name: "Thermal", Rules: thermalRules},
	{ID: "power", Name: "Power", Rules: powerRules},
}

// All returns every category in catalog order.
func All() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IDs returns every category ID in catalog order.
func IDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

// Lookup finds a category by ID.
func Lookup(id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
