package types

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// AuditResults is the aggregate of one audit run.
// It is filled by a single goroutine after the parallel phase and is
// read-only afterwards.
type AuditResults struct {
	// Categories maps a category name to its results.
	Categories map[string]CategoryResults `json:"categories"`

	// Timestamp is when the run started.
	Timestamp time.Time `json:"timestamp"`

	// RunID identifies this run across exported artifacts.
	RunID string `json:"run_id"`

	// System describes the audited machine, when known.
	System *SystemInfo `json:"system,omitempty"`

	order []string
}

// NewAuditResults returns an empty result set stamped with the current time.
func NewAuditResults() *AuditResults {
	return &AuditResults{
		Categories: make(map[string]CategoryResults),
		Timestamp:  time.Now(),
		RunID:      uuid.NewString(),
	}
}

// AddCategory inserts c, replacing any category with the same name.
// A replaced category keeps the position of its first insertion.
func (r *AuditResults) AddCategory(c CategoryResults) {
	if r.Categories == nil {
		r.Categories = make(map[string]CategoryResults)
	}
	if _, exists := r.Categories[c.Name]; !exists {
		r.order = append(r.order, c.Name)
	}
	r.Categories[c.Name] = c
}

// Category looks up a category by name.
func (r *AuditResults) Category(name string) (CategoryResults, bool) {
	c, ok := r.Categories[name]
	return c, ok
}

// Names returns category names in insertion order. Categories present in
// the map but never passed through AddCategory (e.g. after decoding JSON)
// follow in map order.
func (r *AuditResults) Names() []string {
	names := make([]string, 0, len(r.Categories))
	seen := make(map[string]bool, len(r.order))
	for _, n := range r.order {
		if _, ok := r.Categories[n]; ok && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	var rest []string
	for n := range r.Categories {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Ordered returns the categories in the order given by Names.
func (r *AuditResults) Ordered() []CategoryResults {
	names := r.Names()
	out := make([]CategoryResults, 0, len(names))
	for _, n := range names {
		out = append(out, r.Categories[n])
	}
	return out
}

// TotalChecks counts every check across all categories.
func (r *AuditResults) TotalChecks() int {
	total := 0
	for _, c := range r.Categories {
		total += len(c.Checks)
	}
	return total
}

// CountStatus counts the checks with status s across all categories.
func (r *AuditResults) CountStatus(s CheckStatus) int {
	n := 0
	for _, c := range r.Categories {
		for _, check := range c.Checks {
			if check.Status == s {
				n++
			}
		}
	}
	return n
}

// Summary is a snapshot of the status counts.
type Summary struct {
	Total   int `json:"total"`
	Optimal int `json:"optimal"`
	Warning int `json:"warning"`
	Issue   int `json:"issue"`
	Info    int `json:"info"`
}

// Summarize computes a Summary by scanning the current results.
func (r *AuditResults) Summarize() Summary {
	return Summary{
		Total:   r.TotalChecks(),
		Optimal: r.CountStatus(StatusOptimal),
		Warning: r.CountStatus(StatusWarning),
		Issue:   r.CountStatus(StatusIssue),
		Info:    r.CountStatus(StatusInfo),
	}
}
