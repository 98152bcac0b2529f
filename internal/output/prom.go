package output

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ancients-collective/winaudit/internal/types"
)

// PromRegistry returns a registry holding gauges that describe r. Every
// (category, status) pair is present, including zero counts, so alerts
// can match on absence of issues.
func PromRegistry(r *types.AuditResults) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()

	checks := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "winaudit_checks",
		Help: "Number of checks per category and status in the last audit.",
	}, []string{"category", "status"})
	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "winaudit_checks_evaluated",
		Help: "Number of checks evaluated in the last audit.",
	})
	lastRun := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "winaudit_last_run_timestamp_seconds",
		Help: "Unix time the last audit started.",
	})

	for _, c := range []prometheus.Collector{checks, total, lastRun} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering collector: %w", err)
		}
	}

	for _, cat := range r.Ordered() {
		counts := make(map[types.CheckStatus]int, 4)
		for _, c := range cat.Checks {
			counts[c.Status]++
		}
		for _, s := range types.AllStatuses() {
			checks.WithLabelValues(cat.Name, s.String()).Set(float64(counts[s]))
		}
	}
	total.Set(float64(r.TotalChecks()))
	lastRun.Set(float64(r.Timestamp.Unix()))

	return reg, nil
}

// WritePromTextfile writes r in the node_exporter textfile collector format.
// The file is written to a temporary name and renamed into place.
func WritePromTextfile(path string, r *types.AuditResults) error {
	reg, err := PromRegistry(r)
	if err != nil {
		return err
	}
	return prometheus.WriteToTextfile(path, reg)
}
