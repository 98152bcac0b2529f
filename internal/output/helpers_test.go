package output

import (
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"

	"github.com/ancients-collective/winaudit/internal/types"
)

// testTimestamp is a fixed time for deterministic test output.
var testTimestamp = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

const testRunID = "6f1c2a9e-4b7d-4c55-9a30-2d8e1f0b7c41"

// newTestResults builds representative AuditResults covering every status
// and the characters the emitters must escape.
func newTestResults() *types.AuditResults {
	r := &types.AuditResults{
		Timestamp: testTimestamp,
		RunID:     testRunID,
		System: &types.SystemInfo{
			Hostname:        "test-host",
			OS:              "windows",
			Platform:        "Microsoft Windows 11 Pro",
			PlatformVersion: "10.0.22631",
			Arch:            "amd64",
			Manufacturer:    "Contoso",
			Model:           "Workstation 9",
			Environment:     types.EnvBareMetal,
			Elevated:        true,
		},
	}
	r.AddCategory(types.CategoryResults{
		Name: "Latency",
		Checks: []types.Check{
			{Name: "HPET (High Precision Event Timer)", Value: "Disabled", Status: types.StatusOptimal, Description: "HPET can add latency."},
			{Name: "System Responsiveness (MMCSS)", Value: "20%", Status: types.StatusWarning, Description: "Lower is better."},
		},
	})
	r.AddCategory(types.CategoryResults{
		Name: "Security",
		Checks: []types.Check{
			{Name: "SMBv1", Value: "Enabled", Status: types.StatusIssue, Description: `Legacy "SMB1" protocol <unsafe> & old`},
			{Name: "Injected", Value: "=1+1", Status: types.StatusInfo},
			{Name: "Percent", Value: "5%", Status: types.StatusInfo, Description: "-rm 'x'"},
		},
	})
	return r
}

// newCleanResults has only optimal and informational checks.
func newCleanResults() *types.AuditResults {
	r := &types.AuditResults{Timestamp: testTimestamp, RunID: testRunID}
	r.AddCategory(types.CategoryResults{
		Name: "CPU",
		Checks: []types.Check{
			{Name: "Processor", Value: "Test CPU", Status: types.StatusInfo, Description: "CPU model."},
			{Name: "Core Parking", Value: "Disabled", Status: types.StatusOptimal, Description: "Parking adds wake latency."},
		},
	})
	return r
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
