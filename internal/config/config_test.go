package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/winaudit/internal/output"
)

var testCategories = []string{"latency", "cpu", "gpu"}

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "winaudit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `categories: [cpu, gpu]
workers: 4
verbose: true
outputs:
  json: report.json
  csv: report.csv
  prom: winaudit.prom
`

func TestLoad_Valid(t *testing.T) {
	cfg, err := New(testCategories).Load(writeYAML(t, validYAML))

	require.NoError(t, err)
	assert.Equal(t, []string{"cpu", "gpu"}, cfg.Categories)
	assert.Equal(t, 4, cfg.Workers)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Quiet)
	assert.Equal(t, "report.json", cfg.Outputs.JSON)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New(testCategories).Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestParse_Empty(t *testing.T) {
	cfg, err := New(testCategories).Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParse_UnknownKeyRejected(t *testing.T) {
	_, err := New(testCategories).Parse([]byte("worker: 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
	assert.Contains(t, err.Error(), "worker")
}

func TestParse_UnknownCategory(t *testing.T) {
	_, err := New(testCategories).Parse([]byte("categories: [cpu, gpuu]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `categories[1]: unknown category "gpuu"`)
	assert.Contains(t, err.Error(), "known: cpu, gpu, latency")
}

func TestParse_WorkersRange(t *testing.T) {
	_, err := New(testCategories).Parse([]byte("workers: 1000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be between 0 and 256")

	_, err = New(testCategories).Parse([]byte("workers: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workers must be between 0 and 256")
}

func TestParse_WorkersBoundIsMaxWorkers(t *testing.T) {
	cfg, err := New(testCategories).Parse([]byte(fmt.Sprintf("workers: %d\n", MaxWorkers)))
	require.NoError(t, err)
	assert.Equal(t, MaxWorkers, cfg.Workers)

	_, err = New(testCategories).Parse([]byte(fmt.Sprintf("workers: %d\n", MaxWorkers+1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("between 0 and %d", MaxWorkers))
}

func TestParse_MultipleErrorsOnePerLine(t *testing.T) {
	_, err := New(testCategories).Parse([]byte("categories: [x]\nworkers: 999\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed:\n")
	assert.Contains(t, err.Error(), "\n  workers must be between 0 and 256")
	assert.Contains(t, err.Error(), "\n  categories[0]: unknown category")
}

func TestParse_VerboseAndQuiet(t *testing.T) {
	_, err := New(testCategories).Parse([]byte("verbose: true\nquiet: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestOutputs_Targets(t *testing.T) {
	cfg, err := New(testCategories).Parse([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, []output.Target{
		{Format: output.FormatJSON, Path: "report.json"},
		{Format: output.FormatCSV, Path: "report.csv"},
		{Format: output.FormatProm, Path: "winaudit.prom"},
	}, cfg.Outputs.Targets())

	assert.Empty(t, Outputs{}.Targets())
}
