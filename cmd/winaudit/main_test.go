package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/winaudit/internal/probe"
	"github.com/ancients-collective/winaudit/internal/types"
)

func init() {
	color.NoColor = true
}

const keyMultimedia = `SOFTWARE\Microsoft\Windows NT\CurrentVersion\Multimedia\SystemProfile`

// writeTestSnapshot records a handful of facts for replay.
func writeTestSnapshot(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	snap := &probe.Snapshot{
		Taken: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		Host:  "rig",
		Values: map[string]interface{}{
			probe.Registry(probe.HKLM, keyMultimedia, "SystemResponsiveness").String():   10,
			probe.Registry(probe.HKLM, keyMultimedia, "NetworkThrottlingIndex").String(): uint64(0xFFFFFFFF),
			probe.Service("Audiosrv").String():                                            probe.StateRunning,
		},
	}
	require.NoError(t, probe.WriteSnapshot(path, snap))
	return path
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "winaudit", cmd.Use)

	for _, name := range []string{"audit", "categories", "backup", "apply", "restore"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestAuditFlags(t *testing.T) {
	root := newRootCommand()
	audit, _, err := root.Find([]string{"audit"})
	require.NoError(t, err)

	for _, cmd := range []*cobra.Command{root, audit} {
		for _, name := range []string{"json", "html", "csv", "jsonl", "prom", "category", "quiet", "verbose", "no-color", "config", "snapshot", "workers"} {
			assert.NotNil(t, cmd.Flags().Lookup(name), "%s --%s", cmd.Name(), name)
		}
		assert.Equal(t, "q", cmd.Flags().Lookup("quiet").Shorthand)
		assert.Equal(t, "0", cmd.Flags().Lookup("workers").DefValue)
	}
}

func TestExecute_SnapshotAuditWithExports(t *testing.T) {
	snap := writeTestSnapshot(t)
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	csvPath := filepath.Join(dir, "report.csv")

	code, stdout, stderr := run(t, "--snapshot", snap, "--category", "latency,audio",
		"--json", jsonPath, "--csv", csvPath, "--no-color")

	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Windows System Audit")
	assert.Contains(t, stdout, "rig")
	assert.Contains(t, stderr, "JSON report written to "+jsonPath)
	assert.Contains(t, stderr, "CSV report written to "+csvPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var res types.AuditResults
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Len(t, res.Categories, 2)

	latency := res.Categories["Latency"]
	var found bool
	for _, c := range latency.Checks {
		if c.Name == "System Responsiveness (MMCSS)" {
			found = true
			assert.Equal(t, "10%", c.Value)
			assert.Equal(t, types.StatusOptimal, c.Status)
		}
	}
	assert.True(t, found)

	csv, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(csv), `"Audio","Windows Audio Service","Running","Optimal",`)
}

func TestExecute_AuditSubcommandQuiet(t *testing.T) {
	code, stdout, _ := run(t, "audit", "--snapshot", writeTestSnapshot(t), "--quiet")
	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
}

func TestExecute_UnknownCategory(t *testing.T) {
	code, stdout, stderr := run(t, "--snapshot", writeTestSnapshot(t), "--category", "cpuu")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `Unknown category "cpuu"`)
	assert.Contains(t, stderr, "Did you mean: cpu")
	assert.Contains(t, stderr, "winaudit categories")
}

func TestExecute_ExportFailureExitsOne(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "missing", "report.json")
	good := filepath.Join(dir, "report.html")

	code, _, stderr := run(t, "--snapshot", writeTestSnapshot(t), "--quiet", "--json", bad, "--html", good)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "✗ JSON export to "+bad)
	_, err := os.Stat(good)
	assert.NoError(t, err, "HTML export is independent of the JSON failure")
}

func TestExecute_VerboseAndQuiet(t *testing.T) {
	code, _, stderr := run(t, "--verbose", "--quiet")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "mutually exclusive")
}

func TestExecute_BadWorkers(t *testing.T) {
	code, _, stderr := run(t, "--workers", "1000")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--workers")
}

func TestExecute_Stubs(t *testing.T) {
	for _, args := range [][]string{{"apply"}, {"apply", "gaming"}, {"restore", "backup.yaml"}} {
		code, _, stderr := run(t, args...)
		assert.Equal(t, 1, code, args)
		assert.Contains(t, stderr, "not implemented")
	}
}

func TestExecute_Categories(t *testing.T) {
	code, stdout, _ := run(t, "categories")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "latency")
	assert.Contains(t, stdout, "Latency")
	assert.Contains(t, stdout, "power")
}

func TestExecute_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "from-config.json")
	cfgPath := filepath.Join(dir, "winaudit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("categories: [gpu]\nquiet: true\noutputs:\n  json: "+jsonPath+"\n"), 0o644))

	code, stdout, stderr := run(t, "--config", cfgPath, "--snapshot", writeTestSnapshot(t))
	require.Equal(t, 0, code, stderr)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var res types.AuditResults
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, []string{"GPU"}, res.Names())
}

func TestExecute_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "r.json")
	cfgPath := filepath.Join(dir, "winaudit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("categories: [gpu]\n"), 0o644))

	code, _, stderr := run(t, "--config", cfgPath, "--category", "cpu", "--quiet",
		"--snapshot", writeTestSnapshot(t), "--json", jsonPath)
	require.Equal(t, 0, code, stderr)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var res types.AuditResults
	require.NoError(t, json.Unmarshal(data, &res))
	assert.Equal(t, []string{"CPU"}, res.Names())
}

func TestExecute_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "winaudit.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("categories: [nope]\n"), 0o644))

	code, _, stderr := run(t, "--config", cfgPath)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unknown category "nope"`)
}

func TestRunBackup_RecordsFacts(t *testing.T) {
	src := probe.Static{}.
		Set(probe.Registry(probe.HKLM, keyMultimedia, "SystemResponsiveness"), probe.Number(14)).
		Set(probe.Service("Audiosrv"), probe.Text(probe.StateRunning))

	path := filepath.Join(t.TempDir(), "backup.yaml")
	cmd := &cobra.Command{}
	var errOut bytes.Buffer
	cmd.SetErr(&errOut)

	require.NoError(t, runBackup(context.Background(), cmd, path, src))
	assert.Contains(t, errOut.String(), "Snapshot of 2 values")

	replay, snap, err := probe.LoadSnapshot(path)
	require.NoError(t, err)
	assert.False(t, snap.Taken.IsZero())
	assert.Equal(t, src, replay)
}
