package output

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_AllFormats(t *testing.T) {
	dir := t.TempDir()
	var targets []Target
	for _, f := range []string{FormatJSON, FormatHTML, FormatCSV, FormatJSONL, FormatProm} {
		targets = append(targets, Target{Format: f, Path: filepath.Join(dir, "report."+f)})
	}

	errs := Export(newTestResults(), targets)
	require.Empty(t, errs)
	for _, tgt := range targets {
		info, err := os.Stat(tgt.Path)
		require.NoError(t, err, tgt.Format)
		assert.Positive(t, info.Size(), tgt.Format)
	}
}

func TestExport_FailuresAreIndependent(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "report.csv")
	bad := filepath.Join(dir, "missing", "report.json")

	errs := Export(newTestResults(), []Target{
		{Format: FormatJSON, Path: bad},
		{Format: FormatCSV, Path: good},
	})

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "JSON export to "+bad)
	_, err := os.Stat(good)
	assert.NoError(t, err, "CSV export still written")
}

func TestExport_UnknownFormat(t *testing.T) {
	errs := Export(newTestResults(), []Target{{Format: "xml", Path: filepath.Join(t.TempDir(), "r.xml")}})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `unknown format "xml"`)
}

func TestValidateOutputPath(t *testing.T) {
	assert.NoError(t, ValidateOutputPath("report.json"))
	assert.NoError(t, ValidateOutputPath(filepath.Join(t.TempDir(), "r.json")))
	assert.Error(t, ValidateOutputPath(""))

	if runtime.GOOS == "windows" {
		assert.Error(t, ValidateOutputPath(`C:\Windows\System32\r.json`))
		return
	}
	assert.Error(t, ValidateOutputPath("/etc/winaudit.json"))
	assert.Error(t, ValidateOutputPath("/usr/../etc/passwd"))
}
