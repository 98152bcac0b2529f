package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/winaudit/internal/types"
)

func init() {
	// Disable color for deterministic test output.
	color.NoColor = true
}

func renderText(t *testing.T, r *types.AuditResults, opts ...func(*TextFormatter)) string {
	t.Helper()
	f := &TextFormatter{}
	for _, opt := range opts {
		opt(f)
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf, r))
	return buf.String()
}

func verbose(f *TextFormatter) { f.Verbose = true }
func dumb(f *TextFormatter)    { f.Dumb = true }

func TestTextFormatter_DefaultShowsFindingsOnly(t *testing.T) {
	out := renderText(t, newTestResults())

	assert.Contains(t, out, "System Responsiveness (MMCSS)")
	assert.Contains(t, out, "SMBv1")
	assert.NotContains(t, out, "HPET")
	assert.NotContains(t, out, "Injected")
	assert.Contains(t, out, "2 check(s) need attention")
	assert.Contains(t, out, "--verbose")
}

func TestTextFormatter_VerboseShowsAll(t *testing.T) {
	out := renderText(t, newTestResults(), verbose)

	assert.Contains(t, out, "HPET (High Precision Event Timer)")
	assert.Contains(t, out, "Injected")
	assert.Contains(t, out, "HPET can add latency.")
	assert.NotContains(t, out, "--verbose")
}

func TestTextFormatter_Summary(t *testing.T) {
	out := renderText(t, newTestResults())
	assert.Contains(t, out, "1 optimal · 1 warnings · 1 issues · 2 info")
}

func TestTextFormatter_CleanRun(t *testing.T) {
	out := renderText(t, newCleanResults())

	assert.Contains(t, out, "No warnings or issues")
	assert.Contains(t, out, "All checks are optimal or informational.")
	assert.NotContains(t, out, "── CPU")
}

func TestTextFormatter_CategoryHeaders(t *testing.T) {
	out := renderText(t, newTestResults(), verbose)

	latency := strings.Index(out, "LATENCY")
	security := strings.Index(out, "SECURITY")
	require.NotEqual(t, -1, latency)
	require.NotEqual(t, -1, security)
	assert.Less(t, latency, security)
}

func TestTextFormatter_System(t *testing.T) {
	out := renderText(t, newTestResults())
	assert.Contains(t, out, "test-host")
	assert.Contains(t, out, "Contoso Workstation 9")
	assert.NotContains(t, out, "Not running elevated")

	r := newTestResults()
	r.System.Elevated = false
	assert.Contains(t, renderText(t, r), "Not running elevated")
}

func TestTextFormatter_DumbIcons(t *testing.T) {
	out := renderText(t, newTestResults(), verbose, dumb)

	assert.NotContains(t, out, "✓")
	assert.NotContains(t, out, "✗")
	assert.Contains(t, out, "    + HPET")
	assert.Contains(t, out, "    x SMBv1")
}

func TestTextFormatter_Wrap(t *testing.T) {
	f := &TextFormatter{Width: 40}
	wrapped := f.wrap(strings.Repeat("word ", 20), 6, 6)
	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 40)
	}
}
