package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ancients-collective/winaudit/internal/types"
)

func TestCSVFormatter_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Write(&buf, newTestResults()))
	newGoldie(t).Assert(t, "report_csv", buf.Bytes())
}

func TestCSVFormatter_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Write(&buf, &types.AuditResults{}))
	assert.Equal(t, csvHeader, buf.String())
}

func TestCSVFormatter_OneRowPerCheck(t *testing.T) {
	r := newTestResults()
	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Write(&buf, r))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, r.TotalChecks()+1)
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"=1+1", "'=1+1"},
		{"+cmd", "'+cmd"},
		{"-2", "'-2"},
		{"@SUM(A1)", "'@SUM(A1)"},
		{"\tx", "'\tx"},
		{"\rx", "'\rx"},
		{"5%", "5%"},
		{"", ""},
		{`say "hi"`, `say ""hi""`},
		{`="x"`, `'=""x""`},
		{"a=b", "a=b"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeCSV(tt.in))
		})
	}
}

func TestCSVFormatter_FieldsQuoted(t *testing.T) {
	r := &types.AuditResults{}
	r.AddCategory(types.CategoryResults{Name: "X", Checks: []types.Check{
		{Name: "n", Value: "=1+1", Status: types.StatusWarning},
		{Name: "m", Value: "5%", Status: types.StatusOptimal},
	}})
	var buf bytes.Buffer
	require.NoError(t, (&CSVFormatter{}).Write(&buf, r))
	assert.Contains(t, buf.String(), `"X","n","'=1+1","Warning",""`+"\n")
	assert.Contains(t, buf.String(), `"X","m","5%","Optimal",""`+"\n")
}
