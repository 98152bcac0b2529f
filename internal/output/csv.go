package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ancients-collective/winaudit/internal/types"
)

// csvHeader is the first line of every CSV export.
const csvHeader = "Category,Check,Value,Status,Description\n"

// CSVFormatter writes one row per check. Every field is quoted, and fields
// that a spreadsheet would treat as a formula are prefixed with a single
// quote.
type CSVFormatter struct{}

// Write renders the header followed by one row per check in category order.
func (f *CSVFormatter) Write(w io.Writer, r *types.AuditResults) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(csvHeader)
	for _, cat := range r.Ordered() {
		for _, c := range cat.Checks {
			bw.WriteString(`"` + EscapeCSV(cat.Name) + `",`)
			bw.WriteString(`"` + EscapeCSV(c.Name) + `",`)
			bw.WriteString(`"` + EscapeCSV(c.Value) + `",`)
			bw.WriteString(`"` + c.Status.String() + `",`)
			bw.WriteString(`"` + EscapeCSV(c.Description) + `"` + "\n")
		}
	}
	return bw.Flush()
}

// EscapeCSV doubles embedded quotes and neutralizes formula prefixes.
// The caller wraps the result in quotes.
func EscapeCSV(s string) string {
	out := strings.ReplaceAll(s, `"`, `""`)
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + out
	}
	return out
}
