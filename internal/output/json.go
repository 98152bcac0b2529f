package output

import (
	"encoding/json"
	"io"

	"github.com/ancients-collective/winaudit/internal/types"
)

// JSONFormatter writes audit results as a single JSON object.
type JSONFormatter struct{}

// Write renders the full results as pretty-printed JSON.
func (f *JSONFormatter) Write(w io.Writer, r *types.AuditResults) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}
