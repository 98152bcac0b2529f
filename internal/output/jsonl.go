package output

import (
	"encoding/json"
	"io"

	"github.com/ancients-collective/winaudit/internal/types"
)

// JSONLFormatter writes audit results as newline-delimited JSON (one object per line).
// The first line is a header with system and summary information.
// Subsequent lines are individual checks.
type JSONLFormatter struct{}

// Write renders the audit as JSONL: header line + one line per check.
func (f *JSONLFormatter) Write(w io.Writer, r *types.AuditResults) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	header := struct {
		Type      string            `json:"type"`
		RunID     string            `json:"run_id"`
		Timestamp string            `json:"timestamp"`
		System    *types.SystemInfo `json:"system,omitempty"`
		Summary   types.Summary     `json:"summary"`
	}{
		Type:      "header",
		RunID:     r.RunID,
		Timestamp: r.Timestamp.Format("2006-01-02T15:04:05Z07:00"),
		System:    r.System,
		Summary:   r.Summarize(),
	}
	if err := enc.Encode(header); err != nil {
		return err
	}

	for _, cat := range r.Ordered() {
		for _, c := range cat.Checks {
			line := struct {
				Type     string      `json:"type"`
				Category string      `json:"category"`
				Check    types.Check `json:"check"`
			}{
				Type:     "check",
				Category: cat.Name,
				Check:    c,
			}
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
	}

	return nil
}
