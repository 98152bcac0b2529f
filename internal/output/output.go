// Package output renders audit results in the supported report formats.
package output

import (
	"io"

	"github.com/ancients-collective/winaudit/internal/types"
)

// Formatter writes audit results to the given writer.
type Formatter interface {
	Write(w io.Writer, r *types.AuditResults) error
}
