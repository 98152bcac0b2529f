package output

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/ancients-collective/winaudit/internal/types"
)

// Format names accepted by Export.
const (
	FormatJSON  = "json"
	FormatHTML  = "html"
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
	FormatProm  = "prom"
)

// Target is one requested report file.
type Target struct {
	Format string
	Path   string
}

// unsafeOutputPrefixes are path prefixes where writing report files is rejected.
// Prevents accidental overwrite of system files when running elevated.
var unsafeOutputPrefixes = []string{"/etc/", "/proc/", "/sys/", "/dev/", "/boot/", "/sbin/", "/bin/", "/usr/"}

// unsafeWindowsPrefixes are compared case-insensitively.
var unsafeWindowsPrefixes = []string{`c:\windows\`, `c:\program files\`, `c:\program files (x86)\`}

// ValidateOutputPath checks that the output file path is safe to write to.
func ValidateOutputPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("output path must not be empty")
	}
	cleaned := filepath.Clean(path)
	if runtime.GOOS == "windows" {
		lower := strings.ToLower(cleaned)
		for _, prefix := range unsafeWindowsPrefixes {
			if strings.HasPrefix(lower, prefix) {
				return fmt.Errorf("refusing to write to system path %q", cleaned)
			}
		}
		return nil
	}
	if filepath.IsAbs(cleaned) {
		for _, prefix := range unsafeOutputPrefixes {
			if strings.HasPrefix(cleaned, prefix) {
				return fmt.Errorf("refusing to write to system path %q", cleaned)
			}
		}
	}
	return nil
}

// FormatterFor returns the file formatter for a format name. The prom
// format is not a Formatter and is handled by Export directly.
func FormatterFor(format string) (Formatter, error) {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatHTML:
		return &HTMLFormatter{}, nil
	case FormatCSV:
		return &CSVFormatter{}, nil
	case FormatJSONL:
		return &JSONLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Export writes every target independently. A failing target does not
// stop or undo the others; its error is returned in target order.
func Export(r *types.AuditResults, targets []Target) []error {
	var errs []error
	for _, t := range targets {
		if err := exportOne(r, t); err != nil {
			errs = append(errs, fmt.Errorf("%s export to %s: %w", strings.ToUpper(t.Format), t.Path, err))
		}
	}
	return errs
}

func exportOne(r *types.AuditResults, t Target) error {
	if err := ValidateOutputPath(t.Path); err != nil {
		return err
	}
	if t.Format == FormatProm {
		return WritePromTextfile(t.Path, r)
	}

	f, err := FormatterFor(t.Format)
	if err != nil {
		return err
	}
	file, err := os.Create(t.Path)
	if err != nil {
		return err
	}
	if err := f.Write(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
