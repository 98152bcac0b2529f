package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/ancients-collective/winaudit/internal/types"
)

// ─── Layout constants ────────────────────────────────────────────────
//
// Every check line follows a fixed column grid:
//
//     col 0    4   6                 26                         maxLine
//     │margin│ I │ CHECK NAME ...    │ VALUE                         │
//              ↑   ↑
//           colIcon colName
//
// Descriptions start at colName on the following line.
//
const (
	colMargin = 4   // left margin (spaces) for check lines
	colName   = 6   // column where the check name starts
	nameWidth = 34  // visible width reserved for the check name
	maxLine   = 110 // hard wrap cap, even on ultra-wide terminals
	ruleWidth = 64  // width of horizontal divider rules
)

// TextFormatter writes a colored, human-readable audit report.
type TextFormatter struct {
	Verbose bool // show every check and its description, not just findings
	Width   int  // terminal width for text wrapping; 0 = unknown
	Dumb    bool // TERM=dumb: use single-char ASCII fallback icons
}

// Color helpers, each a sprint function.
var (
	cBold   = color.New(color.Bold).SprintFunc()
	cGreen  = color.New(color.FgGreen).SprintFunc()
	cRed    = color.New(color.FgRed).SprintFunc()
	cYellow = color.New(color.FgYellow).SprintFunc()
	cCyan   = color.New(color.FgCyan).SprintFunc()
	cDim    = color.New(color.Faint).SprintFunc()

	cRedBold    = color.New(color.FgRed, color.Bold).SprintFunc()
	cYellowBold = color.New(color.FgYellow, color.Bold).SprintFunc()
	cGreenBold  = color.New(color.FgGreen, color.Bold).SprintFunc()
	cCyanBold   = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// IsDumbTerm returns true when the terminal doesn't support Unicode.
// Windows consoles do not set TERM, so an empty value only counts as dumb
// elsewhere.
func IsDumbTerm() bool {
	t, set := os.LookupEnv("TERM")
	if !set {
		return false
	}
	return t == "dumb" || t == ""
}

// wrapWidth returns the effective line width: min(terminal, maxLine).
func (f *TextFormatter) wrapWidth() int {
	if f.Width > 0 && f.Width < maxLine {
		return f.Width
	}
	return maxLine
}

// ─── Public entry point ──────────────────────────────────────────────

// Write renders the full text report.
func (f *TextFormatter) Write(w io.Writer, r *types.AuditResults) error {
	f.writeHeader(w, r)
	f.writeSystem(w, r)

	shown := 0
	for _, cat := range r.Ordered() {
		checks := f.visible(cat.Checks)
		if len(checks) == 0 {
			continue
		}
		f.writeCategoryHeader(w, cat.Name)
		for _, c := range checks {
			f.writeCheckLine(w, c)
			shown++
		}
	}
	if shown == 0 && !f.Verbose {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s%s\n", colPad(colMargin), cGreen("All checks are optimal or informational."))
	}

	fmt.Fprintln(w)
	f.writeSummary(w, r)
	f.writeHints(w, r)
	fmt.Fprintln(w)
	return nil
}

// visible filters checks down to what the current mode displays.
func (f *TextFormatter) visible(checks []types.Check) []types.Check {
	if f.Verbose {
		return checks
	}
	var out []types.Check
	for _, c := range checks {
		if c.Status == types.StatusWarning || c.Status == types.StatusIssue {
			out = append(out, c)
		}
	}
	return out
}

// ─── Header ──────────────────────────────────────────────────────────

func (f *TextFormatter) writeHeader(w io.Writer, r *types.AuditResults) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", cCyanBold("Windows System Audit"))
	fmt.Fprintf(w, "  %s %s\n", cDim("Started:"), r.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	if r.RunID != "" {
		fmt.Fprintf(w, "  %s %s\n", cDim("Run ID: "), r.RunID)
	}
	fmt.Fprintln(w)
}

// ─── System ──────────────────────────────────────────────────────────

func (f *TextFormatter) writeSystem(w io.Writer, r *types.AuditResults) {
	sys := r.System
	if sys == nil {
		return
	}
	fmt.Fprintf(w, "  %s\n", cBold(f.icon("section")+" System"))
	fmt.Fprintf(w, "    Host:    %s\n", sys.Hostname)
	fmt.Fprintf(w, "    OS:      %s %s (%s)\n", sys.Platform, sys.PlatformVersion, sys.Arch)
	if sys.Manufacturer != "" || sys.Model != "" {
		fmt.Fprintf(w, "    Model:   %s\n", strings.TrimSpace(sys.Manufacturer+" "+sys.Model))
	}
	env := sys.Environment
	if sys.Hypervisor != "" {
		env += fmt.Sprintf(" (%s)", sys.Hypervisor)
	}
	if env != "" {
		fmt.Fprintf(w, "    Env:     %s\n", env)
	}
	if !sys.Elevated {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s %s\n", cYellow(f.icon("warn")),
			f.wrap("Not running elevated; some checks may report defaults instead of live values", 4, 4))
	}
}

// ─── Category header ─────────────────────────────────────────────────

func (f *TextFormatter) writeCategoryHeader(w io.Writer, category string) {
	label := strings.ToUpper(category)
	fill := ruleWidth - 4 - len(label)
	if fill < 1 {
		fill = 1
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s%s %s %s\n", colPad(colMargin), cDim("──"), cBold(label), cDim(strings.Repeat("─", fill)))
}

// ─── Check line ──────────────────────────────────────────────────────

func (f *TextFormatter) writeCheckLine(w io.Writer, c types.Check) {
	name := c.Name
	pad := nameWidth - len([]rune(name))
	if pad < 2 {
		pad = 2
	}
	fmt.Fprintf(w, "%s%s %s%s%s\n",
		colPad(colMargin),
		f.statusIcon(c.Status),
		name,
		strings.Repeat(" ", pad),
		f.colorValue(c.Status, c.Value),
	)
	if f.Verbose && c.Description != "" {
		fmt.Fprintf(w, "%s%s\n", colPad(colName), cDim(f.wrap(c.Description, colName, colName)))
	}
}

// ─── Summary ─────────────────────────────────────────────────────────

func (f *TextFormatter) writeSummary(w io.Writer, r *types.AuditResults) {
	rule := cDim(strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "  %s\n", rule)

	s := r.Summarize()
	if s.Issue == 0 && s.Warning == 0 {
		fmt.Fprintf(w, "  %s %s\n", cGreenBold(f.icon("optimal")), cGreenBold("No warnings or issues"))
	} else {
		fmt.Fprintf(w, "  %s %s\n", cRedBold(f.icon("issue")),
			cRedBold(fmt.Sprintf("%d check(s) need attention", s.Issue+s.Warning)))
	}

	fmt.Fprintf(w, "  %s  %s · %s · %s · %s\n",
		cBold("Summary:"),
		cGreenBold(fmt.Sprintf("%d optimal", s.Optimal)),
		cYellowBold(fmt.Sprintf("%d warnings", s.Warning)),
		cRedBold(fmt.Sprintf("%d issues", s.Issue)),
		cCyan(fmt.Sprintf("%d info", s.Info)),
	)
	fmt.Fprintf(w, "  %s\n", rule)
}

// ─── Hints ───────────────────────────────────────────────────────────

func (f *TextFormatter) writeHints(w io.Writer, r *types.AuditResults) {
	if f.Verbose || r.TotalChecks() == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s %s\n", cDim("›"), cDim("Use --verbose to see every check with its description"))
}

// ─── Text wrapping ───────────────────────────────────────────────────

func (f *TextFormatter) wrap(text string, startCol, wrapCol int) string {
	w := f.wrapWidth()
	if startCol+len(text) <= w {
		return text
	}

	avail := w - startCol
	if avail < 20 {
		return text
	}

	wrapPad := strings.Repeat(" ", wrapCol)
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var b strings.Builder
	lineLen := 0

	for i, word := range words {
		if i == 0 {
			b.WriteString(word)
			lineLen = len(word)
			continue
		}
		if lineLen+1+len(word) > avail {
			b.WriteByte('\n')
			b.WriteString(wrapPad)
			b.WriteString(word)
			lineLen = len(word)
			avail = w - wrapCol
		} else {
			b.WriteByte(' ')
			b.WriteString(word)
			lineLen += 1 + len(word)
		}
	}

	return b.String()
}

// ─── Icons ───────────────────────────────────────────────────────────

func (f *TextFormatter) icon(name string) string {
	if f.Dumb {
		switch name {
		case "optimal":
			return "+"
		case "warn":
			return "!"
		case "issue":
			return "x"
		case "info":
			return "i"
		case "section":
			return ">"
		default:
			return "?"
		}
	}
	switch name {
	case "optimal":
		return "✓"
	case "warn":
		return "⚠"
	case "issue":
		return "✗"
	case "info":
		return "ℹ"
	case "section":
		return "▸"
	default:
		return "?"
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────

func (f *TextFormatter) statusIcon(s types.CheckStatus) string {
	switch s {
	case types.StatusOptimal:
		return cGreen(f.icon("optimal"))
	case types.StatusWarning:
		return cYellow(f.icon("warn"))
	case types.StatusIssue:
		return cRed(f.icon("issue"))
	case types.StatusInfo:
		return cCyan(f.icon("info"))
	default:
		return "?"
	}
}

func (f *TextFormatter) colorValue(s types.CheckStatus, v string) string {
	switch s {
	case types.StatusOptimal:
		return cGreen(v)
	case types.StatusWarning:
		return cYellow(v)
	case types.StatusIssue:
		return cRedBold(v)
	default:
		return v
	}
}

func colPad(n int) string {
	return strings.Repeat(" ", n)
}
