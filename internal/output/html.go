package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ancients-collective/winaudit/internal/types"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// EscapeHTML replaces the five HTML-significant characters with entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// HTMLFormatter writes a self-contained dark-theme HTML report.
type HTMLFormatter struct{}

const htmlHead = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Windows System Audit</title>
    <style>
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            margin: 0;
            padding: 20px;
            background: #1e1e1e;
            color: #d4d4d4;
        }
        .header {
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            padding: 30px;
            border-radius: 10px;
            margin-bottom: 30px;
            text-align: center;
        }
        h1 { margin: 0; color: white; }
        .timestamp { color: rgba(255,255,255,0.8); margin-top: 10px; }
        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .summary-card {
            background: #2d2d30;
            padding: 20px;
            border-radius: 8px;
            border-left: 4px solid;
        }
        .optimal { border-color: #4ec9b0; }
        .warning { border-color: #ce9178; }
        .issue { border-color: #f48771; }
        .info { border-color: #4fc1ff; }
        .category {
            background: #2d2d30;
            margin-bottom: 20px;
            border-radius: 8px;
            overflow: hidden;
        }
        .category-header {
            background: #37373d;
            padding: 15px;
            font-weight: bold;
            font-size: 1.2em;
        }
        .check {
            padding: 12px 15px;
            border-bottom: 1px solid #3e3e42;
            display: grid;
            grid-template-columns: 30px 1fr 1fr;
            gap: 15px;
            align-items: center;
        }
        .check:last-child { border-bottom: none; }
        .check-icon { font-size: 1.2em; }
        .check-name { font-weight: 500; }
        .check-value { color: #9cdcfe; }
        .check-description {
            grid-column: 2 / -1;
            font-size: 0.9em;
            color: #858585;
            margin-top: 5px;
        }
    </style>
</head>
<body>
`

func statusClass(s types.CheckStatus) (icon, class string) {
	switch s {
	case types.StatusOptimal:
		return "✓", "optimal"
	case types.StatusWarning:
		return "⚠", "warning"
	case types.StatusIssue:
		return "✗", "issue"
	default:
		return "ℹ", "info"
	}
}

// Write renders the report header, the four summary cards and one section
// per category.
func (f *HTMLFormatter) Write(w io.Writer, r *types.AuditResults) error {
	bw := bufio.NewWriter(w)
	s := r.Summarize()

	bw.WriteString(htmlHead)
	bw.WriteString("    <div class=\"header\">\n")
	bw.WriteString("        <h1>Windows System Audit</h1>\n")
	if r.System != nil && r.System.Hostname != "" {
		fmt.Fprintf(bw, "        <div class=\"timestamp\">Host: %s</div>\n", EscapeHTML(r.System.Hostname))
	}
	fmt.Fprintf(bw, "        <div class=\"timestamp\">Generated: %s</div>\n",
		r.Timestamp.Format("2006-01-02T15:04:05Z07:00"))
	bw.WriteString("    </div>\n")

	bw.WriteString("    <div class=\"summary\">\n")
	fmt.Fprintf(bw, "        <div class=\"summary-card optimal\"><h2>%d</h2><p>Optimal</p></div>\n", s.Optimal)
	fmt.Fprintf(bw, "        <div class=\"summary-card warning\"><h2>%d</h2><p>Warnings</p></div>\n", s.Warning)
	fmt.Fprintf(bw, "        <div class=\"summary-card issue\"><h2>%d</h2><p>Issues</p></div>\n", s.Issue)
	fmt.Fprintf(bw, "        <div class=\"summary-card info\"><h2>%d</h2><p>Info</p></div>\n", s.Info)
	bw.WriteString("    </div>\n\n")

	for _, cat := range r.Ordered() {
		fmt.Fprintf(bw, "    <div class=\"category\">\n        <div class=\"category-header\">%s</div>\n",
			EscapeHTML(cat.Name))
		for _, c := range cat.Checks {
			icon, class := statusClass(c.Status)
			fmt.Fprintf(bw, "        <div class=\"check\">\n")
			fmt.Fprintf(bw, "            <div class=\"check-icon %s\">%s</div>\n", class, icon)
			fmt.Fprintf(bw, "            <div class=\"check-name\">%s</div>\n", EscapeHTML(c.Name))
			fmt.Fprintf(bw, "            <div class=\"check-value\">%s</div>\n", EscapeHTML(c.Value))
			if c.Description != "" {
				fmt.Fprintf(bw, "            <div class=\"check-description\">%s</div>\n", EscapeHTML(c.Description))
			}
			bw.WriteString("        </div>\n")
		}
		bw.WriteString("    </div>\n")
	}

	bw.WriteString("</body>\n</html>\n")
	return bw.Flush()
}
