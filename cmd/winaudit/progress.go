package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ancients-collective/winaudit/internal/engine"
)

// progressLine redraws a single status line on a terminal.
type progressLine struct {
	w     io.Writer
	dumb  bool
	width int
}

func newProgressLine(w io.Writer, dumb bool) *progressLine {
	return &progressLine{w: w, dumb: dumb}
}

// Update redraws the line. The orchestrator serializes calls.
func (p *progressLine) Update(pr engine.Progress) {
	mark := "▸"
	if p.dumb {
		mark = ">"
	}
	line := fmt.Sprintf("  %s Auditing... %d/%d (%s)", mark, pr.Done, pr.Total, pr.Category)
	p.draw(line)
}

// Done replaces the line with a final message and moves to a new line.
func (p *progressLine) Done() {
	mark := "✓"
	if p.dumb {
		mark = "+"
	}
	p.draw(fmt.Sprintf("  %s Audit complete", mark))
	fmt.Fprintln(p.w)
}

func (p *progressLine) draw(line string) {
	n := len([]rune(line))
	pad := ""
	if p.width > n {
		pad = strings.Repeat(" ", p.width-n)
	}
	fmt.Fprintf(p.w, "\r%s%s", line, pad)
	if n > p.width {
		p.width = n
	}
}
