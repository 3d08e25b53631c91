// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resumed/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		r := []rune(line)
		if len(r) > boxWidth-4 {
			line = string(r[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a short human-readable summary of a resume before rendering.
func (p *Printer) PrintResumeSummary(resume *types.JSONResume, theme string) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	name := resume.Basics.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:     %s\n", name))
	if resume.Basics.Label != "" {
		sb.WriteString(fmt.Sprintf("Label:    %s\n", resume.Basics.Label))
	}
	sb.WriteString(fmt.Sprintf("Theme:    %s\n", theme))
	sb.WriteString("\n")

	if len(resume.Work) > 0 {
		sb.WriteString(fmt.Sprintf("Work (%d):\n", len(resume.Work)))
		count := min(len(resume.Work), maxItemsToShow)
		for i := 0; i < count; i++ {
			w := resume.Work[i]
			sb.WriteString(fmt.Sprintf("  • %s", w.Name))
			if w.Position != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", w.Position))
			}
			sb.WriteString("\n")
		}
		if len(resume.Work) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Work)-maxItemsToShow))
		}
	}

	sections := []struct {
		label string
		n     int
	}{
		{"Education", len(resume.Education)},
		{"Projects", len(resume.Projects)},
		{"Skills", len(resume.Skills)},
		{"Publications", len(resume.Publications)},
		{"Awards", len(resume.Awards)},
	}
	for _, s := range sections {
		if s.n > 0 {
			sb.WriteString(fmt.Sprintf("%-13s %d\n", s.label+":", s.n))
		}
	}

	p.printBox("RESUME SUMMARY", sb.String())
}

// PrintOutput reports where the rendered artifact was written.
func (p *Printer) PrintOutput(path string, format string, size int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Path:     %s\n", path))
	sb.WriteString(fmt.Sprintf("Format:   %s\n", format))
	sb.WriteString(fmt.Sprintf("Size:     %d bytes\n", size))
	p.printBox("OUTPUT", sb.String())
}
