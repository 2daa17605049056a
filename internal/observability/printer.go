// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-resume-builder/internal/types"
	"github.com/jonathan/ats-resume-builder/internal/validation"
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStep prints a numbered pipeline step header.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(step int, total int, name string) {
	fmt.Fprintf(p.out, "[%d/%d] %s\n", step, total, name)
}

// PrintJobRequirements outputs a human-readable summary of the extracted
// job requirements.
func (p *Printer) PrintJobRequirements(requirements *types.JobRequirements) {
	if requirements == nil {
		return
	}

	var sb strings.Builder

	writeList := func(label string, items []string) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(label + ":\n")
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	writeList("Required Skills", requirements.RequiredSkills)
	writeList("Required Experience", requirements.RequiredExperience)
	writeList("Key Responsibilities", requirements.KeyResponsibilities)

	if len(requirements.Keywords) > 0 {
		sb.WriteString("Keywords: " + strings.Join(requirements.Keywords, ", ") + "\n")
	}

	p.printBox("EXTRACTED JOB REQUIREMENTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintWarnings outputs validation warnings, one per line.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []validation.Warning) {
	if len(warnings) == 0 {
		return
	}
	for _, w := range warnings {
		fmt.Fprintf(p.out, "warning: %s\n", w)
	}
}

// PrintArtifacts lists the files the pipeline produced.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintArtifacts(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintln(p.out, "Generated files:")
	for _, path := range paths {
		fmt.Fprintf(p.out, "  %s\n", path)
	}
}
