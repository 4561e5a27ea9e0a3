// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/mock-interview/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
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

	for _, line := range strings.Split(content, "\n") {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBundle outputs the generated session artifacts.
func (p *Printer) PrintBundle(bundle *types.SessionArtifactBundle) {
	if bundle == nil {
		return
	}
	p.printBox("GENERATED INTERVIEWER GUIDE", bundle.InterviewerGuide)
	p.printBox("EDITOR PREFILL (DESCRIPTION + STARTER CODE)", bundle.ProblemDescription)
}

// PrintFeedback outputs a human-readable summary of an evaluation.
func (p *Printer) PrintFeedback(result *types.FeedbackResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Technical:       %2d/10  %s\n", result.TechnicalScore, result.TechnicalFeedback))
	sb.WriteString(fmt.Sprintf("Communication:   %2d/10  %s\n", result.CommunicationScore, result.CommunicationFeedback))
	sb.WriteString(fmt.Sprintf("Problem solving: %2d/10  %s\n", result.ProblemSolvingScore, result.ProblemSolvingFeedback))
	sb.WriteString("\n")
	sb.WriteString(result.OverallSummary)
	sb.WriteString("\n\nStrengths:\n")
	for _, s := range result.Strengths {
		sb.WriteString("  + " + s + "\n")
	}
	sb.WriteString("Improvements:\n")
	for _, s := range result.Improvements {
		sb.WriteString("  - " + s + "\n")
	}

	p.printBox("INTERVIEW FEEDBACK", strings.TrimRight(sb.String(), "\n"))
}
