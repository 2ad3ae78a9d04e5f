// Package reporter renders run reports for people and machines.
// Every renderer is a pure function of the report: rendering the same
// report twice produces identical output.
package reporter

import (
	"fmt"

	"patternlab/internal/runner"
)

// transcriptIndent prefixes captured output lines in verbose reports.
const transcriptIndent = "    "

// Reporter formats run reports.
type Reporter struct {
	// Verbose includes each example's captured output below its status line.
	Verbose bool
}

// New creates a Reporter.
func New(verbose bool) *Reporter {
	return &Reporter{Verbose: verbose}
}

// Header returns the pass/fail count line.
func Header(report *runner.Report) string {
	return fmt.Sprintf("Results: %d passed, %d failed", report.PassCount(), report.FailCount())
}

// StatusLine returns "PASS <name>" or "FAIL <name>: <message>".
func StatusLine(entry runner.Entry) string {
	if entry.Result.Succeeded {
		return "PASS " + entry.Name
	}
	return fmt.Sprintf("FAIL %s: %s", entry.Name, entry.Result.Message())
}

// Format renders the report as plain text lines: the header followed by
// one block per result in report order.
func (r *Reporter) Format(report *runner.Report) []string {
	lines := []string{Header(report)}

	for _, entry := range report.Results {
		lines = append(lines, StatusLine(entry))
		if r.Verbose {
			for _, line := range entry.Result.Lines {
				lines = append(lines, transcriptIndent+line)
			}
		}
	}

	return lines
}

// Summary lists only the failures, for standard error.
// It returns no lines when every example passed.
func (r *Reporter) Summary(report *runner.Report) []string {
	failures := report.Failures()
	if len(failures) == 0 {
		return nil
	}

	noun := "examples"
	if len(failures) == 1 {
		noun = "example"
	}

	lines := []string{fmt.Sprintf("%d %s failed:", len(failures), noun)}
	for _, entry := range failures {
		lines = append(lines, fmt.Sprintf("  %s (%s): %s", entry.Name, entry.Result.Failure.Kind, entry.Result.Message()))
	}
	return lines
}
