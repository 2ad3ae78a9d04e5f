package runner

import (
	"time"

	"patternlab/pkg/patterntypes"
)

// Entry pairs an executed example with its result.
type Entry struct {
	Name     string                `json:"name" yaml:"name"`
	Category patterntypes.Category `json:"category" yaml:"category"`
	Result   patterntypes.Result   `json:"result" yaml:"result"`
	Duration time.Duration         `json:"duration" yaml:"duration"`
}

// Report is the outcome of one RunAll invocation.
// Results are kept in invocation order. A Report is not modified after
// the runner returns it.
type Report struct {
	RunID     string                `json:"run_id" yaml:"run_id"`
	Category  patterntypes.Category `json:"category,omitempty" yaml:"category,omitempty"`
	StartedAt time.Time             `json:"started_at" yaml:"started_at"`
	Results   []Entry               `json:"results" yaml:"results"`
}

// PassCount returns the number of successful results.
func (r *Report) PassCount() int {
	count := 0
	for _, entry := range r.Results {
		if entry.Result.Succeeded {
			count++
		}
	}
	return count
}

// FailCount returns the number of failed results.
func (r *Report) FailCount() int {
	return len(r.Results) - r.PassCount()
}

// Failures returns the failed entries in invocation order.
func (r *Report) Failures() []Entry {
	var failures []Entry
	for _, entry := range r.Results {
		if !entry.Result.Succeeded {
			failures = append(failures, entry)
		}
	}
	return failures
}

// Filtered reports whether the run was restricted to one category.
func (r *Report) Filtered() bool {
	return r.Category != 0
}
