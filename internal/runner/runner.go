// Package runner executes catalog examples and isolates their failures.
// A failing or panicking example is recorded in the report and never
// stops the rest of the run.
package runner

import (
	"fmt"
	"iter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"patternlab/internal/logger"
	"patternlab/pkg/patterntypes"
)

// Source is the read side of a registry.
type Source interface {
	All() iter.Seq[patterntypes.Example]
	ListByCategory(category patterntypes.Category) iter.Seq[patterntypes.Example]
}

// Runner executes examples sequentially. It holds no state between runs.
type Runner struct {
	logger *log.Logger
	newID  func() string
	now    func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for execution events.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIDGenerator replaces the run ID generator (uuid by default).
func WithIDGenerator(fn func() string) Option {
	return func(r *Runner) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// WithClock replaces time.Now for start times and durations.
func WithClock(fn func() time.Time) Option {
	return func(r *Runner) {
		if fn != nil {
			r.now = fn
		}
	}
}

// New creates a Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		logger: logger.NewStyledLogger("Runner"),
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOne invokes the example's action and returns its result.
// It never panics: a panic or a failed result is converted into a
// result carrying an ExecutionError.
func (r *Runner) RunOne(example patterntypes.Example) patterntypes.Result {
	r.logger.Debug("Running example", "example", example.Name, "category", example.Category)

	result := invoke(example)
	if !result.Succeeded {
		r.logger.Warn("Example failed", "example", example.Name, "error", result.Message())
	}
	return result
}

// RunAll runs every example of source in registration order. A non-zero
// category restricts the run to the examples of that category; the zero
// value means no filter. An undeclared category matches nothing.
func (r *Runner) RunAll(source Source, category patterntypes.Category) *Report {
	examples := source.All()
	if category != 0 {
		if !category.Valid() {
			r.logger.Warn("Undeclared category selects no examples", "category", category)
		}
		examples = source.ListByCategory(category)
	}

	report := &Report{
		RunID:     r.newID(),
		Category:  category,
		StartedAt: r.now(),
		Results:   []Entry{},
	}

	for example := range examples {
		started := r.now()
		result := r.RunOne(example)
		report.Results = append(report.Results, Entry{
			Name:     example.Name,
			Category: example.Category,
			Result:   result,
			Duration: r.now().Sub(started),
		})
	}

	r.logger.Info("Run finished", "run", report.RunID, "passed", report.PassCount(), "failed", report.FailCount())
	return report
}

// RunEach runs the given examples in order and reports them as one run.
func (r *Runner) RunEach(examples []patterntypes.Example) *Report {
	return r.RunAll(sliceSource(examples), 0)
}

func invoke(example patterntypes.Example) (result patterntypes.Result) {
	defer func() {
		if recovered := recover(); recovered != nil {
			result = patterntypes.Result{
				Failure: &patterntypes.Failure{
					Kind:    patterntypes.ExecutionError,
					Message: panicMessage(recovered),
				},
			}
		}
	}()

	if example.Action == nil {
		return patterntypes.Result{Failure: &patterntypes.Failure{
			Kind:    patterntypes.ExecutionError,
			Message: fmt.Sprintf("example %s has no action", example.Name),
		}}
	}

	return normalize(example.Action())
}

// normalize enforces that Failure is present exactly when Succeeded is false
// and that every execution failure carries the ExecutionError kind.
func normalize(result patterntypes.Result) patterntypes.Result {
	if result.Succeeded && result.Failure == nil {
		return result
	}

	failure := patterntypes.Failure{Kind: patterntypes.ExecutionError, Message: "example reported failure without detail"}
	if result.Failure != nil && result.Failure.Message != "" {
		failure.Message = result.Failure.Message
	}
	return patterntypes.Result{Lines: result.Lines, Failure: &failure}
}

func panicMessage(recovered any) string {
	switch v := recovered.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

type sliceSource []patterntypes.Example

func (s sliceSource) All() iter.Seq[patterntypes.Example] {
	return func(yield func(patterntypes.Example) bool) {
		for _, example := range s {
			if !yield(example) {
				return
			}
		}
	}
}

func (s sliceSource) ListByCategory(category patterntypes.Category) iter.Seq[patterntypes.Example] {
	return func(yield func(patterntypes.Example) bool) {
		for example := range s.All() {
			if example.Category == category && !yield(example) {
				return
			}
		}
	}
}
