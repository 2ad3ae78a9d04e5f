package patterntypes

import "fmt"

// ErrorKind classifies catalog failures.
type ErrorKind string

const (
	// DuplicateNameError is raised when an example name is registered twice.
	DuplicateNameError ErrorKind = "DuplicateNameError"
	// NotFoundError is raised when a lookup names an unregistered example.
	NotFoundError ErrorKind = "NotFoundError"
	// ExecutionError wraps any failure raised inside an example's action.
	ExecutionError ErrorKind = "ExecutionError"
)

// Failure describes why an example did not succeed.
type Failure struct {
	Kind    ErrorKind `json:"kind" yaml:"kind"`
	Message string    `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Result is the outcome of a single invocation of an example.
// Failure is non-nil exactly when Succeeded is false.
type Result struct {
	Lines     []string `json:"lines" yaml:"lines"`
	Succeeded bool     `json:"succeeded" yaml:"succeeded"`
	Failure   *Failure `json:"failure,omitempty" yaml:"failure,omitempty"`
}

// Passed builds a successful result from the captured output lines.
func Passed(lines ...string) Result {
	return Result{Lines: copyLines(lines), Succeeded: true}
}

// Failed builds a failed result carrying the output captured so far.
func Failed(lines []string, err error) Result {
	message := "unknown failure"
	if err != nil {
		message = err.Error()
	}
	return Result{
		Lines:   copyLines(lines),
		Failure: &Failure{Kind: ExecutionError, Message: message},
	}
}

// Status returns "PASS" or "FAIL".
func (r Result) Status() string {
	if r.Succeeded {
		return "PASS"
	}
	return "FAIL"
}

// Message returns the failure message, or "" for successful results.
func (r Result) Message() string {
	if r.Failure == nil {
		return ""
	}
	return r.Failure.Message
}

func copyLines(lines []string) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	return out
}
