package patterntypes

// Action performs one demonstration and reports what happened.
// A failing demonstration either returns a failed Result or panics;
// the runner turns both into an ExecutionError.
type Action func() Result

// Example is one self-contained pattern or principle demonstration.
// Examples are values: once registered they are never modified.
type Example struct {
	Name     string
	Category Category
	Summary  string
	Action   Action
}

// NewExample creates an Example with the given name, category and action.
func NewExample(name string, category Category, action Action) Example {
	return Example{Name: name, Category: category, Action: action}
}

// WithSummary returns a copy of the example carrying a one-line description.
func (e Example) WithSummary(summary string) Example {
	e.Summary = summary
	return e
}
