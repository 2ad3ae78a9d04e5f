package behavioral

import (
	"fmt"

	"patternlab/internal/output"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

// Examples returns the behavioral examples in catalog order.
func Examples() []patterntypes.Example {
	return []patterntypes.Example{
		patterntypes.NewExample("Memento", patterntypes.Behavioral, output.Record(demoMemento)).
			WithSummary("editor snapshots with undo"),
		patterntypes.NewExample("Observer", patterntypes.Behavioral, output.Record(demoObserver)).
			WithSummary("order events fanned out to subscribers"),
		patterntypes.NewExample("State", patterntypes.Behavioral, output.Record(demoState)).
			WithSummary("order lifecycle with guarded transitions"),
		patterntypes.NewExample("Strategy", patterntypes.Behavioral, output.Record(demoStrategy)).
			WithSummary("interchangeable shipping cost rules"),
	}
}

// Register adds the behavioral examples to reg.
func Register(reg *registry.Registry) error {
	for _, example := range Examples() {
		if err := reg.Register(example); err != nil {
			return fmt.Errorf("behavioral: %w", err)
		}
	}
	return nil
}
