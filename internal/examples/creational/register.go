package creational

import (
	"fmt"

	"patternlab/internal/output"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

// Examples returns the creational examples in catalog order.
func Examples() []patterntypes.Example {
	return []patterntypes.Example{
		patterntypes.NewExample("Singleton", patterntypes.Creational, output.Record(demoSingleton)).
			WithSummary("one shared configuration value handed to every service"),
		patterntypes.NewExample("Factory Method", patterntypes.Creational, output.Record(demoFactoryMethod)).
			WithSummary("payment processors chosen by method name"),
		patterntypes.NewExample("Abstract Factory", patterntypes.Creational, output.Record(demoAbstractFactory)).
			WithSummary("matching header and body for HTML or Markdown documents"),
		patterntypes.NewExample("Builder", patterntypes.Creational, output.Record(demoBuilder)).
			WithSummary("step-by-step invoice construction with validation"),
		patterntypes.NewExample("Prototype", patterntypes.Creational, output.Record(demoPrototype)).
			WithSummary("orders cloned from a template"),
	}
}

// Register adds the creational examples to reg.
func Register(reg *registry.Registry) error {
	for _, example := range Examples() {
		if err := reg.Register(example); err != nil {
			return fmt.Errorf("creational: %w", err)
		}
	}
	return nil
}
