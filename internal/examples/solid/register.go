package solid

import (
	"fmt"

	"patternlab/internal/output"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

// Examples returns the SOLID principle examples in catalog order.
func Examples() []patterntypes.Example {
	return []patterntypes.Example{
		patterntypes.NewExample("Single Responsibility", patterntypes.Solid, output.Record(demoSRP)).
			WithSummary("invoice calculation, formatting and archiving kept apart"),
		patterntypes.NewExample("Open/Closed", patterntypes.Solid, output.Record(demoOCP)).
			WithSummary("new discount rules without editing the price engine"),
		patterntypes.NewExample("Liskov Substitution", patterntypes.Solid, output.Record(demoLSP)).
			WithSummary("accounts that honor the same withdrawal contract"),
		patterntypes.NewExample("Interface Segregation", patterntypes.Solid, output.Record(demoISP)).
			WithSummary("devices implement only the capabilities they have"),
		patterntypes.NewExample("Dependency Inversion", patterntypes.Solid, output.Record(demoDIP)).
			WithSummary("order confirmations through an injected notifier"),
	}
}

// Register adds the SOLID examples to reg.
func Register(reg *registry.Registry) error {
	for _, example := range Examples() {
		if err := reg.Register(example); err != nil {
			return fmt.Errorf("solid: %w", err)
		}
	}
	return nil
}
