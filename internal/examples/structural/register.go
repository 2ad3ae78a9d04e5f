package structural

import (
	"fmt"

	"patternlab/internal/output"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

// Examples returns the structural examples in catalog order.
func Examples() []patterntypes.Example {
	return []patterntypes.Example{
		patterntypes.NewExample("Adapter", patterntypes.Structural, output.Record(demoAdapter)).
			WithSummary("a legacy payment gateway behind the checkout interface"),
		patterntypes.NewExample("Decorator", patterntypes.Structural, output.Record(demoDecorator)).
			WithSummary("message formatting layered by wrapping"),
		patterntypes.NewExample("Facade", patterntypes.Structural, output.Record(demoFacade)).
			WithSummary("one call for inventory, billing and shipping"),
		patterntypes.NewExample("Proxy", patterntypes.Structural, output.Record(demoProxy)).
			WithSummary("authorized and cached document access"),
	}
}

// Register adds the structural examples to reg.
func Register(reg *registry.Registry) error {
	for _, example := range Examples() {
		if err := reg.Register(example); err != nil {
			return fmt.Errorf("structural: %w", err)
		}
	}
	return nil
}
