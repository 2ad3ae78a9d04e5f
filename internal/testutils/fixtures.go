package testutils

import (
	"errors"

	"patternlab/pkg/patterntypes"
)

// PassingExample returns an example whose action always succeeds with the given lines.
func PassingExample(name string, category patterntypes.Category, lines ...string) patterntypes.Example {
	return patterntypes.NewExample(name, category, func() patterntypes.Result {
		return patterntypes.Passed(lines...)
	})
}

// FailingExample returns an example whose action always reports a failure with message.
func FailingExample(name string, category patterntypes.Category, message string) patterntypes.Example {
	return patterntypes.NewExample(name, category, func() patterntypes.Result {
		return patterntypes.Failed([]string{"starting " + name}, errors.New(message))
	})
}

// PanickingExample returns an example whose action panics with value.
func PanickingExample(name string, category patterntypes.Category, value any) patterntypes.Example {
	return patterntypes.NewExample(name, category, func() patterntypes.Result {
		panic(value)
	})
}

// CountingExample returns an example that increments *calls every time it runs.
func CountingExample(name string, category patterntypes.Category, calls *int) patterntypes.Example {
	return patterntypes.NewExample(name, category, func() patterntypes.Result {
		*calls++
		return patterntypes.Passed()
	})
}

// ScenarioExamples returns the Singleton/Builder/Adapter trio used across tests:
// two passing creational examples followed by a structural example failing with "boom".
func ScenarioExamples() []patterntypes.Example {
	return []patterntypes.Example{
		PassingExample("Singleton", patterntypes.Creational, "one instance"),
		PassingExample("Builder", patterntypes.Creational, "built"),
		FailingExample("Adapter", patterntypes.Structural, "boom"),
	}
}
