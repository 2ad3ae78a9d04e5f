package output

import (
	"fmt"

	"patternlab/pkg/patterntypes"
)

// Demo is a demonstration body that writes its observable effects to p.
// Returning an error marks the demonstration as failed.
type Demo func(p *Printer) error

// Record turns a Demo into an example action. Every invocation gets a fresh
// deterministic printer, and the lines it captured become the Result's
// output, including the lines written before a failure or panic.
func Record(demo Demo) patterntypes.Action {
	return func() (result patterntypes.Result) {
		buffer := NewCaptureBuffer()
		printer := NewPrinter(WithWriter(buffer), TestMode())

		defer func() {
			if recovered := recover(); recovered != nil {
				result = patterntypes.Failed(buffer.Lines(), fmt.Errorf("%v", recovered))
			}
		}()

		if err := demo(printer); err != nil {
			return patterntypes.Failed(buffer.Lines(), err)
		}
		return patterntypes.Passed(buffer.Lines()...)
	}
}
