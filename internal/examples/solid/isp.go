package solid

import (
	"errors"
	"fmt"
	"strings"

	"patternlab/internal/output"
)

// ErrUnsupportedOperation is returned when a device lacks a capability.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// DocumentPrinter, DocumentScanner and DocumentFaxer are kept separate so
// a device implements only what it can do.
type DocumentPrinter interface {
	Print(doc string) string
}

// DocumentScanner turns a page into text.
type DocumentScanner interface {
	Scan(page string) string
}

// DocumentFaxer sends a document to a fax number.
type DocumentFaxer interface {
	Fax(doc, number string) string
}

// Device is named for the transcript.
type Device interface {
	Model() string
}

// BasicPrinter only prints.
type BasicPrinter struct{}

func (BasicPrinter) Model() string           { return "basic printer" }
func (BasicPrinter) Print(doc string) string { return "printed " + doc }

// OfficeMachine prints, scans and faxes.
type OfficeMachine struct{}

func (OfficeMachine) Model() string                 { return "office machine" }
func (OfficeMachine) Print(doc string) string       { return "printed " + doc }
func (OfficeMachine) Scan(page string) string       { return "scanned " + strings.ToUpper(page) }
func (OfficeMachine) Fax(doc, number string) string { return "faxed " + doc + " to " + number }

// Digitize needs only scanning. Devices without it report an error.
func Digitize(device Device, page string) (string, error) {
	scanner, ok := device.(DocumentScanner)
	if !ok {
		return "", fmt.Errorf("%s cannot scan: %w", device.Model(), ErrUnsupportedOperation)
	}
	return scanner.Scan(page), nil
}

func demoISP(p *output.Printer) error {
	devices := []Device{BasicPrinter{}, OfficeMachine{}}

	for _, device := range devices {
		if printer, ok := device.(DocumentPrinter); ok {
			p.Linef("%s: %s", device.Model(), printer.Print("invoice.pdf"))
		}
		scanned, err := Digitize(device, "receipt")
		if err != nil {
			p.Warning(err.Error())
			continue
		}
		p.Linef("%s: %s", device.Model(), scanned)
		if faxer, ok := device.(DocumentFaxer); ok {
			p.Linef("%s: %s", device.Model(), faxer.Fax("invoice.pdf", "555-0100"))
		}
	}
	return nil
}
