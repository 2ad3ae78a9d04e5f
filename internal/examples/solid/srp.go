package solid

import (
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// Invoice holds data only; calculating, formatting and storing it are
// separate responsibilities below.
type Invoice struct {
	Number string
	Lines  []money.Cents
	TaxPct int64
}

// InvoiceCalculator computes totals.
type InvoiceCalculator struct{}

// Subtotal sums the invoice lines.
func (InvoiceCalculator) Subtotal(inv Invoice) money.Cents {
	var sum money.Cents
	for _, line := range inv.Lines {
		sum += line
	}
	return sum
}

// Total adds tax to the subtotal.
func (c InvoiceCalculator) Total(inv Invoice) money.Cents {
	subtotal := c.Subtotal(inv)
	return subtotal + subtotal.Percent(inv.TaxPct)
}

// InvoiceFormatter renders invoices for people.
type InvoiceFormatter struct {
	Calculator InvoiceCalculator
}

// Format renders a one-line summary.
func (f InvoiceFormatter) Format(inv Invoice) string {
	return fmt.Sprintf("%s: subtotal %s, total %s", inv.Number, f.Calculator.Subtotal(inv), f.Calculator.Total(inv))
}

// InvoiceArchive stores formatted invoices.
type InvoiceArchive struct {
	entries map[string]string
}

// NewInvoiceArchive creates an empty archive.
func NewInvoiceArchive() *InvoiceArchive {
	return &InvoiceArchive{entries: map[string]string{}}
}

// Store archives a document. Invoice numbers are archived once.
func (a *InvoiceArchive) Store(number, document string) error {
	if _, exists := a.entries[number]; exists {
		return fmt.Errorf("invoice %s already archived", number)
	}
	a.entries[number] = document
	return nil
}

// Len returns the number of archived invoices.
func (a *InvoiceArchive) Len() int {
	return len(a.entries)
}

func demoSRP(p *output.Printer) error {
	formatter := InvoiceFormatter{}
	archive := NewInvoiceArchive()

	invoices := []Invoice{
		{Number: "INV-1", Lines: []money.Cents{1000, 2500}, TaxPct: 20},
		{Number: "INV-2", Lines: []money.Cents{999}, TaxPct: 0},
		{Number: "INV-1", Lines: []money.Cents{1}, TaxPct: 0},
	}
	for _, inv := range invoices {
		document := formatter.Format(inv)
		if err := archive.Store(inv.Number, document); err != nil {
			p.Warning(err.Error())
			continue
		}
		p.Println(document)
	}
	p.Linef("archived invoices: %d", archive.Len())
	return nil
}
