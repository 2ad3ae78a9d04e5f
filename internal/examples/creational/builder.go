package creational

import (
	"errors"
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// LineItem is one invoice position.
type LineItem struct {
	Description string
	Quantity    int64
	UnitPrice   money.Cents
}

// Invoice is built step by step by an InvoiceBuilder.
type Invoice struct {
	Number   string
	Customer string
	Items    []LineItem
	Discount int64
	Notes    string
}

// Total returns the discounted sum of all items.
func (i Invoice) Total() money.Cents {
	var subtotal money.Cents
	for _, item := range i.Items {
		subtotal += item.UnitPrice * money.Cents(item.Quantity)
	}
	return subtotal - subtotal.Percent(i.Discount)
}

// InvoiceBuilder assembles an Invoice. Validation happens once, in Build.
type InvoiceBuilder struct {
	invoice Invoice
}

// NewInvoiceBuilder starts an invoice with the given number.
func NewInvoiceBuilder(number string) *InvoiceBuilder {
	return &InvoiceBuilder{invoice: Invoice{Number: number}}
}

// For sets the customer.
func (b *InvoiceBuilder) For(customer string) *InvoiceBuilder {
	b.invoice.Customer = customer
	return b
}

// Add appends a line item.
func (b *InvoiceBuilder) Add(description string, quantity int64, unitPrice money.Cents) *InvoiceBuilder {
	b.invoice.Items = append(b.invoice.Items, LineItem{Description: description, Quantity: quantity, UnitPrice: unitPrice})
	return b
}

// WithDiscount sets a percentage discount on the subtotal.
func (b *InvoiceBuilder) WithDiscount(percent int64) *InvoiceBuilder {
	b.invoice.Discount = percent
	return b
}

// WithNotes attaches free-form notes.
func (b *InvoiceBuilder) WithNotes(notes string) *InvoiceBuilder {
	b.invoice.Notes = notes
	return b
}

// Build validates and returns the invoice. The builder's items are copied.
func (b *InvoiceBuilder) Build() (Invoice, error) {
	invoice := b.invoice
	switch {
	case invoice.Customer == "":
		return Invoice{}, errors.New("invoice requires a customer")
	case len(invoice.Items) == 0:
		return Invoice{}, errors.New("invoice requires at least one item")
	case invoice.Discount < 0 || invoice.Discount > 100:
		return Invoice{}, fmt.Errorf("discount %d%% out of range", invoice.Discount)
	}
	invoice.Items = append([]LineItem(nil), invoice.Items...)
	return invoice, nil
}

func demoBuilder(p *output.Printer) error {
	invoice, err := NewInvoiceBuilder("INV-1001").
		For("Acme Corp").
		Add("Consulting hours", 10, money.Dollars(120)).
		Add("Travel", 1, money.Cents(45050)).
		WithDiscount(10).
		WithNotes("Net 30").
		Build()
	if err != nil {
		return err
	}

	p.Linef("invoice %s for %s", invoice.Number, invoice.Customer)
	for _, item := range invoice.Items {
		p.Linef("  %d x %s @ %s", item.Quantity, item.Description, item.UnitPrice)
	}
	p.Linef("discount: %d%%", invoice.Discount)
	p.Linef("total: %s", invoice.Total())

	if _, err := NewInvoiceBuilder("INV-1002").For("Globex").Build(); err != nil {
		p.Warning("rejected INV-1002: " + err.Error())
	}
	return nil
}
