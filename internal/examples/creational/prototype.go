package creational

import (
	"maps"
	"slices"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// OrderTemplate is a preconfigured order that new orders are cloned from.
type OrderTemplate struct {
	Customer string
	Items    []string
	Shipping money.Cents
	Tags     map[string]string
}

// Clone returns a deep copy. Changes to the clone never reach the template.
func (o *OrderTemplate) Clone() *OrderTemplate {
	return &OrderTemplate{
		Customer: o.Customer,
		Items:    slices.Clone(o.Items),
		Shipping: o.Shipping,
		Tags:     maps.Clone(o.Tags),
	}
}

func demoPrototype(p *output.Printer) error {
	template := &OrderTemplate{
		Customer: "template",
		Items:    []string{"starter kit"},
		Shipping: money.Cents(499),
		Tags:     map[string]string{"channel": "web"},
	}

	first := template.Clone()
	first.Customer = "alice"
	first.Items = append(first.Items, "extra filters")

	second := template.Clone()
	second.Customer = "bob"
	second.Tags["channel"] = "phone"

	for _, order := range []*OrderTemplate{template, first, second} {
		p.Linef("%s: items=%v shipping=%s channel=%s", order.Customer, order.Items, order.Shipping, order.Tags["channel"])
	}
	return nil
}
