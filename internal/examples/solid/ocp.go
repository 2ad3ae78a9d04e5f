package solid

import (
	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// Cart is priced by a PriceEngine.
type Cart struct {
	Customer string
	Loyal    bool
	Items    int
	Subtotal money.Cents
}

// DiscountRule returns the discount a rule grants for a cart.
// New rules are added by implementing this interface, not by editing
// PriceEngine.
type DiscountRule interface {
	Name() string
	Discount(cart Cart) money.Cents
}

// BulkDiscount grants Pct percent when the cart has at least MinItems items.
type BulkDiscount struct {
	MinItems int
	Pct      int64
}

func (d BulkDiscount) Name() string { return "bulk" }

// Discount is zero below MinItems.
func (d BulkDiscount) Discount(cart Cart) money.Cents {
	if cart.Items < d.MinItems {
		return 0
	}
	return cart.Subtotal.Percent(d.Pct)
}

// LoyaltyDiscount grants a fixed amount to loyal customers.
type LoyaltyDiscount struct {
	Amount money.Cents
}

func (d LoyaltyDiscount) Name() string { return "loyalty" }

// Discount applies to loyal customers only.
func (d LoyaltyDiscount) Discount(cart Cart) money.Cents {
	if !cart.Loyal {
		return 0
	}
	return d.Amount
}

// PriceEngine applies every rule. The price never drops below zero.
type PriceEngine struct {
	Rules []DiscountRule
}

// Price subtracts every rule's discount from the subtotal.
func (e PriceEngine) Price(cart Cart) money.Cents {
	price := cart.Subtotal
	for _, rule := range e.Rules {
		price -= rule.Discount(cart)
	}
	return max(price, 0)
}

func demoOCP(p *output.Printer) error {
	carts := []Cart{
		{Customer: "alice", Items: 12, Subtotal: money.Dollars(200)},
		{Customer: "bob", Loyal: true, Items: 2, Subtotal: money.Dollars(30)},
		{Customer: "carol", Loyal: true, Items: 1, Subtotal: money.Cents(300)},
	}

	engine := PriceEngine{Rules: []DiscountRule{BulkDiscount{MinItems: 10, Pct: 10}}}
	for _, cart := range carts {
		p.Linef("bulk only: %s pays %s", cart.Customer, engine.Price(cart))
	}

	engine.Rules = append(engine.Rules, LoyaltyDiscount{Amount: money.Dollars(5)})
	for _, cart := range carts {
		p.Linef("bulk+loyalty: %s pays %s", cart.Customer, engine.Price(cart))
	}
	return nil
}
