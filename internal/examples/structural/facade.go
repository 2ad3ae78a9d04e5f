package structural

import (
	"errors"
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// ErrOutOfStock is returned when inventory cannot cover an order.
var ErrOutOfStock = errors.New("out of stock")

type inventory struct {
	stock map[string]int
}

func (i *inventory) reserve(sku string, quantity int) error {
	if i.stock[sku] < quantity {
		return fmt.Errorf("%w: %s (have %d, want %d)", ErrOutOfStock, sku, i.stock[sku], quantity)
	}
	i.stock[sku] -= quantity
	return nil
}

type billing struct {
	charged money.Cents
}

func (b *billing) charge(amount money.Cents) {
	b.charged += amount
}

type shipping struct {
	next int
}

func (s *shipping) schedule(sku string) string {
	s.next++
	return fmt.Sprintf("SHIP-%03d", s.next)
}

// OrderFacade hides inventory, billing and shipping behind one call.
type OrderFacade struct {
	inventory *inventory
	billing   *billing
	shipping  *shipping
	prices    map[string]money.Cents
}

// NewOrderFacade creates a facade over a small in-memory store.
func NewOrderFacade() *OrderFacade {
	return &OrderFacade{
		inventory: &inventory{stock: map[string]int{"kettle": 3, "mug": 1}},
		billing:   &billing{},
		shipping:  &shipping{},
		prices:    map[string]money.Cents{"kettle": money.Cents(2999), "mug": money.Cents(850)},
	}
}

// PlaceOrder reserves stock, charges and schedules shipment. Nothing is
// charged when the reservation fails.
func (f *OrderFacade) PlaceOrder(sku string, quantity int) (string, error) {
	if err := f.inventory.reserve(sku, quantity); err != nil {
		return "", err
	}
	total := f.prices[sku] * money.Cents(quantity)
	f.billing.charge(total)
	return fmt.Sprintf("%s: %d x %s charged %s", f.shipping.schedule(sku), quantity, sku, total), nil
}

// Charged returns the total billed so far.
func (f *OrderFacade) Charged() money.Cents {
	return f.billing.charged
}

func demoFacade(p *output.Printer) error {
	store := NewOrderFacade()

	orders := []struct {
		sku      string
		quantity int
	}{
		{"kettle", 2},
		{"mug", 2},
		{"mug", 1},
	}
	for _, order := range orders {
		confirmation, err := store.PlaceOrder(order.sku, order.quantity)
		if err != nil {
			p.Warning("order rejected: " + err.Error())
			continue
		}
		p.Success(confirmation)
	}
	p.Linef("total charged: %s", store.Charged())
	return nil
}
