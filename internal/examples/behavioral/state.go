package behavioral

import (
	"errors"
	"fmt"

	"patternlab/internal/output"
)

// ErrInvalidTransition is returned when an action is not allowed in the
// order's current state.
var ErrInvalidTransition = errors.New("invalid transition")

// OrderState is one state of the order lifecycle.
type OrderState interface {
	Name() string
	Pay(o *Order) error
	Ship(o *Order) error
	Cancel(o *Order) error
}

// Order delegates every action to its current state.
type Order struct {
	ID    string
	state OrderState
}

// NewOrder creates an order in the pending state.
func NewOrder(id string) *Order {
	return &Order{ID: id, state: pendingState{}}
}

// State returns the name of the current state. Pay, Ship and Cancel
// delegate to it and fail with ErrInvalidTransition when not allowed.
func (o *Order) State() string    { return o.state.Name() }
func (o *Order) Pay() error       { return o.state.Pay(o) }
func (o *Order) Ship() error      { return o.state.Ship(o) }
func (o *Order) Cancel() error    { return o.state.Cancel(o) }
func (o *Order) set(s OrderState) { o.state = s }

func invalid(state OrderState, action string) error {
	return fmt.Errorf("%w: cannot %s a %s order", ErrInvalidTransition, action, state.Name())
}

type pendingState struct{}

func (s pendingState) Name() string          { return "pending" }
func (s pendingState) Pay(o *Order) error    { o.set(paidState{}); return nil }
func (s pendingState) Ship(_ *Order) error   { return invalid(s, "ship") }
func (s pendingState) Cancel(o *Order) error { o.set(cancelledState{}); return nil }

type paidState struct{}

func (s paidState) Name() string          { return "paid" }
func (s paidState) Pay(_ *Order) error    { return invalid(s, "pay") }
func (s paidState) Ship(o *Order) error   { o.set(shippedState{}); return nil }
func (s paidState) Cancel(o *Order) error { o.set(cancelledState{}); return nil }

type shippedState struct{}

func (s shippedState) Name() string          { return "shipped" }
func (s shippedState) Pay(_ *Order) error    { return invalid(s, "pay") }
func (s shippedState) Ship(_ *Order) error   { return invalid(s, "ship") }
func (s shippedState) Cancel(_ *Order) error { return invalid(s, "cancel") }

type cancelledState struct{}

func (s cancelledState) Name() string          { return "cancelled" }
func (s cancelledState) Pay(_ *Order) error    { return invalid(s, "pay") }
func (s cancelledState) Ship(_ *Order) error   { return invalid(s, "ship") }
func (s cancelledState) Cancel(_ *Order) error { return invalid(s, "cancel") }

func demoState(p *output.Printer) error {
	order := NewOrder("A-17")
	p.Linef("order %s is %s", order.ID, order.State())

	steps := []struct {
		action string
		apply  func() error
	}{
		{"ship", order.Ship},
		{"pay", order.Pay},
		{"ship", order.Ship},
		{"cancel", order.Cancel},
	}
	for _, step := range steps {
		if err := step.apply(); err != nil {
			p.Warning(err.Error())
			continue
		}
		p.Linef("%s -> %s", step.action, order.State())
	}
	return nil
}
