package behavioral

import (
	"fmt"

	"patternlab/internal/output"
)

// OrderEvent is published when an order changes.
type OrderEvent struct {
	OrderID string
	Status  string
}

// Subscriber receives order events.
type Subscriber interface {
	Notify(event OrderEvent)
}

// SubscriberFunc adapts a function to Subscriber.
type SubscriberFunc func(event OrderEvent)

// Notify calls f(event).
func (f SubscriberFunc) Notify(event OrderEvent) { f(event) }

// EventBus delivers events to subscribers in subscription order.
type EventBus struct {
	nextID      int
	order       []int
	subscribers map[int]Subscriber
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: map[int]Subscriber{}}
}

// Subscribe registers s and returns a function that unsubscribes it.
func (b *EventBus) Subscribe(s Subscriber) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.order = append(b.order, id)
	b.subscribers[id] = s
	return func() { delete(b.subscribers, id) }
}

// Publish notifies every current subscriber and returns how many were notified.
func (b *EventBus) Publish(event OrderEvent) int {
	notified := 0
	for _, id := range b.order {
		if s, ok := b.subscribers[id]; ok {
			s.Notify(event)
			notified++
		}
	}
	return notified
}

func demoObserver(p *output.Printer) error {
	bus := NewEventBus()

	bus.Subscribe(SubscriberFunc(func(e OrderEvent) {
		p.Linef("email: order %s is %s", e.OrderID, e.Status)
	}))
	stopSMS := bus.Subscribe(SubscriberFunc(func(e OrderEvent) {
		p.Linef("sms: %s -> %s", e.OrderID, e.Status)
	}))
	var audit []string
	bus.Subscribe(SubscriberFunc(func(e OrderEvent) {
		audit = append(audit, fmt.Sprintf("%s:%s", e.OrderID, e.Status))
	}))

	bus.Publish(OrderEvent{OrderID: "A-17", Status: "paid"})
	stopSMS()
	notified := bus.Publish(OrderEvent{OrderID: "A-17", Status: "shipped"})

	p.Linef("subscribers notified after unsubscribe: %d", notified)
	p.Linef("audit trail: %v", audit)
	return nil
}
