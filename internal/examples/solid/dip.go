package solid

import (
	"errors"
	"fmt"
	"slices"

	"patternlab/internal/output"
)

// Notifier is the abstraction OrderService depends on.
type Notifier interface {
	Send(recipient, message string) error
}

// EmailNotifier records sent emails.
type EmailNotifier struct {
	Sent []string
}

// Send records the email. It never fails.
func (n *EmailNotifier) Send(recipient, message string) error {
	n.Sent = append(n.Sent, fmt.Sprintf("email to %s: %s", recipient, message))
	return nil
}

// SMSNotifier rejects messages longer than Limit characters.
type SMSNotifier struct {
	Limit int
	Sent  []string
}

// Send fails when message is longer than Limit.
func (n *SMSNotifier) Send(recipient, message string) error {
	if len(message) > n.Limit {
		return fmt.Errorf("sms to %s rejected: %d characters exceeds limit %d", recipient, len(message), n.Limit)
	}
	n.Sent = append(n.Sent, fmt.Sprintf("sms to %s: %s", recipient, message))
	return nil
}

// OrderService is a high-level policy that never names a concrete notifier.
type OrderService struct {
	notifier Notifier
}

// NewOrderService creates a service sending confirmations through notifier.
func NewOrderService(notifier Notifier) *OrderService {
	return &OrderService{notifier: notifier}
}

// Confirm sends the confirmation for an order.
func (s *OrderService) Confirm(orderID, customer string) error {
	if orderID == "" {
		return errors.New("order id is required")
	}
	if err := s.notifier.Send(customer, "order "+orderID+" confirmed"); err != nil {
		return fmt.Errorf("confirm %s: %w", orderID, err)
	}
	return nil
}

func demoDIP(p *output.Printer) error {
	email := &EmailNotifier{}
	sms := &SMSNotifier{Limit: 20}

	for _, notifier := range []Notifier{email, sms} {
		service := NewOrderService(notifier)
		for _, orderID := range []string{"A-17", "A-1000042"} {
			if err := service.Confirm(orderID, "alice"); err != nil {
				p.Warning(err.Error())
			}
		}
	}

	for _, sent := range slices.Concat(email.Sent, sms.Sent) {
		p.Println(sent)
	}
	return nil
}
