package creational

import (
	"errors"
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// ErrUnsupportedMethod is returned for payment methods without a processor.
var ErrUnsupportedMethod = errors.New("unsupported payment method")

// PaymentProcessor charges an amount and returns a receipt.
type PaymentProcessor interface {
	Pay(amount money.Cents) string
}

type cardProcessor struct{}

func (cardProcessor) Pay(amount money.Cents) string {
	fee := amount.Percent(3)
	return fmt.Sprintf("card charged %s (fee %s)", amount+fee, fee)
}

type walletProcessor struct{}

func (walletProcessor) Pay(amount money.Cents) string {
	return fmt.Sprintf("wallet debited %s", amount)
}

type bankTransferProcessor struct{}

func (bankTransferProcessor) Pay(amount money.Cents) string {
	return fmt.Sprintf("bank transfer of %s scheduled", amount)
}

// NewPaymentProcessor is the factory method selecting a processor by name.
func NewPaymentProcessor(method string) (PaymentProcessor, error) {
	switch method {
	case "card":
		return cardProcessor{}, nil
	case "wallet":
		return walletProcessor{}, nil
	case "bank":
		return bankTransferProcessor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
}

func demoFactoryMethod(p *output.Printer) error {
	amount := money.Dollars(50)

	for _, method := range []string{"card", "wallet", "bank", "crypto"} {
		processor, err := NewPaymentProcessor(method)
		if err != nil {
			p.Warning(err.Error())
			continue
		}
		p.Linef("%s: %s", method, processor.Pay(amount))
	}
	return nil
}
