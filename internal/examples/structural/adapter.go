package structural

import (
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// PaymentGateway is the interface the checkout code expects.
type PaymentGateway interface {
	Charge(account string, amount money.Cents) error
}

// LegacyGateway is a third-party client with an incompatible API: it
// takes amounts in whole dollars as strings and reports status codes.
type LegacyGateway struct {
	Log []string
}

// SubmitPayment returns 0 on success and 51 when the account is unknown.
func (g *LegacyGateway) SubmitPayment(dollars string, accountID string) int {
	if accountID == "" {
		return 51
	}
	g.Log = append(g.Log, fmt.Sprintf("legacy: %s USD from %s", dollars, accountID))
	return 0
}

// LegacyAdapter makes a LegacyGateway usable as a PaymentGateway.
type LegacyAdapter struct {
	Legacy *LegacyGateway
}

// Charge converts cents to the legacy format and maps status codes to errors.
func (a LegacyAdapter) Charge(account string, amount money.Cents) error {
	dollars := fmt.Sprintf("%d.%02d", amount/100, amount%100)
	if code := a.Legacy.SubmitPayment(dollars, account); code != 0 {
		return fmt.Errorf("legacy gateway declined payment (code %d)", code)
	}
	return nil
}

func checkout(gateway PaymentGateway, account string, amount money.Cents) string {
	if err := gateway.Charge(account, amount); err != nil {
		return "checkout failed: " + err.Error()
	}
	return fmt.Sprintf("checkout charged %s to %s", amount, account)
}

func demoAdapter(p *output.Printer) error {
	legacy := &LegacyGateway{}
	var gateway PaymentGateway = LegacyAdapter{Legacy: legacy}

	p.Println(checkout(gateway, "ACC-42", money.Cents(1999)))
	p.Println(checkout(gateway, "", money.Cents(500)))
	for _, entry := range legacy.Log {
		p.Muted(entry)
	}
	return nil
}
