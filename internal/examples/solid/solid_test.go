package solid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/examples/money"
	"patternlab/internal/registry"
	"patternlab/pkg/patterntypes"
)

func run(t *testing.T, name string) patterntypes.Result {
	t.Helper()
	for _, example := range Examples() {
		if example.Name == name {
			return example.Action()
		}
	}
	t.Fatalf("example %s not found", name)
	return patterntypes.Result{}
}

func TestExamples_AllPass(t *testing.T) {
	for _, example := range Examples() {
		t.Run(example.Name, func(t *testing.T) {
			assert.Equal(t, patterntypes.Solid, example.Category)
			result := example.Action()
			require.True(t, result.Succeeded, result.Message())
		})
	}
}

func TestRegister(t *testing.T) {
	reg := registry.New()
	require.NoError(t, Register(reg))
	assert.Equal(t, 5, reg.Len())
}

func TestSingleResponsibility(t *testing.T) {
	inv := Invoice{Number: "X", Lines: []money.Cents{100, 200}, TaxPct: 10}
	assert.Equal(t, money.Cents(330), InvoiceCalculator{}.Total(inv))

	result := run(t, "Single Responsibility")
	assert.Equal(t, []string{
		"INV-1: subtotal $35.00, total $42.00",
		"INV-2: subtotal $9.99, total $9.99",
		"⚠ invoice INV-1 already archived",
		"archived invoices: 2",
	}, result.Lines)
}

func TestOpenClosed(t *testing.T) {
	engine := PriceEngine{}
	cart := Cart{Loyal: true, Items: 20, Subtotal: money.Dollars(10)}
	assert.Equal(t, money.Dollars(10), engine.Price(cart), "no rules, no discount")

	engine.Rules = []DiscountRule{BulkDiscount{MinItems: 10, Pct: 50}, LoyaltyDiscount{Amount: money.Dollars(20)}}
	assert.Equal(t, money.Cents(0), engine.Price(cart), "price is clamped at zero")

	result := run(t, "Open/Closed")
	assert.Equal(t, []string{
		"bulk only: alice pays $180.00",
		"bulk only: bob pays $30.00",
		"bulk only: carol pays $3.00",
		"bulk+loyalty: alice pays $180.00",
		"bulk+loyalty: bob pays $25.00",
		"bulk+loyalty: carol pays $0.00",
	}, result.Lines)
}

func TestLiskovSubstitution(t *testing.T) {
	accounts := []Account{
		NewCheckingAccount(money.Dollars(10), 0),
		NewSavingsAccount(money.Dollars(10), money.Dollars(5)),
	}
	for _, account := range accounts {
		t.Run(account.Name(), func(t *testing.T) {
			before := account.Balance()
			err := account.Withdraw(money.Dollars(20))
			assert.ErrorIs(t, err, ErrInsufficientFunds)
			assert.Equal(t, before, account.Balance(), "failed withdrawal leaves balance unchanged")

			require.NoError(t, account.Withdraw(money.Dollars(5)))
			assert.Equal(t, before-money.Dollars(5), account.Balance())
		})
	}

	result := run(t, "Liskov Substitution")
	assert.Equal(t, []string{
		"checking: paid $80.00, balance -$30.00",
		"checking: bill of $80.00 declined (insufficient funds: $70.00 available), balance -$30.00",
		"savings: paid $80.00, balance $420.00",
		"savings: bill of $80.00 declined (insufficient funds: $400.00 must stay in savings), balance $420.00",
	}, result.Lines)
}

func TestInterfaceSegregation(t *testing.T) {
	_, err := Digitize(BasicPrinter{}, "page")
	assert.ErrorIs(t, err, ErrUnsupportedOperation)

	scanned, err := Digitize(OfficeMachine{}, "page")
	require.NoError(t, err)
	assert.Equal(t, "scanned PAGE", scanned)

	result := run(t, "Interface Segregation")
	assert.Equal(t, []string{
		"basic printer: printed invoice.pdf",
		"⚠ basic printer cannot scan: unsupported operation",
		"office machine: printed invoice.pdf",
		"office machine: scanned RECEIPT",
		"office machine: faxed invoice.pdf to 555-0100",
	}, result.Lines)
}

type recordingNotifier struct {
	recipients []string
}

func (n *recordingNotifier) Send(recipient, _ string) error {
	n.recipients = append(n.recipients, recipient)
	return nil
}

func TestDependencyInversion(t *testing.T) {
	notifier := &recordingNotifier{}
	service := NewOrderService(notifier)

	require.NoError(t, service.Confirm("A-1", "bob"))
	require.Error(t, service.Confirm("", "bob"))
	assert.Equal(t, []string{"bob"}, notifier.recipients)

	result := run(t, "Dependency Inversion")
	assert.Equal(t, []string{
		"⚠ confirm A-1000042: sms to alice rejected: 25 characters exceeds limit 20",
		"email to alice: order A-17 confirmed",
		"email to alice: order A-1000042 confirmed",
		"sms to alice: order A-17 confirmed",
	}, result.Lines)
}
