package solid

import (
	"errors"
	"fmt"

	"patternlab/internal/examples/money"
	"patternlab/internal/output"
)

// ErrInsufficientFunds is returned when a withdrawal exceeds what an
// account allows.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Account is honored by every implementation the same way: Withdraw
// either succeeds and reduces Balance, or fails with an error and leaves
// Balance unchanged.
type Account interface {
	Name() string
	Balance() money.Cents
	Withdraw(amount money.Cents) error
}

// CheckingAccount allows an overdraft down to -Overdraft.
type CheckingAccount struct {
	balance   money.Cents
	Overdraft money.Cents
}

// NewCheckingAccount opens a checking account with an overdraft limit.
func NewCheckingAccount(balance, overdraft money.Cents) *CheckingAccount {
	return &CheckingAccount{balance: balance, Overdraft: overdraft}
}

func (a *CheckingAccount) Name() string         { return "checking" }
func (a *CheckingAccount) Balance() money.Cents { return a.balance }

// Withdraw fails with ErrInsufficientFunds past the overdraft limit.
func (a *CheckingAccount) Withdraw(amount money.Cents) error {
	if a.balance-amount < -a.Overdraft {
		return fmt.Errorf("%w: %s available", ErrInsufficientFunds, a.balance+a.Overdraft)
	}
	a.balance -= amount
	return nil
}

// SavingsAccount keeps a minimum balance.
type SavingsAccount struct {
	balance money.Cents
	Minimum money.Cents
}

// NewSavingsAccount opens a savings account that must keep minimum.
func NewSavingsAccount(balance, minimum money.Cents) *SavingsAccount {
	return &SavingsAccount{balance: balance, Minimum: minimum}
}

func (a *SavingsAccount) Name() string         { return "savings" }
func (a *SavingsAccount) Balance() money.Cents { return a.balance }

// Withdraw fails with ErrInsufficientFunds below the minimum balance.
func (a *SavingsAccount) Withdraw(amount money.Cents) error {
	if a.balance-amount < a.Minimum {
		return fmt.Errorf("%w: %s must stay in savings", ErrInsufficientFunds, a.Minimum)
	}
	a.balance -= amount
	return nil
}

// PayBill works with any Account without knowing its concrete type.
func PayBill(account Account, amount money.Cents) string {
	if err := account.Withdraw(amount); err != nil {
		return fmt.Sprintf("%s: bill of %s declined (%v), balance %s", account.Name(), amount, err, account.Balance())
	}
	return fmt.Sprintf("%s: paid %s, balance %s", account.Name(), amount, account.Balance())
}

func demoLSP(p *output.Printer) error {
	accounts := []Account{
		NewCheckingAccount(money.Dollars(50), money.Dollars(100)),
		NewSavingsAccount(money.Dollars(500), money.Dollars(400)),
	}
	for _, account := range accounts {
		p.Println(PayBill(account, money.Dollars(80)))
		p.Println(PayBill(account, money.Dollars(80)))
	}
	return nil
}
