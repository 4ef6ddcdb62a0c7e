// Package domain holds the account aggregate and the ledger's domain rules.
package domain

import (
	"github.com/hazemf/atmledger/pkg/money"
)

// Handle identifies an authenticated account session. It is returned by
// Authenticate and passed to every subsequent operation, making the
// "current user" explicit data instead of ambient state.
type Handle struct {
	Username string
}

// TxKind is the kind of a balance-affecting operation.
type TxKind string

const (
	// Deposit adds funds to the account.
	Deposit TxKind = "Deposit"
	// Withdraw removes funds from the account.
	Withdraw TxKind = "Withdraw"
)

// IsValid reports whether the kind is one of the two known operations.
func (k TxKind) IsValid() bool {
	return k == Deposit || k == Withdraw
}

// Account is the aggregate protecting the balance invariant: the balance
// always equals the sum of deposits minus the sum of withdrawals recorded
// for the username, and never goes negative.
type Account struct {
	Username string
	Balance  money.Money
}

// ValidateDeposit checks the invariants for a deposit of the given amount.
func (a *Account) ValidateDeposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateWithdraw checks the invariants for a withdrawal of the given
// amount. The balance must cover the full amount.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return ErrInsufficientFunds
	}
	return nil
}

// NextBalance returns the balance after applying the operation. Callers must
// validate first; NextBalance itself performs no checks.
func (a *Account) NextBalance(kind TxKind, amount money.Money) money.Money {
	if kind == Withdraw {
		return a.Balance.Sub(amount)
	}
	return a.Balance.Add(amount)
}
