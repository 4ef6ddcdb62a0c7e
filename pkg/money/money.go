// Package money provides the monetary value object used across the ledger.
//
// It is a thin wrapper around shopspring/decimal so that balance arithmetic
// is exact. All amounts are US dollars; the ledger has no notion of other
// currencies.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when a string cannot be parsed as an amount.
var ErrInvalidAmount = errors.New("invalid amount")

// Money represents a dollar amount with exact decimal arithmetic.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero-valued amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// New creates a Money from a raw decimal, e.g. when hydrating from the store.
func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

// FromFloat creates a Money from a float64 as entered by a caller.
// The value is rounded to cents.
func FromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f).Round(2)}
}

// Parse creates a Money from a decimal string such as "42.50".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{amount: d.Round(2)}, nil
}

// Decimal exposes the underlying decimal for persistence.
func (m Money) Decimal() decimal.Decimal { return m.amount }

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// Equals reports whether m and other are numerically equal.
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "70.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
