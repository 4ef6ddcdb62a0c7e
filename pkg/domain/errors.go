package domain

import "errors"

// Domain errors surfaced to callers. Each leaves persisted state unchanged
// and is safe to show to the user after localization.
var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned on any authentication failure.
	// Unknown username and wrong PIN are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidAmount is returned when a deposit or withdrawal amount is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")
	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrAccountNotFound is returned when an account cannot be found in the store.
	ErrAccountNotFound = errors.New("account not found")
)
