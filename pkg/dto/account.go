// Package dto defines the read and write models passed between services and
// repositories.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountCreate is the write model for registering a new account.
type AccountCreate struct {
	Username string
	PinHash  string
}

// AccountRead is the read-optimized projection of an account row.
type AccountRead struct {
	Username  string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// AccountCredentials carries the stored credential for authentication.
type AccountCredentials struct {
	Username string
	PinHash  string
}
