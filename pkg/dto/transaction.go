package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCreate is the write model for appending a ledger entry.
type TransactionCreate struct {
	Username string
	Kind     string
	Amount   decimal.Decimal
}

// TransactionRead is a single immutable entry of the append-only ledger.
type TransactionRead struct {
	ID        uint64          `json:"id"`
	Username  string          `json:"username"`
	Kind      string          `json:"kind"`
	Amount    decimal.Decimal `json:"amount"`
	Timestamp time.Time       `json:"timestamp"`
}
