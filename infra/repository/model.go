package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a user record in the database. The username is the primary
// key; it is immutable once created.
type User struct {
	Username  string          `gorm:"primaryKey;size:50"`
	Pin       string          `gorm:"not null"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt time.Time
}

// Transaction represents a persisted ledger entry. Rows are append-only:
// ids come from the database sequence and are never reused.
type Transaction struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	Username  string          `gorm:"size:50;not null;index"`
	Kind      string          `gorm:"type:varchar(8);not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Timestamp time.Time       `gorm:"autoCreateTime;index"`
}
