// Package repository defines the persistence contracts for accounts and the
// transaction ledger. Implementations live in infra/repository.
package repository

import (
	"context"

	"github.com/hazemf/atmledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// AccountRepository owns the users table. Balance writes are only reachable
// through a UnitOfWork so that they commit together with the matching
// ledger append.
type AccountRepository interface {
	// Create inserts a new account with a zero balance. Returns
	// domain.ErrUsernameTaken when the username already exists; the
	// uniqueness check and the insert are a single atomic statement.
	Create(ctx context.Context, create dto.AccountCreate) error

	// Get returns the account row, or domain.ErrAccountNotFound.
	Get(ctx context.Context, username string) (*dto.AccountRead, error)

	// GetForUpdate returns the account row locked for the duration of the
	// surrounding transaction, serializing concurrent appliers per account.
	GetForUpdate(ctx context.Context, username string) (*dto.AccountRead, error)

	// GetCredentials returns the stored credential for the username, or
	// domain.ErrAccountNotFound.
	GetCredentials(ctx context.Context, username string) (*dto.AccountCredentials, error)

	// UpdateBalance overwrites the stored balance.
	UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error
}

// TransactionRepository owns the append-only transactions table. Entries are
// never updated or deleted.
type TransactionRepository interface {
	// Create appends a ledger entry and returns it with its assigned id and
	// timestamp.
	Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error)

	// ListByUsername returns a snapshot of all entries for the account,
	// ordered by ascending timestamp with ties broken by ascending id.
	ListByUsername(ctx context.Context, username string) ([]dto.TransactionRead, error)
}
