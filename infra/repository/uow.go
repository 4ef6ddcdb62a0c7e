package repository

import (
	"context"

	repo "github.com/hazemf/atmledger/pkg/repository"
	"gorm.io/gorm"
)

// UoW binds the transaction boundary and repository construction to one GORM
// session, so every repository handed out inside Do shares the same database
// transaction.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UoW over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction, providing a UoW whose repositories
// are bound to that transaction. GORM rolls back when fn returns an error.
func (u *UoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// Accounts returns an account repository bound to the current session.
func (u *UoW) Accounts() repo.AccountRepository {
	return NewAccountRepository(u.session())
}

// Transactions returns a ledger repository bound to the current session.
func (u *UoW) Transactions() repo.TransactionRepository {
	return NewTransactionRepository(u.session())
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
