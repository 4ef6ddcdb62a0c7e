package repository

import "context"

// UnitOfWork groups repository access with a transaction boundary so that a
// balance write and its ledger append commit as one atomic unit.
//
// Do runs fn inside a store transaction; the UnitOfWork passed to fn hands
// out repositories bound to that transaction's session. If fn returns an
// error the transaction is rolled back and no partial state is visible.
// Outside Do, repositories are bound to the base session for plain reads.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Accounts() AccountRepository
	Transactions() TransactionRepository
}
