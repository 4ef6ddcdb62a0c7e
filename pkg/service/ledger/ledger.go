// Package ledger validates and atomically applies balance-affecting
// operations, and serves the append-only transaction history.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/dto"
	"github.com/hazemf/atmledger/pkg/money"
	"github.com/hazemf/atmledger/pkg/repository"
)

// Service is the transaction ledger. Every successful Apply commits the new
// balance and the ledger entry as one unit; every failure leaves both
// untouched.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a ledger service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Apply validates the operation against the current balance and, if it
// holds, writes the new balance and appends the transaction atomically.
// The account row is locked for the duration of the unit, so concurrent
// Apply calls on the same account serialize; different accounts do not
// block each other.
func (s *Service) Apply(ctx context.Context, handle domain.Handle, kind domain.TxKind, amount money.Money) (*dto.TransactionRead, error) {
	log := s.logger.With("context", "Apply", "username", handle.Username, "kind", kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("unknown transaction kind %q", kind)
	}

	var created *dto.TransactionRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		row, err := uow.Accounts().GetForUpdate(ctx, handle.Username)
		if err != nil {
			return err
		}
		acct := domain.Account{
			Username: row.Username,
			Balance:  money.New(row.Balance),
		}
		if kind == domain.Withdraw {
			err = acct.ValidateWithdraw(amount)
		} else {
			err = acct.ValidateDeposit(amount)
		}
		if err != nil {
			return err
		}

		newBalance := acct.NextBalance(kind, amount)
		if err := uow.Accounts().UpdateBalance(ctx, handle.Username, newBalance.Decimal()); err != nil {
			return err
		}
		created, err = uow.Transactions().Create(ctx, dto.TransactionCreate{
			Username: handle.Username,
			Kind:     string(kind),
			Amount:   amount.Decimal(),
		})
		return err
	})
	if err != nil {
		log.Info("apply rejected", "amount", amount, "error", err)
		return nil, err
	}
	log.Info("apply committed", "amount", amount, "transaction_id", created.ID)
	return created, nil
}

// History returns a snapshot of the account's transactions ordered by
// ascending timestamp, ties broken by ascending id. An account with no
// transactions yields an empty slice, not an error.
func (s *Service) History(ctx context.Context, handle domain.Handle) ([]dto.TransactionRead, error) {
	return s.uow.Transactions().ListByUsername(ctx, handle.Username)
}
