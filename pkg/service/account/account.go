// Package account implements identity and balance state: registration,
// authentication and balance reads.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/dto"
	"github.com/hazemf/atmledger/pkg/money"
	"github.com/hazemf/atmledger/pkg/repository"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when the username does not exist, so that
// authentication failures take the same time either way and the caller
// cannot enumerate usernames.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

// Service provides account registration, authentication and balance reads.
// Balance mutation is the ledger service's job; there is no other path.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Register creates a new account with a zero balance. The PIN is stored as a
// bcrypt hash; the externally visible contract is still exact-match
// authentication. Returns domain.ErrUsernameTaken when the name is in use,
// leaving no partial state behind.
func (s *Service) Register(ctx context.Context, username, pin string) error {
	log := s.logger.With("context", "Register", "username", username)
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	err = s.uow.Accounts().Create(ctx, dto.AccountCreate{
		Username: username,
		PinHash:  string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Info("registration rejected, username taken")
			return err
		}
		log.Error("registration failed", "error", err)
		return err
	}
	log.Info("account registered")
	return nil
}

// Authenticate checks the username/PIN pair and returns a session handle.
// Unknown usernames and wrong PINs both fail with
// domain.ErrInvalidCredentials; nothing in the result distinguishes them.
func (s *Service) Authenticate(ctx context.Context, username, pin string) (domain.Handle, error) {
	log := s.logger.With("context", "Authenticate", "username", username)
	creds, err := s.uow.Accounts().GetCredentials(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			// Burn a comparison anyway to keep timing uniform.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(pin))
			log.Info("authentication failed")
			return domain.Handle{}, domain.ErrInvalidCredentials
		}
		log.Error("credential lookup failed", "error", err)
		return domain.Handle{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(creds.PinHash), []byte(pin)) != nil {
		log.Info("authentication failed")
		return domain.Handle{}, domain.ErrInvalidCredentials
	}
	log.Info("authentication successful")
	return domain.Handle{Username: creds.Username}, nil
}

// Balance returns the account's current balance. Side-effect free.
func (s *Service) Balance(ctx context.Context, handle domain.Handle) (money.Money, error) {
	acct, err := s.uow.Accounts().Get(ctx, handle.Username)
	if err != nil {
		return money.Zero(), err
	}
	return money.New(acct.Balance), nil
}
