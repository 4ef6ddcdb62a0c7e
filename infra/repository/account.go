// Package repository provides the GORM-backed implementations of the
// persistence contracts in pkg/repository.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/dto"
	repo "github.com/hazemf/atmledger/pkg/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository over the given session.
func NewAccountRepository(db *gorm.DB) repo.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, create dto.AccountCreate) error {
	user := User{
		Username: create.Username,
		Pin:      create.PinHash,
		Balance:  decimal.Zero,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		// Uniqueness is enforced by the primary key, so a concurrent
		// registration of the same username loses here, not earlier.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, username string) (*dto.AccountRead, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return mapUserToDTO(&user), nil
}

func (r *accountRepository) GetForUpdate(ctx context.Context, username string) (*dto.AccountRead, error) {
	tx := r.db.WithContext(ctx)
	// sqlite has no FOR UPDATE; its single-writer transactions (opened
	// immediate, see infra.NewDBConnection) give the same serialization.
	if r.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var user User
	err := tx.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("lock account: %w", err)
	}
	return mapUserToDTO(&user), nil
}

func (r *accountRepository) GetCredentials(ctx context.Context, username string) (*dto.AccountCredentials, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get credentials: %w", err)
	}
	return &dto.AccountCredentials{Username: user.Username, PinHash: user.Pin}, nil
}

func (r *accountRepository) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("username = ?", username).
		Update("balance", balance).Error
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	return nil
}

func mapUserToDTO(user *User) *dto.AccountRead {
	return &dto.AccountRead{
		Username:  user.Username,
		Balance:   user.Balance,
		CreatedAt: user.CreatedAt,
	}
}
