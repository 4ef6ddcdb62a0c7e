package repository

import (
	"context"
	"fmt"

	"github.com/hazemf/atmledger/pkg/dto"
	repo "github.com/hazemf/atmledger/pkg/repository"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a ledger repository over the given session.
func NewTransactionRepository(db *gorm.DB) repo.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	entry := Transaction{
		Username: create.Username,
		Kind:     create.Kind,
		Amount:   create.Amount,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("append transaction: %w", err)
	}
	return mapTransactionToDTO(&entry), nil
}

func (r *transactionRepository) ListByUsername(ctx context.Context, username string) ([]dto.TransactionRead, error) {
	var entries []Transaction
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("timestamp ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	result := make([]dto.TransactionRead, 0, len(entries))
	for i := range entries {
		result = append(result, *mapTransactionToDTO(&entries[i]))
	}
	return result, nil
}

func mapTransactionToDTO(entry *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:        entry.ID,
		Username:  entry.Username,
		Kind:      entry.Kind,
		Amount:    entry.Amount,
		Timestamp: entry.Timestamp,
	}
}
