// Package testutils provides an in-memory implementation of the persistence
// contracts for service and handler tests.
package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/dto"
	repo "github.com/hazemf/atmledger/pkg/repository"
	"github.com/shopspring/decimal"
)

type accountRecord struct {
	pinHash   string
	balance   decimal.Decimal
	createdAt time.Time
}

type memState struct {
	mu       sync.Mutex
	accounts map[string]*accountRecord
	entries  []dto.TransactionRead
	nextID   uint64
	now      time.Time
}

// MemoryUoW is an in-memory repository.UnitOfWork. Do serializes all work
// under one mutex, which is stricter than the real store's per-account row
// lock but preserves the same observable atomicity.
type MemoryUoW struct {
	state *memState
	inTx  bool
}

// NewMemoryUoW creates an empty in-memory store.
func NewMemoryUoW() *MemoryUoW {
	return &MemoryUoW{state: &memState{
		accounts: make(map[string]*accountRecord),
		nextID:   1,
		now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}}
}

// Do runs fn under the store lock and rolls the state back when fn fails.
func (u *MemoryUoW) Do(ctx context.Context, fn func(uow repo.UnitOfWork) error) error {
	u.state.mu.Lock()
	defer u.state.mu.Unlock()
	backup := u.state.snapshot()
	if err := fn(&MemoryUoW{state: u.state, inTx: true}); err != nil {
		u.state.restore(backup)
		return err
	}
	return nil
}

// Accounts implements repository.UnitOfWork.
func (u *MemoryUoW) Accounts() repo.AccountRepository {
	return &memAccounts{state: u.state, locked: u.inTx}
}

// Transactions implements repository.UnitOfWork.
func (u *MemoryUoW) Transactions() repo.TransactionRepository {
	return &memTransactions{state: u.state, locked: u.inTx}
}

type stateBackup struct {
	accounts map[string]*accountRecord
	entries  []dto.TransactionRead
	nextID   uint64
	now      time.Time
}

func (s *memState) snapshot() stateBackup {
	accounts := make(map[string]*accountRecord, len(s.accounts))
	for name, rec := range s.accounts {
		cp := *rec
		accounts[name] = &cp
	}
	entries := make([]dto.TransactionRead, len(s.entries))
	copy(entries, s.entries)
	return stateBackup{accounts: accounts, entries: entries, nextID: s.nextID, now: s.now}
}

func (s *memState) restore(b stateBackup) {
	s.accounts = b.accounts
	s.entries = b.entries
	s.nextID = b.nextID
	s.now = b.now
}

// tick advances the fake clock, keeping timestamps strictly increasing.
func (s *memState) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

type memAccounts struct {
	state  *memState
	locked bool
}

func (r *memAccounts) acquire() func() {
	if r.locked {
		return func() {}
	}
	r.state.mu.Lock()
	return r.state.mu.Unlock
}

func (r *memAccounts) Create(ctx context.Context, create dto.AccountCreate) error {
	defer r.acquire()()
	if _, exists := r.state.accounts[create.Username]; exists {
		return domain.ErrUsernameTaken
	}
	r.state.accounts[create.Username] = &accountRecord{
		pinHash:   create.PinHash,
		balance:   decimal.Zero,
		createdAt: r.state.tick(),
	}
	return nil
}

func (r *memAccounts) Get(ctx context.Context, username string) (*dto.AccountRead, error) {
	defer r.acquire()()
	rec, ok := r.state.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &dto.AccountRead{Username: username, Balance: rec.balance, CreatedAt: rec.createdAt}, nil
}

func (r *memAccounts) GetForUpdate(ctx context.Context, username string) (*dto.AccountRead, error) {
	return r.Get(ctx, username)
}

func (r *memAccounts) GetCredentials(ctx context.Context, username string) (*dto.AccountCredentials, error) {
	defer r.acquire()()
	rec, ok := r.state.accounts[username]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &dto.AccountCredentials{Username: username, PinHash: rec.pinHash}, nil
}

func (r *memAccounts) UpdateBalance(ctx context.Context, username string, balance decimal.Decimal) error {
	defer r.acquire()()
	rec, ok := r.state.accounts[username]
	if !ok {
		return domain.ErrAccountNotFound
	}
	rec.balance = balance
	return nil
}

type memTransactions struct {
	state  *memState
	locked bool
}

func (r *memTransactions) acquire() func() {
	if r.locked {
		return func() {}
	}
	r.state.mu.Lock()
	return r.state.mu.Unlock
}

func (r *memTransactions) Create(ctx context.Context, create dto.TransactionCreate) (*dto.TransactionRead, error) {
	defer r.acquire()()
	entry := dto.TransactionRead{
		ID:        r.state.nextID,
		Username:  create.Username,
		Kind:      create.Kind,
		Amount:    create.Amount,
		Timestamp: r.state.tick(),
	}
	r.state.nextID++
	r.state.entries = append(r.state.entries, entry)
	return &entry, nil
}

func (r *memTransactions) ListByUsername(ctx context.Context, username string) ([]dto.TransactionRead, error) {
	defer r.acquire()()
	var result []dto.TransactionRead
	for _, entry := range r.state.entries {
		if entry.Username == username {
			result = append(result, entry)
		}
	}
	return result, nil
}
