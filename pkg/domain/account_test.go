package domain_test

import (
	"testing"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func account(balance float64) *domain.Account {
	return &domain.Account{Username: "alice", Balance: money.FromFloat(balance)}
}

func TestValidateDeposit(t *testing.T) {
	t.Parallel()
	require.NoError(t, account(0).ValidateDeposit(money.FromFloat(100)))
}

func TestValidateDepositRejectsNonPositive(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, account(0).ValidateDeposit(money.Zero()), domain.ErrInvalidAmount)
	assert.ErrorIs(t, account(0).ValidateDeposit(money.FromFloat(-10)), domain.ErrInvalidAmount)
}

func TestValidateWithdraw(t *testing.T) {
	t.Parallel()
	require.NoError(t, account(100).ValidateWithdraw(money.FromFloat(40)))
	// Withdrawing the full balance is allowed.
	require.NoError(t, account(100).ValidateWithdraw(money.FromFloat(100)))
}

func TestValidateWithdrawRejectsOverdraft(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, account(100).ValidateWithdraw(money.FromFloat(100.01)), domain.ErrInsufficientFunds)
	assert.ErrorIs(t, account(0).ValidateWithdraw(money.FromFloat(1)), domain.ErrInsufficientFunds)
}

func TestValidateWithdrawRejectsNonPositive(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, account(100).ValidateWithdraw(money.Zero()), domain.ErrInvalidAmount)
	assert.ErrorIs(t, account(100).ValidateWithdraw(money.FromFloat(-5)), domain.ErrInvalidAmount)
}

func TestNextBalance(t *testing.T) {
	t.Parallel()
	a := account(100)
	assert.Equal(t, "150.00", a.NextBalance(domain.Deposit, money.FromFloat(50)).String())
	assert.Equal(t, "70.00", a.NextBalance(domain.Withdraw, money.FromFloat(30)).String())
}

func TestTxKindIsValid(t *testing.T) {
	t.Parallel()
	assert.True(t, domain.Deposit.IsValid())
	assert.True(t, domain.Withdraw.IsValid())
	assert.False(t, domain.TxKind("Transfer").IsValid())
}
