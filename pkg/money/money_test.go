package money_test

import (
	"testing"

	"github.com/hazemf/atmledger/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()
	m, err := money.Parse("42.50")
	require.NoError(t, err)
	assert.Equal(t, "42.50", m.String())
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()
	_, err := money.Parse("forty")
	require.ErrorIs(t, err, money.ErrInvalidAmount)
}

func TestParseRoundsToCents(t *testing.T) {
	t.Parallel()
	m, err := money.Parse("10.005")
	require.NoError(t, err)
	assert.Equal(t, "10.01", m.String())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a := money.FromFloat(100)
	b := money.FromFloat(40)
	assert.Equal(t, "60.00", a.Sub(b).String())
	assert.Equal(t, "140.00", a.Add(b).String())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.GreaterThan(a))
}

func TestSignPredicates(t *testing.T) {
	t.Parallel()
	assert.True(t, money.FromFloat(1).IsPositive())
	assert.False(t, money.Zero().IsPositive())
	assert.True(t, money.FromFloat(5).Neg().IsNegative())
}

func TestDecimalRoundTrip(t *testing.T) {
	t.Parallel()
	d := decimal.RequireFromString("12.34")
	assert.True(t, money.New(d).Equals(money.FromFloat(12.34)))
}
