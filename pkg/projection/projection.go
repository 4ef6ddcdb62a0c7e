// Package projection derives presentation-ready views from the transaction
// ledger. It is stateless: every function is a pure projection of its input.
package projection

import (
	"errors"
	"fmt"
	"time"

	"github.com/hazemf/atmledger/pkg/domain"
	"github.com/hazemf/atmledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// ErrNoTransactions signals an empty history. The caller decides how to
// render it (the clients localize the message); this layer only signals.
var ErrNoTransactions = errors.New("no transactions found")

// Point pairs a transaction's timestamp with its signed amount.
type Point struct {
	Timestamp time.Time       `json:"timestamp"`
	Amount    decimal.Decimal `json:"amount"`
}

// timestampLayout matches the format the history screen has always used.
const timestampLayout = "2006-01-02 15:04:05"

// DisplayLines renders one line per transaction in the form
// "<kind>: $<amount> on <timestamp>", preserving input order.
func DisplayLines(history []dto.TransactionRead) ([]string, error) {
	if len(history) == 0 {
		return nil, ErrNoTransactions
	}
	lines := make([]string, 0, len(history))
	for _, tx := range history {
		lines = append(lines, fmt.Sprintf("%s: $%s on %s",
			tx.Kind, tx.Amount.StringFixed(2), tx.Timestamp.Format(timestampLayout)))
	}
	return lines, nil
}

// SignedSeries maps each transaction to (timestamp, +amount) for deposits
// and (timestamp, -amount) for withdrawals, in input order. Each point is a
// single transaction's signed magnitude, not a running balance.
func SignedSeries(history []dto.TransactionRead) []Point {
	series := make([]Point, 0, len(history))
	for _, tx := range history {
		amount := tx.Amount
		if tx.Kind == string(domain.Withdraw) {
			amount = amount.Neg()
		}
		series = append(series, Point{Timestamp: tx.Timestamp, Amount: amount})
	}
	return series
}
