package services

import (
	"context"
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
)

// LedgerService reconstructs one account's entry list over a date range.
type LedgerService interface {
	// AccountLedger replays the account's postings: opening balance as of the
	// start of from, entries within [from, to] (to inclusive of the whole day)
	// with running balances, totals and the closing balance.
	AccountLedger(ctx context.Context, accountID string, from, to time.Time) (*domain.AccountLedger, error)
}
