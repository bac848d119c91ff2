package repositories

import (
	"context"
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
)

// ReportingRepository supplies the raw per-account column sums the statement
// generator aggregates. Reports are always recomputed from these sums plus the
// chart of accounts; nothing here is materialized.
type ReportingRepository interface {
	// AccountTotalsAsOf returns posted debit/credit sums per account for lines
	// dated at or before asOf.
	AccountTotalsAsOf(ctx context.Context, asOf time.Time) (map[string]domain.DebitCredit, error)
	// AccountMovements returns posted debit/credit sums per account for lines
	// dated within [from, to].
	AccountMovements(ctx context.Context, from, to time.Time) (map[string]domain.DebitCredit, error)
}
