package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	portsrepo "github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for statement sums.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// AccountTotalsAsOf returns posted column sums per account for lines dated at
// or before asOf.
func (r *PgxReportingRepository) AccountTotalsAsOf(ctx context.Context, asOf time.Time) (map[string]domain.DebitCredit, error) {
	query := `
		SELECT l.account_id, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_id = l.voucher_id
		WHERE v.voucher_date <= $1
		GROUP BY l.account_id;
	`
	return r.sumRows(ctx, query, asOf)
}

// AccountMovements returns posted column sums per account for lines dated
// within [from, to].
func (r *PgxReportingRepository) AccountMovements(ctx context.Context, from, to time.Time) (map[string]domain.DebitCredit, error) {
	query := `
		SELECT l.account_id, COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_id = l.voucher_id
		WHERE v.voucher_date BETWEEN $1 AND $2
		GROUP BY l.account_id;
	`
	return r.sumRows(ctx, query, from, to)
}

func (r *PgxReportingRepository) sumRows(ctx context.Context, query string, args ...any) (map[string]domain.DebitCredit, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account sums: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]domain.DebitCredit)
	for rows.Next() {
		var accountID string
		var dc domain.DebitCredit
		if err := rows.Scan(&accountID, &dc.Debit, &dc.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan account sum row: %w", err)
		}
		sums[accountID] = dc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account sum rows: %w", err)
	}
	return sums, nil
}
