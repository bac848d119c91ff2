package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the Postgres-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		VoucherRepo:   newPgxVoucherRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
