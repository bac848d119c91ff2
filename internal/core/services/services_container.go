package services

import (
	"github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	ports "github.com/paybooks/payroll_ledger/internal/core/ports/services"
)

// NewServiceContainer wires every service against the given repositories.
func NewServiceContainer(repos repositories.RepositoryProvider) *ports.ServiceContainer {
	return &ports.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo),
		Voucher:   NewVoucherService(repos.AccountRepo, repos.VoucherRepo),
		Ledger:    NewLedgerService(repos.AccountRepo, repos.VoucherRepo),
		Reporting: NewReportingService(repos.AccountRepo, repos.ReportingRepo),
	}
}
