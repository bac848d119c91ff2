package services

// ServiceContainer bundles every service facade for dependency injection into
// the HTTP layer.
type ServiceContainer struct {
	Account   AccountService
	Voucher   VoucherService
	Ledger    LedgerService
	Reporting ReportingService
}
