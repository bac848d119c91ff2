package repositories

// RepositoryProvider bundles every repository implementation a storage backend
// offers, so main can wire services without knowing the backend.
type RepositoryProvider struct {
	AccountRepo   AccountRepository
	VoucherRepo   VoucherRepository
	ReportingRepo ReportingRepository
}
