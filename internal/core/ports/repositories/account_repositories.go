package repositories

import (
	"context"
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
)

// AccountRepository abstracts persistence for the chart of accounts.
type AccountRepository interface {
	// SaveAccount inserts a new account. Returns apperrors.ErrDuplicate when
	// the code is already taken, active or not.
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID returns apperrors.ErrNotFound when the account does not exist.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	// FindAccountByCode matches the code case-insensitively.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)
	// FindAccountsByIDs returns the accounts it could find; missing IDs are
	// simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
	// UpdateAccount writes descriptive fields only; balances and version are
	// owned by the posting path.
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
	// HasPostings reports whether any voucher line references the account.
	HasPostings(ctx context.Context, accountID string) (bool, error)
}
