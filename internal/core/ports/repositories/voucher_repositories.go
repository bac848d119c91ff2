package repositories

import (
	"context"
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
)

// VoucherRepository abstracts the append-only voucher store and the atomic
// posting unit.
type VoucherRepository interface {
	// SaveVoucher allocates the next voucher number for the voucher's type,
	// persists the voucher with its lines and writes the new balances of every
	// account in accounts, all as one atomic unit. Each account carries the
	// version it was read at; any stale version fails the whole unit with
	// apperrors.ErrConcurrentModification and no side effects.
	// Returns the voucher with its assigned number and sequence.
	SaveVoucher(ctx context.Context, voucher domain.Voucher, accounts []domain.Account) (*domain.Voucher, error)
	// FindVoucherByID returns the voucher with its lines, or apperrors.ErrNotFound.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	// ListVouchers pages newest-first using a cursor token; voucherType narrows
	// the listing when non-nil.
	ListVouchers(ctx context.Context, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error)
	// MarkVoucherReversed stamps the original voucher with the reversing link.
	// The voucher's lines are never touched.
	MarkVoucherReversed(ctx context.Context, voucherID string, reversingVoucherID string, userID string, now time.Time) error
	// PostingsForAccount returns the account's posted lines dated within
	// [from, to], ordered by date then voucher number.
	PostingsForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.AccountPosting, error)
	// PostingSumsBefore returns the account's posted debit/credit totals for
	// lines dated strictly before the given instant.
	PostingSumsBefore(ctx context.Context, accountID string, before time.Time) (domain.DebitCredit, error)
}
