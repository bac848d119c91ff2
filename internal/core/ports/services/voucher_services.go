package services

import (
	"context"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

// VoucherService validates, posts and reverses vouchers.
type VoucherService interface {
	// Validate runs the full voucher check without committing anything. Safe to
	// call speculatively, e.g. for live balance feedback.
	Validate(ctx context.Context, req dto.CreateVoucherRequest) error
	PostVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error)
	// ReverseVoucher posts a new voucher with every line's sides swapped and
	// links it to the original. The original is never edited or deleted.
	ReverseVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error)
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)
	ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error)
}
