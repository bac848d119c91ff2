package services

import (
	"context"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

// AccountService is the account registry facade consumed by handlers and by
// the voucher service.
type AccountService interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, userID string) error
}
