package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo repositories.AccountRepository
}

// NewAccountService builds the account registry service.
func NewAccountService(accountRepo repositories.AccountRepository) portssvc.AccountService {
	return &accountService{accountRepo: accountRepo}
}

// CreateAccount validates the group/type pair and code uniqueness, then stores
// the account with its opening balance copied into the current balance.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	group := domain.AccountGroup(strings.ToUpper(strings.TrimSpace(req.Group)))
	if !group.Valid() {
		return nil, fmt.Errorf("%w: unknown account group %q", apperrors.ErrValidation, req.Group)
	}
	if !domain.ValidAccountType(group, req.Type) {
		return nil, fmt.Errorf("%w: account type %q is not valid for group %s", apperrors.ErrValidation, req.Type, group)
	}
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance must not be negative", apperrors.ErrValidation)
	}

	code := strings.TrimSpace(req.Code)
	existing, err := s.accountRepo.FindAccountByCode(ctx, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, "failed to check account code", err, "code", code)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %q is already taken", apperrors.ErrDuplicate, code)
	}

	side := group.NaturalSide()
	if req.OpeningBalanceSide != "" {
		side = domain.Side(req.OpeningBalanceSide)
		if !side.Valid() {
			return nil, fmt.Errorf("%w: unknown balance side %q", apperrors.ErrValidation, req.OpeningBalanceSide)
		}
	}
	opening := domain.NewBalance(req.OpeningBalance.Round(2), side)

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Code:           code,
		Name:           strings.TrimSpace(req.Name),
		Group:          group,
		Type:           req.Type,
		Description:    req.Description,
		OpeningBalance: opening,
		CurrentBalance: opening,
		IsActive:       true,
		Version:        1,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account code %q is already taken", apperrors.ErrDuplicate, code)
		}
		s.LogError(ctx, "failed to save account", err, "code", code)
		return nil, err
	}
	s.LogInfo(ctx, "account created", "accountID", account.AccountID, "code", account.Code)
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
}

func (s *accountService) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	if filter.Group != nil && !filter.Group.Valid() {
		return nil, fmt.Errorf("%w: unknown account group %q", apperrors.ErrValidation, *filter.Group)
	}
	return s.accountRepo.ListAccounts(ctx, filter)
}

// UpdateAccount patches descriptive fields. The group is fixed once the account
// has postings; the type may change within the group's dictionary. Balances and
// the code are never patchable here.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	group := account.Group
	if req.Group != nil {
		newGroup := domain.AccountGroup(strings.ToUpper(strings.TrimSpace(*req.Group)))
		if !newGroup.Valid() {
			return nil, fmt.Errorf("%w: unknown account group %q", apperrors.ErrValidation, *req.Group)
		}
		if newGroup != account.Group {
			hasPostings, err := s.accountRepo.HasPostings(ctx, accountID)
			if err != nil {
				s.LogError(ctx, "failed to check account postings", err, "accountID", accountID)
				return nil, err
			}
			if hasPostings {
				return nil, fmt.Errorf("%w: account group cannot change once the account has postings", apperrors.ErrConflict)
			}
		}
		group = newGroup
	}

	accountType := account.Type
	if req.Type != nil {
		accountType = *req.Type
	}
	if !domain.ValidAccountType(group, accountType) {
		return nil, fmt.Errorf("%w: account type %q is not valid for group %s", apperrors.ErrValidation, accountType, group)
	}

	account.Group = group
	account.Type = accountType
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: account name must not be empty", apperrors.ErrValidation)
		}
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.LastUpdatedAt = time.Now().UTC()
	account.LastUpdatedBy = req.UpdatedBy

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, "failed to update account", err, "accountID", accountID)
		return nil, err
	}
	return account, nil
}

// DeactivateAccount soft-deletes the account. History and balances stay
// queryable; posting to the account is rejected from now on.
func (s *accountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, accountID)
	}
	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, "failed to deactivate account", err, "accountID", accountID)
		return err
	}
	s.LogInfo(ctx, "account deactivated", "accountID", accountID)
	return nil
}
