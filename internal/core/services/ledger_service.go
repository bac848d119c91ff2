package services

import (
	"context"
	"fmt"
	"time"

	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	accountRepo repositories.AccountRepository
	voucherRepo repositories.VoucherRepository
}

// NewLedgerService builds the account statement service.
func NewLedgerService(accountRepo repositories.AccountRepository, voucherRepo repositories.VoucherRepository) portssvc.LedgerService {
	return &ledgerService{accountRepo: accountRepo, voucherRepo: voucherRepo}
}

// AccountLedger replays the account's postings over [from, to], both bounds
// calendar-day inclusive. The opening balance is the account's opening balance
// advanced by every posting dated before from's day, so the statement stands on
// its own regardless of where the range starts. Deactivated accounts remain
// queryable.
func (s *ledgerService) AccountLedger(ctx context.Context, accountID string, from, to time.Time) (*domain.AccountLedger, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date precedes from date", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	rangeStart := startOfDay(from)
	sumsBefore, err := s.voucherRepo.PostingSumsBefore(ctx, accountID, rangeStart)
	if err != nil {
		s.LogError(ctx, "failed to sum postings before range", err, "accountID", accountID)
		return nil, err
	}
	opening := account.OpeningBalance.Apply(sumsBefore.Debit, sumsBefore.Credit)

	postings, err := s.voucherRepo.PostingsForAccount(ctx, accountID, rangeStart, endOfDay(to))
	if err != nil {
		s.LogError(ctx, "failed to load postings", err, "accountID", accountID)
		return nil, err
	}

	running := opening
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	entries := make([]domain.LedgerEntry, len(postings))
	for i, p := range postings {
		running = running.Apply(p.Debit, p.Credit)
		totalDebit = totalDebit.Add(p.Debit)
		totalCredit = totalCredit.Add(p.Credit)
		entries[i] = domain.LedgerEntry{
			Date:           p.Date,
			VoucherID:      p.VoucherID,
			VoucherNumber:  p.VoucherNumber,
			VoucherType:    p.VoucherType,
			Particulars:    p.Narration,
			Debit:          p.Debit,
			Credit:         p.Credit,
			RunningBalance: running,
		}
	}

	return &domain.AccountLedger{
		AccountID:      account.AccountID,
		Code:           account.Code,
		Name:           account.Name,
		From:           rangeStart,
		To:             startOfDay(to),
		OpeningBalance: opening,
		Entries:        entries,
		TotalDebit:     totalDebit,
		TotalCredit:    totalCredit,
		ClosingBalance: running,
	}, nil
}
