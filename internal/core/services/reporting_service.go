package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	accountRepo   repositories.AccountRepository
	reportingRepo repositories.ReportingRepository
}

// NewReportingService builds the statement generator.
func NewReportingService(accountRepo repositories.AccountRepository, reportingRepo repositories.ReportingRepository) portssvc.ReportingService {
	return &reportingService{accountRepo: accountRepo, reportingRepo: reportingRepo}
}

// TrialBalance lists every account's as-of balance in its computed column.
// Inactive accounts appear as long as they carry history; an out-of-balance
// book is reported with the signed difference, never masked.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, totals, err := s.loadAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.TrialBalanceReport{
		AsOf:        startOfDay(asOf),
		Rows:        make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, account := range accounts {
		sums := totals[account.AccountID]
		hasHistory := sums.Debit.IsPositive() || sums.Credit.IsPositive() || !account.OpeningBalance.IsZero()
		if !account.IsActive && !hasHistory {
			continue
		}
		balance := account.OpeningBalance.Apply(sums.Debit, sums.Credit)
		row := domain.TrialBalanceRow{
			AccountID: account.AccountID,
			Code:      account.Code,
			Name:      account.Name,
			Group:     account.Group,
			Type:      account.Type,
			Debit:     decimal.Zero,
			Credit:    decimal.Zero,
		}
		if balance.Side == domain.SideCredit {
			row.Credit = balance.Amount
		} else {
			row.Debit = balance.Amount
		}
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}
	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].Code < report.Rows[j].Code })

	report.Difference = report.TotalDebit.Sub(report.TotalCredit)
	report.IsBalanced = report.Difference.IsZero()
	if !report.IsBalanced {
		s.LogWarn(ctx, "trial balance does not balance", "difference", report.Difference.String())
	}
	return report, nil
}

// ProfitAndLoss aggregates income and expense movements inside the window,
// grouped by account type. Movements only: balances carried from before the
// window do not count.
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to date precedes from date", apperrors.ErrValidation)
	}
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, "failed to list accounts", err)
		return nil, err
	}
	movements, err := s.reportingRepo.AccountMovements(ctx, startOfDay(from), endOfDay(to))
	if err != nil {
		s.LogError(ctx, "failed to load account movements", err)
		return nil, err
	}

	report := &domain.PAndLReport{
		From:          startOfDay(from),
		To:            startOfDay(to),
		IncomeByType:  make(map[string]decimal.Decimal),
		ExpenseByType: make(map[string]decimal.Decimal),
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, account := range accounts {
		sums, ok := movements[account.AccountID]
		if !ok {
			continue
		}
		switch account.Group {
		case domain.GroupIncome:
			amount := sums.Credit.Sub(sums.Debit)
			report.IncomeByType[account.Type] = report.IncomeByType[account.Type].Add(amount)
			report.TotalIncome = report.TotalIncome.Add(amount)
		case domain.GroupExpenses:
			amount := sums.Debit.Sub(sums.Credit)
			report.ExpenseByType[account.Type] = report.ExpenseByType[account.Type].Add(amount)
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
	}

	report.NetResult = report.TotalIncome.Sub(report.TotalExpenses)
	report.IsProfit = !report.NetResult.IsNegative()
	if report.TotalIncome.IsZero() {
		report.ProfitPercentage = decimal.Zero
	} else {
		report.ProfitPercentage = report.NetResult.Div(report.TotalIncome).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return report, nil
}

// BalanceSheet states the accounting equation as of a cutoff. The cumulative
// net result since inception sits on the liabilities side next to capital, so
// a balanced book satisfies Assets == Liabilities + Capital + P&L.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	accounts, totals, err := s.loadAsOf(ctx, asOf)
	if err != nil {
		return nil, err
	}

	report := &domain.BalanceSheetReport{
		AsOf:              startOfDay(asOf),
		AssetsByType:      make(map[string]decimal.Decimal),
		LiabilitiesByType: make(map[string]decimal.Decimal),
		Capital:           decimal.Zero,
		ProfitLoss:        decimal.Zero,
		TotalAssets:       decimal.Zero,
	}
	totalLiabilities := decimal.Zero
	for _, account := range accounts {
		sums := totals[account.AccountID]
		signed := account.OpeningBalance.Apply(sums.Debit, sums.Credit).Signed()
		switch account.Group {
		case domain.GroupAssets:
			report.AssetsByType[account.Type] = report.AssetsByType[account.Type].Add(signed)
			report.TotalAssets = report.TotalAssets.Add(signed)
		case domain.GroupLiabilities:
			// Natural-Cr balances render positive on their own side.
			report.LiabilitiesByType[account.Type] = report.LiabilitiesByType[account.Type].Add(signed.Neg())
			totalLiabilities = totalLiabilities.Add(signed.Neg())
		case domain.GroupCapital:
			report.Capital = report.Capital.Add(signed.Neg())
		case domain.GroupIncome, domain.GroupExpenses:
			report.ProfitLoss = report.ProfitLoss.Sub(signed)
		}
	}

	report.TotalLiabilitiesAndCapital = totalLiabilities.Add(report.Capital).Add(report.ProfitLoss)
	report.Difference = report.TotalAssets.Sub(report.TotalLiabilitiesAndCapital)
	report.IsBalanced = report.Difference.IsZero()
	if !report.IsBalanced {
		s.LogWarn(ctx, "balance sheet does not balance", "difference", report.Difference.String())
	}
	return report, nil
}

func (s *reportingService) loadAsOf(ctx context.Context, asOf time.Time) ([]domain.Account, map[string]domain.DebitCredit, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, domain.AccountFilter{})
	if err != nil {
		s.LogError(ctx, "failed to list accounts", err)
		return nil, nil, err
	}
	totals, err := s.reportingRepo.AccountTotalsAsOf(ctx, endOfDay(asOf))
	if err != nil {
		s.LogError(ctx, "failed to load account totals", err)
		return nil, nil, err
	}
	return accounts, totals, nil
}
