package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockAccountRepo   *MockAccountRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingService
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockReportingRepo = new(MockReportingRepository)
	s.service = services.NewReportingService(s.mockAccountRepo, s.mockReportingRepo)
}

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func account(id, code string, group domain.AccountGroup, accountType string, opening domain.Balance, active bool) domain.Account {
	return domain.Account{
		AccountID:      id,
		Code:           code,
		Name:           "Account " + code,
		Group:          group,
		Type:           accountType,
		OpeningBalance: opening,
		IsActive:       active,
	}
}

func (s *ReportingServiceTestSuite) TestTrialBalanceReportsSignedDifference() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("a1", "1001", domain.GroupAssets, "Cash-in-Hand",
			domain.NewBalance(d("1000"), domain.SideDebit), true),
		account("a2", "4001", domain.GroupIncome, "Sales Account", domain.ZeroBalance(), true),
	}
	totals := map[string]domain.DebitCredit{
		"a2": {Debit: decimal.Zero, Credit: d("300")},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, mock.Anything).Return(accounts, nil).Once()
	s.mockReportingRepo.On("AccountTotalsAsOf", ctx, mock.Anything).Return(totals, nil).Once()

	report, err := s.service.TrialBalance(ctx, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	// A one-sided opening leaves the book out of balance: reported, not erred.
	s.False(report.IsBalanced)
	s.True(d("700").Equal(report.Difference))
	s.True(d("1000").Equal(report.TotalDebit))
	s.True(d("300").Equal(report.TotalCredit))
}

func (s *ReportingServiceTestSuite) TestTrialBalanceSkipsInactiveAccountsWithoutHistory() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("a1", "1001", domain.GroupAssets, "Cash-in-Hand", domain.ZeroBalance(), false),
		account("a2", "4001", domain.GroupIncome, "Sales Account", domain.ZeroBalance(), false),
	}
	totals := map[string]domain.DebitCredit{
		"a2": {Debit: decimal.Zero, Credit: d("300")},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, mock.Anything).Return(accounts, nil).Once()
	s.mockReportingRepo.On("AccountTotalsAsOf", ctx, mock.Anything).Return(totals, nil).Once()

	report, err := s.service.TrialBalance(ctx, time.Now())
	s.Require().NoError(err)
	s.Require().Len(report.Rows, 1)
	s.Equal("a2", report.Rows[0].AccountID)
}

func (s *ReportingServiceTestSuite) TestProfitAndLossZeroIncome() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("a1", "5001", domain.GroupExpenses, "Salary & Wages", domain.ZeroBalance(), true),
	}
	movements := map[string]domain.DebitCredit{
		"a1": {Debit: d("400"), Credit: decimal.Zero},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, mock.Anything).Return(accounts, nil).Once()
	s.mockReportingRepo.On("AccountMovements", ctx, mock.Anything, mock.Anything).Return(movements, nil).Once()

	report, err := s.service.ProfitAndLoss(ctx,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(report.TotalIncome.IsZero())
	s.True(d("-400").Equal(report.NetResult))
	s.False(report.IsProfit)
	// No income means no meaningful percentage.
	s.True(report.ProfitPercentage.IsZero())
}

func (s *ReportingServiceTestSuite) TestProfitAndLossRefundsNetAgainstIncome() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("a1", "4001", domain.GroupIncome, "Sales Account", domain.ZeroBalance(), true),
	}
	// A debit on an income account (a refund) nets against the credits.
	movements := map[string]domain.DebitCredit{
		"a1": {Debit: d("100"), Credit: d("600")},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, mock.Anything).Return(accounts, nil).Once()
	s.mockReportingRepo.On("AccountMovements", ctx, mock.Anything, mock.Anything).Return(movements, nil).Once()

	report, err := s.service.ProfitAndLoss(ctx,
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(d("500").Equal(report.TotalIncome))
	s.True(d("500").Equal(report.IncomeByType["Sales Account"]))
	s.True(report.IsProfit)
	s.True(d("100").Equal(report.ProfitPercentage))
}

func (s *ReportingServiceTestSuite) TestProfitAndLossRejectsInvertedRange() {
	_, err := s.service.ProfitAndLoss(context.Background(),
		time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC), time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ReportingServiceTestSuite) TestBalanceSheetPlacesCumulativeResultWithCapital() {
	ctx := context.Background()
	accounts := []domain.Account{
		account("a1", "1001", domain.GroupAssets, "Cash-in-Hand",
			domain.NewBalance(d("1000"), domain.SideDebit), true),
		account("a2", "3001", domain.GroupCapital, "Capital Account",
			domain.NewBalance(d("1000"), domain.SideCredit), true),
		account("a3", "4001", domain.GroupIncome, "Sales Account", domain.ZeroBalance(), true),
		account("a4", "5001", domain.GroupExpenses, "Salary & Wages", domain.ZeroBalance(), true),
	}
	totals := map[string]domain.DebitCredit{
		"a1": {Debit: d("500"), Credit: d("200")},
		"a3": {Debit: decimal.Zero, Credit: d("500")},
		"a4": {Debit: d("200"), Credit: decimal.Zero},
	}
	s.mockAccountRepo.On("ListAccounts", ctx, mock.Anything).Return(accounts, nil).Once()
	s.mockReportingRepo.On("AccountTotalsAsOf", ctx, mock.Anything).Return(totals, nil).Once()

	report, err := s.service.BalanceSheet(ctx, time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC))
	s.Require().NoError(err)
	s.True(d("1300").Equal(report.TotalAssets))
	s.True(d("1000").Equal(report.Capital))
	s.True(d("300").Equal(report.ProfitLoss))
	s.True(d("1300").Equal(report.TotalLiabilitiesAndCapital))
	s.True(report.IsBalanced)
	s.True(report.Difference.IsZero())
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.LedgerService
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockVoucherRepo = new(MockVoucherRepository)
	s.service = services.NewLedgerService(s.mockAccountRepo, s.mockVoucherRepo)
}

func (s *LedgerServiceTestSuite) TestAccountLedgerRunningBalanceCrossesZero() {
	ctx := context.Background()
	cash := account("a1", "1001", domain.GroupAssets, "Cash-in-Hand",
		domain.NewBalance(d("100"), domain.SideDebit), true)
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	postings := []domain.AccountPosting{
		{Date: from, VoucherNumber: "PV-000001", Debit: decimal.Zero, Credit: d("300")},
		{Date: to, VoucherNumber: "RV-000001", Debit: d("50"), Credit: decimal.Zero},
	}
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(&cash, nil).Once()
	s.mockVoucherRepo.On("PostingSumsBefore", ctx, "a1", mock.Anything).Return(domain.DebitCredit{}, nil).Once()
	s.mockVoucherRepo.On("PostingsForAccount", ctx, "a1", mock.Anything, mock.Anything).Return(postings, nil).Once()

	ledger, err := s.service.AccountLedger(ctx, "a1", from, to)
	s.Require().NoError(err)
	s.Equal("100.00 Dr", ledger.OpeningBalance.String())
	s.Require().Len(ledger.Entries, 2)
	// A credit bigger than the running debit balance flips the side.
	s.Equal("200.00 Cr", ledger.Entries[0].RunningBalance.String())
	s.Equal("150.00 Cr", ledger.ClosingBalance.String())
	s.True(d("50").Equal(ledger.TotalDebit))
	s.True(d("300").Equal(ledger.TotalCredit))
}

func (s *LedgerServiceTestSuite) TestAccountLedgerFoldsEarlierPostingsIntoOpening() {
	ctx := context.Background()
	cash := account("a1", "1001", domain.GroupAssets, "Cash-in-Hand",
		domain.NewBalance(d("100"), domain.SideDebit), true)
	from := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(&cash, nil).Once()
	s.mockVoucherRepo.On("PostingSumsBefore", ctx, "a1", from).
		Return(domain.DebitCredit{Debit: d("700"), Credit: d("50")}, nil).Once()
	s.mockVoucherRepo.On("PostingsForAccount", ctx, "a1", mock.Anything, mock.Anything).
		Return([]domain.AccountPosting{}, nil).Once()

	ledger, err := s.service.AccountLedger(ctx, "a1", from, from.AddDate(0, 0, 15))
	s.Require().NoError(err)
	s.Equal("750.00 Dr", ledger.OpeningBalance.String())
	s.Empty(ledger.Entries)
	s.True(ledger.ClosingBalance.Equal(ledger.OpeningBalance))
}

func (s *LedgerServiceTestSuite) TestAccountLedgerRejectsInvertedRange() {
	from := time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC)
	_, err := s.service.AccountLedger(context.Background(), "a1", from, from.AddDate(0, 0, -10))
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
