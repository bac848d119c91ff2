package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/core/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountService
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockAccountRepo = new(MockAccountRepository)
	s.service = services.NewAccountService(s.mockAccountRepo)
}

func (s *AccountServiceTestSuite) TestCreateAccountSuccess() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:           "1001",
		Name:           "HDFC Current Account",
		Group:          "ASSETS",
		Type:           "Bank Account",
		OpeningBalance: decimal.NewFromInt(25000),
		CreatedBy:      "user-1",
	}
	s.mockAccountRepo.On("FindAccountByCode", ctx, "1001").Return(nil, apperrors.ErrNotFound).Once()
	s.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := s.service.CreateAccount(ctx, req)
	s.Require().NoError(err)
	s.NotEmpty(account.AccountID)
	s.Equal(domain.GroupAssets, account.Group)
	s.True(account.IsActive)
	s.EqualValues(1, account.Version)
	// Opening balance lands on the group's natural side and seeds the current balance.
	s.Equal("25000.00 Dr", account.OpeningBalance.String())
	s.True(account.CurrentBalance.Equal(account.OpeningBalance))
	s.Equal("user-1", account.CreatedBy)
}

func (s *AccountServiceTestSuite) TestCreateAccountExplicitSide() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Code:               "2001",
		Name:               "TDS Payable",
		Group:              "LIABILITIES",
		Type:               "Duties & Taxes",
		OpeningBalance:     decimal.NewFromInt(1200),
		OpeningBalanceSide: "Cr",
		CreatedBy:          "user-1",
	}
	s.mockAccountRepo.On("FindAccountByCode", ctx, "2001").Return(nil, apperrors.ErrNotFound).Once()
	s.mockAccountRepo.On("SaveAccount", ctx, mock.Anything).Return(nil).Once()

	account, err := s.service.CreateAccount(ctx, req)
	s.Require().NoError(err)
	s.Equal("1200.00 Cr", account.CurrentBalance.String())
}

func (s *AccountServiceTestSuite) TestCreateAccountDuplicateCode() {
	ctx := context.Background()
	existing := &domain.Account{AccountID: uuid.NewString(), Code: "1001", IsActive: false}
	s.mockAccountRepo.On("FindAccountByCode", ctx, "1001").Return(existing, nil).Once()

	_, err := s.service.CreateAccount(ctx, dto.CreateAccountRequest{
		Code: "1001", Name: "Cash", Group: "ASSETS", Type: "Cash-in-Hand", CreatedBy: "user-1",
	})
	// Inactive accounts still hold their code.
	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.mockAccountRepo.AssertNotCalled(s.T(), "SaveAccount")
}

func (s *AccountServiceTestSuite) TestCreateAccountUnknownGroup() {
	_, err := s.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code: "9999", Name: "Mystery", Group: "CONTINGENT", Type: "Bank Account", CreatedBy: "user-1",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccountTypeOutsideGroup() {
	_, err := s.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code: "5001", Name: "Salaries", Group: "ASSETS", Type: "Salary & Wages", CreatedBy: "user-1",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccountNegativeOpeningBalance() {
	_, err := s.service.CreateAccount(context.Background(), dto.CreateAccountRequest{
		Code: "1002", Name: "Cash", Group: "ASSETS", Type: "Cash-in-Hand",
		OpeningBalance: decimal.NewFromInt(-100), CreatedBy: "user-1",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestUpdateAccountGroupChangeBlockedByPostings() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: "a1", Code: "1001", Name: "Cash",
		Group: domain.GroupAssets, Type: "Cash-in-Hand", IsActive: true,
	}
	newGroup := "EXPENSES"
	newType := "Direct Expenses"
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()
	s.mockAccountRepo.On("HasPostings", ctx, "a1").Return(true, nil).Once()

	_, err := s.service.UpdateAccount(ctx, "a1", dto.UpdateAccountRequest{
		Group: &newGroup, Type: &newType, UpdatedBy: "user-2",
	})
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockAccountRepo.AssertNotCalled(s.T(), "UpdateAccount")
}

func (s *AccountServiceTestSuite) TestUpdateAccountTypeWithinGroup() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: "a1", Code: "1001", Name: "Cash",
		Group: domain.GroupAssets, Type: "Cash-in-Hand", IsActive: true,
	}
	newType := "Bank Account"
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()
	s.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	updated, err := s.service.UpdateAccount(ctx, "a1", dto.UpdateAccountRequest{
		Type: &newType, UpdatedBy: "user-2",
	})
	s.Require().NoError(err)
	s.Equal("Bank Account", updated.Type)
	s.Equal("user-2", updated.LastUpdatedBy)
}

func (s *AccountServiceTestSuite) TestUpdateAccountTypeOutsideGroupRejected() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: "a1", Code: "1001", Name: "Cash",
		Group: domain.GroupAssets, Type: "Cash-in-Hand", IsActive: true,
	}
	newType := "Sales Account"
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	_, err := s.service.UpdateAccount(ctx, "a1", dto.UpdateAccountRequest{
		Type: &newType, UpdatedBy: "user-2",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestDeactivateAccountAlreadyInactive() {
	ctx := context.Background()
	account := &domain.Account{AccountID: "a1", IsActive: false}
	s.mockAccountRepo.On("FindAccountByID", ctx, "a1").Return(account, nil).Once()

	err := s.service.DeactivateAccount(ctx, "a1", "user-2")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockAccountRepo.AssertNotCalled(s.T(), "DeactivateAccount")
}

func (s *AccountServiceTestSuite) TestDeactivateAccountUnknown() {
	ctx := context.Background()
	s.mockAccountRepo.On("FindAccountByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeactivateAccount(ctx, "missing", "user-2")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
