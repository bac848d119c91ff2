package mapping

import (
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	opening := domain.BalanceFromSigned(d.OpeningBalance.Signed())
	current := domain.BalanceFromSigned(d.CurrentBalance.Signed())
	return models.Account{
		AccountID:      d.AccountID,
		Code:           d.Code,
		Name:           d.Name,
		AccountGroup:   string(d.Group),
		AccountType:    d.Type,
		Description:    d.Description,
		OpeningBalance: opening.Amount,
		OpeningSide:    string(opening.Side),
		CurrentBalance: current.Amount,
		CurrentSide:    string(current.Side),
		IsActive:       d.IsActive,
		Version:        d.Version,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		Code:           m.Code,
		Name:           m.Name,
		Group:          domain.AccountGroup(m.AccountGroup),
		Type:           m.AccountType,
		Description:    m.Description,
		OpeningBalance: domain.NewBalance(m.OpeningBalance, domain.Side(m.OpeningSide)),
		CurrentBalance: domain.NewBalance(m.CurrentBalance, domain.Side(m.CurrentSide)),
		IsActive:       m.IsActive,
		Version:        m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
