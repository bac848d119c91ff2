package dto

import (
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating a chart-of-accounts entry.
type CreateAccountRequest struct {
	Code               string          `json:"code" binding:"required"`
	Name               string          `json:"name" binding:"required"`
	Group              string          `json:"group" binding:"required"`
	Type               string          `json:"type" binding:"required"`
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	OpeningBalanceSide string          `json:"openingBalanceSide" binding:"omitempty,oneof=Dr Cr"`
	Description        string          `json:"description"`
	CreatedBy          string          `json:"createdBy" binding:"required"`
}

// UpdateAccountRequest patches descriptive fields. Balances are never
// patchable; they belong to the posting engine.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Group       *string `json:"group"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
	UpdatedBy   string  `json:"updatedBy" binding:"required"`
}

// BalanceResponse renders a balance as magnitude plus side.
type BalanceResponse struct {
	Amount decimal.Decimal `json:"amount"`
	Side   string          `json:"side"`
}

// AccountResponse is the transport representation of an account.
type AccountResponse struct {
	AccountID      string          `json:"accountID"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Group          string          `json:"group"`
	Type           string          `json:"type"`
	Description    string          `json:"description,omitempty"`
	OpeningBalance BalanceResponse `json:"openingBalance"`
	CurrentBalance BalanceResponse `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToBalanceResponse converts a domain balance for transport.
func ToBalanceResponse(b domain.Balance) BalanceResponse {
	normalized := domain.BalanceFromSigned(b.Signed())
	return BalanceResponse{Amount: normalized.Amount, Side: string(normalized.Side)}
}

// ToAccountResponse converts a domain account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:      a.AccountID,
		Code:           a.Code,
		Name:           a.Name,
		Group:          string(a.Group),
		Type:           a.Type,
		Description:    a.Description,
		OpeningBalance: ToBalanceResponse(a.OpeningBalance),
		CurrentBalance: ToBalanceResponse(a.CurrentBalance),
		IsActive:       a.IsActive,
		CreatedAt:      a.CreatedAt,
		CreatedBy:      a.CreatedBy,
		LastUpdatedAt:  a.LastUpdatedAt,
		LastUpdatedBy:  a.LastUpdatedBy,
	}
}

// ToAccountResponses converts a slice of domain accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}
