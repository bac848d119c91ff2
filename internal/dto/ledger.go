package dto

import (
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEntryResponse is one row of an account statement.
type LedgerEntryResponse struct {
	Date           string          `json:"date"`
	VoucherID      string          `json:"voucherID"`
	VoucherNumber  string          `json:"voucherNumber"`
	VoucherType    string          `json:"voucherType"`
	Particulars    string          `json:"particulars,omitempty"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance BalanceResponse `json:"runningBalance"`
}

// AccountLedgerResponse is a full account statement over a date range.
type AccountLedgerResponse struct {
	AccountID      string                `json:"accountID"`
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	From           string                `json:"from"`
	To             string                `json:"to"`
	OpeningBalance BalanceResponse       `json:"openingBalance"`
	Entries        []LedgerEntryResponse `json:"entries"`
	TotalDebit     decimal.Decimal       `json:"totalDebit"`
	TotalCredit    decimal.Decimal       `json:"totalCredit"`
	ClosingBalance BalanceResponse       `json:"closingBalance"`
}

// ToAccountLedgerResponse converts a domain ledger to its response DTO.
func ToAccountLedgerResponse(l *domain.AccountLedger) AccountLedgerResponse {
	entries := make([]LedgerEntryResponse, len(l.Entries))
	for i, e := range l.Entries {
		entries[i] = LedgerEntryResponse{
			Date:           e.Date.Format(DateLayout),
			VoucherID:      e.VoucherID,
			VoucherNumber:  e.VoucherNumber,
			VoucherType:    string(e.VoucherType),
			Particulars:    e.Particulars,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: ToBalanceResponse(e.RunningBalance),
		}
	}
	return AccountLedgerResponse{
		AccountID:      l.AccountID,
		Code:           l.Code,
		Name:           l.Name,
		From:           l.From.Format(DateLayout),
		To:             l.To.Format(DateLayout),
		OpeningBalance: ToBalanceResponse(l.OpeningBalance),
		Entries:        entries,
		TotalDebit:     l.TotalDebit,
		TotalCredit:    l.TotalCredit,
		ClosingBalance: ToBalanceResponse(l.ClosingBalance),
	}
}
