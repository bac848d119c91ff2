package dto

import (
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for voucher and report dates.
const DateLayout = "2006-01-02"

// VoucherLineRequest is one proposed debit or credit against an account.
// Exactly one of debit/credit must be non-zero; the service enforces this so
// the same error taxonomy applies to speculative validation calls.
type VoucherLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration"`
}

// CreateVoucherRequest is the payload for posting (or validating) a voucher.
type CreateVoucherRequest struct {
	VoucherType     string               `json:"voucherType" binding:"required,oneof=PAYMENT RECEIPT JOURNAL CONTRA"`
	Date            string               `json:"date" binding:"required,datetime=2006-01-02"`
	Lines           []VoucherLineRequest `json:"lines" binding:"required"`
	ReferenceNumber string               `json:"referenceNumber"`
	ChequeNumber    string               `json:"chequeNumber"`
	ChequeDate      *string              `json:"chequeDate" binding:"omitempty,datetime=2006-01-02"`
	Narration       string               `json:"narration"`
	CreatedBy       string               `json:"createdBy" binding:"required"`
}

// VoucherLineResponse is the transport representation of a voucher line.
type VoucherLineResponse struct {
	LineID    string          `json:"lineID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration,omitempty"`
}

// VoucherResponse is the transport representation of a posted voucher.
type VoucherResponse struct {
	VoucherID          string                `json:"voucherID"`
	VoucherNumber      string                `json:"voucherNumber"`
	VoucherType        string                `json:"voucherType"`
	Date               string                `json:"date"`
	ReferenceNumber    string                `json:"referenceNumber,omitempty"`
	ChequeNumber       string                `json:"chequeNumber,omitempty"`
	ChequeDate         *string               `json:"chequeDate,omitempty"`
	Narration          string                `json:"narration,omitempty"`
	Status             string                `json:"status"`
	OriginalVoucherID  *string               `json:"originalVoucherID,omitempty"`
	ReversingVoucherID *string               `json:"reversingVoucherID,omitempty"`
	TotalDebit         decimal.Decimal       `json:"totalDebit"`
	TotalCredit        decimal.Decimal       `json:"totalCredit"`
	Lines              []VoucherLineResponse `json:"lines,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
}

// ValidateVoucherResponse reports the outcome of a speculative validation.
type ValidateVoucherResponse struct {
	Valid       bool             `json:"valid"`
	Error       string           `json:"error,omitempty"`
	TotalDebit  *decimal.Decimal `json:"totalDebit,omitempty"`
	TotalCredit *decimal.Decimal `json:"totalCredit,omitempty"`
	Difference  *decimal.Decimal `json:"difference,omitempty"`
}

// ListVouchersParams narrows and pages a voucher listing.
type ListVouchersParams struct {
	VoucherType *string
	Limit       int
	NextToken   *string
}

// ListVouchersResponse is a page of vouchers plus the cursor for the next one.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToVoucherResponse converts a domain voucher to its response DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:          v.VoucherID,
		VoucherNumber:      v.VoucherNumber,
		VoucherType:        string(v.VoucherType),
		Date:               v.Date.Format(DateLayout),
		ReferenceNumber:    v.ReferenceNumber,
		ChequeNumber:       v.ChequeNumber,
		Narration:          v.Narration,
		Status:             string(v.Status),
		OriginalVoucherID:  v.OriginalVoucherID,
		ReversingVoucherID: v.ReversingVoucherID,
		TotalDebit:         v.TotalDebit(),
		TotalCredit:        v.TotalCredit(),
		CreatedAt:          v.CreatedAt,
		CreatedBy:          v.CreatedBy,
	}
	if v.ChequeDate != nil {
		formatted := v.ChequeDate.Format(DateLayout)
		resp.ChequeDate = &formatted
	}
	if len(v.Lines) > 0 {
		resp.Lines = make([]VoucherLineResponse, len(v.Lines))
		for i, l := range v.Lines {
			resp.Lines[i] = VoucherLineResponse{
				LineID:    l.LineID,
				AccountID: l.AccountID,
				Debit:     l.Debit,
				Credit:    l.Credit,
				Narration: l.Narration,
			}
		}
	}
	return resp
}

// ToVoucherResponses converts a slice of domain vouchers.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	out := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		out[i] = ToVoucherResponse(&vouchers[i])
	}
	return out
}
