package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherType classifies a voucher. Each type carries its own independent
// number sequence.
type VoucherType string

const (
	VoucherPayment VoucherType = "PAYMENT"
	VoucherReceipt VoucherType = "RECEIPT"
	VoucherJournal VoucherType = "JOURNAL"
	VoucherContra  VoucherType = "CONTRA"
)

// Valid reports whether t is a known voucher type.
func (t VoucherType) Valid() bool {
	switch t {
	case VoucherPayment, VoucherReceipt, VoucherJournal, VoucherContra:
		return true
	}
	return false
}

// Prefix returns the short code used in voucher numbers (e.g. "PV" in
// PV-000124).
func (t VoucherType) Prefix() string {
	switch t {
	case VoucherPayment:
		return "PV"
	case VoucherReceipt:
		return "RV"
	case VoucherContra:
		return "CV"
	default:
		return "JV"
	}
}

// FormatVoucherNumber renders a per-type sequence value as the human voucher
// number, e.g. (PAYMENT, 124) -> "PV-000124".
func FormatVoucherNumber(t VoucherType, sequence int64) string {
	return fmt.Sprintf("%s-%06d", t.Prefix(), sequence)
}

// VoucherStatus indicates the state of a voucher.
type VoucherStatus string

const (
	Posted   VoucherStatus = "POSTED"
	Reversed VoucherStatus = "REVERSED"
)

// Voucher is an immutable record of one balanced transaction. Corrections are
// new reversing vouchers, never edits; only the status and reversal link of the
// original change when it is reversed.
type Voucher struct {
	VoucherID       string      `json:"voucherID"`
	VoucherNumber   string      `json:"voucherNumber"` // e.g. "PV-000124"
	Sequence        int64       `json:"sequence"`      // per-type counter backing the number
	VoucherType     VoucherType `json:"voucherType"`
	Date            time.Time   `json:"date"`
	ReferenceNumber string      `json:"referenceNumber,omitempty"`
	ChequeNumber    string      `json:"chequeNumber,omitempty"`
	ChequeDate      *time.Time  `json:"chequeDate,omitempty"`
	Narration       string      `json:"narration,omitempty"`
	Status          VoucherStatus
	// OriginalVoucherID links a reversing voucher back to the voucher it
	// reverses; ReversingVoucherID is the forward link on the original.
	OriginalVoucherID  *string       `json:"originalVoucherID,omitempty"`
	ReversingVoucherID *string       `json:"reversingVoucherID,omitempty"`
	Lines              []VoucherLine `json:"lines,omitempty"`
	AuditFields
}

// VoucherLine is one account's share of a voucher. Exactly one of Debit and
// Credit is non-zero.
type VoucherLine struct {
	LineID    string          `json:"lineID"`
	VoucherID string          `json:"voucherID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Narration string          `json:"narration,omitempty"`
}

// Side returns the side this line posts on.
func (l VoucherLine) Side() Side {
	if l.Credit.IsPositive() {
		return SideCredit
	}
	return SideDebit
}

// Amount returns the magnitude of the line regardless of side.
func (l VoucherLine) Amount() decimal.Decimal {
	if l.Credit.IsPositive() {
		return l.Credit
	}
	return l.Debit
}

// TotalDebit sums the debit column over the voucher's lines.
func (v Voucher) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range v.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit column over the voucher's lines.
func (v Voucher) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range v.Lines {
		total = total.Add(l.Credit)
	}
	return total
}
