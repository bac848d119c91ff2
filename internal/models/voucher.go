package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Voucher represents a posted voucher row. Lines live in voucher_lines; the
// per-type number sequence lives in voucher_sequences.
type Voucher struct {
	VoucherID          string     `db:"voucher_id"`
	VoucherNumber      string     `db:"voucher_number"`
	Sequence           int64      `db:"sequence"`
	VoucherType        string     `db:"voucher_type"`
	VoucherDate        time.Time  `db:"voucher_date"`
	ReferenceNumber    string     `db:"reference_number"`
	ChequeNumber       string     `db:"cheque_number"`
	ChequeDate         *time.Time `db:"cheque_date"`
	Narration          string     `db:"narration"`
	Status             string     `db:"status"`
	OriginalVoucherID  *string    `db:"original_voucher_id"`
	ReversingVoucherID *string    `db:"reversing_voucher_id"`
	AuditFields
}

// VoucherLine represents one debit or credit row of a voucher. line_no keeps
// the entry order the bookkeeper wrote.
type VoucherLine struct {
	LineID    string          `db:"line_id"`
	LineNo    int             `db:"line_no"`
	VoucherID string          `db:"voucher_id"`
	AccountID string          `db:"account_id"`
	Debit     decimal.Decimal `db:"debit"`
	Credit    decimal.Decimal `db:"credit"`
	Narration string          `db:"narration"`
}
