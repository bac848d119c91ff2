package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountPosting is one account's view of one voucher line as read back from
// the store, carrying just enough voucher context to render a ledger row.
type AccountPosting struct {
	Date          time.Time
	VoucherID     string
	VoucherNumber string
	VoucherType   VoucherType
	Narration     string
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// LedgerEntry is a derived ledger row: an account posting plus the running
// balance after applying it. Never persisted, always recomputed.
type LedgerEntry struct {
	Date           time.Time       `json:"date"`
	VoucherID      string          `json:"voucherID"`
	VoucherNumber  string          `json:"voucherNumber"`
	VoucherType    VoucherType     `json:"voucherType"`
	Particulars    string          `json:"particulars"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance Balance         `json:"runningBalance"`
}

// AccountLedger is the chronological entry list for one account over a date
// range, bracketed by the opening and closing balances.
type AccountLedger struct {
	AccountID      string        `json:"accountID"`
	Code           string        `json:"code"`
	Name           string        `json:"name"`
	From           time.Time     `json:"from"`
	To             time.Time     `json:"to"`
	OpeningBalance Balance       `json:"openingBalance"`
	Entries        []LedgerEntry `json:"entries"`
	TotalDebit     decimal.Decimal
	TotalCredit    decimal.Decimal
	ClosingBalance Balance `json:"closingBalance"`
}

// DebitCredit is a pair of posted column sums for one account.
type DebitCredit struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Add accumulates another pair into this one.
func (dc DebitCredit) Add(other DebitCredit) DebitCredit {
	return DebitCredit{
		Debit:  dc.Debit.Add(other.Debit),
		Credit: dc.Credit.Add(other.Credit),
	}
}
