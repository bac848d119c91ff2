package models

import (
	"github.com/shopspring/decimal"
)

// Account represents a chart-of-accounts row. Balances persist as a
// non-negative amount plus a side column; the version column backs optimistic
// concurrency on the posting path.
type Account struct {
	AccountID      string          `db:"account_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	AccountGroup   string          `db:"account_group"`
	AccountType    string          `db:"account_type"`
	Description    string          `db:"description"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	OpeningSide    string          `db:"opening_side"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	CurrentSide    string          `db:"current_side"`
	IsActive       bool            `db:"is_active"`
	Version        int64           `db:"version"`
	AuditFields
}
