package domain

// AccountGroup is the broad classification of an account in the chart of
// accounts. The group decides the account's natural side: Assets and Expenses
// are naturally Dr, the rest naturally Cr.
type AccountGroup string

const (
	GroupAssets      AccountGroup = "ASSETS"
	GroupLiabilities AccountGroup = "LIABILITIES"
	GroupIncome      AccountGroup = "INCOME"
	GroupExpenses    AccountGroup = "EXPENSES"
	GroupCapital     AccountGroup = "CAPITAL"
)

// AccountGroups lists every valid group in display order.
func AccountGroups() []AccountGroup {
	return []AccountGroup{GroupAssets, GroupLiabilities, GroupIncome, GroupExpenses, GroupCapital}
}

// Valid reports whether g is a known account group.
func (g AccountGroup) Valid() bool {
	switch g {
	case GroupAssets, GroupLiabilities, GroupIncome, GroupExpenses, GroupCapital:
		return true
	}
	return false
}

// NaturalSide returns the side on which accounts of this group normally carry
// their balance. It governs how statements interpret a balance, not how
// postings are applied.
func (g AccountGroup) NaturalSide() Side {
	switch g {
	case GroupAssets, GroupExpenses:
		return SideDebit
	default:
		return SideCredit
	}
}

// Account is a named ledger bucket in the chart of accounts.
type Account struct {
	AccountID      string       `json:"accountID"`
	Code           string       `json:"code"` // unique, immutable once postings exist
	Name           string       `json:"name"`
	Group          AccountGroup `json:"group"`
	Type           string       `json:"type"` // group-scoped sub-classification
	Description    string       `json:"description"`
	OpeningBalance Balance      `json:"openingBalance"`
	CurrentBalance Balance      `json:"currentBalance"` // derived, recomputed on every posting
	IsActive       bool         `json:"isActive"`       // soft delete flag
	Version        int64        `json:"-"`              // optimistic concurrency stamp
	AuditFields
}

// AccountFilter narrows ListAccounts results.
type AccountFilter struct {
	Group      *AccountGroup
	ActiveOnly bool
	Query      string // case-insensitive substring match on code or name
}
