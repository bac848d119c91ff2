package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow places one account's as-of balance in the debit or credit
// column according to its computed side.
type TrialBalanceRow struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Group     AccountGroup    `json:"group"`
	Type      string          `json:"type"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceReport lists every account's balance as of a date and verifies
// that the debit and credit columns agree. An out-of-balance book is reported,
// never corrected.
type TrialBalanceReport struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	IsBalanced  bool              `json:"isBalanced"`
	Difference  decimal.Decimal   `json:"difference"` // signed: debit minus credit
}

// PAndLReport aggregates income and expense movements within a date range.
// Movements, not balances: only postings dated inside the window count.
type PAndLReport struct {
	From             time.Time                  `json:"from"`
	To               time.Time                  `json:"to"`
	IncomeByType     map[string]decimal.Decimal `json:"incomeByType"`
	ExpenseByType    map[string]decimal.Decimal `json:"expenseByType"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`
	NetResult        decimal.Decimal            `json:"netResult"`
	IsProfit         bool                       `json:"isProfit"`
	ProfitPercentage decimal.Decimal            `json:"profitPercentage"`
}

// BalanceSheetReport states the accounting equation as of a cutoff:
// Assets == Liabilities + Capital + cumulative P&L since inception.
type BalanceSheetReport struct {
	AsOf                       time.Time                  `json:"asOf"`
	AssetsByType               map[string]decimal.Decimal `json:"assetsByType"`
	LiabilitiesByType          map[string]decimal.Decimal `json:"liabilitiesByType"`
	Capital                    decimal.Decimal            `json:"capital"`
	ProfitLoss                 decimal.Decimal            `json:"profitLoss"` // cumulative through AsOf
	TotalAssets                decimal.Decimal            `json:"totalAssets"`
	TotalLiabilitiesAndCapital decimal.Decimal            `json:"totalLiabilitiesAndCapital"`
	IsBalanced                 bool                       `json:"isBalanced"`
	Difference                 decimal.Decimal            `json:"difference"` // signed: assets minus the other side
}
