package dto

import (
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse is one account row of the trial balance.
type TrialBalanceRowResponse struct {
	AccountID string          `json:"accountID"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Group     string          `json:"group"`
	Type      string          `json:"type"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse lists every account with a balance as of a date.
// IsBalanced and Difference report the books' integrity as data; an
// out-of-balance trial balance is rendered, not rejected.
type TrialBalanceResponse struct {
	AsOf        string                    `json:"asOf"`
	Rows        []TrialBalanceRowResponse `json:"rows"`
	TotalDebit  decimal.Decimal           `json:"totalDebit"`
	TotalCredit decimal.Decimal           `json:"totalCredit"`
	IsBalanced  bool                      `json:"isBalanced"`
	Difference  decimal.Decimal           `json:"difference"`
}

// ProfitAndLossResponse summarizes income and expense movements over a period.
type ProfitAndLossResponse struct {
	From             string                     `json:"from"`
	To               string                     `json:"to"`
	IncomeByType     map[string]decimal.Decimal `json:"incomeByType"`
	ExpenseByType    map[string]decimal.Decimal `json:"expenseByType"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`
	NetResult        decimal.Decimal            `json:"netResult"`
	IsProfit         bool                       `json:"isProfit"`
	ProfitPercentage decimal.Decimal            `json:"profitPercentage"`
}

// BalanceSheetResponse states financial position as of a date. ProfitLoss is
// the cumulative net result since inception, folded into the liabilities side.
type BalanceSheetResponse struct {
	AsOf                       string                     `json:"asOf"`
	AssetsByType               map[string]decimal.Decimal `json:"assetsByType"`
	LiabilitiesByType          map[string]decimal.Decimal `json:"liabilitiesByType"`
	Capital                    decimal.Decimal            `json:"capital"`
	ProfitLoss                 decimal.Decimal            `json:"profitLoss"`
	ProfitLossBasis            string                     `json:"profitLossBasis"`
	TotalAssets                decimal.Decimal            `json:"totalAssets"`
	TotalLiabilitiesAndCapital decimal.Decimal            `json:"totalLiabilitiesAndCapital"`
	IsBalanced                 bool                       `json:"isBalanced"`
	Difference                 decimal.Decimal            `json:"difference"`
}

// ToTrialBalanceResponse converts a domain trial balance report.
func ToTrialBalanceResponse(r *domain.TrialBalanceReport) TrialBalanceResponse {
	rows := make([]TrialBalanceRowResponse, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = TrialBalanceRowResponse{
			AccountID: row.AccountID,
			Code:      row.Code,
			Name:      row.Name,
			Group:     string(row.Group),
			Type:      row.Type,
			Debit:     row.Debit,
			Credit:    row.Credit,
		}
	}
	return TrialBalanceResponse{
		AsOf:        r.AsOf.Format(DateLayout),
		Rows:        rows,
		TotalDebit:  r.TotalDebit,
		TotalCredit: r.TotalCredit,
		IsBalanced:  r.IsBalanced,
		Difference:  r.Difference,
	}
}

// ToProfitAndLossResponse converts a domain P&L report.
func ToProfitAndLossResponse(r *domain.PAndLReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		From:             r.From.Format(DateLayout),
		To:               r.To.Format(DateLayout),
		IncomeByType:     r.IncomeByType,
		ExpenseByType:    r.ExpenseByType,
		TotalIncome:      r.TotalIncome,
		TotalExpenses:    r.TotalExpenses,
		NetResult:        r.NetResult,
		IsProfit:         r.IsProfit,
		ProfitPercentage: r.ProfitPercentage,
	}
}

// ToBalanceSheetResponse converts a domain balance sheet report.
func ToBalanceSheetResponse(r *domain.BalanceSheetReport) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                       r.AsOf.Format(DateLayout),
		AssetsByType:               r.AssetsByType,
		LiabilitiesByType:          r.LiabilitiesByType,
		Capital:                    r.Capital,
		ProfitLoss:                 r.ProfitLoss,
		ProfitLossBasis:            "cumulative",
		TotalAssets:                r.TotalAssets,
		TotalLiabilitiesAndCapital: r.TotalLiabilitiesAndCapital,
		IsBalanced:                 r.IsBalanced,
		Difference:                 r.Difference,
	}
}
