package services

import (
	"context"
	"time"

	"github.com/paybooks/payroll_ledger/internal/core/domain"
)

// ReportingService derives the three canonical statements from the ledger.
// Reports are views: recomputed per call, never cached, never auto-corrected.
type ReportingService interface {
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
}
