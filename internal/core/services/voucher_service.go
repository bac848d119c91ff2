package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	portssvc "github.com/paybooks/payroll_ledger/internal/core/ports/services"
	"github.com/paybooks/payroll_ledger/internal/dto"
	"github.com/paybooks/payroll_ledger/internal/metrics"
	"github.com/shopspring/decimal"
)

// maxPostAttempts bounds the optimistic-lock retry loop on the posting path.
const maxPostAttempts = 3

const (
	defaultVoucherPageSize = 20
	maxVoucherPageSize     = 100
)

// Voucher validation sentinels. All unwrap to an apperrors category so the
// HTTP layer maps them without knowing the taxonomy.
var (
	ErrInsufficientLines = fmt.Errorf("%w: a voucher needs at least two lines", apperrors.ErrValidation)
	ErrUnknownAccount    = fmt.Errorf("%w: voucher references an unknown account", apperrors.ErrNotFound)
	ErrInactiveAccount   = fmt.Errorf("%w: voucher references an inactive account", apperrors.ErrValidation)
)

// UnbalancedError reports a voucher whose debit and credit columns disagree.
// It carries both totals so callers can show the bookkeeper the exact gap.
type UnbalancedError struct {
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("voucher is not balanced: debit %s, credit %s, difference %s",
		e.TotalDebit.StringFixed(2), e.TotalCredit.StringFixed(2), e.Difference().StringFixed(2))
}

func (e *UnbalancedError) Unwrap() error {
	return apperrors.ErrValidation
}

// Difference returns the signed gap, debit minus credit.
func (e *UnbalancedError) Difference() decimal.Decimal {
	return e.TotalDebit.Sub(e.TotalCredit)
}

type voucherService struct {
	BaseService
	accountRepo repositories.AccountRepository
	voucherRepo repositories.VoucherRepository
}

// NewVoucherService builds the voucher validation and posting service.
func NewVoucherService(accountRepo repositories.AccountRepository, voucherRepo repositories.VoucherRepository) portssvc.VoucherService {
	return &voucherService{accountRepo: accountRepo, voucherRepo: voucherRepo}
}

// Validate runs the full voucher check without committing anything.
func (s *voucherService) Validate(ctx context.Context, req dto.CreateVoucherRequest) error {
	_, _, err := s.prepare(ctx, req)
	return err
}

// PostVoucher validates the voucher and commits it together with the new
// account balances. A concurrent posting that bumps an account version between
// our read and write fails the transaction; we re-read and retry a bounded
// number of times before giving up with ErrConcurrentModification.
func (s *voucherService) PostVoucher(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, error) {
	var lastErr error
	for attempt := 1; attempt <= maxPostAttempts; attempt++ {
		voucher, accounts, err := s.prepare(ctx, req)
		if err != nil {
			return nil, err
		}

		saved, err := s.voucherRepo.SaveVoucher(ctx, *voucher, applyLines(voucher.Lines, accounts, req.CreatedBy, voucher.CreatedAt))
		if err == nil {
			metrics.VouchersPosted.WithLabelValues(string(saved.VoucherType)).Inc()
			s.LogInfo(ctx, "voucher posted", "voucherID", saved.VoucherID, "voucherNumber", saved.VoucherNumber)
			return saved, nil
		}
		if !errors.Is(err, apperrors.ErrConcurrentModification) {
			s.LogError(ctx, "failed to post voucher", err, "voucherType", req.VoucherType)
			return nil, err
		}
		metrics.PostingConflicts.Inc()
		s.LogWarn(ctx, "posting conflict, retrying with fresh balances", "attempt", attempt)
		lastErr = err
	}
	return nil, fmt.Errorf("posting failed after %d attempts: %w", maxPostAttempts, lastErr)
}

// ReverseVoucher posts a mirror-image voucher and marks the original REVERSED.
// The original's lines are never touched; the two vouchers cancel in every
// report that includes both.
func (s *voucherService) ReverseVoucher(ctx context.Context, voucherID string, userID string) (*domain.Voucher, error) {
	original, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if original.OriginalVoucherID != nil {
		return nil, fmt.Errorf("%w: voucher %s is itself a reversal", apperrors.ErrConflict, original.VoucherNumber)
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: voucher %s is already reversed", apperrors.ErrConflict, original.VoucherNumber)
	}

	now := time.Now().UTC()
	reversal := domain.Voucher{
		VoucherID:         uuid.NewString(),
		VoucherType:       original.VoucherType,
		Date:              original.Date,
		ReferenceNumber:   original.VoucherNumber,
		Narration:         fmt.Sprintf("Reversal of %s", original.VoucherNumber),
		Status:            domain.Posted,
		OriginalVoucherID: &original.VoucherID,
		Lines:             make([]domain.VoucherLine, len(original.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	accountIDs := make([]string, 0, len(original.Lines))
	for i, l := range original.Lines {
		reversal.Lines[i] = domain.VoucherLine{
			LineID:    uuid.NewString(),
			VoucherID: reversal.VoucherID,
			AccountID: l.AccountID,
			Debit:     l.Credit,
			Credit:    l.Debit,
			Narration: l.Narration,
		}
		accountIDs = append(accountIDs, l.AccountID)
	}

	var saved *domain.Voucher
	var lastErr error
	for attempt := 1; attempt <= maxPostAttempts; attempt++ {
		// Inactive accounts are fine here: a reversal is a correction of the
		// books, not a new business event.
		accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range accountIDs {
			if _, ok := accounts[id]; !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, id)
			}
		}

		saved, err = s.voucherRepo.SaveVoucher(ctx, reversal, applyLines(reversal.Lines, accounts, userID, now))
		if err == nil {
			break
		}
		if !errors.Is(err, apperrors.ErrConcurrentModification) {
			s.LogError(ctx, "failed to post reversal", err, "originalVoucherID", voucherID)
			return nil, err
		}
		metrics.PostingConflicts.Inc()
		s.LogWarn(ctx, "reversal conflict, retrying with fresh balances", "attempt", attempt)
		saved = nil
		lastErr = err
	}
	if saved == nil {
		return nil, fmt.Errorf("reversal failed after %d attempts: %w", maxPostAttempts, lastErr)
	}

	if err := s.voucherRepo.MarkVoucherReversed(ctx, original.VoucherID, saved.VoucherID, userID, now); err != nil {
		s.LogError(ctx, "reversal posted but original not marked", err,
			"originalVoucherID", original.VoucherID, "reversingVoucherID", saved.VoucherID)
		return nil, err
	}
	metrics.VouchersPosted.WithLabelValues(string(saved.VoucherType)).Inc()
	s.LogInfo(ctx, "voucher reversed", "originalVoucherID", original.VoucherID, "reversingVoucherID", saved.VoucherID)
	return saved, nil
}

func (s *voucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	return s.voucherRepo.FindVoucherByID(ctx, voucherID)
}

func (s *voucherService) ListVouchers(ctx context.Context, params dto.ListVouchersParams) (*dto.ListVouchersResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultVoucherPageSize
	}
	if limit > maxVoucherPageSize {
		limit = maxVoucherPageSize
	}
	var voucherType *domain.VoucherType
	if params.VoucherType != nil {
		vt := domain.VoucherType(*params.VoucherType)
		if !vt.Valid() {
			return nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, *params.VoucherType)
		}
		voucherType = &vt
	}

	vouchers, nextToken, err := s.voucherRepo.ListVouchers(ctx, voucherType, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListVouchersResponse{
		Vouchers:  dto.ToVoucherResponses(vouchers),
		NextToken: nextToken,
	}, nil
}

// prepare parses the request, loads the referenced accounts and runs the
// validation chain. On success it returns the voucher ready for persistence and
// the accounts at their current versions.
func (s *voucherService) prepare(ctx context.Context, req dto.CreateVoucherRequest) (*domain.Voucher, map[string]domain.Account, error) {
	voucherType := domain.VoucherType(req.VoucherType)
	if !voucherType.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown voucher type %q", apperrors.ErrValidation, req.VoucherType)
	}
	date, err := time.ParseInLocation(dto.DateLayout, req.Date, time.UTC)
	if err != nil || date.IsZero() {
		return nil, nil, fmt.Errorf("%w: voucher date must be a valid %s date", apperrors.ErrValidation, dto.DateLayout)
	}
	var chequeDate *time.Time
	if req.ChequeDate != nil {
		parsed, err := time.ParseInLocation(dto.DateLayout, *req.ChequeDate, time.UTC)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: cheque date must be a valid %s date", apperrors.ErrValidation, dto.DateLayout)
		}
		chequeDate = &parsed
	}

	accountIDs := make([]string, 0, len(req.Lines))
	seen := make(map[string]struct{}, len(req.Lines))
	for _, line := range req.Lines {
		if _, ok := seen[line.AccountID]; ok {
			continue
		}
		seen[line.AccountID] = struct{}{}
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, "failed to load voucher accounts", err)
		return nil, nil, err
	}
	for _, id := range accountIDs {
		account, ok := accounts[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownAccount, id)
		}
		if !account.IsActive {
			return nil, nil, fmt.Errorf("%w: %s (%s)", ErrInactiveAccount, account.Code, account.Name)
		}
	}

	if len(req.Lines) < 2 {
		return nil, nil, ErrInsufficientLines
	}
	if len(accountIDs) < 2 {
		return nil, nil, fmt.Errorf("%w: a voucher needs at least two distinct accounts", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	voucher := domain.Voucher{
		VoucherID:       uuid.NewString(),
		VoucherType:     voucherType,
		Date:            date,
		ReferenceNumber: req.ReferenceNumber,
		ChequeNumber:    req.ChequeNumber,
		ChequeDate:      chequeDate,
		Narration:       req.Narration,
		Status:          domain.Posted,
		Lines:           make([]domain.VoucherLine, len(req.Lines)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: req.CreatedBy,
		},
	}

	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for i, line := range req.Lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, nil, fmt.Errorf("%w: line %d carries a negative amount", apperrors.ErrValidation, i+1)
		}
		debit, credit := line.Debit.Round(2), line.Credit.Round(2)
		if debit.IsPositive() == credit.IsPositive() {
			return nil, nil, fmt.Errorf("%w: line %d must have exactly one of debit and credit non-zero", apperrors.ErrValidation, i+1)
		}
		voucher.Lines[i] = domain.VoucherLine{
			LineID:    uuid.NewString(),
			VoucherID: voucher.VoucherID,
			AccountID: line.AccountID,
			Debit:     debit,
			Credit:    credit,
			Narration: line.Narration,
		}
		totalDebit = totalDebit.Add(debit)
		totalCredit = totalCredit.Add(credit)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, nil, &UnbalancedError{TotalDebit: totalDebit, TotalCredit: totalCredit}
	}

	return &voucher, accounts, nil
}

// applyLines aggregates per-account deltas and returns the accounts with their
// balances advanced through the signed representation. The accounts keep the
// versions they were read at; the repository's conditional write relies on
// them.
func applyLines(lines []domain.VoucherLine, accounts map[string]domain.Account, userID string, now time.Time) []domain.Account {
	deltas := make(map[string]domain.DebitCredit, len(accounts))
	order := make([]string, 0, len(accounts))
	for _, line := range lines {
		if _, ok := deltas[line.AccountID]; !ok {
			order = append(order, line.AccountID)
		}
		deltas[line.AccountID] = deltas[line.AccountID].Add(domain.DebitCredit{Debit: line.Debit, Credit: line.Credit})
	}

	updated := make([]domain.Account, 0, len(order))
	for _, id := range order {
		account := accounts[id]
		delta := deltas[id]
		account.CurrentBalance = account.CurrentBalance.Apply(delta.Debit, delta.Credit)
		account.LastUpdatedAt = now
		account.LastUpdatedBy = userID
		updated = append(updated, account)
	}
	return updated
}
