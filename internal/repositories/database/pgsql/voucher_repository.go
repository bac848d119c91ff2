package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	portsrepo "github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	"github.com/paybooks/payroll_ledger/internal/models"
	"github.com/paybooks/payroll_ledger/internal/utils/mapping"
	"github.com/paybooks/payroll_ledger/internal/utils/pagination"
)

const voucherColumns = `voucher_id, voucher_number, sequence, voucher_type, voucher_date,
	reference_number, cheque_number, cheque_date, narration, status,
	original_voucher_id, reversing_voucher_id,
	created_at, created_by, last_updated_at, last_updated_by`

const voucherLineColumns = `line_id, line_no, voucher_id, account_id, debit, credit, narration`

type PgxVoucherRepository struct {
	BaseRepository
}

// newPgxVoucherRepository creates a new repository for voucher data.
func newPgxVoucherRepository(pool *pgxpool.Pool) portsrepo.VoucherRepository {
	return &PgxVoucherRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.VoucherRepository = (*PgxVoucherRepository)(nil)

// SaveVoucher persists the voucher, its lines and the new account balances as
// one transaction. The per-type voucher number is allocated inside the same
// transaction via a single conditional upsert, so numbers never collide and
// never skip on success. Any account whose version moved since it was read
// fails the whole unit with ErrConcurrentModification.
func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher, accounts []domain.Account) (*domain.Voucher, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// Allocate the next number for this voucher type.
	var sequence int64
	err = tx.QueryRow(ctx, `
		INSERT INTO voucher_sequences (voucher_type, last_value)
		VALUES ($1, 1)
		ON CONFLICT (voucher_type)
		DO UPDATE SET last_value = voucher_sequences.last_value + 1
		RETURNING last_value;
	`, string(voucher.VoucherType)).Scan(&sequence)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate voucher number for type %s: %w", voucher.VoucherType, err)
	}
	voucher.Sequence = sequence
	voucher.VoucherNumber = domain.FormatVoucherNumber(voucher.VoucherType, sequence)

	m := mapping.ToModelVoucher(voucher)
	_, err = tx.Exec(ctx, `
		INSERT INTO vouchers (`+voucherColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`,
		m.VoucherID, m.VoucherNumber, m.Sequence, m.VoucherType, m.VoucherDate,
		m.ReferenceNumber, m.ChequeNumber, m.ChequeDate, m.Narration, m.Status,
		m.OriginalVoucherID, m.ReversingVoucherID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save voucher %s: %w", m.VoucherID, err)
	}

	batch := &pgx.Batch{}
	for i, line := range voucher.Lines {
		ml := mapping.ToModelVoucherLine(line)
		batch.Queue(`
			INSERT INTO voucher_lines (`+voucherLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7);
		`, ml.LineID, i+1, ml.VoucherID, ml.AccountID, ml.Debit, ml.Credit, ml.Narration)
	}
	for _, account := range accounts {
		ma := mapping.ToModelAccount(account)
		batch.Queue(`
			UPDATE accounts
			SET current_balance = $2, current_side = $3, version = version + 1,
			    last_updated_at = $4, last_updated_by = $5
			WHERE account_id = $1 AND version = $6;
		`, ma.AccountID, ma.CurrentBalance, ma.CurrentSide, ma.LastUpdatedAt, ma.LastUpdatedBy, ma.Version)
	}

	results := tx.SendBatch(ctx, batch)
	lineCount := len(voucher.Lines)
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, fmt.Errorf("failed to execute posting batch: %w", err)
		}
		if i >= lineCount && tag.RowsAffected() == 0 {
			accountID := accounts[i-lineCount].AccountID
			_ = results.Close()
			return nil, fmt.Errorf("%w: account %s changed since it was read", apperrors.ErrConcurrentModification, accountID)
		}
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("failed to close posting batch: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &voucher, nil
}

// FindVoucherByID retrieves a voucher with its lines.
func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucher(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
		}
		return nil, fmt.Errorf("failed to find voucher %s: %w", voucherID, err)
	}

	lines, err := r.linesForVouchers(ctx, []string{voucherID})
	if err != nil {
		return nil, err
	}
	voucher := mapping.ToDomainVoucher(m, lines[voucherID])
	return &voucher, nil
}

// ListVouchers pages newest-first by creation time, voucher id as tiebreaker.
func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	conditions := ""
	args := []any{limit + 1}
	if voucherType != nil {
		args = append(args, string(*voucherType))
		conditions += fmt.Sprintf(" AND voucher_type = $%d", len(args))
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, voucherID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt)
		args = append(args, voucherID)
		conditions += fmt.Sprintf(" AND (created_at, voucher_id) < ($%d, $%d)", len(args)-1, len(args))
	}

	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE TRUE` + conditions + `
		ORDER BY created_at DESC, voucher_id DESC
		LIMIT $1;`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	var ms []models.Voucher
	for rows.Next() {
		m, err := scanVoucher(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating voucher rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.VoucherID)
		token = &encoded
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.VoucherID
	}
	linesByVoucher, err := r.linesForVouchers(ctx, ids)
	if err != nil {
		return nil, nil, err
	}

	vouchers := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		vouchers[i] = mapping.ToDomainVoucher(m, linesByVoucher[m.VoucherID])
	}
	return vouchers, token, nil
}

// MarkVoucherReversed stamps the original voucher with the reversal link. Only
// a POSTED voucher can be marked; anything else conflicts.
func (r *PgxVoucherRepository) MarkVoucherReversed(ctx context.Context, voucherID string, reversingVoucherID string, userID string, now time.Time) error {
	query := `
		UPDATE vouchers
		SET status = $2, reversing_voucher_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE voucher_id = $1 AND status = $6;
	`
	tag, err := r.Pool.Exec(ctx, query, voucherID, string(domain.Reversed), reversingVoucherID, now, userID, string(domain.Posted))
	if err != nil {
		return fmt.Errorf("failed to mark voucher %s reversed: %w", voucherID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: voucher %s is not in a reversible state", apperrors.ErrConflict, voucherID)
	}
	return nil
}

// PostingsForAccount returns the account's lines dated within [from, to],
// ordered by voucher date then voucher number. The particulars fall back to
// the voucher narration when the line has none.
func (r *PgxVoucherRepository) PostingsForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.AccountPosting, error) {
	query := `
		SELECT v.voucher_date, v.voucher_id, v.voucher_number, v.voucher_type,
		       COALESCE(NULLIF(l.narration, ''), v.narration), l.debit, l.credit
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_id = l.voucher_id
		WHERE l.account_id = $1 AND v.voucher_date BETWEEN $2 AND $3
		ORDER BY v.voucher_date, v.voucher_number, l.line_no;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query postings for account %s: %w", accountID, err)
	}
	defer rows.Close()

	postings := []domain.AccountPosting{}
	for rows.Next() {
		var p domain.AccountPosting
		var voucherType string
		if err := rows.Scan(&p.Date, &p.VoucherID, &p.VoucherNumber, &voucherType, &p.Narration, &p.Debit, &p.Credit); err != nil {
			return nil, fmt.Errorf("failed to scan posting row: %w", err)
		}
		p.VoucherType = domain.VoucherType(voucherType)
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posting rows: %w", err)
	}
	return postings, nil
}

// PostingSumsBefore returns the account's posted column sums for lines dated
// strictly before the given instant.
func (r *PgxVoucherRepository) PostingSumsBefore(ctx context.Context, accountID string, before time.Time) (domain.DebitCredit, error) {
	query := `
		SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
		FROM voucher_lines l
		JOIN vouchers v ON v.voucher_id = l.voucher_id
		WHERE l.account_id = $1 AND v.voucher_date < $2;
	`
	var sums domain.DebitCredit
	if err := r.Pool.QueryRow(ctx, query, accountID, before).Scan(&sums.Debit, &sums.Credit); err != nil {
		return domain.DebitCredit{}, fmt.Errorf("failed to sum postings for account %s: %w", accountID, err)
	}
	return sums, nil
}

func scanVoucher(row pgx.Row) (models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VoucherNumber,
		&m.Sequence,
		&m.VoucherType,
		&m.VoucherDate,
		&m.ReferenceNumber,
		&m.ChequeNumber,
		&m.ChequeDate,
		&m.Narration,
		&m.Status,
		&m.OriginalVoucherID,
		&m.ReversingVoucherID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxVoucherRepository) linesForVouchers(ctx context.Context, voucherIDs []string) (map[string][]models.VoucherLine, error) {
	if len(voucherIDs) == 0 {
		return map[string][]models.VoucherLine{}, nil
	}
	query := `SELECT ` + voucherLineColumns + ` FROM voucher_lines WHERE voucher_id = ANY($1) ORDER BY voucher_id, line_no;`
	rows, err := r.Pool.Query(ctx, query, voucherIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query voucher lines: %w", err)
	}
	defer rows.Close()

	linesByVoucher := make(map[string][]models.VoucherLine, len(voucherIDs))
	for rows.Next() {
		var l models.VoucherLine
		if err := rows.Scan(&l.LineID, &l.LineNo, &l.VoucherID, &l.AccountID, &l.Debit, &l.Credit, &l.Narration); err != nil {
			return nil, fmt.Errorf("failed to scan voucher line row: %w", err)
		}
		linesByVoucher[l.VoucherID] = append(linesByVoucher[l.VoucherID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating voucher line rows: %w", err)
	}
	return linesByVoucher, nil
}
