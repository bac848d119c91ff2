// Package memory provides an in-memory storage backend. It backs local
// development when no database is configured, and the integration tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	portsrepo "github.com/paybooks/payroll_ledger/internal/core/ports/repositories"
	"github.com/paybooks/payroll_ledger/internal/utils/pagination"
)

// Store keeps the whole ledger in process memory behind one RWMutex. It
// implements every repository port with the same semantics as the Postgres
// backend, including the conditional version check on the posting path.
type Store struct {
	mu        sync.RWMutex
	accounts  map[string]domain.Account
	vouchers  map[string]domain.Voucher
	sequences map[domain.VoucherType]int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]domain.Account),
		vouchers:  make(map[string]domain.Voucher),
		sequences: make(map[domain.VoucherType]int64),
	}
}

// Provider exposes the store as every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   s,
		VoucherRepo:   s,
		ReportingRepo: s,
	}
}

var (
	_ portsrepo.AccountRepository   = (*Store)(nil)
	_ portsrepo.VoucherRepository   = (*Store)(nil)
	_ portsrepo.ReportingRepository = (*Store)(nil)
)

// SaveAccount inserts a new account, enforcing code uniqueness.
func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.AccountID]; ok {
		return fmt.Errorf("%w: account %s already exists", apperrors.ErrDuplicate, account.AccountID)
	}
	for _, existing := range s.accounts {
		if strings.EqualFold(existing.Code, account.Code) {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, account.Code)
		}
	}
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return &account, nil
}

func (s *Store) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, account := range s.accounts {
		if strings.EqualFold(account.Code, code) {
			account := account
			return &account, nil
		}
	}
	return nil, fmt.Errorf("%w: account code %s", apperrors.ErrNotFound, code)
}

func (s *Store) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := s.accounts[id]; ok {
			found[id] = account
		}
	}
	return found, nil
}

func (s *Store) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := []domain.Account{}
	for _, account := range s.accounts {
		if filter.ActiveOnly && !account.IsActive {
			continue
		}
		if filter.Group != nil && account.Group != *filter.Group {
			continue
		}
		if filter.Query != "" {
			q := strings.ToLower(filter.Query)
			if !strings.Contains(strings.ToLower(account.Code), q) &&
				!strings.Contains(strings.ToLower(account.Name), q) {
				continue
			}
		}
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.AccountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
	}
	existing.Name = account.Name
	existing.Group = account.Group
	existing.Type = account.Type
	existing.Description = account.Description
	existing.LastUpdatedAt = account.LastUpdatedAt
	existing.LastUpdatedBy = account.LastUpdatedBy
	s.accounts[account.AccountID] = existing
	return nil
}

func (s *Store) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	account.IsActive = false
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID
	s.accounts[accountID] = account
	return nil
}

func (s *Store) HasPostings(ctx context.Context, accountID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, voucher := range s.vouchers {
		for _, line := range voucher.Lines {
			if line.AccountID == accountID {
				return true, nil
			}
		}
	}
	return false, nil
}

// SaveVoucher allocates the voucher number and commits the voucher together
// with the new account balances under one lock. A stale account version fails
// the whole unit before anything is written.
func (s *Store) SaveVoucher(ctx context.Context, voucher domain.Voucher, accounts []domain.Account) (*domain.Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vouchers[voucher.VoucherID]; ok {
		return nil, fmt.Errorf("%w: voucher %s already exists", apperrors.ErrDuplicate, voucher.VoucherID)
	}
	for _, account := range accounts {
		current, ok := s.accounts[account.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.AccountID)
		}
		if current.Version != account.Version {
			return nil, fmt.Errorf("%w: account %s changed since it was read", apperrors.ErrConcurrentModification, account.AccountID)
		}
	}

	s.sequences[voucher.VoucherType]++
	voucher.Sequence = s.sequences[voucher.VoucherType]
	voucher.VoucherNumber = domain.FormatVoucherNumber(voucher.VoucherType, voucher.Sequence)
	voucher.Lines = append([]domain.VoucherLine(nil), voucher.Lines...)
	s.vouchers[voucher.VoucherID] = voucher

	for _, account := range accounts {
		stored := s.accounts[account.AccountID]
		stored.CurrentBalance = account.CurrentBalance
		stored.Version++
		stored.LastUpdatedAt = account.LastUpdatedAt
		stored.LastUpdatedBy = account.LastUpdatedBy
		s.accounts[account.AccountID] = stored
	}
	return &voucher, nil
}

func (s *Store) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	voucher, ok := s.vouchers[voucherID]
	if !ok {
		return nil, fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	voucher.Lines = append([]domain.VoucherLine(nil), voucher.Lines...)
	return &voucher, nil
}

func (s *Store) ListVouchers(ctx context.Context, voucherType *domain.VoucherType, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Voucher, 0, len(s.vouchers))
	for _, voucher := range s.vouchers {
		if voucherType != nil && voucher.VoucherType != *voucherType {
			continue
		}
		all = append(all, voucher)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].VoucherID > all[j].VoucherID
	})

	start := 0
	if nextToken != nil && *nextToken != "" {
		createdAt, voucherID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		for i, voucher := range all {
			if voucher.CreatedAt.Before(createdAt) ||
				(voucher.CreatedAt.Equal(createdAt) && voucher.VoucherID < voucherID) {
				start = i
				break
			}
			start = len(all)
		}
	}

	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	page := append([]domain.Voucher(nil), all[start:end]...)

	var token *string
	if end < len(all) && len(page) > 0 {
		last := page[len(page)-1]
		encoded := pagination.EncodeToken(last.CreatedAt, last.VoucherID)
		token = &encoded
	}
	return page, token, nil
}

func (s *Store) MarkVoucherReversed(ctx context.Context, voucherID string, reversingVoucherID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	voucher, ok := s.vouchers[voucherID]
	if !ok {
		return fmt.Errorf("%w: voucher %s", apperrors.ErrNotFound, voucherID)
	}
	if voucher.Status != domain.Posted {
		return fmt.Errorf("%w: voucher %s is not in a reversible state", apperrors.ErrConflict, voucherID)
	}
	voucher.Status = domain.Reversed
	voucher.ReversingVoucherID = &reversingVoucherID
	voucher.LastUpdatedAt = now
	voucher.LastUpdatedBy = userID
	s.vouchers[voucherID] = voucher
	return nil
}

func (s *Store) PostingsForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.AccountPosting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	postings := []domain.AccountPosting{}
	for _, voucher := range s.vouchers {
		if voucher.Date.Before(from) || voucher.Date.After(to) {
			continue
		}
		for _, line := range voucher.Lines {
			if line.AccountID != accountID {
				continue
			}
			narration := line.Narration
			if narration == "" {
				narration = voucher.Narration
			}
			postings = append(postings, domain.AccountPosting{
				Date:          voucher.Date,
				VoucherID:     voucher.VoucherID,
				VoucherNumber: voucher.VoucherNumber,
				VoucherType:   voucher.VoucherType,
				Narration:     narration,
				Debit:         line.Debit,
				Credit:        line.Credit,
			})
		}
	}
	sort.SliceStable(postings, func(i, j int) bool {
		if !postings[i].Date.Equal(postings[j].Date) {
			return postings[i].Date.Before(postings[j].Date)
		}
		return postings[i].VoucherNumber < postings[j].VoucherNumber
	})
	return postings, nil
}

func (s *Store) PostingSumsBefore(ctx context.Context, accountID string, before time.Time) (domain.DebitCredit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sums domain.DebitCredit
	for _, voucher := range s.vouchers {
		if !voucher.Date.Before(before) {
			continue
		}
		for _, line := range voucher.Lines {
			if line.AccountID == accountID {
				sums = sums.Add(domain.DebitCredit{Debit: line.Debit, Credit: line.Credit})
			}
		}
	}
	return sums, nil
}

func (s *Store) AccountTotalsAsOf(ctx context.Context, asOf time.Time) (map[string]domain.DebitCredit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[string]domain.DebitCredit)
	for _, voucher := range s.vouchers {
		if voucher.Date.After(asOf) {
			continue
		}
		for _, line := range voucher.Lines {
			sums[line.AccountID] = sums[line.AccountID].Add(domain.DebitCredit{Debit: line.Debit, Credit: line.Credit})
		}
	}
	return sums, nil
}

func (s *Store) AccountMovements(ctx context.Context, from, to time.Time) (map[string]domain.DebitCredit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sums := make(map[string]domain.DebitCredit)
	for _, voucher := range s.vouchers {
		if voucher.Date.Before(from) || voucher.Date.After(to) {
			continue
		}
		for _, line := range voucher.Lines {
			sums[line.AccountID] = sums[line.AccountID].Add(domain.DebitCredit{Debit: line.Debit, Credit: line.Credit})
		}
	}
	return sums, nil
}
