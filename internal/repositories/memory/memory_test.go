package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/paybooks/payroll_ledger/internal/apperrors"
	"github.com/paybooks/payroll_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, store *Store, id, code string) domain.Account {
	t.Helper()
	account := domain.Account{
		AccountID:      id,
		Code:           code,
		Name:           "Account " + code,
		Group:          domain.GroupAssets,
		Type:           "Cash-in-Hand",
		OpeningBalance: domain.ZeroBalance(),
		CurrentBalance: domain.ZeroBalance(),
		IsActive:       true,
		Version:        1,
	}
	require.NoError(t, store.SaveAccount(context.Background(), account))
	return account
}

func makeVoucher(id string, voucherType domain.VoucherType, debitAccount, creditAccount string, amount int64, createdAt time.Time) domain.Voucher {
	v := domain.Voucher{
		VoucherID:   id,
		VoucherType: voucherType,
		Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:      domain.Posted,
		Lines: []domain.VoucherLine{
			{LineID: id + "-l1", VoucherID: id, AccountID: debitAccount, Debit: decimal.NewFromInt(amount)},
			{LineID: id + "-l2", VoucherID: id, AccountID: creditAccount, Credit: decimal.NewFromInt(amount)},
		},
	}
	v.CreatedAt = createdAt
	return v
}

func TestSaveVoucherStaleVersionFailsWholeUnit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	cash := seedAccount(t, store, "a1", "1001")
	sales := seedAccount(t, store, "a2", "4001")

	cash.CurrentBalance = domain.NewBalance(decimal.NewFromInt(500), domain.SideDebit)
	sales.CurrentBalance = domain.NewBalance(decimal.NewFromInt(500), domain.SideCredit)
	sales.Version = 99 // stale read

	_, err := store.SaveVoucher(ctx, makeVoucher("v1", domain.VoucherReceipt, "a1", "a2", 500, time.Now()),
		[]domain.Account{cash, sales})
	require.ErrorIs(t, err, apperrors.ErrConcurrentModification)

	// Nothing was written, not even the first account's balance.
	stored, err := store.FindAccountByID(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, stored.CurrentBalance.IsZero())
	assert.EqualValues(t, 1, stored.Version)
	_, err = store.FindVoucherByID(ctx, "v1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	// The sequence was not consumed either.
	saved, err := store.SaveVoucher(ctx, makeVoucher("v2", domain.VoucherReceipt, "a1", "a2", 500, time.Now()),
		[]domain.Account{{AccountID: "a1", Version: 1}, {AccountID: "a2", Version: 1}})
	require.NoError(t, err)
	assert.Equal(t, "RV-000001", saved.VoucherNumber)
}

func TestSaveVoucherSequencesArePerType(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedAccount(t, store, "a1", "1001")
	seedAccount(t, store, "a2", "4001")

	accounts := func(version int64) []domain.Account {
		return []domain.Account{{AccountID: "a1", Version: version}, {AccountID: "a2", Version: version}}
	}

	first, err := store.SaveVoucher(ctx, makeVoucher("v1", domain.VoucherPayment, "a1", "a2", 10, time.Now()), accounts(1))
	require.NoError(t, err)
	second, err := store.SaveVoucher(ctx, makeVoucher("v2", domain.VoucherReceipt, "a1", "a2", 10, time.Now()), accounts(2))
	require.NoError(t, err)
	third, err := store.SaveVoucher(ctx, makeVoucher("v3", domain.VoucherPayment, "a1", "a2", 10, time.Now()), accounts(3))
	require.NoError(t, err)

	assert.Equal(t, "PV-000001", first.VoucherNumber)
	assert.Equal(t, "RV-000001", second.VoucherNumber)
	assert.Equal(t, "PV-000002", third.VoucherNumber)
}

func TestSaveVoucherBumpsAccountVersions(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedAccount(t, store, "a1", "1001")
	seedAccount(t, store, "a2", "4001")

	cash := domain.Account{AccountID: "a1", Version: 1,
		CurrentBalance: domain.NewBalance(decimal.NewFromInt(500), domain.SideDebit)}
	sales := domain.Account{AccountID: "a2", Version: 1,
		CurrentBalance: domain.NewBalance(decimal.NewFromInt(500), domain.SideCredit)}
	_, err := store.SaveVoucher(ctx, makeVoucher("v1", domain.VoucherReceipt, "a1", "a2", 500, time.Now()),
		[]domain.Account{cash, sales})
	require.NoError(t, err)

	stored, err := store.FindAccountByID(ctx, "a1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.Version)
	assert.Equal(t, "500.00 Dr", stored.CurrentBalance.String())
}

func TestListVouchersPaginatesWithoutDuplicates(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedAccount(t, store, "a1", "1001")
	seedAccount(t, store, "a2", "4001")

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		id := fmt.Sprintf("v%d", i)
		_, err := store.SaveVoucher(ctx, makeVoucher(id, domain.VoucherJournal, "a1", "a2", 10, base.Add(time.Duration(i)*time.Minute)),
			[]domain.Account{{AccountID: "a1", Version: int64(i + 1)}, {AccountID: "a2", Version: int64(i + 1)}})
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	var token *string
	pages := 0
	for {
		page, next, err := store.ListVouchers(ctx, nil, 3, token)
		require.NoError(t, err)
		require.NotEmpty(t, page)
		pages++
		for _, v := range page {
			require.False(t, seen[v.VoucherID], "voucher %s returned twice", v.VoucherID)
			seen[v.VoucherID] = true
		}
		// Newest first within and across pages.
		for i := 1; i < len(page); i++ {
			assert.False(t, page[i].CreatedAt.After(page[i-1].CreatedAt))
		}
		if next == nil {
			break
		}
		token = next
	}
	assert.Equal(t, 3, pages)
	assert.Len(t, seen, 7)
}

func TestListVouchersFiltersByType(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedAccount(t, store, "a1", "1001")
	seedAccount(t, store, "a2", "4001")

	now := time.Now()
	_, err := store.SaveVoucher(ctx, makeVoucher("v1", domain.VoucherPayment, "a1", "a2", 10, now),
		[]domain.Account{{AccountID: "a1", Version: 1}, {AccountID: "a2", Version: 1}})
	require.NoError(t, err)
	_, err = store.SaveVoucher(ctx, makeVoucher("v2", domain.VoucherReceipt, "a1", "a2", 10, now.Add(time.Second)),
		[]domain.Account{{AccountID: "a1", Version: 2}, {AccountID: "a2", Version: 2}})
	require.NoError(t, err)

	receipts := domain.VoucherReceipt
	page, next, err := store.ListVouchers(ctx, &receipts, 10, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, page, 1)
	assert.Equal(t, "RV-000001", page[0].VoucherNumber)
}

func TestMarkVoucherReversedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	seedAccount(t, store, "a1", "1001")
	seedAccount(t, store, "a2", "4001")

	_, err := store.SaveVoucher(ctx, makeVoucher("v1", domain.VoucherJournal, "a1", "a2", 10, time.Now()),
		[]domain.Account{{AccountID: "a1", Version: 1}, {AccountID: "a2", Version: 1}})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.MarkVoucherReversed(ctx, "v1", "rv1", "tester", now))

	voucher, err := store.FindVoucherByID(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, domain.Reversed, voucher.Status)
	require.NotNil(t, voucher.ReversingVoucherID)
	assert.Equal(t, "rv1", *voucher.ReversingVoucherID)

	err = store.MarkVoucherReversed(ctx, "v1", "rv2", "tester", now)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUpdateAccountTouchesDescriptiveFieldsOnly(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	account := seedAccount(t, store, "a1", "1001")

	account.Name = "Renamed"
	account.CurrentBalance = domain.NewBalance(decimal.NewFromInt(999), domain.SideDebit)
	account.Version = 42
	require.NoError(t, store.UpdateAccount(ctx, account))

	stored, err := store.FindAccountByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Name)
	// Balance and version only move through the posting path.
	assert.True(t, stored.CurrentBalance.IsZero())
	assert.EqualValues(t, 1, stored.Version)
}

func TestSaveAccountCodeUniquenessIsCaseInsensitive(t *testing.T) {
	store := NewStore()
	seedAccount(t, store, "a1", "BANK01")

	err := store.SaveAccount(context.Background(), domain.Account{AccountID: "a2", Code: "bank01"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}
