package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/common"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
	"github.com/codesagesllc/my-budget-planner-sub002/internal/service"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "planner.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSaveAndGetTransactions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	txns := []model.Transaction{
		{
			ID:          "t1",
			Description: "NETFLIX.COM",
			Amount:      -15.99,
			Date:        time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			AccountID:   "acct1",
		},
		{
			ID:          "t2",
			Description: "ACME CORP PAYROLL",
			Amount:      2000,
			Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			AccountID:   "acct1",
			Direction:   model.DirectionInflow,
		},
	}

	require.NoError(t, store.SaveTransactions(ctx, txns))

	// Re-importing the same transactions is a no-op.
	require.NoError(t, store.SaveTransactions(ctx, txns))

	got, err := store.GetTransactions(ctx, service.TransactionFilter{})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Oldest first.
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "NETFLIX.COM", got[0].Description)
	assert.Equal(t, model.DirectionOutflow, got[0].Direction)
	assert.Equal(t, "t2", got[1].ID)
	assert.Equal(t, model.DirectionInflow, got[1].Direction)
}

func TestGetTransactionsFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	var txns []model.Transaction
	for i := 0; i < 5; i++ {
		txns = append(txns, model.Transaction{
			ID:          string(rune('a' + i)),
			Description: "SPOTIFY",
			Amount:      9.99,
			Date:        time.Date(2025, 1, 1+i*7, 0, 0, 0, 0, time.UTC),
		})
	}
	require.NoError(t, store.SaveTransactions(ctx, txns))

	from := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	got, err := store.GetTransactions(ctx, service.TransactionFilter{StartDate: &from})
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = store.GetTransactions(ctx, service.TransactionFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSaveAndListPatterns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patterns := []model.DetectedPattern{
		{
			Name:                 "NETFLIX.COM",
			RepresentativeAmount: 15.99,
			Frequency:            model.FrequencyMonthly,
			Confidence:           95,
			Categories:           []string{"streaming", "subscription"},
			OccurrenceCount:      4,
			FirstSeen:            time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC),
			LastSeen:             time.Date(2025, 4, 3, 0, 0, 0, 0, time.UTC),
			SourceTransactionIDs: []string{"t1", "t2", "t3", "t4"},
			IsRecurring:          true,
		},
	}

	require.NoError(t, store.SavePatterns(ctx, patterns))

	got, err := store.ListPatterns(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	p := got[0]
	assert.Equal(t, "NETFLIX.COM", p.Name)
	assert.Equal(t, model.FrequencyMonthly, p.Frequency)
	assert.Equal(t, 95, p.Confidence)
	assert.Equal(t, []string{"streaming", "subscription"}, p.Categories)
	assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, p.SourceTransactionIDs)
	assert.True(t, p.IsRecurring)
}

func TestAcceptPattern(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	patterns := []model.DetectedPattern{
		{
			Name:                 "NETFLIX.COM",
			RepresentativeAmount: 15.99,
			Frequency:            model.FrequencyMonthly,
			Confidence:           95,
			Categories:           []string{"streaming", "subscription"},
			OccurrenceCount:      4,
			SourceTransactionIDs: []string{"t1"},
			IsRecurring:          true,
		},
		{
			Name:                 "ACME CORP PAYROLL",
			RepresentativeAmount: 2000,
			Frequency:            model.FrequencyBiweekly,
			Confidence:           100,
			Categories:           []string{"income", "payroll"},
			OccurrenceCount:      6,
			SourceTransactionIDs: []string{"p1"},
			IsRecurring:          true,
		},
	}
	require.NoError(t, store.SavePatterns(ctx, patterns))

	// Expense pattern becomes a bill, income pattern an income source.
	require.NoError(t, store.AcceptPattern(ctx, 1))
	require.NoError(t, store.AcceptPattern(ctx, 2))

	records, err := store.ListExistingRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)

	names := []string{records[0].Name, records[1].Name}
	assert.Contains(t, names, "NETFLIX.COM")
	assert.Contains(t, names, "ACME CORP PAYROLL")
}

func TestAcceptPatternErrors(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	err := store.AcceptPattern(ctx, 42)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.SavePatterns(ctx, []model.DetectedPattern{{
		Name:                 "SPOTIFY",
		RepresentativeAmount: 9.99,
		Frequency:            model.FrequencyMonthly,
		Confidence:           90,
		Categories:           []string{"streaming"},
		OccurrenceCount:      3,
		SourceTransactionIDs: []string{"s1"},
		IsRecurring:          true,
	}}))

	require.NoError(t, store.AcceptPattern(ctx, 1))
	err = store.AcceptPattern(ctx, 1)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestListExistingRecordsEmpty(t *testing.T) {
	store := newTestStore(t)

	records, err := store.ListExistingRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
