package detect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codesagesllc/my-budget-planner-sub002/internal/model"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"NETFLIX", "NETFLIX.COM", 4},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, levenshtein(tt.b, tt.a))
		})
	}
}

func TestKeysMatch(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		key      string
		want     bool
	}{
		{"exact match", "NETFLIX.COM", "NETFLIX.COM", true},
		{"substring both long enough", "NETFLIX.COM", "NETFLIX", true},
		{"superstring both long enough", "NETFLIX", "NETFLIX.COM", true},
		{"short key never substring matches", "AMC THEATRES", "AMC", false},
		{"prefix at length four", "HULU", "HULU.COM", true},
		{"near identical store numbers", "STARBUCKS STORE A", "STARBUCKS STORE B", true},
		{"unrelated names", "SPOTIFY", "AMAZON", false},
		{"similarity gate needs length six", "ABCDE", "ABCDF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keysMatch(tt.existing, tt.key, 0.8))
		})
	}
}

func TestGroupByName(t *testing.T) {
	cfg := DefaultConfig()
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	txns := []model.Transaction{
		{ID: "t1", Description: "NETFLIX.COM", Amount: 15.99, Date: day(3)},
		{ID: "t2", Description: "NETFLIX.COM 1234", Amount: 15.99, Date: day(10)},
		{ID: "t3", Description: "SPOTIFY", Amount: 9.99, Date: day(5)},
		{ID: "t4", Description: "FEE", Amount: 2.00, Date: day(6)}, // stoplisted
	}

	arena := groupByName(cfg, txns)

	require.Len(t, arena.groups, 2)
	assert.Equal(t, []string{"t1", "t2"}, arena.groups[0].memberIDs)
	assert.Equal(t, []string{"t3"}, arena.groups[1].memberIDs)

	// Stoplisted keys never enter the arena.
	_, assigned := arena.byTxn["t4"]
	assert.False(t, assigned)

	// Every transaction belongs to at most one group.
	assert.Equal(t, 0, arena.byTxn["t1"])
	assert.Equal(t, 0, arena.byTxn["t2"])
	assert.Equal(t, 1, arena.byTxn["t3"])
}

func TestGroupByNameFirstMatchWins(t *testing.T) {
	cfg := DefaultConfig()
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	// The second transaction could plausibly match either of two groups;
	// it must join the earliest-created one and never be reassigned.
	txns := []model.Transaction{
		{ID: "a", Description: "GOOGLE STORAGE", Amount: 1.99, Date: day(1)},
		{ID: "b", Description: "GOOGLE STORAGE SVC", Amount: 1.99, Date: day(2)},
		{ID: "c", Description: "GOOGLE", Amount: 5.00, Date: day(3)},
	}

	arena := groupByName(cfg, txns)

	require.Len(t, arena.groups, 1)
	assert.Equal(t, []string{"a", "b", "c"}, arena.groups[0].memberIDs)
	assert.Equal(t, "GOOGLE STORAGE", arena.groups[0].key)
}

func TestGroupByAmount(t *testing.T) {
	cfg := DefaultConfig()
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }

	txns := []model.Transaction{
		{ID: "a", Description: "ELECTRIC CO", Amount: 100.00, Date: day(1)},
		{ID: "b", Description: "POWER & LIGHT", Amount: 104.50, Date: day(15)}, // within 5%
		{ID: "c", Description: "ELECTRIC CO", Amount: 112.00, Date: day(20)},  // outside 5%
		{ID: "d", Description: "RENT", Amount: -1800.00, Date: day(2)},        // sign ignored
	}

	arena := groupByAmount(cfg, txns)

	require.Len(t, arena.groups, 3)
	assert.Equal(t, []string{"a", "b"}, arena.groups[0].memberIDs)
	assert.Equal(t, []string{"c"}, arena.groups[1].memberIDs)
	assert.Equal(t, []string{"d"}, arena.groups[2].memberIDs)
	assert.InDelta(t, 1800.00, arena.groups[2].bucketAmount, 0.001)
}
