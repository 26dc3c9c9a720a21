package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("explicit range", func(t *testing.T) {
		start, end, err := parseDateRange("2025-01-01", "2025-06-30")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), end)
	})

	t.Run("defaults to trailing year", func(t *testing.T) {
		start, end, err := parseDateRange("", "")
		require.NoError(t, err)
		assert.True(t, start.Before(end))
		assert.InDelta(t, 365, end.Sub(start).Hours()/24, 1.5)
	})

	t.Run("invalid start date", func(t *testing.T) {
		_, _, err := parseDateRange("january", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid start date")
	})

	t.Run("invalid end date", func(t *testing.T) {
		_, _, err := parseDateRange("", "2025/01/01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid end date")
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, _, err := parseDateRange("2025-06-30", "2025-01-01")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start date must be before end date")
	})
}
