package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationHours(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Whole hours", func(t *testing.T) {
		h, err := DurationHours(start, start.Add(5*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 5, h)
	})

	t.Run("Partial hour rounds down", func(t *testing.T) {
		h, err := DurationHours(start, start.Add(3*time.Hour+59*time.Minute))
		require.NoError(t, err)
		assert.Equal(t, 3, h)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := DurationHours(start, start.Add(-time.Hour))
		assert.Error(t, err)
	})

	t.Run("End equals start", func(t *testing.T) {
		_, err := DurationHours(start, start)
		assert.Error(t, err)
	})
}

func TestCalculateRentalCost(t *testing.T) {
	rates, err := ParseRates("12.50", "150")
	require.NoError(t, err)

	tests := []struct {
		name      string
		hours     int
		wantDays  int
		wantHours int
		wantTotal string
	}{
		{"Hours only", 4, 0, 4, "50"},
		{"Exact day", 24, 1, 0, "150"},
		{"Day plus hours", 26, 1, 2, "175"},
		{"Remainder cheaper as a day", 40, 2, 0, "300"},
		{"Zero hours", 0, 0, 0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRentalCost(tt.hours, rates)
			assert.Equal(t, tt.wantDays, got.Days)
			assert.Equal(t, tt.wantHours, got.Hours)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(got.TotalCost), "total %s", got.TotalCost)
		})
	}

	t.Run("Zero daily rate bills hourly", func(t *testing.T) {
		got := CalculateRentalCost(30, Rates{Hourly: decimal.NewFromInt(2), Daily: decimal.Zero})
		assert.True(t, decimal.NewFromInt(60).Equal(got.TotalCost))
		assert.Equal(t, 30, got.Hours)
	})
}

func TestParseRates(t *testing.T) {
	_, err := ParseRates("abc", "1")
	assert.Error(t, err)
	_, err = ParseRates("1", "")
	assert.Error(t, err)
}
