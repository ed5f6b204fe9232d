package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestConstrainWindowEndClamping(t *testing.T) {
	today := date(t, "2025-06-15")

	t.Run("end date in the past is kept", func(t *testing.T) {
		qw, _, _, err := ConstrainWindow(7, date(t, "2025-06-10"), today, 29)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-10", qw.EndDate())
		assert.Equal(t, "2025-06-04", qw.StartDate())
	})

	t.Run("end date in the future clamps to today", func(t *testing.T) {
		qw, _, warnings, err := ConstrainWindow(7, date(t, "2025-07-01"), today, 29)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15", qw.EndDate())
		assert.NotEmpty(t, warnings)
	})
}

func TestConstrainWindowProviderHorizon(t *testing.T) {
	today := date(t, "2025-06-15")

	// 60-day lookback reaches past the 29-day horizon
	qw, cw, warnings, err := ConstrainWindow(60, today, today, 29)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-17", qw.StartDate()) // today - 29
	assert.Equal(t, "2025-06-15", qw.EndDate())
	assert.NotEmpty(t, warnings)

	// Context window stays the user's unclamped intent
	assert.Equal(t, "2025-04-17", cw.StartDate()) // today - 59
	assert.Equal(t, "2025-06-15", cw.EndDate())
}

func TestConstrainWindowInvalidAfterClamping(t *testing.T) {
	today := date(t, "2025-06-15")

	// End date far in the past: query end predates the provider horizon,
	// so start > end after clamping.
	_, _, _, err := ConstrainWindow(7, date(t, "2025-01-01"), today, 29)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestConstrainWindowNeverInverted(t *testing.T) {
	today := date(t, "2025-06-15")
	ends := []string{"2025-06-15", "2025-06-01", "2025-05-20", "2025-07-10"}
	lookbacks := []int{1, 7, 30, 90}

	for _, end := range ends {
		for _, lb := range lookbacks {
			qw, _, _, err := ConstrainWindow(lb, date(t, end), today, 29)
			if err != nil {
				assert.ErrorIs(t, err, ErrInvalidDateRange)
				continue
			}
			assert.False(t, qw.Start.After(qw.End),
				"window inverted for end=%s lookback=%d", end, lb)
		}
	}
}

func TestConstrainWindowContextMatchesIntent(t *testing.T) {
	today := date(t, "2025-06-15")
	end := date(t, "2025-06-30") // future

	_, cw, _, err := ConstrainWindow(10, end, today, 29)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-21", cw.StartDate())
	assert.Equal(t, "2025-06-30", cw.EndDate())
	assert.Equal(t, "2025-06-21 to 2025-06-30", cw.String())
}
