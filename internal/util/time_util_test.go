package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_TruncateToDay(t *testing.T) {
	in := time.Date(2024, 2, 15, 18, 42, 11, 123, time.UTC)
	require.Equal(t, NewDate(2024, 2, 15), TruncateToDay(in))

	est, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// 23:30 EST is already the next day in UTC
	in = time.Date(2024, 2, 15, 23, 30, 0, 0, est)
	require.Equal(t, NewDate(2024, 2, 16), TruncateToDay(in))
}

func Test_DateLte(t *testing.T) {
	require.True(t, DateLte(NewDate(2024, 2, 14), NewDate(2024, 2, 15)))
	require.True(t, DateLte(NewDate(2024, 2, 15), NewDate(2024, 2, 15)))
	require.False(t, DateLte(NewDate(2024, 2, 16), NewDate(2024, 2, 15)))

	// same calendar day counts as lte even when the clock is later
	require.True(t, DateLte(time.Date(2024, 2, 15, 23, 0, 0, 0, time.UTC), NewDate(2024, 2, 15)))
}

func Test_DateWindow(t *testing.T) {
	window := DateWindow(time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC), 30)
	require.Len(t, window, 30)
	require.Equal(t, NewDate(2024, 1, 17), window[0])
	require.Equal(t, NewDate(2024, 2, 15), window[29])

	for i := 1; i < len(window); i++ {
		require.Equal(t, window[i-1].AddDate(0, 0, 1), window[i])
	}

	// the window crosses month boundaries without gaps
	window = DateWindow(NewDate(2024, 3, 2), 5)
	require.Equal(t, []time.Time{
		NewDate(2024, 2, 27),
		NewDate(2024, 2, 28),
		NewDate(2024, 2, 29),
		NewDate(2024, 3, 1),
		NewDate(2024, 3, 2),
	}, window)
}
