package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_FormatAndParse(t *testing.T) {
	d := time.Date(2026, time.August, 1, 15, 4, 5, 0, time.UTC)
	require.Equal(t, "2026-08-01", Format(d))

	parsed, err := Parse("2026-08-01")
	require.NoError(t, err)
	require.Equal(t, 2026, parsed.Year())
	require.Equal(t, time.August, parsed.Month())
	require.Equal(t, 1, parsed.Day())
}

func Test_IsValid(t *testing.T) {
	require.True(t, IsValid("2026-08-01"))
	require.False(t, IsValid("08/01/2026"))
	require.False(t, IsValid("2026-13-01"))
	require.False(t, IsValid(""))
}

func Test_ToDate(t *testing.T) {
	d := ToDate(time.Date(2026, time.August, 31, 23, 59, 59, 0, time.FixedZone("X", 7*3600)))
	require.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), d)

	parsed, err := Parse("2026-08-31")
	require.NoError(t, err)
	require.Equal(t, parsed, d)
}

func Test_NextTimeOfDay(t *testing.T) {
	now := time.Date(2026, time.August, 1, 9, 0, 0, 0, time.UTC)

	// Later today.
	next := NextTimeOfDay(now, 21, 30)
	require.Equal(t, time.Date(2026, time.August, 1, 21, 30, 0, 0, time.UTC), next)

	// Already passed, so tomorrow.
	next = NextTimeOfDay(now, 8, 0)
	require.Equal(t, time.Date(2026, time.August, 2, 8, 0, 0, 0, time.UTC), next)

	// Exactly now counts as passed.
	next = NextTimeOfDay(now, 9, 0)
	require.Equal(t, time.Date(2026, time.August, 2, 9, 0, 0, 0, time.UTC), next)
}
