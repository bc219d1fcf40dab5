package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2026, time.August, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalizeDates(t *testing.T) {
	// Duplicates collapse, output sorted.
	dates, err := NormalizeDates([]string{"2026-08-10", "2026-08-08", "2026-08-10"})
	require.NoError(t, err)
	require.Len(t, dates, 2)
	assert.Equal(t, day(8), dates[0])
	assert.Equal(t, day(10), dates[1])
}

func TestNormalizeDates_Empty(t *testing.T) {
	_, err := NormalizeDates(nil)
	assert.ErrorIs(t, err, ErrNoLeaveDates)
}

func TestNormalizeDates_Malformed(t *testing.T) {
	_, err := NormalizeDates([]string{"08/10/2026"})
	assert.Error(t, err)
}

func TestValidateDates_MinimumNotice(t *testing.T) {
	// today+3 is the earliest acceptable date.
	assert.NoError(t, ValidateDates([]time.Time{day(4)}, today))
	assert.ErrorIs(t, ValidateDates([]time.Time{day(3)}, today), ErrLeaveDateTooSoon)
	assert.ErrorIs(t, ValidateDates([]time.Time{day(4), day(2)}, today), ErrLeaveDateTooSoon)
}

func TestValidateDates_ConsecutiveRun(t *testing.T) {
	// Three consecutive days is the cap.
	assert.NoError(t, ValidateDates([]time.Time{day(10), day(11), day(12)}, today))
	assert.ErrorIs(t,
		ValidateDates([]time.Time{day(10), day(11), day(12), day(13)}, today),
		ErrLeaveRunTooLong)
}

func TestValidateDates_GapResetsRun(t *testing.T) {
	// Two runs of two, separated by a gap, are fine.
	dates := []time.Time{day(10), day(11), day(13), day(14)}
	assert.NoError(t, ValidateDates(dates, today))
}

func TestValidateDates_Empty(t *testing.T) {
	assert.ErrorIs(t, ValidateDates(nil, today), ErrNoLeaveDates)
}
