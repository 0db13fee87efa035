package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodStart(t *testing.T) {
	now := time.Date(2026, time.August, 15, 13, 45, 0, 0, time.Local)

	start := ResolvePeriodStart(PeriodCurrentMonth, now)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.Local), *start)

	start = ResolvePeriodStart(PeriodPast3Months, now)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.Local), *start)

	start = ResolvePeriodStart(PeriodPast6Months, now)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), *start)

	assert.Nil(t, ResolvePeriodStart(PeriodAll, now))
	assert.Nil(t, ResolvePeriodStart("bogus", now))
}

func TestResolvePeriodStart_YearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 10, 9, 0, 0, 0, time.Local)

	start := ResolvePeriodStart(PeriodPast3Months, now)
	require.NotNil(t, start)
	assert.Equal(t, time.Date(2025, time.November, 1, 0, 0, 0, 0, time.Local), *start)
}

func TestBeginningOfDay(t *testing.T) {
	ts := time.Date(2026, time.May, 3, 23, 59, 58, 123, time.Local)
	assert.Equal(t, time.Date(2026, time.May, 3, 0, 0, 0, 0, time.Local), BeginningOfDay(ts))
}
