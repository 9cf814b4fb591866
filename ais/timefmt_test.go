package ais

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCTimeAssemblesFromFields(t *testing.T) {
	r := NewRecord()
	r.Set("Time_year", uint64(2026))
	r.Set("Time_month", uint64(7))
	r.Set("Time_day", uint64(31))
	r.Set("Time_hour", uint64(14))
	r.Set("Time_min", uint64(30))
	r.Set("Time_sec", uint64(15))

	tm, ok := UTCTime(r)
	require.True(t, ok)
	assert.Equal(t, 2026, tm.Year())
	assert.Equal(t, 31, tm.Day())

	formatted := FormatUTCTime(r, "%Y-%m-%d")
	assert.Equal(t, "2026-07-31", formatted)
}

func TestUTCTimeSentinelFieldsUnavailable(t *testing.T) {
	r := NewRecord()
	r.Set("Time_year", uint64(2026))
	r.Set("Time_month", uint64(7))
	r.Set("Time_day", uint64(31))
	r.Set("Time_hour", uint64(24)) // "not available" sentinel
	r.Set("Time_min", uint64(60))
	r.Set("Time_sec", uint64(60))

	_, ok := UTCTime(r)
	assert.False(t, ok)
	assert.Equal(t, "", FormatUTCTime(r, "%Y-%m-%d"))
}
