package ais

import (
	"time"

	"github.com/lestrrat-go/strftime"
)

// UTCTime assembles a time.Time from message 4/11's Time_year..Time_sec
// fields. It returns false if any field carries its "not available"
// sentinel value (spec §4.4.3's Message 4 field list).
func UTCTime(r *Record) (time.Time, bool) {
	year, ok := recordUint(r, "Time_year")
	if !ok || year == 0 {
		return time.Time{}, false
	}
	month, ok := recordUint(r, "Time_month")
	if !ok || month == 0 {
		return time.Time{}, false
	}
	day, ok := recordUint(r, "Time_day")
	if !ok || day == 0 {
		return time.Time{}, false
	}
	hour, ok := recordUint(r, "Time_hour")
	if !ok || hour == 24 {
		return time.Time{}, false
	}
	minute, ok := recordUint(r, "Time_min")
	if !ok || minute == 60 {
		return time.Time{}, false
	}
	second, ok := recordUint(r, "Time_sec")
	if !ok || second == 60 {
		return time.Time{}, false
	}
	return time.Date(int(year), time.Month(month), int(day), int(hour), int(minute), int(second), 0, time.UTC), true
}

func recordUint(r *Record, name string) (uint64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	return asUint64(v)
}

// FormatUTCTime renders a message 4/11 timestamp using the given
// strftime layout, the same formatting library the command-line tools
// use for their own timestamp formatting. Returns "" if the timestamp
// is unavailable.
func FormatUTCTime(r *Record, layout string) string {
	t, ok := UTCTime(r)
	if !ok {
		return ""
	}
	formatted, err := strftime.Format(layout, t)
	if err != nil {
		return ""
	}
	return formatted
}
