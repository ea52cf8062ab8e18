package datetime

import (
	"fmt"
	"time"
)

const secondsPerDay = 24 * 60 * 60

// TruncateToDay truncates a unixtime to 00:00:00 UTC of its day.
func TruncateToDay(unixtime int64) int64 {
	rem := unixtime % secondsPerDay
	return unixtime - rem
}

// IsNextDay reports whether next is exactly one day after current.
// Both arguments must be day-truncated unixtimes.
func IsNextDay(current, next int64) bool {
	return next == current+secondsPerDay
}

// ToYYYYMMDD converts a unixtime to its UTC calendar date as YYYYMMDD.
func ToYYYYMMDD(unixtime int64) uint32 {
	t := time.Unix(unixtime, 0).UTC()
	return uint32(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// YYYYMMDDToUnix converts a YYYYMMDD date to the unixtime of 00:00:00 UTC.
func YYYYMMDDToUnix(yyyymmdd uint32) int64 {
	t := yyyymmddToTime(yyyymmdd)
	return t.Unix()
}

// NextDate returns the YYYYMMDD date of the following day.
func NextDate(yyyymmdd uint32) uint32 {
	t := yyyymmddToTime(yyyymmdd).AddDate(0, 0, 1)
	return uint32(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

// PrevDate returns the YYYYMMDD date of the preceding day.
func PrevDate(yyyymmdd uint32) uint32 {
	t := yyyymmddToTime(yyyymmdd).AddDate(0, 0, -1)
	return uint32(t.Year()*10000 + int(t.Month())*100 + t.Day())
}

func yyyymmddToTime(yyyymmdd uint32) time.Time {
	year := int(yyyymmdd / 10000)
	month := time.Month(yyyymmdd % 10000 / 100)
	day := int(yyyymmdd % 100)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDuration renders an elapsed duration compactly for periodic reports.
func FormatDuration(d time.Duration) string {
	s := int64(d.Seconds())
	switch {
	case s < 10*60:
		return fmt.Sprintf("%ds", s)
	case s < 120*60:
		return fmt.Sprintf("%dm%ds", s/60, s%60)
	case s < 48*3600:
		return fmt.Sprintf("%dh%dm", s/3600, s%3600/60)
	default:
		return fmt.Sprintf("%dd%dh%dm", s/86400, s%86400/3600, s%3600/60)
	}
}

// WithSeparator renders a count with comma thousands separators.
func WithSeparator(v uint64) string {
	s := fmt.Sprintf("%d", v)
	n := len(s)
	if n <= 3 {
		return s
	}
	out := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
