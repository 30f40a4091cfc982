package policy

import (
	"time"
)

// Normalize returns the same instant as seen in the reference zone.
func Normalize(t time.Time, ref *time.Location) time.Time {
	if ref == nil {
		return t
	}
	return t.In(ref)
}

// IsInOfficeHours reports whether t falls on a weekday between start:00 and end:00, both inclusive.
// t is taken as is; callers normalize it first.
func IsInOfficeHours(t time.Time, start, end int) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	h := t.Hour()
	if h < start {
		return false
	}
	if h < end {
		return true
	}
	return h == end && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// IsAfterShutdownTime reports whether the time of day of t in ref is at or past shutdownHour:00.
// It holds every day of the week.
func IsAfterShutdownTime(t time.Time, shutdownHour int, ref *time.Location) bool {
	return Normalize(t, ref).Hour() >= shutdownHour
}
