package utils

import "time"

// Algeria time location (CET, +01:00, no DST)
var dzLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Africa/Algiers"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

// FromUnixSecondsDZ converts an epoch value in seconds to Algiers time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsDZ(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(dzLoc)
}

// AlgiersMidnight keeps the calendar date of t and pins it to 00:00 Algiers time.
func AlgiersMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, dzLoc)
}

// AtClock places an "HH:MM" clock time on day. ok is false when clock does not parse.
func AtClock(day time.Time, clock string) (time.Time, bool) {
	c, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, false
	}
	d := day.In(dzLoc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, dzLoc), true
}

// ParseDate reads a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, s)
}

// Format helpers
func FormatRFC3339DZ(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dzLoc).Format(time.RFC3339) // e.g. 2025-10-26T09:00:00+01:00
}

func FormatDateDZ(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dzLoc).Format(time.DateOnly)
}

func FormatClockDZ(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(dzLoc).Format("15:04")
}
