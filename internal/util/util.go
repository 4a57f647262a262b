package util

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last millisecond (23:59:59.999) of t's calendar day in t's location.
func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ParseDate parses a calendar date given as YYYY-MM-DD or RFC 3339.
// Plain dates are interpreted in loc; RFC 3339 values are converted to loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("date is empty")
	}
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return t.In(loc), nil
}

// LoadLocation resolves an IANA zone name; an empty name yields the process's local zone.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "load time zone %q", name)
	}

	return loc, nil
}
