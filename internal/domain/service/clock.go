package service

import "time"

// Clock supplies the current time to date-sensitive business rules.
type Clock interface {
	Now() time.Time
}

type systemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock reading the wall clock in loc.
func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}

	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
