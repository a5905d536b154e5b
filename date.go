package dateset

import (
	"time"

	"cloud.google.com/go/civil"
)

// MinDate and MaxDate are the sentinel bounds used for unbounded intervals.
// Every date handled by this package lies in [MinDate, MaxDate]; arithmetic
// never steps outside that range.
var (
	MinDate = civil.Date{Year: 1, Month: time.January, Day: 1}
	MaxDate = civil.Date{Year: 9999, Month: time.December, Day: 31}
)

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) civil.Date {
	return civil.DateOf(t)
}

// InBounds reports whether d is a valid calendar date between the sentinels.
func InBounds(d civil.Date) bool {
	return d.IsValid() && !d.Before(MinDate) && !d.After(MaxDate)
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func maxDate(a, b civil.Date) civil.Date {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b civil.Date) civil.Date {
	if a.Before(b) {
		return a
	}
	return b
}

// dayAfter must only be called with d < MaxDate.
func dayAfter(d civil.Date) civil.Date {
	return d.AddDays(1)
}

// dayBefore must only be called with d > MinDate.
func dayBefore(d civil.Date) civil.Date {
	return d.AddDays(-1)
}
