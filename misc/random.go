package misc

import (
	"math/rand"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
)

// RandomDateBetween picks a date in [start, end] using r.
func RandomDateBetween(r *rand.Rand, start, end civil.Date) (civil.Date, error) {
	if end.Before(start) {
		return civil.Date{}, errors.Newf("end date must not be before start date: %s > %s", start, end)
	}

	days := end.DaysSince(start)
	return start.AddDays(r.Intn(days + 1)), nil
}

// RandomSpanBetween picks start <= end, both in [lo, hi].
func RandomSpanBetween(r *rand.Rand, lo, hi civil.Date) (civil.Date, civil.Date, error) {
	a, err := RandomDateBetween(r, lo, hi)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	b, err := RandomDateBetween(r, lo, hi)
	if err != nil {
		return civil.Date{}, civil.Date{}, err
	}
	if b.Before(a) {
		a, b = b, a
	}
	return a, b, nil
}
