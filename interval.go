package dateset

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
)

// Interval is a closed range of calendar dates [start, end]. Both ends are
// inclusive and start <= end always holds.
//
// The zero Interval is [0000-00-00, 0000-00-00] and is not meaningful; build
// intervals with NewInterval, MustInterval, Since or Until.
type Interval struct {
	start civil.Date
	end   civil.Date
}

// NewInterval returns [start, end]. It fails with ErrInvalidRange when
// start > end or when either date is not a valid date within the sentinels.
func NewInterval(start, end civil.Date) (Interval, error) {
	if !InBounds(start) || !InBounds(end) {
		return Interval{}, errors.Wrapf(ErrInvalidRange, "dates must lie within %s and %s: %s, %s", MinDate, MaxDate, start, end)
	}
	if start.After(end) {
		return Interval{}, errors.Wrapf(ErrInvalidRange, "end cannot be before start: %s > %s", start, end)
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval is like NewInterval but panics on error.
func MustInterval(start, end civil.Date) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// Since returns [start, MaxDate].
func Since(start civil.Date) Interval {
	return MustInterval(start, MaxDate)
}

// Until returns [MinDate, end].
func Until(end civil.Date) Interval {
	return MustInterval(MinDate, end)
}

func (iv Interval) Start() civil.Date { return iv.start }
func (iv Interval) End() civil.Date   { return iv.end }

// Contains reports whether x lies entirely within iv.
func (iv Interval) Contains(x Interval) bool {
	return !iv.start.After(x.start) && !iv.end.Before(x.end)
}

func (iv Interval) ContainsDate(d civil.Date) bool {
	return !d.Before(iv.start) && !d.After(iv.end)
}

// Precedes reports whether iv ends strictly before x starts.
func (iv Interval) Precedes(x Interval) bool {
	return iv.end.Before(x.start)
}

// Follows reports whether iv starts strictly after x ends.
func (iv Interval) Follows(x Interval) bool {
	return iv.start.After(x.end)
}

func (iv Interval) PrecedesDate(d civil.Date) bool {
	return iv.end.Before(d)
}

func (iv Interval) FollowsDate(d civil.Date) bool {
	return iv.start.After(d)
}

// Intersects reports whether iv and x share at least one day.
func (iv Interval) Intersects(x Interval) bool {
	return !iv.end.Before(x.start) && !iv.start.After(x.end)
}

func (iv Interval) Disjoint(x Interval) bool {
	return !iv.Intersects(x)
}

// Intersect returns the days common to iv and x. The boolean is false when
// they do not overlap.
func (iv Interval) Intersect(x Interval) (Interval, bool) {
	start := maxDate(iv.start, x.start)
	end := minDate(iv.end, x.end)
	if start.After(end) {
		return Interval{}, false
	}
	return Interval{start: start, end: end}, true
}

// Subtract removes the days of x from iv. The result holds zero, one or two
// intervals in ascending order.
func (iv Interval) Subtract(x Interval) []Interval {
	if iv.start.Before(x.start) {
		if iv.end.Before(x.start) {
			// (..) [..]
			return []Interval{iv}
		}
		if iv.end.After(x.end) {
			// (..[::]..)
			return []Interval{
				{start: iv.start, end: dayBefore(x.start)},
				{start: dayAfter(x.end), end: iv.end},
			}
		}
		// (..[::)..] or (...[:::])
		return []Interval{{start: iv.start, end: dayBefore(x.start)}}
	}
	if iv.start.After(x.end) {
		// [..] (..)
		return []Interval{iv}
	}
	if iv.end.After(x.end) {
		// [..(::]..) or ([:::]...)
		return []Interval{{start: dayAfter(x.end), end: iv.end}}
	}
	// [(::::)] [..(::)..] [(:::)...] [...(:::)]
	return nil
}

// RightAdjacent reports whether x starts the day after iv ends.
func (iv Interval) RightAdjacent(x Interval) bool {
	return x.start.DaysSince(iv.end) == 1
}

// LeftAdjacent reports whether iv starts the day after x ends.
func (iv Interval) LeftAdjacent(x Interval) bool {
	return iv.start.DaysSince(x.end) == 1
}

// Span is the number of days in iv, counting both ends.
func (iv Interval) Span() int {
	return iv.end.DaysSince(iv.start) + 1
}

func (iv Interval) Equal(x Interval) bool {
	return iv.start == x.start && iv.end == x.end
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%s, %s]", iv.start, iv.end)
}

// compareIntervals orders by start, then by end so the shorter of two
// intervals sharing a start comes first.
func compareIntervals(a, b Interval) int {
	if c := compareDates(a.start, b.start); c != 0 {
		return c
	}
	return compareDates(a.end, b.end)
}
