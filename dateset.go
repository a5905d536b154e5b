package dateset

import (
	"iter"
	"slices"
	"sort"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
)

// DateSet is a set of calendar dates stored as sorted, disjoint, non-adjacent
// closed intervals. The zero value is the empty set.
//
// DateSet is a value type. Operations never write to storage reachable from
// an operand; every result owns freshly allocated intervals.
type DateSet struct {
	intervals []Interval
}

// New returns the empty set.
func New() DateSet {
	return DateSet{}
}

// Between returns every date from start through end inclusive.
//
// When start is after end the result wraps around the sentinels: if start is
// exactly the day after end the result is all time, otherwise it is
// [MinDate, end] plus [start, MaxDate]. Both dates must satisfy InBounds.
func Between(start, end civil.Date) DateSet {
	if !start.After(end) {
		return DateSet{intervals: []Interval{{start: start, end: end}}}
	}
	if start.DaysSince(end) <= 1 {
		return AllTime()
	}
	return DateSet{intervals: []Interval{
		{start: MinDate, end: end},
		{start: start, end: MaxDate},
	}}
}

// AllTime returns [MinDate, MaxDate].
func AllTime() DateSet {
	return DateSet{intervals: []Interval{{start: MinDate, end: MaxDate}}}
}

// Single returns the set holding only d.
func Single(d civil.Date) DateSet {
	return On(d).asDateSet()
}

func OnOrAfter(d civil.Date) DateSet {
	return Since(d).asDateSet()
}

func OnOrBefore(d civil.Date) DateSet {
	return Until(d).asDateSet()
}

func FromInterval(iv Interval) DateSet {
	return iv.asDateSet()
}

// FromList folds union over ops.
func FromList(ops ...Operand) DateSet {
	var s DateSet
	for _, op := range ops {
		s.Add(op)
	}
	return s
}

// Clone returns a copy of s that shares no storage with it.
func (s DateSet) Clone() DateSet {
	return DateSet{intervals: slices.Clone(s.intervals)}
}

// Len is the number of intervals in s.
func (s DateSet) Len() int {
	return len(s.intervals)
}

func (s DateSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

func (s DateSet) IsAllTime() bool {
	return len(s.intervals) == 1 && s.intervals[0].start == MinDate && s.intervals[0].end == MaxDate
}

// Intervals yields each interval in ascending order.
func (s DateSet) Intervals() iter.Seq[Interval] {
	return slices.Values(s.intervals)
}

// Earliest returns the first date in s. ok is false when s is empty.
func (s DateSet) Earliest() (d civil.Date, ok bool) {
	if len(s.intervals) == 0 {
		return civil.Date{}, false
	}
	return s.intervals[0].start, true
}

// Latest returns the last date in s. ok is false when s is empty.
func (s DateSet) Latest() (d civil.Date, ok bool) {
	if len(s.intervals) == 0 {
		return civil.Date{}, false
	}
	return s.intervals[len(s.intervals)-1].end, true
}

// DayCount is the number of dates in s.
func (s DateSet) DayCount() int {
	total := 0
	for _, iv := range s.intervals {
		total += iv.Span()
	}
	return total
}

// ContainsDate reports whether d is a member of s.
func (s DateSet) ContainsDate(d civil.Date) bool {
	// First interval that does not end before d.
	index := sort.Search(len(s.intervals), func(j int) bool {
		return !s.intervals[j].end.Before(d)
	})
	return index < len(s.intervals) && s.intervals[index].ContainsDate(d)
}

// Validate checks that s is in canonical form.
func (s DateSet) Validate() error {
	for i, iv := range s.intervals {
		if !InBounds(iv.start) || !InBounds(iv.end) || iv.start.After(iv.end) {
			return errors.Wrapf(ErrNotCanonical, "interval %d is invalid: %s", i, iv)
		}
		if i == 0 {
			continue
		}
		prev := s.intervals[i-1]
		if !prev.Precedes(iv) {
			return errors.Wrapf(ErrNotCanonical, "intervals %d and %d overlap or are out of order: %s %s", i-1, i, prev, iv)
		}
		if prev.RightAdjacent(iv) {
			return errors.Wrapf(ErrNotCanonical, "intervals %d and %d are adjacent: %s %s", i-1, i, prev, iv)
		}
	}
	return nil
}
