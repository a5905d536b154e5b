package dateset

import "slices"

// Relation describes how two date sets are ordered relative to each other.
type Relation int

const (
	// Undefined means at least one side is empty.
	Undefined Relation = iota
	// Before means every date of the receiver precedes every date of the other.
	Before
	// After means every date of the receiver follows every date of the other.
	After
	// Overlapping means neither side lies strictly before the other.
	Overlapping
)

func (r Relation) String() string {
	switch r {
	case Before:
		return "before"
	case After:
		return "after"
	case Overlapping:
		return "overlapping"
	}
	return "undefined"
}

// Contains reports whether every date of op is in s. The empty set is
// contained in every set, including the empty set.
func (s DateSet) Contains(op Operand) bool {
	queries := op.asDateSet().intervals
	intervals := s.intervals

	hits := 0
	i, j := 0, 0
	for i < len(intervals) && j < len(queries) {
		interval, query := intervals[i], queries[j]
		// A contained query is never larger than its interval, so queries
		// advance first.
		if query.Precedes(interval) {
			j++
			continue
		}
		if interval.Contains(query) {
			hits++
			j++
			continue
		}
		if interval.Precedes(query) {
			i++
			continue
		}
		// Partial overlap, or a query wider than the interval.
		return false
	}
	return hits == len(queries)
}

// Equal reports whether s and op hold exactly the same dates.
func (s DateSet) Equal(op Operand) bool {
	return slices.EqualFunc(s.intervals, op.asDateSet().intervals, Interval.Equal)
}

// Relate orders s against op by their extreme dates.
func (s DateSet) Relate(op Operand) Relation {
	other := op.asDateSet()
	earliest, ok := s.Earliest()
	if !ok {
		return Undefined
	}
	otherEarliest, ok := other.Earliest()
	if !ok {
		return Undefined
	}
	latest, _ := s.Latest()
	otherLatest, _ := other.Latest()

	switch {
	case latest.Before(otherEarliest):
		return Before
	case earliest.After(otherLatest):
		return After
	}
	return Overlapping
}

// Before reports whether s lies entirely before op. ok is false when either
// side is empty, in which case the answer is undefined.
func (s DateSet) Before(op Operand) (before bool, ok bool) {
	r := s.Relate(op)
	return r == Before, r != Undefined
}

// After reports whether s lies entirely after op. ok is false when either
// side is empty, in which case the answer is undefined.
func (s DateSet) After(op Operand) (after bool, ok bool) {
	r := s.Relate(op)
	return r == After, r != Undefined
}
