package dateset

// Union returns the dates in s or in op.
func (s DateSet) Union(op Operand) DateSet {
	return DateSet{intervals: unionIntervals(s.intervals, op.asDateSet().intervals)}
}

// Intersect returns the dates in both s and op.
func (s DateSet) Intersect(op Operand) DateSet {
	return DateSet{intervals: intersectIntervals(s.intervals, op.asDateSet().intervals)}
}

// Difference returns the dates in s that are not in op.
func (s DateSet) Difference(op Operand) DateSet {
	return DateSet{intervals: subtractIntervals(s.intervals, op.asDateSet().intervals)}
}

// Complement returns every date in [MinDate, MaxDate] that is not in s.
func (s DateSet) Complement() DateSet {
	return AllTime().Difference(s)
}

// Subtract returns the dates of minuend that are not in subtrahend. It is
// the way to subtract a set from a bare date or interval.
func Subtract(minuend, subtrahend Operand) DateSet {
	return DateSet{intervals: subtractIntervals(minuend.asDateSet().intervals, subtrahend.asDateSet().intervals)}
}

// Add replaces s with s ∪ op.
func (s *DateSet) Add(op Operand) {
	s.intervals = unionIntervals(s.intervals, op.asDateSet().intervals)
}

// Retain replaces s with s ∩ op.
func (s *DateSet) Retain(op Operand) {
	s.intervals = intersectIntervals(s.intervals, op.asDateSet().intervals)
}

// Remove replaces s with s − op.
func (s *DateSet) Remove(op Operand) {
	s.intervals = subtractIntervals(s.intervals, op.asDateSet().intervals)
}

// interleave merges two ascending interval lists into a new ascending list.
// Ties on start put the shorter interval first.
func interleave(a, b []Interval) []Interval {
	out := make([]Interval, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if compareIntervals(a[i], b[j]) <= 0 {
			out = append(out, a[i])
			i++
		} else {
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	return append(out, b[j:]...)
}

func unionIntervals(a, b []Interval) []Interval {
	merged := interleave(a, b)
	if len(merged) == 0 {
		return nil
	}

	// merged is private, so current can be extended in place.
	out := merged[:0]
	current := merged[0]
	for _, next := range merged[1:] {
		if current.Precedes(next) && !current.RightAdjacent(next) {
			out = append(out, current)
			current = next
			continue
		}
		if next.end.After(current.end) {
			current.end = next.end
		}
	}
	return append(out, current)
}

// intersectIntervals walks the interleaved stream keeping the interval that
// reaches furthest so far. Each input is disjoint, so only pairs drawn from
// different inputs can overlap, and every such pair meets exactly once.
func intersectIntervals(a, b []Interval) []Interval {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	merged := interleave(a, b)

	var out []Interval
	current := merged[0]
	for _, next := range merged[1:] {
		if overlap, ok := current.Intersect(next); ok {
			out = append(out, overlap)
		}
		if next.end.After(current.end) {
			current = next
		}
	}
	return out
}

// subtractIntervals removes every subtrahend interval from every minuend
// interval. A piece left over on the right of a subtrahend is carried on to
// the following subtrahends before it is emitted.
func subtractIntervals(minuend, subtrahend []Interval) []Interval {
	if len(minuend) == 0 {
		return nil
	}
	out := make([]Interval, 0, len(minuend))
	j := 0
	for _, current := range minuend {
		for j < len(subtrahend) && subtrahend[j].Precedes(current) {
			j++
		}

		consumed := false
		for j < len(subtrahend) && !current.Precedes(subtrahend[j]) {
			sub := subtrahend[j]
			pieces := current.Subtract(sub)
			if len(pieces) == 0 {
				// sub may still reach into the next minuend interval.
				consumed = true
				break
			}
			if len(pieces) == 2 {
				out = append(out, pieces[0])
				current = pieces[1]
				j++
				continue
			}
			if pieces[0].end.Before(sub.start) {
				// Only a left piece survives; sub runs past current.
				current = pieces[0]
				break
			}
			current = pieces[0]
			j++
		}
		if !consumed {
			out = append(out, current)
		}
	}
	return out
}
