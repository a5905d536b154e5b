package dateset

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
)

// Operand is anything the set operations accept on their right-hand side: a
// Day, an Interval or a DateSet. The interface is sealed.
type Operand interface {
	asDateSet() DateSet
}

// Day is a single date used as an operand. It behaves like a one-day DateSet.
type Day struct {
	civil.Date
}

// On wraps d as an Operand.
func On(d civil.Date) Day {
	return Day{Date: d}
}

func (d Day) asDateSet() DateSet {
	return DateSet{intervals: []Interval{{start: d.Date, end: d.Date}}}
}

func (iv Interval) asDateSet() DateSet {
	return DateSet{intervals: []Interval{iv}}
}

// asDateSet shares s's storage. Callers in this package treat operands as
// read only.
func (s DateSet) asDateSet() DateSet {
	return s
}

// Lift converts v into a DateSet. It accepts DateSet, *DateSet, Interval,
// Day, civil.Date and time.Time; anything else yields ErrUnsupportedOperand.
func Lift(v any) (DateSet, error) {
	switch o := v.(type) {
	case DateSet:
		return o.Clone(), nil
	case *DateSet:
		if o == nil {
			return DateSet{}, errors.Wrap(ErrUnsupportedOperand, "nil *DateSet")
		}
		return o.Clone(), nil
	case Interval:
		return o.asDateSet(), nil
	case Day:
		if !InBounds(o.Date) {
			return DateSet{}, errors.Wrapf(ErrInvalidRange, "date out of bounds: %s", o.Date)
		}
		return o.asDateSet(), nil
	case civil.Date:
		return Lift(On(o))
	case time.Time:
		return Lift(On(DateOf(o)))
	}
	return DateSet{}, errors.Wrapf(ErrUnsupportedOperand, "%T", v)
}
