package expr

import (
	"strings"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/errors"
	"github.com/hoyle1974/dateset"
)

// parseLiteral turns "A", "A..B", "A.." or "..B" into a DateSet. B before A
// produces the wrap-around set described by dateset.Between.
func parseLiteral(text string) (dateset.DateSet, error) {
	from, to, isRange := strings.Cut(text, "..")
	if !isRange {
		d, err := parseDate(text)
		if err != nil {
			return dateset.DateSet{}, err
		}
		return dateset.Single(d), nil
	}

	switch {
	case from == "" && to == "":
		return dateset.DateSet{}, errors.Newf("range %q has no bounds", text)
	case from == "":
		end, err := parseDate(to)
		if err != nil {
			return dateset.DateSet{}, err
		}
		return dateset.OnOrBefore(end), nil
	case to == "":
		start, err := parseDate(from)
		if err != nil {
			return dateset.DateSet{}, err
		}
		return dateset.OnOrAfter(start), nil
	}

	start, err := parseDate(from)
	if err != nil {
		return dateset.DateSet{}, err
	}
	end, err := parseDate(to)
	if err != nil {
		return dateset.DateSet{}, err
	}
	return dateset.Between(start, end), nil
}

func parseDate(text string) (civil.Date, error) {
	d, err := civil.ParseDate(text)
	if err != nil {
		return civil.Date{}, errors.Wrapf(err, "can not parse date %q", text)
	}
	if !dateset.InBounds(d) {
		return civil.Date{}, errors.Wrapf(dateset.ErrInvalidRange, "date %s is outside %s..%s", d, dateset.MinDate, dateset.MaxDate)
	}
	return d, nil
}
