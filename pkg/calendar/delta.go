package calendar

import (
	"fmt"

	"github.com/rickb777/period"
)

// Delta is an amount of calendar time that can be added to or subtracted
// from a Moment. Fields are independently signed and never normalized:
// Delta{Months: 12} is not the same as Delta{Years: 1} when it meets a
// February 29.
type Delta struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Negate flips the sign of every field.
func (d Delta) Negate() Delta {
	return Delta{
		Years:   -d.Years,
		Months:  -d.Months,
		Weeks:   -d.Weeks,
		Days:    -d.Days,
		Hours:   -d.Hours,
		Minutes: -d.Minutes,
		Seconds: -d.Seconds,
	}
}

// Plus adds two deltas field by field.
func (d Delta) Plus(other Delta) Delta {
	return Delta{
		Years:   d.Years + other.Years,
		Months:  d.Months + other.Months,
		Weeks:   d.Weeks + other.Weeks,
		Days:    d.Days + other.Days,
		Hours:   d.Hours + other.Hours,
		Minutes: d.Minutes + other.Minutes,
		Seconds: d.Seconds + other.Seconds,
	}
}

func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Period returns d as an ISO-8601 period with the same fields.
func (d Delta) Period() period.Period {
	return period.New(d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds)
}

// String returns the ISO-8601 period form, e.g. P1M2DT3H.
func (d Delta) String() string {
	return d.Period().String()
}

func (d Delta) GoString() string {
	return fmt.Sprintf("Delta(years=%d, months=%d, weeks=%d, days=%d, hours=%d, minutes=%d, seconds=%d)",
		d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds)
}

// DeltaFromPeriod converts an ISO-8601 period. Fractional fields are rejected
// because a Delta has whole-number fields only.
func DeltaFromPeriod(p period.Period) (Delta, error) {
	if !p.YearsDecimal().IsInt() || !p.MonthsDecimal().IsInt() || !p.WeeksDecimal().IsInt() ||
		!p.DaysDecimal().IsInt() || !p.HoursDecimal().IsInt() || !p.MinutesDecimal().IsInt() ||
		!p.SecondsDecimal().IsInt() {
		return Delta{}, fmt.Errorf("period %s has a fractional field", p)
	}
	return Delta{
		Years:   p.Years(),
		Months:  p.Months(),
		Weeks:   p.Weeks(),
		Days:    p.Days(),
		Hours:   p.Hours(),
		Minutes: p.Minutes(),
		Seconds: p.Seconds(),
	}, nil
}

// ParseDelta parses an ISO-8601 period such as P1Y2M, -P3W or PT90M.
func ParseDelta(s string) (Delta, error) {
	p, err := period.Parse(s)
	if err != nil {
		return Delta{}, &ParseError{Input: s, Err: err}
	}
	d, err := DeltaFromPeriod(p)
	if err != nil {
		return Delta{}, &ParseError{Input: s, Err: err}
	}
	return d, nil
}
