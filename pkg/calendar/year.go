package calendar

import (
	"fmt"

	"github.com/username/when-exactly/pkg/dateutil"
)

// Year spans January 1 00:00:00 up to January 1 of the following year.
type Year struct {
	Interval
}

func NewYear(year int) (Year, error) {
	start, err := NewMoment(year, 1, 1, 0, 0, 0)
	if err != nil {
		return Year{}, err
	}
	interval, err := spanFrom(start, Delta{Years: 1})
	if err != nil {
		return Year{}, err
	}
	return Year{interval}, nil
}

// YearFromMoment returns the calendar year containing m.
func YearFromMoment(m Moment) (Year, error) {
	return NewYear(m.Year())
}

func (y Year) Kind() Kind { return KindYear }

func (y Year) Next() (Year, error) {
	return YearFromMoment(y.Stop())
}

func (y Year) Previous() (Year, error) {
	before, err := justBefore(y.Start())
	if err != nil {
		return Year{}, err
	}
	return YearFromMoment(before)
}

func (y Year) Plus(n int) (Year, error)  { return advance(y, n, Year.Next, Year.Previous) }
func (y Year) Minus(n int) (Year, error) { return advance(y, -n, Year.Next, Year.Previous) }

// Month returns month (1-12) of the year.
func (y Year) Month(month int) (Month, error) {
	return NewMonth(y.Start().Year(), month)
}

// Months always holds twelve months, January first.
func (y Year) Months() (Months, error) {
	months := make([]Month, 0, 12)
	for month := 1; month <= 12; month++ {
		m, err := y.Month(month)
		if err != nil {
			return Months{}, err
		}
		months = append(months, m)
	}
	return NewMonths(months), nil
}

// Week returns ISO week number week of the ISO year with the same number.
func (y Year) Week(week int) (Week, error) {
	return NewWeek(y.Start().Year(), week)
}

// Weeks holds the 52 or 53 weeks of the ISO year with the same number.
// The first may start in December of the previous calendar year.
func (y Year) Weeks() (Weeks, error) {
	count := dateutil.ISOWeeksInYear(y.Start().Year())
	weeks := make([]Week, 0, count)
	for week := 1; week <= count; week++ {
		w, err := y.Week(week)
		if err != nil {
			return Weeks{}, err
		}
		weeks = append(weeks, w)
	}
	return NewWeeks(weeks), nil
}

// OrdinalDay returns day number yday (1-366) of the year.
func (y Year) OrdinalDay(yday int) (OrdinalDay, error) {
	return NewOrdinalDay(y.Start().Year(), yday)
}

func (y Year) String() string {
	return fmt.Sprintf("%04d", y.Start().Year())
}

func (y Year) GoString() string {
	return fmt.Sprintf("Year(%d)", y.Start().Year())
}
