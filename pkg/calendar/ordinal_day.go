package calendar

import (
	"fmt"

	"github.com/username/when-exactly/pkg/dateutil"
)

// OrdinalDay is a day located by its 1-based position in the year.
type OrdinalDay struct {
	Interval
}

func NewOrdinalDay(year, yday int) (OrdinalDay, error) {
	t, err := dateutil.FromOrdinal(year, yday)
	if err != nil {
		return OrdinalDay{}, invalidMoment(err)
	}
	start, err := MomentFromTime(t)
	if err != nil {
		return OrdinalDay{}, err
	}
	interval, err := spanFrom(start, Delta{Days: 1})
	if err != nil {
		return OrdinalDay{}, err
	}
	return OrdinalDay{interval}, nil
}

func OrdinalDayFromMoment(m Moment) (OrdinalDay, error) {
	return NewOrdinalDay(m.Year(), m.OrdinalDay())
}

func (o OrdinalDay) Kind() Kind { return KindOrdinalDay }

func (o OrdinalDay) Next() (OrdinalDay, error) {
	return OrdinalDayFromMoment(o.Stop())
}

func (o OrdinalDay) Previous() (OrdinalDay, error) {
	before, err := justBefore(o.Start())
	if err != nil {
		return OrdinalDay{}, err
	}
	return OrdinalDayFromMoment(before)
}

func (o OrdinalDay) Plus(n int) (OrdinalDay, error) {
	return advance(o, n, OrdinalDay.Next, OrdinalDay.Previous)
}

func (o OrdinalDay) Minus(n int) (OrdinalDay, error) {
	return advance(o, -n, OrdinalDay.Next, OrdinalDay.Previous)
}

func (o OrdinalDay) Day() (Day, error) {
	return DayFromMoment(o.Start())
}

func (o OrdinalDay) Weekday() (Weekday, error) {
	return WeekdayFromMoment(o.Start())
}

func (o OrdinalDay) Year() (Year, error) {
	return YearFromMoment(o.Start())
}

func (o OrdinalDay) String() string {
	return fmt.Sprintf("%04d-%03d", o.Start().Year(), o.Start().OrdinalDay())
}

func (o OrdinalDay) GoString() string {
	return fmt.Sprintf("OrdinalDay(%d, %d)", o.Start().Year(), o.Start().OrdinalDay())
}
