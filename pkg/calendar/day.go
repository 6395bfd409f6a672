package calendar

import (
	"fmt"

	"github.com/username/when-exactly/pkg/dateutil"
)

// Day spans midnight to midnight of a Gregorian year-month-day date.
//
// Weekday and OrdinalDay cover the same 24 hours located by ISO week date
// and by day of year; all three convert into each other.
type Day struct {
	Interval
}

func NewDay(year, month, day int) (Day, error) {
	start, err := NewMoment(year, month, day, 0, 0, 0)
	if err != nil {
		return Day{}, err
	}
	interval, err := spanFrom(start, Delta{Days: 1})
	if err != nil {
		return Day{}, err
	}
	return Day{interval}, nil
}

func DayFromMoment(m Moment) (Day, error) {
	return NewDay(m.Year(), m.Month(), m.Day())
}

func (d Day) Kind() Kind { return KindDay }

func (d Day) Next() (Day, error) {
	return DayFromMoment(d.Stop())
}

func (d Day) Previous() (Day, error) {
	before, err := justBefore(d.Start())
	if err != nil {
		return Day{}, err
	}
	return DayFromMoment(before)
}

func (d Day) Plus(n int) (Day, error)  { return advance(d, n, Day.Next, Day.Previous) }
func (d Day) Minus(n int) (Day, error) { return advance(d, -n, Day.Next, Day.Previous) }

// Hour returns hour (0-23) of the day.
func (d Day) Hour(hour int) (Hour, error) {
	s := d.Start()
	return NewHour(s.Year(), s.Month(), s.Day(), hour)
}

func (d Day) Hours() (Hours, error) {
	first, err := d.Hour(0)
	if err != nil {
		return Hours{}, err
	}
	hours, err := collectUntil(first, d.Stop(), Hour.Next, 0)
	if err != nil {
		return Hours{}, err
	}
	return NewHours(hours), nil
}

func (d Day) Month() (Month, error) {
	return MonthFromMoment(d.Start())
}

func (d Day) Year() (Year, error) {
	return YearFromMoment(d.Start())
}

// Week returns the ISO week the day belongs to.
func (d Day) Week() (Week, error) {
	return WeekFromMoment(d.Start())
}

func (d Day) Weekday() (Weekday, error) {
	return WeekdayFromMoment(d.Start())
}

func (d Day) OrdinalDay() (OrdinalDay, error) {
	return OrdinalDayFromMoment(d.Start())
}

// IsWeekend reports whether the day is a Saturday or a Sunday.
func (d Day) IsWeekend() bool {
	return dateutil.IsWeekend(d.Start().Time())
}

func (d Day) String() string {
	s := d.Start()
	return fmt.Sprintf("%04d-%02d-%02d", s.Year(), s.Month(), s.Day())
}

func (d Day) GoString() string {
	s := d.Start()
	return fmt.Sprintf("Day(%d, %d, %d)", s.Year(), s.Month(), s.Day())
}
