package calendar

import (
	"fmt"
	"time"

	"github.com/username/when-exactly/pkg/dateutil"
)

// Moment is a point in time with second resolution and no time zone.
//
// The zero Moment is not valid; build moments with NewMoment, MomentFromTime
// or by adding a Delta to an existing Moment. Moments are comparable with ==.
type Moment struct {
	year, month, day     int
	hour, minute, second int
}

// NewMoment returns the moment for the given calendar fields, or an
// *InvalidMomentError when they do not form a valid timestamp.
func NewMoment(year, month, day, hour, minute, second int) (Moment, error) {
	if err := dateutil.Validate(year, month, day, hour, minute, second); err != nil {
		return Moment{}, invalidMoment(err)
	}
	return Moment{year, month, day, hour, minute, second}, nil
}

// MomentFromTime returns the moment for t's wall clock, dropping sub-second precision.
func MomentFromTime(t time.Time) (Moment, error) {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return NewMoment(year, int(month), day, hour, minute, second)
}

// Now returns the current local wall-clock moment.
func Now() Moment {
	m, err := MomentFromTime(time.Now())
	if err != nil {
		panic(err)
	}
	return m
}

// Year returns the calendar year (1-9999).
func (m Moment) Year() int { return m.year }

// Month returns the month of the year (1-12).
func (m Moment) Month() int { return m.month }

// Day returns the day of the month (1-31).
func (m Moment) Day() int { return m.day }

// Hour returns the hour of the day (0-23).
func (m Moment) Hour() int { return m.hour }

// Minute returns the minute of the hour (0-59).
func (m Moment) Minute() int { return m.minute }

// Second returns the second of the minute (0-59).
func (m Moment) Second() int { return m.second }

// Time converts the moment to a UTC time.Time.
func (m Moment) Time() time.Time {
	return dateutil.Civil(m.year, m.month, m.day, m.hour, m.minute, m.second)
}

// WeekYear is the ISO week-numbering year, which differs from Year around January 1.
func (m Moment) WeekYear() int {
	year, _ := dateutil.GetWeekNumber(m.Time())
	return year
}

// Week is the ISO week number (1-53).
func (m Moment) Week() int {
	_, week := dateutil.GetWeekNumber(m.Time())
	return week
}

// WeekDay is the ISO weekday: 1 = Monday ... 7 = Sunday.
func (m Moment) WeekDay() int {
	return dateutil.ISOWeekday(m.Time())
}

// OrdinalDay is the 1-based day of the year.
func (m Moment) OrdinalDay() int {
	return m.Time().YearDay()
}

// Compare returns -1, 0 or +1 depending on whether m is before, equal to or after other.
func (m Moment) Compare(other Moment) int {
	return m.Time().Compare(other.Time())
}

func (m Moment) Before(other Moment) bool {
	return m.Compare(other) < 0
}

func (m Moment) BeforeOrEqual(other Moment) bool {
	return m.Compare(other) <= 0
}

func (m Moment) After(other Moment) bool {
	return m.Compare(other) > 0
}

// Add returns m shifted by d.
//
// Years and months are applied to the calendar fields first. When that
// lands past the end of the month the day is clamped, so January 31 plus
// one month is the last day of February, never a day in March. Weeks, days,
// hours, minutes and seconds are then added as flat offsets that carry
// through month and year boundaries.
func (m Moment) Add(d Delta) (Moment, error) {
	var months, years, days, seconds checkedSum
	months.add(m.month - 1)
	months.add(d.Months)
	carry, month := dateutil.FloorDiv(months.v, 12)
	years.add(m.year)
	years.add(d.Years)
	years.add(carry)

	seconds.addScaled(d.Hours, 3600)
	seconds.addScaled(d.Minutes, 60)
	seconds.add(d.Seconds)
	extraDays, rest := dateutil.FloorDiv(seconds.v, 86400)
	days.addScaled(d.Weeks, 7)
	days.add(d.Days)
	days.add(extraDays)

	if months.overflow || years.overflow || seconds.overflow || days.overflow ||
		days.v < -dayLimit || days.v > dayLimit {
		return Moment{}, &InvalidMomentError{Message: fmt.Sprintf("%#v added to %s is out of range", d, m)}
	}

	year := years.v
	month++
	day := m.day
	for day > 28 && dateutil.ValidateDate(year, month, day) != nil {
		day--
	}

	base, err := NewMoment(year, month, day, m.hour, m.minute, m.second)
	if err != nil {
		return Moment{}, err
	}

	t := base.Time().
		AddDate(0, 0, days.v).
		Add(time.Duration(rest) * time.Second)
	return MomentFromTime(t)
}

// dayLimit exceeds the number of days between any two valid moments.
const dayLimit = (dateutil.MaxYear + 1) * 366

// checkedSum accumulates ints and records whether any step wrapped around.
type checkedSum struct {
	v        int
	overflow bool
}

func (s *checkedSum) add(x int) {
	sum := s.v + x
	if (sum > s.v) != (x > 0) {
		s.overflow = true
	}
	s.v = sum
}

// addScaled adds x*factor; factor must be positive.
func (s *checkedSum) addScaled(x, factor int) {
	p := x * factor
	if p/factor != x {
		s.overflow = true
	}
	s.add(p)
}

// Sub returns m shifted back by d; it is Add of the negated delta.
func (m Moment) Sub(d Delta) (Moment, error) {
	return m.Add(d.Negate())
}

// String returns the ISO-8601 form, e.g. 2025-01-30T15:25:30.
func (m Moment) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", m.year, m.month, m.day, m.hour, m.minute, m.second)
}

func (m Moment) GoString() string {
	return fmt.Sprintf("Moment(%d, %d, %d, %d, %d, %d)", m.year, m.month, m.day, m.hour, m.minute, m.second)
}

// justBefore returns the moment one second before m. Every granule tiles
// time without gaps, so the granule holding it is the one ending at m.
func justBefore(m Moment) (Moment, error) {
	return m.Sub(Delta{Seconds: 1})
}
