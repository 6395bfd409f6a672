package calendar

import (
	"fmt"

	"github.com/username/when-exactly/pkg/dateutil"
)

// Week is an ISO-8601 week: seven days starting on a Monday. Its year is
// the ISO week-numbering year, so Week(2020, 1) starts on 2019-12-30.
type Week struct {
	Interval
}

func NewWeek(year, week int) (Week, error) {
	start, err := isoWeekStart(year, week, 1)
	if err != nil {
		return Week{}, err
	}
	interval, err := spanFrom(start, Delta{Days: 7})
	if err != nil {
		return Week{}, err
	}
	return Week{interval}, nil
}

func WeekFromMoment(m Moment) (Week, error) {
	return NewWeek(m.WeekYear(), m.Week())
}

func isoWeekStart(year, week, weekday int) (Moment, error) {
	t, err := dateutil.FromISOWeek(year, week, weekday)
	if err != nil {
		return Moment{}, invalidMoment(err)
	}
	return MomentFromTime(t)
}

func (w Week) Kind() Kind { return KindWeek }

func (w Week) Next() (Week, error) {
	return WeekFromMoment(w.Stop())
}

func (w Week) Previous() (Week, error) {
	before, err := justBefore(w.Start())
	if err != nil {
		return Week{}, err
	}
	return WeekFromMoment(before)
}

func (w Week) Plus(n int) (Week, error)  { return advance(w, n, Week.Next, Week.Previous) }
func (w Week) Minus(n int) (Week, error) { return advance(w, -n, Week.Next, Week.Previous) }

// Weekday returns day weekday (1 = Monday ... 7 = Sunday) of the week.
func (w Week) Weekday(weekday int) (Weekday, error) {
	return NewWeekday(w.Start().WeekYear(), w.Start().Week(), weekday)
}

func (w Week) Weekdays() (Weekdays, error) {
	weekdays := make([]Weekday, 0, 7)
	for i := 1; i <= 7; i++ {
		wd, err := w.Weekday(i)
		if err != nil {
			return Weekdays{}, err
		}
		weekdays = append(weekdays, wd)
	}
	return NewWeekdays(weekdays), nil
}

// Days returns the same seven days as Weekdays, as Gregorian days.
func (w Week) Days() (Days, error) {
	weekdays, err := w.Weekdays()
	if err != nil {
		return Days{}, err
	}
	days := make([]Day, 0, 7)
	for wd := range weekdays.All() {
		d, err := wd.Day()
		if err != nil {
			return Days{}, err
		}
		days = append(days, d)
	}
	return NewDays(days), nil
}

func (w Week) String() string {
	return fmt.Sprintf("%04d-W%02d", w.Start().WeekYear(), w.Start().Week())
}

func (w Week) GoString() string {
	return fmt.Sprintf("Week(%d, %d)", w.Start().WeekYear(), w.Start().Week())
}
