package calendar

import "fmt"

// Weekday is a day located by its ISO week date: ISO year, week and
// weekday number (1 = Monday ... 7 = Sunday).
type Weekday struct {
	Interval
}

func NewWeekday(year, week, weekday int) (Weekday, error) {
	start, err := isoWeekStart(year, week, weekday)
	if err != nil {
		return Weekday{}, err
	}
	interval, err := spanFrom(start, Delta{Days: 1})
	if err != nil {
		return Weekday{}, err
	}
	return Weekday{interval}, nil
}

func WeekdayFromMoment(m Moment) (Weekday, error) {
	return NewWeekday(m.WeekYear(), m.Week(), m.WeekDay())
}

func (w Weekday) Kind() Kind { return KindWeekday }

func (w Weekday) Next() (Weekday, error) {
	return WeekdayFromMoment(w.Stop())
}

func (w Weekday) Previous() (Weekday, error) {
	before, err := justBefore(w.Start())
	if err != nil {
		return Weekday{}, err
	}
	return WeekdayFromMoment(before)
}

func (w Weekday) Plus(n int) (Weekday, error)  { return advance(w, n, Weekday.Next, Weekday.Previous) }
func (w Weekday) Minus(n int) (Weekday, error) { return advance(w, -n, Weekday.Next, Weekday.Previous) }

func (w Weekday) Week() (Week, error) {
	return WeekFromMoment(w.Start())
}

// Day returns the same day in Gregorian year-month-day form.
func (w Weekday) Day() (Day, error) {
	return DayFromMoment(w.Start())
}

func (w Weekday) OrdinalDay() (OrdinalDay, error) {
	return OrdinalDayFromMoment(w.Start())
}

func (w Weekday) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", w.Start().WeekYear(), w.Start().Week(), w.Start().WeekDay())
}

func (w Weekday) GoString() string {
	return fmt.Sprintf("Weekday(%d, %d, %d)", w.Start().WeekYear(), w.Start().Week(), w.Start().WeekDay())
}
