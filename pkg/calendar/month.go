package calendar

import "fmt"

// Month spans the first day of a calendar month up to the first day of the next.
type Month struct {
	Interval
}

func NewMonth(year, month int) (Month, error) {
	start, err := NewMoment(year, month, 1, 0, 0, 0)
	if err != nil {
		return Month{}, err
	}
	interval, err := spanFrom(start, Delta{Months: 1})
	if err != nil {
		return Month{}, err
	}
	return Month{interval}, nil
}

func MonthFromMoment(m Moment) (Month, error) {
	return NewMonth(m.Year(), m.Month())
}

func (m Month) Kind() Kind { return KindMonth }

func (m Month) Next() (Month, error) {
	return MonthFromMoment(m.Stop())
}

func (m Month) Previous() (Month, error) {
	before, err := justBefore(m.Start())
	if err != nil {
		return Month{}, err
	}
	return MonthFromMoment(before)
}

func (m Month) Plus(n int) (Month, error)  { return advance(m, n, Month.Next, Month.Previous) }
func (m Month) Minus(n int) (Month, error) { return advance(m, -n, Month.Next, Month.Previous) }

// Day returns day (1-31) of the month.
func (m Month) Day(day int) (Day, error) {
	return NewDay(m.Start().Year(), m.Start().Month(), day)
}

// Days walks forward from the first of the month until the month changes,
// which yields 28 to 31 days.
func (m Month) Days() (Days, error) {
	first, err := m.Day(1)
	if err != nil {
		return Days{}, err
	}
	days, err := collectUntil(first, m.Stop(), Day.Next, 0)
	if err != nil {
		return Days{}, err
	}
	return NewDays(days), nil
}

func (m Month) Year() (Year, error) {
	return YearFromMoment(m.Start())
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Start().Year(), m.Start().Month())
}

func (m Month) GoString() string {
	return fmt.Sprintf("Month(%d, %d)", m.Start().Year(), m.Start().Month())
}
