package calendar

import "fmt"

// Hour spans one clock hour, from hh:00:00 to the start of the next hour.
type Hour struct {
	Interval
}

func NewHour(year, month, day, hour int) (Hour, error) {
	start, err := NewMoment(year, month, day, hour, 0, 0)
	if err != nil {
		return Hour{}, err
	}
	interval, err := spanFrom(start, Delta{Hours: 1})
	if err != nil {
		return Hour{}, err
	}
	return Hour{interval}, nil
}

func HourFromMoment(m Moment) (Hour, error) {
	return NewHour(m.Year(), m.Month(), m.Day(), m.Hour())
}

func (h Hour) Kind() Kind { return KindHour }

func (h Hour) Next() (Hour, error) {
	return HourFromMoment(h.Stop())
}

func (h Hour) Previous() (Hour, error) {
	before, err := justBefore(h.Start())
	if err != nil {
		return Hour{}, err
	}
	return HourFromMoment(before)
}

func (h Hour) Plus(n int) (Hour, error)  { return advance(h, n, Hour.Next, Hour.Previous) }
func (h Hour) Minus(n int) (Hour, error) { return advance(h, -n, Hour.Next, Hour.Previous) }

func (h Hour) Minute(minute int) (Minute, error) {
	s := h.Start()
	return NewMinute(s.Year(), s.Month(), s.Day(), s.Hour(), minute)
}

func (h Hour) Minutes() (Minutes, error) {
	first, err := h.Minute(0)
	if err != nil {
		return Minutes{}, err
	}
	minutes, err := collectUntil(first, h.Stop(), Minute.Next, 0)
	if err != nil {
		return Minutes{}, err
	}
	return NewMinutes(minutes), nil
}

func (h Hour) Day() (Day, error) {
	return DayFromMoment(h.Start())
}

func (h Hour) String() string {
	s := h.Start()
	return fmt.Sprintf("%04d-%02d-%02dT%02d", s.Year(), s.Month(), s.Day(), s.Hour())
}

func (h Hour) GoString() string {
	s := h.Start()
	return fmt.Sprintf("Hour(%d, %d, %d, %d)", s.Year(), s.Month(), s.Day(), s.Hour())
}
