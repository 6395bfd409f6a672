package calendar

import "fmt"

// Minute spans one clock minute, from hh:mm:00 to the start of the next minute.
type Minute struct {
	Interval
}

func NewMinute(year, month, day, hour, minute int) (Minute, error) {
	start, err := NewMoment(year, month, day, hour, minute, 0)
	if err != nil {
		return Minute{}, err
	}
	interval, err := spanFrom(start, Delta{Minutes: 1})
	if err != nil {
		return Minute{}, err
	}
	return Minute{interval}, nil
}

func MinuteFromMoment(m Moment) (Minute, error) {
	return NewMinute(m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute())
}

func (m Minute) Kind() Kind { return KindMinute }

func (m Minute) Next() (Minute, error) {
	return MinuteFromMoment(m.Stop())
}

func (m Minute) Previous() (Minute, error) {
	before, err := justBefore(m.Start())
	if err != nil {
		return Minute{}, err
	}
	return MinuteFromMoment(before)
}

func (m Minute) Plus(n int) (Minute, error)  { return advance(m, n, Minute.Next, Minute.Previous) }
func (m Minute) Minus(n int) (Minute, error) { return advance(m, -n, Minute.Next, Minute.Previous) }

func (m Minute) Second(second int) (Second, error) {
	s := m.Start()
	return NewSecond(s.Year(), s.Month(), s.Day(), s.Hour(), s.Minute(), second)
}

func (m Minute) Seconds() (Seconds, error) {
	first, err := m.Second(0)
	if err != nil {
		return Seconds{}, err
	}
	seconds, err := collectUntil(first, m.Stop(), Second.Next, 0)
	if err != nil {
		return Seconds{}, err
	}
	return NewSeconds(seconds), nil
}

func (m Minute) Hour() (Hour, error) {
	return HourFromMoment(m.Start())
}

func (m Minute) String() string {
	s := m.Start()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d", s.Year(), s.Month(), s.Day(), s.Hour(), s.Minute())
}

func (m Minute) GoString() string {
	s := m.Start()
	return fmt.Sprintf("Minute(%d, %d, %d, %d, %d)", s.Year(), s.Month(), s.Day(), s.Hour(), s.Minute())
}
