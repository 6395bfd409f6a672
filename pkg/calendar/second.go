package calendar

import "fmt"

// Second spans a single second starting at its moment.
type Second struct {
	Interval
}

func NewSecond(year, month, day, hour, minute, second int) (Second, error) {
	start, err := NewMoment(year, month, day, hour, minute, second)
	if err != nil {
		return Second{}, err
	}
	interval, err := spanFrom(start, Delta{Seconds: 1})
	if err != nil {
		return Second{}, err
	}
	return Second{interval}, nil
}

func SecondFromMoment(m Moment) (Second, error) {
	return NewSecond(m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second())
}

func (s Second) Kind() Kind { return KindSecond }

func (s Second) Next() (Second, error) {
	return SecondFromMoment(s.Stop())
}

func (s Second) Previous() (Second, error) {
	before, err := justBefore(s.Start())
	if err != nil {
		return Second{}, err
	}
	return SecondFromMoment(before)
}

func (s Second) Plus(n int) (Second, error)  { return advance(s, n, Second.Next, Second.Previous) }
func (s Second) Minus(n int) (Second, error) { return advance(s, -n, Second.Next, Second.Previous) }

func (s Second) Minute() (Minute, error) {
	return MinuteFromMoment(s.Start())
}

func (s Second) String() string {
	return s.Start().String()
}

func (s Second) GoString() string {
	m := s.Start()
	return fmt.Sprintf("Second(%d, %d, %d, %d, %d, %d)", m.Year(), m.Month(), m.Day(), m.Hour(), m.Minute(), m.Second())
}
