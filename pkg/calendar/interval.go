package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Interval is the half-open span [start, stop) between two moments.
type Interval struct {
	start Moment
	stop  Moment
}

// NewInterval returns ErrInvalidBounds unless start is strictly before stop.
func NewInterval(start, stop Moment) (Interval, error) {
	if !start.Before(stop) {
		return Interval{}, fmt.Errorf("%w: %s is not before %s", ErrInvalidBounds, start, stop)
	}
	return Interval{start: start, stop: stop}, nil
}

// ParseInterval parses the "{start}/{stop}" form produced by String.
func ParseInterval(s string) (Interval, error) {
	startText, stopText, ok := strings.Cut(s, "/")
	if !ok {
		return Interval{}, &ParseError{Input: s, Err: fmt.Errorf("missing '/' separator")}
	}
	start, err := ParseMoment(startText)
	if err != nil {
		return Interval{}, err
	}
	stop, err := ParseMoment(stopText)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, stop)
}

func (i Interval) Start() Moment { return i.start }
func (i Interval) Stop() Moment  { return i.stop }

// Bounds returns the plain interval; granules embedding Interval inherit it.
func (i Interval) Bounds() Interval { return i }

// Compare orders intervals by start, then by stop.
func (i Interval) Compare(other Interval) int {
	if c := i.start.Compare(other.start); c != 0 {
		return c
	}
	return i.stop.Compare(other.stop)
}

func (i Interval) Less(other Interval) bool {
	return i.Compare(other) < 0
}

// Contains reports whether start <= m < stop.
func (i Interval) Contains(m Moment) bool {
	return i.start.BeforeOrEqual(m) && m.Before(i.stop)
}

func (i Interval) Duration() time.Duration {
	return i.stop.Time().Sub(i.start.Time())
}

// String returns the ISO-8601 interval form "{start}/{stop}".
func (i Interval) String() string {
	return i.start.String() + "/" + i.stop.String()
}

func (i Interval) GoString() string {
	return fmt.Sprintf("Interval(start=%#v, stop=%#v)", i.start, i.stop)
}

// spanFrom builds the interval [start, start+length).
func spanFrom(start Moment, length Delta) (Interval, error) {
	stop, err := start.Add(length)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(start, stop)
}
