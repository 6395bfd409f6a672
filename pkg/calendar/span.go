package calendar

import "fmt"

// Span is implemented by every granule: Year, Month, Week, Weekday,
// OrdinalDay, Day, Hour, Minute and Second.
type Span interface {
	Bounds() Interval
	Kind() Kind
	String() string
	GoString() string
}

// Must returns v, panicking if err is non-nil. It is meant for literals in
// tests and package-level variables.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func asSpan[T Span](v T, err error) (Span, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Snap returns the granule of the given kind that contains m.
func Snap(kind Kind, m Moment) (Span, error) {
	switch kind {
	case KindSecond:
		v, err := SecondFromMoment(m)
		return asSpan(v, err)
	case KindMinute:
		v, err := MinuteFromMoment(m)
		return asSpan(v, err)
	case KindHour:
		v, err := HourFromMoment(m)
		return asSpan(v, err)
	case KindDay:
		v, err := DayFromMoment(m)
		return asSpan(v, err)
	case KindWeekday:
		v, err := WeekdayFromMoment(m)
		return asSpan(v, err)
	case KindOrdinalDay:
		v, err := OrdinalDayFromMoment(m)
		return asSpan(v, err)
	case KindWeek:
		v, err := WeekFromMoment(m)
		return asSpan(v, err)
	case KindMonth:
		v, err := MonthFromMoment(m)
		return asSpan(v, err)
	case KindYear:
		v, err := YearFromMoment(m)
		return asSpan(v, err)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// Convert re-derives s as a granule of another kind from its start.
func Convert(s Span, kind Kind) (Span, error) {
	return Snap(kind, s.Bounds().Start())
}

// NextSpan returns the granule of the same kind that starts where s stops.
func NextSpan(s Span) (Span, error) {
	return Snap(s.Kind(), s.Bounds().Stop())
}

// PreviousSpan returns the granule of the same kind that stops where s starts.
func PreviousSpan(s Span) (Span, error) {
	before, err := justBefore(s.Bounds().Start())
	if err != nil {
		return nil, err
	}
	return Snap(s.Kind(), before)
}

// Step moves s by n granules, backwards when n is negative.
func Step(s Span, n int) (Span, error) {
	return advance(s, n, NextSpan, PreviousSpan)
}

// Children lists the granules of the given kind that overlap s, in order.
// The first child may start before s, e.g. the first ISO week of a month.
// A positive limit caps the number of granules returned.
func Children(s Span, kind Kind, limit int) ([]Span, error) {
	first, err := Snap(kind, s.Bounds().Start())
	if err != nil {
		return nil, err
	}
	children, err := collectUntil(first, s.Bounds().Stop(), NextSpan, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss of %s: %w", kind, s, err)
	}
	return children, nil
}

// advance applies next n times, or prev -n times when n is negative.
func advance[T any](v T, n int, next, prev func(T) (T, error)) (T, error) {
	step := next
	if n < 0 {
		step, n = prev, -n
	}
	for i := 0; i < n; i++ {
		var err error
		if v, err = step(v); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// collectUntil gathers first and its successors while they start before stop.
func collectUntil[T Span](first T, stop Moment, next func(T) (T, error), limit int) ([]T, error) {
	var out []T
	cur := first
	for cur.Bounds().Start().Before(stop) {
		out = append(out, cur)
		if limit > 0 && len(out) >= limit {
			break
		}
		if !cur.Bounds().Stop().Before(stop) {
			break
		}
		n, err := next(cur)
		if err != nil {
			return nil, err
		}
		cur = n
	}
	return out, nil
}
