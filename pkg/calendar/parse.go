package calendar

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

type spanFormat struct {
	pattern *regexp.Regexp
	build   func(f []int) (Span, error)
}

// spanFormats lists the canonical String forms of every granule.
var spanFormats = []spanFormat{
	{regexp.MustCompile(`^(\d{4})$`), func(f []int) (Span, error) {
		return asSpan(NewYear(f[0]))
	}},
	{regexp.MustCompile(`^(\d{4})-(\d{2})$`), func(f []int) (Span, error) {
		return asSpan(NewMonth(f[0], f[1]))
	}},
	{regexp.MustCompile(`^(\d{4})-(\d{3})$`), func(f []int) (Span, error) {
		return asSpan(NewOrdinalDay(f[0], f[1]))
	}},
	{regexp.MustCompile(`^(\d{4})-W(\d{2})$`), func(f []int) (Span, error) {
		return asSpan(NewWeek(f[0], f[1]))
	}},
	{regexp.MustCompile(`^(\d{4})-W(\d{2})-(\d)$`), func(f []int) (Span, error) {
		return asSpan(NewWeekday(f[0], f[1], f[2]))
	}},
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`), func(f []int) (Span, error) {
		return asSpan(NewDay(f[0], f[1], f[2]))
	}},
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2})$`), func(f []int) (Span, error) {
		return asSpan(NewHour(f[0], f[1], f[2], f[3]))
	}},
	{regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2})$`), func(f []int) (Span, error) {
		return asSpan(NewMinute(f[0], f[1], f[2], f[3], f[4]))
	}},
	{momentPattern, func(f []int) (Span, error) {
		return asSpan(NewSecond(f[0], f[1], f[2], f[3], f[4], f[5]))
	}},
}

var momentPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})T(\d{2}):(\d{2}):(\d{2})$`)

var errUnrecognized = errors.New("not a recognized granule format")

// Parse reads any granule from its String form, e.g. "2025", "2025-09",
// "2025-248", "2025-W36", "2025-W36-5", "2025-09-05", "2025-09-05T14",
// "2025-09-05T14:30" or "2025-09-05T14:30:15".
func Parse(s string) (Span, error) {
	text := strings.TrimSpace(s)
	for _, format := range spanFormats {
		fields, ok := matchFields(format.pattern, text)
		if !ok {
			continue
		}
		span, err := format.build(fields)
		if err != nil {
			return nil, &ParseError{Input: s, Err: err}
		}
		return span, nil
	}
	return nil, &ParseError{Input: s, Err: errUnrecognized}
}

// ParseMoment reads the String form of a Moment, e.g. 2025-01-30T15:25:30.
func ParseMoment(s string) (Moment, error) {
	fields, ok := matchFields(momentPattern, strings.TrimSpace(s))
	if !ok {
		return Moment{}, &ParseError{Input: s, Err: errUnrecognized}
	}
	m, err := NewMoment(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5])
	if err != nil {
		return Moment{}, &ParseError{Input: s, Err: err}
	}
	return m, nil
}

func matchFields(pattern *regexp.Regexp, s string) ([]int, bool) {
	groups := pattern.FindStringSubmatch(s)
	if groups == nil {
		return nil, false
	}
	fields := make([]int, len(groups)-1)
	for i, g := range groups[1:] {
		n, err := strconv.Atoi(g)
		if err != nil {
			return nil, false
		}
		fields[i] = n
	}
	return fields, true
}
