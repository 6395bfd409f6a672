package calendar

import (
	"fmt"
	"strings"
)

// Kind names a granule type.
type Kind int

const (
	KindSecond Kind = iota + 1
	KindMinute
	KindHour
	KindDay
	KindWeekday
	KindOrdinalDay
	KindWeek
	KindMonth
	KindYear
)

var kindNames = map[Kind]string{
	KindSecond:     "second",
	KindMinute:     "minute",
	KindHour:       "hour",
	KindDay:        "day",
	KindWeekday:    "weekday",
	KindOrdinalDay: "ordinal-day",
	KindWeek:       "week",
	KindMonth:      "month",
	KindYear:       "year",
}

// Kinds returns every kind from the finest to the coarsest.
func Kinds() []Kind {
	return []Kind{KindSecond, KindMinute, KindHour, KindDay, KindWeekday, KindOrdinalDay, KindWeek, KindMonth, KindYear}
}

// ParseKind accepts a kind name in singular or plural form, in any case,
// with '-', '_' or nothing between words: "days", "Ordinal_Day", "weekdays".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "", "-", "", " ", "").Replace(name)
	name = strings.TrimSuffix(name, "s")
	for _, k := range Kinds() {
		if strings.ReplaceAll(k.String(), "-", "") == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Level is the precision level: 1 for seconds up to 7 for years. The three
// day representations share level 4.
func (k Kind) Level() int {
	switch k {
	case KindSecond:
		return 1
	case KindMinute:
		return 2
	case KindHour:
		return 3
	case KindDay, KindWeekday, KindOrdinalDay:
		return 4
	case KindWeek:
		return 5
	case KindMonth:
		return 6
	case KindYear:
		return 7
	}
	return 0
}

// Delta is the step between the starts of two adjacent granules of the kind.
func (k Kind) Delta() Delta {
	switch k {
	case KindSecond:
		return Delta{Seconds: 1}
	case KindMinute:
		return Delta{Minutes: 1}
	case KindHour:
		return Delta{Hours: 1}
	case KindDay, KindWeekday, KindOrdinalDay:
		return Delta{Days: 1}
	case KindWeek:
		return Delta{Weeks: 1}
	case KindMonth:
		return Delta{Months: 1}
	case KindYear:
		return Delta{Years: 1}
	}
	return Delta{}
}
