package dateutil

import (
	"fmt"
	"time"
)

const (
	// MinYear and MaxYear bound every civil timestamp: years are always
	// written with four digits.
	MinYear = 1
	MaxYear = 9999
)

var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month (1-12) of year
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// ValidateDate checks that year, month and day form a calendar date
func ValidateDate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year %d is out of range", year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be in 1..12, got %d", month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return fmt.Errorf("day %d is out of range for month %04d-%02d", day, year, month)
	}
	return nil
}

// ValidateClock checks that hour, minute and second form a time of day
func ValidateClock(hour, minute, second int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("hour must be in 0..23, got %d", hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("minute must be in 0..59, got %d", minute)
	}
	if second < 0 || second > 59 {
		return fmt.Errorf("second must be in 0..59, got %d", second)
	}
	return nil
}

// Validate checks all six civil timestamp fields.
// Every constructor in the module goes through this function, so the
// messages are the same wherever an invalid value is rejected.
func Validate(year, month, day, hour, minute, second int) error {
	if err := ValidateDate(year, month, day); err != nil {
		return err
	}
	return ValidateClock(hour, minute, second)
}

// Civil returns the UTC time for the given fields. The fields are not
// validated; out-of-range values are normalized the way time.Date does.
func Civil(year, month, day, hour, minute, second int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// ISOWeekday returns the ISO weekday number: 1 = Monday ... 7 = Sunday
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// StartOfWeek returns the Monday of the week for the given date
func StartOfWeek(date time.Time) time.Time {
	daysFromMonday := ISOWeekday(date) - 1
	return StartOfDay(date.AddDate(0, 0, -daysFromMonday))
}

// ISOWeeksInYear returns 52 or 53, the number of ISO weeks in the ISO week-numbering year.
// December 28 always falls in the last week of its year.
func ISOWeeksInYear(year int) int {
	_, week := Civil(year, 12, 28, 0, 0, 0).ISOWeek()
	return week
}

// FromISOWeek maps an ISO week date to the Gregorian midnight it starts at.
// Week 1 is the week containing January 4, so 2020-W01-1 is 2019-12-30.
func FromISOWeek(year, week, weekday int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("year %d is out of range", year)
	}
	if weeks := ISOWeeksInYear(year); week < 1 || week > weeks {
		return time.Time{}, fmt.Errorf("week must be in 1..%d for %04d, got %d", weeks, year, week)
	}
	if weekday < 1 || weekday > 7 {
		return time.Time{}, fmt.Errorf("weekday must be in 1..7, got %d", weekday)
	}
	monday := StartOfWeek(Civil(year, 1, 4, 0, 0, 0))
	return monday.AddDate(0, 0, (week-1)*7+weekday-1), nil
}

// FromOrdinal maps a 1-based day of year to its Gregorian midnight
func FromOrdinal(year, yday int) (time.Time, error) {
	if year < MinYear || year > MaxYear {
		return time.Time{}, fmt.Errorf("year %d is out of range", year)
	}
	if days := DaysInYear(year); yday < 1 || yday > days {
		return time.Time{}, fmt.Errorf("ordinal day must be in 1..%d for %04d, got %d", days, year, yday)
	}
	return Civil(year, 1, 1, 0, 0, 0).AddDate(0, 0, yday-1), nil
}

// GetWeekNumber returns the ISO week number for the given date
func GetWeekNumber(date time.Time) (year int, week int) {
	year, week = date.ISOWeek()
	return
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// FloorDiv splits n into quotient and a remainder in [0, base), so that
// q*base + r == n even for negative n.
func FloorDiv(n, base int) (q, r int) {
	q, r = n/base, n%base
	if r < 0 {
		q--
		r += base
	}
	return q, r
}
