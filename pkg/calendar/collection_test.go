package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func days(values ...int) []Day {
	out := make([]Day, len(values))
	for i, d := range values {
		out[i] = Must(NewDay(2025, 1, d))
	}
	return out
}

func TestCollectionSortsAndDeduplicates(t *testing.T) {
	c := NewDays(days(5, 1, 3, 1, 5, 2))

	assert.Equal(t, days(1, 2, 3, 5), c.Values())
	assert.Equal(t, 4, c.Len())
	assert.True(t, c.Contains(Must(NewDay(2025, 1, 3))))
	assert.False(t, c.Contains(Must(NewDay(2025, 1, 4))))
}

func TestCollectionGet(t *testing.T) {
	c := NewDays(days(1, 2, 3))

	tests := []struct {
		index int
		want  int
	}{
		{0, 1},
		{2, 3},
		{-1, 3},
		{-3, 1},
	}
	for _, tt := range tests {
		got, err := c.Get(tt.index)
		require.NoError(t, err)
		assert.Equal(t, Must(NewDay(2025, 1, tt.want)), got, "Get(%d)", tt.index)
	}

	for _, index := range []int{3, -4, 100} {
		_, err := c.Get(index)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "Get(%d) = %v", index, err)
	}

	_, err := NewDays(nil).Get(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestCollectionSlice(t *testing.T) {
	c := NewDays(days(1, 2, 3, 4, 5))

	tests := []struct {
		name string
		i, j int
		want []Day
	}{
		{"middle", 1, 3, days(2, 3)},
		{"negative start", -2, 5, days(4, 5)},
		{"clamped stop", 3, 100, days(4, 5)},
		{"clamped start", -100, 2, days(1, 2)},
		{"empty when stop before start", 3, 1, []Day{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Days = c.Slice(tt.i, tt.j)
			require.Equal(t, len(tt.want), got.Len())
			for k, want := range tt.want {
				assert.Equal(t, want, Must(got.Get(k)))
			}
		})
	}

	assert.True(t, c.Slice(0, 2).Equal(NewDays(days(1, 2))), "a slice of Days is a Days")
}

func TestCollectionEqual(t *testing.T) {
	a := NewDays(days(1, 2))
	b := NewDays(days(2, 1, 2))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewDays(days(1, 3))))

	plain := NewCollection(days(1, 2))
	assert.False(t, a.Collection.Equal(plain), "Days and a plain collection differ")
	assert.True(t, plain.Equal(NewCollection(days(2, 1))))
}

func TestCollectionReversedUnsupported(t *testing.T) {
	_, err := NewDays(days(1, 2)).Reversed()
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestCollectionIteratesRepeatedly(t *testing.T) {
	c := NewDays(days(3, 1, 2))

	var first, second []Day
	for d := range c.All() {
		first = append(first, d)
	}
	for d := range c.All() {
		second = append(second, d)
	}
	assert.Equal(t, days(1, 2, 3), first)
	assert.Equal(t, first, second)

	var stopped []Day
	for d := range c.All() {
		stopped = append(stopped, d)
		break
	}
	assert.Equal(t, days(1), stopped)
}

func TestCollectionValuesIsACopy(t *testing.T) {
	c := NewDays(days(1, 2))
	values := c.Values()
	values[0] = Must(NewDay(2030, 1, 1))

	assert.Equal(t, Must(NewDay(2025, 1, 1)), Must(c.Get(0)))
}

func TestCollectionStrings(t *testing.T) {
	c := NewDays(days(2, 1))
	assert.Equal(t, "{2025-01-01, 2025-01-02}", c.String())
	assert.Equal(t, "Days([Day(2025, 1, 1), Day(2025, 1, 2)])", c.GoString())

	months := NewMonths([]Month{Must(NewMonth(2025, 12)), Must(NewMonth(2025, 11))})
	assert.Equal(t, "Months([Month(2025, 11), Month(2025, 12)])", months.GoString())
	assert.Equal(t, "{}", NewWeeks(nil).String())
	assert.Equal(t, "Collection([Day(2025, 1, 1)])", NewCollection(days(1)).GoString())
}

func TestEveryCollectionType(t *testing.T) {
	second := Must(NewSecond(2025, 1, 1, 0, 0, 0))

	assert.Equal(t, 1, NewYears([]Year{Must(NewYear(2025)), Must(NewYear(2025))}).Len())
	assert.Equal(t, 1, NewWeekdays([]Weekday{Must(NewWeekday(2025, 1, 1))}).Len())
	assert.Equal(t, 1, NewOrdinalDays([]OrdinalDay{Must(NewOrdinalDay(2025, 1))}).Len())
	assert.Equal(t, 1, NewHours([]Hour{Must(NewHour(2025, 1, 1, 0))}).Len())
	assert.Equal(t, 1, NewMinutes([]Minute{Must(NewMinute(2025, 1, 1, 0, 0))}).Len())
	assert.Equal(t, 2, NewSeconds([]Second{Must(second.Next()), second}).Len())

	seconds := NewSeconds([]Second{Must(second.Next()), second})
	assert.Equal(t, second, Must(seconds.Get(0)))
	assert.Equal(t, "Seconds([Second(2025, 1, 1, 0, 0, 0), Second(2025, 1, 1, 0, 0, 1)])", seconds.GoString())
}
