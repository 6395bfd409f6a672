package calendar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
	}{
		{"second", KindSecond},
		{"Minutes", KindMinute},
		{"HOUR", KindHour},
		{"days", KindDay},
		{"weekday", KindWeekday},
		{"ordinal-day", KindOrdinalDay},
		{"ordinal_days", KindOrdinalDay},
		{"OrdinalDay", KindOrdinalDay},
		{" weeks ", KindWeek},
		{"month", KindMonth},
		{"years", KindYear},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, input := range []string{"", "fortnight", "decade"} {
		_, err := ParseKind(input)
		assert.True(t, errors.Is(err, ErrUnknownKind), "ParseKind(%q) = %v", input, err)
	}
}

func TestKindLevels(t *testing.T) {
	assert.Equal(t, 1, KindSecond.Level())
	assert.Equal(t, 4, KindDay.Level())
	assert.Equal(t, KindDay.Level(), KindWeekday.Level())
	assert.Equal(t, KindDay.Level(), KindOrdinalDay.Level())
	assert.Equal(t, 7, KindYear.Level())
	assert.Equal(t, 0, Kind(99).Level())

	previous := 0
	for _, k := range Kinds() {
		assert.GreaterOrEqual(t, k.Level(), previous, "Kinds() is ordered from finest to coarsest")
		previous = k.Level()
	}
}

func TestKindDeltaMatchesGranuleLength(t *testing.T) {
	m := moment(2025, 3, 10, 0, 0, 0)
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			x, err := Snap(kind, m)
			require.NoError(t, err)
			stop, err := x.Bounds().Start().Add(kind.Delta())
			require.NoError(t, err)
			assert.Equal(t, x.Bounds().Stop(), stop)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ordinal-day", KindOrdinalDay.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
	assert.Len(t, Kinds(), 9)
}
