package report

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/username/when-exactly/pkg/calendar"
)

func TestDescribeDay(t *testing.T) {
	d := Describe(calendar.Must(calendar.NewDay(2025, 9, 5)))

	assert.Equal(t, "day", d.Kind)
	assert.Equal(t, "2025-09-05", d.Value)
	assert.Equal(t, "Day(2025, 9, 5)", d.Repr)
	assert.Equal(t, "2025-09-05T00:00:00", d.Start)
	assert.Equal(t, "2025-09-06T00:00:00", d.Stop)
	assert.Equal(t, "2025-09-04", d.Previous)
	assert.Equal(t, "2025-09-06", d.Next)
	require.NotNil(t, d.Weekend)
	assert.False(t, *d.Weekend)
	assert.Equal(t, []Related{
		{Kind: "weekday", Value: "2025-W36-5"},
		{Kind: "ordinal-day", Value: "2025-248"},
		{Kind: "week", Value: "2025-W36"},
		{Kind: "month", Value: "2025-09"},
		{Kind: "year", Value: "2025"},
	}, d.Related)
}

func TestDescribeWeekday(t *testing.T) {
	d := Describe(calendar.Must(calendar.NewWeekday(2025, 36, 6)))

	require.NotNil(t, d.Weekend)
	assert.True(t, *d.Weekend)
	assert.Contains(t, d.Related, Related{Kind: "day", Value: "2025-09-06"})
	assert.Contains(t, d.Related, Related{Kind: "ordinal-day", Value: "2025-249"})
}

func TestDescribeCoarseAndEdgeSpans(t *testing.T) {
	week := Describe(calendar.Must(calendar.NewWeek(2020, 1)))
	assert.Nil(t, week.Weekend)
	assert.Equal(t, []Related{
		{Kind: "month", Value: "2019-12"},
		{Kind: "year", Value: "2019"},
	}, week.Related)

	last := Describe(calendar.Must(calendar.NewYear(9998)))
	assert.Equal(t, "9997", last.Previous)
	assert.Empty(t, last.Next, "year 9999 cannot be represented")
	assert.Empty(t, last.Related)
}

func TestList(t *testing.T) {
	l, err := List(calendar.Must(calendar.NewYear(2020)), calendar.KindWeek, 0)
	require.NoError(t, err)
	assert.Equal(t, "2020", l.Parent)
	assert.Equal(t, "week", l.Kind)
	assert.Equal(t, 53, l.Count)
	assert.Equal(t, "2020-W01", l.Items[0])
	assert.Equal(t, "2020-W53", l.Items[52])

	l, err = List(calendar.Must(calendar.NewDay(2025, 1, 1)), calendar.KindHour, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-01T00", "2025-01-01T01", "2025-01-01T02"}, l.Items)
}

func TestConvertAndStep(t *testing.T) {
	s, err := Convert(calendar.Must(calendar.NewDay(2025, 9, 5)), calendar.KindWeek)
	require.NoError(t, err)
	assert.Equal(t, Shift{
		From:  "2025-09-05",
		To:    "2025-W36",
		Kind:  "week",
		Start: "2025-09-01T00:00:00",
		Stop:  "2025-09-08T00:00:00",
	}, s)

	s, err = Step(calendar.Must(calendar.NewMonth(2025, 1)), -2)
	require.NoError(t, err)
	assert.Equal(t, "2024-11", s.To)
	assert.Equal(t, -2, s.Steps)

	_, err = Step(calendar.Must(calendar.NewYear(1)), -1)
	assert.Error(t, err)
}

func TestAdd(t *testing.T) {
	m := calendar.Must(calendar.NewMoment(2025, 1, 31, 0, 0, 0))

	a, err := Add(m, calendar.Delta{Months: 1}, false)
	require.NoError(t, err)
	assert.Equal(t, Arithmetic{Moment: "2025-01-31T00:00:00", Delta: "P1M", Result: "2025-02-28T00:00:00"}, a)

	a, err = Add(m, calendar.Delta{Days: 31}, true)
	require.NoError(t, err)
	assert.Equal(t, "-P31D", a.Delta)
	assert.Equal(t, "2024-12-31T00:00:00", a.Result)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteFormats(t *testing.T) {
	d := Describe(calendar.Must(calendar.NewMonth(2025, 9)))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, d))
	var fromJSON Description
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, d, fromJSON)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatYAML, d))
	var fromYAML Description
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, d, fromYAML)

	buf.Reset()
	require.NoError(t, Write(&buf, FormatText, d))
	text := buf.String()
	assert.Contains(t, text, "value:")
	assert.Contains(t, text, "2025-09")
	assert.Contains(t, text, "Month(2025, 9)")
	assert.Contains(t, text, "2025-10")
	assert.NotContains(t, text, "weekend")

	assert.Error(t, Write(&buf, Format("xml"), d))
}
