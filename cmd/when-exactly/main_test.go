package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/username/when-exactly/internal/report"
	"github.com/username/when-exactly/pkg/calendar"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "when-exactly version "+calendar.Version+"\n", out)
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "2025-09-05", "-o", "json")
	require.NoError(t, err)

	var d report.Description
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "day", d.Kind)
	assert.Equal(t, "2025-09-04", d.Previous)
	assert.Contains(t, d.Related, report.Related{Kind: "weekday", Value: "2025-W36-5"})
}

func TestDescribeText(t *testing.T) {
	out, err := run(t, "describe", "2020-W53")
	require.NoError(t, err)
	assert.Contains(t, out, "Week(2020, 53)")
	assert.Contains(t, out, "2021-W01")
}

func TestDescribeNow(t *testing.T) {
	out, err := run(t, "describe", "now", "-o", "json")
	require.NoError(t, err)

	var d report.Description
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "second", d.Kind)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "2020", "weeks", "-o", "yaml")
	require.NoError(t, err)

	var l report.Listing
	require.NoError(t, yaml.Unmarshal([]byte(out), &l))
	assert.Equal(t, 53, l.Count)
	assert.Equal(t, "2020-W01", l.Items[0])

	out, err = run(t, "list", "2025-09-05", "minutes", "--limit", "2", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &l))
	assert.Equal(t, []string{"2025-09-05T00:00", "2025-09-05T00:01"}, l.Items)
}

func TestConvertAndStep(t *testing.T) {
	out, err := run(t, "convert", "2025-09-05", "week", "-o", "json")
	require.NoError(t, err)
	var s report.Shift
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "2025-W36", s.To)

	out, err = run(t, "step", "-o", "json", "2021-W01", "--", "-1")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "2020-W53", s.To)
	assert.Equal(t, -1, s.Steps)
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"month clamps", []string{"add", "2025-01-31T00:00:00", "--by", "P1M"}, "2025-02-28T00:00:00"},
		{"span start", []string{"add", "2025-01-31", "--by", "P1M2D"}, "2025-03-02T00:00:00"},
		{"subtract", []string{"add", "2025-03-01T00:00:00", "--by", "PT1H", "--sub"}, "2025-02-28T23:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append(tt.args, "-o", "json")...)
			require.NoError(t, err)

			var a report.Arithmetic
			require.NoError(t, json.Unmarshal([]byte(out), &a))
			assert.Equal(t, tt.want, a.Result)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains string
	}{
		{"unparseable span", []string{"describe", "someday"}, "invalid span"},
		{"invalid date", []string{"describe", "2025-02-30"}, "invalid moment"},
		{"unknown kind", []string{"list", "2025", "fortnights"}, "unknown kind"},
		{"bad step count", []string{"step", "2025", "many"}, "invalid step count"},
		{"missing period", []string{"add", "2025-01-01T00:00:00"}, "by"},
		{"fractional period", []string{"add", "2025-01-01T00:00:00", "--by", "P1.5D"}, "fractional"},
		{"past the last year", []string{"step", "9998", "1"}, "invalid moment"},
		{"bad output format", []string{"describe", "2025", "-o", "xml"}, "output.format"},
		{"missing config file", []string{"describe", "2025", "--config", "/nonexistent/when-exactly.yaml"}, "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestOutputFromEnvironment(t *testing.T) {
	t.Setenv("WHEN_EXACTLY_OUTPUT_FORMAT", "json")

	out, err := run(t, "convert", "2025-09-05", "month")
	require.NoError(t, err)

	var s report.Shift
	require.NoError(t, json.Unmarshal([]byte(out), &s))
	assert.Equal(t, "2025-09", s.To)
}

func TestLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "when-exactly.log")

	_, err := run(t, "describe", "2025", "--log-file", logFile, "--log-level", "debug")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Describing span")
	assert.Contains(t, string(data), `"timestamp"`)
}
