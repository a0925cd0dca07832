package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
	"github.com/reugn/go-calendar/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, limit int) (*app, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cfg := settings{
		level:  logger.LevelInfo,
		offset: calendar.MustParseOffset("+02:00"),
		limit:  limit,
	}
	a := newApp(cfg, &out, metrics.New(prometheus.NewRegistry()))
	a.now = func() time.Time {
		return time.Date(2024, time.March, 10, 22, 30, 0, 0, time.UTC)
	}
	return a, &out
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name: "parse date",
			args: []string{"parse", "2024-02-29"},
			expected: "date 2024-02-29\nday-of-week THURSDAY\nday-of-year 60\n" +
				"leap-year true\nepoch-day 19782\n",
		},
		{
			name: "parse date-time with default offset",
			args: []string{"parse", "2024-02-29T10:15"},
			expected: "offset-date-time 2024-02-29T10:15+02:00\ninstant 2024-02-29T08:15Z\n" +
				"epoch-second 1709194500\nday-of-week THURSDAY\n",
		},
		{
			name:     "parse period",
			args:     []string{"parse", "P1Y14M"},
			expected: "period P1Y14M\nnormalized P2Y2M\ntotal-months 26\n",
		},
		{
			name:     "parse year",
			args:     []string{"parse", "2024"},
			expected: "year 2024\nleap-year true\nlength 366\n",
		},
		{
			name:     "parse offset",
			args:     []string{"parse", "-0330"},
			expected: "offset -03:30\ntotal-seconds -12600\n",
		},
		{
			name:     "plus date",
			args:     []string{"plus", "2024-01-31", "P1M"},
			expected: "2024-02-29\n",
		},
		{
			name:     "minus date-time",
			args:     []string{"minus", "2024-03-31T10:00+01:00", "P1M"},
			expected: "2024-02-29T10:00+01:00\n",
		},
		{
			name:     "between",
			args:     []string{"between", "2024-01-15", "2025-03-18"},
			expected: "period P1Y2M3D\ndays 428\n",
		},
		{
			name:     "dates",
			args:     []string{"dates", "2024-01-30", "2024-02-02"},
			expected: "2024-01-30\n2024-01-31\n2024-02-01\n",
		},
		{
			name:     "dates with step",
			args:     []string{"dates", "2024-01-31", "2024-06-01", "P1M"},
			expected: "2024-01-31\n2024-02-29\n2024-03-31\n2024-04-30\n2024-05-31\n",
		},
		{
			name: "next",
			args: []string{"next", "-from", "2024-01-31T09:00+01:00", "-n", "3", "monthly=P1M"},
			expected: "monthly 2024-02-29T09:00+01:00\nmonthly 2024-03-31T09:00+01:00\n" +
				"monthly 2024-04-30T09:00+01:00\n",
		},
		{
			name: "next from now",
			args: []string{"next", "-n", "2", "morning=0 9 * * *", "soon=once:P1D"},
			expected: "morning 2024-03-11T09:00+02:00\n" +
				"soon 2024-03-12T00:30+02:00\n",
		},
		{
			name:     "offset",
			args:     []string{"offset", "+05:30"},
			expected: "offset +05:30\ntotal-seconds 19800\n",
		},
		{
			name: "ecma119",
			args: []string{"ecma119", "2015-07-31T19:00:15Z"},
			expected: "datetime 73071f13000f00\n" +
				"long-datetime 3230313530373331313930303135303000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, out := newTestApp(t, 100)
			require.NoError(t, a.run(tt.args))
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestApp_DatesLimit(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, 2)
	require.NoError(t, a.run([]string{"dates", "2024-01-01", "2024-12-31"}))
	assert.Equal(t, "2024-01-01\n2024-01-02\n", out.String())

	out.Reset()
	require.NoError(t, a.run([]string{"next", "-from", "2024-01-01T00:00Z", "-n", "10", "d=P1D"}))
	assert.Equal(t, "d 2024-01-02T00:00Z\nd 2024-01-03T00:00Z\n", out.String())
}

func TestApp_Errors(t *testing.T) {
	t.Parallel()

	a, _ := newTestApp(t, 100)

	assert.ErrorIs(t, a.run([]string{"unknown"}), errUsage)
	assert.ErrorIs(t, a.run([]string{"plus", "2024-01-01"}), errUsage)
	assert.ErrorIs(t, a.run([]string{"next", "-from", "2024-01-01T00:00Z"}), errUsage)

	assert.ErrorIs(t, a.run([]string{"parse", "2024-13-01"}), calendar.ErrParse)
	assert.ErrorIs(t, a.run([]string{"plus", "2024-02-30", "P1D"}), calendar.ErrParse)
	assert.ErrorIs(t, a.run([]string{"plus", "2024-01-01", "P1X"}), calendar.ErrParse)
	assert.ErrorIs(t, a.run([]string{"dates", "2024-02-01", "2024-01-01"}), calendar.ErrIllegalArgument)
	assert.Error(t, a.run([]string{"next", "-from", "2024-01-01T00:00Z", "bad=* * *"}))
	assert.Error(t, a.run([]string{"ecma119", "1850-01-01T00:00Z"}))

	assert.Equal(t, float64(2), testutil.ToFloat64(a.metrics.ParseFailures.WithLabelValues("date")))
	assert.Equal(t, float64(1), testutil.ToFloat64(a.metrics.ParseFailures.WithLabelValues("period")))
	assert.Equal(t, float64(1), testutil.ToFloat64(a.metrics.ParseFailures.WithLabelValues("trigger")))
}

func TestApp_Usage(t *testing.T) {
	t.Parallel()

	a, out := newTestApp(t, 100)
	require.NoError(t, a.run(nil))
	assert.Contains(t, out.String(), "CALENDAR_DATES_LIMIT")
}
