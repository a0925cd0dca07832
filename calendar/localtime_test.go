package calendar_test

import (
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTime(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text     string
		expected calendar.LocalTime
		str      string
	}{
		{"10:15", calendar.MustTimeOf(10, 15, 0, 0), "10:15"},
		{"10:15:30", calendar.MustTimeOf(10, 15, 30, 0), "10:15:30"},
		{"10:15:00.5", calendar.MustTimeOf(10, 15, 0, 500_000_000), "10:15:00.500"},
		{"23:59:59.000001", calendar.MustTimeOf(23, 59, 59, 1000), "23:59:59.000001"},
		{"00:00:00.000000001", calendar.MustTimeOf(0, 0, 0, 1), "00:00:00.000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			v, err := calendar.ParseTime(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
			assert.Equal(t, tt.str, v.String())
		})
	}

	for _, text := range []string{"", "1:15", "24:00", "10:60", "10:15:61", "10:15:30.", "10:15:30.1234567890"} {
		t.Run("invalid "+text, func(t *testing.T) {
			_, err := calendar.ParseTime(text)
			assert.ErrorIs(t, err, calendar.ErrParse)
		})
	}
}

func TestLocalTimeArithmetic(t *testing.T) {
	t.Parallel()
	tm := calendar.MustTimeOf(23, 30, 0, 0)
	assert.Equal(t, calendar.MustTimeOf(1, 30, 0, 0), tm.PlusHours(2))
	assert.Equal(t, calendar.MustTimeOf(0, 15, 0, 0), tm.PlusMinutes(45))
	assert.Equal(t, calendar.MustTimeOf(23, 29, 59, 0), tm.PlusSeconds(-1))
	assert.Equal(t, calendar.MustTimeOf(23, 29, 59, 999_999_999), tm.PlusNanos(-1))
	assert.Equal(t, tm, tm.PlusHours(48))

	r, err := tm.Plus(1, calendar.HalfDays)
	require.NoError(t, err)
	assert.Equal(t, calendar.MustTimeOf(11, 30, 0, 0), r)
	_, err = tm.Plus(1, calendar.Days)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedUnit)

	n, err := calendar.MustTimeOf(10, 0, 0, 0).Until(tm, calendar.Minutes)
	require.NoError(t, err)
	assert.Equal(t, int64(810), n)

	assert.Equal(t, 84600, tm.SecondOfDay())
	assert.Equal(t, int64(84600)*1_000_000_000, tm.NanoOfDay())
	assert.True(t, calendar.Noon.IsBefore(tm))
	assert.True(t, calendar.MaxTime.IsAfter(tm))
}

func TestLocalTimeFields(t *testing.T) {
	t.Parallel()
	tm := calendar.MustTimeOf(13, 45, 20, 123_456_789)
	tests := []struct {
		field    calendar.Field
		expected int64
	}{
		{calendar.FieldNanoOfSecond, 123_456_789},
		{calendar.FieldMicroOfSecond, 123_456},
		{calendar.FieldMilliOfSecond, 123},
		{calendar.FieldSecondOfMinute, 20},
		{calendar.FieldSecondOfDay, 49520},
		{calendar.FieldMinuteOfHour, 45},
		{calendar.FieldMinuteOfDay, 825},
		{calendar.FieldHourOfAmPm, 1},
		{calendar.FieldClockHourOfAmPm, 1},
		{calendar.FieldHourOfDay, 13},
		{calendar.FieldClockHourOfDay, 13},
		{calendar.FieldAmPmOfDay, 1},
	}
	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			v, err := tm.GetInt64(tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}

	r, err := tm.With(calendar.FieldAmPmOfDay, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Hour())
	r, err = tm.With(calendar.FieldClockHourOfDay, 24)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Hour())
	r, err = tm.With(calendar.FieldMilliOfSecond, 7)
	require.NoError(t, err)
	assert.Equal(t, 7_000_000, r.Nano())

	_, err = tm.With(calendar.FieldDayOfMonth, 1)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedField)
	_, err = tm.With(calendar.FieldHourOfDay, 24)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
}
