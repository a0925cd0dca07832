package calendar_test

import (
	"sync"
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOffset(t *testing.T) {
	t.Parallel()
	tests := []struct {
		id           string
		totalSeconds int
		canonical    string
	}{
		{"Z", 0, "Z"},
		{"+00:00", 0, "Z"},
		{"+1", 3600, "+01:00"},
		{"-9", -32400, "-09:00"},
		{"+01", 3600, "+01:00"},
		{"+0100", 3600, "+01:00"},
		{"+01:00", 3600, "+01:00"},
		{"-05:30", -19800, "-05:30"},
		{"+053045", 19845, "+05:30:45"},
		{"-05:30:45", -19845, "-05:30:45"},
		{"+18:00", 64800, "+18:00"},
		{"-18", -64800, "-18:00"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			o, err := calendar.ParseOffset(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.totalSeconds, o.TotalSeconds())
			assert.Equal(t, tt.canonical, o.ID())
			assert.Equal(t, tt.canonical, o.String())
		})
	}

	for _, id := range []string{
		"", "+", "1", "01:00", "+1:00", "+01:0", "+01-00", "+0a", "+19", "+18:01",
		"+01:60", "*01:00", "+01:00:60", "+01:00:", "UTC",
	} {
		t.Run("invalid "+id, func(t *testing.T) {
			_, err := calendar.ParseOffset(id)
			assert.ErrorIs(t, err, calendar.ErrParse)
		})
	}
}

func TestOffsetOf(t *testing.T) {
	t.Parallel()
	o, err := calendar.OffsetOfTotalSeconds(0)
	require.NoError(t, err)
	assert.Equal(t, "Z", o.ID())
	assert.Equal(t, calendar.UTC, o)

	o, err = calendar.OffsetOfHoursMinutes(-3, -30)
	require.NoError(t, err)
	assert.Equal(t, -12600, o.TotalSeconds())

	o, err = calendar.OffsetOfHoursMinutesSeconds(0, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, "-00:01:01", o.ID())

	_, err = calendar.OffsetOfHoursMinutes(3, -30)
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
	_, err = calendar.OffsetOfHoursMinutesSeconds(0, 1, -1)
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
	_, err = calendar.OffsetOfHoursMinutes(18, 1)
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
	_, err = calendar.OffsetOfHours(19)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
	_, err = calendar.OffsetOfHoursMinutes(1, 60)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
	_, err = calendar.OffsetOfTotalSeconds(64801)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	assert.Equal(t, "-18:00", calendar.MinOffset.ID())
	assert.Equal(t, "+18:00", calendar.MaxOffset.ID())
}

func TestOffsetIDRoundTrip(t *testing.T) {
	t.Parallel()
	for seconds := -64800; seconds <= 64800; seconds += 59 {
		o, err := calendar.OffsetOfTotalSeconds(seconds)
		require.NoError(t, err)
		parsed, err := calendar.ParseOffset(o.ID())
		require.NoError(t, err, o.ID())
		require.Equal(t, o, parsed)
	}
}

func TestOffsetFields(t *testing.T) {
	t.Parallel()
	o := calendar.MustParseOffset("+02:00")
	assert.True(t, o.IsSupported(calendar.FieldOffsetSeconds))
	assert.False(t, o.IsSupported(calendar.FieldHourOfDay))
	v, err := o.Get(calendar.FieldOffsetSeconds)
	require.NoError(t, err)
	assert.Equal(t, 7200, v)
	_, err = o.GetInt64(calendar.FieldHourOfDay)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedField)
}

func TestOffsetCompare(t *testing.T) {
	t.Parallel()
	east := calendar.MustParseOffset("+02:00")
	west := calendar.MustParseOffset("-02:00")
	assert.Equal(t, -1, east.Compare(west))
	assert.Equal(t, 1, west.Compare(east))
	assert.Equal(t, 0, east.Compare(calendar.MustParseOffset("+0200")))
	assert.Equal(t, -1, calendar.UTC.Compare(west))
}

func TestOffsetText(t *testing.T) {
	t.Parallel()
	var o calendar.ZoneOffset
	require.NoError(t, o.UnmarshalText([]byte("+0530")))
	b, err := o.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "+05:30", string(b))
	assert.Error(t, o.UnmarshalText([]byte("+25")))
	assert.Equal(t, 19800, o.TotalSeconds())
	assert.Panics(t, func() { calendar.MustParseOffset("bad") })
}

func TestOffsetCacheConcurrent(t *testing.T) {
	t.Parallel()
	before := calendar.CurrentOffsetCacheStats()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for quarters := -72; quarters <= 72; quarters++ {
				o, err := calendar.OffsetOfTotalSeconds(quarters * 900)
				if !assert.NoError(t, err) {
					return
				}
				parsed, err := calendar.ParseOffset(o.ID())
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, o, parsed)
			}
		}()
	}
	wg.Wait()

	after := calendar.CurrentOffsetCacheStats()
	assert.Greater(t, after.Hits, before.Hits)
	// 145 quarter-hour offsets in -18:00..+18:00
	assert.LessOrEqual(t, after.Entries, int64(145))
	assert.GreaterOrEqual(t, after.Entries, int64(1))
}
