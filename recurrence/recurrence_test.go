package recurrence_test

import (
	"sync"
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/recurrence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func odt(s string) calendar.OffsetDateTime {
	return calendar.MustParseOffsetDateTime(s)
}

func collect(t *testing.T, seq func(func(calendar.OffsetDateTime, error) bool)) []string {
	t.Helper()
	var out []string
	for next, err := range seq {
		require.NoError(t, err)
		out = append(out, next.String())
	}
	return out
}

func TestPeriodTrigger(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewPeriodTrigger(calendar.PeriodOfMonths(1))
	require.NoError(t, err)
	assert.Equal(t, "PeriodTrigger with period P1M", trigger.Description())

	got := collect(t, recurrence.Occurrences(trigger, odt("2024-01-31T09:00+01:00"), 4))
	assert.Equal(t, []string{
		"2024-02-29T09:00+01:00",
		"2024-03-31T09:00+01:00",
		"2024-04-30T09:00+01:00",
		"2024-05-31T09:00+01:00",
	}, got)
}

func TestPeriodTrigger_Reanchor(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewPeriodTrigger(calendar.PeriodOfDays(10))
	require.NoError(t, err)

	next, err := trigger.NextFireTime(odt("2024-01-01T00:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11T00:00Z", next.String())

	next, err = trigger.NextFireTime(odt("2024-06-01T12:00Z"))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11T12:00Z", next.String())
}

func TestPeriodTrigger_Invalid(t *testing.T) {
	t.Parallel()

	_, err := recurrence.NewPeriodTrigger(calendar.ZeroPeriod)
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)

	_, err = recurrence.NewPeriodTrigger(calendar.PeriodOf(1, -1, 0))
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
}

func TestPeriodTrigger_Overflow(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewPeriodTrigger(calendar.PeriodOfYears(1))
	require.NoError(t, err)

	_, err = trigger.NextFireTime(odt("+999999999-06-01T00:00Z"))
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	var errs []error
	for _, err := range recurrence.Occurrences(trigger, odt("+999999998-06-01T00:00Z"), 5) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 2)
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], calendar.ErrFieldRange)
}

func TestRunOnceTrigger(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewRunOnceTrigger(calendar.PeriodOfDays(2))
	require.NoError(t, err)
	assert.Equal(t, "RunOnceTrigger with delay P2D (valid)", trigger.Description())

	next, err := trigger.NextFireTime(odt("2024-02-28T08:30+05:30"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01T08:30+05:30", next.String())

	_, err = trigger.NextFireTime(next)
	assert.ErrorIs(t, err, recurrence.ErrTriggerExpired)
	assert.Equal(t, "RunOnceTrigger with delay P2D (expired)", trigger.Description())

	_, err = recurrence.NewRunOnceTrigger(calendar.PeriodOfDays(-1))
	assert.ErrorIs(t, err, calendar.ErrIllegalArgument)
}

func TestOccurrences_Expired(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewRunOnceTrigger(calendar.ZeroPeriod)
	require.NoError(t, err)

	got := collect(t, recurrence.Occurrences(trigger, odt("2024-01-01T00:00Z"), 10))
	assert.Equal(t, []string{"2024-01-01T00:00Z"}, got)
}

func TestCronTrigger(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewCronTrigger("0 9 * * *")
	require.NoError(t, err)
	assert.Equal(t, "0 9 * * *", trigger.Expression())
	assert.Equal(t, "CronTrigger 0 9 * * *", trigger.Description())

	got := collect(t, recurrence.Occurrences(trigger, odt("2024-02-28T10:00+02:00"), 3))
	assert.Equal(t, []string{
		"2024-02-29T09:00+02:00",
		"2024-03-01T09:00+02:00",
		"2024-03-02T09:00+02:00",
	}, got)
}

func TestCronTrigger_UTC(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewCronTrigger("30 12 1 * *")
	require.NoError(t, err)

	next, err := trigger.NextFireTime(odt("2023-12-31T23:59:59Z"))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T12:30Z", next.String())
	assert.Equal(t, calendar.UTC, next.Offset())
}

func TestCronTrigger_Expired(t *testing.T) {
	t.Parallel()

	trigger, err := recurrence.NewCronTrigger("0 0 1 1 * 2020")
	require.NoError(t, err)

	_, err = trigger.NextFireTime(odt("2024-01-01T00:00Z"))
	assert.ErrorIs(t, err, recurrence.ErrTriggerExpired)
}

func TestCronTrigger_Parse(t *testing.T) {
	t.Parallel()

	_, err := recurrence.NewCronTrigger("not a cron")
	assert.ErrorIs(t, err, recurrence.ErrCronParse)
}

func TestTimeline(t *testing.T) {
	t.Parallel()

	start := odt("2024-01-01T00:00Z")
	daily, err := recurrence.NewPeriodTrigger(calendar.PeriodOfDays(1))
	require.NoError(t, err)
	once, err := recurrence.NewRunOnceTrigger(calendar.PeriodOfDays(2))
	require.NoError(t, err)
	cron, err := recurrence.NewCronTrigger("0 12 * * *")
	require.NoError(t, err)

	tl := recurrence.NewTimeline()
	require.NoError(t, tl.Add("daily", daily, start))
	require.NoError(t, tl.Add("once", once, start))
	require.NoError(t, tl.Add("noon", cron, odt("2024-01-01T00:00-01:00")))
	assert.ErrorIs(t, tl.Add("daily", daily, start), recurrence.ErrKeyExists)
	assert.ErrorIs(t, tl.Add("nil", nil, start), calendar.ErrIllegalArgument)
	assert.Equal(t, 3, tl.Len())

	head, ok := tl.Peek()
	require.True(t, ok)
	assert.Equal(t, "noon", head.Key)
	assert.Equal(t, "2024-01-01T12:00-01:00", head.Time.String())

	var got []string
	for occurrence, err := range tl.All() {
		require.NoError(t, err)
		got = append(got, occurrence.Key+"@"+occurrence.Time.String())
		if len(got) == 7 {
			break
		}
	}
	assert.Equal(t, []string{
		"noon@2024-01-01T12:00-01:00",
		"daily@2024-01-02T00:00Z",
		"noon@2024-01-02T12:00-01:00",
		"daily@2024-01-03T00:00Z",
		"once@2024-01-03T00:00Z",
		"noon@2024-01-03T12:00-01:00",
		"daily@2024-01-04T00:00Z",
	}, got)
	assert.Equal(t, 2, tl.Len())

	assert.True(t, tl.Remove("noon"))
	assert.False(t, tl.Remove("noon"))
	assert.Equal(t, 1, tl.Len())
}

func TestTimeline_Empty(t *testing.T) {
	t.Parallel()

	tl := recurrence.NewTimeline()
	_, ok := tl.Peek()
	assert.False(t, ok)

	_, ok, err := tl.Next()
	assert.False(t, ok)
	assert.NoError(t, err)
	for range tl.All() {
		t.Fatal("unexpected occurrence")
	}
}

func TestTimeline_Concurrent(t *testing.T) {
	t.Parallel()

	tl := recurrence.NewTimeline()
	start := odt("2024-01-01T00:00Z")
	keys := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	for i, key := range keys {
		trigger, err := recurrence.NewPeriodTrigger(calendar.PeriodOfDays(int32(i + 1)))
		require.NoError(t, err)
		require.NoError(t, tl.Add(key, trigger, start))
	}

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				_, ok, err := tl.Next()
				assert.True(t, ok)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, len(keys), tl.Len())
}
