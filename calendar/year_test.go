package calendar_test

import (
	"testing"

	"github.com/reugn/go-calendar/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func year(t *testing.T, value int) calendar.Year {
	t.Helper()
	y, err := calendar.YearOf(value)
	require.NoError(t, err)
	return y
}

func TestYear(t *testing.T) {
	t.Parallel()
	y := year(t, 2024)
	assert.Equal(t, 2024, y.Value())
	assert.True(t, y.IsLeap())
	assert.Equal(t, 366, y.Length())
	assert.Equal(t, 365, year(t, 1900).Length())
	assert.True(t, y.IsValidMonthDay(calendar.February, 29))
	assert.False(t, year(t, 2023).IsValidMonthDay(calendar.February, 29))
	assert.False(t, y.IsValidMonthDay(calendar.April, 31))
	assert.False(t, y.IsValidMonthDay(calendar.Month(13), 1))

	_, err := calendar.YearOf(calendar.MaxYear + 1)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
}

func TestYearAt(t *testing.T) {
	t.Parallel()
	d, err := year(t, 2023).AtMonthDay(calendar.February, 29)
	require.NoError(t, err)
	assert.Equal(t, date(2023, calendar.February, 28), d)

	d, err = year(t, 2024).AtMonthDay(calendar.February, 29)
	require.NoError(t, err)
	assert.Equal(t, date(2024, calendar.February, 29), d)

	_, err = year(t, 2024).AtMonthDay(calendar.April, 31)
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	d, err = year(t, 2024).AtDay(256)
	require.NoError(t, err)
	assert.Equal(t, date(2024, calendar.September, 12), d)

	d, err = year(t, 2024).AtMonth(calendar.July)
	require.NoError(t, err)
	assert.Equal(t, date(2024, calendar.July, 1), d)
}

func TestYearFields(t *testing.T) {
	t.Parallel()
	bce := year(t, -5)
	v, err := bce.Get(calendar.FieldYearOfEra)
	require.NoError(t, err)
	assert.Equal(t, 6, v)
	v, err = bce.Get(calendar.FieldEra)
	require.NoError(t, err)
	assert.Equal(t, int(calendar.BCE), v)

	y, err := bce.With(calendar.FieldEra, int64(calendar.CE))
	require.NoError(t, err)
	assert.Equal(t, 6, y.Value())

	y, err = bce.With(calendar.FieldYearOfEra, 10)
	require.NoError(t, err)
	assert.Equal(t, -9, y.Value())

	y, err = year(t, 2024).With(calendar.FieldYear, 1999)
	require.NoError(t, err)
	assert.Equal(t, 1999, y.Value())

	assert.False(t, bce.IsSupported(calendar.FieldMonthOfYear))
	_, err = bce.Get(calendar.FieldMonthOfYear)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedField)
	_, err = bce.With(calendar.FieldDayOfMonth, 1)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedField)
}

func TestYearArithmetic(t *testing.T) {
	t.Parallel()
	y := year(t, 2024)

	r, err := y.Plus(2, calendar.Centuries)
	require.NoError(t, err)
	assert.Equal(t, 2224, r.Value())

	r, err = y.Minus(3, calendar.Decades)
	require.NoError(t, err)
	assert.Equal(t, 1994, r.Value())

	r, err = y.MinusYears(2024)
	require.NoError(t, err)
	assert.Equal(t, 0, r.Value())

	r, err = y.Plus(-1, calendar.Eras)
	require.NoError(t, err)
	assert.Equal(t, -2023, r.Value())

	_, err = y.Plus(1, calendar.Months)
	assert.ErrorIs(t, err, calendar.ErrUnsupportedUnit)
	_, err = year(t, calendar.MaxYear).PlusYears(1)
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	n, err := y.Until(year(t, 1901), calendar.Centuries)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n)
	n, err = year(t, -1).Until(y, calendar.Eras)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestYearCompareAndText(t *testing.T) {
	t.Parallel()
	a, b := year(t, -1), year(t, 1)
	assert.Equal(t, -1, a.Compare(b))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.IsBefore(b))
	assert.Equal(t, "-1", a.String())

	y, err := calendar.ParseYear("+2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, y.Value())

	_, err = calendar.ParseYear("year")
	assert.ErrorIs(t, err, calendar.ErrParse)
	_, err = calendar.ParseYear("1000000000")
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	var u calendar.Year
	require.NoError(t, u.UnmarshalText([]byte("1984")))
	assert.Equal(t, 1984, u.Value())
}
