package ecma119_test

import (
	"bytes"
	"testing"

	"github.com/lunixbochs/struc"
	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/ecma119"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime(t *testing.T) {
	cases := []struct {
		input    string
		expected [7]byte
	}{
		{"2015-07-31T19:00:15Z", [7]byte{0x73, 0x07, 0x1F, 0x13, 0x00, 0x0F, 0x00}},
		{"2000-01-07T12:26:14Z", [7]byte{0x64, 0x01, 0x07, 0x0C, 0x1A, 0x0E, 0x00}},
		{"2000-01-07T12:26:14-08:00", [7]byte{0x64, 0x01, 0x07, 0x0C, 0x1A, 0x0E, 0xE0}},
		{"1900-01-01T00:00+13:00", [7]byte{0x00, 0x01, 0x01, 0x00, 0x00, 0x00, 0x34}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			odt := calendar.MustParseOffsetDateTime(c.input)
			dt, err := ecma119.NewDateTime(odt)
			require.NoError(t, err)

			buff := bytes.NewBuffer(make([]byte, 0, 7))
			require.NoError(t, struc.Pack(buff, &dt), "Pack should not return an error for a record returned by NewDateTime")
			assert.Equal(t, c.expected[:], buff.Bytes(), "record should encode to the correct value")

			b, err := dt.MarshalBinary()
			require.NoError(t, err)
			assert.Equal(t, c.expected[:], b)

			var decoded ecma119.DateTime
			require.NoError(t, decoded.UnmarshalBinary(c.expected[:]))
			assert.Equal(t, dt, decoded)

			back, err := decoded.OffsetDateTime()
			require.NoError(t, err)
			assert.Equal(t, odt, back)
		})
	}
}

func TestDateTimeErrors(t *testing.T) {
	for _, input := range []string{
		"1899-12-31T23:59Z",
		"2156-01-01T00:00Z",
		"2000-01-01T00:00+05:20",
		"2000-01-01T00:00+13:15",
		"2000-01-01T00:00-12:15",
	} {
		_, err := ecma119.NewDateTime(calendar.MustParseOffsetDateTime(input))
		assert.ErrorIs(t, err, calendar.ErrFieldRange, input)
	}

	_, err := ecma119.DateTime{Month: 2, Day: 30}.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
	_, err = ecma119.DateTime{Month: 1, Day: 1, Hour: 24}.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
	_, err = ecma119.DateTime{Month: 1, Day: 1, GMTOffsetIn15MinIntervals: 60}.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	var d ecma119.DateTime
	assert.Error(t, d.UnmarshalBinary([]byte{0x64, 0x01}))
}

func TestReadDateTime(t *testing.T) {
	r := bytes.NewReader([]byte{0x73, 0x07, 0x1F, 0x13, 0x00, 0x0F, 0x04, 0xFF})
	dt, err := ecma119.ReadDateTime(r)
	require.NoError(t, err)
	odt, err := dt.OffsetDateTime()
	require.NoError(t, err)
	assert.Equal(t, "2015-07-31T19:00:15+01:00", odt.String())
	assert.Equal(t, 1, r.Len())
}

func TestLongDateTime(t *testing.T) {
	odt := calendar.MustParseOffsetDateTime("2024-03-15T08:30:05.129-05:00")
	l, err := ecma119.NewLongDateTime(odt)
	require.NoError(t, err)

	b, err := l.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, append([]byte("2024031508300512"), 0xEC), b)

	var decoded ecma119.LongDateTime
	require.NoError(t, decoded.UnmarshalBinary(b))
	assert.Equal(t, l, decoded)
	assert.False(t, decoded.IsUnspecified())

	back, err := decoded.OffsetDateTime()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15T08:30:05.120-05:00", back.String())

	read, err := ecma119.ReadLongDateTime(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, l, read)
}

func TestLongDateTimeUnspecified(t *testing.T) {
	b, err := ecma119.UnspecifiedLongDateTime.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, append([]byte("0000000000000000"), 0x00), b)

	assert.True(t, ecma119.UnspecifiedLongDateTime.IsUnspecified())
	assert.True(t, ecma119.LongDateTime{}.IsUnspecified())
	_, err = ecma119.UnspecifiedLongDateTime.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestLongDateTimeErrors(t *testing.T) {
	_, err := ecma119.NewLongDateTime(calendar.MustParseOffsetDateTime("+10000-01-01T00:00Z"))
	assert.ErrorIs(t, err, calendar.ErrFieldRange)
	_, err = ecma119.NewLongDateTime(calendar.MustParseOffsetDateTime("0000-01-01T00:00Z"))
	assert.ErrorIs(t, err, calendar.ErrFieldRange)

	var l ecma119.LongDateTime
	require.NoError(t, l.UnmarshalBinary(append([]byte("2024AB1508300512"), 0x00)))
	_, err = l.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrParse)

	require.NoError(t, l.UnmarshalBinary(append([]byte("2023022908300512"), 0x00)))
	_, err = l.OffsetDateTime()
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	assert.Error(t, l.UnmarshalBinary([]byte("2024")))
}
