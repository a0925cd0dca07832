package ecma119

import (
	"bytes"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/reugn/go-calendar/calendar"
)

// LongDateTime is the digit form of a date and time record, ECMA-119
// §8.4.26.1. A record of all zero digits and a zero offset means that the
// date and time is not specified.
type LongDateTime struct {
	YearDigits                [4]uint8
	MonthDigits               [2]uint8
	DayDigits                 [2]uint8
	HourDigits                [2]uint8
	MinuteDigits              [2]uint8
	SecondDigits              [2]uint8
	CentisecondsDigits        [2]uint8
	GMTOffsetIn15MinIntervals int8
}

// UnspecifiedLongDateTime is the record of an unspecified date and time.
var UnspecifiedLongDateTime = LongDateTime{
	YearDigits:         [4]uint8{'0', '0', '0', '0'},
	MonthDigits:        [2]uint8{'0', '0'},
	DayDigits:          [2]uint8{'0', '0'},
	HourDigits:         [2]uint8{'0', '0'},
	MinuteDigits:       [2]uint8{'0', '0'},
	SecondDigits:       [2]uint8{'0', '0'},
	CentisecondsDigits: [2]uint8{'0', '0'},
}

// NewLongDateTime returns the record of the local date-time and offset of
// odt. Years outside 1-9999 and offsets that are not a multiple of 15
// minutes cannot be recorded. The time is truncated to centiseconds.
func NewLongDateTime(odt calendar.OffsetDateTime) (LongDateTime, error) {
	if odt.Year() < 1 || odt.Year() > 9999 {
		return LongDateTime{}, rangeError("year", int64(odt.Year()))
	}
	intervals, err := offsetIntervals(odt.Offset())
	if err != nil {
		return LongDateTime{}, err
	}
	var l LongDateTime
	putDigits(l.YearDigits[:], odt.Year())
	putDigits(l.MonthDigits[:], int(odt.Month()))
	putDigits(l.DayDigits[:], odt.DayOfMonth())
	putDigits(l.HourDigits[:], odt.Hour())
	putDigits(l.MinuteDigits[:], odt.Minute())
	putDigits(l.SecondDigits[:], odt.Second())
	putDigits(l.CentisecondsDigits[:], odt.Nano()/10_000_000)
	l.GMTOffsetIn15MinIntervals = intervals
	return l, nil
}

// IsUnspecified reports whether the record holds no date and time.
func (l LongDateTime) IsUnspecified() bool {
	return l == UnspecifiedLongDateTime || l == LongDateTime{}
}

// OffsetDateTime returns the recorded date-time. Unspecified records and
// non digit characters are errors.
func (l LongDateTime) OffsetDateTime() (calendar.OffsetDateTime, error) {
	if l.IsUnspecified() {
		return calendar.OffsetDateTime{}, fmt.Errorf("%w: unspecified date and time", calendar.ErrInvalidDate)
	}
	var values [7]int
	for i, digits := range [][]uint8{
		l.YearDigits[:], l.MonthDigits[:], l.DayDigits[:], l.HourDigits[:],
		l.MinuteDigits[:], l.SecondDigits[:], l.CentisecondsDigits[:],
	} {
		v, err := readDigits(digits)
		if err != nil {
			return calendar.OffsetDateTime{}, err
		}
		values[i] = v
	}
	date, err := calendar.DateOf(values[0], calendar.Month(values[1]), values[2])
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	t, err := calendar.TimeOf(values[3], values[4], values[5], values[6]*10_000_000)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	offset, err := intervalsOffset(l.GMTOffsetIn15MinIntervals)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	return calendar.OffsetDateTimeOf(date, t, offset), nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (l LongDateTime) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, longDateTimeSize))
	if err := struc.Pack(buf, &l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (l *LongDateTime) UnmarshalBinary(data []byte) error {
	if len(data) < longDateTimeSize {
		return fmt.Errorf("%w: %d bytes", errShortRecord, len(data))
	}
	return struc.Unpack(bytes.NewReader(data[:longDateTimeSize]), l)
}

// ReadLongDateTime decodes a 17-byte record from r.
func ReadLongDateTime(r io.Reader) (LongDateTime, error) {
	var l LongDateTime
	if err := struc.Unpack(r, &l); err != nil {
		return LongDateTime{}, err
	}
	return l, nil
}

// putDigits writes v as zero padded ASCII digits filling out.
func putDigits(out []uint8, v int) {
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = '0' + uint8(v%10)
		v /= 10
	}
}

func readDigits(in []uint8) (int, error) {
	v := 0
	for _, ch := range in {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("%w: non digit character %q in date time record",
				calendar.ErrParse, ch)
		}
		v = v*10 + int(ch-'0')
	}
	return v, nil
}
