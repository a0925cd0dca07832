// Package ecma119 encodes offset date-times in the two date and time
// record formats of ECMA-119 (ISO 9660): the 7-byte numerical form used in
// directory records and the 17-byte digit form used in volume descriptors.
package ecma119

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"
	"github.com/reugn/go-calendar/calendar"
)

const (
	// offsets are recorded in 15 minute intervals from -48 (west) to +52 (east)
	offsetInterval     = 15 * 60
	minOffsetIntervals = -48
	maxOffsetIntervals = 52

	dateTimeSize     = 7
	longDateTimeSize = 17
)

var errShortRecord = errors.New("short date time record")

// rangeError returns an error for a value that cannot be recorded, which
// unwraps to calendar.ErrFieldRange.
func rangeError(what string, value int64) error {
	return fmt.Errorf("%w: %s cannot be recorded: %d", calendar.ErrFieldRange, what, value)
}

func offsetIntervals(offset calendar.ZoneOffset) (int8, error) {
	secs := offset.TotalSeconds()
	if secs%offsetInterval != 0 {
		return 0, rangeError("offset seconds", int64(secs))
	}
	intervals := secs / offsetInterval
	if intervals < minOffsetIntervals || intervals > maxOffsetIntervals {
		return 0, rangeError("offset intervals", int64(intervals))
	}
	return int8(intervals), nil
}

func intervalsOffset(intervals int8) (calendar.ZoneOffset, error) {
	if intervals < minOffsetIntervals || intervals > maxOffsetIntervals {
		return calendar.ZoneOffset{}, rangeError("offset intervals", int64(intervals))
	}
	return calendar.OffsetOfTotalSeconds(int(intervals) * offsetInterval)
}

// DateTime is the numerical date and time record, ECMA-119 §9.1.5.
type DateTime struct {
	YearsSince1900            uint8
	Month                     uint8
	Day                       uint8
	Hour                      uint8
	Minute                    uint8
	Second                    uint8
	GMTOffsetIn15MinIntervals int8
}

// NewDateTime returns the record of the local date-time and offset of odt.
// Years outside 1900-2155 and offsets that are not a multiple of 15 minutes
// cannot be recorded. Fractions of a second are dropped.
func NewDateTime(odt calendar.OffsetDateTime) (DateTime, error) {
	years := odt.Year() - 1900
	if years < 0 || years > 255 {
		return DateTime{}, rangeError("year", int64(odt.Year()))
	}
	intervals, err := offsetIntervals(odt.Offset())
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		YearsSince1900:            uint8(years),
		Month:                     uint8(odt.Month()),
		Day:                       uint8(odt.DayOfMonth()),
		Hour:                      uint8(odt.Hour()),
		Minute:                    uint8(odt.Minute()),
		Second:                    uint8(odt.Second()),
		GMTOffsetIn15MinIntervals: intervals,
	}, nil
}

// OffsetDateTime returns the recorded date-time. Fields that do not form
// a valid date-time are reported as calendar range or date errors.
func (d DateTime) OffsetDateTime() (calendar.OffsetDateTime, error) {
	date, err := calendar.DateOf(int(d.YearsSince1900)+1900, calendar.Month(d.Month), int(d.Day))
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	t, err := calendar.TimeOf(int(d.Hour), int(d.Minute), int(d.Second), 0)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	offset, err := intervalsOffset(d.GMTOffsetIn15MinIntervals)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	return calendar.OffsetDateTimeOf(date, t, offset), nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (d DateTime) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, dateTimeSize))
	if err := struc.Pack(buf, &d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) < dateTimeSize {
		return fmt.Errorf("%w: %d bytes", errShortRecord, len(data))
	}
	return struc.Unpack(bytes.NewReader(data[:dateTimeSize]), d)
}

// ReadDateTime decodes a 7-byte record from r.
func ReadDateTime(r io.Reader) (DateTime, error) {
	var d DateTime
	if err := struc.Unpack(r, &d); err != nil {
		return DateTime{}, err
	}
	return d, nil
}
