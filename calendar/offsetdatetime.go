package calendar

import (
	"math"
	"strings"
	"time"
)

// OffsetDateTime is a date-time with a fixed offset from UTC, such as
// 2007-12-03T10:15:30+01:00. It identifies a single instant.
//
// The == operator compares both the local date-time and the offset; use
// IsEqual to compare instants.
type OffsetDateTime struct {
	dateTime LocalDateTime
	offset   ZoneOffset
}

// OffsetDateTimeOf returns the offset date-time for the date, time and offset.
func OffsetDateTimeOf(date LocalDate, t LocalTime, offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: DateTimeOf(date, t), offset: offset}
}

// OffsetDateTimeOfDateTime returns the offset date-time for the local
// date-time and offset.
func OffsetDateTimeOfDateTime(dateTime LocalDateTime, offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// OffsetDateTimeOfInstant returns the local date-time at the instant
// in the offset.
func OffsetDateTimeOfInstant(instant Instant, offset ZoneOffset) (OffsetDateTime, error) {
	dt, err := DateTimeOfEpochSecond(instant.seconds, int(instant.nanos), offset)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: dt, offset: offset}, nil
}

// OffsetDateTimeOfTime converts a time.Time using its wall clock and its
// current offset. Offsets that are not a whole number of seconds within
// ±18:00 are rejected.
func OffsetDateTimeOfTime(t time.Time) (OffsetDateTime, error) {
	_, secs := t.Zone()
	offset, err := OffsetOfTotalSeconds(secs)
	if err != nil {
		return OffsetDateTime{}, err
	}
	dateTime, err := DateTimeOfTime(t)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: dateTime, offset: offset}, nil
}

// ParseOffsetDateTime parses an ISO-8601 offset date-time such as
// 2007-12-03T10:15:30+01:00 or 2007-12-03T10:15Z.
func ParseOffsetDateTime(text string) (OffsetDateTime, error) {
	s := textScanner{text: text}
	dt, err := s.scanDateTime()
	if err != nil {
		return OffsetDateTime{}, err
	}
	offset, err := s.scanOffset()
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: dt, offset: offset}, nil
}

// MustParseOffsetDateTime is like ParseOffsetDateTime but panics on error.
func MustParseOffsetDateTime(text string) OffsetDateTime {
	odt, err := ParseOffsetDateTime(text)
	if err != nil {
		panic(err)
	}
	return odt
}

// Offset returns the offset from UTC.
func (odt OffsetDateTime) Offset() ZoneOffset { return odt.offset }

// ToLocalDateTime returns the local date-time part.
func (odt OffsetDateTime) ToLocalDateTime() LocalDateTime { return odt.dateTime }

// ToLocalDate returns the local date part.
func (odt OffsetDateTime) ToLocalDate() LocalDate { return odt.dateTime.date }

// ToLocalTime returns the local time part.
func (odt OffsetDateTime) ToLocalTime() LocalTime { return odt.dateTime.time }

// Year returns the year.
func (odt OffsetDateTime) Year() int { return odt.dateTime.date.Year() }

// Month returns the month-of-year.
func (odt OffsetDateTime) Month() Month { return odt.dateTime.date.Month() }

// DayOfMonth returns the day-of-month.
func (odt OffsetDateTime) DayOfMonth() int { return odt.dateTime.date.DayOfMonth() }

// DayOfYear returns the day-of-year.
func (odt OffsetDateTime) DayOfYear() int { return odt.dateTime.date.DayOfYear() }

// DayOfWeek returns the day-of-week.
func (odt OffsetDateTime) DayOfWeek() DayOfWeek { return odt.dateTime.date.DayOfWeek() }

// Hour returns the hour-of-day.
func (odt OffsetDateTime) Hour() int { return odt.dateTime.time.Hour() }

// Minute returns the minute-of-hour.
func (odt OffsetDateTime) Minute() int { return odt.dateTime.time.Minute() }

// Second returns the second-of-minute.
func (odt OffsetDateTime) Second() int { return odt.dateTime.time.Second() }

// Nano returns the nanosecond-of-second.
func (odt OffsetDateTime) Nano() int { return odt.dateTime.time.Nano() }

// ToEpochSecond returns the number of seconds from 1970-01-01T00:00:00Z.
func (odt OffsetDateTime) ToEpochSecond() int64 {
	return odt.dateTime.ToEpochSecond(odt.offset)
}

// ToInstant returns the instant represented by the date-time.
func (odt OffsetDateTime) ToInstant() Instant {
	return Instant{seconds: odt.ToEpochSecond(), nanos: int32(odt.dateTime.time.nano)}
}

// ToTime converts to a time.Time in a fixed zone named by the offset ID.
func (odt OffsetDateTime) ToTime() time.Time {
	loc := time.UTC
	if odt.offset != UTC {
		loc = time.FixedZone(odt.offset.ID(), odt.offset.TotalSeconds())
	}
	return time.Unix(odt.ToEpochSecond(), int64(odt.dateTime.time.nano)).In(loc)
}

// WithOffsetSameLocal returns a copy with the offset replaced, keeping the
// local date-time. The result is a different instant unless the offsets
// are equal.
func (odt OffsetDateTime) WithOffsetSameLocal(offset ZoneOffset) OffsetDateTime {
	return odt.with(odt.dateTime, offset)
}

// WithOffsetSameInstant returns a copy with the offset replaced, adjusting
// the local date-time so that the instant is unchanged. It fails only when
// the adjusted local date-time is out of range.
func (odt OffsetDateTime) WithOffsetSameInstant(offset ZoneOffset) (OffsetDateTime, error) {
	if offset == odt.offset {
		return odt, nil
	}
	difference := int64(offset.totalSeconds) - int64(odt.offset.totalSeconds)
	dt, err := odt.dateTime.PlusSeconds(difference)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{dateTime: dt, offset: offset}, nil
}

func (odt OffsetDateTime) with(dateTime LocalDateTime, offset ZoneOffset) OffsetDateTime {
	if odt.dateTime == dateTime && odt.offset == offset {
		return odt
	}
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// IsSupported reports whether the field can be queried or adjusted.
func (odt OffsetDateTime) IsSupported(field Field) bool {
	return field == FieldInstantSeconds || field == FieldOffsetSeconds ||
		odt.dateTime.IsSupported(field)
}

// Range returns the range of valid values for the field.
func (odt OffsetDateTime) Range(field Field) (ValueRange, error) {
	if field == FieldInstantSeconds || field == FieldOffsetSeconds {
		return field.Range(), nil
	}
	if !odt.IsSupported(field) {
		return ValueRange{}, unsupportedFieldError(field)
	}
	return odt.dateTime.Range(field)
}

// Get returns the value of the field as an int. InstantSeconds does not fit
// and must be read with GetInt64.
func (odt OffsetDateTime) Get(field Field) (int, error) {
	return getInt(field, odt.GetInt64)
}

// GetInt64 returns the value of the field.
func (odt OffsetDateTime) GetInt64(field Field) (int64, error) {
	switch field {
	case FieldInstantSeconds:
		return odt.ToEpochSecond(), nil
	case FieldOffsetSeconds:
		return int64(odt.offset.totalSeconds), nil
	}
	if !odt.dateTime.IsSupported(field) {
		return 0, unsupportedFieldError(field)
	}
	return odt.dateTime.GetInt64(field)
}

// With returns a copy with the field set to a new value. Setting
// InstantSeconds keeps the offset and nanosecond; setting OffsetSeconds
// keeps the local date-time.
func (odt OffsetDateTime) With(field Field, value int64) (OffsetDateTime, error) {
	switch field {
	case FieldInstantSeconds:
		instant, err := InstantOfEpochSecond(value, int64(odt.dateTime.time.nano))
		if err != nil {
			return OffsetDateTime{}, err
		}
		return OffsetDateTimeOfInstant(instant, odt.offset)
	case FieldOffsetSeconds:
		secs, err := field.checkValidInt(value)
		if err != nil {
			return OffsetDateTime{}, err
		}
		offset, err := OffsetOfTotalSeconds(secs)
		if err != nil {
			return OffsetDateTime{}, err
		}
		return odt.with(odt.dateTime, offset), nil
	}
	if !odt.dateTime.IsSupported(field) {
		return OffsetDateTime{}, unsupportedFieldError(field)
	}
	dt, err := odt.dateTime.With(field, value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return odt.with(dt, odt.offset), nil
}

// Plus returns a copy with the amount of the unit added to the local
// date-time. The offset is unchanged.
func (odt OffsetDateTime) Plus(amount int64, unit Unit) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.Plus(amount, unit))
}

// Minus returns a copy with the amount of the unit subtracted.
func (odt OffsetDateTime) Minus(amount int64, unit Unit) (OffsetDateTime, error) {
	if amount == math.MinInt64 {
		r, err := odt.Plus(math.MaxInt64, unit)
		if err != nil {
			return OffsetDateTime{}, err
		}
		return r.Plus(1, unit)
	}
	return odt.Plus(-amount, unit)
}

func (odt OffsetDateTime) plusLocal(dt LocalDateTime, err error) (OffsetDateTime, error) {
	if err != nil {
		return OffsetDateTime{}, err
	}
	return odt.with(dt, odt.offset), nil
}

// PlusYears returns a copy with the years added, clamping the day-of-month.
func (odt OffsetDateTime) PlusYears(years int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusYears(years))
}

// PlusMonths returns a copy with the months added, clamping the day-of-month.
func (odt OffsetDateTime) PlusMonths(months int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusMonths(months))
}

// PlusWeeks returns a copy with the weeks added.
func (odt OffsetDateTime) PlusWeeks(weeks int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusWeeks(weeks))
}

// PlusDays returns a copy with the days added.
func (odt OffsetDateTime) PlusDays(days int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusDays(days))
}

// PlusHours returns a copy with the hours added.
func (odt OffsetDateTime) PlusHours(hours int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusHours(hours))
}

// PlusMinutes returns a copy with the minutes added.
func (odt OffsetDateTime) PlusMinutes(minutes int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusMinutes(minutes))
}

// PlusSeconds returns a copy with the seconds added.
func (odt OffsetDateTime) PlusSeconds(seconds int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusSeconds(seconds))
}

// PlusNanos returns a copy with the nanoseconds added.
func (odt OffsetDateTime) PlusNanos(nanos int64) (OffsetDateTime, error) {
	return odt.plusLocal(odt.dateTime.PlusNanos(nanos))
}

// PlusPeriod returns a copy with the period added.
func (odt OffsetDateTime) PlusPeriod(p Period) (OffsetDateTime, error) {
	return addPeriod(odt, p)
}

// MinusPeriod returns a copy with the period subtracted.
func (odt OffsetDateTime) MinusPeriod(p Period) (OffsetDateTime, error) {
	return subtractPeriod(odt, p)
}

// Until returns the number of complete units to the end date-time. The end
// is first converted to this offset, so the result measures elapsed local
// time between the two instants.
func (odt OffsetDateTime) Until(end OffsetDateTime, unit Unit) (int64, error) {
	end, err := end.WithOffsetSameInstant(odt.offset)
	if err != nil {
		return 0, err
	}
	return odt.dateTime.Until(end.dateTime, unit)
}

// Compare orders by instant, then by local date-time. Two values at the
// same instant with different offsets are therefore not equal in this
// ordering.
func (odt OffsetDateTime) Compare(other OffsetDateTime) int {
	if odt.offset == other.offset {
		return odt.dateTime.Compare(other.dateTime)
	}
	if c := odt.ToInstant().Compare(other.ToInstant()); c != 0 {
		return c
	}
	return odt.dateTime.Compare(other.dateTime)
}

// IsAfter reports whether the instant is after the other's instant.
func (odt OffsetDateTime) IsAfter(other OffsetDateTime) bool {
	return odt.ToInstant().IsAfter(other.ToInstant())
}

// IsBefore reports whether the instant is before the other's instant.
func (odt OffsetDateTime) IsBefore(other OffsetDateTime) bool {
	return odt.ToInstant().IsBefore(other.ToInstant())
}

// IsEqual reports whether both represent the same instant, ignoring the
// offsets.
func (odt OffsetDateTime) IsEqual(other OffsetDateTime) bool {
	return odt.ToInstant() == other.ToInstant()
}

// Equal reports whether the local date-time and the offset are both equal.
func (odt OffsetDateTime) Equal(other OffsetDateTime) bool {
	return odt == other
}

// String returns the date-time in ISO-8601 format, such as
// 2007-12-03T10:15:30+01:00.
func (odt OffsetDateTime) String() string {
	var b strings.Builder
	b.Grow(35)
	odt.dateTime.appendTo(&b)
	b.WriteString(odt.offset.ID())
	return b.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (odt OffsetDateTime) MarshalText() ([]byte, error) {
	return []byte(odt.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (odt *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := ParseOffsetDateTime(string(b))
	if err == nil {
		*odt = v
	}
	return err
}
