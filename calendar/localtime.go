package calendar

import (
	"strings"
	"time"
)

// LocalTime is a time-of-day without a date or offset, such as 10:15:30,
// with nanosecond precision. The zero value is midnight.
type LocalTime struct {
	hour   int8
	minute int8
	second int8
	nano   int32
}

// Predefined times.
var (
	// Midnight is 00:00, the start of the day.
	Midnight = LocalTime{}
	// Noon is 12:00.
	Noon = LocalTime{hour: 12}
	// MaxTime is 23:59:59.999999999, the end of the day.
	MaxTime = LocalTime{hour: 23, minute: 59, second: 59, nano: 999_999_999}
)

// TimeOf returns the time of the given hour, minute, second and nanosecond.
func TimeOf(hour, minute, second, nano int) (LocalTime, error) {
	if err := FieldHourOfDay.checkValid(int64(hour)); err != nil {
		return LocalTime{}, err
	}
	if err := FieldMinuteOfHour.checkValid(int64(minute)); err != nil {
		return LocalTime{}, err
	}
	if err := FieldSecondOfMinute.checkValid(int64(second)); err != nil {
		return LocalTime{}, err
	}
	if err := FieldNanoOfSecond.checkValid(int64(nano)); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{hour: int8(hour), minute: int8(minute), second: int8(second), nano: int32(nano)}, nil
}

// MustTimeOf is like TimeOf but panics on error.
func MustTimeOf(hour, minute, second, nano int) LocalTime {
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfSecondOfDay returns the time of the given second-of-day.
func TimeOfSecondOfDay(secondOfDay int64) (LocalTime, error) {
	if err := FieldSecondOfDay.checkValid(secondOfDay); err != nil {
		return LocalTime{}, err
	}
	return timeOfNanoOfDay(secondOfDay * nanosPerSecond), nil
}

// TimeOfNanoOfDay returns the time of the given nanosecond-of-day.
func TimeOfNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if err := FieldNanoOfDay.checkValid(nanoOfDay); err != nil {
		return LocalTime{}, err
	}
	return timeOfNanoOfDay(nanoOfDay), nil
}

func timeOfNanoOfDay(nanoOfDay int64) LocalTime {
	hours := nanoOfDay / nanosPerHour
	nanoOfDay -= hours * nanosPerHour
	minutes := nanoOfDay / nanosPerMinute
	nanoOfDay -= minutes * nanosPerMinute
	seconds := nanoOfDay / nanosPerSecond
	nanoOfDay -= seconds * nanosPerSecond
	return LocalTime{hour: int8(hours), minute: int8(minutes), second: int8(seconds), nano: int32(nanoOfDay)}
}

// TimeOfTime returns the time-of-day of t in its own location.
func TimeOfTime(t time.Time) LocalTime {
	hour, minute, second := t.Clock()
	return LocalTime{hour: int8(hour), minute: int8(minute), second: int8(second), nano: int32(t.Nanosecond())}
}

// ParseTime parses an ISO-8601 time such as 10:15 or 10:15:30.123.
func ParseTime(text string) (LocalTime, error) {
	s := textScanner{text: text}
	t, err := s.scanTime()
	if err != nil {
		return LocalTime{}, err
	}
	if err := s.end(); err != nil {
		return LocalTime{}, err
	}
	return t, nil
}

// Hour returns the hour-of-day, from 0 to 23.
func (t LocalTime) Hour() int { return int(t.hour) }

// Minute returns the minute-of-hour, from 0 to 59.
func (t LocalTime) Minute() int { return int(t.minute) }

// Second returns the second-of-minute, from 0 to 59.
func (t LocalTime) Second() int { return int(t.second) }

// Nano returns the nanosecond-of-second, from 0 to 999,999,999.
func (t LocalTime) Nano() int { return int(t.nano) }

// SecondOfDay returns the time as seconds of the day, from 0 to 86399.
func (t LocalTime) SecondOfDay() int {
	return int(t.hour)*secondsPerHour + int(t.minute)*secondsPerMinute + int(t.second)
}

// NanoOfDay returns the time as nanoseconds of the day.
func (t LocalTime) NanoOfDay() int64 {
	return int64(t.hour)*nanosPerHour + int64(t.minute)*nanosPerMinute +
		int64(t.second)*nanosPerSecond + int64(t.nano)
}

// IsSupported reports whether the field can be queried or adjusted on a
// LocalTime. All time based fields are supported.
func (t LocalTime) IsSupported(field Field) bool {
	return field.IsTimeBased()
}

// Get returns the value of the field as an int. NanoOfDay and MicroOfDay
// must be read with GetInt64.
func (t LocalTime) Get(field Field) (int, error) {
	return getInt(field, t.GetInt64)
}

// GetInt64 returns the value of the field.
func (t LocalTime) GetInt64(field Field) (int64, error) {
	switch field {
	case FieldNanoOfSecond:
		return int64(t.nano), nil
	case FieldNanoOfDay:
		return t.NanoOfDay(), nil
	case FieldMicroOfSecond:
		return int64(t.nano) / 1000, nil
	case FieldMicroOfDay:
		return t.NanoOfDay() / 1000, nil
	case FieldMilliOfSecond:
		return int64(t.nano) / nanosPerMilli, nil
	case FieldMilliOfDay:
		return t.NanoOfDay() / nanosPerMilli, nil
	case FieldSecondOfMinute:
		return int64(t.second), nil
	case FieldSecondOfDay:
		return int64(t.SecondOfDay()), nil
	case FieldMinuteOfHour:
		return int64(t.minute), nil
	case FieldMinuteOfDay:
		return int64(t.hour)*60 + int64(t.minute), nil
	case FieldHourOfAmPm:
		return int64(t.hour % 12), nil
	case FieldClockHourOfAmPm:
		if ham := t.hour % 12; ham != 0 {
			return int64(ham), nil
		}
		return 12, nil
	case FieldHourOfDay:
		return int64(t.hour), nil
	case FieldClockHourOfDay:
		if t.hour == 0 {
			return 24, nil
		}
		return int64(t.hour), nil
	case FieldAmPmOfDay:
		return int64(t.hour / 12), nil
	}
	return 0, unsupportedFieldError(field)
}

// With returns a copy of the time with the field set to a new value.
func (t LocalTime) With(field Field, value int64) (LocalTime, error) {
	if !t.IsSupported(field) {
		return LocalTime{}, unsupportedFieldError(field)
	}
	if err := field.checkValid(value); err != nil {
		return LocalTime{}, err
	}
	switch field {
	case FieldNanoOfSecond:
		return t.WithNano(int(value))
	case FieldNanoOfDay:
		return TimeOfNanoOfDay(value)
	case FieldMicroOfSecond:
		return t.WithNano(int(value) * 1000)
	case FieldMicroOfDay:
		return TimeOfNanoOfDay(value * 1000)
	case FieldMilliOfSecond:
		return t.WithNano(int(value) * nanosPerMilli)
	case FieldMilliOfDay:
		return TimeOfNanoOfDay(value * nanosPerMilli)
	case FieldSecondOfMinute:
		return t.WithSecond(int(value))
	case FieldSecondOfDay:
		return t.PlusSeconds(value - int64(t.SecondOfDay())), nil
	case FieldMinuteOfHour:
		return t.WithMinute(int(value))
	case FieldMinuteOfDay:
		return t.PlusMinutes(value - (int64(t.hour)*60 + int64(t.minute))), nil
	case FieldHourOfAmPm:
		return t.PlusHours(value - int64(t.hour%12)), nil
	case FieldClockHourOfAmPm:
		if value == 12 {
			value = 0
		}
		return t.PlusHours(value - int64(t.hour%12)), nil
	case FieldHourOfDay:
		return t.WithHour(int(value))
	case FieldClockHourOfDay:
		if value == 24 {
			value = 0
		}
		return t.WithHour(int(value))
	default: // FieldAmPmOfDay
		return t.PlusHours((value - int64(t.hour/12)) * 12), nil
	}
}

// WithHour returns a copy of the time with the hour-of-day changed.
func (t LocalTime) WithHour(hour int) (LocalTime, error) {
	if hour == int(t.hour) {
		return t, nil
	}
	if err := FieldHourOfDay.checkValid(int64(hour)); err != nil {
		return LocalTime{}, err
	}
	t.hour = int8(hour)
	return t, nil
}

// WithMinute returns a copy of the time with the minute-of-hour changed.
func (t LocalTime) WithMinute(minute int) (LocalTime, error) {
	if minute == int(t.minute) {
		return t, nil
	}
	if err := FieldMinuteOfHour.checkValid(int64(minute)); err != nil {
		return LocalTime{}, err
	}
	t.minute = int8(minute)
	return t, nil
}

// WithSecond returns a copy of the time with the second-of-minute changed.
func (t LocalTime) WithSecond(second int) (LocalTime, error) {
	if second == int(t.second) {
		return t, nil
	}
	if err := FieldSecondOfMinute.checkValid(int64(second)); err != nil {
		return LocalTime{}, err
	}
	t.second = int8(second)
	return t, nil
}

// WithNano returns a copy of the time with the nanosecond-of-second changed.
func (t LocalTime) WithNano(nano int) (LocalTime, error) {
	if nano == int(t.nano) {
		return t, nil
	}
	if err := FieldNanoOfSecond.checkValid(int64(nano)); err != nil {
		return LocalTime{}, err
	}
	t.nano = int32(nano)
	return t, nil
}

// Plus returns a copy of the time with the amount of the unit added,
// wrapping around midnight. Only time based units are supported.
func (t LocalTime) Plus(amount int64, unit Unit) (LocalTime, error) {
	switch unit {
	case Nanos:
		return t.PlusNanos(amount), nil
	case Micros:
		return t.PlusNanos((amount % microsPerDay) * 1000), nil
	case Millis:
		return t.PlusNanos((amount % millisPerDay) * nanosPerMilli), nil
	case Seconds:
		return t.PlusSeconds(amount), nil
	case Minutes:
		return t.PlusMinutes(amount), nil
	case Hours:
		return t.PlusHours(amount), nil
	case HalfDays:
		return t.PlusHours((amount % 2) * 12), nil
	}
	return LocalTime{}, unsupportedUnitError(unit)
}

// PlusHours returns a copy of the time with the hours added, wrapping
// around midnight.
func (t LocalTime) PlusHours(hours int64) LocalTime {
	if hours == 0 {
		return t
	}
	t.hour = int8((int(hours%hoursPerDay) + int(t.hour) + hoursPerDay) % hoursPerDay)
	return t
}

// PlusMinutes returns a copy of the time with the minutes added, wrapping
// around midnight.
func (t LocalTime) PlusMinutes(minutes int64) LocalTime {
	if minutes == 0 {
		return t
	}
	mofd := int(t.hour)*minutesPerHour + int(t.minute)
	newMofd := (int(minutes%minutesPerDay) + mofd + minutesPerDay) % minutesPerDay
	if mofd == newMofd {
		return t
	}
	t.hour = int8(newMofd / minutesPerHour)
	t.minute = int8(newMofd % minutesPerHour)
	return t
}

// PlusSeconds returns a copy of the time with the seconds added, wrapping
// around midnight.
func (t LocalTime) PlusSeconds(seconds int64) LocalTime {
	if seconds == 0 {
		return t
	}
	sofd := t.SecondOfDay()
	newSofd := (int(seconds%secondsPerDay) + sofd + secondsPerDay) % secondsPerDay
	if sofd == newSofd {
		return t
	}
	t.hour = int8(newSofd / secondsPerHour)
	t.minute = int8((newSofd / secondsPerMinute) % minutesPerHour)
	t.second = int8(newSofd % secondsPerMinute)
	return t
}

// PlusNanos returns a copy of the time with the nanoseconds added, wrapping
// around midnight.
func (t LocalTime) PlusNanos(nanos int64) LocalTime {
	if nanos == 0 {
		return t
	}
	nofd := t.NanoOfDay()
	newNofd := ((nanos % nanosPerDay) + nofd + nanosPerDay) % nanosPerDay
	if nofd == newNofd {
		return t
	}
	return timeOfNanoOfDay(newNofd)
}

// Until returns the number of complete units from this time to the end
// time. Only time based units are supported.
func (t LocalTime) Until(end LocalTime, unit Unit) (int64, error) {
	nanosUntil := end.NanoOfDay() - t.NanoOfDay()
	switch unit {
	case Nanos:
		return nanosUntil, nil
	case Micros:
		return nanosUntil / 1000, nil
	case Millis:
		return nanosUntil / nanosPerMilli, nil
	case Seconds:
		return nanosUntil / nanosPerSecond, nil
	case Minutes:
		return nanosUntil / nanosPerMinute, nil
	case Hours:
		return nanosUntil / nanosPerHour, nil
	case HalfDays:
		return nanosUntil / (12 * nanosPerHour), nil
	}
	return 0, unsupportedUnitError(unit)
}

// Compare returns -1, 0 or 1 as the time is before, equal to or after the other.
func (t LocalTime) Compare(other LocalTime) int {
	return compareInt64(t.NanoOfDay(), other.NanoOfDay())
}

// IsAfter reports whether the time is after the other.
func (t LocalTime) IsAfter(other LocalTime) bool {
	return t.Compare(other) > 0
}

// IsBefore reports whether the time is before the other.
func (t LocalTime) IsBefore(other LocalTime) bool {
	return t.Compare(other) < 0
}

// String returns the time in the shortest ISO-8601 form that keeps all
// nonzero fields: HH:mm, HH:mm:ss, HH:mm:ss.SSS, HH:mm:ss.SSSSSS or
// HH:mm:ss.SSSSSSSSS.
func (t LocalTime) String() string {
	var b strings.Builder
	b.Grow(18)
	t.appendTo(&b)
	return b.String()
}

func (t LocalTime) appendTo(b *strings.Builder) {
	writePadded(b, int64(t.hour), 2)
	b.WriteByte(':')
	writePadded(b, int64(t.minute), 2)
	if t.second == 0 && t.nano == 0 {
		return
	}
	b.WriteByte(':')
	writePadded(b, int64(t.second), 2)
	if t.nano == 0 {
		return
	}
	b.WriteByte('.')
	switch {
	case t.nano%nanosPerMilli == 0:
		writePadded(b, int64(t.nano/nanosPerMilli), 3)
	case t.nano%1000 == 0:
		writePadded(b, int64(t.nano/1000), 6)
	default:
		writePadded(b, int64(t.nano), 9)
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (t LocalTime) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (t *LocalTime) UnmarshalText(b []byte) error {
	v, err := ParseTime(string(b))
	if err == nil {
		*t = v
	}
	return err
}
