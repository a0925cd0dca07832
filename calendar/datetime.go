package calendar

import (
	"math"
	"strings"
	"time"
)

// LocalDateTime is a date-time without an offset, such as 2007-12-03T10:15:30.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// Predefined date-times.
var (
	// MinDateTime is the earliest supported date-time, -999999999-01-01T00:00.
	MinDateTime = LocalDateTime{date: MinDate, time: Midnight}
	// MaxDateTime is the latest supported date-time, +999999999-12-31T23:59:59.999999999.
	MaxDateTime = LocalDateTime{date: MaxDate, time: MaxTime}
)

// DateTimeOf combines a date and a time.
func DateTimeOf(date LocalDate, t LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: t}
}

// DateTimeOfEpochSecond returns the local date-time at the given instant,
// expressed as epoch seconds and nanosecond-of-second, in the offset.
func DateTimeOfEpochSecond(epochSecond int64, nanoOfSecond int, offset ZoneOffset) (LocalDateTime, error) {
	if err := FieldNanoOfSecond.checkValid(int64(nanoOfSecond)); err != nil {
		return LocalDateTime{}, err
	}
	localSecond, err := addExact(epochSecond, int64(offset.totalSeconds))
	if err != nil {
		return LocalDateTime{}, err
	}
	localEpochDay := floorDiv(localSecond, secondsPerDay)
	secsOfDay := floorMod(localSecond, secondsPerDay)
	date, err := DateOfEpochDay(localEpochDay)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: timeOfNanoOfDay(secsOfDay*nanosPerSecond + int64(nanoOfSecond))}, nil
}

// DateTimeOfTime returns the wall clock date-time of t in its own location.
func DateTimeOfTime(t time.Time) (LocalDateTime, error) {
	date, err := DateOfTime(t)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date: date, time: TimeOfTime(t)}, nil
}

// ParseDateTime parses an ISO-8601 date-time such as 2007-12-03T10:15:30.
func ParseDateTime(text string) (LocalDateTime, error) {
	s := textScanner{text: text}
	dt, err := s.scanDateTime()
	if err != nil {
		return LocalDateTime{}, err
	}
	if err := s.end(); err != nil {
		return LocalDateTime{}, err
	}
	return dt, nil
}

// Date returns the date part.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time part.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// ToEpochSecond returns the number of seconds from 1970-01-01T00:00Z to this
// date-time interpreted in the offset.
func (dt LocalDateTime) ToEpochSecond(offset ZoneOffset) int64 {
	secs := dt.date.ToEpochDay()*secondsPerDay + int64(dt.time.SecondOfDay())
	return secs - int64(offset.totalSeconds)
}

// IsSupported reports whether the field can be queried or adjusted.
// All date and time based fields are supported.
func (dt LocalDateTime) IsSupported(field Field) bool {
	return field.IsDateBased() || field.IsTimeBased()
}

// Range returns the range of valid values for the field.
func (dt LocalDateTime) Range(field Field) (ValueRange, error) {
	if field.IsTimeBased() {
		return field.Range(), nil
	}
	return dt.date.Range(field)
}

// Get returns the value of the field as an int.
func (dt LocalDateTime) Get(field Field) (int, error) {
	return getInt(field, dt.GetInt64)
}

// GetInt64 returns the value of the field.
func (dt LocalDateTime) GetInt64(field Field) (int64, error) {
	if field.IsTimeBased() {
		return dt.time.GetInt64(field)
	}
	return dt.date.GetInt64(field)
}

// With returns a copy of the date-time with the field set to a new value.
// Time fields adjust the time and date fields adjust the date.
func (dt LocalDateTime) With(field Field, value int64) (LocalDateTime, error) {
	if field.IsTimeBased() {
		t, err := dt.time.With(field, value)
		if err != nil {
			return LocalDateTime{}, err
		}
		return dt.with(dt.date, t), nil
	}
	d, err := dt.date.With(field, value)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.with(d, dt.time), nil
}

func (dt LocalDateTime) with(date LocalDate, t LocalTime) LocalDateTime {
	if dt.date == date && dt.time == t {
		return dt
	}
	return LocalDateTime{date: date, time: t}
}

// WithDate returns a copy of the date-time with the date replaced.
func (dt LocalDateTime) WithDate(date LocalDate) LocalDateTime {
	return dt.with(date, dt.time)
}

// WithTime returns a copy of the date-time with the time replaced.
func (dt LocalDateTime) WithTime(t LocalTime) LocalDateTime {
	return dt.with(dt.date, t)
}

// Plus returns a copy of the date-time with the amount of the unit added.
// Time units carry into the date; date units keep the time unchanged.
func (dt LocalDateTime) Plus(amount int64, unit Unit) (LocalDateTime, error) {
	switch unit {
	case Nanos:
		return dt.PlusNanos(amount)
	case Micros:
		r, err := dt.PlusDays(amount / microsPerDay)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusNanos((amount % microsPerDay) * 1000)
	case Millis:
		r, err := dt.PlusDays(amount / millisPerDay)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusNanos((amount % millisPerDay) * nanosPerMilli)
	case Seconds:
		return dt.PlusSeconds(amount)
	case Minutes:
		return dt.PlusMinutes(amount)
	case Hours:
		return dt.PlusHours(amount)
	case HalfDays:
		r, err := dt.PlusDays(amount / 256)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.PlusHours((amount % 256) * 12)
	}
	d, err := dt.date.Plus(amount, unit)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.with(d, dt.time), nil
}

// Minus returns a copy of the date-time with the amount of the unit subtracted.
func (dt LocalDateTime) Minus(amount int64, unit Unit) (LocalDateTime, error) {
	if amount == math.MinInt64 {
		r, err := dt.Plus(math.MaxInt64, unit)
		if err != nil {
			return LocalDateTime{}, err
		}
		return r.Plus(1, unit)
	}
	return dt.Plus(-amount, unit)
}

// PlusYears returns a copy with the years added, clamping the day-of-month.
func (dt LocalDateTime) PlusYears(years int64) (LocalDateTime, error) {
	return dt.plusDate(dt.date.PlusYears(years))
}

// PlusMonths returns a copy with the months added, clamping the day-of-month.
func (dt LocalDateTime) PlusMonths(months int64) (LocalDateTime, error) {
	return dt.plusDate(dt.date.PlusMonths(months))
}

// PlusWeeks returns a copy with the weeks added.
func (dt LocalDateTime) PlusWeeks(weeks int64) (LocalDateTime, error) {
	return dt.plusDate(dt.date.PlusWeeks(weeks))
}

// PlusDays returns a copy with the days added.
func (dt LocalDateTime) PlusDays(days int64) (LocalDateTime, error) {
	return dt.plusDate(dt.date.PlusDays(days))
}

func (dt LocalDateTime) plusDate(date LocalDate, err error) (LocalDateTime, error) {
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.with(date, dt.time), nil
}

// PlusHours returns a copy with the hours added, carrying into the date.
func (dt LocalDateTime) PlusHours(hours int64) (LocalDateTime, error) {
	return dt.plusWithOverflow(dt.date, hours, 0, 0, 0, 1)
}

// PlusMinutes returns a copy with the minutes added, carrying into the date.
func (dt LocalDateTime) PlusMinutes(minutes int64) (LocalDateTime, error) {
	return dt.plusWithOverflow(dt.date, 0, minutes, 0, 0, 1)
}

// PlusSeconds returns a copy with the seconds added, carrying into the date.
func (dt LocalDateTime) PlusSeconds(seconds int64) (LocalDateTime, error) {
	return dt.plusWithOverflow(dt.date, 0, 0, seconds, 0, 1)
}

// PlusNanos returns a copy with the nanoseconds added, carrying into the date.
func (dt LocalDateTime) PlusNanos(nanos int64) (LocalDateTime, error) {
	return dt.plusWithOverflow(dt.date, 0, 0, 0, nanos, 1)
}

// plusWithOverflow adds a time amount split into components, carrying whole
// days into the date. Each component is reduced modulo a day first so the
// nanosecond sum cannot overflow.
func (dt LocalDateTime) plusWithOverflow(date LocalDate, hours, minutes, seconds, nanos, sign int64) (LocalDateTime, error) {
	if hours|minutes|seconds|nanos == 0 {
		return dt.with(date, dt.time), nil
	}
	totDays := nanos/nanosPerDay + seconds/secondsPerDay + minutes/minutesPerDay + hours/hoursPerDay
	totDays *= sign
	totNanos := nanos%nanosPerDay +
		(seconds%secondsPerDay)*nanosPerSecond +
		(minutes%minutesPerDay)*nanosPerMinute +
		(hours%hoursPerDay)*nanosPerHour
	curNoD := dt.time.NanoOfDay()
	totNanos = totNanos*sign + curNoD
	totDays += floorDiv(totNanos, nanosPerDay)
	newNoD := floorMod(totNanos, nanosPerDay)
	newTime := dt.time
	if newNoD != curNoD {
		newTime = timeOfNanoOfDay(newNoD)
	}
	newDate, err := date.PlusDays(totDays)
	if err != nil {
		return LocalDateTime{}, err
	}
	return dt.with(newDate, newTime), nil
}

// PlusPeriod returns a copy with the period added.
func (dt LocalDateTime) PlusPeriod(p Period) (LocalDateTime, error) {
	return addPeriod(dt, p)
}

// MinusPeriod returns a copy with the period subtracted.
func (dt LocalDateTime) MinusPeriod(p Period) (LocalDateTime, error) {
	return subtractPeriod(dt, p)
}

// Until returns the number of complete units between this date-time and the
// end date-time.
func (dt LocalDateTime) Until(end LocalDateTime, unit Unit) (int64, error) {
	if unit.IsTimeBased() {
		amount := dt.date.daysUntil(end.date)
		if amount == 0 {
			return dt.time.Until(end.time, unit)
		}
		timePart := end.time.NanoOfDay() - dt.time.NanoOfDay()
		if amount > 0 {
			amount--
			timePart += nanosPerDay
		} else {
			amount++
			timePart -= nanosPerDay
		}
		var perDay, timeDivisor int64
		switch unit {
		case Nanos:
			perDay, timeDivisor = nanosPerDay, 1
		case Micros:
			perDay, timeDivisor = microsPerDay, 1000
		case Millis:
			perDay, timeDivisor = millisPerDay, nanosPerMilli
		case Seconds:
			perDay, timeDivisor = secondsPerDay, nanosPerSecond
		case Minutes:
			perDay, timeDivisor = minutesPerDay, nanosPerMinute
		case Hours:
			perDay, timeDivisor = hoursPerDay, nanosPerHour
		default: // HalfDays
			perDay, timeDivisor = 2, 12*nanosPerHour
		}
		days, err := multiplyExact(amount, perDay)
		if err != nil {
			return 0, err
		}
		return addExact(days, timePart/timeDivisor)
	}

	endDate := end.date
	var err error
	if endDate.IsAfter(dt.date) && end.time.IsBefore(dt.time) {
		endDate, err = endDate.MinusDays(1)
	} else if endDate.IsBefore(dt.date) && end.time.IsAfter(dt.time) {
		endDate, err = endDate.PlusDays(1)
	}
	if err != nil {
		return 0, err
	}
	return dt.date.UntilUnit(endDate, unit)
}

// Compare returns -1, 0 or 1 as the date-time is before, equal to or after
// the other on the local time-line.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// IsAfter reports whether the date-time is after the other.
func (dt LocalDateTime) IsAfter(other LocalDateTime) bool {
	return dt.Compare(other) > 0
}

// IsBefore reports whether the date-time is before the other.
func (dt LocalDateTime) IsBefore(other LocalDateTime) bool {
	return dt.Compare(other) < 0
}

// String returns the date-time in ISO-8601 format, such as 2007-12-03T10:15:30.
func (dt LocalDateTime) String() string {
	var b strings.Builder
	b.Grow(29)
	dt.appendTo(&b)
	return b.String()
}

func (dt LocalDateTime) appendTo(b *strings.Builder) {
	dt.date.appendTo(b)
	b.WriteByte('T')
	dt.time.appendTo(b)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (dt LocalDateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (dt *LocalDateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(string(b))
	if err == nil {
		*dt = v
	}
	return err
}
