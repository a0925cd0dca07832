package calendar

import (
	"fmt"
	"math"
)

// Field is a standard calendar field, such as month-of-year or hour-of-day.
// The set is closed: each type supports a subset of it through
// IsSupported, Get, GetInt64 and With.
type Field int

// Standard fields, ordered from the smallest to the largest base unit.
const (
	FieldNanoOfSecond Field = iota + 1
	FieldNanoOfDay
	FieldMicroOfSecond
	FieldMicroOfDay
	FieldMilliOfSecond
	FieldMilliOfDay
	FieldSecondOfMinute
	FieldSecondOfDay
	FieldMinuteOfHour
	FieldMinuteOfDay
	FieldHourOfAmPm
	FieldClockHourOfAmPm
	FieldHourOfDay
	FieldClockHourOfDay
	FieldAmPmOfDay
	FieldDayOfWeek
	FieldAlignedDayOfWeekInMonth
	FieldAlignedDayOfWeekInYear
	FieldDayOfMonth
	FieldDayOfYear
	FieldEpochDay
	FieldAlignedWeekOfMonth
	FieldAlignedWeekOfYear
	FieldMonthOfYear
	FieldProlepticMonth
	FieldYearOfEra
	FieldYear
	FieldEra
	FieldInstantSeconds
	FieldOffsetSeconds
)

type fieldInfo struct {
	name     string
	baseUnit Unit
	valid    ValueRange
}

var fields = [...]fieldInfo{
	FieldNanoOfSecond:            {"NanoOfSecond", Nanos, rangeOf(0, 999_999_999)},
	FieldNanoOfDay:               {"NanoOfDay", Nanos, rangeOf(0, nanosPerDay-1)},
	FieldMicroOfSecond:           {"MicroOfSecond", Micros, rangeOf(0, 999_999)},
	FieldMicroOfDay:              {"MicroOfDay", Micros, rangeOf(0, microsPerDay-1)},
	FieldMilliOfSecond:           {"MilliOfSecond", Millis, rangeOf(0, 999)},
	FieldMilliOfDay:              {"MilliOfDay", Millis, rangeOf(0, millisPerDay-1)},
	FieldSecondOfMinute:          {"SecondOfMinute", Seconds, rangeOf(0, 59)},
	FieldSecondOfDay:             {"SecondOfDay", Seconds, rangeOf(0, secondsPerDay-1)},
	FieldMinuteOfHour:            {"MinuteOfHour", Minutes, rangeOf(0, 59)},
	FieldMinuteOfDay:             {"MinuteOfDay", Minutes, rangeOf(0, minutesPerDay-1)},
	FieldHourOfAmPm:              {"HourOfAmPm", Hours, rangeOf(0, 11)},
	FieldClockHourOfAmPm:         {"ClockHourOfAmPm", Hours, rangeOf(1, 12)},
	FieldHourOfDay:               {"HourOfDay", Hours, rangeOf(0, 23)},
	FieldClockHourOfDay:          {"ClockHourOfDay", Hours, rangeOf(1, 24)},
	FieldAmPmOfDay:               {"AmPmOfDay", HalfDays, rangeOf(0, 1)},
	FieldDayOfWeek:               {"DayOfWeek", Days, rangeOf(1, 7)},
	FieldAlignedDayOfWeekInMonth: {"AlignedDayOfWeekInMonth", Days, rangeOf(1, 7)},
	FieldAlignedDayOfWeekInYear:  {"AlignedDayOfWeekInYear", Days, rangeOf(1, 7)},
	FieldDayOfMonth:              {"DayOfMonth", Days, variableRangeOf(1, 28, 31)},
	FieldDayOfYear:               {"DayOfYear", Days, variableRangeOf(1, 365, 366)},
	FieldEpochDay:                {"EpochDay", Days, rangeOf(minEpochDay, maxEpochDay)},
	FieldAlignedWeekOfMonth:      {"AlignedWeekOfMonth", Weeks, variableRangeOf(1, 4, 5)},
	FieldAlignedWeekOfYear:       {"AlignedWeekOfYear", Weeks, rangeOf(1, 53)},
	FieldMonthOfYear:             {"MonthOfYear", Months, rangeOf(1, 12)},
	FieldProlepticMonth:          {"ProlepticMonth", Months, rangeOf(MinYear*12, MaxYear*12+11)},
	FieldYearOfEra:               {"YearOfEra", Years, variableRangeOf(1, MaxYear, MaxYear+1)},
	FieldYear:                    {"Year", Years, rangeOf(MinYear, MaxYear)},
	FieldEra:                     {"Era", Eras, rangeOf(0, 1)},
	FieldInstantSeconds:          {"InstantSeconds", Seconds, rangeOf(math.MinInt64, math.MaxInt64)},
	FieldOffsetSeconds:           {"OffsetSeconds", Seconds, rangeOf(-maxOffsetSeconds, maxOffsetSeconds)},
}

func (f Field) valid() bool {
	return f >= FieldNanoOfSecond && f <= FieldOffsetSeconds
}

// String returns the name of the field.
func (f Field) String() string {
	if !f.valid() {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fields[f].name
}

// BaseUnit returns the unit that the field is measured in.
func (f Field) BaseUnit() Unit {
	if !f.valid() {
		return 0
	}
	return fields[f].baseUnit
}

// Range returns the outer range of valid values for the field, independent
// of any particular date.
func (f Field) Range() ValueRange {
	if !f.valid() {
		return ValueRange{}
	}
	return fields[f].valid
}

// IsDateBased reports whether the field represents a component of a date.
func (f Field) IsDateBased() bool {
	return f >= FieldDayOfWeek && f <= FieldEra
}

// IsTimeBased reports whether the field represents a component of a time of day.
func (f Field) IsTimeBased() bool {
	return f >= FieldNanoOfSecond && f <= FieldAmPmOfDay
}

// checkValid checks that the value is within the outer range of the field.
func (f Field) checkValid(value int64) error {
	return f.Range().checkValid(value, f)
}

// checkValidInt checks that the value is within the outer range of the field
// and that the range fits in an int32.
func (f Field) checkValidInt(value int64) (int, error) {
	return f.Range().checkValidInt(value, f)
}

// ValueRange is the range of valid values for a field. The maximum may vary
// between a smallest and a largest value, such as the length of a month.
type ValueRange struct {
	min         int64
	smallestMax int64
	max         int64
}

func rangeOf(min, max int64) ValueRange {
	return ValueRange{min: min, smallestMax: max, max: max}
}

func variableRangeOf(min, smallestMax, max int64) ValueRange {
	return ValueRange{min: min, smallestMax: smallestMax, max: max}
}

// Min returns the minimum valid value.
func (r ValueRange) Min() int64 { return r.min }

// Max returns the largest possible maximum value.
func (r ValueRange) Max() int64 { return r.max }

// SmallestMax returns the smallest possible maximum value.
func (r ValueRange) SmallestMax() int64 { return r.smallestMax }

// IsFixed reports whether the maximum does not vary.
func (r ValueRange) IsFixed() bool { return r.smallestMax == r.max }

// IsIntValue reports whether all values in the range fit in an int32.
func (r ValueRange) IsIntValue() bool {
	return r.min >= math.MinInt32 && r.max <= math.MaxInt32
}

// IsValid reports whether the value is within the range.
func (r ValueRange) IsValid(value int64) bool {
	return value >= r.min && value <= r.max
}

func (r ValueRange) checkValid(value int64, field Field) error {
	if !r.IsValid(value) {
		return fieldRangeError(field, value, r)
	}
	return nil
}

func (r ValueRange) checkValidInt(value int64, field Field) (int, error) {
	if !r.IsIntValue() {
		return 0, fmt.Errorf("%w: %s cannot be represented as an int", ErrUnsupportedField, field)
	}
	if err := r.checkValid(value, field); err != nil {
		return 0, err
	}
	return int(value), nil
}

// String returns the range in the form "1 - 28/31".
func (r ValueRange) String() string {
	if r.IsFixed() {
		return fmt.Sprintf("%d - %d", r.min, r.max)
	}
	return fmt.Sprintf("%d - %d/%d", r.min, r.smallestMax, r.max)
}

// intGetter is the int64 accessor shared by the types implementing the
// field protocol.
type intGetter func(Field) (int64, error)

// getInt narrows a field value to an int, rejecting fields whose range does
// not fit in an int32.
func getInt(field Field, get intGetter) (int, error) {
	if !field.Range().IsIntValue() {
		return 0, fmt.Errorf("%w: %s cannot be represented as an int, use GetInt64",
			ErrUnsupportedField, field)
	}
	v, err := get(field)
	if err != nil {
		return 0, err
	}
	return int(v), nil
}
