package calendar

import (
	"math"
	"strconv"
)

// Supported year range of the proleptic calendar.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

// IsLeap reports whether the proleptic year is a leap year: divisible by four,
// and not by one hundred unless also by four hundred.
func IsLeap(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Year is a single year in the proleptic ISO calendar, such as 2024.
// The zero value represents year 0 (1 BCE).
type Year struct {
	year int32
}

// YearOf returns the Year for the given value.
func YearOf(year int) (Year, error) {
	if err := FieldYear.checkValid(int64(year)); err != nil {
		return Year{}, err
	}
	return Year{year: int32(year)}, nil
}

// YearOf64 is YearOf for an int64 value.
func YearOf64(year int64) (Year, error) {
	if err := FieldYear.checkValid(year); err != nil {
		return Year{}, err
	}
	return Year{year: int32(year)}, nil
}

// ParseYear parses an optionally signed decimal year.
func ParseYear(text string) (Year, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Year{}, parseError(text, 0, "text cannot be parsed to a Year", err)
	}
	y, err := YearOf(int(v))
	if err != nil {
		return Year{}, parseError(text, 0, "text cannot be parsed to a Year", err)
	}
	return y, nil
}

// Value returns the year value.
func (y Year) Value() int {
	return int(y.year)
}

// IsLeap reports whether the year is a leap year.
func (y Year) IsLeap() bool {
	return IsLeap(int64(y.year))
}

// Length returns the length of the year in days, 365 or 366.
func (y Year) Length() int {
	if y.IsLeap() {
		return 366
	}
	return 365
}

// IsValidMonthDay reports whether the month and day form a valid date in the year.
func (y Year) IsValidMonthDay(month Month, day int) bool {
	if month < January || month > December || day < 1 {
		return false
	}
	return day <= month.Length(y.IsLeap())
}

// AtDay combines the year with a day-of-year to create a date.
func (y Year) AtDay(dayOfYear int) (LocalDate, error) {
	return DateOfYearDay(int(y.year), dayOfYear)
}

// AtMonth returns the first day of the given month in the year.
func (y Year) AtMonth(month Month) (LocalDate, error) {
	return DateOf(int(y.year), month, 1)
}

// AtMonthDay combines the year with a month and day. February 29 becomes
// February 28 if the year is not a leap year; any other invalid day is an error.
func (y Year) AtMonthDay(month Month, day int) (LocalDate, error) {
	if month == February && day == 29 && !y.IsLeap() {
		day = 28
	}
	return DateOf(int(y.year), month, day)
}

// IsSupported reports whether the field can be queried or adjusted on a Year.
func (y Year) IsSupported(field Field) bool {
	return field == FieldYear || field == FieldYearOfEra || field == FieldEra
}

// Range returns the range of valid values for the field within this year.
func (y Year) Range(field Field) (ValueRange, error) {
	if !y.IsSupported(field) {
		return ValueRange{}, unsupportedFieldError(field)
	}
	if field == FieldYearOfEra {
		if y.year <= 0 {
			return rangeOf(1, MaxYear+1), nil
		}
		return rangeOf(1, MaxYear), nil
	}
	return field.Range(), nil
}

// Get returns the value of the field as an int.
func (y Year) Get(field Field) (int, error) {
	return getInt(field, y.GetInt64)
}

// GetInt64 returns the value of the field.
func (y Year) GetInt64(field Field) (int64, error) {
	switch field {
	case FieldYearOfEra:
		if y.year < 1 {
			return 1 - int64(y.year), nil
		}
		return int64(y.year), nil
	case FieldYear:
		return int64(y.year), nil
	case FieldEra:
		if y.year < 1 {
			return int64(BCE), nil
		}
		return int64(CE), nil
	}
	return 0, unsupportedFieldError(field)
}

// With returns a copy of the year with the field set to a new value.
func (y Year) With(field Field, value int64) (Year, error) {
	if !y.IsSupported(field) {
		return Year{}, unsupportedFieldError(field)
	}
	if err := field.checkValid(value); err != nil {
		return Year{}, err
	}
	switch field {
	case FieldYearOfEra:
		if y.year < 1 {
			return YearOf(int(1 - value))
		}
		return YearOf(int(value))
	case FieldYear:
		return YearOf(int(value))
	default: // FieldEra
		era, _ := y.GetInt64(FieldEra)
		if era == value {
			return y, nil
		}
		return YearOf(int(1 - int64(y.year)))
	}
}

// Plus returns a copy of the year with the amount of the unit added.
func (y Year) Plus(amount int64, unit Unit) (Year, error) {
	var factor int64
	switch unit {
	case Years:
		factor = 1
	case Decades:
		factor = 10
	case Centuries:
		factor = 100
	case Millennia:
		factor = 1000
	case Eras:
		era, _ := y.GetInt64(FieldEra)
		target, err := addExact(era, amount)
		if err != nil {
			return Year{}, err
		}
		return y.With(FieldEra, target)
	default:
		return Year{}, unsupportedUnitError(unit)
	}
	years, err := multiplyExact(amount, factor)
	if err != nil {
		return Year{}, err
	}
	return y.PlusYears(years)
}

// Minus returns a copy of the year with the amount of the unit subtracted.
func (y Year) Minus(amount int64, unit Unit) (Year, error) {
	if amount == math.MinInt64 {
		r, err := y.Plus(math.MaxInt64, unit)
		if err != nil {
			return Year{}, err
		}
		return r.Plus(1, unit)
	}
	return y.Plus(-amount, unit)
}

// PlusYears returns a copy of the year with the number of years added.
func (y Year) PlusYears(years int64) (Year, error) {
	if years == 0 {
		return y, nil
	}
	v, err := addExact(int64(y.year), years)
	if err != nil {
		return Year{}, err
	}
	return YearOf64(v)
}

// MinusYears returns a copy of the year with the number of years subtracted.
func (y Year) MinusYears(years int64) (Year, error) {
	return y.Minus(years, Years)
}

// Until returns the number of whole units from this year to the end year.
func (y Year) Until(end Year, unit Unit) (int64, error) {
	yearsUntil := int64(end.year) - int64(y.year)
	switch unit {
	case Years:
		return yearsUntil, nil
	case Decades:
		return yearsUntil / 10, nil
	case Centuries:
		return yearsUntil / 100, nil
	case Millennia:
		return yearsUntil / 1000, nil
	case Eras:
		endEra, _ := end.GetInt64(FieldEra)
		era, _ := y.GetInt64(FieldEra)
		return endEra - era, nil
	}
	return 0, unsupportedUnitError(unit)
}

// Compare returns -1, 0 or 1 as the year is before, equal to or after the other.
func (y Year) Compare(other Year) int {
	return compareInt64(int64(y.year), int64(other.year))
}

// IsAfter reports whether the year is after the other.
func (y Year) IsAfter(other Year) bool {
	return y.year > other.year
}

// IsBefore reports whether the year is before the other.
func (y Year) IsBefore(other Year) bool {
	return y.year < other.year
}

// String returns the year as a decimal number.
func (y Year) String() string {
	return strconv.Itoa(int(y.year))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (y Year) MarshalText() ([]byte, error) {
	return []byte(y.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (y *Year) UnmarshalText(b []byte) error {
	v, err := ParseYear(string(b))
	if err == nil {
		*y = v
	}
	return err
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
