package calendar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Period is a date-based amount of time in the ISO calendar, such as
// "2 years, 3 months and 4 days". The three components are independently
// signed and never normalized implicitly: 15 months stays 15 months.
//
// The zero value is the zero period and every factory returns it when all
// components are zero. Period values are immutable and comparable with ==.
type Period struct {
	years  int32
	months int32
	days   int32
}

// ZeroPeriod is the period of zero length.
var ZeroPeriod = Period{}

// periodPattern is ISO-8601 PnYnMnWnD with an optional leading sign that
// negates every component, each of which may carry its own sign.
var periodPattern = regexp.MustCompile(
	`(?i)^([-+]?)P(?:([-+]?[0-9]+)Y)?(?:([-+]?[0-9]+)M)?(?:([-+]?[0-9]+)W)?(?:([-+]?[0-9]+)D)?$`)

// PeriodOf returns a period of the given years, months and days.
func PeriodOf(years, months, days int32) Period {
	return Period{years: years, months: months, days: days}
}

// PeriodOfYears returns a period of the given number of years.
func PeriodOfYears(years int32) Period {
	return Period{years: years}
}

// PeriodOfMonths returns a period of the given number of months.
func PeriodOfMonths(months int32) Period {
	return Period{months: months}
}

// PeriodOfWeeks returns a period of the given number of weeks, stored as
// seven times as many days.
func PeriodOfWeeks(weeks int32) (Period, error) {
	days, err := multiplyExact32(weeks, 7)
	if err != nil {
		return Period{}, err
	}
	return Period{days: days}, nil
}

// PeriodOfDays returns a period of the given number of days.
func PeriodOfDays(days int32) Period {
	return Period{days: days}
}

// PeriodBetween returns the period between two dates, start inclusive and
// end exclusive. The components of the result share one sign.
func PeriodBetween(start, end LocalDate) Period {
	return start.Until(end)
}

// ParsePeriod parses an ISO-8601 period such as P1Y2M3D. The letters may be
// upper or lower case. A leading sign negates the whole period, each
// component may have its own sign, and weeks (PnW) are converted to days.
// At least one component must be present.
func ParsePeriod(text string) (Period, error) {
	m := periodPattern.FindStringSubmatchIndex(text)
	if m == nil || (m[4] < 0 && m[6] < 0 && m[8] < 0 && m[10] < 0) {
		return Period{}, parseError(text, 0, "text cannot be parsed to a Period", nil)
	}
	var negate int32 = 1
	if m[3] > m[2] && text[m[2]] == '-' {
		negate = -1
	}
	component := func(group int) (int32, error) {
		start, end := m[2*group], m[2*group+1]
		if start < 0 {
			return 0, nil
		}
		v, err := strconv.ParseInt(text[start:end], 10, 32)
		if err != nil {
			return 0, parseError(text, start, "text cannot be parsed to a Period", err)
		}
		r, err := multiplyExact32(int32(v), negate)
		if err != nil {
			return 0, parseError(text, start, "text cannot be parsed to a Period", err)
		}
		return r, nil
	}

	years, err := component(2)
	if err != nil {
		return Period{}, err
	}
	months, err := component(3)
	if err != nil {
		return Period{}, err
	}
	weeks, err := component(4)
	if err != nil {
		return Period{}, err
	}
	days, err := component(5)
	if err != nil {
		return Period{}, err
	}
	weekDays, err := multiplyExact32(weeks, 7)
	if err == nil {
		days, err = addExact32(days, weekDays)
	}
	if err != nil {
		return Period{}, parseError(text, 0, "text cannot be parsed to a Period", err)
	}
	return PeriodOf(years, months, days), nil
}

// MustParsePeriod is like ParsePeriod but panics on error. It is intended
// for package level variable initialization.
func MustParsePeriod(text string) Period {
	p, err := ParsePeriod(text)
	if err != nil {
		panic(err)
	}
	return p
}

// Years returns the number of years of the period.
func (p Period) Years() int {
	return int(p.years)
}

// Months returns the number of months of the period.
func (p Period) Months() int {
	return int(p.months)
}

// Days returns the number of days of the period.
func (p Period) Days() int {
	return int(p.days)
}

// Get returns the value of the unit, which must be Years, Months or Days.
func (p Period) Get(unit Unit) (int64, error) {
	switch unit {
	case Years:
		return int64(p.years), nil
	case Months:
		return int64(p.months), nil
	case Days:
		return int64(p.days), nil
	}
	return 0, unsupportedUnitError(unit)
}

// IsZero reports whether all three components are zero.
func (p Period) IsZero() bool {
	return p == ZeroPeriod
}

// IsNegative reports whether any component is negative.
func (p Period) IsNegative() bool {
	return p.years < 0 || p.months < 0 || p.days < 0
}

// WithYears returns a copy of the period with the years set.
func (p Period) WithYears(years int32) Period {
	p.years = years
	return p
}

// WithMonths returns a copy of the period with the months set.
func (p Period) WithMonths(months int32) Period {
	p.months = months
	return p
}

// WithDays returns a copy of the period with the days set.
func (p Period) WithDays(days int32) Period {
	p.days = days
	return p
}

// Plus returns the component-wise sum of the periods, without normalization.
func (p Period) Plus(other Period) (Period, error) {
	years, err := addExact32(p.years, other.years)
	if err != nil {
		return Period{}, err
	}
	months, err := addExact32(p.months, other.months)
	if err != nil {
		return Period{}, err
	}
	days, err := addExact32(p.days, other.days)
	if err != nil {
		return Period{}, err
	}
	return PeriodOf(years, months, days), nil
}

// Minus returns the component-wise difference of the periods.
func (p Period) Minus(other Period) (Period, error) {
	years, err := toInt32Exact(int64(p.years) - int64(other.years))
	if err != nil {
		return Period{}, err
	}
	months, err := toInt32Exact(int64(p.months) - int64(other.months))
	if err != nil {
		return Period{}, err
	}
	days, err := toInt32Exact(int64(p.days) - int64(other.days))
	if err != nil {
		return Period{}, err
	}
	return PeriodOf(years, months, days), nil
}

// PlusYears returns a copy of the period with the years added.
func (p Period) PlusYears(years int64) (Period, error) {
	if years == 0 {
		return p, nil
	}
	v, err := addExact(int64(p.years), years)
	if err != nil {
		return Period{}, err
	}
	if p.years, err = toInt32Exact(v); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PlusMonths returns a copy of the period with the months added.
func (p Period) PlusMonths(months int64) (Period, error) {
	if months == 0 {
		return p, nil
	}
	v, err := addExact(int64(p.months), months)
	if err != nil {
		return Period{}, err
	}
	if p.months, err = toInt32Exact(v); err != nil {
		return Period{}, err
	}
	return p, nil
}

// PlusDays returns a copy of the period with the days added.
func (p Period) PlusDays(days int64) (Period, error) {
	if days == 0 {
		return p, nil
	}
	v, err := addExact(int64(p.days), days)
	if err != nil {
		return Period{}, err
	}
	if p.days, err = toInt32Exact(v); err != nil {
		return Period{}, err
	}
	return p, nil
}

// MinusYears returns a copy of the period with the years subtracted.
func (p Period) MinusYears(years int64) (Period, error) {
	if years == math.MinInt64 {
		return Period{}, overflowError("negate years")
	}
	return p.PlusYears(-years)
}

// MinusMonths returns a copy of the period with the months subtracted.
func (p Period) MinusMonths(months int64) (Period, error) {
	if months == math.MinInt64 {
		return Period{}, overflowError("negate months")
	}
	return p.PlusMonths(-months)
}

// MinusDays returns a copy of the period with the days subtracted.
func (p Period) MinusDays(days int64) (Period, error) {
	if days == math.MinInt64 {
		return Period{}, overflowError("negate days")
	}
	return p.PlusDays(-days)
}

// MultipliedBy returns the period with each component multiplied by the scalar.
func (p Period) MultipliedBy(scalar int32) (Period, error) {
	if p.IsZero() || scalar == 1 {
		return p, nil
	}
	years, err := multiplyExact32(p.years, scalar)
	if err != nil {
		return Period{}, err
	}
	months, err := multiplyExact32(p.months, scalar)
	if err != nil {
		return Period{}, err
	}
	days, err := multiplyExact32(p.days, scalar)
	if err != nil {
		return Period{}, err
	}
	return PeriodOf(years, months, days), nil
}

// Negated returns the period with each component negated.
func (p Period) Negated() (Period, error) {
	return p.MultipliedBy(-1)
}

// Normalized folds months into years so that the months are within
// -11..11, with the years and months sharing a sign. Days are untouched.
func (p Period) Normalized() (Period, error) {
	totalMonths := p.ToTotalMonths()
	splitYears := totalMonths / 12
	splitMonths := int32(totalMonths % 12)
	if splitYears == int64(p.years) && splitMonths == p.months {
		return p, nil
	}
	years, err := toInt32Exact(splitYears)
	if err != nil {
		return Period{}, err
	}
	return PeriodOf(years, splitMonths, p.days), nil
}

// ToTotalMonths returns years*12 + months.
func (p Period) ToTotalMonths() int64 {
	return int64(p.years)*12 + int64(p.months)
}

// plusUnit is implemented by the date and date-time types a period can be
// added to.
type plusUnit[T any] interface {
	Plus(amount int64, unit Unit) (T, error)
}

// addPeriod adds the years and months in a single Months step, so that
// end-of-month clamping happens once, then the days.
func addPeriod[T plusUnit[T]](t T, p Period) (T, error) {
	var err error
	if p.months == 0 {
		if p.years != 0 {
			if t, err = t.Plus(int64(p.years), Years); err != nil {
				return t, err
			}
		}
	} else if totalMonths := p.ToTotalMonths(); totalMonths != 0 {
		if t, err = t.Plus(totalMonths, Months); err != nil {
			return t, err
		}
	}
	if p.days != 0 {
		return t.Plus(int64(p.days), Days)
	}
	return t, nil
}

// subtractPeriod mirrors addPeriod with negated amounts.
func subtractPeriod[T plusUnit[T]](t T, p Period) (T, error) {
	var err error
	if p.months == 0 {
		if p.years != 0 {
			if t, err = t.Plus(-int64(p.years), Years); err != nil {
				return t, err
			}
		}
	} else if totalMonths := p.ToTotalMonths(); totalMonths != 0 {
		if t, err = t.Plus(-totalMonths, Months); err != nil {
			return t, err
		}
	}
	if p.days != 0 {
		return t.Plus(-int64(p.days), Days)
	}
	return t, nil
}

// AddTo returns the date with the period added. If the period has months,
// years and months are added together as months, then the days are added.
func (p Period) AddTo(d LocalDate) (LocalDate, error) {
	return addPeriod(d, p)
}

// SubtractFrom returns the date with the period subtracted.
func (p Period) SubtractFrom(d LocalDate) (LocalDate, error) {
	return subtractPeriod(d, p)
}

// String returns the period in ISO-8601 format, such as P6Y3M1D.
// The zero period is P0D.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var b strings.Builder
	b.WriteByte('P')
	if p.years != 0 {
		b.WriteString(strconv.Itoa(int(p.years)))
		b.WriteByte('Y')
	}
	if p.months != 0 {
		b.WriteString(strconv.Itoa(int(p.months)))
		b.WriteByte('M')
	}
	if p.days != 0 {
		b.WriteString(strconv.Itoa(int(p.days)))
		b.WriteByte('D')
	}
	return b.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (p *Period) UnmarshalText(b []byte) error {
	v, err := ParsePeriod(string(b))
	if err == nil {
		*p = v
	}
	return err
}
