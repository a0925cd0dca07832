package calendar

import (
	"iter"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	// days in a 400 year cycle
	daysPerCycle = 146_097
	// days from 0000-01-01 to 1970-01-01
	days0000To1970 = daysPerCycle*5 - (30*365 + 7)

	minEpochDay = -365_243_219_162
	maxEpochDay = 365_241_780_471
)

// LocalDate is a date without a time-of-day or offset in the proleptic ISO
// calendar, such as 2007-12-03. A LocalDate is always valid: the day exists
// in the given year and month. The zero value is 0000-01-01.
//
// LocalDate values are immutable and comparable with ==.
type LocalDate struct {
	year  int32
	month int8
	day   int8
}

// Predefined dates.
var (
	// MinDate is the earliest supported date, -999999999-01-01.
	MinDate = LocalDate{year: MinYear, month: 1, day: 1}
	// MaxDate is the latest supported date, +999999999-12-31.
	MaxDate = LocalDate{year: MaxYear, month: 12, day: 31}
	// EpochDate is 1970-01-01, epoch day zero.
	EpochDate = LocalDate{year: 1970, month: 1, day: 1}
)

// DateOf returns the date of the given year, month and day. A day that does
// not exist in the month, such as February 30, is an ErrInvalidDate error.
func DateOf(year int, month Month, day int) (LocalDate, error) {
	if err := FieldYear.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if err := FieldMonthOfYear.checkValid(int64(month)); err != nil {
		return LocalDate{}, err
	}
	if err := FieldDayOfMonth.checkValid(int64(day)); err != nil {
		return LocalDate{}, err
	}
	return create(int32(year), month, day)
}

// MustDateOf is like DateOf but panics on error. It is intended for package
// level variable initialization.
func MustDateOf(year int, month Month, day int) LocalDate {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfYearDay returns the date of the given year and day-of-year.
func DateOfYearDay(year int, dayOfYear int) (LocalDate, error) {
	if err := FieldYear.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	if err := FieldDayOfYear.checkValid(int64(dayOfYear)); err != nil {
		return LocalDate{}, err
	}
	leap := IsLeap(int64(year))
	if dayOfYear == 366 && !leap {
		return LocalDate{}, invalidDateError("'DayOfYear 366' as '" +
			strconv.Itoa(year) + "' is not a leap year")
	}
	moy := Month((dayOfYear-1)/31 + 1)
	monthEnd := moy.FirstDayOfYear(leap) + moy.Length(leap) - 1
	if dayOfYear > monthEnd {
		moy = moy.Plus(1)
	}
	dom := dayOfYear - moy.FirstDayOfYear(leap) + 1
	return LocalDate{year: int32(year), month: int8(moy), day: int8(dom)}, nil
}

// DateOfEpochDay returns the date of the given epoch day, where day 0 is
// 1970-01-01.
func DateOfEpochDay(epochDay int64) (LocalDate, error) {
	if err := FieldEpochDay.checkValid(epochDay); err != nil {
		return LocalDate{}, err
	}
	zeroDay := epochDay + days0000To1970
	// shift to a year starting on March 1 so the leap day ends the cycle
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPerCycle - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPerCycle
	}
	yearEst := (400*zeroDay + 591) / daysPerCycle
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		// the estimate is one year too far near cycle boundaries
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust

	marchDoy0 := int(doyEst)
	marchMonth0 := (marchDoy0*5 + 2) / 153
	month := (marchMonth0+2)%12 + 1
	dom := marchDoy0 - (marchMonth0*306+5)/10 + 1
	yearEst += int64(marchMonth0 / 10)

	if err := FieldYear.checkValid(yearEst); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{year: int32(yearEst), month: int8(month), day: int8(dom)}, nil
}

// DateOfTime returns the date of t in its own location. Years outside
// MinYear to MaxYear are a range error.
func DateOfTime(t time.Time) (LocalDate, error) {
	year, month, day := t.Date()
	if err := FieldYear.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	return LocalDate{year: int32(year), month: int8(month), day: int8(day)}, nil
}

// ParseDate parses an ISO-8601 date such as 2007-12-03. Years outside
// 0000-9999 are written with a sign, e.g. +12345-01-01 or -0044-03-15.
func ParseDate(text string) (LocalDate, error) {
	s := textScanner{text: text}
	d, err := s.scanDate()
	if err != nil {
		return LocalDate{}, err
	}
	if err := s.end(); err != nil {
		return LocalDate{}, err
	}
	return d, nil
}

// create validates the day against the year and month.
func create(year int32, month Month, day int) (LocalDate, error) {
	if day > 28 {
		dom := month.Length(IsLeap(int64(year)))
		if day > dom {
			if day == 29 {
				return LocalDate{}, invalidDateError("'February 29' as '" +
					strconv.Itoa(int(year)) + "' is not a leap year")
			}
			return LocalDate{}, invalidDateError("'" + month.String() + " " +
				strconv.Itoa(day) + "'")
		}
	}
	return LocalDate{year: year, month: int8(month), day: int8(day)}, nil
}

// resolvePreviousValid clamps the day to the last valid day of the month.
func resolvePreviousValid(year int32, month Month, day int) LocalDate {
	if length := month.Length(IsLeap(int64(year))); day > length {
		day = length
	}
	return LocalDate{year: year, month: int8(month), day: int8(day)}
}

// Year returns the year field.
func (d LocalDate) Year() int {
	return int(d.year)
}

// Month returns the month-of-year field.
func (d LocalDate) Month() Month {
	return Month(d.month)
}

// MonthValue returns the month-of-year as a number from 1 to 12.
func (d LocalDate) MonthValue() int {
	return int(d.month)
}

// DayOfMonth returns the day-of-month field.
func (d LocalDate) DayOfMonth() int {
	return int(d.day)
}

// DayOfYear returns the day-of-year, from 1 to 365, or 366 in a leap year.
func (d LocalDate) DayOfYear() int {
	return d.Month().FirstDayOfYear(d.IsLeapYear()) + int(d.day) - 1
}

// DayOfWeek returns the day-of-week.
func (d LocalDate) DayOfWeek() DayOfWeek {
	return DayOfWeek(floorMod(d.ToEpochDay()+3, 7) + 1)
}

// Era returns the era of the date.
func (d LocalDate) Era() Era {
	if d.year >= 1 {
		return CE
	}
	return BCE
}

// IsLeapYear reports whether the year of the date is a leap year.
func (d LocalDate) IsLeapYear() bool {
	return IsLeap(int64(d.year))
}

// LengthOfMonth returns the length of the month of the date in days.
func (d LocalDate) LengthOfMonth() int {
	return d.Month().Length(d.IsLeapYear())
}

// LengthOfYear returns the length of the year of the date in days.
func (d LocalDate) LengthOfYear() int {
	if d.IsLeapYear() {
		return 366
	}
	return 365
}

// ProlepticMonth returns year*12 + month - 1.
func (d LocalDate) ProlepticMonth() int64 {
	return int64(d.year)*12 + int64(d.month) - 1
}

// ToEpochDay returns the number of days since 1970-01-01.
func (d LocalDate) ToEpochDay() int64 {
	y := int64(d.year)
	m := int64(d.month)
	var total int64
	total += 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += (367*m - 362) / 12
	total += int64(d.day) - 1
	if m > 2 {
		total--
		if !d.IsLeapYear() {
			total--
		}
	}
	return total - days0000To1970
}

// IsSupported reports whether the field can be queried or adjusted on a
// LocalDate. All date based fields are supported.
func (d LocalDate) IsSupported(field Field) bool {
	return field.IsDateBased()
}

// Range returns the range of valid values for the field within this date,
// e.g. 1-30 for the day-of-month of April.
func (d LocalDate) Range(field Field) (ValueRange, error) {
	if !d.IsSupported(field) {
		return ValueRange{}, unsupportedFieldError(field)
	}
	switch field {
	case FieldDayOfMonth:
		return rangeOf(1, int64(d.LengthOfMonth())), nil
	case FieldDayOfYear:
		return rangeOf(1, int64(d.LengthOfYear())), nil
	case FieldAlignedWeekOfMonth:
		if d.Month() == February && !d.IsLeapYear() {
			return rangeOf(1, 4), nil
		}
		return rangeOf(1, 5), nil
	case FieldYearOfEra:
		if d.year <= 0 {
			return rangeOf(1, MaxYear+1), nil
		}
		return rangeOf(1, MaxYear), nil
	}
	return field.Range(), nil
}

// Get returns the value of the field as an int. EpochDay and ProlepticMonth
// do not fit an int32 and must be read with GetInt64.
func (d LocalDate) Get(field Field) (int, error) {
	return getInt(field, d.GetInt64)
}

// GetInt64 returns the value of the field.
func (d LocalDate) GetInt64(field Field) (int64, error) {
	switch field {
	case FieldDayOfWeek:
		return int64(d.DayOfWeek()), nil
	case FieldAlignedDayOfWeekInMonth:
		return int64((d.day-1)%7 + 1), nil
	case FieldAlignedDayOfWeekInYear:
		return int64((d.DayOfYear()-1)%7 + 1), nil
	case FieldDayOfMonth:
		return int64(d.day), nil
	case FieldDayOfYear:
		return int64(d.DayOfYear()), nil
	case FieldEpochDay:
		return d.ToEpochDay(), nil
	case FieldAlignedWeekOfMonth:
		return int64((d.day-1)/7 + 1), nil
	case FieldAlignedWeekOfYear:
		return int64((d.DayOfYear()-1)/7 + 1), nil
	case FieldMonthOfYear:
		return int64(d.month), nil
	case FieldProlepticMonth:
		return d.ProlepticMonth(), nil
	case FieldYearOfEra:
		if d.year >= 1 {
			return int64(d.year), nil
		}
		return 1 - int64(d.year), nil
	case FieldYear:
		return int64(d.year), nil
	case FieldEra:
		return int64(d.Era()), nil
	}
	return 0, unsupportedFieldError(field)
}

// With returns a copy of the date with the field set to a new value.
//
// Setting the day-of-week or an aligned field moves the date by whole days
// or weeks. Setting the month, year, year-of-era or proleptic month clamps
// the day-of-month to the end of the resulting month. Setting the
// day-of-month or day-of-year directly fails if the day does not exist.
// Setting the era flips the year (1 - year) only if the era changes.
func (d LocalDate) With(field Field, value int64) (LocalDate, error) {
	if !d.IsSupported(field) {
		return LocalDate{}, unsupportedFieldError(field)
	}
	if err := field.checkValid(value); err != nil {
		return LocalDate{}, err
	}
	switch field {
	case FieldDayOfWeek:
		return d.PlusDays(value - int64(d.DayOfWeek()))
	case FieldAlignedDayOfWeekInMonth, FieldAlignedDayOfWeekInYear:
		current, _ := d.GetInt64(field)
		return d.PlusDays(value - current)
	case FieldAlignedWeekOfMonth, FieldAlignedWeekOfYear:
		current, _ := d.GetInt64(field)
		return d.PlusWeeks(value - current)
	case FieldDayOfMonth:
		return d.WithDayOfMonth(int(value))
	case FieldDayOfYear:
		return d.WithDayOfYear(int(value))
	case FieldEpochDay:
		return DateOfEpochDay(value)
	case FieldMonthOfYear:
		return d.WithMonth(Month(value))
	case FieldProlepticMonth:
		return d.PlusMonths(value - d.ProlepticMonth())
	case FieldYearOfEra:
		if d.year >= 1 {
			return d.WithYear(int(value))
		}
		return d.WithYear(int(1 - value))
	case FieldYear:
		return d.WithYear(int(value))
	default: // FieldEra
		if int64(d.Era()) == value {
			return d, nil
		}
		return d.WithYear(int(1 - int64(d.year)))
	}
}

// WithYear returns a copy of the date with the year changed, clamping the
// day-of-month if it is invalid in the new year.
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if year == int(d.year) {
		return d, nil
	}
	if err := FieldYear.checkValid(int64(year)); err != nil {
		return LocalDate{}, err
	}
	return resolvePreviousValid(int32(year), d.Month(), int(d.day)), nil
}

// WithMonth returns a copy of the date with the month changed, clamping the
// day-of-month if it is invalid in the new month.
func (d LocalDate) WithMonth(month Month) (LocalDate, error) {
	if month == d.Month() {
		return d, nil
	}
	if err := FieldMonthOfYear.checkValid(int64(month)); err != nil {
		return LocalDate{}, err
	}
	return resolvePreviousValid(d.year, month, int(d.day)), nil
}

// WithDayOfMonth returns a copy of the date with the day-of-month changed.
// A day that does not exist in the month is an error.
func (d LocalDate) WithDayOfMonth(day int) (LocalDate, error) {
	if day == int(d.day) {
		return d, nil
	}
	return DateOf(int(d.year), d.Month(), day)
}

// WithDayOfYear returns a copy of the date with the day-of-year changed.
func (d LocalDate) WithDayOfYear(dayOfYear int) (LocalDate, error) {
	if dayOfYear == d.DayOfYear() {
		return d, nil
	}
	return DateOfYearDay(int(d.year), dayOfYear)
}

// Plus returns a copy of the date with the amount of the unit added.
// Supported units are Days, Weeks, Months, Years, Decades, Centuries,
// Millennia and Eras.
func (d LocalDate) Plus(amount int64, unit Unit) (LocalDate, error) {
	switch unit {
	case Days:
		return d.PlusDays(amount)
	case Weeks:
		return d.PlusWeeks(amount)
	case Months:
		return d.PlusMonths(amount)
	case Years:
		return d.PlusYears(amount)
	case Decades:
		return d.plusScaledYears(amount, 10)
	case Centuries:
		return d.plusScaledYears(amount, 100)
	case Millennia:
		return d.plusScaledYears(amount, 1000)
	case Eras:
		era, err := addExact(int64(d.Era()), amount)
		if err != nil {
			return LocalDate{}, err
		}
		return d.With(FieldEra, era)
	}
	return LocalDate{}, unsupportedUnitError(unit)
}

func (d LocalDate) plusScaledYears(amount, factor int64) (LocalDate, error) {
	years, err := multiplyExact(amount, factor)
	if err != nil {
		return LocalDate{}, err
	}
	return d.PlusYears(years)
}

// Minus returns a copy of the date with the amount of the unit subtracted.
func (d LocalDate) Minus(amount int64, unit Unit) (LocalDate, error) {
	if amount == math.MinInt64 {
		r, err := d.Plus(math.MaxInt64, unit)
		if err != nil {
			return LocalDate{}, err
		}
		return r.Plus(1, unit)
	}
	return d.Plus(-amount, unit)
}

// PlusDays returns a copy of the date with the number of days added.
func (d LocalDate) PlusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	// stay within this or the next month without an epoch day round trip
	if dom := int64(d.day) + days; dom > 0 && days < 60 {
		if dom <= 28 {
			return LocalDate{year: d.year, month: d.month, day: int8(dom)}, nil
		}
		if dom <= 59 { // 59th Jan is 28th Feb, 59th Feb is 31st Mar
			monthLen := int64(d.LengthOfMonth())
			switch {
			case dom <= monthLen:
				return LocalDate{year: d.year, month: d.month, day: int8(dom)}, nil
			case d.month < 12:
				return LocalDate{year: d.year, month: d.month + 1, day: int8(dom - monthLen)}, nil
			default:
				if err := FieldYear.checkValid(int64(d.year) + 1); err != nil {
					return LocalDate{}, err
				}
				return LocalDate{year: d.year + 1, month: 1, day: int8(dom - monthLen)}, nil
			}
		}
	}
	epochDay, err := addExact(d.ToEpochDay(), days)
	if err != nil {
		return LocalDate{}, err
	}
	return DateOfEpochDay(epochDay)
}

// PlusWeeks returns a copy of the date with the number of weeks added.
func (d LocalDate) PlusWeeks(weeks int64) (LocalDate, error) {
	days, err := multiplyExact(weeks, 7)
	if err != nil {
		return LocalDate{}, err
	}
	return d.PlusDays(days)
}

// PlusMonths returns a copy of the date with the number of months added.
// The day-of-month is clamped to the end of the resulting month, so
// 2007-03-31 plus one month is 2007-04-30.
func (d LocalDate) PlusMonths(months int64) (LocalDate, error) {
	if months == 0 {
		return d, nil
	}
	calcMonths, err := addExact(d.ProlepticMonth(), months)
	if err != nil {
		return LocalDate{}, err
	}
	newYear := floorDiv(calcMonths, 12)
	if err := FieldYear.checkValid(newYear); err != nil {
		return LocalDate{}, err
	}
	newMonth := Month(floorMod(calcMonths, 12) + 1)
	return resolvePreviousValid(int32(newYear), newMonth, int(d.day)), nil
}

// PlusYears returns a copy of the date with the number of years added.
// February 29 becomes February 28 if the resulting year is not a leap year.
func (d LocalDate) PlusYears(years int64) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	newYear, err := addExact(int64(d.year), years)
	if err != nil {
		return LocalDate{}, err
	}
	if err := FieldYear.checkValid(newYear); err != nil {
		return LocalDate{}, err
	}
	return resolvePreviousValid(int32(newYear), d.Month(), int(d.day)), nil
}

// MinusDays returns a copy of the date with the number of days subtracted.
func (d LocalDate) MinusDays(days int64) (LocalDate, error) {
	return d.Minus(days, Days)
}

// MinusWeeks returns a copy of the date with the number of weeks subtracted.
func (d LocalDate) MinusWeeks(weeks int64) (LocalDate, error) {
	return d.Minus(weeks, Weeks)
}

// MinusMonths returns a copy of the date with the number of months subtracted.
func (d LocalDate) MinusMonths(months int64) (LocalDate, error) {
	return d.Minus(months, Months)
}

// MinusYears returns a copy of the date with the number of years subtracted.
func (d LocalDate) MinusYears(years int64) (LocalDate, error) {
	return d.Minus(years, Years)
}

// PlusPeriod returns a copy of the date with the period added.
func (d LocalDate) PlusPeriod(p Period) (LocalDate, error) {
	return p.AddTo(d)
}

// MinusPeriod returns a copy of the date with the period subtracted.
func (d LocalDate) MinusPeriod(p Period) (LocalDate, error) {
	return p.SubtractFrom(d)
}

// Until returns the period between this date and the end date.
//
// The result is computed by removing complete months, then the remaining
// days, adjusting so that the years, months and days share one sign.
// The end date is exclusive.
func (d LocalDate) Until(end LocalDate) Period {
	totalMonths := end.ProlepticMonth() - d.ProlepticMonth()
	days := int64(end.day) - int64(d.day)
	if totalMonths > 0 && days < 0 {
		totalMonths--
		calcDate, _ := d.PlusMonths(totalMonths) // between two valid dates
		days = end.ToEpochDay() - calcDate.ToEpochDay()
	} else if totalMonths < 0 && days > 0 {
		totalMonths++
		days -= int64(end.LengthOfMonth())
	}
	years := totalMonths / 12
	months := totalMonths % 12
	return PeriodOf(int32(years), int32(months), int32(days))
}

// UntilUnit returns the number of complete units between this date and the
// end date. The result is negative if the end is before this date.
func (d LocalDate) UntilUnit(end LocalDate, unit Unit) (int64, error) {
	switch unit {
	case Days:
		return d.daysUntil(end), nil
	case Weeks:
		return d.daysUntil(end) / 7, nil
	case Months:
		return d.monthsUntil(end), nil
	case Years:
		return d.monthsUntil(end) / 12, nil
	case Decades:
		return d.monthsUntil(end) / 120, nil
	case Centuries:
		return d.monthsUntil(end) / 1200, nil
	case Millennia:
		return d.monthsUntil(end) / 12000, nil
	case Eras:
		return int64(end.Era()) - int64(d.Era()), nil
	}
	return 0, unsupportedUnitError(unit)
}

func (d LocalDate) daysUntil(end LocalDate) int64 {
	return end.ToEpochDay() - d.ToEpochDay()
}

func (d LocalDate) monthsUntil(end LocalDate) int64 {
	packed1 := d.ProlepticMonth()*32 + int64(d.day)
	packed2 := end.ProlepticMonth()*32 + int64(end.day)
	return (packed2 - packed1) / 32
}

// DatesUntil returns the sequence of dates from this date (inclusive) to the
// end date (exclusive) in steps of one day. The sequence may be iterated
// any number of times. It is an error if the end is before this date.
func (d LocalDate) DatesUntil(end LocalDate) (iter.Seq[LocalDate], error) {
	startDay, endDay := d.ToEpochDay(), end.ToEpochDay()
	if endDay < startDay {
		return nil, illegalArgumentError(end.String() + " < " + d.String())
	}
	return func(yield func(LocalDate) bool) {
		for day := startDay; day < endDay; day++ {
			date, _ := DateOfEpochDay(day) // within [d, end)
			if !yield(date) {
				return
			}
		}
	}, nil
}

// DatesUntilStep returns the sequence of dates from this date (inclusive)
// to the end date (exclusive), the n-th element being this date plus n times
// the step. The months and days of the step must not have opposite signs,
// the step must not be zero, and its sign must lead from this date towards
// the end date.
func (d LocalDate) DatesUntilStep(end LocalDate, step Period) (iter.Seq[LocalDate], error) {
	if step.IsZero() {
		return nil, illegalArgumentError("step is zero")
	}
	endDay := end.ToEpochDay()
	startDay := d.ToEpochDay()
	until := endDay - startDay
	months := step.ToTotalMonths()
	days := int64(step.days)
	if (months < 0 && days > 0) || (months > 0 && days < 0) {
		return nil, illegalArgumentError("period months and days are of opposite sign")
	}
	if until == 0 {
		return func(func(LocalDate) bool) {}, nil
	}
	var sign int64 = -1
	if months > 0 || days > 0 {
		sign = 1
	}
	if (sign < 0) != (until < 0) {
		op := " < "
		if sign < 0 {
			op = " > "
		}
		return nil, illegalArgumentError(end.String() + op + d.String())
	}

	if months == 0 {
		steps := (until - sign) / days // non-negative
		return func(yield func(LocalDate) bool) {
			for n := int64(0); n <= steps; n++ {
				date, _ := DateOfEpochDay(startDay + n*days)
				if !yield(date) {
					return
				}
			}
		}, nil
	}

	// 48699/1600 = 365.2425/12, no overflow, non-negative result
	steps := until*1600/(months*48699+days*1600) + 1
	addMonths := months * steps
	addDays := days * steps
	var maxAddMonths int64
	if months > 0 {
		maxAddMonths = MaxDate.ProlepticMonth() - d.ProlepticMonth()
	} else {
		maxAddMonths = d.ProlepticMonth() - MinDate.ProlepticMonth()
	}
	overshoots := func(addMonths, addDays int64) bool {
		if addMonths*sign > maxAddMonths {
			return true
		}
		shifted, err := d.PlusMonths(addMonths)
		if err != nil {
			return true
		}
		return (shifted.ToEpochDay()+addDays)*sign >= endDay*sign
	}
	// the estimate is at most two steps too far
	if overshoots(addMonths, addDays) {
		steps--
		addMonths -= months
		addDays -= days
		if overshoots(addMonths, addDays) {
			steps--
		}
	}
	return func(yield func(LocalDate) bool) {
		for n := int64(0); n <= steps; n++ {
			shifted, err := d.PlusMonths(months * n)
			if err != nil {
				return
			}
			date, err := shifted.PlusDays(days * n)
			if err != nil || !yield(date) {
				return
			}
		}
	}, nil
}

// AtTime combines the date with a time-of-day.
func (d LocalDate) AtTime(t LocalTime) LocalDateTime {
	return DateTimeOf(d, t)
}

// AtStartOfDay returns the date-time at midnight at the start of the date.
func (d LocalDate) AtStartOfDay() LocalDateTime {
	return DateTimeOf(d, Midnight)
}

// Compare returns -1, 0 or 1 as the date is before, equal to or after the
// other, comparing the year, then the month, then the day.
func (d LocalDate) Compare(other LocalDate) int {
	if c := compareInt64(int64(d.year), int64(other.year)); c != 0 {
		return c
	}
	if c := compareInt64(int64(d.month), int64(other.month)); c != 0 {
		return c
	}
	return compareInt64(int64(d.day), int64(other.day))
}

// IsAfter reports whether the date is after the other.
func (d LocalDate) IsAfter(other LocalDate) bool {
	return d.Compare(other) > 0
}

// IsBefore reports whether the date is before the other.
func (d LocalDate) IsBefore(other LocalDate) bool {
	return d.Compare(other) < 0
}

// String returns the date in ISO-8601 format, such as 2007-12-03. Years
// beyond 9999 are prefixed with a plus sign.
func (d LocalDate) String() string {
	var b strings.Builder
	b.Grow(10)
	d.appendTo(&b)
	return b.String()
}

func (d LocalDate) appendTo(b *strings.Builder) {
	year := int64(d.year)
	abs := year
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs < 1000:
		if year < 0 {
			b.WriteByte('-')
		}
		writePadded(b, abs, 4)
	default:
		if year > 9999 {
			b.WriteByte('+')
		}
		b.WriteString(strconv.FormatInt(year, 10))
	}
	b.WriteByte('-')
	writePadded(b, int64(d.month), 2)
	b.WriteByte('-')
	writePadded(b, int64(d.day), 2)
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO-8601 format.
func (d LocalDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *LocalDate) UnmarshalText(b []byte) error {
	v, err := ParseDate(string(b))
	if err == nil {
		*d = v
	}
	return err
}
