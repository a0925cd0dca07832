package calendar

import "fmt"

// Month is a month-of-year in the ISO calendar, January = 1.
type Month int

// Months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// MonthOf returns the Month for the given value, from 1 (January) to 12 (December).
func MonthOf(month int) (Month, error) {
	if month < 1 || month > 12 {
		return 0, fieldRangeError(FieldMonthOfYear, int64(month), FieldMonthOfYear.Range())
	}
	return Month(month), nil
}

// String returns the upper case English name of the month.
func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Plus returns the month that is the given number of months after this one,
// rolling around the end of the year.
func (m Month) Plus(months int64) Month {
	amount := int(months % 12)
	return Month((int(m)+amount+11)%12 + 1)
}

// Length returns the length of the month in days.
func (m Month) Length(leapYear bool) int {
	switch m {
	case February:
		if leapYear {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	default:
		return 31
	}
}

// MinLength returns the minimum length of the month in days.
func (m Month) MinLength() int {
	return m.Length(false)
}

// MaxLength returns the maximum length of the month in days.
func (m Month) MaxLength() int {
	return m.Length(true)
}

// FirstDayOfYear returns the day-of-year of the first day of the month.
func (m Month) FirstDayOfYear(leapYear bool) int {
	leap := 0
	if leapYear {
		leap = 1
	}
	switch m {
	case January:
		return 1
	case February:
		return 32
	case March:
		return 60 + leap
	case April:
		return 91 + leap
	case May:
		return 121 + leap
	case June:
		return 152 + leap
	case July:
		return 182 + leap
	case August:
		return 213 + leap
	case September:
		return 244 + leap
	case October:
		return 274 + leap
	case November:
		return 305 + leap
	default:
		return 335 + leap
	}
}

// DayOfWeek is a day-of-week following ISO-8601, Monday = 1 and Sunday = 7.
type DayOfWeek int

// Days of the week.
const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayOfWeekNames = [...]string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// DayOfWeekOf returns the DayOfWeek for the given value, from 1 (Monday) to 7 (Sunday).
func DayOfWeekOf(dayOfWeek int) (DayOfWeek, error) {
	if dayOfWeek < 1 || dayOfWeek > 7 {
		return 0, fieldRangeError(FieldDayOfWeek, int64(dayOfWeek), FieldDayOfWeek.Range())
	}
	return DayOfWeek(dayOfWeek), nil
}

// String returns the upper case English name of the day.
func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayOfWeekNames[d-1]
}

// Plus returns the day-of-week that is the given number of days after this one.
func (d DayOfWeek) Plus(days int64) DayOfWeek {
	amount := int(days % 7)
	return DayOfWeek((int(d)+amount+6)%7 + 1)
}

// Era is an era in the ISO calendar: BCE before year 1, CE from year 1.
type Era int

// ISO eras.
const (
	BCE Era = 0
	CE  Era = 1
)

// String returns the era abbreviation.
func (e Era) String() string {
	switch e {
	case BCE:
		return "BCE"
	case CE:
		return "CE"
	}
	return fmt.Sprintf("Era(%d)", int(e))
}
