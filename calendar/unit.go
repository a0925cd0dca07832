package calendar

import (
	"fmt"
	"math"
	"time"
)

// Unit is a standard unit of calendar time.
type Unit int

// Standard units, from the smallest to the largest.
const (
	Nanos Unit = iota + 1
	Micros
	Millis
	Seconds
	Minutes
	Hours
	HalfDays
	Days
	Weeks
	Months
	Years
	Decades
	Centuries
	Millennia
	Eras
	Forever
)

// Time-of-day constants.
const (
	hoursPerDay      = 24
	minutesPerHour   = 60
	minutesPerDay    = minutesPerHour * hoursPerDay
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
	secondsPerDay    = secondsPerHour * hoursPerDay
	millisPerDay     = secondsPerDay * 1000
	microsPerDay     = secondsPerDay * 1000_000
	nanosPerMilli    = 1000_000
	nanosPerSecond   = 1000_000_000
	nanosPerMinute   = nanosPerSecond * secondsPerMinute
	nanosPerHour     = nanosPerMinute * minutesPerHour
	nanosPerDay      = nanosPerHour * hoursPerDay
)

type unitInfo struct {
	name string
	// estimated duration in seconds and nanoseconds
	seconds int64
	nanos   int64
}

var units = [...]unitInfo{
	Nanos:     {"Nanos", 0, 1},
	Micros:    {"Micros", 0, 1000},
	Millis:    {"Millis", 0, 1000_000},
	Seconds:   {"Seconds", 1, 0},
	Minutes:   {"Minutes", 60, 0},
	Hours:     {"Hours", 3600, 0},
	HalfDays:  {"HalfDays", 43200, 0},
	Days:      {"Days", 86400, 0},
	Weeks:     {"Weeks", 7 * 86400, 0},
	Months:    {"Months", 31556952 / 12, 0},
	Years:     {"Years", 31556952, 0},
	Decades:   {"Decades", 31556952 * 10, 0},
	Centuries: {"Centuries", 31556952 * 100, 0},
	Millennia: {"Millennia", 31556952 * 1000, 0},
	Eras:      {"Eras", 31556952 * 1000_000_000, 0},
	Forever:   {"Forever", math.MaxInt64, 999_999_999},
}

func (u Unit) valid() bool {
	return u >= Nanos && u <= Forever
}

// String returns the name of the unit.
func (u Unit) String() string {
	if !u.valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return units[u].name
}

// IsDateBased reports whether the unit is a date unit (days or longer,
// excluding Forever).
func (u Unit) IsDateBased() bool {
	return u >= Days && u < Forever
}

// IsTimeBased reports whether the unit is shorter than a day.
func (u Unit) IsTimeBased() bool {
	return u >= Nanos && u < Days
}

// IsDurationEstimated reports whether the unit length is an estimate, which
// holds for all date based units.
func (u Unit) IsDurationEstimated() bool {
	return u >= Days
}

// Duration returns the (estimated) length of the unit as a time.Duration,
// saturating at the largest representable duration.
func (u Unit) Duration() time.Duration {
	if !u.valid() {
		return 0
	}
	info := units[u]
	if info.seconds > int64(math.MaxInt64/time.Second) {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(info.seconds)*time.Second + time.Duration(info.nanos)
}
