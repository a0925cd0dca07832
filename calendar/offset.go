package calendar

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/reugn/go-calendar/logger"
)

const (
	maxOffsetHours   = 18
	maxOffsetSeconds = maxOffsetHours * secondsPerHour
	// offsets that are a multiple of this many seconds are memoized
	cacheableOffsetSeconds = 15 * secondsPerMinute
)

// ZoneOffset is a fixed offset from UTC, such as +02:00, in the range
// -18:00 to +18:00. The zero value is UTC.
//
// Equality is defined by the total number of seconds; ZoneOffset values
// may be compared with ==.
type ZoneOffset struct {
	totalSeconds int32
}

// Predefined offsets.
var (
	// UTC is the offset for UTC, with the ID "Z".
	UTC = ZoneOffset{}
	// MinOffset is the smallest supported offset, -18:00.
	MinOffset = ZoneOffset{totalSeconds: -maxOffsetSeconds}
	// MaxOffset is the largest supported offset, +18:00.
	MaxOffset = ZoneOffset{totalSeconds: maxOffsetSeconds}
)

// offsetCache memoizes the canonical ID of offsets by total seconds and
// parsed offsets by ID. Only quarter-hour offsets are stored, which bounds
// the size of both maps. It is never consulted for equality; a racing
// duplicate insert is harmless.
type offsetCache struct {
	bySeconds sync.Map // int32 -> string
	byID      sync.Map // string -> ZoneOffset
	hits      atomic.Uint64
	misses    atomic.Uint64
	entries   atomic.Int64
}

var offsets offsetCache

func (c *offsetCache) id(totalSeconds int32) string {
	if totalSeconds%cacheableOffsetSeconds != 0 {
		return buildOffsetID(totalSeconds)
	}
	if id, ok := c.bySeconds.Load(totalSeconds); ok {
		c.hits.Add(1)
		return id.(string)
	}
	c.misses.Add(1)
	id := buildOffsetID(totalSeconds)
	c.store(ZoneOffset{totalSeconds: totalSeconds}, id)
	return id
}

func (c *offsetCache) lookup(id string) (ZoneOffset, bool) {
	if offset, ok := c.byID.Load(id); ok {
		c.hits.Add(1)
		return offset.(ZoneOffset), true
	}
	c.misses.Add(1)
	return ZoneOffset{}, false
}

func (c *offsetCache) store(offset ZoneOffset, id string) {
	if offset.totalSeconds%cacheableOffsetSeconds != 0 {
		return
	}
	if _, loaded := c.bySeconds.LoadOrStore(offset.totalSeconds, id); !loaded {
		c.entries.Add(1)
		logger.Trace("Zone offset cached", "id", id, "seconds", offset.totalSeconds)
	}
	c.byID.LoadOrStore(id, offset)
}

// OffsetCacheStats is a snapshot of the zone offset memoization counters.
type OffsetCacheStats struct {
	Hits    uint64
	Misses  uint64
	Entries int64
}

// CurrentOffsetCacheStats returns the current zone offset cache counters.
func CurrentOffsetCacheStats() OffsetCacheStats {
	return OffsetCacheStats{
		Hits:    offsets.hits.Load(),
		Misses:  offsets.misses.Load(),
		Entries: offsets.entries.Load(),
	}
}

// OffsetOfHours returns an offset of the given number of hours.
func OffsetOfHours(hours int) (ZoneOffset, error) {
	return OffsetOfHoursMinutesSeconds(hours, 0, 0)
}

// OffsetOfHoursMinutes returns an offset of the given hours and minutes,
// which must have the same sign.
func OffsetOfHoursMinutes(hours, minutes int) (ZoneOffset, error) {
	return OffsetOfHoursMinutesSeconds(hours, minutes, 0)
}

// OffsetOfHoursMinutesSeconds returns an offset of the given hours, minutes
// and seconds. All nonzero components must have the same sign, and an offset
// of 18 hours cannot have minutes or seconds.
func OffsetOfHoursMinutesSeconds(hours, minutes, seconds int) (ZoneOffset, error) {
	if err := validateOffset(hours, minutes, seconds); err != nil {
		return ZoneOffset{}, err
	}
	total := hours*secondsPerHour + minutes*secondsPerMinute + seconds
	return OffsetOfTotalSeconds(total)
}

// OffsetOfTotalSeconds returns an offset of the given total seconds, in the
// range -64800 to +64800.
func OffsetOfTotalSeconds(totalSeconds int) (ZoneOffset, error) {
	if totalSeconds < -maxOffsetSeconds || totalSeconds > maxOffsetSeconds {
		return ZoneOffset{}, fieldRangeError(FieldOffsetSeconds, int64(totalSeconds),
			FieldOffsetSeconds.Range())
	}
	offset := ZoneOffset{totalSeconds: int32(totalSeconds)}
	if totalSeconds%cacheableOffsetSeconds == 0 {
		// warm the ID memo so that the ID lookup of cached offsets is cheap
		offsets.id(offset.totalSeconds)
	}
	return offset, nil
}

func validateOffset(hours, minutes, seconds int) error {
	if hours < -maxOffsetHours || hours > maxOffsetHours {
		return fieldRangeError(FieldOffsetSeconds, int64(hours), rangeOf(-maxOffsetHours, maxOffsetHours))
	}
	switch {
	case hours > 0:
		if minutes < 0 || seconds < 0 {
			return illegalArgumentError("zone offset minutes and seconds must be positive because hours is positive")
		}
	case hours < 0:
		if minutes > 0 || seconds > 0 {
			return illegalArgumentError("zone offset minutes and seconds must be negative because hours is negative")
		}
	default:
		if (minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
			return illegalArgumentError("zone offset minutes and seconds must have the same sign")
		}
	}
	if minutes < -59 || minutes > 59 {
		return fieldRangeError(FieldMinuteOfHour, int64(minutes), rangeOf(-59, 59))
	}
	if seconds < -59 || seconds > 59 {
		return fieldRangeError(FieldSecondOfMinute, int64(seconds), rangeOf(-59, 59))
	}
	if (hours == maxOffsetHours || hours == -maxOffsetHours) && (minutes != 0 || seconds != 0) {
		return illegalArgumentError("zone offset not in valid range: -18:00 to +18:00")
	}
	return nil
}

// ParseOffset parses an offset ID. Accepted forms are "Z", "±h", "±hh",
// "±hh:mm", "±hhmm", "±hh:mm:ss" and "±hhmmss".
func ParseOffset(id string) (ZoneOffset, error) {
	if offset, ok := offsets.lookup(id); ok {
		return offset, nil
	}
	if id == "Z" {
		return UTC, nil
	}

	var hours, minutes, seconds int
	var err error
	switch len(id) {
	case 2:
		hours, err = parseOffsetDigits(id, 1, 1, false)
	case 3:
		hours, err = parseOffsetDigits(id, 1, 2, false)
	case 5:
		hours, err = parseOffsetDigits(id, 1, 2, false)
		if err == nil {
			minutes, err = parseOffsetDigits(id, 3, 2, false)
		}
	case 6:
		hours, err = parseOffsetDigits(id, 1, 2, false)
		if err == nil {
			minutes, err = parseOffsetDigits(id, 4, 2, true)
		}
	case 7:
		hours, err = parseOffsetDigits(id, 1, 2, false)
		if err == nil {
			minutes, err = parseOffsetDigits(id, 3, 2, false)
		}
		if err == nil {
			seconds, err = parseOffsetDigits(id, 5, 2, false)
		}
	case 9:
		hours, err = parseOffsetDigits(id, 1, 2, false)
		if err == nil {
			minutes, err = parseOffsetDigits(id, 4, 2, true)
		}
		if err == nil {
			seconds, err = parseOffsetDigits(id, 7, 2, true)
		}
	default:
		return ZoneOffset{}, parseError(id, 0, "invalid zone offset ID", nil)
	}
	if err != nil {
		return ZoneOffset{}, err
	}

	switch id[0] {
	case '-':
		hours, minutes, seconds = -hours, -minutes, -seconds
	case '+':
	default:
		return ZoneOffset{}, parseError(id, 0, "invalid zone offset ID, plus/minus not found", nil)
	}

	offset, err := OffsetOfHoursMinutesSeconds(hours, minutes, seconds)
	if err != nil {
		return ZoneOffset{}, parseError(id, 0, "invalid zone offset ID", err)
	}
	return offset, nil
}

// MustParseOffset is like ParseOffset but panics on error. It is intended
// for package level variable initialization.
func MustParseOffset(id string) ZoneOffset {
	offset, err := ParseOffset(id)
	if err != nil {
		panic(err)
	}
	return offset
}

// parseOffsetDigits reads n decimal digits of id starting at pos.
func parseOffsetDigits(id string, pos, n int, precededByColon bool) (int, error) {
	if precededByColon && id[pos-1] != ':' {
		return 0, parseError(id, pos-1, "invalid zone offset ID, colon not found when expected", nil)
	}
	v := 0
	for i := pos; i < pos+n; i++ {
		ch := id[i]
		if ch < '0' || ch > '9' {
			return 0, parseError(id, i, "invalid zone offset ID, non numeric characters found", nil)
		}
		v = v*10 + int(ch-'0')
	}
	return v, nil
}

func buildOffsetID(totalSeconds int32) string {
	if totalSeconds == 0 {
		return "Z"
	}
	abs := int(totalSeconds)
	sign := byte('+')
	if abs < 0 {
		abs = -abs
		sign = '-'
	}
	hours := abs / secondsPerHour
	minutes := (abs / secondsPerMinute) % minutesPerHour
	seconds := abs % secondsPerMinute

	var b strings.Builder
	b.Grow(9)
	b.WriteByte(sign)
	writePadded(&b, int64(hours), 2)
	b.WriteByte(':')
	writePadded(&b, int64(minutes), 2)
	if seconds != 0 {
		b.WriteByte(':')
		writePadded(&b, int64(seconds), 2)
	}
	return b.String()
}

// TotalSeconds returns the total offset in seconds.
func (o ZoneOffset) TotalSeconds() int {
	return int(o.totalSeconds)
}

// ID returns the canonical offset ID: "Z" for UTC, otherwise "±HH:MM",
// or "±HH:MM:SS" when the seconds component is nonzero.
func (o ZoneOffset) ID() string {
	return offsets.id(o.totalSeconds)
}

// String returns the canonical offset ID.
func (o ZoneOffset) String() string {
	return o.ID()
}

// IsSupported reports whether the field can be queried on a ZoneOffset.
// Only FieldOffsetSeconds is supported.
func (o ZoneOffset) IsSupported(field Field) bool {
	return field == FieldOffsetSeconds
}

// Get returns the value of the field as an int.
func (o ZoneOffset) Get(field Field) (int, error) {
	return getInt(field, o.GetInt64)
}

// GetInt64 returns the value of the field.
func (o ZoneOffset) GetInt64(field Field) (int64, error) {
	if field == FieldOffsetSeconds {
		return int64(o.totalSeconds), nil
	}
	return 0, unsupportedFieldError(field)
}

// Compare orders offsets in descending order of total seconds, so offsets
// east of UTC sort first, matching the order of local times at one instant.
func (o ZoneOffset) Compare(other ZoneOffset) int {
	return compareInt64(int64(other.totalSeconds), int64(o.totalSeconds))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (o ZoneOffset) MarshalText() ([]byte, error) {
	return []byte(o.ID()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (o *ZoneOffset) UnmarshalText(b []byte) error {
	v, err := ParseOffset(string(b))
	if err == nil {
		*o = v
	}
	return err
}

func writePadded(b *strings.Builder, v int64, width int) {
	s := strconv.FormatInt(v, 10)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
