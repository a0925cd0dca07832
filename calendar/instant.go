package calendar

import (
	"strings"
	"time"
)

// Instants are limited to the seconds representable as a LocalDateTime in UTC.
const (
	minInstantSecond = minEpochDay * secondsPerDay
	maxInstantSecond = maxEpochDay*secondsPerDay + secondsPerDay - 1
)

// Instant is a point on the UTC time-line with nanosecond precision,
// counted from 1970-01-01T00:00:00Z.
type Instant struct {
	seconds int64
	nanos   int32
}

// Epoch is the instant 1970-01-01T00:00:00Z.
var Epoch = Instant{}

// InstantOfEpochSecond returns the instant at the epoch seconds adjusted by
// the nanoseconds, which may be outside [0, 999999999].
func InstantOfEpochSecond(epochSecond, nanoAdjustment int64) (Instant, error) {
	secs, err := addExact(epochSecond, floorDiv(nanoAdjustment, nanosPerSecond))
	if err != nil {
		return Instant{}, err
	}
	nos := floorMod(nanoAdjustment, nanosPerSecond)
	if secs < minInstantSecond || secs > maxInstantSecond {
		return Instant{}, fieldRangeError(FieldInstantSeconds, secs,
			rangeOf(minInstantSecond, maxInstantSecond))
	}
	return Instant{seconds: secs, nanos: int32(nos)}, nil
}

// InstantOfTime converts a time.Time to an Instant.
func InstantOfTime(t time.Time) (Instant, error) {
	secs := t.Unix()
	if secs < minInstantSecond || secs > maxInstantSecond {
		return Instant{}, fieldRangeError(FieldInstantSeconds, secs,
			rangeOf(minInstantSecond, maxInstantSecond))
	}
	return Instant{seconds: secs, nanos: int32(t.Nanosecond())}, nil
}

// EpochSecond returns the seconds from the epoch.
func (i Instant) EpochSecond() int64 { return i.seconds }

// NanoOfSecond returns the nanosecond within the second.
func (i Instant) NanoOfSecond() int { return int(i.nanos) }

// Time converts the instant to a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.seconds, int64(i.nanos)).UTC()
}

// AtOffset combines the instant with an offset.
func (i Instant) AtOffset(offset ZoneOffset) (OffsetDateTime, error) {
	return OffsetDateTimeOfInstant(i, offset)
}

// Compare returns -1, 0 or 1 as the instant is before, equal to or after
// the other.
func (i Instant) Compare(other Instant) int {
	if c := compareInt64(i.seconds, other.seconds); c != 0 {
		return c
	}
	return compareInt64(int64(i.nanos), int64(other.nanos))
}

// IsAfter reports whether the instant is after the other.
func (i Instant) IsAfter(other Instant) bool { return i.Compare(other) > 0 }

// IsBefore reports whether the instant is before the other.
func (i Instant) IsBefore(other Instant) bool { return i.Compare(other) < 0 }

// String returns the instant in ISO-8601 format in UTC, such as
// 2007-12-03T10:15:30Z.
func (i Instant) String() string {
	dt, err := DateTimeOfEpochSecond(i.seconds, int(i.nanos), UTC)
	if err != nil {
		return "Instant(invalid)"
	}
	var b strings.Builder
	dt.appendTo(&b)
	b.WriteByte('Z')
	return b.String()
}
