package recurrence

import (
	"fmt"
	"math"
	"sync"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
)

// Trigger computes fire times on the offset time-line.
type Trigger interface {
	// NextFireTime returns the fire time following prev.
	NextFireTime(prev calendar.OffsetDateTime) (calendar.OffsetDateTime, error)
	// Description returns a human readable description of the trigger.
	Description() string
}

// PeriodTrigger fires repeatedly at a calendar period. Fire times are
// computed from the first fire time rather than from the previous one, so a
// monthly trigger anchored on January 31 fires on February 29, March 31 and
// April 30, instead of drifting to the 29th.
type PeriodTrigger struct {
	mtx    sync.Mutex
	period calendar.Period
	anchor calendar.OffsetDateTime
	last   calendar.OffsetDateTime
	count  int32
}

var _ Trigger = (*PeriodTrigger)(nil)

// NewPeriodTrigger returns a new PeriodTrigger using the given period.
// The period must be positive: no component may be negative and at least
// one must be nonzero.
func NewPeriodTrigger(period calendar.Period) (*PeriodTrigger, error) {
	if period.IsZero() || period.IsNegative() {
		return nil, illegalArgumentError("period must be positive: " + period.String())
	}
	return &PeriodTrigger{period: period}, nil
}

// NextFireTime returns the fire time following prev. If prev is not the
// fire time returned by the previous call, the trigger is re-anchored at prev.
func (pt *PeriodTrigger) NextFireTime(prev calendar.OffsetDateTime) (calendar.OffsetDateTime, error) {
	pt.mtx.Lock()
	defer pt.mtx.Unlock()

	if pt.count == 0 || prev != pt.last {
		pt.anchor = prev
		pt.count = 0
	}
	if pt.count == math.MaxInt32 {
		return calendar.OffsetDateTime{}, expiredError(pt.description())
	}
	step, err := pt.period.MultipliedBy(pt.count + 1)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	next, err := pt.anchor.PlusPeriod(step)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	pt.count++
	pt.last = next
	logger.Trace("Period trigger computed next fire time", "anchor", pt.anchor, "next", next)
	return next, nil
}

// Description returns the description of the trigger.
func (pt *PeriodTrigger) Description() string {
	pt.mtx.Lock()
	defer pt.mtx.Unlock()
	return pt.description()
}

func (pt *PeriodTrigger) description() string {
	return fmt.Sprintf("PeriodTrigger with period %s", pt.period)
}

// RunOnceTrigger fires once, a period after the time it is first asked for.
type RunOnceTrigger struct {
	mtx     sync.Mutex
	delay   calendar.Period
	expired bool
}

var _ Trigger = (*RunOnceTrigger)(nil)

// NewRunOnceTrigger returns a new RunOnceTrigger with the given delay.
// A zero delay fires at the given time itself.
func NewRunOnceTrigger(delay calendar.Period) (*RunOnceTrigger, error) {
	if delay.IsNegative() {
		return nil, illegalArgumentError("delay must not be negative: " + delay.String())
	}
	return &RunOnceTrigger{delay: delay}, nil
}

// NextFireTime returns the fire time following prev, or ErrTriggerExpired
// if the trigger has already fired.
func (ot *RunOnceTrigger) NextFireTime(prev calendar.OffsetDateTime) (calendar.OffsetDateTime, error) {
	ot.mtx.Lock()
	defer ot.mtx.Unlock()

	if ot.expired {
		return calendar.OffsetDateTime{}, expiredError(ot.description())
	}
	next, err := prev.PlusPeriod(ot.delay)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	ot.expired = true
	return next, nil
}

// Description returns the description of the trigger.
func (ot *RunOnceTrigger) Description() string {
	ot.mtx.Lock()
	defer ot.mtx.Unlock()
	return ot.description()
}

func (ot *RunOnceTrigger) description() string {
	status := "valid"
	if ot.expired {
		status = "expired"
	}
	return fmt.Sprintf("RunOnceTrigger with delay %s (%s)", ot.delay, status)
}
