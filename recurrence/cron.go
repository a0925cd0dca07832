package recurrence

import (
	"github.com/gorhill/cronexpr"
	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
)

// CronTrigger fires at the times matched by a cron expression. The
// expression is evaluated in the offset of the previous fire time, so
// "0 9 * * *" fires at 09:00 local time of that offset.
//
// The expression syntax is the one of github.com/gorhill/cronexpr: five
// fields (minute to day-of-week), six fields (with a trailing year) or
// seven fields (with a leading second), plus the @yearly, @monthly,
// @weekly, @daily and @hourly macros.
type CronTrigger struct {
	expression string
	expr       *cronexpr.Expression
}

var _ Trigger = (*CronTrigger)(nil)

// NewCronTrigger returns a new CronTrigger for the expression.
func NewCronTrigger(expression string) (*CronTrigger, error) {
	expr, err := cronexpr.Parse(expression)
	if err != nil {
		return nil, cronParseError(expression, err)
	}
	return &CronTrigger{expression: expression, expr: expr}, nil
}

// NextFireTime returns the first time matched by the expression strictly
// after prev, in the offset of prev.
func (ct *CronTrigger) NextFireTime(prev calendar.OffsetDateTime) (calendar.OffsetDateTime, error) {
	next := ct.expr.Next(prev.ToTime())
	if next.IsZero() {
		return calendar.OffsetDateTime{}, expiredError(ct.Description())
	}
	odt, err := calendar.OffsetDateTimeOfTime(next)
	if err != nil {
		return calendar.OffsetDateTime{}, err
	}
	logger.Trace("Cron trigger computed next fire time", "expression", ct.expression, "next", odt)
	return odt, nil
}

// Description returns the description of the trigger.
func (ct *CronTrigger) Description() string {
	return "CronTrigger " + ct.expression
}

// Expression returns the cron expression of the trigger.
func (ct *CronTrigger) Expression() string {
	return ct.expression
}
