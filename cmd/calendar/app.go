package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/ecma119"
	"github.com/reugn/go-calendar/logger"
	"github.com/reugn/go-calendar/metrics"
	"github.com/reugn/go-calendar/recurrence"
)

var errUsage = errors.New("usage")

// app runs the subcommands, writing results to out.
type app struct {
	cfg     settings
	out     io.Writer
	metrics *metrics.Metrics
	now     func() time.Time
}

func newApp(cfg settings, out io.Writer, m *metrics.Metrics) *app {
	return &app{
		cfg:     cfg,
		out:     out,
		metrics: m,
		now:     time.Now,
	}
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return a.usage()
	}
	command, args := args[0], args[1:]
	logger.Debug("Running command", "command", command, "args", args)

	switch command {
	case "parse":
		return a.parse(args)
	case "plus":
		return a.plus(args, false)
	case "minus":
		return a.plus(args, true)
	case "between":
		return a.between(args)
	case "dates":
		return a.dates(args)
	case "next":
		return a.next(args)
	case "offset":
		return a.offset(args)
	case "ecma119":
		return a.ecma119(args)
	case "help", "-h", "-help", "--help":
		return a.usage()
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) usage() error {
	fmt.Fprintln(a.out, "usage: calendar parse|plus|minus|between|dates|next|offset|ecma119 ARGS")
	fmt.Fprintln(a.out)
	fmt.Fprint(a.out, usage())
	return nil
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func expectArgs(command string, args []string, minArgs, maxArgs int) error {
	if len(args) < minArgs || len(args) > maxArgs {
		return fmt.Errorf("%w: %s takes %d to %d arguments, got %d",
			errUsage, command, minArgs, maxArgs, len(args))
	}
	return nil
}

// failed records a parse failure of the kind and passes err through.
func (a *app) failed(kind string, err error) error {
	a.metrics.IncrementParseFailures(kind)
	return err
}

func (a *app) parseDate(text string) (calendar.LocalDate, error) {
	date, err := calendar.ParseDate(text)
	if err != nil {
		return calendar.LocalDate{}, a.failed("date", err)
	}
	return date, nil
}

func (a *app) parsePeriod(text string) (calendar.Period, error) {
	period, err := calendar.ParsePeriod(text)
	if err != nil {
		return calendar.Period{}, a.failed("period", err)
	}
	return period, nil
}

// parseOffsetDateTime accepts a date-time with or without an offset,
// applying the default offset to the latter.
func (a *app) parseOffsetDateTime(text string) (calendar.OffsetDateTime, error) {
	odt, err := calendar.ParseOffsetDateTime(text)
	if err == nil {
		return odt, nil
	}
	dt, dtErr := calendar.ParseDateTime(text)
	if dtErr != nil {
		return calendar.OffsetDateTime{}, a.failed("date-time", err)
	}
	return calendar.OffsetDateTimeOfDateTime(dt, a.cfg.offset), nil
}

func isPeriodText(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "P") || strings.HasPrefix(text, "p")
}

func isOffsetText(text string) bool {
	return text == "Z" || strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-")
}

func (a *app) parse(args []string) error {
	if err := expectArgs("parse", args, 1, 1); err != nil {
		return err
	}
	text := args[0]

	switch {
	case isPeriodText(text):
		period, err := a.parsePeriod(text)
		if err != nil {
			return err
		}
		normalized, err := period.Normalized()
		if err != nil {
			return err
		}
		a.printf("period %s\n", period)
		a.printf("normalized %s\n", normalized)
		a.printf("total-months %d\n", period.ToTotalMonths())
	case strings.ContainsAny(text, "Tt"):
		odt, err := a.parseOffsetDateTime(text)
		if err != nil {
			return err
		}
		a.printf("offset-date-time %s\n", odt)
		a.printf("instant %s\n", odt.ToInstant())
		a.printf("epoch-second %d\n", odt.ToEpochSecond())
		a.printf("day-of-week %s\n", odt.DayOfWeek())
	case strings.Count(strings.TrimLeft(text, "+-"), "-") == 2:
		date, err := a.parseDate(text)
		if err != nil {
			return err
		}
		a.printDate(date)
	default:
		if isOffsetText(text) {
			if offset, err := calendar.ParseOffset(text); err == nil {
				a.printOffset(offset)
				return nil
			}
		}
		year, err := calendar.ParseYear(text)
		if err != nil {
			return a.failed("year", err)
		}
		a.printf("year %s\n", year)
		a.printf("leap-year %t\n", year.IsLeap())
		a.printf("length %d\n", year.Length())
	}
	return nil
}

func (a *app) printDate(date calendar.LocalDate) {
	a.printf("date %s\n", date)
	a.printf("day-of-week %s\n", date.DayOfWeek())
	a.printf("day-of-year %d\n", date.DayOfYear())
	a.printf("leap-year %t\n", date.IsLeapYear())
	a.printf("epoch-day %d\n", date.ToEpochDay())
}

func (a *app) printOffset(offset calendar.ZoneOffset) {
	a.printf("offset %s\n", offset)
	a.printf("total-seconds %d\n", offset.TotalSeconds())
}

func (a *app) plus(args []string, negate bool) error {
	command := "plus"
	if negate {
		command = "minus"
	}
	if err := expectArgs(command, args, 2, 2); err != nil {
		return err
	}
	period, err := a.parsePeriod(args[1])
	if err != nil {
		return err
	}

	if strings.ContainsAny(args[0], "Tt") {
		odt, err := a.parseOffsetDateTime(args[0])
		if err != nil {
			return err
		}
		if negate {
			odt, err = odt.MinusPeriod(period)
		} else {
			odt, err = odt.PlusPeriod(period)
		}
		if err != nil {
			return err
		}
		a.printf("%s\n", odt)
		return nil
	}

	date, err := a.parseDate(args[0])
	if err != nil {
		return err
	}
	if negate {
		date, err = date.MinusPeriod(period)
	} else {
		date, err = date.PlusPeriod(period)
	}
	if err != nil {
		return err
	}
	a.printf("%s\n", date)
	return nil
}

func (a *app) between(args []string) error {
	if err := expectArgs("between", args, 2, 2); err != nil {
		return err
	}
	start, err := a.parseDate(args[0])
	if err != nil {
		return err
	}
	end, err := a.parseDate(args[1])
	if err != nil {
		return err
	}
	days, err := start.UntilUnit(end, calendar.Days)
	if err != nil {
		return err
	}
	a.printf("period %s\n", calendar.PeriodBetween(start, end))
	a.printf("days %d\n", days)
	return nil
}

func (a *app) dates(args []string) error {
	if err := expectArgs("dates", args, 2, 3); err != nil {
		return err
	}
	start, err := a.parseDate(args[0])
	if err != nil {
		return err
	}
	end, err := a.parseDate(args[1])
	if err != nil {
		return err
	}

	step := calendar.PeriodOfDays(1)
	if len(args) == 3 {
		if step, err = a.parsePeriod(args[2]); err != nil {
			return err
		}
	}
	dates, err := start.DatesUntilStep(end, step)
	if err != nil {
		return err
	}

	count := 0
	for date := range dates {
		if count == a.cfg.limit {
			logger.Warn("Dates output truncated", "limit", a.cfg.limit)
			break
		}
		a.printf("%s\n", date)
		count++
	}
	return nil
}

// parseTrigger parses a trigger definition: a period, once:PERIOD or a
// cron expression.
func parseTrigger(def string) (recurrence.Trigger, error) {
	switch {
	case strings.HasPrefix(def, "once:"):
		delay, err := calendar.ParsePeriod(strings.TrimPrefix(def, "once:"))
		if err != nil {
			return nil, err
		}
		return recurrence.NewRunOnceTrigger(delay)
	case isPeriodText(def):
		period, err := calendar.ParsePeriod(def)
		if err != nil {
			return nil, err
		}
		return recurrence.NewPeriodTrigger(period)
	default:
		return recurrence.NewCronTrigger(def)
	}
}

func (a *app) next(args []string) error {
	flags := flag.NewFlagSet("next", flag.ContinueOnError)
	flags.SetOutput(a.out)
	from := flags.String("from", "", "start date-time, defaults to now")
	count := flags.Int("n", 5, "number of occurrences")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("%w: next takes at least one KEY=TRIGGER argument", errUsage)
	}
	limit := min(*count, a.cfg.limit)

	var start calendar.OffsetDateTime
	var err error
	if *from == "" {
		start, err = a.currentTime()
	} else {
		start, err = a.parseOffsetDateTime(*from)
	}
	if err != nil {
		return err
	}

	timeline := recurrence.NewTimeline()
	for _, arg := range flags.Args() {
		key, def, ok := strings.Cut(arg, "=")
		if !ok {
			key, def = arg, arg
		}
		trigger, err := parseTrigger(def)
		if err != nil {
			return a.failed("trigger", err)
		}
		if err := timeline.Add(key, trigger, start); err != nil {
			if errors.Is(err, recurrence.ErrTriggerExpired) {
				logger.Info("Trigger never fires", "key", key)
				continue
			}
			return err
		}
	}
	a.metrics.SetTimelineTriggers(timeline.Len())

	produced := 0
	for occurrence, err := range timeline.All() {
		if produced == limit {
			break
		}
		a.printf("%s %s\n", occurrence.Key, occurrence.Time)
		a.metrics.IncrementOccurrences(occurrence.Key)
		produced++
		if err != nil {
			return err
		}
	}
	a.metrics.SetTimelineTriggers(timeline.Len())
	return nil
}

func (a *app) offset(args []string) error {
	if err := expectArgs("offset", args, 1, 1); err != nil {
		return err
	}
	offset, err := calendar.ParseOffset(args[0])
	if err != nil {
		return a.failed("offset", err)
	}
	a.printOffset(offset)
	return nil
}

func (a *app) ecma119(args []string) error {
	if err := expectArgs("ecma119", args, 1, 1); err != nil {
		return err
	}
	odt, err := a.parseOffsetDateTime(args[0])
	if err != nil {
		return err
	}

	record, err := ecma119.NewDateTime(odt)
	if err != nil {
		return err
	}
	short, err := record.MarshalBinary()
	if err != nil {
		return err
	}
	longRecord, err := ecma119.NewLongDateTime(odt)
	if err != nil {
		return err
	}
	long, err := longRecord.MarshalBinary()
	if err != nil {
		return err
	}
	a.printf("datetime %s\n", hex.EncodeToString(short))
	a.printf("long-datetime %s\n", hex.EncodeToString(long))
	return nil
}
