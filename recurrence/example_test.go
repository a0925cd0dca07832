package recurrence_test

import (
	"fmt"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/recurrence"
)

func ExampleTimeline() {
	start := calendar.MustParseOffsetDateTime("2024-01-31T08:00+01:00")

	monthly, _ := recurrence.NewPeriodTrigger(calendar.PeriodOfMonths(1))
	standup, _ := recurrence.NewCronTrigger("30 9 * * 1-5")
	reminder, _ := recurrence.NewRunOnceTrigger(calendar.PeriodOfDays(1))

	timeline := recurrence.NewTimeline()
	_ = timeline.Add("invoice", monthly, start)
	_ = timeline.Add("standup", standup, start)
	_ = timeline.Add("reminder", reminder, start)

	n := 0
	for occurrence, err := range timeline.All() {
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(occurrence.Key, occurrence.Time)
		if n++; n == 5 {
			break
		}
	}
	// Output:
	// standup 2024-01-31T09:30+01:00
	// reminder 2024-02-01T08:00+01:00
	// standup 2024-02-01T09:30+01:00
	// standup 2024-02-02T09:30+01:00
	// standup 2024-02-05T09:30+01:00
}
