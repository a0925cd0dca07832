package recurrence

import (
	"container/heap"
	"errors"
	"iter"
	"sync"

	"github.com/reugn/go-calendar/calendar"
	"github.com/reugn/go-calendar/logger"
)

// Occurrence is a fire time of a keyed trigger.
type Occurrence struct {
	Key  string
	Time calendar.OffsetDateTime
}

// Timeline merges the fire times of several keyed triggers into a single
// sequence ordered by instant. Triggers that expire are dropped. A Timeline
// is safe for concurrent use.
type Timeline struct {
	mtx   sync.Mutex
	queue fireQueue
	keys  map[string]*item
}

// NewTimeline returns an empty Timeline.
func NewTimeline() *Timeline {
	return &Timeline{keys: make(map[string]*item)}
}

// Add registers the trigger under the key, computing its first fire time
// after start. An already expired trigger is not added and its error is
// returned.
func (tl *Timeline) Add(key string, trigger Trigger, start calendar.OffsetDateTime) error {
	if trigger == nil {
		return illegalArgumentError("trigger is nil")
	}
	tl.mtx.Lock()
	defer tl.mtx.Unlock()

	if _, ok := tl.keys[key]; ok {
		return ErrKeyExists
	}
	next, err := trigger.NextFireTime(start)
	if err != nil {
		return err
	}
	it := &item{key: key, trigger: trigger, next: next}
	heap.Push(&tl.queue, it)
	tl.keys[key] = it
	logger.Debug("Trigger added to timeline", "key", key, "trigger", trigger.Description(), "next", next)
	return nil
}

// Remove unregisters the trigger of the key, reporting whether it was present.
func (tl *Timeline) Remove(key string) bool {
	tl.mtx.Lock()
	defer tl.mtx.Unlock()

	it, ok := tl.keys[key]
	if !ok {
		return false
	}
	heap.Remove(&tl.queue, it.index)
	delete(tl.keys, key)
	return true
}

// Len returns the number of registered triggers.
func (tl *Timeline) Len() int {
	tl.mtx.Lock()
	defer tl.mtx.Unlock()
	return len(tl.queue)
}

// Peek returns the earliest pending occurrence without consuming it.
func (tl *Timeline) Peek() (Occurrence, bool) {
	tl.mtx.Lock()
	defer tl.mtx.Unlock()

	if len(tl.queue) == 0 {
		return Occurrence{}, false
	}
	head := tl.queue.head()
	return Occurrence{Key: head.key, Time: head.next}, true
}

// Next consumes and returns the earliest pending occurrence, rescheduling
// its trigger. It returns false when no triggers remain. A trigger that
// fails with an error other than ErrTriggerExpired is dropped and the
// error is returned along with the occurrence.
func (tl *Timeline) Next() (Occurrence, bool, error) {
	tl.mtx.Lock()
	defer tl.mtx.Unlock()

	if len(tl.queue) == 0 {
		return Occurrence{}, false, nil
	}
	head := tl.queue.head()
	occurrence := Occurrence{Key: head.key, Time: head.next}

	next, err := head.trigger.NextFireTime(head.next)
	if err != nil {
		heap.Pop(&tl.queue)
		delete(tl.keys, head.key)
		if errors.Is(err, ErrTriggerExpired) {
			logger.Debug("Trigger expired", "key", head.key)
			return occurrence, true, nil
		}
		logger.Warn("Failed to compute next fire time", "key", head.key, "error", err)
		return occurrence, true, err
	}
	head.next = next
	heap.Fix(&tl.queue, head.index)
	return occurrence, true, nil
}

// All returns the merged occurrences, consuming them from the timeline.
// Iteration stops when the timeline is empty, when the consumer stops, or
// after the first error, which is yielded with its occurrence.
func (tl *Timeline) All() iter.Seq2[Occurrence, error] {
	return func(yield func(Occurrence, error) bool) {
		for {
			occurrence, ok, err := tl.Next()
			if !ok || !yield(occurrence, err) || err != nil {
				return
			}
		}
	}
}

// Occurrences returns up to limit fire times of the trigger following
// start. The sequence ends early when the trigger expires; any other error
// is yielded once as the last element.
func Occurrences(trigger Trigger, start calendar.OffsetDateTime, limit int) iter.Seq2[calendar.OffsetDateTime, error] {
	return func(yield func(calendar.OffsetDateTime, error) bool) {
		prev := start
		for i := 0; i < limit; i++ {
			next, err := trigger.NextFireTime(prev)
			if err != nil {
				if !errors.Is(err, ErrTriggerExpired) {
					yield(calendar.OffsetDateTime{}, err)
				}
				return
			}
			if !yield(next, nil) {
				return
			}
			prev = next
		}
	}
}
