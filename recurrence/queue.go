package recurrence

import (
	"container/heap"

	"github.com/reugn/go-calendar/calendar"
)

// item is a timeline entry: a keyed trigger and its pending fire time.
type item struct {
	key     string
	trigger Trigger
	next    calendar.OffsetDateTime // priority
	index   int                     // maintained by the heap.Interface methods
}

// fireQueue is a min-heap of items ordered by fire time, earliest first.
type fireQueue []*item

var _ heap.Interface = (*fireQueue)(nil)

func (q fireQueue) Len() int { return len(q) }

// Less orders by instant, breaking ties by key so that the order of
// simultaneous fire times is stable.
func (q fireQueue) Less(i, j int) bool {
	if c := q[i].next.Compare(q[j].next); c != 0 {
		return c < 0
	}
	return q[i].key < q[j].key
}

func (q fireQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

// Push adds x as element Len().
func (q *fireQueue) Push(x any) {
	it := x.(*item)
	it.index = len(*q)
	*q = append(*q, it)
}

// Pop removes and returns element Len() - 1.
func (q *fireQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1 // for safety
	*q = old[:n-1]
	return it
}

// head returns the earliest item without removing it.
func (q fireQueue) head() *item {
	return q[0]
}
