package core

import (
	"cmp"
	"slices"
	"time"
)

// delayed is an action scheduled for a point on the engine clock.
type delayed struct {
	deadline time.Duration
	seq      uint64
	run      func(now time.Duration)
}

// DelayQueue holds actions that run once the engine clock reaches their
// deadline. It is drained by the step loop, so it only advances when the
// engine does.
type DelayQueue struct {
	entries []delayed
	seq     uint64
}

// Schedule adds an action due at deadline. Actions with equal deadlines
// run in scheduling order.
func (q *DelayQueue) Schedule(deadline time.Duration, run func(now time.Duration)) {
	q.seq++
	q.entries = append(q.entries, delayed{deadline: deadline, seq: q.seq, run: run})
}

// RunDue runs and removes every action whose deadline is at or before now.
// Actions scheduled while draining wait for the next call.
func (q *DelayQueue) RunDue(now time.Duration) int {
	var due []delayed
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.deadline <= now {
			due = append(due, e)
		} else {
			kept = append(kept, e)
		}
	}
	q.entries = kept

	slices.SortFunc(due, func(a, b delayed) int {
		if c := cmp.Compare(a.deadline, b.deadline); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	for _, e := range due {
		e.run(now)
	}
	return len(due)
}

// Len returns the number of pending actions.
func (q *DelayQueue) Len() int {
	return len(q.entries)
}

// Reset drops every pending action without running it.
func (q *DelayQueue) Reset() {
	q.entries = nil
}

// timer is a time-boxed cosmetic flag.
type timer struct {
	until time.Duration
}

func (t *timer) start(now, d time.Duration) {
	t.until = max(t.until, now+d)
}

func (t timer) active(now time.Duration) bool {
	return now < t.until
}
