/*
Package wakeloop waits until the wall clock reaches a target instant.

Rather than issuing one long sleep, which on many platforms is measured
against a clock that stops while the host is suspended, the Waiter sleeps
in bounded steps and re-reads the wall clock after each one. If the host
is suspended past the target the wait ends within one step of resuming.
*/
package wakeloop

import (
	"time"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// Sleeper pauses for (roughly) the given duration. It may return early or
// late; the Waiter re-reads the clock after every sleep.
type Sleeper func(time.Duration)

// WallClock returns the current time with the monotonic clock reading
// removed so that only the wall clock is used in comparisons.
func WallClock() time.Time {
	return time.Now().Round(0)
}

// bucket gives the interval to sleep for when the remaining time is
// greater than minRemaining. The entries are in decreasing order of
// minRemaining.
type bucket struct {
	minRemaining int64
	interval     int64
}

var buckets = []bucket{
	{minRemaining: 100000, interval: 10000},
	{minRemaining: 50000, interval: 5000},
	{minRemaining: 9999, interval: 1000},
	{minRemaining: 999, interval: 500},
}

// dfltInterval is the interval used when the remaining time is less than
// a second
const dfltInterval int64 = 10

// Interval returns the number of milliseconds to sleep for, given the
// number of milliseconds remaining until the target. The interval is
// never greater than the remaining time.
func Interval(remainingMs int64) int64 {
	interval := dfltInterval

	for _, b := range buckets {
		if remainingMs > b.minRemaining {
			interval = b.interval
			break
		}
	}

	return min(interval, remainingMs)
}

// Waiter holds the parameters of the wait loop
type Waiter struct {
	Now   Clock
	Sleep Sleeper

	// PlainSleep, if set, makes the Waiter sleep for all of the remaining
	// time in one step rather than in bounded intervals.
	PlainSleep bool

	// Report, if not nil, is called before each sleep with the time
	// remaining and the interval chosen, both in milliseconds.
	Report func(remainingMs, intervalMs int64)
}

// NewWaiter returns a Waiter which reads the wall clock and sleeps using
// time.Sleep
func NewWaiter(plainSleep bool) *Waiter {
	return &Waiter{
		Now:        WallClock,
		Sleep:      time.Sleep,
		PlainSleep: plainSleep,
	}
}

// WaitUntil blocks until the clock reads at or after the target (in
// milliseconds since the epoch). It returns the number of sleeps taken; if
// the target is not in the future it returns 0 immediately.
func (w Waiter) WaitUntil(targetMs int64) int {
	sleeps := 0

	for {
		nowMs := w.Now().UnixMilli()
		if nowMs >= targetMs {
			return sleeps
		}

		remaining := targetMs - nowMs

		interval := remaining
		if !w.PlainSleep {
			interval = Interval(remaining)
		}

		if w.Report != nil {
			w.Report(remaining, interval)
		}

		w.Sleep(time.Duration(interval) * time.Millisecond)
		sleeps++
	}
}
