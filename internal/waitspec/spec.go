package waitspec

import (
	"errors"
)

var (
	// ErrNoWait is returned by Check when nothing to wait for has been given
	ErrNoWait = errors.New("no wait has been specified")
	// ErrBadDuration is wrapped by the errors from ParseDuration
	ErrBadDuration = errors.New("bad duration")
	// ErrBadClockTime is wrapped by the errors from ParseClockTime
	ErrBadClockTime = errors.New("bad clock time")
)

// Spec records the things to wait for. The earliest of them will be the
// wake instant.
type Spec struct {
	HasDuration bool
	DurationMs  uint64

	Midnight   bool
	ClockTimes []string

	PlainSleep bool
}

// SetDuration records the duration (in milliseconds)
func (s *Spec) SetDuration(ms uint64) {
	s.HasDuration = true
	s.DurationMs = ms
}

// HasWait returns true if at least one thing to wait for has been given
func (s Spec) HasWait() bool {
	return s.HasDuration || s.Midnight || len(s.ClockTimes) > 0
}

// Check returns ErrNoWait if there is nothing to wait for and nil otherwise.
func (s Spec) Check() error {
	if !s.HasWait() {
		return ErrNoWait
	}

	return nil
}
