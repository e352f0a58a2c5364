/*
Package target reduces a waitspec.Spec to a single wake instant: the
earliest of the requested duration, the next midnight and each of the clock
times (a clock time already past today is taken as that time tomorrow).

All instants are in milliseconds since the epoch. Days are taken as
exactly 24 hours long so on the days when daylight saving time starts or
ends the "next midnight" (and any clock time rolled over to tomorrow) may
be an hour away from the true local time.
*/
package target

import (
	"fmt"
	"time"

	"github.com/nap-utils/nap/internal/waitspec"
	"github.com/nickwells/tempus.mod/tempus"
)

// MsPerDay is the number of milliseconds in a day
const MsPerDay int64 = tempus.SecondsPerDay * 1000

// Kind describes the source of a Candidate
type Kind int

const (
	KindDuration Kind = iota
	KindMidnight
	KindClockTime
)

// String returns a description of the Kind
func (k Kind) String() string {
	switch k {
	case KindDuration:
		return "duration"
	case KindMidnight:
		return "midnight"
	case KindClockTime:
		return "clock time"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Candidate is one of the instants that the wait may end at
type Candidate struct {
	Kind Kind
	// Source is the text the candidate came from (empty for midnight)
	Source string
	// At is the instant in milliseconds since the epoch
	At int64
}

// String describes the candidate
func (c Candidate) String() string {
	s := c.Kind.String()
	if c.Source != "" {
		s += " " + c.Source
	}

	return s + ": " + time.UnixMilli(c.At).Format("2006-01-02 15:04:05.000")
}

// MidnightToday returns the instant (in milliseconds since the epoch) of
// 00:00:00 on the local calendar day containing now, in now's location.
func MidnightToday(now time.Time) int64 {
	y, m, d := now.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).UnixMilli()
}

// Candidates returns the instants that the spec asks to wait for, in the
// order: duration, midnight, clock times (in the order given). The current
// time is sampled once, by the caller. An error is returned if any of the
// clock times cannot be parsed.
func Candidates(spec waitspec.Spec, now time.Time) ([]Candidate, error) {
	nowMs := now.UnixMilli()
	midnight := MidnightToday(now)

	var cands []Candidate

	if spec.HasDuration {
		cands = append(cands, Candidate{
			Kind: KindDuration,
			At:   nowMs + int64(spec.DurationMs), //nolint:gosec
		})
	}

	if spec.Midnight {
		cands = append(cands, Candidate{
			Kind: KindMidnight,
			At:   midnight + MsPerDay,
		})
	}

	for i, s := range spec.ClockTimes {
		ct, err := waitspec.ParseClockTime(s)
		if err != nil {
			return nil, fmt.Errorf("clock time %d: %w", i+1, err)
		}

		t := midnight + ct.OffsetMs()
		if t <= nowMs {
			t += MsPerDay
		}

		cands = append(cands, Candidate{
			Kind:   KindClockTime,
			Source: s,
			At:     t,
		})
	}

	return cands, nil
}

// Earliest returns the candidate with the smallest instant. Where two
// candidates share the same instant the first is returned. It returns
// false if there are no candidates.
func Earliest(cands []Candidate) (Candidate, bool) {
	if len(cands) == 0 {
		return Candidate{}, false
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if c.At < best.At {
			best = c
		}
	}

	return best, true
}

// Resolve returns the wake instant (in milliseconds since the epoch) for
// the spec: the earliest of its candidates. An error is returned if the
// spec has nothing to wait for or any of its clock times are malformed.
func Resolve(spec waitspec.Spec, now time.Time) (int64, error) {
	if err := spec.Check(); err != nil {
		return 0, err
	}

	cands, err := Candidates(spec, now)
	if err != nil {
		return 0, err
	}

	best, _ := Earliest(cands)

	return best.At, nil
}
