package waitspec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/nickwells/tempus.mod/tempus"
)

// MaxDurationMs is the largest duration that can be given. It is the
// largest number of milliseconds that a time.Duration can hold.
const MaxDurationMs = math.MaxInt64 / 1000000

// unitSeconds maps the allowed duration suffixes to the number of seconds
// each unit represents
var unitSeconds = map[byte]float64{
	's': 1,
	'm': float64(tempus.SecondsPerMinute),
	'h': float64(tempus.SecondsPerHour),
	'd': float64(tempus.SecondsPerDay),
}

// DurationUnits returns a description of the allowed duration suffixes
func DurationUnits() string {
	return "s (seconds), m (minutes), h (hours) or d (days)"
}

// ParseDuration converts a string of the form NUMBER[suffix] into a count
// of milliseconds. The NUMBER must be a non-negative decimal number and the
// optional suffix must be one of s, m, h or d; without a suffix the number
// is taken as seconds. The result is rounded to the nearest millisecond.
func ParseDuration(s string) (uint64, error) {
	numPart := s
	mult := 1.0

	if len(s) > 0 {
		if m, ok := unitSeconds[s[len(s)-1]]; ok {
			numPart = s[:len(s)-1]
			mult = m
		}
	}

	if numPart == "" {
		return 0, fmt.Errorf("%w: %q: there is no number", ErrBadDuration, s)
	}

	if err := checkDecimal(numPart); err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadDuration, s, err)
	}

	v, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrBadDuration, s, err)
	}

	ms := math.Round(v * mult * 1000)
	if ms > MaxDurationMs {
		return 0, fmt.Errorf("%w: %q: the duration is too large",
			ErrBadDuration, s)
	}

	return uint64(ms), nil
}

// checkDecimal returns a non-nil error if the string is not made up of
// digits with at most one decimal point and at least one digit.
func checkDecimal(s string) error {
	var digits, points int

	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			points++
			if points > 1 {
				return fmt.Errorf("more than one '.' (at %d)", i)
			}
		default:
			return fmt.Errorf("unexpected character %q (at %d)", r, i)
		}
	}

	if digits == 0 {
		return fmt.Errorf("there are no digits in %q", s)
	}

	return nil
}
