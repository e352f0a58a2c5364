package waitspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nickwells/tempus.mod/tempus"
)

const (
	meridiemAM = "am"
	meridiemPM = "pm"

	hoursPerHalfDay = 12
	hoursPerDay     = 24
	minutesPerHour  = 60
)

// ClockTime is a time of day in hours (0-23) and minutes (0-59)
type ClockTime struct {
	Hour   int
	Minute int
}

// String returns the clock time in 24-hour HH:MM form
func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour, ct.Minute)
}

// OffsetMs returns the number of milliseconds from the start of the day to
// the clock time
func (ct ClockTime) OffsetMs() int64 {
	return (int64(ct.Hour)*tempus.SecondsPerHour +
		int64(ct.Minute)*tempus.SecondsPerMinute) * 1000
}

// ClockTimeFormat returns a description of the allowed clock time formats
func ClockTimeFormat() string {
	return "HH:MM, optionally followed by 'am' or 'pm'." +
		" Without am/pm the hour must be from 0 to 23;" +
		" with am/pm it must be from 1 to 12." +
		" The minutes must be from 0 to 59." +
		" Case is ignored and spaces are allowed" +
		" before the am/pm and around the time."
}

// ParseClockTime converts a string of the form HH:MM[am|pm] into a
// ClockTime. Surrounding white space is ignored, as is the case of the
// am/pm suffix.
func ParseClockTime(s string) (ClockTime, error) {
	var ct ClockTime

	val := strings.ToLower(strings.TrimSpace(s))

	meridiem := ""

	for _, m := range []string{meridiemAM, meridiemPM} {
		if trimmed, ok := strings.CutSuffix(val, m); ok {
			meridiem = m
			val = strings.TrimSpace(trimmed)

			break
		}
	}

	hStr, mStr, ok := strings.Cut(val, ":")
	if !ok {
		return ct, fmt.Errorf("%w: %q: there is no ':'", ErrBadClockTime, s)
	}

	if strings.Contains(mStr, ":") {
		return ct, fmt.Errorf("%w: %q: there is more than one ':'",
			ErrBadClockTime, s)
	}

	h, err := parseClockPart(hStr)
	if err != nil {
		return ct, fmt.Errorf("%w: %q: bad hours: %w", ErrBadClockTime, s, err)
	}

	m, err := parseClockPart(mStr)
	if err != nil {
		return ct, fmt.Errorf("%w: %q: bad minutes: %w",
			ErrBadClockTime, s, err)
	}

	if m >= minutesPerHour {
		return ct, fmt.Errorf("%w: %q: the minutes (%d) must be less than %d",
			ErrBadClockTime, s, m, minutesPerHour)
	}

	switch meridiem {
	case "":
		if h >= hoursPerDay {
			return ct, fmt.Errorf(
				"%w: %q: the hours (%d) must be less than %d",
				ErrBadClockTime, s, h, hoursPerDay)
		}
	default:
		if h < 1 || h > hoursPerHalfDay {
			return ct, fmt.Errorf(
				"%w: %q: the hours (%d) must be from 1 to %d with %s",
				ErrBadClockTime, s, h, hoursPerHalfDay, meridiem)
		}

		h %= hoursPerHalfDay
		if meridiem == meridiemPM {
			h += hoursPerHalfDay
		}
	}

	ct.Hour = h
	ct.Minute = m

	return ct, nil
}

// parseClockPart parses one side of the HH:MM clock time. It must be a
// non-empty string of digits.
func parseClockPart(s string) (int, error) {
	if s == "" {
		return 0, errors.New("the value is missing")
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a non-negative integer", s)
		}
	}

	return strconv.Atoi(s)
}
