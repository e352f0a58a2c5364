package main

import (
	"strings"
	"time"

	"github.com/nap-utils/nap/internal/waitspec"
	"github.com/nickwells/param.mod/v6/psetter"
)

// ClockTimeSetter is used as a parameter setter for adding clock times to
// the list of times to wait until. Each value is checked as it is given
// but it is recorded as given.
type ClockTimeSetter struct {
	psetter.ValueReqMandatory

	Value *[]string
}

// SetWithVal checks that the parameter value is a well-formed clock time
// and, if so, appends it to the list of clock times
func (s ClockTimeSetter) SetWithVal(_, paramVal string) error {
	if _, err := waitspec.ParseClockTime(paramVal); err != nil {
		return err
	}

	*s.Value = append(*s.Value, paramVal)

	return nil
}

// AllowedValues returns a description of a well-formed value
func (s ClockTimeSetter) AllowedValues() string {
	return "a time of day: " + waitspec.ClockTimeFormat()
}

// ValDescribe returns a short string showing what the value should look like.
func (s ClockTimeSetter) ValDescribe() string {
	return "HH:MM[am|pm]"
}

// CurrentValue returns the current setting of the parameter value
func (s ClockTimeSetter) CurrentValue() string {
	return strings.Join(*s.Value, ", ")
}

// CheckSetter panics if the setter has not been properly created - if the
// Value is nil.
func (s ClockTimeSetter) CheckSetter(name string) {
	if s.Value == nil {
		panic(psetter.NilValueMessage(name, "main.ClockTimeSetter"))
	}
}

// DurationSetter sets the duration in a waitspec.Spec from a value of the
// form NUMBER[suffix]
type DurationSetter struct {
	psetter.ValueReqMandatory

	Value *waitspec.Spec
}

// SetWithVal parses the parameter value as a duration and records it in
// the Spec
func (s DurationSetter) SetWithVal(_, paramVal string) error {
	ms, err := waitspec.ParseDuration(paramVal)
	if err != nil {
		return err
	}

	s.Value.SetDuration(ms)

	return nil
}

// AllowedValues returns a description of a well-formed value
func (s DurationSetter) AllowedValues() string {
	return "a non-negative decimal number optionally followed by one of " +
		waitspec.DurationUnits() +
		". Without a suffix the number is taken as seconds."
}

// ValDescribe returns a short string showing what the value should look like.
func (s DurationSetter) ValDescribe() string {
	return "NUMBER[s|m|h|d]"
}

// CurrentValue returns the current setting of the parameter value
func (s DurationSetter) CurrentValue() string {
	if !s.Value.HasDuration {
		return "none"
	}

	return (time.Duration(s.Value.DurationMs) * time.Millisecond).String()
}

// CheckSetter panics if the setter has not been properly created - if the
// Value is nil.
func (s DurationSetter) CheckSetter(name string) {
	if s.Value == nil {
		panic(psetter.NilValueMessage(name, "main.DurationSetter"))
	}
}
