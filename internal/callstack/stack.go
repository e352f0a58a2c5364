package callstack

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nickwells/timer.mod/timer"
	"github.com/nickwells/verbose.mod/verbose"
)

const maxStackWidth = 30

// Stack records the current phases and, when asked, prints how long each
// one took. Output goes to W or, if W is nil, to the standard error.
type Stack struct {
	ShowTimings bool
	W           io.Writer

	stack []string
}

// reporting returns true if the stack should print anything
func (s *Stack) reporting() bool {
	return s.ShowTimings || verbose.IsOn()
}

// writer returns the writer that reports should go to
func (s *Stack) writer() io.Writer {
	if s.W == nil {
		return os.Stderr
	}

	return s.W
}

// Start pushes the tag onto the stack, prints the message (if reporting)
// and returns the function to be called when the phase ends.
func (s *Stack) Start(tag, msg string) func() {
	s.stack = append(s.stack, tag)

	if !s.reporting() {
		return s.pop
	}

	fmt.Fprintln(s.writer(), s.Tag(), msg)

	return timer.Start(tag, s)
}

// Tag returns a stacked tag reflecting the current stack depth and
// right-filled with dots.
func (s *Stack) Tag() string {
	if len(s.stack) == 0 {
		return strings.Repeat(".", maxStackWidth) + ":"
	}

	t := strings.Repeat("|    ", len(s.stack)-1) +
		s.stack[len(s.stack)-1]
	if len(t) < maxStackWidth {
		t += strings.Repeat(".", maxStackWidth-len(t))
	}

	return t + ":"
}

// Depth returns the number of phases currently started
func (s *Stack) Depth() int {
	return len(s.stack)
}

// pop removes the last stack entry
func (s *Stack) pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Act satisfies the timer.Action interface. It prints the tag and the
// duration in milliseconds and pops the phase off the stack.
func (s *Stack) Act(_ string, d time.Duration) {
	tag := s.Tag()
	s.pop()

	if s.reporting() {
		fmt.Fprintf(s.writer(), "%s%12.3f msecs\n",
			tag, float64(d/time.Microsecond)/1000.0)
	}
}
