package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nap-utils/nap/internal/callstack"
	"github.com/nap-utils/nap/internal/target"
	"github.com/nap-utils/nap/internal/waitspec"
	"github.com/nap-utils/nap/internal/wakeloop"
	"github.com/nickwells/verbose.mod/verbose"
)

const (
	progName = "nap"

	dfltShowTimeFmt = "20060102.150405"

	exitStatusOK      = 0
	exitStatusBadArgs = 1

	verboseTimeFmt = "2006-01-02 15:04:05.000"
)

// prog holds program parameters and status
type prog struct {
	spec waitspec.Spec

	showTime    bool
	showTimeFmt string
	doSleep     bool

	dbgStack *callstack.Stack
}

// newProg returns a new prog instance with the default values set
func newProg() *prog {
	return &prog{
		showTimeFmt: dfltShowTimeFmt,
		doSleep:     true,
		dbgStack:    &callstack.Stack{},
	}
}

// resolve works out the wake instant from the wait specification and the
// current time. In verbose mode each of the candidate times is shown.
func (prog *prog) resolve(now time.Time) (int64, error) {
	defer prog.dbgStack.Start("resolve", "working out the wake time")()

	if err := prog.spec.Check(); err != nil {
		return 0, err
	}

	cands, err := target.Candidates(prog.spec, now)
	if err != nil {
		return 0, err
	}

	best, _ := target.Earliest(cands)

	if verbose.IsOn() {
		verbose.Println("         now: ", now.Format(verboseTimeFmt))

		for _, c := range cands {
			verbose.Println("   candidate: ", c.String())
		}

		verbose.Println("       until: ", best.String())
	}

	return best.At, nil
}

// wait waits until the wall clock reaches the wake instant
func (prog *prog) wait(
	wakeAt int64, clk wakeloop.Clock, sleep wakeloop.Sleeper,
) {
	defer prog.dbgStack.Start("wait", "waiting")()

	w := wakeloop.Waiter{
		Now:        clk,
		Sleep:      sleep,
		PlainSleep: prog.spec.PlainSleep,
	}

	if verbose.IsOn() {
		w.Report = func(remaining, interval int64) {
			verbose.Println("sleeping for: ",
				(time.Duration(interval) * time.Millisecond).String(),
				" (remaining: ",
				(time.Duration(remaining) * time.Millisecond).String(),
				")")
		}
	}

	n := w.WaitUntil(wakeAt)
	verbose.Println("       slept: ", strconv.Itoa(n), " times")
}

// run resolves the wake instant, waits until then and performs any
// requested actions. It returns the exit status for the program.
func (prog *prog) run(
	clk wakeloop.Clock, sleep wakeloop.Sleeper, stdout, stderr io.Writer,
) int {
	if prog.dbgStack.W == nil {
		prog.dbgStack.W = stderr
	}

	defer prog.dbgStack.Start(progName, "Start")()

	wakeAt, err := prog.resolve(clk())
	if err != nil {
		fmt.Fprintln(stderr, progName+":", err)
		return exitStatusBadArgs
	}

	if prog.doSleep {
		prog.wait(wakeAt, clk, sleep)
	}

	if prog.showTime {
		fmt.Fprintln(stdout, time.UnixMilli(wakeAt).Format(prog.showTimeFmt))
	}

	return exitStatusOK
}
