package stdparams

import (
	"github.com/nap-utils/nap/internal/callstack"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

// AddTiming adds the show-timings parameter which sets the ShowTimings
// field in the callstack.Stack. The timings are written to the standard
// error so that the standard output is left untouched.
func AddTiming(
	ps *param.PSet,
	cs *callstack.Stack,
	opt ...param.OptFunc,
) *param.ByName {
	opt = append(opt,
		param.Attrs(param.DontShowInStdUsage|param.CommandLineOnly),
		param.AltNames("show-timing", "show-time-taken"))

	return ps.Add("show-timings", psetter.Bool{Value: &cs.ShowTimings},
		"report how long it took to work out the wake time"+
			" and how long the wait lasted.",
		opt...)
}
