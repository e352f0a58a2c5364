package main

import (
	"fmt"
	"strings"

	"github.com/nap-utils/nap/internal/stdparams"
	"github.com/nap-utils/nap/internal/waitspec"
	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/english.mod/english"
	"github.com/nickwells/param.mod/v6/paction"
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/psetter"
)

const (
	paramGroupNameWait    = "cmd-wait"
	paramGroupNameActions = "cmd-actions"

	paramNameMidnight = "midnight"
	paramNameAt       = "at"
	paramNameFor      = "for"
	paramNameSleep    = "sleep"
	paramNameShowTime = "show-time"
	paramNameFormat   = "format"
)

// addWaitParams adds the parameters which say what to wait for to the PSet
func addWaitParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameWait,
			"what to wait for. If more than one is given the wait"+
				" ends at the earliest of them.")

		ps.Add(paramNameMidnight, psetter.Bool{Value: &prog.spec.Midnight},
			"wait until the next midnight in the local timezone",
			param.AltNames("next-midnight", "eod"),
			param.GroupName(paramGroupNameWait),
		)

		atParam := ps.Add(paramNameAt,
			ClockTimeSetter{Value: &prog.spec.ClockTimes},
			"wait until this time of day. If the time has already"+
				" passed today the wait is until that time tomorrow."+
				"\n\n"+
				"This may be given more than once.",
			param.AltNames("until", "t"),
			param.GroupName(paramGroupNameWait),
		)

		durParam := ps.Add(paramNameFor, DurationSetter{Value: &prog.spec},
			"wait for this long. The duration can also be given"+
				" as an argument on its own, for instance: 'nap 5m'.",
			param.AltNames("duration", "d"),
			param.GroupName(paramGroupNameWait),
		)

		ps.Add(paramNameSleep, psetter.Bool{Value: &prog.spec.PlainSleep},
			"sleep for the whole of the wait at once, like the"+
				" traditional sleep command, rather than waking"+
				" regularly to check the time. If the computer is"+
				" suspended during the wait the program may not"+
				" exit promptly when the computer resumes.",
			param.AltNames("plain-sleep"),
			param.GroupName(paramGroupNameWait),
		)

		err := ps.SetRemHandler(param.NullRemHandler{}) // allow a duration
		if err != nil {
			return err
		}

		ps.AddFinalCheck(func() error {
			args := ps.Remainder()

			switch len(args) {
			case 0:
			case 1:
				if durParam.HasBeenSet() {
					return fmt.Errorf(
						"the duration has been given twice:"+
							" as %q and by the %q parameter",
						args[0], "-"+paramNameFor)
				}

				ms, err := waitspec.ParseDuration(args[0])
				if err != nil {
					return err
				}

				prog.spec.SetDuration(ms)
			default:
				return fmt.Errorf(
					"only one duration may be given, %d were given: %s",
					len(args), `"`+strings.Join(args, `", "`)+`"`)
			}

			if atParam.HasBeenSet() || durParam.HasBeenSet() {
				return nil // any bad value has already been reported
			}

			if err := prog.spec.Check(); err != nil {
				return fmt.Errorf("%w: give %s",
					err,
					english.Join([]string{
						"a duration (NUMBER[s|m|h|d])",
						"-" + paramNameMidnight,
						"-" + paramNameAt + " HH:MM",
					}, ", ", " or "))
			}

			return nil
		})

		return nil
	}
}

// addActionParams adds the parameters which control what happens when the
// wait ends
func addActionParams(prog *prog) param.PSetOptFunc {
	return func(ps *param.PSet) error {
		ps.AddGroup(paramGroupNameActions,
			"what to do when the wait finishes.")

		ps.Add(paramNameShowTime, psetter.Bool{Value: &prog.showTime},
			"show the wake time on the standard output when the wait ends",
			param.GroupName(paramGroupNameActions),
		)

		ps.Add(paramNameFormat,
			psetter.String[string]{
				Value: &prog.showTimeFmt,
				Checks: []check.String{
					check.StringLength[string](check.ValGT(0)),
				},
			},
			"the format to use when showing the time."+
				" Setting this value forces the "+paramNameShowTime+
				" flag on.",
			param.PostAction(paction.SetVal(&prog.showTime, true)),
			param.GroupName(paramGroupNameActions),
		)

		ps.Add("dont-sleep", psetter.Bool{Value: &prog.doSleep, Invert: true},
			"do everything except wait - useful for checking the wake time",
			param.Attrs(param.DontShowInStdUsage),
		)

		stdparams.AddTiming(ps, prog.dbgStack)

		return nil
	}
}
