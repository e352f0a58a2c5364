package main

import (
	"github.com/nickwells/param.mod/v6/param"
	"github.com/nickwells/param.mod/v6/paramset"
	"github.com/nickwells/verbose.mod/verbose"
	"github.com/nickwells/versionparams.mod/versionparams"
)

// paramOptFuncs returns the parameter option functions (which add the
// various parameters to the paramset). This is separated out from the
// paramset creation so that it can be used in testing to create several
// distinct paramsets.
func paramOptFuncs(prog *prog) []param.PSetOptFunc {
	return []param.PSetOptFunc{
		verbose.AddParams,
		versionparams.AddParams,

		addWaitParams(prog),
		addActionParams(prog),

		addNotes,
		addExamples,
		addRefs,

		param.SetProgramDescription(
			"This will pause until the earliest of: the end of a" +
				" given duration, the next midnight or any of a list" +
				" of times of day." +
				"\n\n" +
				"While it waits it wakes at regular intervals to check" +
				" the wall clock. This means that if the computer is" +
				" suspended and resumes after the wake time the program" +
				" will exit promptly rather than carrying on sleeping" +
				" for the rest of the original duration." +
				"\n\n" +
				"Nothing is written to the standard output unless you" +
				" ask for the wake time to be shown or for verbose" +
				" output, which shows the candidate times and each" +
				" sleep."),
	}
}

// makeParamSet generates the param set ready for parsing
func makeParamSet(prog *prog) *param.PSet {
	return paramset.NewOrPanic(paramOptFuncs(prog)...)
}
