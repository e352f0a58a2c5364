package main

import "github.com/nickwells/param.mod/v6/param"

// addExamples adds examples to the usage message.
func addExamples(ps *param.PSet) error {
	ps.AddExample(`nap -- 5m`,
		"This will wait for five minutes."+
			"\n\n"+
			"If the computer is suspended after two minutes and"+
			" resumed an hour later the program will exit within"+
			" a few seconds of resuming.")
	ps.AddExample(`nap -- 1.5`,
		"This will wait for one and a half seconds.")
	ps.AddExample(`nap -at 6:30am -at 18:30`,
		"This will wait until whichever of 06:30 or 18:30 comes next."+
			"\n\n"+
			"If you start the program at 12:00 then it will"+
			" exit at 18:30 the same day.")
	ps.AddExample(`nap -midnight -for 2h`,
		"This will wait for two hours or until midnight,"+
			" whichever is sooner.")
	ps.AddExample(`nap -sleep -- 30s`,
		"This will sleep for thirty seconds in a single sleep, like"+
			" the standard sleep command.")
	ps.AddExample(`nap -at 23:00 -show-time -format '15:04'`,
		"This will wait until 23:00 and then print '23:00'.")

	return nil
}
