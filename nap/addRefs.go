package main

import "github.com/nickwells/param.mod/v6/param"

// addRefs adds references to related programs to the usage message
func addRefs(ps *param.PSet) error {
	ps.AddReference("sleep",
		"The standard command for pausing for a period of time."+
			" It makes a single long sleep and so, after a suspend,"+
			" it may carry on sleeping long after the intended time.")

	ps.AddReference("sleepuntil",
		"This program can be used to sleep until a regular time of"+
			" day (such as the next hour or the next 5-minute mark)"+
			" and then perform some action."+
			"\n\n"+
			"To get this program:"+
			"\n\n"+
			"go install github.com/nickwells/utilities/sleepuntil@latest")

	return nil
}
