package main

import (
	"github.com/nap-utils/nap/internal/waitspec"
	"github.com/nickwells/param.mod/v6/param"
)

const (
	noteSuspend  = "Nap - suspend and resume"
	noteTimes    = "Nap - times of day"
	noteDuration = "Nap - durations"
)

// addNotes adds the notes to the usage message
func addNotes(ps *param.PSet) error {
	ps.AddNote(noteSuspend,
		"The program checks the wall clock (not a clock that stops"+
			" while the computer is suspended) each time it wakes."+
			" It wakes every 10 seconds while more than 100 seconds"+
			" remain, every 5 seconds while more than 50 seconds remain,"+
			" every second while 10 seconds or more remain, every half"+
			" second while a second or more remains and every 10"+
			" milliseconds after that."+
			"\n\n"+
			"If the clock is changed by hand while the program is"+
			" waiting the wait will be shortened or lengthened"+
			" accordingly.",
		param.NoteSeeParam(paramNameSleep))

	ps.AddNote(noteTimes,
		"Times of day are in the local timezone and have the form: "+
			waitspec.ClockTimeFormat()+
			"\n\n"+
			"A time which has already passed today is taken to mean"+
			" that time tomorrow. Tomorrow is taken to start exactly"+
			" 24 hours after the start of today so on the days when"+
			" the clocks change the wait may be an hour out.",
		param.NoteSeeParam(paramNameAt, paramNameMidnight))

	ps.AddNote(noteDuration,
		"A duration is a non-negative decimal number, optionally"+
			" followed by one of "+waitspec.DurationUnits()+"."+
			" Without a suffix the number is taken as seconds."+
			" The duration is rounded to the nearest millisecond.",
		param.NoteSeeParam(paramNameFor))

	return nil
}
