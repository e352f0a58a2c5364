package main

import "strings"

// valueParams holds the names of the parameters which take a following
// value. A bare argument after one of these is its value, not a duration.
var valueParams = map[string]bool{
	paramNameAt: true,
	"until":     true,
	"t":         true,

	paramNameFor: true,
	"duration":   true,
	"d":          true,

	paramNameFormat: true,
}

// cmdLineArgs returns the arguments rearranged so that any bare duration
// (one not given as the value of a parameter) is moved after the terminal
// parameter, where the final checks will find it. So
//
//	nap 2m -at 23:59
//
// is parsed as
//
//	nap -at 23:59 -- 2m
//
// A bare argument is taken as a duration if it starts with a digit or a
// '.'; anything else is left for the parameter parser to report.
func cmdLineArgs(args []string) []string {
	params := make([]string, 0, len(args)+1)

	var durations []string

	for i := 0; i < len(args); i++ {
		a := args[i]

		if a == "--" {
			durations = append(durations, args[i+1:]...)
			break
		}

		if i > 0 && takesValue(args[i-1]) {
			params = append(params, a)
			continue
		}

		if isBareDuration(a) {
			durations = append(durations, a)
			continue
		}

		params = append(params, a)
	}

	if len(durations) == 0 {
		return params
	}

	return append(append(params, "--"), durations...)
}

// takesValue returns true if the argument is a parameter which will take
// the next argument as its value
func takesValue(arg string) bool {
	name, ok := strings.CutPrefix(arg, "-")
	if !ok {
		return false
	}

	name = strings.TrimPrefix(name, "-")
	if strings.Contains(name, "=") {
		return false
	}

	return valueParams[name]
}

// isBareDuration returns true if the argument looks like a duration rather
// than a parameter or some other word
func isBareDuration(arg string) bool {
	if arg == "" {
		return false
	}

	c := arg[0]

	return (c >= '0' && c <= '9') || c == '.'
}
