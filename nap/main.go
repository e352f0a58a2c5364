package main

import (
	"os"
	"time"

	"github.com/nap-utils/nap/internal/wakeloop"
)

// Created: Sat Oct 17 10:12:40 2026

func main() {
	prog := newProg()
	ps := makeParamSet(prog)
	ps.Parse(cmdLineArgs(os.Args[1:]))

	os.Exit(prog.run(wakeloop.WallClock, time.Sleep, os.Stdout, os.Stderr))
}
