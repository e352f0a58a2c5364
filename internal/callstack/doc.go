/*
The callstack package provides a Stack type which records the phases of a
program as they start and finish and reports how long each one took. The
report is only written when verbose mode is on or the ShowTimings flag is
set. Nested phases are indented to show the stack depth.
*/
package callstack
