/*
Package waitspec holds the description of what the nap command should wait
for: an optional duration, the next midnight and any number of clock
times. It also provides the parsers for the textual forms of durations
and clock times.
*/
package waitspec
