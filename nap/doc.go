/*
The nap program pauses for a duration, until one or more times of day or
until the next midnight, whichever comes first. Unlike a plain sleep it
keeps checking the wall clock while it waits so that if the computer is
suspended past the wake time it exits as soon as the computer resumes.

It writes nothing to the standard output unless asked to show the wake
time or to give verbose output (the candidate times and each sleep). It
exits with status 1 if the parameters are bad.
*/
package main
