// Package diag is the shared diagnostic channel for the emulator core.
//
// Events are written one per line to a single stream, tagged by severity.
// Panicf reports a fatal condition and terminates the process; Warnf and
// Printf return normally. Debugf is compiled in only when the "debug"
// build tag is set and costs nothing in release builds.
//
// A package mutex keeps concurrent callers to one line at a time.
package diag
