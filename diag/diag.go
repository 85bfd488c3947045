package diag

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/bamboo-emu/bamboo/translate"
)

// ANSI sequences for the visually distinguished fatal/warning lines.
const (
	ansiOnRed = "\x1b[41m"
	ansiReset = "\x1b[0m"
)

var (
	mu       sync.Mutex
	output   io.Writer = os.Stdout
	colorize           = term.IsTerminal(int(os.Stdout.Fd()))

	// swapped out by tests of the fatal path
	exit = os.Exit
)

// SetOutput redirects the diagnostic stream. Color is re-detected from the
// new writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	output = w

	colorize = false
	if file, ok := w.(*os.File); ok {
		colorize = term.IsTerminal(int(file.Fd()))
	}
}

func write(severity Severity, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	line := severity.tag() + translate.From(format, args...)
	if colorize && severity != Debug {
		line = ansiOnRed + line + ansiReset
	}
	io.WriteString(output, line+"\n")
}

// Panicf writes a fatal-severity line to the diagnostic stream and
// terminates the process with a non-zero status. It never returns.
func Panicf(format string, args ...any) {
	write(Fatal, format, args...)
	exit(1)
}

// Warnf writes a warning-severity line and returns.
func Warnf(format string, args ...any) {
	write(Warning, format, args...)
}

// Printf writes an untagged informational line and returns.
func Printf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	io.WriteString(output, translate.From(format, args...)+"\n")
}

// Debugf writes a line only in builds with the "debug" tag; otherwise the
// call compiles to nothing.
func Debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	write(Debug, format, args...)
}
