// Package report centralizes the solver's human-readable status and error
// output: colorized progress (github.com/fatih/color) plus plain
// diagnostic lines, gating color on whether standard output is a terminal.
package report

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

func init() {
	color.NoColor = !isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Status prints a colorized, transient progress line to standard output.
func Status(format string, a ...any) {
	color.HiYellow(format, a...)
}

// Summary prints a colorized run-summary line to standard output.
func Summary(format string, a ...any) {
	color.HiWhite(format, a...)
}

// Warn reports a non-fatal error: a plain human-readable line on standard
// output. The caller proceeds.
func Warn(context string, err error) {
	fmt.Printf("warning: %s: %s\n", context, err)
}

// Fatal reports a fatal error and exits the process with a nonzero status.
// It never returns.
func Fatal(context string, err error) {
	fmt.Printf("error: %s: %s\n", context, err)
	os.Exit(1)
}
