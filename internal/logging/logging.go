package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger gates informational and debug output behind the command flags.
// Warnings and errors always print; they go to stderr so they survive
// output redirection during builds.
type Logger struct {
	Verbose bool
	Debug   bool
}

// Infof prints a message when verbose output is enabled.
func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

// Debugf prints a message when debug output is enabled.
func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

// Warnf prints a warning unconditionally.
func (l Logger) Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
}

// Errorf prints an error unconditionally.
func (l Logger) Errorf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
}
