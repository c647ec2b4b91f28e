package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rpgo/moneyfmt/internal/format"
)

// stderrLogger writes level-tagged diagnostics. Debug and info lines are
// only emitted in verbose mode.
type stderrLogger struct {
	w       io.Writer
	verbose bool
}

var _ format.Logger = stderrLogger{}

func (l stderrLogger) emit(tag *color.Color, level, f string, args ...any) {
	fmt.Fprintf(l.w, "%s %s\n", tag.Sprint(level), fmt.Sprintf(f, args...))
}

func (l stderrLogger) Debugf(f string, args ...any) {
	if l.verbose {
		l.emit(color.New(color.FgCyan), "debug", f, args...)
	}
}

func (l stderrLogger) Infof(f string, args ...any) {
	if l.verbose {
		l.emit(color.New(color.FgGreen), "info", f, args...)
	}
}

func (l stderrLogger) Warnf(f string, args ...any) {
	l.emit(color.New(color.FgYellow), "warn", f, args...)
}

func (l stderrLogger) Errorf(f string, args ...any) {
	l.emit(color.New(color.FgRed), "error", f, args...)
}
