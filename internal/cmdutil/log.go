// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	warnTag  = color.New(color.FgYellow, color.Bold)
	errorTag = color.New(color.FgRed, color.Bold)
	infoTag  = color.New(color.FgCyan)
)

// Warnf prints a WARN line unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	logf(dst, warnTag, "WARN", format, a...)
}

// Errorf prints an ERROR line. Errors are never silenced.
func Errorf(dst io.Writer, format string, a ...any) {
	logf(dst, errorTag, "ERROR", format, a...)
}

// Infof prints an INFO line when verbose.
func Infof(dst io.Writer, verbose bool, format string, a ...any) {
	if !verbose {
		return
	}
	logf(dst, infoTag, "INFO", format, a...)
}

func logf(dst io.Writer, tag *color.Color, level, format string, a ...any) {
	_, _ = tag.Fprint(dst, level+":")
	_, _ = fmt.Fprintf(dst, " "+format+"\n", a...)
}
