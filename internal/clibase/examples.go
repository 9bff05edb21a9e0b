// internal/clibase/examples.go
package clibase

import (
	"fmt"
	"io"
)

// PrintExamples prints a small quickstart block.
func PrintExamples(out io.Writer, lines ...string) {
	if out == nil || len(lines) == 0 {
		return
	}
	_, _ = fmt.Fprintln(out, "Examples:")
	for _, l := range lines {
		_, _ = fmt.Fprintf(out, "  %s\n", l)
	}
}
