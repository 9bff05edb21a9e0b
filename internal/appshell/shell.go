// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature shared by every app entry point.
type RunFunc func(context.Context, []string, io.Writer, io.Writer) int

// Main runs an app with a signal-aware context and exits with its code.
// helpOnEmpty rewrites an empty argument list to -h for tools that need
// at least one argument.
func Main(run RunFunc, helpOnEmpty bool) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, Args(os.Args[1:], helpOnEmpty), os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}

// Args applies the helpOnEmpty rule.
func Args(argv []string, helpOnEmpty bool) []string {
	if len(argv) == 0 && helpOnEmpty {
		return []string{"-h"}
	}
	return argv
}
