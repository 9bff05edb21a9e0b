package cli

import (
	"flag"
	"io"
)

// NewQuietFlagSet returns a clean FlagSet with ContinueOnError and no usage
// output, for tests and embedding.
func NewQuietFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	return fs
}
