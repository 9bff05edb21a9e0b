// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
)

// Common holds CLI fields shared by codonscan and codonscan-gen.
type Common struct {
	Out     string
	Quiet   bool
	Verbose bool
	Version bool
	Help    bool
}

// Register wires shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common, outDefault, outHelp string) {
	fs.StringVar(&c.Out, "out", outDefault, outHelp)
	fs.StringVar(&c.Out, "o", outDefault, "alias of --out")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Verbose, "verbose", false, "print run statistics to stderr [false]")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Help, "h", false, "show this help message [false]")
	fs.BoolVar(&c.Help, "help", false, "show this help message [false]")
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if c.Quiet && c.Verbose {
		return errors.New("--quiet conflicts with --verbose")
	}
	return nil
}

// SetFlags returns the names of flags given explicitly on the command line.
func SetFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { m[f.Name] = true })
	return m
}
