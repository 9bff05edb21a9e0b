// internal/gencli/options.go
package gencli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"codonscan/internal/clibase"
	"codonscan/internal/cliutil"
)

// Options holds codonscan-gen flags and the LENGTH positional.
type Options struct {
	clibase.Common

	Length  int
	Seed    uint64
	SeedSet bool
	NRate   float64
	Newline bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "random nucleotide sequence generator", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [flags] LENGTH   (LENGTH accepts k/M/G suffixes)\n\n", name)
		clibase.PrintExamples(out,
			name+" -o DNA2.txt 100M",
			name+" --seed 7 --n-rate 0.01 -o test.txt.gz 5k",
		)
		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out string            Output file ('-' = STDOUT, .gz compresses) [%s]\n", def("out"))
		fmt.Fprintf(out, "      --seed uint             PRNG seed (default: random)\n")
		fmt.Fprintf(out, "      --n-rate float          Probability of emitting N [%s]\n", def("n-rate"))
		fmt.Fprintf(out, "      --newline               Terminate the line with \\n [%s]\n", def("newline"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common, "-", "output file ('-' = stdout) [-]")
	fs.Uint64Var(&opt.Seed, "seed", 0, "PRNG seed (default: random)")
	fs.Float64Var(&opt.NRate, "n-rate", 0, "probability of emitting N [0]")
	fs.BoolVar(&opt.Newline, "newline", false, "terminate the line [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.SeedSet = clibase.SetFlags(fs)["seed"]
	posArgs = append(posArgs, fs.Args()...)

	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	if len(posArgs) != 1 {
		return opt, errors.New("exactly one LENGTH argument is required")
	}
	n, err := ParseLength(posArgs[0])
	if err != nil {
		return opt, err
	}
	opt.Length = n
	if opt.NRate < 0 || opt.NRate > 1 {
		return opt, errors.New("--n-rate must be within [0,1]")
	}
	if opt.Out == "" {
		return opt, errors.New("--out must not be empty")
	}
	return opt, nil
}

// ParseLength accepts plain integers, '_' / ',' separators and k/M/G
// (powers of 1000) suffixes.
func ParseLength(s string) (int, error) {
	raw := s
	s = strings.NewReplacer("_", "", ",", "").Replace(strings.TrimSpace(s))
	mult := 1
	if s != "" {
		switch s[len(s)-1] {
		case 'k', 'K':
			mult = 1_000
		case 'm', 'M':
			mult = 1_000_000
		case 'g', 'G':
			mult = 1_000_000_000
		}
		if mult != 1 {
			s = s[:len(s)-1]
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid LENGTH %q", raw)
	}
	return n * mult, nil
}
