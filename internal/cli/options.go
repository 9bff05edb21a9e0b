// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"codonscan/internal/clibase"
	"codonscan/internal/cliutil"
	"codonscan/internal/codon"
	"codonscan/internal/config"
	"codonscan/internal/seqio"
	"codonscan/internal/writers"
)

// DefaultInput is read when no input is named.
const DefaultInput = "DNA2.txt"

// Options holds all CLI flags and arguments.
type Options struct {
	clibase.Common

	// Input
	Input    string
	MaxLen   int
	Strict   bool
	FoldCase bool

	// Translation
	Lookup  string
	Threads int

	// Output
	Format string
	Width  int
	Header string
	JSON   bool

	Config string
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "sliding-window codon translation benchmark", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [flags] [FILE]\n\n", name)
		clibase.PrintExamples(out,
			name+"                         # translate "+DefaultInput+", print seconds",
			name+" --json genome.txt.gz",
			name+" --out aa.fa --format fasta --threads 1 DNA2.txt",
		)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -i, --input string          Sequence file, first line is read; '-' = STDIN [%s]\n", def("input"))
		fmt.Fprintf(out, "      --max-length int        Maximum symbols to load (0=unlimited) [%s]\n", def("max-length"))
		fmt.Fprintf(out, "      --strict                Fail instead of truncating over-long input [%s]\n", def("strict"))
		fmt.Fprintf(out, "      --fold-case             Accept lower-case bases [%s]\n", def("fold-case"))
		fmt.Fprintf(out, "      --config string         TOML file with flag defaults [%s]\n", def("config"))

		fmt.Fprintln(out, "\nTranslation:")
		fmt.Fprintf(out, "      --lookup string         Codon lookup: index | linear [%s]\n", def("lookup"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=physical cores) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --out string            Write translated sequence ('-' = STDOUT, .gz compresses) [%s]\n", def("out"))
		fmt.Fprintf(out, "      --format string         Sequence format: raw | fasta [%s]\n", def("format"))
		fmt.Fprintf(out, "      --width int             FASTA line width (0=single line) [%s]\n", def("width"))
		fmt.Fprintf(out, "      --header string         FASTA defline (default: input name) [%s]\n", def("header"))
		fmt.Fprintf(out, "      --json                  Print a JSON report instead of bare seconds [%s]\n", def("json"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and the optional FILE positional may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	clibase.Register(fs, &opt.Common, "", "write translated sequence ('-' = stdout) []")

	fs.StringVar(&opt.Input, "input", DefaultInput, "input sequence file ('-' = stdin) ["+DefaultInput+"]")
	fs.StringVar(&opt.Input, "i", DefaultInput, "alias of --input")
	fs.IntVar(&opt.MaxLen, "max-length", seqio.DefaultMaxLen, "maximum symbols to load (0 = unlimited)")
	fs.BoolVar(&opt.Strict, "strict", false, "fail instead of truncating over-long input [false]")
	fs.BoolVar(&opt.FoldCase, "fold-case", false, "accept lower-case bases [false]")

	fs.StringVar(&opt.Lookup, "lookup", codon.LookupIndex, "codon lookup: index | linear [index]")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0 = physical cores) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")

	fs.StringVar(&opt.Format, "format", writers.FormatRaw, "sequence format: raw | fasta [raw]")
	fs.IntVar(&opt.Width, "width", writers.DefaultWidth, "FASTA line width (0 = single line) [60]")
	fs.StringVar(&opt.Header, "header", "", "FASTA defline []")
	fs.BoolVar(&opt.JSON, "json", false, "print a JSON report [false]")
	fs.StringVar(&opt.Config, "config", "", "TOML config file []")

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
	posArgs = append(posArgs, fs.Args()...)

	explicit := clibase.SetFlags(fs)
	if opt.Config != "" {
		if err := applyConfig(&opt, explicit); err != nil {
			return opt, err
		}
	}

	in, err := cliutil.SingleInput(posArgs, opt.Input)
	if err != nil {
		return opt, err
	}
	opt.Input = in

	return opt, Validate(&opt)
}

func applyConfig(opt *Options, explicit map[string]bool) error {
	f, err := config.Load(opt.Config)
	if err != nil {
		return err
	}
	// Short aliases count as the long flag being set.
	for short, long := range map[string]string{"i": "input", "t": "threads", "o": "out", "q": "quiet"} {
		if explicit[short] {
			explicit[long] = true
		}
	}
	config.Assign(explicit, "input", f.Input, &opt.Input)
	config.Assign(explicit, "max-length", f.MaxLength, &opt.MaxLen)
	config.Assign(explicit, "strict", f.Strict, &opt.Strict)
	config.Assign(explicit, "fold-case", f.FoldCase, &opt.FoldCase)
	config.Assign(explicit, "lookup", f.Lookup, &opt.Lookup)
	config.Assign(explicit, "threads", f.Threads, &opt.Threads)
	config.Assign(explicit, "out", f.Out, &opt.Out)
	config.Assign(explicit, "format", f.Format, &opt.Format)
	config.Assign(explicit, "width", f.Width, &opt.Width)
	config.Assign(explicit, "header", f.Header, &opt.Header)
	config.Assign(explicit, "json", f.JSON, &opt.JSON)
	config.Assign(explicit, "verbose", f.Verbose, &opt.Verbose)
	config.Assign(explicit, "quiet", f.Quiet, &opt.Quiet)
	return nil
}

// Validate checks flag combinations after parsing.
func Validate(opt *Options) error {
	if err := clibase.Validate(&opt.Common); err != nil {
		return err
	}
	if opt.Input == "" {
		return errors.New("an input file is required")
	}
	if opt.MaxLen < 0 {
		return errors.New("--max-length must be ≥ 0")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if opt.Width < 0 {
		return errors.New("--width must be ≥ 0")
	}
	if _, err := codon.ParseTable(opt.Lookup, opt.FoldCase); err != nil {
		return err
	}
	if _, ok := writers.SequenceWriters[opt.Format]; !ok {
		return fmt.Errorf("invalid --format %q (want %s)", opt.Format, strings.Join(writers.SequenceFormats(), " | "))
	}
	if opt.Out == "-" && opt.JSON {
		return errors.New("--out - cannot be combined with --json (both write to stdout)")
	}
	return nil
}
