// internal/genapp/app.go
package genapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"codonscan/internal/cmdutil"
	"codonscan/internal/gen"
	"codonscan/internal/gencli"
	"codonscan/internal/pretty"
	"codonscan/internal/version"
	"codonscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flags := gencli.NewFlagSet("codonscan-gen")
	flags.SetOutput(io.Discard)

	opts, err := gencli.ParseArgs(flags, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flags.SetOutput(outw)
			flags.Usage()
			return 0
		}
		cmdutil.Errorf(stderr, "%v", err)
		flags.SetOutput(stderr)
		flags.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "codonscan-gen version %s\n", version.Version)
		return 0
	}

	seed := opts.Seed
	if !opts.SeedSet {
		seed = uint64(time.Now().UnixNano())
	}
	cmdutil.Infof(stderr, opts.Verbose, "generating %s (seed %d)", pretty.Noun(opts.Length, "symbol"), seed)

	w, err := writers.Create(opts.Out, outw)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return 3
	}
	err = gen.Generate(parent, w, opts.Length, gen.Options{Seed: seed, NRate: opts.NRate, Newline: opts.Newline})
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = outw.Flush()
	}
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	default:
		cmdutil.Errorf(stderr, "%v", err)
		return 3
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
