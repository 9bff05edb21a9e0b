// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"time"

	"codonscan/internal/cli"
	"codonscan/internal/cmdutil"
	"codonscan/internal/codon"
	"codonscan/internal/pretty"
	"codonscan/internal/runutil"
	"codonscan/internal/seqio"
	"codonscan/internal/translate"
	"codonscan/internal/version"
	"codonscan/internal/writers"
	"codonscan/pkg/api"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, missing/unreadable/oversized input
	ExitIO       = 3 // output write failure
	ExitCanceled = 130
)

// Result is one completed run.
type Result struct {
	Input   seqio.Sequence
	Output  []byte
	Elapsed time.Duration
	Threads int
	Table   codon.Table
}

// Translate loads opts.Input and translates it. The returned Elapsed covers
// load and translation, not output. warn, if non-nil, receives resource
// warnings raised between the two steps.
func Translate(ctx context.Context, opts cli.Options, warn func(string)) (Result, error) {
	table, err := codon.ParseTable(opts.Lookup, opts.FoldCase)
	if err != nil {
		return Result{}, err
	}
	res := Result{Threads: runutil.EffectiveThreads(opts.Threads), Table: table}

	begin := time.Now()
	seq, err := seqio.Load(ctx, opts.Input, seqio.Options{MaxLen: opts.MaxLen, Strict: opts.Strict})
	if err != nil {
		return res, err
	}
	res.Input = seq

	if w := runutil.CheckMemory(runutil.Footprint(seq.Len(), translate.OutputLen(seq.Len()))); w != "" && warn != nil {
		warn(w)
	}
	out, err := translate.Run(ctx, seq.Data, translate.Config{Threads: res.Threads, Table: table})
	if err != nil {
		return res, err
	}
	res.Output = out
	res.Elapsed = time.Since(begin)
	return res, nil
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flags := cli.NewFlagSet("codonscan")
	flags.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(flags, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flags.SetOutput(outw)
			flags.Usage()
			return flushExit(outw, stderr, ExitOK)
		}
		cmdutil.Errorf(stderr, "%v", err)
		flags.SetOutput(stderr)
		flags.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "codonscan version %s\n", version.Version)
		return flushExit(outw, stderr, ExitOK)
	}

	res, err := Translate(parent, opts, func(msg string) { cmdutil.Warnf(stderr, opts.Quiet, "%s", msg) })
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			return ExitCanceled
		case errors.Is(err, fs.ErrNotExist):
			cmdutil.Errorf(stderr, "input file not found: %v", err)
		case errors.Is(err, seqio.ErrInputTooLarge):
			cmdutil.Errorf(stderr, "%v (raise --max-length or drop --strict)", err)
		default:
			cmdutil.Errorf(stderr, "%v", err)
		}
		return ExitUsage
	}

	if res.Input.Truncated {
		cmdutil.Warnf(stderr, opts.Quiet, "input truncated to %s", pretty.Noun(opts.MaxLen, "symbol"))
	}

	st := translate.Count(res.Output)
	if opts.Verbose {
		report(stderr, res, &st)
	}

	if opts.JSON {
		err = writers.WriteReport(outw, toAPI(opts, res, &st))
	} else {
		err = writers.WriteElapsed(outw, res.Elapsed)
	}
	if err != nil {
		return writeFailed(stderr, err)
	}

	if opts.Out != "" {
		if opts.Out == "-" {
			_, _ = io.WriteString(outw, "\n")
		}
		if code := writeSequence(outw, stderr, opts, res); code != ExitOK {
			return code
		}
	}
	return flushExit(outw, stderr, ExitOK)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeSequence(outw io.Writer, stderr io.Writer, opts cli.Options, res Result) int {
	w, err := writers.Create(opts.Out, outw)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitIO
	}
	header := opts.Header
	if header == "" {
		header = defaultHeader(opts.Input, len(res.Output))
	}
	err = writers.WriteSequence(w, res.Output, writers.SequenceOptions{Format: opts.Format, Width: opts.Width, Header: header})
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return writeFailed(stderr, err)
	}
	return ExitOK
}

func defaultHeader(input string, n int) string {
	name := filepath.Base(input)
	if input == "-" {
		name = "stdin"
	}
	return fmt.Sprintf("%s stride=1 windows=%d", name, n)
}

func report(stderr io.Writer, res Result, st *translate.Stats) {
	cmdutil.Infof(stderr, true, "input %s: %s", res.Input.Source, pretty.Noun(res.Input.Len(), "symbol"))
	cmdutil.Infof(stderr, true, "translated %s with %s (lookup=%s)",
		pretty.Noun(st.Windows, "window"), pretty.Noun(res.Threads, "thread"), res.Table.Name())
	cmdutil.Infof(stderr, true, "%s, %s", pretty.Noun(st.Stops, "stop"), pretty.Noun(st.Unknown, "unknown codon"))
	cmdutil.Infof(stderr, true, "elapsed %ss", writers.FormatElapsed(res.Elapsed))
	_ = pretty.Composition(stderr, st, pretty.DefaultOptions)
}

func toAPI(opts cli.Options, res Result, st *translate.Stats) api.ReportV1 {
	return api.ReportV1{
		ElapsedSeconds: res.Elapsed.Seconds(),
		Input:          res.Input.Source,
		InputLength:    res.Input.Len(),
		OutputLength:   len(res.Output),
		Truncated:      res.Input.Truncated,
		Unknown:        st.Unknown,
		Stops:          st.Stops,
		Threads:        res.Threads,
		Lookup:         res.Table.Name(),
		FoldCase:       res.Table.FoldCase(),
		Output:         opts.Out,
	}
}

func writeFailed(stderr io.Writer, err error) int {
	if writers.IsBrokenPipe(err) {
		return ExitOK
	}
	cmdutil.Errorf(stderr, "%v", err)
	return ExitIO
}

func flushExit(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}
