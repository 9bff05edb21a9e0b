package app

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"

	"codonscan/internal/cli"
)

var elapsedRe = regexp.MustCompile(`^\d+\.\d{6}$`)

func init() { color.NoColor = true }

func writeInput(t *testing.T, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "DNA2.txt")
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestRunPrintsElapsedOnly(t *testing.T) {
	fn := writeInput(t, "ATGCATGCATGC\nIGNORED\n")
	var out, errB bytes.Buffer
	if code := Run([]string{fn}, &out, &errB); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errB.String())
	}
	if !elapsedRe.MatchString(out.String()) {
		t.Fatalf("stdout %q is not a bare %%f timing", out.String())
	}
	if errB.Len() != 0 {
		t.Fatalf("unexpected stderr %q", errB.String())
	}
}

func TestRunMissingInput(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{filepath.Join(t.TempDir(), "nope.txt")}, &out, &errB)
	if code != ExitUsage {
		t.Fatalf("want %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errB.String(), "not found") {
		t.Fatalf("stderr: %q", errB.String())
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should reach stdout: %q", out.String())
	}
}

func TestRunJSONReport(t *testing.T) {
	fn := writeInput(t, "ATGNNNATG\n")
	var out, errB bytes.Buffer
	if code := Run([]string{"--json", "--threads", "1", fn}, &out, &errB); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errB.String())
	}
	var rep map[string]any
	if err := json.Unmarshal(out.Bytes(), &rep); err != nil {
		t.Fatalf("bad json %q: %v", out.String(), err)
	}
	if rep["input_length"] != float64(9) || rep["output_length"] != float64(7) || rep["unknown"] != float64(5) {
		t.Fatalf("report = %v", rep)
	}
	if rep["lookup"] != "index" || rep["threads"] != float64(1) {
		t.Fatalf("report = %v", rep)
	}
	if _, ok := rep["fold_case"]; ok {
		t.Fatalf("fold_case should be omitted: %v", rep)
	}
}

func TestRunWritesSequenceToStdout(t *testing.T) {
	fn := writeInput(t, "ATGCAT\r\n")
	var out, errB bytes.Buffer
	if code := Run([]string{"-o", "-", fn}, &out, &errB); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errB.String())
	}
	lines := strings.Split(out.String(), "\n")
	if len(lines) != 3 || !elapsedRe.MatchString(lines[0]) || lines[1] != "MCAH" || lines[2] != "" {
		t.Fatalf("stdout = %q", out.String())
	}
}

func TestRunWritesGzipFASTA(t *testing.T) {
	fn := writeInput(t, "AAAAAAAA\n")
	dst := filepath.Join(t.TempDir(), "aa.fa.gz")
	var out, errB bytes.Buffer
	code := Run([]string{"--out", dst, "--format", "fasta", "--width", "4", "--header", "poly-a", fn}, &out, &errB)
	if code != ExitOK {
		t.Fatalf("exit %d: %s", code, errB.String())
	}
	fh, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()
	zr, err := gzip.NewReader(fh)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := io.ReadAll(zr)
	if string(got) != ">poly-a\nKKKK\nKK\n" {
		t.Fatalf("fasta = %q", got)
	}
}

func TestRunTruncationWarns(t *testing.T) {
	fn := writeInput(t, "ATGCATGCAT\n")
	var out, errB bytes.Buffer
	if code := Run([]string{"--max-length", "4", "--json", fn}, &out, &errB); code != ExitOK {
		t.Fatalf("exit %d: %s", code, errB.String())
	}
	if !strings.Contains(errB.String(), "WARN: input truncated to 4 symbols") {
		t.Fatalf("stderr = %q", errB.String())
	}
	if !strings.Contains(out.String(), `"truncated":true`) || !strings.Contains(out.String(), `"output_length":2`) {
		t.Fatalf("report = %q", out.String())
	}

	errB.Reset()
	out.Reset()
	if code := Run([]string{"-q", "--max-length", "4", fn}, &out, &errB); code != ExitOK || errB.Len() != 0 {
		t.Fatalf("quiet run: exit %d stderr %q", code, errB.String())
	}
}

func TestRunStrictOverCap(t *testing.T) {
	fn := writeInput(t, "ATGCATGCAT\n")
	var out, errB bytes.Buffer
	if code := Run([]string{"--max-length", "4", "--strict", fn}, &out, &errB); code != ExitUsage {
		t.Fatalf("want %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errB.String(), "exceeds maximum length") {
		t.Fatalf("stderr = %q", errB.String())
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	var out, errB bytes.Buffer
	if code := Run([]string{"-h"}, &out, &errB); code != ExitOK || !strings.Contains(out.String(), "--lookup") {
		t.Fatalf("help: exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := Run([]string{"--version"}, &out, &errB); code != ExitOK || !strings.HasPrefix(out.String(), "codonscan version ") {
		t.Fatalf("version: exit %d out %q", code, out.String())
	}
}

func TestRunBadFlags(t *testing.T) {
	for _, argv := range [][]string{
		{"--lookup", "hash"},
		{"--format", "genbank"},
		{"--threads", "-1"},
		{"--json", "-o", "-"},
		{"a.txt", "b.txt"},
		{"--no-such-flag"},
	} {
		var out, errB bytes.Buffer
		if code := Run(argv, &out, &errB); code != ExitUsage {
			t.Fatalf("%v: want %d, got %d", argv, ExitUsage, code)
		}
		if !strings.Contains(errB.String(), "ERROR:") {
			t.Fatalf("%v: stderr %q", argv, errB.String())
		}
	}
}

func TestRunCanceled(t *testing.T) {
	fn := writeInput(t, "ATGCAT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errB bytes.Buffer
	if code := RunContext(ctx, []string{fn}, &out, &errB); code != ExitCanceled {
		t.Fatalf("want %d, got %d", ExitCanceled, code)
	}
}

func TestTranslateFoldCaseAndLinear(t *testing.T) {
	fn := writeInput(t, "atgCAT\n")
	base := cli.Options{Input: fn, Lookup: "index", Threads: 1}

	res, err := Translate(context.Background(), base, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Output) != "000H" {
		t.Fatalf("case-sensitive = %q", res.Output)
	}

	folded := base
	folded.FoldCase = true
	folded.Lookup = "linear"
	res, err = Translate(context.Background(), folded, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(res.Output) != "MCAH" || res.Table.Name() != "linear" || !res.Table.FoldCase() {
		t.Fatalf("folded linear = %q (%s)", res.Output, res.Table.Name())
	}
	if res.Elapsed <= 0 {
		t.Fatalf("elapsed not recorded: %v", res.Elapsed)
	}
}

func TestDefaultHeader(t *testing.T) {
	if got := defaultHeader("/data/DNA2.txt", 12); got != "DNA2.txt stride=1 windows=12" {
		t.Fatalf("got %q", got)
	}
	if got := defaultHeader("-", 0); got != "stdin stride=1 windows=0" {
		t.Fatalf("got %q", got)
	}
}
