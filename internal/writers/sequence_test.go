package writers

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/klauspost/pgzip"

	"codonscan/pkg/api"
)

func TestWriteSequenceRaw(t *testing.T) {
	var b bytes.Buffer
	if err := WriteSequence(&b, []byte("MCAH"), SequenceOptions{}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "MCAH\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestWriteSequenceFASTA(t *testing.T) {
	var b bytes.Buffer
	err := WriteSequence(&b, []byte("ABCDEFG"), SequenceOptions{Format: FormatFASTA, Width: 3, Header: ">DNA2.txt stride1"})
	if err != nil {
		t.Fatal(err)
	}
	want := ">DNA2.txt stride1\nABC\nDEF\nG\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}

	b.Reset()
	if err := WriteSequence(&b, []byte("KK"), SequenceOptions{Format: FormatFASTA}); err != nil {
		t.Fatal(err)
	}
	if b.String() != ">translated\nKK\n" {
		t.Fatalf("default header/width: %q", b.String())
	}
}

func TestWriteSequenceUnknownFormat(t *testing.T) {
	if err := WriteSequence(io.Discard, nil, SequenceOptions{Format: "xml"}); err == nil {
		t.Fatal("expected error")
	}
}

func TestCreatePlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.txt", "out.txt.gz"} {
		fn := filepath.Join(dir, name)
		w, err := Create(fn, nil)
		if err != nil {
			t.Fatal(err)
		}
		if err := WriteSequence(w, []byte("MKV"), SequenceOptions{}); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		fh, err := os.Open(fn)
		if err != nil {
			t.Fatal(err)
		}
		var r io.Reader = fh
		if strings.HasSuffix(name, ".gz") {
			zr, err := pgzip.NewReader(fh)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			r = zr
		}
		got, err := io.ReadAll(r)
		_ = fh.Close()
		if err != nil || string(got) != "MKV\n" {
			t.Fatalf("%s: got %q err=%v", name, got, err)
		}
	}
}

func TestCreateStdout(t *testing.T) {
	var b bytes.Buffer
	w, err := Create("-", &b)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.WriteString(w, "x")
	if err := w.Close(); err != nil || b.String() != "x" {
		t.Fatalf("got %q err=%v", b.String(), err)
	}
}

func TestFormatElapsed(t *testing.T) {
	if got := FormatElapsed(1500 * time.Millisecond); got != "1.500000" {
		t.Fatalf("got %q", got)
	}
	var b bytes.Buffer
	_ = WriteElapsed(&b, 0)
	if b.String() != "0.000000" {
		t.Fatalf("got %q", b.String())
	}
}

func TestWriteReport(t *testing.T) {
	var b bytes.Buffer
	r := api.ReportV1{ElapsedSeconds: 0.25, Input: "DNA2.txt", InputLength: 6, OutputLength: 4, Threads: 1, Lookup: "index"}
	if err := WriteReport(&b, r); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(b.String(), "\n") || strings.Contains(b.String(), "fold_case") {
		t.Fatalf("unexpected encoding %q", b.String())
	}
	var back api.ReportV1
	if err := json.Unmarshal(b.Bytes(), &back); err != nil || back != r {
		t.Fatalf("decode: %+v err=%v", back, err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatal("pipe errors not recognised")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(io.EOF) {
		t.Fatal("false positive")
	}
}
