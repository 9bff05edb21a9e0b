package cmdutil

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestLogLevels(t *testing.T) {
	color.NoColor = true
	var b bytes.Buffer

	Warnf(&b, true, "hidden %d", 1)
	Infof(&b, false, "hidden %d", 2)
	if b.Len() != 0 {
		t.Fatalf("quiet/verbose gates leaked: %q", b.String())
	}

	Warnf(&b, false, "input truncated at %d", 10)
	Errorf(&b, "open %s", "x.txt")
	Infof(&b, true, "threads=%d", 4)
	want := "WARN: input truncated at 10\nERROR: open x.txt\nINFO: threads=4\n"
	if b.String() != want {
		t.Fatalf("got %q\nwant %q", b.String(), want)
	}
}
