package clibase

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestRegisterAndSetFlags(t *testing.T) {
	fs := flag.NewFlagSet("x", flag.ContinueOnError)
	var c Common
	Register(fs, &c, "", "output path")
	if err := fs.Parse([]string{"-q", "--out", "a.txt"}); err != nil {
		t.Fatal(err)
	}
	if !c.Quiet || c.Out != "a.txt" {
		t.Fatalf("parsed %+v", c)
	}
	set := SetFlags(fs)
	if !set["q"] || !set["out"] || set["verbose"] {
		t.Fatalf("set flags %v", set)
	}
	if err := Validate(&c); err != nil {
		t.Fatal(err)
	}
	c.Verbose = true
	if err := Validate(&c); err == nil {
		t.Fatal("quiet+verbose should conflict")
	}
}

func TestUsageCommon(t *testing.T) {
	fs := flag.NewFlagSet("tool", flag.ContinueOnError)
	var c Common
	Register(fs, &c, "", "")
	var b bytes.Buffer
	fs.SetOutput(&b)
	UsageCommon(fs, "tool", "does things", func(out io.Writer, def func(string) string) {
		PrintExamples(out, "tool FILE")
	})
	fs.Usage()
	s := b.String()
	for _, want := range []string{"tool – does things", "Version:", "Examples:", "  tool FILE", "--quiet"} {
		if !strings.Contains(s, want) {
			t.Fatalf("usage missing %q:\n%s", want, s)
		}
	}
}
