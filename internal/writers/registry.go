// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// SequenceWriters maps a --format name to its handler. Register in init()
// blocks next to each format's implementation.
var SequenceWriters = map[string]func(w io.Writer, seq []byte, o SequenceOptions) error{}

// RegisterSequence adds or replaces a format (last wins).
func RegisterSequence(format string, fn func(io.Writer, []byte, SequenceOptions) error) {
	SequenceWriters[format] = fn
}

// SequenceFormats lists the registered format names, sorted.
func SequenceFormats() []string {
	out := make([]string, 0, len(SequenceWriters))
	for k := range SequenceWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// WriteSequence writes seq in o.Format ("" means raw).
func WriteSequence(w io.Writer, seq []byte, o SequenceOptions) error {
	format := o.Format
	if format == "" {
		format = FormatRaw
	}
	fn, ok := SequenceWriters[format]
	if !ok {
		return fmt.Errorf("unknown sequence format %q (no writer registered)", o.Format)
	}
	return fn(w, seq, o)
}
