// Package pretty renders run statistics for humans.
package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/gedex/inflector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"codonscan/internal/translate"
)

// used for adding commas every 3 digits
var printer = message.NewPrinter(language.English)

// Count formats n with thousands separators.
func Count(n int) string { return printer.Sprintf("%d", n) }

// Noun returns "1 window" / "1,234 windows".
func Noun(n int, singular string) string {
	word := singular
	if n != 1 {
		word = inflector.Pluralize(singular)
	}
	return Count(n) + " " + word
}

// Options control the composition table.
type Options struct {
	Columns int    // residues per row; <=0 uses DefaultOptions.Columns
	Sep     string // between columns
}

// DefaultOptions keeps the table narrow enough for an 80-column terminal.
var DefaultOptions = Options{Columns: 4, Sep: "  "}

// Composition writes one "X  count  pct%" cell per residue, Columns per row.
func Composition(w io.Writer, st *translate.Stats, o Options) error {
	if o.Columns <= 0 {
		o.Columns = DefaultOptions.Columns
	}
	if o.Sep == "" {
		o.Sep = DefaultOptions.Sep
	}
	res := st.Residues()
	if st.Unknown > 0 {
		res = append(res, translate.Residue{Symbol: '0', Count: st.Unknown})
	}
	var b strings.Builder
	for i, r := range res {
		pct := 0.0
		if st.Windows > 0 {
			pct = 100 * float64(r.Count) / float64(st.Windows)
		}
		b.WriteString(fmt.Sprintf("%c %12s %5.1f%%", r.Symbol, Count(r.Count), pct))
		if (i+1)%o.Columns == 0 || i == len(res)-1 {
			b.WriteByte('\n')
		} else {
			b.WriteString(o.Sep)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
