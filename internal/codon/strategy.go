// internal/codon/strategy.go
package codon

import "fmt"

// Strategy names accepted by ParseTable.
const (
	LookupIndex  = "index"
	LookupLinear = "linear"
)

// Table is a read-only view of the standard code with a lookup strategy.
// The zero value behaves like Strict.
type Table struct {
	base   *[256]int8
	linear bool
	fold   bool
}

var (
	// Strict accepts upper-case ACGT only.
	Strict = Table{base: &strictBase}
	// Folded also accepts lower-case acgt.
	Folded = Table{base: &foldBase, fold: true}
	// Linear scans all 64 entries per window; output matches Strict.
	Linear = Table{base: &strictBase, linear: true}
)

// ParseTable resolves a --lookup value and --fold-case into a Table.
func ParseTable(name string, foldCase bool) (Table, error) {
	switch name {
	case "", LookupIndex:
		if foldCase {
			return Folded, nil
		}
		return Strict, nil
	case LookupLinear:
		return Table{base: &strictBase, linear: true, fold: foldCase}, nil
	default:
		return Table{}, fmt.Errorf("unknown lookup strategy %q (want %s or %s)", name, LookupIndex, LookupLinear)
	}
}

// Name reports the strategy, as accepted by ParseTable.
func (t Table) Name() string {
	if t.linear {
		return LookupLinear
	}
	return LookupIndex
}

// FoldCase reports whether lower-case bases are accepted.
func (t Table) FoldCase() bool { return t.fold }

// Code translates the window (a, b, c).
func (t Table) Code(a, b, c byte) byte {
	if t.linear {
		return scan(a, b, c, t.fold)
	}
	base := t.base
	if base == nil {
		base = &strictBase
	}
	x, y, z := base[a], base[b], base[c]
	if x|y|z < 0 {
		return Unknown
	}
	return packed[int(x)<<4|int(y)<<2|int(z)]
}

// scan is the O(64) comparison loop used as a baseline.
func scan(a, b, c byte, fold bool) byte {
	if fold {
		a, b, c = upper(a), upper(b), upper(c)
	}
	for i := range Standard {
		e := &Standard[i]
		if e.Codon[0] == a && e.Codon[1] == b && e.Codon[2] == c {
			return e.AminoAcid
		}
	}
	return Unknown
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
