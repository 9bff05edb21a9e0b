// internal/translate/stats.go
package translate

import "codonscan/internal/codon"

// Stats summarises a translated sequence.
type Stats struct {
	Windows     int
	Unknown     int // codon.Unknown sentinels
	Stops       int
	Composition [256]int
}

// Count tallies out in one pass.
func Count(out []byte) Stats {
	s := Stats{Windows: len(out)}
	for _, b := range out {
		s.Composition[b]++
	}
	s.Unknown = s.Composition[codon.Unknown]
	s.Stops = s.Composition[codon.Stop]
	return s
}

// Residues returns the emitted amino-acid symbols in table order with their
// counts, skipping symbols that never occur.
func (s *Stats) Residues() []Residue {
	var out []Residue
	seen := [256]bool{}
	for _, e := range codon.Standard {
		aa := e.AminoAcid
		if seen[aa] || s.Composition[aa] == 0 {
			continue
		}
		seen[aa] = true
		out = append(out, Residue{Symbol: aa, Count: s.Composition[aa]})
	}
	return out
}

// Residue is one row of a composition table.
type Residue struct {
	Symbol byte
	Count  int
}
