// internal/codon/table.go
package codon

// Unknown is emitted for any window that is not one of the 64 codons.
const Unknown byte = '0'

// Stop is the amino-acid symbol for the three stop codons.
const Stop byte = '_'

// Size is the number of codons over {A,C,G,T}.
const Size = 64

// Entry pairs a codon with its amino-acid symbol.
type Entry struct {
	Codon     string
	AminoAcid byte
}

// Standard is the standard genetic code, in display order.
var Standard = [Size]Entry{
	{"TTT", 'F'}, {"TTC", 'F'}, {"TTA", 'L'}, {"TTG", 'L'},
	{"CTT", 'L'}, {"CTC", 'L'}, {"CTA", 'L'}, {"CTG", 'L'},
	{"ATT", 'I'}, {"ATC", 'I'}, {"ATA", 'I'}, {"ATG", 'M'},
	{"GTT", 'V'}, {"GTC", 'V'}, {"GTA", 'V'}, {"GTG", 'V'},
	{"TCT", 'S'}, {"TCC", 'S'}, {"TCA", 'S'}, {"TCG", 'S'},
	{"CCT", 'P'}, {"CCC", 'P'}, {"CCA", 'P'}, {"CCG", 'P'},
	{"ACT", 'T'}, {"ACC", 'T'}, {"ACA", 'T'}, {"ACG", 'T'},
	{"GCT", 'A'}, {"GCC", 'A'}, {"GCA", 'A'}, {"GCG", 'A'},
	{"TAT", 'Y'}, {"TAC", 'Y'}, {"TAA", Stop}, {"TAG", Stop},
	{"CAT", 'H'}, {"CAC", 'H'}, {"CAA", 'Q'}, {"CAG", 'Q'},
	{"AAT", 'N'}, {"AAC", 'N'}, {"AAA", 'K'}, {"AAG", 'K'},
	{"GAT", 'D'}, {"GAC", 'D'}, {"GAA", 'E'}, {"GAG", 'E'},
	{"TGT", 'C'}, {"TGC", 'C'}, {"TGA", Stop}, {"TGG", 'W'},
	{"CGT", 'R'}, {"CGC", 'R'}, {"CGA", 'R'}, {"CGG", 'R'},
	{"AGT", 'S'}, {"AGC", 'S'}, {"AGA", 'R'}, {"AGG", 'R'},
	{"GGT", 'G'}, {"GGC", 'G'}, {"GGA", 'G'}, {"GGG", 'G'},
}

/* ------------------------- packed 6-bit index --------------------------- */

// Base codes are 2 bits each; anything outside the alphabet is -1 so that
// OR-ing three codes is negative iff at least one base is unknown.
var (
	strictBase [256]int8
	foldBase   [256]int8
	packed     [Size]byte
	residues   [256]bool
)

func init() {
	for i := range strictBase {
		strictBase[i] = -1
		foldBase[i] = -1
	}
	for i, b := range []byte("ACGT") {
		strictBase[b] = int8(i)
		foldBase[b] = int8(i)
		foldBase[b+'a'-'A'] = int8(i)
	}
	for _, e := range Standard {
		idx := int(strictBase[e.Codon[0]])<<4 | int(strictBase[e.Codon[1]])<<2 | int(strictBase[e.Codon[2]])
		packed[idx] = e.AminoAcid
		residues[e.AminoAcid] = true
	}
}

// IsAminoAcid reports whether b is one of the 21 symbols the table can emit.
// The Unknown sentinel is not.
func IsAminoAcid(b byte) bool { return residues[b] }

// Lookup returns the amino-acid symbol for an exact, upper-case codon,
// or Unknown for anything else (including strings that are not 3 long).
func Lookup(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	return Strict.Code(codon[0], codon[1], codon[2])
}
