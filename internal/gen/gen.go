// Package gen writes random nucleotide sequences for benchmarking.
package gen

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math/rand/v2"
)

// Options control Generate.
type Options struct {
	Seed    uint64  // PCG seed
	NRate   float64 // probability of emitting 'N' instead of a base, in [0,1]
	Newline bool    // terminate the line
}

const block = 64 << 10

// Generate writes n random symbols from {A,C,G,T} (plus N at NRate) as one line.
// The same Seed always yields the same sequence.
func Generate(ctx context.Context, w io.Writer, n int, o Options) error {
	if n < 0 {
		return errors.New("length must be ≥ 0")
	}
	if o.NRate < 0 || o.NRate > 1 {
		return errors.New("n-rate must be within [0,1]")
	}
	rng := rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
	bw := bufio.NewWriterSize(w, block)
	buf := make([]byte, block)

	for left := n; left > 0; {
		if err := ctx.Err(); err != nil {
			return err
		}
		k := min(left, block)
		chunk := buf[:k]
		fill(rng, chunk, o.NRate)
		if _, err := bw.Write(chunk); err != nil {
			return err
		}
		left -= k
	}
	if o.Newline {
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// fill draws 32 bases per Uint64 when no N injection is needed.
func fill(rng *rand.Rand, dst []byte, nRate float64) {
	const bases = "ACGT"
	if nRate == 0 {
		for i := 0; i < len(dst); {
			r := rng.Uint64()
			for j := 0; j < 32 && i < len(dst); j, i = j+1, i+1 {
				dst[i] = bases[r&3]
				r >>= 2
			}
		}
		return
	}
	for i := range dst {
		if rng.Float64() < nRate {
			dst[i] = 'N'
			continue
		}
		dst[i] = bases[rng.IntN(4)]
	}
}
