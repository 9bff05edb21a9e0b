// internal/translate/translate.go
package translate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"codonscan/internal/codon"
)

// Config controls the translation pass.
type Config struct {
	Threads  int         // worker goroutines (>=1)
	Table    codon.Table // lookup strategy; zero value is codon.Strict
	MinShard int         // smallest shard worth a goroutine; <=0 uses DefaultMinShard
}

// DefaultMinShard keeps small inputs on a single goroutine.
const DefaultMinShard = 1 << 16

// cancelEvery is how many windows a worker translates between ctx checks.
const cancelEvery = 1 << 20

// OutputLen is the number of stride-1 windows in a sequence of n symbols.
func OutputLen(n int) int {
	if n < 3 {
		return 0
	}
	return n - 2
}

// Translate maps every overlapping 3-symbol window of seq through the
// standard code. Output length is OutputLen(len(seq)).
func Translate(seq []byte) []byte {
	out := make([]byte, OutputLen(len(seq)))
	Into(out, seq, codon.Strict)
	return out
}

// Into writes dst[i] = t.Code(seq[i], seq[i+1], seq[i+2]) for every i in dst.
// seq must hold at least len(dst)+2 symbols.
func Into(dst, seq []byte, t codon.Table) {
	if len(dst) == 0 {
		return
	}
	seq = seq[:len(dst)+2]
	for i := range dst {
		dst[i] = t.Code(seq[i], seq[i+1], seq[i+2])
	}
}

// Run translates seq, sharding the window range across cfg.Threads workers.
// Shards write disjoint ranges of the pre-sized output; the result is the
// same for every thread count.
func Run(ctx context.Context, seq []byte, cfg Config) ([]byte, error) {
	out := make([]byte, OutputLen(len(seq)))
	if len(out) == 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return out, nil
	}
	shards := Shards(len(out), cfg.Threads, cfg.MinShard)

	g, gctx := errgroup.WithContext(ctx)
	for _, sh := range shards {
		g.Go(func() error {
			for lo := sh.Lo; lo < sh.Hi; lo += cancelEvery {
				if err := gctx.Err(); err != nil {
					return err
				}
				hi := min(lo+cancelEvery, sh.Hi)
				Into(out[lo:hi], seq[lo:hi+2], cfg.Table)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Shard is a half-open range of window indexes.
type Shard struct{ Lo, Hi int }

// Shards splits n windows into at most threads contiguous ranges, none
// smaller than minShard (except when n itself is smaller).
func Shards(n, threads, minShard int) []Shard {
	if n <= 0 {
		return nil
	}
	if threads < 1 {
		threads = 1
	}
	if minShard <= 0 {
		minShard = DefaultMinShard
	}
	if most := n / minShard; threads > most {
		threads = max(most, 1)
	}
	out := make([]Shard, 0, threads)
	step, rem := n/threads, n%threads
	lo := 0
	for i := 0; i < threads; i++ {
		hi := lo + step
		if i < rem {
			hi++
		}
		out = append(out, Shard{Lo: lo, Hi: hi})
		lo = hi
	}
	return out
}
