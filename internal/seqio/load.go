// internal/seqio/load.go
package seqio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultMaxLen is the symbol cap applied when Options.MaxLen is unset.
const DefaultMaxLen = 100_000_000

// ErrInputTooLarge is returned under Options.Strict when the first line is
// longer than Options.MaxLen.
var ErrInputTooLarge = errors.New("input exceeds maximum length")

// Options control Load.
type Options struct {
	MaxLen int  // symbol cap; 0 = unlimited
	Strict bool // fail with ErrInputTooLarge instead of truncating
}

// Sequence is a loaded input line.
type Sequence struct {
	Source    string
	Data      []byte
	Truncated bool // input was cut at MaxLen
}

// Len is the number of symbols loaded.
func (s Sequence) Len() int { return len(s.Data) }

// Load reads the first line of path ("-" = stdin, gzip detected).
// A missing file yields an error wrapping fs.ErrNotExist.
func Load(ctx context.Context, path string, opts Options) (Sequence, error) {
	rc, size, err := openReader(path)
	if err != nil {
		return Sequence{}, fmt.Errorf("input: %w", err)
	}
	defer rc.Close()

	data, truncated, err := readFirstLine(ctx, rc, opts.MaxLen, size)
	if err != nil {
		return Sequence{}, fmt.Errorf("read %s: %w", path, err)
	}
	if truncated && opts.Strict {
		return Sequence{}, fmt.Errorf("%s: %w (%d symbols)", path, ErrInputTooLarge, opts.MaxLen)
	}
	return Sequence{Source: path, Data: data, Truncated: truncated}, nil
}

// ReadFirstLine is Load without the file handling.
func ReadFirstLine(ctx context.Context, r io.Reader, maxLen int) ([]byte, bool, error) {
	return readFirstLine(ctx, r, maxLen, -1)
}

func readFirstLine(ctx context.Context, r io.Reader, maxLen int, sizeHint int64) ([]byte, bool, error) {
	if maxLen < 0 {
		maxLen = 0
	}
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReaderSize(r, 1<<20)
	}

	capHint := 1 << 16
	if sizeHint > 0 {
		capHint = int(sizeHint)
	}
	if maxLen > 0 && capHint > maxLen {
		capHint = maxLen
	}
	buf := make([]byte, 0, capHint)

	for {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		default:
		}
		chunk, err := br.ReadSlice('\n')
		eol := len(chunk) > 0 && chunk[len(chunk)-1] == '\n'
		if eol {
			chunk = chunk[:len(chunk)-1]
			if n := len(chunk); n > 0 && chunk[n-1] == '\r' {
				chunk = chunk[:n-1]
			}
		}
		if maxLen > 0 && len(buf)+len(chunk) > maxLen {
			room := maxLen - len(buf)
			rest := chunk[room:]
			buf = append(buf, chunk[:room]...)
			// A lone CR left over from a CRLF split across reads is not data.
			if len(rest) == 1 && rest[0] == '\r' && !eol {
				if next, perr := br.Peek(1); (perr == io.EOF && len(next) == 0) || (len(next) == 1 && next[0] == '\n') {
					return buf, false, nil
				}
			}
			return buf, true, nil
		}
		buf = append(buf, chunk...)

		switch {
		case eol:
			return trimCR(buf), false, nil
		case err == nil, errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			return trimCR(buf), false, nil
		default:
			return nil, false, err
		}
	}
}

// trimCR drops a trailing CR that arrived in a separate read from its LF.
func trimCR(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\r' {
		return b[:n-1]
	}
	return b
}
