// internal/writers/sequence.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// Sequence output formats.
const (
	FormatRaw   = "raw"
	FormatFASTA = "fasta"
)

// DefaultWidth is the FASTA line width.
const DefaultWidth = 60

// SequenceOptions control WriteSequence.
type SequenceOptions struct {
	Format string // raw | fasta
	Width  int    // FASTA wrap width; 0 = one line
	Header string // FASTA defline without '>'
}

func init() {
	RegisterSequence(FormatRaw, writeRaw)
	RegisterSequence(FormatFASTA, func(w io.Writer, seq []byte, o SequenceOptions) error {
		return writeFASTA(w, seq, o.Header, o.Width)
	})
}

// writeRaw writes seq as one line.
func writeRaw(w io.Writer, seq []byte, _ SequenceOptions) error {
	if _, err := w.Write(seq); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func writeFASTA(w io.Writer, seq []byte, header string, width int) error {
	header = strings.TrimPrefix(strings.TrimSpace(header), ">")
	if header == "" {
		header = "translated"
	}
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	if width <= 0 {
		width = len(seq)
	}
	for off := 0; off < len(seq); off += width {
		end := min(off+width, len(seq))
		if _, err := w.Write(seq[off:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// nopCloser keeps stdout open when the caller closes the output.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// bufferedFile flushes the buffer, then the gzip stream, then the file.
type bufferedFile struct {
	*bufio.Writer
	zw *pgzip.Writer
	fh *os.File
}

func (b *bufferedFile) Close() error {
	err := b.Writer.Flush()
	if b.zw != nil {
		if zerr := b.zw.Close(); zerr != nil && err == nil {
			err = zerr
		}
	}
	if b.fh != nil {
		if cerr := b.fh.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Create opens path for writing ("-" = stdout). A ".gz" suffix compresses
// with parallel gzip. Close must be called to flush.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{stdout}, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	out := &bufferedFile{fh: fh}
	if strings.HasSuffix(path, ".gz") {
		zw, zerr := pgzip.NewWriterLevel(fh, pgzip.BestSpeed)
		if zerr != nil {
			_ = fh.Close()
			return nil, zerr
		}
		out.zw = zw
		out.Writer = bufio.NewWriterSize(zw, 1<<20)
		return out, nil
	}
	out.Writer = bufio.NewWriterSize(fh, 1<<20)
	return out, nil
}
