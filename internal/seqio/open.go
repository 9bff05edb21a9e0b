// internal/seqio/open.go
package seqio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader returns a reader over path ("-" = stdin), transparently
// decompressing gzip. sizeHint is the on-disk size for plain files, else -1.
func openReader(path string) (rc io.ReadCloser, sizeHint int64, err error) {
	var fh *os.File
	closeFile := true
	if path == "-" {
		fh = os.Stdin
		closeFile = false
	} else {
		fh, err = os.Open(path)
		if err != nil {
			return nil, -1, err
		}
	}
	sizeHint = -1
	if st, serr := fh.Stat(); serr == nil && st.Mode().IsRegular() {
		sizeHint = st.Size()
	}

	br := bufio.NewReaderSize(fh, 1<<20)
	// Detect gzip by magic number (1F 8B) or by .gz suffix.
	sig, _ := br.Peek(2)
	var closers []io.Closer
	if closeFile {
		closers = append(closers, fh)
	}
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		zr, zerr := pgzip.NewReader(br)
		if zerr != nil {
			if closeFile {
				_ = fh.Close()
			}
			return nil, -1, zerr
		}
		return &multiReadCloser{Reader: zr, closers: append([]io.Closer{zr}, closers...)}, -1, nil
	}
	return &multiReadCloser{Reader: br, closers: closers}, sizeHint, nil
}
