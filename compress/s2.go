package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// NewS2Writer returns an S2 stream writer over w.
func NewS2Writer(w io.Writer) (io.WriteCloser, error) {
	return s2.NewWriter(w, s2.WriterConcurrency(1)), nil
}
