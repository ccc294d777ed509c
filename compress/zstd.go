package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// NewZstdWriter returns a Zstandard stream writer over w.
//
// The encoder runs on the calling goroutine only, matching the single
// threaded encode loop that feeds it.
func NewZstdWriter(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, err
	}

	return enc, nil
}
