package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// NewLZ4Writer returns an LZ4 frame writer over w.
func NewLZ4Writer(w io.Writer) (io.WriteCloser, error) {
	zw := lz4.NewWriter(w)
	if err := zw.Apply(
		lz4.CompressionLevelOption(lz4.Fast),
		lz4.ConcurrencyOption(1),
	); err != nil {
		return nil, err
	}

	return zw, nil
}
