package compress

import (
	"fmt"
	"io"

	"github.com/arloliu/linerle/errs"
	"github.com/arloliu/linerle/format"
)

// WriterFactory wraps an output stream in a compressing writer.
//
// Close on the returned writer flushes all buffered data and finalizes the
// stream, but never closes the wrapped writer.
type WriterFactory func(w io.Writer) (io.WriteCloser, error)

var builtinWriters = map[format.CompressionType]WriterFactory{
	format.CompressionNone: NewNoOpWriter,
	format.CompressionZstd: NewZstdWriter,
	format.CompressionS2:   NewS2Writer,
	format.CompressionLZ4:  NewLZ4Writer,
}

// NewWriter returns a compressing writer over w for the given compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - w: Destination stream, left open by Close
//
// Returns:
//   - io.WriteCloser: Writer that must be closed to flush the stream
//   - error: ErrInvalidCompression for unknown types, or a codec setup error
func NewWriter(compressionType format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	factory, ok := builtinWriters[compressionType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}

	cw, err := factory(w)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s writer: %w", compressionType, err)
	}

	return cw, nil
}
