// Package sink opens the single output destination shared by all sources of
// one invocation.
//
// Bytes written to a Sink flow through three stages:
//
//	caller -> xxHash64 digest -> stream compressor -> file or stdout
//
// The digest covers the encoded text before compression, so it is stable
// across compression types.
//
// Uncompressed sinks do not buffer: every Write reaches the destination in
// one call and its error is returned to the caller. Compressed sinks write
// whenever the compressor emits a block, and at Close.
package sink

import (
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/arloliu/linerle/compress"
	"github.com/arloliu/linerle/errs"
	"github.com/arloliu/linerle/format"
	ihash "github.com/arloliu/linerle/internal/hash"
)

// StdoutName is the Name of a sink writing to standard output.
const StdoutName = "<stdout>"

// Sink is an append-only output stream. It is not safe for concurrent use.
type Sink struct {
	name   string
	file   *os.File // nil when writing to stdout
	cw     io.WriteCloser
	digest hash.Hash64
	closed bool
}

var _ io.WriteCloser = (*Sink)(nil)

// Open resolves the sink for path.
//
// An empty path selects stdout. Otherwise the file is opened for writing
// and truncated. Callers are expected to have run the accessibility check
// on path already.
//
// Parameters:
//   - path: Output file, or "" for stdout
//   - ct: Stream compression applied to everything written
//   - stdout: Destination used when path is empty
//
// Returns:
//   - *Sink: Open sink, to be closed by the caller
//   - error: ErrTerminalOutput, an open error, or a compressor setup error
func Open(path string, ct format.CompressionType, stdout io.Writer) (*Sink, error) {
	s := &Sink{digest: ihash.NewDigest()}

	var dst io.Writer
	if path == "" {
		if ct != format.CompressionNone && isTerminal(stdout) {
			return nil, errs.ErrTerminalOutput
		}
		s.name = StdoutName
		dst = stdout
	} else {
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, err
		}
		s.name = path
		s.file = f
		dst = f
	}

	cw, err := compress.NewWriter(ct, dst)
	if err != nil {
		if s.file != nil {
			_ = s.file.Close()
		}

		return nil, err
	}
	s.cw = cw

	return s, nil
}

// Name returns the output path, or StdoutName.
func (s *Sink) Name() string {
	return s.name
}

// Digest returns the xxHash64 of all bytes accepted so far, before compression.
func (s *Sink) Digest() uint64 {
	return s.digest.Sum64()
}

// Write writes p through the compressor. Only the accepted prefix of p is
// added to the digest.
func (s *Sink) Write(p []byte) (int, error) {
	if s.closed {
		return 0, os.ErrClosed
	}

	n, err := s.cw.Write(p)
	if n > 0 {
		_, _ = s.digest.Write(p[:n])
	}

	return n, err
}

// Close finalizes the compressed stream and closes the file. Standard output
// is left open.
func (s *Sink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errList []error
	if err := s.cw.Close(); err != nil {
		errList = append(errList, err)
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errList = append(errList, err)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return fmt.Errorf("%w: closing %s: %w", errs.ErrWrite, s.name, err)
	}

	return nil
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec
}
