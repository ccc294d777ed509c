package encoding

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arloliu/linerle/errs"
	"github.com/arloliu/linerle/internal/options"
	"github.com/arloliu/linerle/internal/pool"
)

// LineTerminator is the default byte ending every line read from a source
// and every encoded line written to the sink.
const LineTerminator = '\n'

// Run is a maximal span of one repeated byte within a line.
type Run struct {
	Char  byte
	Count int
}

// Token returns the serialized form of the run: the byte followed by its decimal count.
func (r Run) Token() string {
	return string([]byte{r.Char}) + strconv.Itoa(r.Count)
}

// Runs partitions content into maximal runs, in order.
//
// This is the same partition EncodeLine scans. Every run but the last is
// what EncodeLine writes for the line, so callers can use Runs to recover
// the dropped run or to predict the output of a line.
//
// content should not include the line terminator. An empty content yields no runs.
func Runs(content []byte) []Run {
	var runs []Run
	last, ok := scanRuns(content, func(r Run) {
		runs = append(runs, r)
	})
	if ok {
		runs = append(runs, last)
	}

	return runs
}

// scanRuns calls closed for every run that is ended by a different byte and
// returns the run still open at the end of content. ok is false for an
// empty content.
func scanRuns(content []byte, closed func(Run)) (last Run, ok bool) {
	if len(content) == 0 {
		return Run{}, false
	}

	cur := Run{Char: content[0], Count: 1}
	for _, c := range content[1:] {
		if c == cur.Char {
			cur.Count++
			continue
		}
		closed(cur)
		cur = Run{Char: c, Count: 1}
	}

	return cur, true
}

// LineStats is the byte accounting for one encoded line.
type LineStats struct {
	// Consumed is the full length of the input line, terminator included.
	Consumed uint64
	// Emitted is the number of token bytes successfully written. The line
	// terminator written after the tokens is not counted.
	Emitted uint64
	// Failures is the number of writes to the sink that failed.
	Failures int
}

// EncoderConfig holds the settings applied by EncoderOption values.
type EncoderConfig struct {
	onWriteError func(err error)
	terminator   byte
}

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithWriteErrorHandler sets the callback invoked for every failed write to the sink.
// The error passed to fn wraps errs.ErrWrite. A nil fn restores the default no-op handler.
func WithWriteErrorHandler(fn func(err error)) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.onWriteError = fn
	})
}

// WithTerminator sets the byte that ends a line, both the one stripped from
// the input and the one written after each encoded line. The default is
// LineTerminator.
//
// A decimal digit is rejected with errs.ErrInvalidTerminator: it would be
// indistinguishable from a run count.
func WithTerminator(b byte) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if b >= '0' && b <= '9' {
			return fmt.Errorf("%w: %q", errs.ErrInvalidTerminator, b)
		}
		c.terminator = b

		return nil
	})
}

// Encoder run-length encodes lines onto a sink.
//
// For every line it writes one token per run except the last run of the
// line, then a single line terminator. Writes that fail are reported and
// skipped; encoding of the line continues.
//
// Note: The Encoder is NOT thread-safe. It may be reused for any number of lines.
type Encoder struct {
	EncoderConfig
}

// NewEncoder creates a new Encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{EncoderConfig: EncoderConfig{terminator: LineTerminator}}
	if err := options.Apply(&e.EncoderConfig, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Terminator returns the line terminator the encoder strips and writes.
func (e *Encoder) Terminator() byte {
	return e.terminator
}

// EncodeLine encodes a single line and writes the result to w.
//
// line may be empty and may or may not end with the terminator. A trailing
// terminator counts toward Consumed but never forms a run.
//
// Parameters:
//   - line: One input line, owned by the caller and not retained
//   - w: Output sink
//
// Returns:
//   - LineStats: Consumed and emitted byte counts and the number of failed writes
func (e *Encoder) EncodeLine(line []byte, w io.Writer) LineStats {
	stats := LineStats{Consumed: uint64(len(line))}

	content := line
	if n := len(content); n > 0 && content[n-1] == e.terminator {
		content = content[:n-1]
	}

	buf := pool.GetTokenBuffer()
	defer pool.PutTokenBuffer(buf)

	// The open run returned by scanRuns is never written: each line's last
	// run is dropped from the output.
	_, _ = scanRuns(content, func(r Run) {
		buf.Reset()
		buf.AppendByte(r.Char)
		buf.AppendUint(uint64(r.Count)) //nolint:gosec
		if e.write(buf, w, &stats) {
			stats.Emitted += uint64(buf.Len())
		}
	})

	buf.Reset()
	buf.AppendByte(e.terminator)
	e.write(buf, w, &stats)

	return stats
}

// write sends buf to w in one call and reports whether it fully succeeded.
func (e *Encoder) write(buf *pool.ByteBuffer, w io.Writer, stats *LineStats) bool {
	if _, err := buf.WriteTo(w); err != nil {
		stats.Failures++
		if e.onWriteError != nil {
			e.onWriteError(fmt.Errorf("%w: %w", errs.ErrWrite, err))
		}

		return false
	}

	return true
}
