// Package driver sequences the input sources of one invocation through the
// encoder into the output sink and keeps the byte totals.
//
// Sources are processed strictly in order, one at a time: each file is
// checked, opened, drained line by line and closed before the next one is
// touched. Standard input is read only when no input file is configured.
package driver

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/arloliu/linerle/access"
	"github.com/arloliu/linerle/encoding"
	"github.com/arloliu/linerle/internal/config"
	"github.com/arloliu/linerle/internal/ctxlog"
	"github.com/arloliu/linerle/internal/diag"
	"github.com/arloliu/linerle/internal/options"
	"github.com/arloliu/linerle/sink"
)

// StdinName names standard input in logs.
const StdinName = "<stdin>"

const readBufferSize = 64 * 1024

// Stats holds the running totals of one invocation. Counters only grow.
type Stats struct {
	// Read is the number of input bytes consumed, line terminators included.
	Read uint64
	// Written is the number of token bytes written, line terminators excluded.
	Written uint64
	// Lines is the number of lines encoded.
	Lines uint64
	// WriteFailures is the number of sink writes that failed.
	WriteFailures uint64
	// Sources is the number of sources fully drained.
	Sources int
	// Digest is the xxHash64 of everything written to the sink, before compression.
	Digest uint64
}

func (s *Stats) add(ls encoding.LineStats) {
	s.Read += ls.Consumed
	s.Written += ls.Emitted
	s.WriteFailures += uint64(ls.Failures) //nolint:gosec
	s.Lines++
}

// Option configures a Driver.
type Option = options.Option[*Driver]

// WithStdin sets the reader used when no input file is configured.
func WithStdin(r io.Reader) Option {
	return options.NoError(func(d *Driver) {
		d.stdin = r
	})
}

// WithStdout sets the writer used when no output file is configured.
func WithStdout(w io.Writer) Option {
	return options.NoError(func(d *Driver) {
		d.stdout = w
	})
}

// WithChecker replaces the accessibility check run before opening any file.
func WithChecker(c access.Checker) Option {
	return options.New(func(d *Driver) error {
		if c == nil {
			return errors.New("driver: nil access checker")
		}
		d.checker = c

		return nil
	})
}

// WithReporter sets the diagnostic channel for write failures and the summary.
func WithReporter(r *diag.Reporter) Option {
	return options.NoError(func(d *Driver) {
		d.reporter = r
	})
}

// WithEncoderOptions adds options applied to the encoder of every run,
// ahead of the driver's own write error handler.
func WithEncoderOptions(opts ...encoding.EncoderOption) Option {
	return options.New(func(d *Driver) error {
		if _, err := encoding.NewEncoder(opts...); err != nil {
			return err
		}
		d.encOpts = append(d.encOpts, opts...)

		return nil
	})
}

// Driver runs one invocation. It is single use and not safe for concurrent use.
type Driver struct {
	cfg      *config.Config
	stdin    io.Reader
	stdout   io.Writer
	checker  access.Checker
	reporter *diag.Reporter
	encOpts  []encoding.EncoderOption
}

// New creates a Driver for cfg. By default it reads os.Stdin, writes
// os.Stdout, checks paths with access.System and reports to os.Stderr.
func New(cfg *config.Config, opts ...Option) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := &Driver{
		cfg:     cfg,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		checker: access.System{},
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}
	if d.reporter == nil {
		d.reporter = diag.New(cfg.ProgramName, os.Stderr)
	}

	return d, nil
}

// Run encodes every source into the sink, prints the summary and closes the sink.
//
// An inaccessible file stops the run immediately with an error matching
// errs.ErrAccess. Output already produced for earlier sources is kept. The
// summary is printed only when every source was processed.
//
// Sink write failures never stop the run: each one is reported on the
// diagnostic channel and counted in Stats.WriteFailures. That includes a
// failure to close the sink after the summary.
//
// Returns:
//   - Stats: Totals accumulated so far, also on error
//   - error: Access, open or read error, or ctx.Err()
func (d *Driver) Run(ctx context.Context) (stats Stats, err error) {
	logger := ctxlog.FromContext(ctx)

	if !d.cfg.UsesStdout() {
		if err := d.checker.Check(d.cfg.OutputPath); err != nil {
			return stats, err
		}
	}

	out, err := sink.Open(d.cfg.OutputPath, d.cfg.Compression, d.stdout)
	if err != nil {
		return stats, err
	}
	closed := false
	defer func() {
		if !closed {
			_ = out.Close()
		}
	}()

	logger.Debug("sink opened", "sink", out.Name(), "compression", d.cfg.Compression.String())

	encOpts := append(slices.Clone(d.encOpts), encoding.WithWriteErrorHandler(func(err error) {
		d.reporter.Errorf("%v", err)
		logger.Debug("sink write failed", "sink", out.Name(), "error", err)
	}))
	enc, err := encoding.NewEncoder(encOpts...)
	if err != nil {
		return stats, err
	}

	if d.cfg.UsesStdin() {
		if err := d.encodeSource(ctx, logger, StdinName, d.stdin, enc, out, &stats); err != nil {
			return stats, err
		}
	} else {
		for _, path := range d.cfg.InputPaths {
			if err := d.encodeFile(ctx, logger, path, enc, out, &stats); err != nil {
				return stats, err
			}
		}
	}

	stats.Digest = out.Digest()
	d.reporter.Summary(stats.Read, stats.Written)

	closed = true
	if err := out.Close(); err != nil {
		stats.WriteFailures++
		d.reporter.Errorf("%v", err)
		logger.Debug("sink close failed", "sink", out.Name(), "error", err)
	}

	logger.Debug("run finished",
		"sources", stats.Sources,
		"lines", stats.Lines,
		"read", stats.Read,
		"written", stats.Written,
		"write_failures", stats.WriteFailures,
		"digest", fmt.Sprintf("%016x", stats.Digest),
	)

	return stats, nil
}

// encodeFile checks, opens, drains and closes one input file.
func (d *Driver) encodeFile(ctx context.Context, logger *slog.Logger, path string, enc *encoding.Encoder, out io.Writer, stats *Stats) error {
	if err := d.checker.Check(path); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return d.encodeSource(ctx, logger, path, f, enc, out, stats)
}

// encodeSource encodes r line by line until end of input.
func (d *Driver) encodeSource(ctx context.Context, logger *slog.Logger, name string, r io.Reader, enc *encoding.Encoder, out io.Writer, stats *Stats) error {
	logger.Debug("source opened", "source", name)

	br := bufio.NewReaderSize(r, readBufferSize)
	lines := stats.Lines
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := br.ReadBytes(enc.Terminator())
		if len(line) > 0 {
			stats.add(enc.EncodeLine(line, out))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	}

	stats.Sources++
	logger.Debug("source drained", "source", name, "lines", stats.Lines-lines)

	return nil
}
