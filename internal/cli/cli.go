// Package cli turns command-line arguments into a config.Config in a
// single structured pass, and runs one invocation end to end.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arloliu/linerle/driver"
	"github.com/arloliu/linerle/errs"
	"github.com/arloliu/linerle/format"
	"github.com/arloliu/linerle/internal/config"
	"github.com/arloliu/linerle/internal/ctxlog"
	"github.com/arloliu/linerle/internal/diag"
	"github.com/arloliu/linerle/internal/logging"
)

// Process exit statuses.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// UsageError reports a malformed command line. It matches errs.ErrUsage
// and the specific cause under errors.Is.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() []error {
	return []error{errs.ErrUsage, e.Err}
}

// Streams are the standard streams of the process.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ProgramName derives the diagnostic prefix from argv[0].
func ProgramName(argv0 string) string {
	if argv0 == "" {
		return config.DefaultProgramName
	}

	return filepath.Base(argv0)
}

// Parse parses args (without the program name) into a validated Config.
//
// It returns a nil Config and a nil error when help was requested; help
// text is written to helpOut. Every parse failure is a *UsageError.
func Parse(programName string, args []string, helpOut io.Writer) (*config.Config, error) {
	cfg := config.DefaultConfig(programName)

	output := &outputFlag{}
	var (
		compression string
		logLevel    string
		logFormat   string
		parsed      bool
	)

	cmd := &cobra.Command{
		Use:           programName + " [-o outputFile] [inputFile...]",
		Short:         "Run-length encode text lines",
		Long:          "Reads lines from the input files, or standard input when none are given,\nand writes each line's runs as <char><count> tokens followed by a newline.\nThe last run of every line is not written.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, positional []string) error {
			parsed = true
			cfg.InputPaths = positional

			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(helpOut)
	cmd.SetErr(io.Discard)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if output.duplicate {
			return &UsageError{Err: errs.ErrDuplicateOutputFlag}
		}

		return &UsageError{Err: err}
	})

	flags := cmd.Flags()
	flags.VarP(output, "output", "o", "write encoded output to this file instead of standard output (may appear once)")
	flags.StringVar(&compression, "compress", "none", "compress the output stream: none, zstd, s2 or lz4")
	flags.StringVar(&logLevel, "log-level", string(config.LogLevelWarn), "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", string(config.LogFormatText), "log format: text or json")

	if err := cmd.Execute(); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			return nil, uerr
		}

		return nil, &UsageError{Err: err}
	}
	if !parsed {
		return nil, nil
	}

	ct, err := format.ParseCompressionType(compression)
	if err != nil {
		return nil, &UsageError{Err: fmt.Errorf("%w: %q", err, compression)}
	}

	cfg.OutputPath = output.path
	cfg.Compression = ct
	cfg.LogLevel = config.LogLevel(logLevel)
	cfg.LogFormat = config.LogFormat(logFormat)

	if err := cfg.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}

	return &cfg, nil
}

// Run executes one invocation and returns the process exit status.
//
// args includes the program name, as in os.Args.
func Run(ctx context.Context, args []string, streams Streams) int {
	argv0 := ""
	if len(args) > 0 {
		argv0, args = args[0], args[1:]
	}
	reporter := diag.New(ProgramName(argv0), streams.Err)

	cfg, err := Parse(reporter.Program(), args, streams.Out)
	if err != nil {
		reporter.Errorf("%v", err)
		reporter.Usage()

		return ExitFailure
	}
	if cfg == nil {
		return ExitSuccess
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, streams.Err)
	ctx = ctxlog.WithLogger(ctx, logger)

	d, err := driver.New(cfg,
		driver.WithStdin(streams.In),
		driver.WithStdout(streams.Out),
		driver.WithReporter(reporter),
	)
	if err != nil {
		reporter.Errorf("%v", err)
		return ExitFailure
	}

	if _, err := d.Run(ctx); err != nil {
		reporter.Errorf("%v", err)
		return ExitFailure
	}

	return ExitSuccess
}
