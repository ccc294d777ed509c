// Package config holds the runtime configuration of one linerle invocation:
// where encoded output goes, which sources are read and how diagnostics are
// logged. A Config is built once at startup and passed by pointer.
package config

import (
	"fmt"
	"strings"

	"github.com/arloliu/linerle/errs"
	"github.com/arloliu/linerle/format"
)

// DefaultProgramName is used in diagnostics when the invocation name is unknown.
const DefaultProgramName = "linerle"

// LogFormat selects the slog handler.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // Human readable key=value lines (default).
	LogFormatJSON LogFormat = "json" // One JSON object per record.
)

// LogLevel is the minimum level of emitted log records.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn" // Default. Keeps stderr to diagnostics and the summary.
	LogLevelError LogLevel = "error"
)

// Config holds all runtime settings.
type Config struct {
	// ProgramName prefixes every diagnostic line, e.g. "[linerle] ERROR: ...".
	ProgramName string

	// OutputPath is the sink file. Empty means standard output.
	OutputPath string
	// InputPaths are read in order. Empty means standard input.
	InputPaths []string

	// Compression wraps the sink in a stream compressor. Default: none.
	Compression format.CompressionType

	LogLevel  LogLevel
	LogFormat LogFormat
}

// DefaultConfig returns a Config that reads stdin, writes stdout uncompressed,
// and logs warnings and above as text.
func DefaultConfig(programName string) Config {
	if programName == "" {
		programName = DefaultProgramName
	}

	return Config{
		ProgramName: programName,
		Compression: format.CompressionNone,
		LogLevel:    LogLevelWarn,
		LogFormat:   LogFormatText,
	}
}

// UsesStdin reports whether standard input is the only source.
func (c *Config) UsesStdin() bool {
	return len(c.InputPaths) == 0
}

// UsesStdout reports whether the sink is standard output.
func (c *Config) UsesStdout() bool {
	return c.OutputPath == ""
}

// Validate checks enum fields and normalizes log settings to lower case.
func (c *Config) Validate() error {
	switch c.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, c.Compression)
	}

	c.LogLevel = LogLevel(strings.ToLower(string(c.LogLevel)))
	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: %q (must be debug, info, warn or error)", errs.ErrInvalidLogLevel, c.LogLevel)
	}

	c.LogFormat = LogFormat(strings.ToLower(string(c.LogFormat)))
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q (must be text or json)", errs.ErrInvalidLogFormat, c.LogFormat)
	}

	for i, p := range c.InputPaths {
		if p == "" {
			return fmt.Errorf("%w: input path %d is empty", errs.ErrUsage, i+1)
		}
	}

	return nil
}
