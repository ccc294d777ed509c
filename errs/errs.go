// Package errs defines the sentinel errors shared across linerle packages.
//
// Callers wrap these with fmt.Errorf("%w: ...") to add context and test for
// them with errors.Is.
package errs

import "errors"

// Usage errors. These are detected before any file is opened.
var (
	ErrUsage               = errors.New("usage error")
	ErrDuplicateOutputFlag = errors.New("flag -o can only appear once")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrInvalidLogLevel     = errors.New("invalid log level")
	ErrInvalidLogFormat    = errors.New("invalid log format")
	ErrInvalidTerminator   = errors.New("line terminator must not be a decimal digit")
)

// I/O errors.
var (
	// ErrAccess reports a path that is missing or lacks read or write permission.
	ErrAccess = errors.New("file not accessible")
	// ErrWrite reports a failed or short write to the output sink.
	ErrWrite = errors.New("error while writing to file")
	// ErrTerminalOutput reports compressed output directed at a terminal.
	ErrTerminalOutput = errors.New("refusing to write compressed output to a terminal")
)
