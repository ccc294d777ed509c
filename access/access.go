// Package access answers whether a path may be opened by linerle: it must
// exist and be both readable and writable by the current process.
//
// The check runs before any file is opened, for the output file and for
// every input file alike.
package access

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/arloliu/linerle/errs"
)

// Checker validates a path before it is opened.
type Checker interface {
	// Check returns nil if path exists and is readable and writable.
	// Otherwise it returns an *Error.
	Check(path string) error
}

// CheckerFunc adapts a function to the Checker interface.
type CheckerFunc func(path string) error

// Check calls f(path).
func (f CheckerFunc) Check(path string) error {
	return f(path)
}

// Mode is the kind of access that failed.
type Mode string

const (
	ModeExist Mode = "exist"
	ModeRead  Mode = "read"
	ModeWrite Mode = "write"
)

// Error reports a failed accessibility check.
//
// The message reads "Opening file: <path>. <description>", where the system
// error description starts with a capital letter ("No such file or
// directory"). Error matches errs.ErrAccess and the underlying system error under errors.Is.
type Error struct {
	Path string
	Mode Mode
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("Opening file: %s. %s", e.Path, capitalize(e.Err))
}

func capitalize(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}

	return string(unicode.ToUpper(r)) + msg[size:]
}

func (e *Error) Unwrap() []error {
	return []error{errs.ErrAccess, e.Err}
}

// System checks paths against the file system permissions of the running process.
type System struct{}

var _ Checker = System{}
