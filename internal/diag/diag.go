// Package diag writes the user-facing diagnostic channel: fatal error lines,
// the usage line, per-write failure notices and the final summary.
package diag

import (
	"fmt"
	"io"
	"sync"
)

// Reporter prefixes every error line with the program name it was built with.
type Reporter struct {
	mu      sync.Mutex
	program string
	w       io.Writer
}

// New creates a Reporter writing to w, normally stderr.
func New(program string, w io.Writer) *Reporter {
	return &Reporter{program: program, w: w}
}

// Program returns the program name used as the diagnostic prefix.
func (r *Reporter) Program() string {
	return r.program
}

// Errorf writes one "[program] ERROR: ..." line.
func (r *Reporter) Errorf(format string, args ...any) {
	r.printf("[%s] ERROR: %s\n", r.program, fmt.Sprintf(format, args...))
}

// Usage writes the one-line usage message.
func (r *Reporter) Usage() {
	r.printf("USAGE: %s [-o outputFile] [inputFile]\n", r.program)
}

// Summary writes the two-line byte count summary.
func (r *Reporter) Summary(read, written uint64) {
	r.printf("READ: %d characters\nWritten: %d characters\n", read, written)
}

func (r *Reporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintf(r.w, format, args...)
}
