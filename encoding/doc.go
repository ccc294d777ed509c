// Package encoding implements the line-oriented run-length encoder.
//
// Each input line is scanned once, left to right. Consecutive identical
// bytes form a run, and every run is written as a token: the byte itself
// followed by the run length in decimal, with no separator and no escaping.
//
//	input:  "aaabbc\n"
//	runs:   ('a',3) ('b',2) ('c',1)
//	output: "a3b2\n"
//
// # Output Format
//
// The last run of every line is not written. A token is emitted only when a
// byte different from the current run is seen, and the pending run is never
// flushed at the end of the line. The format is therefore lossy: the final
// run cannot be reconstructed from the output. After the tokens, exactly
// one '\n' is written, even for empty lines.
//
// The terminator defaults to LineTerminator and can be replaced with
// WithTerminator by any byte that is not a decimal digit.
//
// # Accounting
//
// EncodeLine reports the full input length (terminator included) as
// consumed, and only the bytes of successfully written tokens as emitted.
// The trailing '\n' is written but not counted.
//
// # Write Failures
//
// A failed write to the sink is passed to the WithWriteErrorHandler callback,
// wrapped in errs.ErrWrite. The failed token is excluded from the emitted
// count and encoding continues with the next token.
package encoding
