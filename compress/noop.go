package compress

import "io"

// noOpWriter forwards writes unchanged and ignores Close.
type noOpWriter struct {
	w io.Writer
}

// NewNoOpWriter returns a writer that passes data through to w without compression.
func NewNoOpWriter(w io.Writer) (io.WriteCloser, error) {
	return noOpWriter{w: w}, nil
}

func (n noOpWriter) Write(p []byte) (int, error) {
	return n.w.Write(p)
}

func (n noOpWriter) Close() error {
	return nil
}
