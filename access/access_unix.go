//go:build unix

package access

import "golang.org/x/sys/unix"

// Check tests existence, then read, then write permission with access(2),
// using the real user and group IDs.
func (System) Check(path string) error {
	for _, c := range []struct {
		mode Mode
		bits uint32
	}{
		{ModeExist, unix.F_OK},
		{ModeRead, unix.R_OK},
		{ModeWrite, unix.W_OK},
	} {
		if err := unix.Access(path, c.bits); err != nil {
			return &Error{Path: path, Mode: c.mode, Err: err}
		}
	}

	return nil
}
