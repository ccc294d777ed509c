//go:build !unix

package access

import "os"

// Check approximates access(2) by opening path for reading and for writing.
func (System) Check(path string) error {
	if _, err := os.Stat(path); err != nil {
		return &Error{Path: path, Mode: ModeExist, Err: unwrapPathError(err)}
	}

	for _, c := range []struct {
		mode Mode
		flag int
	}{
		{ModeRead, os.O_RDONLY},
		{ModeWrite, os.O_WRONLY},
	} {
		f, err := os.OpenFile(path, c.flag, 0)
		if err != nil {
			return &Error{Path: path, Mode: c.mode, Err: unwrapPathError(err)}
		}
		_ = f.Close()
	}

	return nil
}

func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}

	return err
}
