package cli

import "github.com/arloliu/linerle/errs"

// outputFlag is the -o/--output value. Unlike a plain string flag it
// rejects a second occurrence instead of keeping the last one.
type outputFlag struct {
	path      string
	set       bool
	duplicate bool
}

func (f *outputFlag) String() string {
	return f.path
}

func (f *outputFlag) Set(v string) error {
	if f.set {
		f.duplicate = true
		return errs.ErrDuplicateOutputFlag
	}
	f.path = v
	f.set = true

	return nil
}

func (f *outputFlag) Type() string {
	return "path"
}
