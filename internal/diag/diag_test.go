package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := New("linerle", &buf)

	require.Equal(t, "linerle", r.Program())

	r.Errorf("Opening file: %s. %s", "in.txt", "no such file or directory")
	r.Usage()
	r.Summary(6, 2)

	require.Equal(t,
		"[linerle] ERROR: Opening file: in.txt. no such file or directory\n"+
			"USAGE: linerle [-o outputFile] [inputFile]\n"+
			"READ: 6 characters\n"+
			"Written: 2 characters\n",
		buf.String())
}

func TestReporter_ErrorfWithoutArgs(t *testing.T) {
	var buf bytes.Buffer
	New("./rle", &buf).Errorf("100%% broken")

	require.Equal(t, "[./rle] ERROR: 100% broken\n", buf.String())
}
