package encoding

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/linerle/errs"
)

func encodeString(t *testing.T, line string) (string, LineStats) {
	t.Helper()

	enc, err := NewEncoder()
	require.NoError(t, err)

	var out bytes.Buffer
	stats := enc.EncodeLine([]byte(line), &out)

	return out.String(), stats
}

// ==============================================================================
// Runs
// ==============================================================================

func TestRuns(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Run
	}{
		{"empty", "", nil},
		{"single", "x", []Run{{'x', 1}}},
		{"two runs", "aaabb", []Run{{'a', 3}, {'b', 2}}},
		{"alternating", "abab", []Run{{'a', 1}, {'b', 1}, {'a', 1}, {'b', 1}}},
		{"digits pass through", "1112", []Run{{'1', 3}, {'2', 1}}},
		{"spaces", "a  b", []Run{{'a', 1}, {' ', 2}, {'b', 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Runs([]byte(tt.content)))
		})
	}
}

func TestRun_Token(t *testing.T) {
	require.Equal(t, "a3", Run{'a', 3}.Token())
	require.Equal(t, "z1024", Run{'z', 1024}.Token())
	require.Equal(t, "71", Run{'7', 1}.Token())
}

func TestRuns_PartitionProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	alphabet := []byte("aab b\t1")

	for i := 0; i < 200; i++ {
		content := make([]byte, rng.Intn(64))
		for j := range content {
			content[j] = alphabet[rng.Intn(len(alphabet))]
		}

		runs := Runs(content)

		total := 0
		var rebuilt []byte
		for k, r := range runs {
			require.Positive(t, r.Count)
			if k > 0 {
				require.NotEqual(t, runs[k-1].Char, r.Char, "adjacent runs must differ")
			}
			total += r.Count
			rebuilt = append(rebuilt, bytes.Repeat([]byte{r.Char}, r.Count)...)
		}
		require.Equal(t, len(content), total)
		require.Equal(t, content, rebuilt)
	}
}

// ==============================================================================
// EncodeLine
// ==============================================================================

func TestEncodeLine_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		out      string
		consumed uint64
		emitted  uint64
	}{
		{"two runs", "aaabb\n", "a3\n", 6, 2},
		{"empty line", "\n", "\n", 1, 0},
		{"single char", "x\n", "\n", 2, 0},
		{"no terminator", "aab", "a2\n", 3, 2},
		{"zero length", "", "\n", 0, 0},
		{"three runs", "aaabbc\n", "a3b2\n", 7, 4},
		{"multi digit count", strings.Repeat("q", 12) + "r\n", "q12\n", 14, 3},
		{"digits not escaped", "1112\n", "13\n", 5, 2},
		{"carriage return is a character", "aa\r\n", "a2\n", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, stats := encodeString(t, tt.line)
			require.Equal(t, tt.out, out)
			require.Equal(t, tt.consumed, stats.Consumed)
			require.Equal(t, tt.emitted, stats.Emitted)
			require.Zero(t, stats.Failures)
		})
	}
}

func TestEncodeLine_DropsLastRun(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		content := make([]byte, 1+rng.Intn(40))
		for j := range content {
			content[j] = "xyz"[rng.Intn(3)]
		}

		runs := Runs(content)
		var want strings.Builder
		for _, r := range runs[:len(runs)-1] {
			want.WriteString(r.Token())
		}
		want.WriteByte(LineTerminator)

		out, stats := encodeString(t, string(content)+"\n")
		require.Equal(t, want.String(), out)
		require.Equal(t, uint64(len(out)-1), stats.Emitted)
		require.Equal(t, strings.Count(out, "x")+strings.Count(out, "y")+strings.Count(out, "z"), len(runs)-1)
	}
}

func TestEncodeLine_ReusesEncoder(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	var out bytes.Buffer
	first := enc.EncodeLine([]byte("aab\n"), &out)
	second := enc.EncodeLine([]byte("ccd\n"), &out)

	require.Equal(t, "a2\nc2\n", out.String())
	require.Equal(t, uint64(2), first.Emitted)
	require.Equal(t, uint64(2), second.Emitted)
}

// flakyWriter fails the writes whose zero-based index is listed in failAt.
type flakyWriter struct {
	bytes.Buffer
	calls  int
	failAt map[int]bool
}

var errDiskFull = errors.New("disk full")

func (w *flakyWriter) Write(p []byte) (int, error) {
	defer func() { w.calls++ }()
	if w.failAt[w.calls] {
		return 0, errDiskFull
	}

	return w.Buffer.Write(p)
}

func TestEncodeLine_WriteFailureContinues(t *testing.T) {
	var reported []error
	enc, err := NewEncoder(WithWriteErrorHandler(func(err error) {
		reported = append(reported, err)
	}))
	require.NoError(t, err)

	// tokens a2, b3, c1 are writes 0..2, the terminator is write 3
	w := &flakyWriter{failAt: map[int]bool{1: true}}
	stats := enc.EncodeLine([]byte("aabbbcd\n"), w)

	require.Equal(t, "a2c1\n", w.String())
	require.Equal(t, uint64(8), stats.Consumed)
	require.Equal(t, uint64(4), stats.Emitted)
	require.Equal(t, 1, stats.Failures)
	require.Len(t, reported, 1)
	require.ErrorIs(t, reported[0], errs.ErrWrite)
	require.ErrorIs(t, reported[0], errDiskFull)
}

func TestEncodeLine_TerminatorFailureIsReported(t *testing.T) {
	var reported int
	enc, err := NewEncoder(WithWriteErrorHandler(func(error) { reported++ }))
	require.NoError(t, err)

	w := &flakyWriter{failAt: map[int]bool{1: true}}
	stats := enc.EncodeLine([]byte("ab\n"), w)

	require.Equal(t, "a1", w.String())
	require.Equal(t, uint64(2), stats.Emitted)
	require.Equal(t, 1, stats.Failures)
	require.Equal(t, 1, reported)
}

func TestEncodeLine_CustomTerminator(t *testing.T) {
	enc, err := NewEncoder(WithTerminator(';'))
	require.NoError(t, err)
	require.Equal(t, byte(';'), enc.Terminator())

	var out bytes.Buffer
	stats := enc.EncodeLine([]byte("aaab;"), &out)
	require.Equal(t, "a3;", out.String())
	require.Equal(t, uint64(5), stats.Consumed)
	require.Equal(t, uint64(2), stats.Emitted)

	out.Reset()
	stats = enc.EncodeLine([]byte("aa\nb"), &out)
	require.Equal(t, "a2\n1;", out.String(), "newline is an ordinary byte")
	require.Equal(t, uint64(4), stats.Emitted)
}

func TestWithTerminator(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.Equal(t, byte(LineTerminator), enc.Terminator())

	for _, b := range []byte("0123456789") {
		_, err := NewEncoder(WithTerminator(b))
		require.ErrorIs(t, err, errs.ErrInvalidTerminator, "terminator %q", b)
	}

	for _, b := range []byte{0, '\r', ';', 'x', 0xff} {
		enc, err := NewEncoder(WithTerminator(b))
		require.NoError(t, err)
		require.Equal(t, b, enc.Terminator())
	}
}

func TestEncodeLine_NilHandler(t *testing.T) {
	enc, err := NewEncoder(WithWriteErrorHandler(nil))
	require.NoError(t, err)

	w := &flakyWriter{failAt: map[int]bool{0: true, 1: true}}
	stats := enc.EncodeLine([]byte("ab\n"), w)

	require.Empty(t, w.String())
	require.Zero(t, stats.Emitted)
	require.Equal(t, 2, stats.Failures)
}
