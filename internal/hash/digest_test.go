package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumString(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, SumString(tt.data))
			assert.Equal(t, tt.sum, Sum([]byte(tt.data)))
		})
	}
}

func TestNewDigest_MatchesSum(t *testing.T) {
	d := NewDigest()
	for _, chunk := range []string{"a3", "\n", "b2c4", "\n"} {
		n, err := d.Write([]byte(chunk))
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}

	assert.Equal(t, SumString("a3\nb2c4\n"), d.Sum64())
}
