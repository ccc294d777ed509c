package hash

import (
	"hash"

	"github.com/cespare/xxhash/v2"
)

// Sum computes the xxHash64 of data.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// SumString computes the xxHash64 of s without copying it.
func SumString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// NewDigest returns a streaming xxHash64. Sum64 over everything written
// equals Sum over the concatenated input.
func NewDigest() hash.Hash64 {
	return xxhash.New()
}
