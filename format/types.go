package format

import (
	"strings"

	"github.com/arloliu/linerle/errs"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone writes encoded lines as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd wraps the sink in a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 wraps the sink in an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 wraps the sink in an LZ4 frame.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType converts a case-insensitive name ("none", "zstd", "s2", "lz4")
// into a CompressionType. The empty string maps to CompressionNone.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, errs.ErrInvalidCompression
	}
}
