// Package compress wraps the linerle output sink in a streaming compressor.
//
// Run-length encoded text tends to stay highly repetitive, so a general
// purpose codec on top of it is often worthwhile for archival output. The
// package supports:
//   - None: encoded lines are written unchanged (default)
//   - Zstd: best ratio, moderate speed (klauspost/compress/zstd)
//   - S2: balanced speed and ratio (klauspost/compress/s2)
//   - LZ4: fastest, frame format (pierrec/lz4/v4)
//
// Only writers are provided. Reading the streams back is left to the
// standard tools of each format (zstd, s2d, lz4).
//
// Example:
//
//	cw, err := compress.NewWriter(format.CompressionZstd, file)
//	if err != nil {
//	    return err
//	}
//	defer cw.Close()
package compress
