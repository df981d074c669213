// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "io"

// CompressOptions configures Compress. Level selects the parser and its
// search effort (LevelFast..LevelOptimal, spec §4.3/§4.4 "Level mapping").
type CompressOptions struct {
	Level int
}

// DefaultCompressOptions returns options for the medium chain-parser level.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: LevelDefault}
}

// DecompressOptions configures Decompress. OutLen is required: the
// bitstream does not carry its own decompressed length (spec §1).
type DecompressOptions struct {
	// OutLen is the exact decompressed size.
	OutLen int

	// MaxInputSize, if positive, bounds the bytes DecompressFromReader will
	// read before giving up with ErrInputTooLarge. Zero means unbounded.
	MaxInputSize int
}

// DefaultDecompressOptions returns options with the given output length.
func DefaultDecompressOptions(outLen int) *DecompressOptions {
	return &DecompressOptions{OutLen: outLen}
}

// Compress compresses src with CRUSH. opts may be nil (uses DefaultCompressOptions).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	return PackLevel(src, opts.Level)
}

// Decompress decompresses CRUSH data from src. opts is required: OutLen
// must be the exact original length (ErrOptionsRequired if opts is nil).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	dst := make([]byte, opts.OutLen)

	n, err := Depack(dst, src, opts.OutLen)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// DecompressFromReader reads r to completion and calls Decompress on the
// result; it has no decoding logic of its own. Returns ErrInputTooLarge if
// opts.MaxInputSize is positive and more bytes are read.
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		return nil, ErrOptionsRequired
	}

	if opts.MaxInputSize > 0 {
		r = io.LimitReader(r, int64(opts.MaxInputSize)+1)
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if opts.MaxInputSize > 0 && len(src) > opts.MaxInputSize {
		return nil, ErrInputTooLarge
	}

	return Decompress(src, opts)
}
