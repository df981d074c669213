// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "errors"

// Sentinel errors for packing and depacking. The codec distinguishes only
// two failure kinds at the API boundary (spec §7); the rest are ambient
// misuse guards around caller-supplied buffers.
var (
	// ErrInvalidLevel is returned by PackLevel/WorkMemSize when level is
	// outside [LevelFast, LevelOptimal].
	ErrInvalidLevel = errors.New("crush: invalid level")

	// ErrCorruptBitstream is returned by Depack when a decoded offset
	// references before the start of the output (offs > dst_size).
	ErrCorruptBitstream = errors.New("crush: corrupt bitstream")

	// ErrShortDst is returned when the destination buffer passed to
	// PackLevelInto is smaller than MaxPackedSize(len(src)).
	ErrShortDst = errors.New("crush: destination buffer too small")

	// ErrShortWorkMem is returned when the work-memory buffer passed to
	// PackLevelWorkMem is too small to hold the hash table plus the
	// parser's per-position link array it carves out of it.
	ErrShortWorkMem = errors.New("crush: work memory too small")

	// ErrShortDepackDst is returned when the destination buffer passed to
	// Depack is smaller than the requested depacked length.
	ErrShortDepackDst = errors.New("crush: depack destination too small")

	// ErrOptionsRequired is returned when Decompress is called with nil
	// options (OutLen is required to size the destination buffer).
	ErrOptionsRequired = errors.New("crush: options required: OutLen must be set")

	// ErrInputTooLarge is returned by DecompressFromReader when the input
	// exceeds opts.MaxInputSize.
	ErrInputTooLarge = errors.New("crush: input exceeds MaxInputSize")
)
