// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

/*
Package crush implements the CRUSH codec: a byte-oriented LZ77-family
compressor that packs a byte stream into a self-delimiting bitstream of
literals and (length, offset) back-references, and unpacks it back into
the exact original bytes.

The codec is single-block and content-agnostic: a packed block carries no
length or checksum of its own. Callers that need to store multiple blocks
(as cmd/crush does) must frame them externally.

# Pack

Level selects the parser and its search effort. Levels 5-7 use a fast
backwards chain parser; levels 8-10 use a slower forwards tree parser that
searches for a globally optimal parse:

	packed, err := crush.PackLevel(src, crush.LevelDefault)

Compress is a convenience wrapper that also allocates the destination and
work-memory buffers:

	packed, err := crush.Compress(src, nil)

# Unpack

The exact decompressed length must be known by the caller (it is not
stored in the bitstream):

	n, err := crush.Depack(dst, packed, len(src))

	out, err := crush.Decompress(packed, crush.DefaultDecompressOptions(len(src)))
*/
package crush
