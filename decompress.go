// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// Depack decompresses a CRUSH block from src into dst, stopping once
// depackedLen bytes have been written (spec §4.6). dst must have length
// >= depackedLen (ErrShortDepackDst otherwise). Returns ErrCorruptBitstream
// if a decoded offset would reference before the start of dst, or if a
// match would run past depackedLen.
func Depack(dst, src []byte, depackedLen int) (int, error) {
	n, _, err := depack(dst, src, depackedLen)
	return n, err
}

// DepackBlock behaves exactly like Depack but additionally reports how
// many bytes of src the bitstream actually occupied (rounded up to the
// next byte boundary, matching finalize's padding). The codec's own wire
// format has no use for this — a single block's length is known
// externally (spec §6) — but an outer multi-block framing that only
// stores each block's *original* length (as cmd/crush's does) needs it to
// find the next block's header without re-parsing.
func DepackBlock(dst, src []byte, depackedLen int) (n, consumed int, err error) {
	return depack(dst, src, depackedLen)
}

func depack(dst, src []byte, depackedLen int) (int, int, error) {
	if len(dst) < depackedLen {
		return 0, 0, ErrShortDepackDst
	}

	if depackedLen == 0 {
		return 0, 0, nil
	}

	r := newBitReader(src)
	outPos := 0

	for outPos < depackedLen {
		if r.getBit() == 0 {
			dst[outPos] = byte(r.get(8))
			outPos++

			continue
		}

		length := decodeLengthRaw(&r) + MinMatch
		offs := decodeOffsetRaw(&r) + 1

		if offs > outPos {
			return 0, 0, ErrCorruptBitstream
		}

		if outPos+length > depackedLen {
			return 0, 0, ErrCorruptBitstream
		}

		copyBackRef(dst, outPos, offs, length)
		outPos += length
	}

	return outPos, r.pos, nil
}
