// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// bitWriter packs fields LSB-first into dst, draining whole bytes out of a
// 32-bit accumulator as it fills (spec §4.1). dst must be large enough for
// the whole block (callers size it via MaxPackedSize); bitWriter never
// grows it.
type bitWriter struct {
	dst []byte
	pos int

	tag uint32 // accumulator
	msb uint   // number of valid low bits in tag, 0..32
}

func newBitWriter(dst []byte) bitWriter {
	return bitWriter{dst: dst}
}

// put writes the low num bits of val (num in [0,32], val < 1<<num),
// draining whole bytes first so the OR below never overflows the
// accumulator. Fields wider than 24 bits are written as two smaller puts,
// low bits first, which yields the same bitstream.
func (w *bitWriter) put(val uint32, num uint) {
	if num > 24 {
		w.put(val&0xFFFF, 16)
		w.put(val>>16, num-16)
		return
	}

	for w.msb > 32-num {
		w.dst[w.pos] = byte(w.tag)
		w.pos++
		w.tag >>= 8
		w.msb -= 8
	}

	w.tag |= val << w.msb
	w.msb += num
}

// finalize drains the remaining whole and partial bytes (zero-padding the
// tail bits of the last byte) and returns the total number of bytes
// written.
func (w *bitWriter) finalize() int {
	for w.msb > 0 {
		w.dst[w.pos] = byte(w.tag)
		w.pos++
		w.tag >>= 8

		if w.msb >= 8 {
			w.msb -= 8
		} else {
			w.msb = 0
		}
	}

	return w.pos
}
