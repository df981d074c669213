// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// Token encoding (spec §4.5). The emit phase both parsers share (emitTokens
// in pack.go) and the decoder (decompress.go) use these helpers so the bit
// layout can't drift between encode and decode.

// emitLiteral writes a literal byte: a 0 flag bit followed by 8 data bits,
// packed as a single 9-bit write.
func emitLiteral(w *bitWriter, b byte) {
	w.put(uint32(b)<<1, 9)
}

// emitMatch writes a match token: the 1 flag bit, the length code, then
// the offset code. length is the full match length (MinMatch <= length
// <= MaxMatch); offs is the raw back-distance (0 <= offs < WindowSize).
func emitMatch(w *bitWriter, offs, length int) {
	w.put(1, 1)
	emitLengthCode(w, length-MinMatch)
	emitOffsetCode(w, offs)
}

// emitLengthCode writes the cumulative unary-selected length group for
// l = len - MinMatch (spec §4.5 table).
func emitLengthCode(w *bitWriter, l int) {
	switch {
	case l < lenA:
		w.put(1, 1)
		w.put(uint32(l), lenABits)
	case l < lenB:
		w.put(1<<1, 2)
		w.put(uint32(l-lenA), lenBBits)
	case l < lenC:
		w.put(1<<2, 3)
		w.put(uint32(l-lenB), lenCBits)
	case l < lenD:
		w.put(1<<3, 4)
		w.put(uint32(l-lenC), lenDBits)
	case l < lenE:
		w.put(1<<4, 5)
		w.put(uint32(l-lenD), lenEBits)
	default:
		w.put(0, 5)
		w.put(uint32(l-lenE), lenFBits)
	}
}

// emitOffsetCode writes the slot-selected offset field (spec §4.5).
func emitOffsetCode(w *bitWriter, offs int) {
	const t = offsetThresholdBits

	if offs >= 2<<t {
		mlog := log2Floor(uint32(offs))
		w.put(uint32(mlog-t), SlotBits)
		w.put(uint32(offs-(1<<mlog)), uint(mlog))
		return
	}

	w.put(0, SlotBits)
	w.put(uint32(offs), t+1)
}

// decodeLengthRaw reads a length-group code and returns l = len - MinMatch
// (spec §4.6 step 3).
func decodeLengthRaw(r *bitReader) int {
	if r.getBit() == 1 {
		return int(r.get(lenABits))
	}
	if r.getBit() == 1 {
		return int(r.get(lenBBits)) + lenA
	}
	if r.getBit() == 1 {
		return int(r.get(lenCBits)) + lenB
	}
	if r.getBit() == 1 {
		return int(r.get(lenDBits)) + lenC
	}
	if r.getBit() == 1 {
		return int(r.get(lenEBits)) + lenD
	}

	return int(r.get(lenFBits)) + lenE
}

// decodeOffsetRaw reads the slot-selected offset field and returns the raw
// (pre-+1) back-distance (spec §4.6 step 4).
func decodeOffsetRaw(r *bitReader) int {
	const t = offsetThresholdBits

	slot := r.get(SlotBits)
	mlog := uint(slot) + t

	if slot > 0 {
		raw := r.get(mlog)
		return int(raw) + (1 << mlog)
	}

	return int(r.get(t + 1))
}
