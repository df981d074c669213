// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "math/bits"

// bitsLen returns the number of bits needed to represent v (0 for v==0),
// i.e. floor(log2(v))+1 for v>0. Grounded on the teacher's own use of
// math/bits for bit-counting in its 1X-999 path (compress_1x_999.go).
func bitsLen(v uint32) int {
	return bits.Len32(v)
}

// log2Floor returns floor(log2(v)) for v >= 1.
func log2Floor(v uint32) int {
	return bits.Len32(v) - 1
}

// literalCost is the fixed bit cost of a literal token: one flag bit plus
// eight data bits (spec §4.2).
const literalCost = 9

// matchCost returns the exact number of bits that encoding the token
// (offs, len) would cost, per spec §4.2. offs is the raw offset, the back
// distance minus one, as used throughout the parsers (decoder adds 1 back
// on the way out, §4.6); len is the full match length including MinMatch.
func matchCost(offs, length int) int {
	l := length - MinMatch

	cost := 1 // match flag

	switch {
	case l < lenA:
		cost += 1 + lenABits
	case l < lenB:
		cost += 2 + lenBBits
	case l < lenC:
		cost += 3 + lenCBits
	case l < lenD:
		cost += 4 + lenDBits
	case l < lenE:
		cost += 5 + lenEBits
	default:
		cost += 5 + lenFBits
	}

	cost += SlotBits

	if offs >= 2<<offsetThresholdBits {
		cost += log2Floor(uint32(offs))
	} else {
		cost += offsetThresholdBits + 1
	}

	return cost
}
