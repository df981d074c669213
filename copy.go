// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// copyBackRef copies length bytes from dst[outputPos-dist:] to
// dst[outputPos:outputPos+length]. Callers (Depack) have already
// validated dist <= outputPos and outputPos+length <= len(dst); this is
// the unconditional forward copy spec §4.6 step 5 requires, which must
// work even when dist < length (self-overlapping runs, e.g. RLE): newly
// written bytes become valid source for the remainder of the match. We
// implement that with one seed copy plus repeated doubling rather than a
// byte-by-byte loop.
func copyBackRef(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	copy(dst[outputPos:outputPos+dist], dst[mPos:outputPos])
	copied := dist

	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}
}
