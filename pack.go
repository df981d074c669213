// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// PackLevel compresses src at the given level (LevelFast..LevelOptimal)
// and returns a freshly allocated packed block. It is a convenience
// wrapper around PackLevelInto that sizes the destination and work-memory
// buffers for the caller (spec §6 "pack_level").
func PackLevel(src []byte, level int) ([]byte, error) {
	if _, err := lookupLevel(level); err != nil {
		return nil, err
	}

	dst := make([]byte, MaxPackedSize(len(src)))

	n, err := PackLevelInto(dst, src, level)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// PackLevelInto compresses src into dst at the given level and returns the
// number of bytes written. dst must have length >= MaxPackedSize(len(src))
// (ErrShortDst otherwise). It is a convenience over PackLevelWorkMem that
// borrows the hash table from lookupPool instead of requiring the caller
// to size one (see DESIGN.md on why this, not the caller-supplied arena,
// is the default entry point).
func PackLevelInto(dst, src []byte, level int) (int, error) {
	p, err := lookupLevel(level)
	if err != nil {
		return 0, err
	}

	if len(dst) < MaxPackedSize(len(src)) {
		return 0, ErrShortDst
	}

	n := len(src)
	hashBits := hashBitsFor(n)
	lookup := acquireLookup(hashBits)
	defer releaseLookup(lookup)

	var mlen, mpos []int
	if p.useTree {
		mlen, mpos = encodeTree(src, p.maxDepth, p.acceptLen, lookup, make([]int32, 2*n))
	} else {
		mlen, mpos = encodeChain(src, p.maxDepth, p.acceptLen, lookup, make([]int32, n))
	}

	w := newBitWriter(dst)
	emitTokens(&w, src, mlen, mpos)

	return w.finalize(), nil
}

// PackLevelWorkMem is the literal counterpart of spec §6's
// pack_level(src, src_len, dst, workmem, level): it carves the parser's
// two size-dominant scratch arrays (the hash table and, depending on
// level, the chain-parser's prev links or the tree parser's BST child
// table) out of a caller-supplied arena instead of allocating them.
// WorkMemSize(len(src), level)/4 int32 words is always enough; the call
// returns ErrShortWorkMem only when workmem is shorter than the hash table
// plus n (chain parser) or 2n (tree parser) words. The smaller
// per-position cost/token arrays are still allocated per call (spec §9
// permits non-aliased arrays).
func PackLevelWorkMem(dst, src []byte, workmem []int32, level int) (int, error) {
	p, err := lookupLevel(level)
	if err != nil {
		return 0, err
	}

	if len(dst) < MaxPackedSize(len(src)) {
		return 0, ErrShortDst
	}

	n := len(src)
	hashBits := hashBitsFor(n)
	lookupLen := 1 << hashBits

	needed := lookupLen + n
	if p.useTree {
		needed = lookupLen + 2*n
	}

	if len(workmem) < needed {
		return 0, ErrShortWorkMem
	}

	lookup := workmem[:lookupLen]

	var mlen, mpos []int
	if p.useTree {
		mlen, mpos = encodeTree(src, p.maxDepth, p.acceptLen, lookup, workmem[lookupLen:lookupLen+2*n])
	} else {
		mlen, mpos = encodeChain(src, p.maxDepth, p.acceptLen, lookup, workmem[lookupLen:lookupLen+n])
	}

	w := newBitWriter(dst)
	emitTokens(&w, src, mlen, mpos)

	return w.finalize(), nil
}

// emitTokens walks the chosen tokens left to right and writes them (spec
// §4.3/§4.4 phase 3, shared by both parsers). mlen[i]/mpos[i] use the
// convention documented on encodeChain/encodeTree: mlen[i]==1 is a
// literal, otherwise mpos[i] is the absolute source position the match at
// i copies from.
func emitTokens(w *bitWriter, src []byte, mlen, mpos []int) {
	for i := 0; i < len(src); {
		l := mlen[i]
		if l == 1 {
			emitLiteral(w, src[i])
		} else {
			emitMatch(w, i-mpos[i]-1, l)
		}

		i += l
	}
}
