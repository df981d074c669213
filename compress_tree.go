// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "math"

// Tree parser: an exact forwards dynamic program over a per-hash-bucket
// binary search tree that is re-rooted on every query (spec §4.4), used
// for levels LevelTreeGood/LevelTreeBest/LevelOptimal. Grounded on the
// same hash-bucket match-finder shape as the teacher's sliding-window
// dictionary (sliding_window.go), re-expressed over a BST instead of a
// singly linked chain so the search order is closest-match-first and a
// node can be pruned once a closer, equal-length candidate supersedes it.
//
// The "splay" here isn't a textbook self-balancing splay tree: each query
// makes the current position the new root and leaves everything else
// wherever the descent left it (spec §9 "Tree re-rooting as a splay
// variant"). maxDepth is the only thing stopping pathological inputs from
// growing an unbalanced tree into an O(n) walk per position.

const infiniteCost = math.MaxInt32 / 2

// encodeTree runs phases 1-2 of the tree parser (the forward DP and the
// path reversal; emitting is emitTokens in pack.go) and returns, like
// encodeChain, the chosen token at every position (mlen[i]==1 for a
// literal, mpos[i] the absolute match source position otherwise).
//
// lookup (sized 1<<hashBitsFor(n)) and nodes (sized 2n) are caller-owned
// scratch; see encodeChain for why stale contents are safe to pass.
func encodeTree(src []byte, maxDepth, acceptLen int, lookup, nodes []int32) (mlen, mpos []int) {
	n := len(src)
	mlen = make([]int, n)
	mpos = make([]int, n)

	if n < MinMatch {
		for i := range mlen {
			mlen[i] = 1
		}

		return mlen, mpos
	}

	lastMatchPos := n - MinMatch
	hashBits := hashBitsFor(n)

	for i := range lookup {
		lookup[i] = noMatchPos
	}

	// nodes holds the left/right child of every position's BST node:
	// nodes[2*p] is the left child, nodes[2*p+1] the right child.
	cost := make([]int, n+1)
	tokLen := make([]int, n+1)
	tokPos := make([]int, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = infiniteCost
		tokLen[i] = 1
	}

	nextMatchCur := 0

	for cur := 0; cur <= lastMatchPos; cur++ {
		if cost[cur]+literalCost < cost[cur+1] {
			cost[cur+1] = cost[cur] + literalCost
			tokLen[cur+1] = 1
		}

		if cur > nextMatchCur {
			nextMatchCur = cur
		}

		h := hash3(src, cur, hashBits)
		pos := int(lookup[h])
		lookup[h] = int32(cur)

		ltSlot := 2 * cur
		gtSlot := 2*cur + 1
		ltLen, gtLen := 0, 0
		maxLen := MinMatch - 1

		measuring := cur == nextMatchCur
		lenLimit := acceptLen
		if measuring {
			lenLimit = MaxMatch
		}
		if rem := n - cur; lenLimit > rem {
			lenLimit = rem
		}

		depthLeft := maxDepth
		spliced := false

		for pos != noMatchPos && cur-pos <= WindowSize && depthLeft > 0 {
			depthLeft--

			length := min(ltLen, gtLen)
			for length < lenLimit && src[pos+length] == src[cur+length] {
				length++
			}

			if measuring && length > maxLen {
				for i := maxLen + 1; i <= length; i++ {
					c := cost[cur] + matchCost(cur-pos-1, i)
					if c < cost[cur+i] {
						cost[cur+i] = c
						tokLen[cur+i] = i
						tokPos[cur+i] = pos
					}
				}

				maxLen = length

				if length >= acceptLen {
					nextMatchCur = cur + length
				}
			}

			if length >= acceptLen || length == lenLimit {
				// pos's string is equal (enough) to cur's; cur is closer,
				// so it replaces pos in the tree. Transplant pos's
				// children directly into the slots that pointed at pos.
				nodes[ltSlot] = nodes[2*pos]
				nodes[gtSlot] = nodes[2*pos+1]
				spliced = true

				break
			}

			if src[pos+length] < src[cur+length] {
				nodes[ltSlot] = int32(pos)
				ltSlot = 2*pos + 1
				ltLen = length
				pos = int(nodes[ltSlot])
			} else {
				nodes[gtSlot] = int32(pos)
				gtSlot = 2 * pos
				gtLen = length
				pos = int(nodes[gtSlot])
			}
		}

		if !spliced {
			nodes[ltSlot] = noMatchPos
			nodes[gtSlot] = noMatchPos
		}
	}

	for cur := lastMatchPos + 1; cur < n; cur++ {
		if cost[cur]+literalCost < cost[cur+1] {
			cost[cur+1] = cost[cur] + literalCost
			tokLen[cur+1] = 1
		}
	}

	return reconstructTreeTokens(n, tokLen, tokPos)
}

// reconstructTreeTokens walks the arrival-indexed DP arrays backwards from
// n (spec §4.4 phase 2 "path reversal") and returns start-indexed mlen and
// mpos arrays, the convention emitTokens expects.
func reconstructTreeTokens(n int, tokLen, tokPos []int) (mlen, mpos []int) {
	mlen = make([]int, n)
	mpos = make([]int, n)

	for t := n; t > 0; {
		l := tokLen[t]
		start := t - l

		mlen[start] = l
		if l > 1 {
			mpos[start] = tokPos[t]
		}

		t = start
	}

	return mlen, mpos
}
