// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

// Chain parser: a fast backwards-DP encoder over hash chains (spec §4.3),
// used for levels LevelFast/LevelMedium/LevelThorough. It trades
// optimality for speed relative to the tree parser in compress_tree.go:
// one forward pass builds the chains, one backward pass picks, for each
// position, the cheapest way to reach the end of the input.

// encodeChain runs phases 1-2 of the chain parser and returns the chosen
// token at every position: mlen[i] is the token length starting at i (1
// means literal), mpos[i] is the absolute source position the match
// copies from (meaningless when mlen[i]==1). Position 0 is always a
// literal by construction (spec §4.3 phase 2, final step) — the DP only
// evaluates match starts at 1..lastMatchPos.
//
// lookup and prev are caller-owned scratch (lookup sized 1<<hashBitsFor(n),
// prev sized n); encodeChain resets the slots of lookup it touches itself,
// so a pooled or workmem-carved buffer with stale contents is safe to pass.
func encodeChain(src []byte, maxDepth, acceptLen int, lookup, prev []int32) (mlen, mpos []int) {
	n := len(src)
	mlen = make([]int, n)
	mpos = make([]int, n)

	if n < MinMatch {
		// Match hashing needs 3 bytes to key on; nothing to find (spec §9
		// "Literal-only fallback for tiny inputs"). Every byte is a literal.
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

	for i := 0; i <= lastMatchPos; i++ {
		h := hash3(src, i, hashBits)
		prev[i] = lookup[h]
		lookup[h] = int32(i)
	}

	cost := make([]int, n+1)
	cost[n] = 0

	mlen[n-1] = 1
	cost[n-1] = literalCost

	if n >= 2 {
		mlen[n-2] = 1
		cost[n-2] = literalCost * 2
	}

	for cur := lastMatchPos; cur >= 1; cur-- {
		cost[cur] = cost[cur+1] + literalCost
		mlen[cur] = 1

		maxLen := MinMatch - 1
		lenLimit := min(MaxMatch, n-cur)
		chainLeft := maxDepth
		pos := int(prev[cur])

		for pos != noMatchPos && cur-pos <= WindowSize && chainLeft > 0 {
			chainLeft--

			if src[pos+maxLen] != src[cur+maxLen] {
				pos = int(prev[pos])
				continue
			}

			length := 0
			for length < lenLimit && src[pos+length] == src[cur+length] {
				length++
			}

			if length > maxLen {
				bestCost := cost[cur]
				bestLen := 0

				for i := maxLen + 1; i <= length; i++ {
					c := matchCost(cur-pos-1, i) + cost[cur+i]
					if c < bestCost {
						bestCost = c
						bestLen = i
					}
				}

				maxLen = length

				if bestLen > 0 {
					cost[cur] = bestCost
					mpos[cur] = pos
					mlen[cur] = bestLen

					// Left-extension: pull the match start earlier while the
					// preceding bytes still agree, settling each extended
					// position as we go (spec §4.3 phase 2, "Left-extension").
					for pos > 0 && src[pos-1] == src[cur-1] && bestLen < MaxMatch {
						pos--
						cur--
						bestLen++

						c := matchCost(cur-pos-1, bestLen) + cost[cur+bestLen]
						cost[cur] = c
						mpos[cur] = pos
						mlen[cur] = bestLen
					}

					break
				}
			}

			if length >= acceptLen || length == lenLimit {
				break
			}

			pos = int(prev[pos])
		}
	}

	mlen[0] = 1
	mpos[0] = 0

	return mlen, mpos
}
