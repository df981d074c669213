// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "sync"

// lookupPool pools the fixed-size (lookupSize) hash tables both parsers
// use. Every other scratch array's size depends on the input length, but
// the hash table's does not (spec §6 LOOKUP_SIZE is a constant), so it is
// the one piece of work memory worth reusing across repeated PackLevel
// calls — e.g. cmd/crush packs one block at a time from a long-running
// process. Adapted from the teacher's sliding-window dictionary pool
// (formerly sliding_window_pool.go): same acquire/reset/release shape,
// repurposed around a plain slice instead of a struct.
var lookupPool = sync.Pool{
	New: func() any {
		buf := make([]int32, lookupSize)
		return &buf
	},
}

// acquireLookup returns a hash table of size 1<<bits from the pool, reset
// to noMatchPos.
func acquireLookup(bits uint) []int32 {
	bufp := lookupPool.Get().(*[]int32)
	buf := (*bufp)[:1<<bits]

	for i := range buf {
		buf[i] = noMatchPos
	}

	return buf
}

// releaseLookup returns buf (acquired via acquireLookup) to the pool.
func releaseLookup(buf []int32) {
	full := buf[:cap(buf)]
	lookupPool.Put(&full)
}
