// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import "math"

// Compression levels (spec §4.3/§4.4 "Level mapping"). 5-7 select the
// chain parser, 8-10 the tree parser; 10 is exhaustive (unbounded depth
// and accept length).
const (
	LevelFast     = 5
	LevelMedium   = 6
	LevelThorough = 7
	LevelTreeGood = 8
	LevelTreeBest = 9
	LevelOptimal  = 10

	LevelDefault = LevelMedium
)

// levelParams holds the two knobs both parsers' chain/tree walks respect:
// maxDepth caps how many candidates are examined per position, acceptLen
// is the match length at or above which the search stops early.
type levelParams struct {
	maxDepth  int
	acceptLen int
	useTree   bool
}

// unbounded stands in for the "exhaustive" (infinite) level 10 knobs.
const unbounded = math.MaxInt32

var levelTable = map[int]levelParams{
	LevelFast:     {maxDepth: 1, acceptLen: 16, useTree: false},
	LevelMedium:   {maxDepth: 8, acceptLen: 32, useTree: false},
	LevelThorough: {maxDepth: 64, acceptLen: 64, useTree: false},
	LevelTreeGood: {maxDepth: 16, acceptLen: 96, useTree: true},
	LevelTreeBest: {maxDepth: 32, acceptLen: 224, useTree: true},
	LevelOptimal:  {maxDepth: unbounded, acceptLen: unbounded, useTree: true},
}

func lookupLevel(level int) (levelParams, error) {
	p, ok := levelTable[level]
	if !ok {
		return levelParams{}, ErrInvalidLevel
	}

	return p, nil
}

// workMemWordSize is the machine word size (bytes) the work-memory
// formulas in spec §6 are denominated in.
const workMemWordSize = 4

// MaxPackedSize returns the largest number of bytes PackLevel can ever
// produce for an n-byte input (spec §6).
func MaxPackedSize(n int) int {
	return n + n/8 + 64
}

// WorkMemSize returns the number of bytes of work memory to give
// PackLevelWorkMem for an n-byte input at the given level (spec §6, §4.3,
// §4.4).
// Returns ErrInvalidLevel for a level outside [LevelFast, LevelOptimal].
func WorkMemSize(n, level int) (int, error) {
	p, err := lookupLevel(level)
	if err != nil {
		return 0, err
	}

	var words int
	if p.useTree {
		words = 5*n + 3 + lookupSize
	} else {
		words = max(3*n, n+lookupSize)
	}

	return words * workMemWordSize, nil
}
