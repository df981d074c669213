// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import (
	"bytes"
	"testing"
)

func TestWorkMemSize_MatchesLevelFormula(t *testing.T) {
	cases := []struct {
		n     int
		level int
		want  int
	}{
		{n: 1000, level: LevelFast, want: max(3*1000, 1000+lookupSize) * workMemWordSize},
		{n: 1000, level: LevelOptimal, want: (5*1000 + 3 + lookupSize) * workMemWordSize},
	}

	for _, tc := range cases {
		got, err := WorkMemSize(tc.n, tc.level)
		if err != nil {
			t.Fatalf("WorkMemSize(%d, %d): %v", tc.n, tc.level, err)
		}

		if got != tc.want {
			t.Fatalf("WorkMemSize(%d, %d) = %d, want %d", tc.n, tc.level, got, tc.want)
		}
	}

	if _, err := WorkMemSize(100, 4); err != ErrInvalidLevel {
		t.Fatalf("got err=%v, want ErrInvalidLevel", err)
	}
}

func TestPackLevelWorkMem_RoundTripAndShortBuffer(t *testing.T) {
	data := bytes.Repeat([]byte("work-memory arena round trip "), 200)

	for _, level := range allLevels() {
		bytesNeeded, err := WorkMemSize(len(data), level)
		if err != nil {
			t.Fatalf("WorkMemSize: %v", err)
		}

		workmem := make([]int32, bytesNeeded/workMemWordSize)
		dst := make([]byte, MaxPackedSize(len(data)))

		n, err := PackLevelWorkMem(dst, data, workmem, level)
		if err != nil {
			t.Fatalf("level %d: PackLevelWorkMem: %v", level, err)
		}

		out := make([]byte, len(data))
		m, err := Depack(out, dst[:n], len(data))
		if err != nil {
			t.Fatalf("level %d: Depack: %v", level, err)
		}

		if m != len(data) || !bytes.Equal(out, data) {
			t.Fatalf("level %d: round-trip mismatch via PackLevelWorkMem", level)
		}

		short := make([]int32, 1)
		if _, err := PackLevelWorkMem(dst, data, short, level); err != ErrShortWorkMem {
			t.Fatalf("level %d: got err=%v, want ErrShortWorkMem", level, err)
		}
	}
}

func TestMaxPackedSize(t *testing.T) {
	if got := MaxPackedSize(0); got != 64 {
		t.Fatalf("MaxPackedSize(0) = %d, want 64", got)
	}

	if got := MaxPackedSize(800); got != 800+800/8+64 {
		t.Fatalf("MaxPackedSize(800) = %d, want %d", got, 800+800/8+64)
	}
}
