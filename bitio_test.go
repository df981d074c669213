// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import (
	"math/rand"
	"testing"
)

func TestBitWriterReader_RoundTrip(t *testing.T) {
	type field struct {
		val uint32
		num uint
	}

	cases := []struct {
		name   string
		fields []field
	}{
		{name: "single-bit", fields: []field{{1, 1}}},
		{name: "byte", fields: []field{{0xAB, 8}}},
		{name: "mixed-widths", fields: []field{{1, 1}, {0x3, 2}, {0x7F, 7}, {0, 1}, {0x1FFFF, 17}}},
		{name: "full-words", fields: []field{{0xDEADBEEF, 32}, {0xCAFEBABE, 32}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]byte, 64)
			w := newBitWriter(dst)
			for _, f := range tc.fields {
				w.put(f.val, f.num)
			}
			n := w.finalize()

			r := newBitReader(dst[:n])
			for i, f := range tc.fields {
				got := r.get(f.num)
				if f.num > 0 && got != f.val {
					t.Fatalf("field %d: got %#x want %#x", i, got, f.val)
				}
			}
		})
	}
}

func TestBitWriterReader_RandomFuzz(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var widths []uint
	var values []uint32
	for i := 0; i < 500; i++ {
		num := uint(rng.Intn(25) + 1)
		val := rng.Uint32() & ((1 << num) - 1)
		widths = append(widths, num)
		values = append(values, val)
	}

	dst := make([]byte, 4096)
	w := newBitWriter(dst)
	for i := range widths {
		w.put(values[i], widths[i])
	}
	n := w.finalize()

	r := newBitReader(dst[:n])
	for i := range widths {
		got := r.get(widths[i])
		if got != values[i] {
			t.Fatalf("field %d: got %#x want %#x (width %d)", i, got, values[i], widths[i])
		}
	}
}

func TestBitReader_MissingBytesReadAsZero(t *testing.T) {
	r := newBitReader(nil)
	if got := r.get(16); got != 0 {
		t.Fatalf("get on empty src: got %#x want 0", got)
	}
}
