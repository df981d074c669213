// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/gocrush/crush

package crush

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "one-byte", data: []byte("A")},
		{name: "three-bytes", data: []byte("ABC")},
		{name: "short-run", data: []byte("AAAAAAAA")},
		{name: "alternating", data: []byte("ABABABABABABABAB")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
	}
}

func allLevels() []int {
	return []int{LevelFast, LevelMedium, LevelThorough, LevelTreeGood, LevelTreeBest, LevelOptimal}
}

func TestPackDepack_RoundTripAcrossLevels(t *testing.T) {
	for _, in := range testInputSet() {
		for _, level := range allLevels() {
			name := fmt.Sprintf("%s/level-%d", in.name, level)
			t.Run(name, func(t *testing.T) {
				packed, err := PackLevel(in.data, level)
				if err != nil {
					t.Fatalf("PackLevel failed: %v", err)
				}

				if len(packed) > MaxPackedSize(len(in.data)) {
					t.Fatalf("packed size %d exceeds MaxPackedSize(%d)=%d", len(packed), len(in.data), MaxPackedSize(len(in.data)))
				}

				out := make([]byte, len(in.data))
				n, err := Depack(out, packed, len(in.data))
				if err != nil {
					t.Fatalf("Depack failed: %v", err)
				}

				if n != len(in.data) {
					t.Fatalf("depacked length mismatch: got %d want %d", n, len(in.data))
				}

				if !bytes.Equal(out, in.data) {
					t.Fatalf("round-trip mismatch for %q", in.name)
				}
			})
		}
	}
}

func TestPackLevel_IdempotentDeterminism(t *testing.T) {
	data := bytes.Repeat([]byte("idempotent-check-123"), 300)

	for _, level := range allLevels() {
		a, err := PackLevel(data, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}

		b, err := PackLevel(data, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}

		if !bytes.Equal(a, b) {
			t.Fatalf("level %d: two packs of the same input differ", level)
		}
	}
}

func TestPackLevel_FormatAgreementAcrossLevels(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, the quick brown fox")

	var want []byte
	for i, level := range allLevels() {
		packed, err := PackLevel(data, level)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}

		out := make([]byte, len(data))
		n, err := Depack(out, packed, len(data))
		if err != nil {
			t.Fatalf("level %d depack: %v", level, err)
		}

		if i == 0 {
			want = out[:n]
			continue
		}

		if !bytes.Equal(out[:n], want) {
			t.Fatalf("level %d decodes to a different result than level %d", level, allLevels()[0])
		}
	}
}

func TestPackLevel_OptimalityBound(t *testing.T) {
	data := bytes.Repeat([]byte("compressible-but-not-trivial-text "), 500)

	optimal, err := PackLevel(data, LevelOptimal)
	if err != nil {
		t.Fatalf("PackLevel(optimal): %v", err)
	}

	for _, level := range []int{LevelFast, LevelMedium, LevelThorough, LevelTreeGood, LevelTreeBest} {
		packed, err := PackLevel(data, level)
		if err != nil {
			t.Fatalf("PackLevel(%d): %v", level, err)
		}

		if len(optimal) > len(packed) {
			t.Fatalf("level 10 (%d bytes) is larger than level %d (%d bytes)", len(optimal), level, len(packed))
		}
	}
}

func TestPackLevel_1MiBRandomAtFastLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 1<<20)
	rng.Read(data)

	packed, err := PackLevel(data, LevelFast)
	if err != nil {
		t.Fatalf("PackLevel: %v", err)
	}

	if len(packed) > MaxPackedSize(len(data)) {
		t.Fatalf("packed size %d exceeds bound %d", len(packed), MaxPackedSize(len(data)))
	}

	out := make([]byte, len(data))
	n, err := Depack(out, packed, len(data))
	if err != nil {
		t.Fatalf("Depack: %v", err)
	}

	if n != len(data) || !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch for 1 MiB random input")
	}
}

func TestPackLevel_BoundaryEncodedSizes(t *testing.T) {
	cases := []struct {
		name      string
		data      []byte
		wantBytes int
	}{
		{name: "empty", data: []byte{}, wantBytes: 0},
		{name: "one-byte", data: []byte("A"), wantBytes: 2},
		{name: "three-bytes", data: []byte("ABC"), wantBytes: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			packed, err := PackLevel(tc.data, LevelOptimal)
			if err != nil {
				t.Fatalf("PackLevel: %v", err)
			}

			if len(packed) != tc.wantBytes {
				t.Fatalf("got %d bytes, want %d", len(packed), tc.wantBytes)
			}
		})
	}
}

func TestDepack_CorruptionDetection(t *testing.T) {
	t.Run("offset before start", func(t *testing.T) {
		w := newBitWriter(make([]byte, 16))
		emitMatch(&w, 5, MinMatch)
		n := w.finalize()
		src := make([]byte, n)
		copy(src, w.dst[:n])

		out := make([]byte, 10)
		if _, err := Depack(out, src, 10); err != ErrCorruptBitstream {
			t.Fatalf("got err=%v, want ErrCorruptBitstream", err)
		}
	})

	t.Run("short destination", func(t *testing.T) {
		if _, err := Depack(make([]byte, 2), nil, 10); err != ErrShortDepackDst {
			t.Fatalf("got err=%v, want ErrShortDepackDst", err)
		}
	})
}

func TestPackLevel_InvalidLevel(t *testing.T) {
	if _, err := PackLevel([]byte("x"), 4); err != ErrInvalidLevel {
		t.Fatalf("got err=%v, want ErrInvalidLevel", err)
	}

	if _, err := PackLevel([]byte("x"), 11); err != ErrInvalidLevel {
		t.Fatalf("got err=%v, want ErrInvalidLevel", err)
	}
}

func TestCompressDecompress_Options(t *testing.T) {
	data := bytes.Repeat([]byte("round trip via options "), 50)

	packed, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress(nil): %v", err)
	}

	out, err := Decompress(packed, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}

	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch via Compress/Decompress")
	}

	if _, err := Decompress(packed, nil); err != ErrOptionsRequired {
		t.Fatalf("got err=%v, want ErrOptionsRequired", err)
	}
}

func TestDecompressFromReader(t *testing.T) {
	data := bytes.Repeat([]byte("reader round trip "), 40)

	packed, err := Compress(data, nil)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}

	out, err := DecompressFromReader(bytes.NewReader(packed), DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("DecompressFromReader: %v", err)
	}

	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch")
	}

	_, err = DecompressFromReader(bytes.NewReader(packed), &DecompressOptions{OutLen: len(data), MaxInputSize: 1})
	if err != ErrInputTooLarge {
		t.Fatalf("got err=%v, want ErrInputTooLarge", err)
	}
}
