package xsize

import (
	"math/big"
	"slices"
	"strings"
	"testing"
)

// =============================================================================
// Format 模糊测试
// =============================================================================

func FuzzFormat(f *testing.F) {
	f.Add(uint64(0), false, uint8(2))
	f.Add(uint64(1023), false, uint8(2))
	f.Add(uint64(1024), false, uint8(0))
	f.Add(uint64(1000), true, uint8(3))
	f.Add(uint64(1<<63), true, uint8(5))
	f.Add(^uint64(0), false, uint8(2))

	binary := Symbols(Binary)
	si := Symbols(SI)

	f.Fuzz(func(t *testing.T, size uint64, useSI bool, places uint8) {
		p := int(places % 16)
		s, err := FormatUint64(size, WithSIUnits(useSI), WithPlaces(p))
		if err != nil {
			t.Fatalf("FormatUint64(%d) failed: %v", size, err)
		}

		num, sym, ok := strings.Cut(s, " ")
		if !ok {
			t.Fatalf("missing space in %q", s)
		}
		symbols := binary
		if useSI {
			symbols = si
		}
		if !slices.Contains(symbols, sym) {
			t.Fatalf("unexpected symbol %q in %q", sym, s)
		}

		intPart, frac, hasFrac := strings.Cut(num, ".")
		if hasFrac && len(frac) != p {
			t.Fatalf("fraction of %q has %d digits, want %d", s, len(frac), p)
		}
		if sym == "B" && (hasFrac || intPart != new(big.Int).SetUint64(size).String()) {
			t.Fatalf("byte tier must print exact integer, got %q for %d", s, size)
		}
		if intPart == "0" && size != 0 {
			t.Fatalf("non-zero size rendered as zero: %q", s)
		}
	})
}
