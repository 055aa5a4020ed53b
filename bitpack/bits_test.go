package bitpack

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// refBit and refSetBit address a single LSB0 bit and are the oracle for the
// word level primitives.
func refBit[W Word](buf []W, i uint64) uint64 {
	wb := uint64(WordBits[W]())
	return uint64(buf[i/wb]>>(i%wb)) & 1
}

func refSetBit[W Word](buf []W, i uint64, v uint64) {
	wb := uint64(WordBits[W]())
	if v&1 == 1 {
		buf[i/wb] |= W(1) << (i % wb)
		return
	}
	buf[i/wb] &^= W(1) << (i % wb)
}

func refExtract[W Word](buf []W, offset uint64, width uint) uint64 {
	var v uint64
	for j := uint(0); j < width; j++ {
		v |= refBit(buf, offset+uint64(j)) << j
	}
	return v
}

func testExtractInsert[W Word](t *testing.T) {
	t.Helper()
	rng := rand.New(rand.NewPCG(1, 2))
	wb := WordBits[W]()
	const words = 4

	for width := uint(0); width <= wb; width++ {
		span := uint64(words)*uint64(wb) - uint64(width)
		for offset := uint64(0); offset <= span; offset++ {
			buf := make([]W, words)
			for i := range buf {
				buf[i] = W(rng.Uint64())
			}
			before := append([]W(nil), buf...)
			value := rng.Uint64() & mask(width)

			Insert(buf, offset, width, value)

			require.Equal(t, value, Extract(buf, offset, width), "width=%d offset=%d", width, offset)
			require.Equal(t, value, refExtract(buf, offset, width), "width=%d offset=%d", width, offset)

			// Bits outside the destination span are untouched.
			for i := uint64(0); i < uint64(words)*uint64(wb); i++ {
				if i >= offset && i < offset+uint64(width) {
					continue
				}
				if refBit(before, i) != refBit(buf, i) {
					t.Fatalf("width=%d offset=%d: bit %d changed", width, offset, i)
				}
			}
		}
	}
}

func TestExtractInsert8(t *testing.T)  { testExtractInsert[uint8](t) }
func TestExtractInsert16(t *testing.T) { testExtractInsert[uint16](t) }
func TestExtractInsert32(t *testing.T) { testExtractInsert[uint32](t) }
func TestExtractInsert64(t *testing.T) { testExtractInsert[uint64](t) }

func TestExtractMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	buf := make([]uint32, 8)
	for i := 0; i < 256; i++ {
		refSetBit(buf, uint64(i), rng.Uint64())
	}
	for width := uint(1); width <= 32; width++ {
		for offset := uint64(0); offset+uint64(width) <= 256; offset++ {
			require.Equal(t, refExtract(buf, offset, width), Extract(buf, offset, width))
		}
	}
}

func TestInsertStraddlingByte(t *testing.T) {
	// A 3 bit code at offset 6 puts two bits at the top of byte 0 and one at
	// the bottom of byte 1.
	buf := make([]uint8, 2)
	Insert(buf, 6, 3, 0b101)
	require.Equal(t, []uint8{0b0100_0000, 0b0000_0001}, buf)
	require.Equal(t, uint64(0b101), Extract(buf, 6, 3))

	// Overwriting clears the previous code first.
	Insert(buf, 6, 3, 0b010)
	require.Equal(t, []uint8{0b1000_0000, 0b0000_0000}, buf)
	require.Equal(t, uint64(0b010), Extract(buf, 6, 3))
}

func TestInsertMasksValue(t *testing.T) {
	buf := make([]uint64, 1)
	Insert(buf, 4, 2, 0xff)
	require.Equal(t, []uint64{0b11 << 4}, buf)
}

func TestZeroWidth(t *testing.T) {
	buf := []uint8{0xff}
	Insert(buf, 3, 0, 1)
	require.Equal(t, []uint8{0xff}, buf)
	require.Equal(t, uint64(0), Extract(buf, 3, 0))
}

func TestClearFrom(t *testing.T) {
	buf := []uint8{0xff, 0xff, 0xff}
	ClearFrom(buf, 11)
	require.Equal(t, []uint8{0xff, 0b0000_0111, 0}, buf)
	require.True(t, ZeroFrom(buf, 11))
	require.False(t, ZeroFrom(buf, 10))

	buf = []uint8{0xff, 0xff}
	ClearFrom(buf, 16)
	require.Equal(t, []uint8{0xff, 0xff}, buf)
	require.True(t, ZeroFrom(buf, 16))

	buf = []uint8{0xff, 0xff}
	ClearFrom(buf, 8)
	require.Equal(t, []uint8{0xff, 0}, buf)

	words := []uint64{^uint64(0)}
	ClearFrom(words, 0)
	require.Equal(t, []uint64{0}, words)
}

func TestZeroFrom(t *testing.T) {
	require.True(t, ZeroFrom([]uint32{}, 0))
	require.True(t, ZeroFrom([]uint32{0x7}, 3))
	require.False(t, ZeroFrom([]uint32{0xf}, 3))
	require.False(t, ZeroFrom([]uint32{0x7, 0, 1}, 3))
}
