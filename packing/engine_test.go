package packing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sja1105/errs"
)

func TestEngine_DefaultLayout(t *testing.T) {
	t.Run("Low nibble lands in last byte", func(t *testing.T) {
		buf := make([]byte, 4)
		engine := DefaultEngine()

		require.NoError(t, engine.Pack(buf, 0xA, 3, 0))
		require.Equal(t, []byte{0x00, 0x00, 0x00, 0x0A}, buf)

		v, err := engine.Unpack(buf, 3, 0)
		require.NoError(t, err)
		require.Equal(t, uint64(0xA), v)
	})

	t.Run("Little endian quirk puts low nibble in first byte", func(t *testing.T) {
		buf := make([]byte, 4)
		engine := NewEngine(QuirkLittleEndian)

		require.NoError(t, engine.Pack(buf, 0xA, 3, 0))
		require.Equal(t, []byte{0x0A, 0x00, 0x00, 0x00}, buf)

		v, err := engine.Unpack(buf, 3, 0)
		require.NoError(t, err)
		require.Equal(t, uint64(0xA), v)
	})

	t.Run("Top bit is MSB of byte 0", func(t *testing.T) {
		buf := make([]byte, 8)
		require.NoError(t, DefaultEngine().Pack(buf, 1, 63, 63))
		require.Equal(t, byte(0x80), buf[0])
	})

	t.Run("MSB on the right reverses bits in a byte", func(t *testing.T) {
		buf := make([]byte, 4)
		require.NoError(t, NewEngine(QuirkMSBOnTheRight).Pack(buf, 1, 0, 0))
		require.Equal(t, []byte{0x00, 0x00, 0x00, 0x80}, buf)
	})

	t.Run("LSW32 first swaps words", func(t *testing.T) {
		buf := make([]byte, 8)
		require.NoError(t, NewEngine(QuirkLSW32IsFirst).Pack(buf, 0x11223344, 31, 0))
		require.Equal(t, []byte{0x11, 0x22, 0x33, 0x44, 0, 0, 0, 0}, buf)

		buf = make([]byte, 8)
		require.NoError(t, DefaultEngine().Pack(buf, 0x11223344, 31, 0))
		require.Equal(t, []byte{0, 0, 0, 0, 0x11, 0x22, 0x33, 0x44}, buf)
	})

	t.Run("Field crossing byte boundary", func(t *testing.T) {
		buf := make([]byte, 4)
		require.NoError(t, DefaultEngine().Pack(buf, 0x1FF, 12, 4))
		require.Equal(t, []byte{0x00, 0x00, 0x1F, 0xF0}, buf)
	})
}

func TestEngine_RoundTripAllQuirks(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, q := range AllQuirkCombinations() {
		engine := NewEngine(q)
		for _, size := range []int{4, 8, 12, 16} {
			t.Run(fmt.Sprintf("%s/%d", q, size), func(t *testing.T) {
				for width := 1; width <= 64; width++ {
					for lo := 0; lo+width <= size*8; lo++ {
						hi := lo + width - 1
						buf := make([]byte, size)
						v := rng.Uint64()

						require.NoError(t, engine.Pack(buf, v, hi, lo))
						got, err := engine.Unpack(buf, hi, lo)
						require.NoError(t, err)
						require.Equal(t, v&widthMask(width), got, "width=%d lo=%d", width, lo)
					}
				}
			})
		}
	}
}

func TestEngine_NonOverlap(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, q := range AllQuirkCombinations() {
		engine := NewEngine(q)
		t.Run(q.String(), func(t *testing.T) {
			for i := 0; i < 500; i++ {
				// Two disjoint spans inside a 16 byte buffer: A below B.
				aLo := rng.Intn(64)
				aHi := aLo + rng.Intn(min(64, 127-aLo))
				bLo := aHi + 1 + rng.Intn(127-aHi)
				bHi := bLo + rng.Intn(min(64, 128-bLo))

				buf := make([]byte, 16)
				a, b := rng.Uint64(), rng.Uint64()
				require.NoError(t, engine.Pack(buf, a, aHi, aLo))
				require.NoError(t, engine.Pack(buf, b, bHi, bLo))

				gotA, err := engine.Unpack(buf, aHi, aLo)
				require.NoError(t, err)
				require.Equal(t, a&widthMask(aHi-aLo+1), gotA)

				gotB, err := engine.Unpack(buf, bHi, bLo)
				require.NoError(t, err)
				require.Equal(t, b&widthMask(bHi-bLo+1), gotB)
			}
		})
	}
}

func TestEngine_PackPreservesNeighbours(t *testing.T) {
	buf := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	require.NoError(t, DefaultEngine().Pack(buf, 0, 11, 4))
	require.Equal(t, []byte{0xFF, 0xFF, 0xF0, 0x0F}, buf)
}

func TestEngine_Errors(t *testing.T) {
	engine := DefaultEngine()

	tests := []struct {
		name    string
		size    int
		hi, lo  int
		quirks  Quirks
		wantErr error
	}{
		{"Inverted range", 4, 3, 4, 0, errs.ErrInvalidRange},
		{"Negative low bit", 4, 3, -1, 0, errs.ErrInvalidRange},
		{"Wider than 64 bits", 16, 64, 0, 0, errs.ErrOutOfRange},
		{"High bit past buffer", 4, 32, 0, 0, errs.ErrOutOfRange},
		{"Unaligned buffer with little endian", 6, 3, 0, QuirkLittleEndian, errs.ErrOutOfRange},
		{"Unaligned buffer with lsw32 first", 6, 3, 0, QuirkLSW32IsFirst, errs.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := engine
			if tt.quirks != 0 {
				e = NewEngine(tt.quirks)
			}

			buf := make([]byte, tt.size)
			v := uint64(0xFFFF)
			err := e.Packing(buf, &v, tt.hi, tt.lo, Pack)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, make([]byte, tt.size), buf, "failed pack must not touch the buffer")

			v = 0x1234
			err = e.Packing(buf, &v, tt.hi, tt.lo, Unpack)
			require.ErrorIs(t, err, tt.wantErr)
			require.Equal(t, uint64(0x1234), v)
		})
	}

	t.Run("Unaligned buffer without quirks is fine", func(t *testing.T) {
		buf := make([]byte, 6)
		require.NoError(t, engine.Pack(buf, 0x3, 41, 40))
		require.Equal(t, byte(0x03), buf[0])
	})
}

func TestEngine_Uint32(t *testing.T) {
	for _, q := range AllQuirkCombinations() {
		engine := NewEngine(q)
		buf := make([]byte, 4)
		require.NoError(t, engine.PutUint32(buf, 0xDEADBEEF))

		v, err := engine.Uint32(buf)
		require.NoError(t, err)
		require.Equal(t, uint32(0xDEADBEEF), v)
	}
}

func TestNewEngine_DropsUnknownBits(t *testing.T) {
	engine := NewEngine(0xF0 | QuirkLittleEndian)
	require.Equal(t, QuirkLittleEndian, engine.Quirks())
}

func BenchmarkEngine_Pack(b *testing.B) {
	engine := NewEngine(QuirkLSW32IsFirst)
	buf := make([]byte, 16)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = engine.Pack(buf, uint64(i), 89, 42)
	}
}

func BenchmarkEngine_Unpack(b *testing.B) {
	engine := NewEngine(QuirkLSW32IsFirst)
	buf := make([]byte, 16)
	_ = engine.Pack(buf, 0xABCDEF, 89, 42)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = engine.Unpack(buf, 89, 42)
	}
}
