package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Zeroed(t *testing.T) {
	t.Run("grows when capacity is short", func(t *testing.T) {
		bb := NewByteBuffer(4)
		b := bb.Zeroed(16)
		require.Len(t, b, 16)
		require.Equal(t, make([]byte, 16), b)
	})

	t.Run("clears previous contents", func(t *testing.T) {
		bb := NewByteBuffer(32)
		_, _ = bb.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8})
		b := bb.Zeroed(8)
		require.Equal(t, make([]byte, 8), b)
		require.Equal(t, 8, bb.Len())
	})

	t.Run("shrinks length", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Zeroed(24)
		require.Len(t, bb.Zeroed(4), 4)
	})
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, err := bb.Write([]byte("SJA5"))
	require.NoError(t, err)

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, "SJA5", out.String())

	bb.Reset()
	require.Zero(t, bb.Len())
}

func TestBufferPool(t *testing.T) {
	t.Run("recycled buffers come back empty", func(t *testing.T) {
		p := NewBufferPool(16, 0)
		bb := p.Get()
		_, _ = bb.Write([]byte{0xFF, 0xFF})
		p.Put(bb)

		got := p.Get()
		require.Zero(t, got.Len())
	})

	t.Run("drops oversized buffers", func(t *testing.T) {
		p := NewBufferPool(16, 32)
		bb := p.Get()
		bb.Zeroed(64)
		p.Put(bb)

		got := p.Get()
		require.LessOrEqual(t, cap(got.B), 32)
	})

	t.Run("nil put is ignored", func(t *testing.T) {
		p := NewBufferPool(16, 0)
		require.NotPanics(t, func() { p.Put(nil) })
	})
}

func TestDefaultPools_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			bb := GetImageBuffer()
			defer PutImageBuffer(bb)

			b := bb.Zeroed(64 + n*4)
			for _, v := range b {
				if v != 0 {
					t.Errorf("buffer not zeroed")
					return
				}
			}
			b[0] = 0xAA

			sb := GetStagingBuffer()
			_, _ = sb.Write(b)
			PutStagingBuffer(sb)
		}(i)
	}
	wg.Wait()
}
