// Package pool keeps reusable byte buffers for assembled images and staging files.
package pool

import (
	"io"
	"sync"
)

const (
	// ImageBufferDefaultSize fits a typical configuration with full L2 and VLAN tables.
	ImageBufferDefaultSize  = 1024 * 64  // 64KiB
	ImageBufferMaxThreshold = 1024 * 512 // 512KiB

	StagingBufferDefaultSize  = 1024 * 16
	StagingBufferMaxThreshold = 1024 * 512
)

// ByteBuffer is a growable byte slice handed out by a BufferPool.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates an empty buffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, capacity)}
}

// Bytes returns the buffer contents.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the number of bytes in the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset empties the buffer and keeps its memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Zeroed resets the buffer to n zero bytes and returns them.
//
// Entry codecs only touch the bits of their own fields, so image buffers
// must start out zeroed; a recycled buffer still holds the previous image.
func (bb *ByteBuffer) Zeroed(n int) []byte {
	if cap(bb.B) < n {
		bb.B = make([]byte, n)
		return bb.B
	}

	bb.B = bb.B[:n]
	clear(bb.B)

	return bb.B
}

// Write appends data to the buffer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteTo writes the buffer contents to w.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// BufferPool recycles ByteBuffers. Buffers that grew beyond maxThreshold
// are dropped instead of pooled.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool whose new buffers have defaultSize capacity.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *BufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns bb to the pool. The caller must not use bb afterwards.
func (p *BufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var (
	imagePool   = NewBufferPool(ImageBufferDefaultSize, ImageBufferMaxThreshold)
	stagingPool = NewBufferPool(StagingBufferDefaultSize, StagingBufferMaxThreshold)
)

// GetImageBuffer returns a buffer for assembling a static configuration image.
func GetImageBuffer() *ByteBuffer { return imagePool.Get() }

// PutImageBuffer returns an image buffer to its pool.
func PutImageBuffer(bb *ByteBuffer) { imagePool.Put(bb) }

// GetStagingBuffer returns a buffer for building a staging file.
func GetStagingBuffer() *ByteBuffer { return stagingPool.Get() }

// PutStagingBuffer returns a staging buffer to its pool.
func PutStagingBuffer(bb *ByteBuffer) { stagingPool.Put(bb) }
