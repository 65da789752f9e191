// Package packing provides the bit-field codec used to lay out chip tables in byte buffers.
//
// A field is addressed by an inclusive (hi, lo) bit span. Bit 0 is the least
// significant bit of the whole buffer under the engine's quirk mode: with no
// quirks the buffer is a big-endian bit stream, so the most significant bit of
// byte 0 has index len(buf)*8-1.
//
// # Basic Usage
//
//	engine := packing.NewEngine(packing.QuirkLSW32IsFirst)
//
//	buf := make([]byte, 8)
//	if err := engine.Pack(buf, 0x1ff, 40, 32); err != nil {
//	    return err
//	}
//	v, err := engine.Unpack(buf, 40, 32)
//
// Pack only touches the addressed bits. Callers that build a fresh buffer
// must start from a zeroed one; the engine never clears anything else.
//
// # Thread Safety
//
// Engine is an immutable value. All functions and methods in this package are
// safe for concurrent use as long as goroutines do not share a buffer.
package packing

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/sja1105/errs"
)

// Direction selects whether a field walk writes values into the buffer or reads them out.
type Direction uint8

const (
	// Pack copies values into the buffer.
	Pack Direction = iota
	// Unpack copies values out of the buffer.
	Unpack
)

func (d Direction) String() string {
	if d == Pack {
		return "pack"
	}

	return "unpack"
}

// MaxFieldWidth is the widest field the codec can carry.
const MaxFieldWidth = 64

// Engine packs and unpacks bit fields under a fixed quirk mode.
//
// The zero value is the default (quirk free) engine.
type Engine struct {
	quirks Quirks
}

// NewEngine returns an engine for the given quirk flags. Unknown bits are dropped.
func NewEngine(q Quirks) Engine {
	return Engine{quirks: q & quirkMask}
}

// DefaultEngine returns the quirk free engine.
func DefaultEngine() Engine {
	return Engine{}
}

// Quirks returns the quirk flags captured by the engine.
func (e Engine) Quirks() Quirks {
	return e.quirks
}

func (e Engine) String() string {
	return "packing.Engine(" + e.quirks.String() + ")"
}

// Check validates a (hi, lo) span against a buffer length without touching any buffer.
//
// Returns:
//   - errs.ErrInvalidRange if hi < lo or lo is negative
//   - errs.ErrOutOfRange if the field is wider than 64 bits, hi falls outside
//     the buffer, or the quirks need 32-bit groups and bufLen is not a multiple of 4
func (e Engine) Check(bufLen, hi, lo int) error {
	if lo < 0 || hi < lo {
		return fmt.Errorf("%w: [%d:%d]", errs.ErrInvalidRange, hi, lo)
	}

	if width := hi - lo + 1; width > MaxFieldWidth {
		return fmt.Errorf("%w: field [%d:%d] is %d bits wide", errs.ErrOutOfRange, hi, lo, width)
	}

	if hi >= bufLen*8 {
		return fmt.Errorf("%w: bit %d in a %d byte buffer", errs.ErrOutOfRange, hi, bufLen)
	}

	if e.quirks.wordAligned() && bufLen%4 != 0 {
		return fmt.Errorf("%w: %d byte buffer is not a whole number of words for quirks %s",
			errs.ErrOutOfRange, bufLen, e.quirks)
	}

	return nil
}

// Packing moves the (hi, lo) field between *v and buf in the given direction.
//
// Pack writes the low hi-lo+1 bits of *v and leaves every other bit of buf
// untouched. Unpack stores the field into *v zero-extended to 64 bits. On
// error neither buf nor *v is modified.
func (e Engine) Packing(buf []byte, v *uint64, hi, lo int, dir Direction) error {
	if err := e.Check(len(buf), hi, lo); err != nil {
		return err
	}

	width := hi - lo + 1
	var val uint64
	if dir == Pack {
		val = *v & widthMask(width)
	}

	var (
		n         = len(buf)
		msbRight  = e.quirks.Has(QuirkMSBOnTheRight)
		littleEnd = e.quirks.Has(QuirkLittleEndian)
		lswFirst  = e.quirks.Has(QuirkLSW32IsFirst)
		firstBox  = hi / 8
		lastBox   = lo / 8
	)

	for box := firstBox; box >= lastBox; box-- {
		boxStart, boxEnd := 7, 0
		if box == firstBox {
			boxStart = hi % 8
		}
		if box == lastBox {
			boxEnd = lo % 8
		}

		chunkWidth := boxStart - boxEnd + 1
		chunkMask := uint8(widthMask(chunkWidth))
		projEnd := box*8 + boxEnd - lo

		addr := physicalAddress(box, n, littleEnd, lswFirst)

		logical := buf[addr]
		if msbRight {
			logical = bits.Reverse8(logical)
		}

		if dir == Unpack {
			chunk := (logical >> boxEnd) & chunkMask
			val |= uint64(chunk) << projEnd

			continue
		}

		chunk := uint8(val>>projEnd) & chunkMask
		logical = logical&^(chunkMask<<boxEnd) | chunk<<boxEnd
		if msbRight {
			logical = bits.Reverse8(logical)
		}
		buf[addr] = logical
	}

	if dir == Unpack {
		*v = val
	}

	return nil
}

// Pack writes value into the (hi, lo) field of buf.
func (e Engine) Pack(buf []byte, value uint64, hi, lo int) error {
	return e.Packing(buf, &value, hi, lo, Pack)
}

// Unpack reads the (hi, lo) field of buf.
func (e Engine) Unpack(buf []byte, hi, lo int) (uint64, error) {
	var v uint64
	if err := e.Packing(buf, &v, hi, lo, Unpack); err != nil {
		return 0, err
	}

	return v, nil
}

// Uint32 reads bits [31:0] of a 4-byte buffer.
func (e Engine) Uint32(buf []byte) (uint32, error) {
	v, err := e.Unpack(buf, 31, 0)
	return uint32(v), err
}

// PutUint32 writes v into bits [31:0] of a 4-byte buffer.
func (e Engine) PutUint32(buf []byte, v uint32) error {
	return e.Pack(buf, uint64(v), 31, 0)
}

// physicalAddress maps logical byte index box (0 = least significant) of an
// n byte buffer to its offset in memory.
func physicalAddress(box, n int, littleEnd, lswFirst bool) int {
	addr := n - box - 1
	if littleEnd {
		addr = addr - addr%4 + 3 - addr%4
	}
	if lswFirst {
		word := n/4 - addr/4 - 1
		addr = word*4 + addr%4
	}

	return addr
}

func widthMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<width - 1
}
