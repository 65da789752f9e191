// Package checksum implements the CRC-32 used by the switch to protect
// table headers and table bodies in a static configuration image.
//
// The polynomial is the Ethernet one (0x04C11DB7, reflected 0xEDB88320) with
// the usual all-ones preset and final inversion. What is chip specific is the
// byte order: the buffer is consumed as 32-bit words read through the packing
// engine, each word fed least significant byte first.
package checksum

import (
	"hash/crc32"

	"github.com/arloliu/sja1105/packing"
)

var ieeeTable = crc32.MakeTable(crc32.IEEE)

// CRC32 computes the chip CRC of buf under the given engine.
//
// A trailing partial word, which never occurs in a well formed image, is fed
// in buffer order.
func CRC32(engine packing.Engine, buf []byte) uint32 {
	var (
		crc  uint32
		word [4]byte
	)

	full := len(buf) - len(buf)%4
	for i := 0; i < full; i += 4 {
		// bits [31:0] of a 4-byte slice are always in range
		v, _ := engine.Uint32(buf[i : i+4])

		word[0] = byte(v)
		word[1] = byte(v >> 8)
		word[2] = byte(v >> 16)
		word[3] = byte(v >> 24)
		crc = crc32.Update(crc, ieeeTable, word[:])
	}

	if full < len(buf) {
		crc = crc32.Update(crc, ieeeTable, buf[full:])
	}

	return crc
}
