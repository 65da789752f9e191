// Package endian provides the byte order used by fixed-width host file
// records such as the staging header.
//
// Chip images never go through this package: their byte and bit order is
// a quirk mode of packing.Engine. Host-side records are plain little-endian
// integers.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//
//	buf = engine.AppendUint32(buf, rawLen)
//	rawLen = engine.Uint32(buf[12:16])
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
