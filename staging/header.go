package staging

import (
	"fmt"

	"github.com/arloliu/sja1105/endian"
	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

const (
	// HeaderSize is the size of the staging header in bytes.
	HeaderSize = 32
	// Version is the staging format version written by Encode.
	Version = 1
	// MaxImageSize bounds the raw image length accepted by Decode.
	MaxImageSize = 1 << 24
)

var magic = [4]byte{'S', 'J', 'A', '5'}

// Header is the fixed-size preamble of a staging file.
type Header struct {
	Version     uint8
	Compression format.CompressionType
	Quirks      packing.Quirks
	DeviceID    format.DeviceID
	RawLen      uint32
	StoredLen   uint32
	Digest      uint64
}

func (h Header) String() string {
	return fmt.Sprintf("v%d %s quirks=%s %s raw=%d stored=%d digest=%016x",
		h.Version, h.DeviceID, h.Quirks, h.Compression, h.RawLen, h.StoredLen, h.Digest)
}

// AppendTo appends the encoded header to buf.
func (h Header) AppendTo(buf []byte) []byte {
	le := endian.GetLittleEndianEngine()

	buf = append(buf, magic[:]...)
	buf = append(buf, h.Version, uint8(h.Compression), uint8(h.Quirks), 0)
	buf = le.AppendUint32(buf, uint32(h.DeviceID))
	buf = le.AppendUint32(buf, h.RawLen)
	buf = le.AppendUint32(buf, h.StoredLen)
	buf = le.AppendUint64(buf, h.Digest)
	buf = le.AppendUint32(buf, 0)

	return buf
}

// ParseHeader decodes the header at the front of data.
//
// Returns:
//   - errs.ErrTruncatedInput if data is shorter than HeaderSize
//   - errs.ErrInvalidStagingFile for a bad magic, version or length
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: staging header needs %d bytes, have %d",
			errs.ErrTruncatedInput, HeaderSize, len(data))
	}

	if [4]byte(data[:4]) != magic {
		return Header{}, fmt.Errorf("%w: bad magic %q", errs.ErrInvalidStagingFile, data[:4])
	}

	le := endian.GetLittleEndianEngine()
	h := Header{
		Version:     data[4],
		Compression: format.CompressionType(data[5]),
		Quirks:      packing.Quirks(data[6]),
		DeviceID:    format.DeviceID(le.Uint32(data[8:12])),
		RawLen:      le.Uint32(data[12:16]),
		StoredLen:   le.Uint32(data[16:20]),
		Digest:      le.Uint64(data[20:28]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: version %d", errs.ErrInvalidStagingFile, h.Version)
	}

	if h.RawLen > MaxImageSize {
		return Header{}, fmt.Errorf("%w: raw length %d exceeds %d", errs.ErrInvalidStagingFile, h.RawLen, MaxImageSize)
	}

	if packing.NewEngine(h.Quirks).Quirks() != h.Quirks {
		return Header{}, fmt.Errorf("%w: unknown quirk bits 0x%02x", errs.ErrInvalidStagingFile, uint8(h.Quirks))
	}

	return h, nil
}
