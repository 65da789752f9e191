package section

import (
	"fmt"

	"github.com/arloliu/sja1105/checksum"
	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
)

// TableHeader is the 12-byte record preceding every table in a static configuration.
type TableHeader struct {
	// BlockID identifies the table kind. bits 31:24
	BlockID format.BlockID
	// Len is the body length in 32-bit words, excluding header and body CRC. bits 55:32
	Len uint32
	// CRC protects the first 8 bytes of the header. bits 95:64
	CRC uint32
}

// NewTableHeader creates a header for a table body of bodyBytes bytes.
//
// Returns:
//   - errs.ErrTableLengthMismatch if bodyBytes is not a whole number of words
//   - errs.ErrOutOfRange if the body does not fit the 24-bit length field
func NewTableHeader(id format.BlockID, bodyBytes int) (TableHeader, error) {
	if bodyBytes%WordSize != 0 {
		return TableHeader{}, fmt.Errorf("%w: %s body of %d bytes is not word aligned",
			errs.ErrTableLengthMismatch, id, bodyBytes)
	}

	words := bodyBytes / WordSize
	if words > MaxTableLen {
		return TableHeader{}, fmt.Errorf("%w: %s body of %d words", errs.ErrOutOfRange, id, words)
	}

	return TableHeader{BlockID: id, Len: uint32(words)}, nil
}

// BodySize returns the body length in bytes.
func (h TableHeader) BodySize() int {
	return int(h.Len) * WordSize
}

// IsTerminator reports whether the header ends the image.
func (h TableHeader) IsTerminator() bool {
	return h.Len == 0
}

func (h TableHeader) String() string {
	return fmt.Sprintf("%s len=%d crc=0x%08x", h.BlockID, h.Len, h.CRC)
}

// layout walks the header fields.
func (h *TableHeader) layout(f *packing.Fields) error {
	blockID := uint64(h.BlockID)
	length := uint64(h.Len)
	crc := uint64(h.CRC)

	f.Uint64(&blockID, headerBlockIDHi, headerBlockIDLo)
	f.Uint64(&length, headerLenHi, headerLenLo)
	f.Uint64(&crc, headerCRCHi, headerCRCLo)
	if err := f.Err(); err != nil {
		return err
	}

	if f.Direction() == packing.Unpack {
		h.BlockID = format.BlockID(blockID)
		h.Len = uint32(length)
		h.CRC = uint32(crc)
	}

	return nil
}

// Pack writes the header, CRC field included as is, into buf.
//
// Parameters:
//   - engine: packing engine for the image's quirk mode
//   - buf: destination, exactly TableHeaderSize bytes
func (h TableHeader) Pack(engine packing.Engine, buf []byte) error {
	if len(buf) != TableHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	return h.layout(packing.NewFields(engine, buf, packing.Pack))
}

// PackWithCRC computes the header CRC, stores it in h.CRC and writes the header into buf.
//
// The CRC covers the two words holding bits [63:0], so it is computed after
// block id and length are in place and then patched into bits [95:64].
func (h *TableHeader) PackWithCRC(engine packing.Engine, buf []byte) error {
	h.CRC = 0
	if err := h.Pack(engine, buf); err != nil {
		return err
	}

	h.CRC = checksum.CRC32(engine, crcCovered(engine, buf))

	return engine.Pack(buf, uint64(h.CRC), headerCRCHi, headerCRCLo)
}

// Unpack reads the header from buf.
func (h *TableHeader) Unpack(engine packing.Engine, buf []byte) error {
	if len(buf) != TableHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	return h.layout(packing.NewFields(engine, buf, packing.Unpack))
}

// Bytes serializes the header with a freshly computed CRC.
func (h TableHeader) Bytes(engine packing.Engine) ([]byte, error) {
	b := make([]byte, TableHeaderSize)
	if err := h.PackWithCRC(engine, b); err != nil {
		return nil, err
	}

	return b, nil
}

// VerifyCRC checks the header CRC stored in a packed header.
func VerifyCRC(engine packing.Engine, buf []byte) error {
	if len(buf) < TableHeaderSize {
		return fmt.Errorf("%w: header needs %d bytes, have %d", errs.ErrTruncatedInput, TableHeaderSize, len(buf))
	}

	stored, err := engine.Unpack(buf[:TableHeaderSize], headerCRCHi, headerCRCLo)
	if err != nil {
		return err
	}

	if computed := checksum.CRC32(engine, crcCovered(engine, buf)); uint32(stored) != computed {
		return fmt.Errorf("%w: header crc 0x%08x, computed 0x%08x", errs.ErrCrcMismatch, stored, computed)
	}

	return nil
}

// crcCovered returns the 8 bytes of a packed header that hold bits [63:0].
// Only QuirkLSW32IsFirst moves the CRC word from the front of the buffer to the back.
func crcCovered(engine packing.Engine, buf []byte) []byte {
	if engine.Quirks().Has(packing.QuirkLSW32IsFirst) {
		return buf[:headerCRCCovered]
	}

	return buf[TableCRCSize:TableHeaderSize]
}

// ParseTableHeader parses a TableHeader from the front of data.
//
// Parameters:
//   - engine: packing engine for the image's quirk mode
//   - data: byte slice starting with a header (at least 12 bytes)
//
// Returns:
//   - TableHeader: parsed header
//   - error: errs.ErrTruncatedInput if data is too short
func ParseTableHeader(engine packing.Engine, data []byte) (TableHeader, error) {
	if len(data) < TableHeaderSize {
		return TableHeader{}, fmt.Errorf("%w: header needs %d bytes, have %d",
			errs.ErrTruncatedInput, TableHeaderSize, len(data))
	}

	h := TableHeader{}
	if err := h.Unpack(engine, data[:TableHeaderSize]); err != nil {
		return TableHeader{}, err
	}

	return h, nil
}
