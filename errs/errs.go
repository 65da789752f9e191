// Package errs defines the sentinel errors returned by the sja1105 packages.
//
// Errors are wrapped with additional context using fmt.Errorf and "%w", so
// callers should compare with errors.Is rather than ==.
package errs

import "errors"

// Bit-field codec errors.
var (
	// ErrInvalidRange is returned when a bit-field span is malformed (high bit below low bit).
	ErrInvalidRange = errors.New("invalid bit range")
	// ErrOutOfRange is returned when a bit-field span does not fit in the buffer or in 64 bits.
	ErrOutOfRange = errors.New("bit range out of buffer")
)

// Container format errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid table header size")
	ErrUnknownBlockID      = errors.New("unknown block id")
	ErrCrcMismatch         = errors.New("crc mismatch")
	ErrTruncatedInput      = errors.New("truncated input")
	ErrTableLengthMismatch = errors.New("table length mismatch")
	ErrDuplicateTable      = errors.New("duplicate table")
	ErrInvalidEntrySize    = errors.New("invalid entry buffer size")
)

// Configuration errors.
var (
	ErrCapacityExceeded = errors.New("table capacity exceeded")
	ErrUnsupportedTable = errors.New("table not supported by device family")
	ErrUnknownDevice    = errors.New("unknown device id")
	ErrInvalidVLFormat  = errors.New("invalid vl lookup format")
	ErrInvalidField     = errors.New("field not valid for entry")
)

// Staging errors.
var (
	ErrInvalidStagingFile     = errors.New("invalid staging file")
	ErrDigestMismatch         = errors.New("staging digest mismatch")
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
