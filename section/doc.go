// Package section defines the fixed-size records that frame a static configuration image.
//
// A static configuration is a stream of 32-bit words:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Device ID (4 bytes)                                     │
//	├─────────────────────────────────────────────────────────┤
//	│ Table header (12 bytes)                                 │
//	│  - block id, body length in words, header CRC           │
//	├─────────────────────────────────────────────────────────┤
//	│ Table body (len × 4 bytes)                              │
//	│  - fixed-size entries of the table kind                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Body CRC (4 bytes)                                      │
//	├─────────────────────────────────────────────────────────┤
//	│ ... more header / body / CRC groups ...                 │
//	├─────────────────────────────────────────────────────────┤
//	│ Terminator header (12 bytes, len = 0)                   │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
// Bits are numbered from the least significant bit of the 12-byte record as
// addressed by the packing engine:
//
//	Bits   | Field    | Description
//	-------|----------|-------------------------------------------------
//	31:24  | BlockID  | table kind
//	55:32  | Len      | body length in 32-bit words (no header, no CRC)
//	95:64  | CRC      | CRC of the two words holding bits 63:0
//
// All records are packed through a packing.Engine, so their byte image
// follows the engine's quirk mode.
package section
