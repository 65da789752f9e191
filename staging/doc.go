// Package staging stores assembled images on disk between build and upload.
//
// A staging file is a fixed 32-byte header followed by the image, optionally
// compressed. The header records everything needed to upload the image
// without parsing it again: the device id, the quirk mode the image was
// assembled with, and an xxHash64 digest of the raw image.
//
// # File Format
//
//	Offset | Size | Field
//	-------|------|-----------------------------------------------
//	0      | 4    | magic "SJA5"
//	4      | 1    | version (1)
//	5      | 1    | compression type (format.CompressionType)
//	6      | 1    | quirk flags (packing.Quirks)
//	7      | 1    | reserved, 0
//	8      | 4    | device id
//	12     | 4    | raw image length
//	16     | 4    | stored payload length
//	20     | 8    | xxHash64 of the raw image
//	28     | 4    | reserved, 0
//
// Multi-byte header fields are little endian. The header describes the
// container only; the payload keeps the byte order of its quirk mode.
package staging
