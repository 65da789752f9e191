// Package table implements the entry codecs of every static configuration table.
//
// Each entry type is a plain struct of uint64 fields plus a Layout method: a
// fixed list of (field, hi, lo) spans walked with packing.Fields in either
// direction. Tables whose layout differs between device families switch on
// the family once, at the top of Layout, and walk a separate list for each.
//
// Entries are packed into and out of buffers of exactly Size(family) bytes:
//
//	buf := make([]byte, table.Size(format.BlockMACConfig, format.FamilyET))
//	err := table.Pack(engine, format.FamilyET, buf, &table.MACConfigEntry{Speed: 2})
//
// The VL lookup table is the exception to "one struct per table": its two
// interpretations of the same bits are the two variants of VLLookupEntry.
package table
