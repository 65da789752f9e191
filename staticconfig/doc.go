// Package staticconfig assembles and parses complete static configuration images.
//
// A StaticConfig holds one typed slice per table kind. The Assembler turns it
// into the byte image the switch loads at reset; the Parser does the reverse
// and reports recoverable problems as warnings instead of failing.
//
// # Basic Usage
//
//	cfg := &staticconfig.StaticConfig{DeviceID: format.DeviceIDSJA1105T}
//	cfg.MACConfig = make([]table.MACConfigEntry, 5)
//
//	asm, _ := staticconfig.NewAssembler()
//	image, err := asm.Assemble(cfg)
//
//	p, _ := staticconfig.NewParser()
//	back, err := p.Parse(image)
//
// # Table Order
//
// Tables are written in ascending block id order, skipping empty ones, and
// the image ends with a zero-length header. The parser accepts tables in any
// order but rejects a kind that appears twice.
//
// # VL Lookup Format
//
// The VL lookup entry bits mean different things depending on the
// vllupformat field of the general parameters table. The parser decodes the
// VL lookup table last, once the general parameters are known; without a
// general parameters table the PSFP format is assumed.
package staticconfig
