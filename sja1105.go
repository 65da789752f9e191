// Package sja1105 builds and reads the static configuration images of the
// NXP SJA1105 family of automotive Ethernet switches.
//
// A static configuration is the binary image the switch loads at reset: a
// device id followed by one framed table per configured feature (L2 lookup,
// VLANs, MAC ports, time-triggered schedule, ...). Every table entry is a
// bit-packed record whose layout depends on the device family.
//
// # Core Features
//
//   - Bit-exact packing for every table of the E/T and P/Q/R/S families
//   - All byte and bit order quirks of the chip and its SPI transports
//   - Capacity checks before assembly, CRC checks on parse
//   - Tolerant parsing with warnings for inaccurate table lengths
//   - Compressed staging files with integrity digest
//
// # Basic Usage
//
//	cfg := &sja1105.StaticConfig{DeviceID: format.DeviceIDSJA1105T}
//	cfg.MACConfig = make([]table.MACConfigEntry, 5)
//	cfg.XMIIModeParams = []table.XMIIModeParamsEntry{{}}
//
//	image, err := sja1105.Assemble(cfg)
//
//	back, err := sja1105.Parse(image)
//
// # Package Structure
//
// This package wraps the most common calls. The work is done by:
//
//   - packing: the quirk-aware bit-field engine
//   - checksum: the chip CRC-32
//   - section: device id and table header records
//   - table: the entry codec of every table kind
//   - staticconfig: image assembly and parsing
//   - staging: on-disk container for assembled images
package sja1105

import (
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/packing"
	"github.com/arloliu/sja1105/staging"
	"github.com/arloliu/sja1105/staticconfig"
)

// StaticConfig is the decoded form of a static configuration image.
type StaticConfig = staticconfig.StaticConfig

// NewAssembler creates an assembler with the given options.
func NewAssembler(opts ...staticconfig.Option) (*staticconfig.Assembler, error) {
	return staticconfig.NewAssembler(opts...)
}

// NewParser creates a parser with the given options.
func NewParser(opts ...staticconfig.Option) (*staticconfig.Parser, error) {
	return staticconfig.NewParser(opts...)
}

// Assemble builds the image of cfg.
func Assemble(cfg *StaticConfig, opts ...staticconfig.Option) ([]byte, error) {
	a, err := staticconfig.NewAssembler(opts...)
	if err != nil {
		return nil, err
	}

	return a.Assemble(cfg)
}

// Parse decodes an image. A realigned table yields the configuration plus an
// error wrapping errs.ErrTableLengthMismatch; see staticconfig.Parser.Parse.
func Parse(data []byte, opts ...staticconfig.Option) (*StaticConfig, error) {
	p, err := staticconfig.NewParser(opts...)
	if err != nil {
		return nil, err
	}

	return p.Parse(data)
}

// ParseAuto detects the quirk mode of an image and decodes it. Options may
// set anything but the engine, which is chosen by detection.
func ParseAuto(data []byte, opts ...staticconfig.Option) (*staticconfig.ParseResult, packing.Quirks, error) {
	q, err := staticconfig.DetectQuirks(data)
	if err != nil {
		return nil, 0, err
	}

	p, err := staticconfig.NewParser(append(opts, staticconfig.WithQuirks(q))...)
	if err != nil {
		return nil, 0, err
	}

	res, err := p.ParseWithResult(data)
	if err != nil {
		return nil, 0, err
	}

	return res, q, nil
}

// Stage assembles cfg and wraps the image into a staging file.
func Stage(cfg *StaticConfig, q packing.Quirks, compression format.CompressionType) ([]byte, error) {
	image, err := Assemble(cfg, staticconfig.WithQuirks(q))
	if err != nil {
		return nil, err
	}

	return staging.Encode(image, staging.WithQuirks(q), staging.WithCompression(compression))
}

// Unstage decodes a staging file and parses the image it holds. Like Parse,
// it returns the configuration together with a table length mismatch error.
func Unstage(data []byte, opts ...staticconfig.Option) (*StaticConfig, error) {
	staged, err := staging.Decode(data)
	if err != nil {
		return nil, err
	}

	return Parse(staged.Image, append(opts, staticconfig.WithEngine(staged.Engine()))...)
}
