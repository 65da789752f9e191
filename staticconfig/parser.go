package staticconfig

import (
	"errors"
	"fmt"

	"github.com/arloliu/sja1105/checksum"
	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/internal/options"
	"github.com/arloliu/sja1105/section"
	"github.com/arloliu/sja1105/table"
)

// Warning is a recoverable problem found while parsing.
type Warning struct {
	BlockID format.BlockID
	// Offset is the image offset of the table header.
	Offset int
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at offset %d: %v", w.BlockID, w.Offset, w.Err)
}

// ParseResult is a parsed configuration plus everything the parser noticed on the way.
type ParseResult struct {
	Config   *StaticConfig
	Family   format.Family
	Warnings []Warning
	// Size is the number of bytes up to and including the terminator header.
	Size int
}

// Err joins the warnings into one error, nil when there are none. Every
// joined error names its table and offset.
func (r *ParseResult) Err() error {
	if len(r.Warnings) == 0 {
		return nil
	}

	joined := make([]error, len(r.Warnings))
	for i, w := range r.Warnings {
		joined[i] = fmt.Errorf("%s at offset %d: %w", w.BlockID, w.Offset, w.Err)
	}

	return errors.Join(joined...)
}

// Parser decodes images. It holds no per-call state and is safe for concurrent use.
type Parser struct {
	settings
}

// NewParser creates a parser.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{settings: defaultSettings()}
	if err := options.Apply(&p.settings, opts...); err != nil {
		return nil, err
	}

	return p, nil
}

// Parse decodes an image.
//
// When a table had to be realigned, Parse returns the decoded configuration
// together with a non-nil error wrapping errs.ErrTableLengthMismatch, so the
// caller can still use the whole entries. A nil configuration means the
// image could not be decoded. Use ParseWithResult to get the warnings one by one.
func (p *Parser) Parse(data []byte) (*StaticConfig, error) {
	res, err := p.ParseWithResult(data)
	if err != nil {
		return nil, err
	}

	return res.Config, res.Err()
}

// ParseWithResult decodes an image.
//
// Tables may appear in any order. A table body whose length is not a whole
// number of entries yields a warning wrapping errs.ErrTableLengthMismatch:
// the whole entries are kept and reading resumes at the declared end of the
// body. With WithStrictLength(true) the mismatch is an error instead.
//
// Returns:
//   - errs.ErrTruncatedInput if the data ends before a header, body or CRC
//   - errs.ErrUnknownDevice if the family cannot be resolved
//   - errs.ErrUnknownBlockID for an unrecognized block id
//   - errs.ErrUnsupportedTable for a table the family does not have
//   - errs.ErrDuplicateTable if a table kind appears twice
//   - errs.ErrCrcMismatch if a header or body CRC does not match
//   - errs.ErrCapacityExceeded if a table holds more entries than the chip
func (p *Parser) ParseWithResult(data []byte) (*ParseResult, error) {
	engine := p.engine

	id, err := section.ParseDeviceID(engine, data)
	if err != nil {
		return nil, err
	}

	family := p.resolveFamily(id)
	if family == format.FamilyUnknown {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownDevice, id)
	}

	cfg := &StaticConfig{DeviceID: id}
	res := &ParseResult{Config: cfg, Family: family}
	seen := make(map[format.BlockID]bool)
	var vlBody []byte

	off := section.DeviceIDSize
	for {
		hdr, err := section.ParseTableHeader(engine, data[off:])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", off, err)
		}

		if hdr.IsTerminator() {
			off += section.TableHeaderSize
			break
		}

		if err := section.VerifyCRC(engine, data[off:]); err != nil {
			return nil, fmt.Errorf("%s header at offset %d: %w", hdr.BlockID, off, err)
		}

		s, ok := lookupSlot(hdr.BlockID)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrUnknownBlockID, uint8(hdr.BlockID), off)
		}

		if seen[s.id] {
			return nil, fmt.Errorf("%w: %s at offset %d", errs.ErrDuplicateTable, s.id, off)
		}
		seen[s.id] = true

		kind, _ := table.LookupKind(s.id)
		size := kind.Size(family)
		if size == 0 {
			return nil, fmt.Errorf("%w: %s in family %s", errs.ErrUnsupportedTable, s.id, family)
		}

		bodyStart := off + section.TableHeaderSize
		bodyEnd := bodyStart + hdr.BodySize()
		if bodyEnd+section.TableCRCSize > len(data) {
			return nil, fmt.Errorf("%w: %s declares %d body bytes at offset %d, %d bytes left",
				errs.ErrTruncatedInput, s.id, hdr.BodySize(), bodyStart, len(data)-bodyStart)
		}

		body := data[bodyStart:bodyEnd]
		stored, err := engine.Uint32(data[bodyEnd : bodyEnd+section.TableCRCSize])
		if err != nil {
			return nil, err
		}

		if computed := checksum.CRC32(engine, body); computed != stored {
			return nil, fmt.Errorf("%w: %s body crc 0x%08x, computed 0x%08x",
				errs.ErrCrcMismatch, s.id, stored, computed)
		}

		n := len(body) / size
		if extra := len(body) % size; extra != 0 {
			mismatch := fmt.Errorf("%w: %s body of %d bytes holds %d entries of %d bytes and %d extra bytes",
				errs.ErrTableLengthMismatch, s.id, len(body), n, size, extra)
			if p.strictLength {
				return nil, mismatch
			}

			res.Warnings = append(res.Warnings, Warning{BlockID: s.id, Offset: off, Err: mismatch})
			p.logger.Info("realigning to declared table end", "block", s.id, "offset", off, "extraBytes", extra)
		}

		if n > kind.MaxCount {
			return nil, fmt.Errorf("%w: %s has %d entries, max %d", errs.ErrCapacityExceeded, s.id, n, kind.MaxCount)
		}

		if s.id == format.BlockVLLookup {
			vlBody = body[:n*size]
		} else if err := p.decodeTable(cfg, s, family, body[:n*size], n, size, 0); err != nil {
			return nil, err
		}

		p.logger.V(1).Info("parsed table", "block", s.id, "entries", n, "offset", off)
		off = bodyEnd + section.TableCRCSize
	}

	if vlBody != nil {
		s, _ := lookupSlot(format.BlockVLLookup)
		size := table.Size(format.BlockVLLookup, family)
		if err := p.decodeTable(cfg, s, family, vlBody, len(vlBody)/size, size, cfg.VLLookupFormat()); err != nil {
			return nil, err
		}
	}

	if off < len(data) {
		p.logger.V(1).Info("ignoring bytes after terminator", "bytes", len(data)-off)
	}
	res.Size = off

	return res, nil
}

// decodeTable replaces the table's slice with n entries decoded from body.
func (p *Parser) decodeTable(cfg *StaticConfig, s slot, family format.Family, body []byte, n, size int, vl table.VLLookupFormat) error {
	if err := s.resize(cfg, n, vl); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		if err := table.Unpack(p.engine, family, body[i*size:(i+1)*size], s.entry(cfg, i)); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
	}

	return nil
}
