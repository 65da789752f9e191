package staticconfig

import (
	"fmt"

	"github.com/arloliu/sja1105/checksum"
	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/internal/options"
	"github.com/arloliu/sja1105/internal/pool"
	"github.com/arloliu/sja1105/section"
	"github.com/arloliu/sja1105/table"
)

// Assembler turns a StaticConfig into an image. It holds no per-call state
// and is safe for concurrent use.
type Assembler struct {
	settings
}

// NewAssembler creates an assembler. Without options the image uses the
// default bit order and the family of the configuration's device id.
func NewAssembler(opts ...Option) (*Assembler, error) {
	a := &Assembler{settings: defaultSettings()}
	if err := options.Apply(&a.settings, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// Size returns the exact image size of cfg in bytes.
func (a *Assembler) Size(cfg *StaticConfig) (int, error) {
	family := a.resolveFamily(cfg.DeviceID)
	if err := cfg.ValidateFor(family); err != nil {
		return 0, err
	}

	return imageSize(cfg, family), nil
}

func imageSize(cfg *StaticConfig, family format.Family) int {
	size := section.DeviceIDSize + section.TableHeaderSize
	for _, s := range canonicalOrder {
		if n := s.count(cfg); n > 0 {
			size += section.TableHeaderSize + n*table.Size(s.id, family) + section.TableCRCSize
		}
	}

	return size
}

// Assemble validates cfg and returns its image.
//
// The result is deterministic: the same configuration and options always
// produce the same bytes. Capacity and family checks run before anything is
// written, so a configuration that fails them produces no partial image.
func (a *Assembler) Assemble(cfg *StaticConfig) ([]byte, error) {
	family := a.resolveFamily(cfg.DeviceID)
	if err := cfg.ValidateFor(family); err != nil {
		return nil, err
	}

	bb := pool.GetImageBuffer()
	defer pool.PutImageBuffer(bb)

	buf := bb.Zeroed(imageSize(cfg, family))
	if err := a.write(cfg, family, buf); err != nil {
		return nil, err
	}

	image := make([]byte, len(buf))
	copy(image, buf)

	return image, nil
}

// AssembleTo writes the image of cfg to the front of dst and returns its size.
// dst must hold at least Size(cfg) bytes; that region is zeroed first.
func (a *Assembler) AssembleTo(cfg *StaticConfig, dst []byte) (int, error) {
	family := a.resolveFamily(cfg.DeviceID)
	if err := cfg.ValidateFor(family); err != nil {
		return 0, err
	}

	size := imageSize(cfg, family)
	if len(dst) < size {
		return 0, fmt.Errorf("%w: image needs %d bytes, buffer has %d", errs.ErrOutOfRange, size, len(dst))
	}

	buf := dst[:size]
	clear(buf)
	if err := a.write(cfg, family, buf); err != nil {
		return 0, err
	}

	return size, nil
}

// write lays out the image into the zeroed buf, which is exactly imageSize long.
func (a *Assembler) write(cfg *StaticConfig, family format.Family, buf []byte) error {
	engine := a.engine

	if err := section.PackDeviceID(engine, buf[:section.DeviceIDSize], cfg.DeviceID); err != nil {
		return err
	}
	off := section.DeviceIDSize

	for _, s := range canonicalOrder {
		n := s.count(cfg)
		if n == 0 {
			continue
		}

		size := table.Size(s.id, family)
		hdr, err := section.NewTableHeader(s.id, n*size)
		if err != nil {
			return err
		}

		if err := hdr.PackWithCRC(engine, buf[off:off+section.TableHeaderSize]); err != nil {
			return fmt.Errorf("header of %s: %w", s.id, err)
		}
		off += section.TableHeaderSize

		body := buf[off : off+hdr.BodySize()]
		for i := 0; i < n; i++ {
			if err := table.Pack(engine, family, body[i*size:(i+1)*size], s.entry(cfg, i)); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}
		off += len(body)

		crc := checksum.CRC32(engine, body)
		if err := engine.PutUint32(buf[off:off+section.TableCRCSize], crc); err != nil {
			return err
		}
		off += section.TableCRCSize

		a.logger.V(1).Info("packed table", "block", s.id, "entries", n, "words", hdr.Len, "crc", fmt.Sprintf("0x%08x", crc))
	}

	terminator := section.TableHeader{}
	if err := terminator.PackWithCRC(engine, buf[off:off+section.TableHeaderSize]); err != nil {
		return err
	}

	a.logger.V(1).Info("assembled image", "device", cfg.DeviceID, "family", family, "bytes", len(buf))

	return nil
}
