package staging

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/arloliu/sja1105/compress"
	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
	"github.com/arloliu/sja1105/internal/hash"
	"github.com/arloliu/sja1105/internal/options"
	"github.com/arloliu/sja1105/internal/pool"
	"github.com/arloliu/sja1105/packing"
	"github.com/arloliu/sja1105/section"
)

type config struct {
	compression format.CompressionType
	quirks      packing.Quirks
	logger      logr.Logger
}

// Option configures Encode and WriteFile.
type Option = options.Option[*config]

// WithCompression selects the payload codec. The default is zstd.
func WithCompression(t format.CompressionType) Option {
	return options.New(func(c *config) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		c.compression = t

		return nil
	})
}

// WithQuirks records the quirk mode the image was assembled with. It is
// also used to read the device id from the image.
func WithQuirks(q packing.Quirks) Option {
	return options.NoError(func(c *config) {
		c.quirks = q
	})
}

// WithLogger sets the logger.
func WithLogger(logger logr.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}

// Staged is a decoded staging file.
type Staged struct {
	Header Header
	Image  []byte
}

// Engine returns the packing engine matching the recorded quirk mode.
func (s *Staged) Engine() packing.Engine {
	return packing.NewEngine(s.Header.Quirks)
}

// Encode wraps an assembled image into a staging file.
//
// When the selected codec does not shrink the image, the payload is stored
// uncompressed and the header says so.
func Encode(image []byte, opts ...Option) ([]byte, error) {
	bb := pool.GetStagingBuffer()
	defer pool.PutStagingBuffer(bb)

	if err := encode(bb, image, opts); err != nil {
		return nil, err
	}

	out := make([]byte, bb.Len())
	copy(out, bb.Bytes())

	return out, nil
}

func encode(bb *pool.ByteBuffer, image []byte, opts []Option) error {
	cfg := &config{compression: format.CompressionZstd, logger: logr.Discard()}
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}

	if len(image) > MaxImageSize {
		return fmt.Errorf("%w: image of %d bytes exceeds %d", errs.ErrInvalidStagingFile, len(image), MaxImageSize)
	}

	deviceID, err := section.ParseDeviceID(packing.NewEngine(cfg.quirks), image)
	if err != nil {
		return err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return err
	}

	payload, err := codec.Compress(image)
	if err != nil {
		return fmt.Errorf("compress with %s: %w", codec.Type(), err)
	}

	ct := codec.Type()
	if ct != format.CompressionNone && (len(payload) == 0 || len(payload) >= len(image)) {
		cfg.logger.V(1).Info("image does not compress, storing as is", "codec", ct, "bytes", len(image))
		ct, payload = format.CompressionNone, image
	}

	h := Header{
		Version:     Version,
		Compression: ct,
		Quirks:      cfg.quirks,
		DeviceID:    deviceID,
		RawLen:      uint32(len(image)),
		StoredLen:   uint32(len(payload)),
		Digest:      hash.Digest(image),
	}

	bb.B = h.AppendTo(bb.B)
	_, _ = bb.Write(payload)

	cfg.logger.V(1).Info("staged image", "device", deviceID, "codec", ct,
		"raw", len(image), "stored", len(payload), "ratio", compress.Ratio(len(image), len(payload)))

	return nil
}

// Decode unwraps a staging file and verifies the image digest.
//
// Returns:
//   - errs.ErrTruncatedInput if data is shorter than the header says
//   - errs.ErrInvalidStagingFile for a malformed header or payload
//   - errs.ErrDigestMismatch, wrapped with errs.ErrInvalidStagingFile, if the
//     decoded image does not match the recorded digest
func Decode(data []byte) (*Staged, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	payload := data[HeaderSize:]
	if uint32(len(payload)) < h.StoredLen {
		return nil, fmt.Errorf("%w: payload needs %d bytes, have %d", errs.ErrTruncatedInput, h.StoredLen, len(payload))
	}
	if uint32(len(payload)) > h.StoredLen {
		return nil, fmt.Errorf("%w: %d bytes after payload", errs.ErrInvalidStagingFile, uint32(len(payload))-h.StoredLen)
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidStagingFile, err)
	}

	image, err := codec.Decompress(payload, int(h.RawLen))
	if err != nil {
		return nil, err
	}

	if sum := hash.Digest(image); sum != h.Digest {
		return nil, fmt.Errorf("%w: %w: recorded %016x, computed %016x",
			errs.ErrInvalidStagingFile, errs.ErrDigestMismatch, h.Digest, sum)
	}

	return &Staged{Header: h, Image: image}, nil
}

// WriteFile encodes image and writes it to path.
func WriteFile(path string, image []byte, opts ...Option) (err error) {
	bb := pool.GetStagingBuffer()
	defer pool.PutStagingBuffer(bb)

	if err := encode(bb, image, opts); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = bb.WriteTo(f)

	return err
}

// ReadFile reads and decodes the staging file at path.
func ReadFile(path string) (*Staged, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}
