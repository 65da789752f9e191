package compress

import (
	"fmt"

	"github.com/arloliu/sja1105/errs"
	"github.com/arloliu/sja1105/format"
)

// Codec compresses and decompresses whole images.
type Codec interface {
	// Type returns the compression type recorded in staging headers.
	Type() format.CompressionType

	// Compress returns a newly allocated compressed copy of data.
	//
	// A codec may return an empty result for non-empty input to signal that
	// the data did not compress; callers then store the data uncompressed.
	Compress(data []byte) ([]byte, error)

	// Decompress returns the rawLen bytes data was compressed from.
	//
	// Returns errs.ErrInvalidStagingFile if data is corrupt or decodes to a
	// length other than rawLen.
	Decompress(data []byte, rawLen int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NoOpCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionS2:   S2Codec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// GetCodec returns the built-in codec for a compression type.
func GetCodec(t format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, t)
}

// Ratio returns compressed/raw, 0 for an empty raw image.
func Ratio(raw, compressed int) float64 {
	if raw == 0 {
		return 0
	}

	return float64(compressed) / float64(raw)
}

func checkLen(t format.CompressionType, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload decoded to %d bytes, header says %d",
			errs.ErrInvalidStagingFile, t, got, want)
	}

	return nil
}

func corrupt(t format.CompressionType, err error) error {
	return fmt.Errorf("%w: %s payload: %w", errs.ErrInvalidStagingFile, t, err)
}
