//go:build !gozstd || !cgo

package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/sja1105/format"
)

// zstdMaxWindow bounds decoder memory; images are far smaller.
const zstdMaxWindow = 1 << 24

var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	zstdInitErr error
)

// zstdCoders returns the shared encoder and decoder. EncodeAll and DecodeAll
// are safe for concurrent use, so one of each is enough.
func zstdCoders() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEncoder, zstdInitErr = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithEncoderCRC(false),
		)
		if zstdInitErr != nil {
			return
		}

		zstdDecoder, zstdInitErr = zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxWindow(zstdMaxWindow),
		)
	})

	return zstdEncoder, zstdDecoder, zstdInitErr
}

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	enc, _, err := zstdCoders()
	if err != nil {
		return nil, err
	}

	return enc.EncodeAll(data, nil), nil
}

func (ZstdCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	_, dec, err := zstdCoders()
	if err != nil {
		return nil, err
	}

	out, err := dec.DecodeAll(data, make([]byte, 0, rawLen))
	if err != nil {
		return nil, corrupt(format.CompressionZstd, err)
	}

	if err := checkLen(format.CompressionZstd, len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
