//go:build gozstd && cgo

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/arloliu/sja1105/format"
)

const zstdLevel = 6

func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

func (ZstdCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	out, err := gozstd.Decompress(make([]byte, 0, rawLen), data)
	if err != nil {
		return nil, corrupt(format.CompressionZstd, err)
	}

	if err := checkLen(format.CompressionZstd, len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
