package compress

import (
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/sja1105/format"
)

var lz4CompressorPool = sync.Pool{
	New: func() any { return &lz4.Compressor{} },
}

// LZ4Codec uses the LZ4 block format. The block format carries no length, so
// decompression relies on rawLen.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Type() format.CompressionType { return format.CompressionLZ4 }

// Compress returns an empty slice when data does not compress.
func (LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

func (LZ4Codec) Decompress(data []byte, rawLen int) ([]byte, error) {
	if rawLen == 0 {
		return nil, checkLen(format.CompressionLZ4, len(data), 0)
	}

	out := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(data, out)
	if err != nil {
		return nil, corrupt(format.CompressionLZ4, err)
	}

	if err := checkLen(format.CompressionLZ4, n, rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
