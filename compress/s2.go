package compress

import (
	"github.com/klauspost/compress/s2"

	"github.com/arloliu/sja1105/format"
)

// S2Codec uses the S2 block format.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Type() format.CompressionType { return format.CompressionS2 }

func (S2Codec) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte, rawLen int) ([]byte, error) {
	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, corrupt(format.CompressionS2, err)
	}

	if err := checkLen(format.CompressionS2, n, rawLen); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawLen), data)
	if err != nil {
		return nil, corrupt(format.CompressionS2, err)
	}

	return out, nil
}
