package compress

import "github.com/arloliu/sja1105/format"

// NoOpCodec stores images as is.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Type() format.CompressionType { return format.CompressionNone }

// Compress returns a copy of data.
func (NoOpCodec) Compress(data []byte) ([]byte, error) {
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Decompress returns a copy of data after checking its length.
func (NoOpCodec) Decompress(data []byte, rawLen int) ([]byte, error) {
	if err := checkLen(format.CompressionNone, len(data), rawLen); err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}
