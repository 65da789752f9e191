package compress

import "github.com/arloliu/sja1105/format"

// ZstdCodec uses Zstandard frames. The pure Go implementation is used
// unless the module is built with the gozstd tag and cgo.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Type() format.CompressionType { return format.CompressionZstd }
