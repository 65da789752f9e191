// Package compress provides the codecs used to shrink staged configuration images.
//
// Static configuration images are dominated by zero bits: unused queue
// partitions, empty VLAN memberships and the padding of 64-bit aligned
// entries. Every codec here turns such an image into a fraction of its size.
//
// # Supported Algorithms
//
//	Type                    | Library                         | Notes
//	------------------------|---------------------------------|----------------------------
//	format.CompressionNone  | -                               | copy
//	format.CompressionZstd  | klauspost/compress/zstd         | best ratio; valyala/gozstd
//	                        |                                 | with -tags gozstd and cgo
//	format.CompressionS2    | klauspost/compress/s2           | fastest
//	format.CompressionLZ4   | pierrec/lz4/v4 (block format)   | may report incompressible
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(image)
//	image, err = codec.Decompress(packed, len(image))
//
// The raw length is passed to Decompress because the staging header already
// records it; codecs use it to size the output exactly and to reject data
// that decodes to a different length.
//
// All codecs are safe for concurrent use.
package compress
