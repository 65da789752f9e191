// Package hash computes the payload digest stored in staging files.
package hash

import "github.com/cespare/xxhash/v2"

// Digest returns the xxHash64 of data.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
