package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Record returns the canonical bytes of a file record: the path, a NUL
// byte, then the size as a big-endian uint64. The NUL keeps "a1"+23 and
// "a"+123 from colliding.
func Record(path string, size int64) []byte {
	buf := make([]byte, 0, len(path)+9)
	buf = append(buf, path...)
	buf = append(buf, 0)
	return binary.BigEndian.AppendUint64(buf, uint64(size))
}

// XXHashFunc is a custom hash function adapter for go-merkletree
// It converts []byte input to xxHash []byte output
func XXHashFunc(data []byte) ([]byte, error) {
	sum := xxhash.Sum64(data)

	// Convert uint64 to []byte in big-endian format
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, sum)
	return buf, nil
}
