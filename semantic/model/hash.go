package model

import "github.com/minio/highwayhash"

// hashKey is fixed rather than random so that Checksum is stable across
// runs and processes; nothing here is security-sensitive, it only guards
// against re-extracting a file whose source hasn't changed.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Checksum hashes a file's source bytes for change detection, the same
// role highwayhash plays hashing a Document's content for deduplication.
func Checksum(src []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(src)
	return h.Sum64(), err
}
