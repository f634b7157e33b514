// Package cache provides content hashing used for version stamps and cache keys.
package cache

import (
	"strconv"

	"github.com/minio/highwayhash"
)

var key = []byte("P0L1CYB1NP0L1CYB1NP0L1CYB1N01234")

// Hash creates a highwayhash-64 of the input data
func Hash(data []byte) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	if _, err = h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

// Key returns a cache key for data stored under the supplied kind (i.e. file extension)
func Key(kind string, data []byte) (string, error) {
	hash, err := Hash(data)
	if err != nil {
		return "", err
	}
	return kind + ":" + strconv.FormatUint(hash, 16) + ":" + strconv.Itoa(len(data)), nil
}
