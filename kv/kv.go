// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package kv

// Getter wraps methods for getting kvs.
type Getter interface {
	// Get value for given key.
	// An error returned if key not found. It can be checked via IsNotFound.
	Get(key []byte) (value []byte, err error)
	Has(key []byte) (bool, error)
	IsNotFound(error) bool
}

// Putter wraps methods for putting kvs.
type Putter interface {
	Put(key, value []byte) error
	Delete(key []byte) error
}

// Batch defines a batch of putting ops, written atomically.
type Batch interface {
	Putter

	Len() int
	Write() error
}

// Range describes a prefix iteration range.
type Range struct {
	Prefix []byte
}

// Store is the full key/value store the pool persists into.
type Store interface {
	Getter
	Putter

	NewBatch() Batch
	// Iterate walks all keys with the range's prefix in ascending key order,
	// stopping early when cb returns an error.
	Iterate(r Range, cb func(key, value []byte) error) error
	Close() error
}
