// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package store provides content-addressed persistence for RLP-encoded
// values. Items are keyed by the Keccak-256 hash of their canonical
// encoding, so every distinct value has exactly one key and storing the
// same value twice is idempotent.
package store

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/wire/rlp"
	"golang.org/x/crypto/sha3"
)

//go:generate mockgen -source store.go -destination store_mocks.go -package store

// HashSize is the length of a content hash in bytes.
const HashSize = 32

// Hash is the content address of an item: the Keccak-256 hash of its
// canonical encoding.
type Hash [HashSize]byte

// String renders the hash as 0x-prefixed hex.
func (h Hash) String() string {
	return rlp.Bytes(h[:]).String()
}

// HashOf computes the content address of the given item.
func HashOf(item rlp.Item) Hash {
	return hashOfEncoding(rlp.Encode(item))
}

func hashOfEncoding(encoded []byte) Hash {
	var res Hash
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(encoded)
	hasher.Sum(res[0:0])
	return res
}

// ErrNotFound is reported by Get when no item is stored under the
// requested hash.
var ErrNotFound = errors.New("store: item not found")

// Store is a content-addressed collection of RLP-encoded items. All
// implementations in this package are safe for concurrent use.
type Store interface {
	// Put adds the given item and returns its content address. Storing an
	// already present item succeeds and returns the same address.
	Put(item rlp.Item) (Hash, error)

	// Get retrieves the item stored under the given address, or reports
	// ErrNotFound.
	Get(hash Hash) (rlp.Item, error)

	// Has tests whether an item is stored under the given address.
	Has(hash Hash) (bool, error)

	// Close flushes and releases the underlying resources. No other
	// operation may be used afterwards.
	Close() error
}

// Copy transfers the items stored under the given hashes from one store
// to another. It stops at the first missing or failing item.
func Copy(dst, src Store, hashes ...Hash) error {
	for _, hash := range hashes {
		item, err := src.Get(hash)
		if err != nil {
			return fmt.Errorf("copying %v: %w", hash, err)
		}
		if _, err := dst.Put(item); err != nil {
			return fmt.Errorf("copying %v: %w", hash, err)
		}
	}
	return nil
}
