// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/wire/rlp"
	"github.com/golang/snappy"
	"github.com/syndtr/goleveldb/leveldb"
)

// ldbStore is a Store implementation backed by a LevelDB instance.
// Encodings are stored snappy-compressed under their content hash and
// verified against it when read back, so silent corruption of the
// database surfaces as an error instead of a wrong value.
type ldbStore struct {
	db *leveldb.DB
}

// OpenLevelDbStore opens a persistent store in the given directory,
// creating it if it does not exist.
func OpenLevelDbStore(directory string) (Store, error) {
	db, err := leveldb.OpenFile(directory, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open store in %s: %w", directory, err)
	}
	return &ldbStore{db: db}, nil
}

func (s *ldbStore) Put(item rlp.Item) (Hash, error) {
	encoded := rlp.Encode(item)
	hash := hashOfEncoding(encoded)
	exists, err := s.db.Has(hash[:], nil)
	if err != nil || exists {
		return hash, err
	}
	return hash, s.db.Put(hash[:], snappy.Encode(nil, encoded), nil)
}

func (s *ldbStore) Get(hash Hash) (rlp.Item, error) {
	compressed, err := s.db.Get(hash[:], nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, hash)
		}
		return nil, err
	}
	encoded, err := snappy.Decode(nil, compressed)
	if err != nil {
		return nil, fmt.Errorf("corrupted entry %v: %w", hash, err)
	}
	if hashOfEncoding(encoded) != hash {
		return nil, fmt.Errorf("corrupted entry %v: content hash mismatch", hash)
	}
	return rlp.DecodeComplete(encoded)
}

func (s *ldbStore) Has(hash Hash) (bool, error) {
	return s.db.Has(hash[:], nil)
}

func (s *ldbStore) Close() error {
	return s.db.Close()
}
