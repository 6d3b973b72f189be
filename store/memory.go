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
	"fmt"
	"sync"

	"github.com/0xsoniclabs/wire/rlp"
)

// memoryStore is an in-memory Store implementation retaining the encoded
// items in a map. It is intended for tests and ephemeral use; nothing
// survives the process.
type memoryStore struct {
	mu   sync.Mutex
	data map[Hash][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{data: map[Hash][]byte{}}
}

func (s *memoryStore) Put(item rlp.Item) (Hash, error) {
	encoded := rlp.Encode(item)
	hash := hashOfEncoding(encoded)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.data[hash]; !exists {
		s.data[hash] = encoded
	}
	return hash, nil
}

func (s *memoryStore) Get(hash Hash) (rlp.Item, error) {
	s.mu.Lock()
	encoded, exists := s.data[hash]
	s.mu.Unlock()
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, hash)
	}
	return rlp.DecodeComplete(encoded)
}

func (s *memoryStore) Has(hash Hash) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, exists := s.data[hash]
	return exists, nil
}

func (s *memoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
