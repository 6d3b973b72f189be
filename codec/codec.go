// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package codec maps typed host values onto the two-case value algebra of
// the rlp package. Mappings are explicit codec objects assembled at the
// call site; there is no reflection and no registry. Each codec is
// stateless and safe for concurrent use.
package codec

import (
	"fmt"

	"github.com/0xsoniclabs/wire/rlp"
)

// Codec converts between values of type T and RLP items. Encode produces
// the canonical item representation of a value or fails for values with
// no such representation; Decode is its inverse and fails for items not
// produced by Encode.
type Codec[T any] interface {
	Encode(value T) (rlp.Item, error)
	Decode(item rlp.Item) (T, error)
}

// Marshal encodes a value into its canonical RLP byte sequence using the
// given codec.
func Marshal[T any](codec Codec[T], value T) ([]byte, error) {
	item, err := codec.Encode(value)
	if err != nil {
		return nil, err
	}
	return rlp.Encode(item), nil
}

// Unmarshal decodes a value from a byte sequence that must hold exactly
// one RLP value; trailing bytes are an error at this level.
func Unmarshal[T any](codec Codec[T], data []byte) (T, error) {
	item, err := rlp.DecodeComplete(data)
	if err != nil {
		var none T
		return none, err
	}
	return codec.Decode(item)
}

// leafPayload extracts the payload of a byte-string item, reporting lists
// as a type mismatch.
func leafPayload(item rlp.Item) ([]byte, error) {
	payload, ok := item.(rlp.Bytes)
	if !ok {
		return nil, fmt.Errorf("%w: expected a byte string, found a list", rlp.ErrTypeMismatch)
	}
	return payload, nil
}

// listItems extracts the elements of a list item, reporting byte strings
// as a type mismatch.
func listItems(item rlp.Item) (rlp.List, error) {
	items, ok := item.(rlp.List)
	if !ok {
		return nil, fmt.Errorf("%w: expected a list, found a byte string", rlp.ErrTypeMismatch)
	}
	return items, nil
}
