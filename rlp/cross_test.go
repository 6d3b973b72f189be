// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package rlp

import (
	"testing"

	gethrlp "github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"
)

// toReference converts an Item into the generic value representation of
// the Geth RLP implementation: []byte for leaves, []any for lists.
func toReference(item Item) any {
	switch value := item.(type) {
	case Bytes:
		return []byte(value)
	case List:
		res := make([]any, len(value))
		for i, element := range value {
			res[i] = toReference(element)
		}
		return res
	default:
		panic("rlp: unknown item type")
	}
}

func TestEncode_MatchesGethEncoding(t *testing.T) {
	for name, test := range encodingVectors {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			expected, err := gethrlp.EncodeToBytes(toReference(test.item))
			require.NoError(err)
			require.Equal(expected, Encode(test.item))
		})
	}
}

func TestDecode_MatchesGethDecoding(t *testing.T) {
	for name, test := range encodingVectors {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			var reference any
			require.NoError(gethrlp.DecodeBytes(test.encoded, &reference))

			item, rest, err := Decode(test.encoded)
			require.NoError(err)
			require.Empty(rest)
			require.Equal(reference, toReference(item))
		})
	}
}
