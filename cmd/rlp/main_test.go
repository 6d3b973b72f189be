// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"testing"

	"github.com/0xsoniclabs/wire/rlp"
	"github.com/stretchr/testify/require"
)

func TestFormat_RendersTheItemTree(t *testing.T) {
	tests := map[string]struct {
		item     rlp.Item
		expected string
	}{
		"printable leaf": {
			item:     rlp.Bytes("cat"),
			expected: "bytes [3] 0x636174 \"cat\"\n",
		},
		"binary leaf": {
			item:     rlp.Bytes{0x00, 0xff},
			expected: "bytes [2] 0x00ff\n",
		},
		"empty list": {
			item:     rlp.List{},
			expected: "list [0 items]\n",
		},
		"nested list": {
			item: rlp.List{rlp.Bytes("cat"), rlp.List{rlp.Bytes{}}},
			expected: "list [2 items]\n" +
				"  bytes [3] 0x636174 \"cat\"\n" +
				"  list [1 items]\n" +
				"    bytes [0] 0x\n",
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, test.expected, format(test.item, ""))
		})
	}
}

func TestPrintable_AcceptsOnlyVisibleAscii(t *testing.T) {
	require := require.New(t)
	require.True(printable([]byte("dog park 42")))
	require.False(printable([]byte{}))
	require.False(printable([]byte{'a', 0x00}))
	require.False(printable([]byte{0x80}))
}
