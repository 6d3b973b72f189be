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
	"fmt"
	"strings"
)

// Item is a single RLP value. It is a closed sum of exactly two cases: a
// Bytes leaf holding an opaque octet string, and a List node holding an
// ordered sequence of nested items. Every value this package can encode or
// decode is composed of these two cases. Items are treated as immutable
// once constructed; none of the operations in this package modify them.
type Item interface {
	fmt.Stringer

	// isItem keeps the sum closed; only Bytes and List implement it.
	isItem()
}

// Bytes is the leaf case of the Item sum, an opaque octet string. The
// interpretation of the octets (integer, text, hash, ...) is left to the
// adapter layer in the codec package; this package only preserves them.
type Bytes []byte

// List is the node case of the Item sum, an ordered sequence of items.
// Order is significant and preserved exactly. A list may be empty and may
// nest to arbitrary depth.
type List []Item

func (Bytes) isItem() {}
func (List) isItem()  {}

// String renders the leaf as 0x-prefixed hex.
func (b Bytes) String() string {
	return fmt.Sprintf("0x%x", []byte(b))
}

// String renders the list and its nested items in bracket notation, for
// instance [0x83, [0x01, []]].
func (l List) String() string {
	parts := make([]string, len(l))
	for i, item := range l {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
