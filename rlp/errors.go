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

import "errors"

// The decode error taxonomy of this module. All failures produced by this
// package and the codec package on top of it wrap one of these sentinels,
// so callers can classify them using errors.Is while still getting a
// description of the concrete violation in the error message.
var (
	// ErrInsufficientBytes indicates that a header or payload declares more
	// bytes than the input actually provides.
	ErrInsufficientBytes = errors.New("rlp: insufficient bytes")

	// ErrNonCanonical indicates input that decodes to a value whose
	// re-encoding would differ from the input: a long-form header where the
	// short form was valid, a length field with leading zero bytes, or a
	// single byte below 0x80 carrying an explicit string header.
	ErrNonCanonical = errors.New("rlp: non-canonical encoding")

	// ErrTypeMismatch indicates a byte string where a list was required or
	// vice versa.
	ErrTypeMismatch = errors.New("rlp: type mismatch")

	// ErrLengthMismatch indicates a decoded element count or payload size
	// that differs from what the caller's schema requires.
	ErrLengthMismatch = errors.New("rlp: length mismatch")

	// ErrTrailingBytes indicates unconsumed input in a context where the
	// value was required to span the entire buffer.
	ErrTrailingBytes = errors.New("rlp: trailing bytes")

	// ErrNestingTooDeep indicates input whose list nesting exceeds the
	// decoder's depth limit.
	ErrNestingTooDeep = errors.New("rlp: nesting too deep")

	// ErrUnsupportedValue indicates a host value with no canonical RLP
	// representation, for instance a negative integer. It is produced by
	// the adapter layer only; encoding an Item never fails.
	ErrUnsupportedValue = errors.New("rlp: unsupported value")
)
