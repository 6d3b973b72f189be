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

// The header grammar of the wire format. A payload of up to 55 bytes is
// announced by a single header byte carrying the length; longer payloads
// get a header byte carrying the size of a big-endian length field that
// follows it. Strings and lists use disjoint base offsets, so the first
// byte of any encoding identifies both the kind and the header form.
const (
	shortStringBase = 0x80 // strings of 0..55 payload bytes
	longStringBase  = 0xb7 // strings of >55 payload bytes
	shortListBase   = 0xc0 // lists of 0..55 payload bytes
	longListBase    = 0xf7 // lists of >55 payload bytes

	maxShortPayload = 55
)

// Encode returns the canonical RLP encoding of the given item. Encoding is
// total: it succeeds for every well-formed item and is the unique byte
// sequence Decode accepts for it.
func Encode(item Item) []byte {
	return AppendEncoded(nil, item)
}

// AppendEncoded appends the canonical encoding of the given item to buf
// and returns the extended buffer. It is the allocation-friendly variant
// of Encode for callers assembling larger buffers.
func AppendEncoded(buf []byte, item Item) []byte {
	switch value := item.(type) {
	case Bytes:
		// A single byte below 0x80 is its own encoding.
		if len(value) == 1 && value[0] < shortStringBase {
			return append(buf, value[0])
		}
		buf = appendHeader(buf, uint64(len(value)), false)
		return append(buf, value...)
	case List:
		var payload []byte
		for _, element := range value {
			payload = AppendEncoded(payload, element)
		}
		buf = appendHeader(buf, uint64(len(payload)), true)
		return append(buf, payload...)
	default:
		// The Item sum is closed; this is unreachable for values created
		// through this package's API.
		panic("rlp: unknown item type")
	}
}

// appendHeader appends the minimal header announcing a payload of the
// given length and kind. The single-byte self-encoding case is handled by
// the caller, since it depends on the payload content.
func appendHeader(buf []byte, length uint64, isList bool) []byte {
	base, longBase := byte(shortStringBase), byte(longStringBase)
	if isList {
		base, longBase = shortListBase, longListBase
	}
	if length <= maxShortPayload {
		return append(buf, base+byte(length))
	}
	buf = append(buf, longBase+byte(UintLength(length)))
	return AppendUint(buf, length)
}

// UintLength returns the number of bytes of the minimal big-endian
// representation of the given value, the form without leading zero bytes.
// The value zero needs no bytes at all and yields 0.
func UintLength(value uint64) int {
	length := 0
	for value > 0 {
		length++
		value >>= 8
	}
	return length
}

// AppendUint appends the minimal big-endian representation of the given
// value to buf and returns the extended buffer. Appending zero leaves the
// buffer unchanged, making the empty byte string the canonical encoding
// of the integer zero.
func AppendUint(buf []byte, value uint64) []byte {
	for shift := 8 * (UintLength(value) - 1); shift >= 0; shift -= 8 {
		buf = append(buf, byte(value>>shift))
	}
	return buf
}
