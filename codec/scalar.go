// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package codec

import (
	"bytes"
	"fmt"
	"unicode/utf8"
	"unsafe"

	"github.com/0xsoniclabs/wire/rlp"
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

// Uint returns a codec mapping an unsigned integer type to its minimal
// big-endian byte representation. Zero maps to the empty byte string.
// The decoder rejects payloads with leading zero bytes as non-canonical
// and payloads exceeding the bit width of T as unsupported. Signed
// integer types are deliberately not supported by this package, as the
// format defines no sign convention.
func Uint[T constraints.Unsigned]() Codec[T] {
	return uintCodec[T]{}
}

type uintCodec[T constraints.Unsigned] struct{}

func (uintCodec[T]) Encode(value T) (rlp.Item, error) {
	return rlp.Bytes(rlp.AppendUint(nil, uint64(value))), nil
}

func (uintCodec[T]) Decode(item rlp.Item) (T, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return 0, err
	}
	return decodeUint[T](payload)
}

func decodeUint[T constraints.Unsigned](payload []byte) (T, error) {
	if len(payload) > 0 && payload[0] == 0 {
		return 0, fmt.Errorf("%w: leading zero in integer payload", rlp.ErrNonCanonical)
	}
	var zero T
	if size := int(unsafe.Sizeof(zero)); len(payload) > size {
		return 0, fmt.Errorf("%w: %d byte integer exceeds %d bits",
			rlp.ErrUnsupportedValue, len(payload), size*8)
	}
	var value uint64
	for _, b := range payload {
		value = value<<8 | uint64(b)
	}
	return T(value), nil
}

// Bool returns a codec mapping booleans to the integers zero and one,
// encoded like any other unsigned integer.
func Bool() Codec[bool] {
	return boolCodec{}
}

type boolCodec struct{}

func (boolCodec) Encode(value bool) (rlp.Item, error) {
	if value {
		return rlp.Bytes{1}, nil
	}
	return rlp.Bytes{}, nil
}

func (boolCodec) Decode(item rlp.Item) (bool, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return false, err
	}
	value, err := decodeUint[uint8](payload)
	if err != nil {
		return false, err
	}
	if value > 1 {
		return false, fmt.Errorf("%w: invalid boolean value %d", rlp.ErrUnsupportedValue, value)
	}
	return value == 1, nil
}

// Rune returns a codec mapping a character to its unsigned Unicode code
// point. Negative values and values beyond the Unicode range have no
// representation and are rejected.
func Rune() Codec[rune] {
	return runeCodec{}
}

type runeCodec struct{}

func (runeCodec) Encode(value rune) (rlp.Item, error) {
	if value < 0 || value > utf8.MaxRune {
		return nil, fmt.Errorf("%w: invalid code point %d", rlp.ErrUnsupportedValue, value)
	}
	return rlp.Bytes(rlp.AppendUint(nil, uint64(value))), nil
}

func (runeCodec) Decode(item rlp.Item) (rune, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return 0, err
	}
	value, err := decodeUint[uint32](payload)
	if err != nil {
		return 0, err
	}
	if value > utf8.MaxRune {
		return 0, fmt.Errorf("%w: invalid code point %d", rlp.ErrUnsupportedValue, value)
	}
	return rune(value), nil
}

// String returns a codec mapping a Go string to its raw bytes. No charset
// conversion is performed; the bytes are preserved as stored.
func String() Codec[string] {
	return stringCodec{}
}

type stringCodec struct{}

func (stringCodec) Encode(value string) (rlp.Item, error) {
	return rlp.Bytes(value), nil
}

func (stringCodec) Decode(item rlp.Item) (string, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// Bytes returns a codec mapping a byte slice to an opaque leaf. Decoded
// slices are copied out of the input buffer, so they remain valid after
// the buffer is reused.
func Bytes() Codec[[]byte] {
	return bytesCodec{}
}

type bytesCodec struct{}

func (bytesCodec) Encode(value []byte) (rlp.Item, error) {
	return rlp.Bytes(value), nil
}

func (bytesCodec) Decode(item rlp.Item) ([]byte, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(payload), nil
}

// FixedBytes returns a codec for byte slices of a fixed length, enforcing
// the length in both directions.
func FixedBytes(length int) Codec[[]byte] {
	return fixedBytesCodec{length}
}

type fixedBytesCodec struct {
	length int
}

func (c fixedBytesCodec) Encode(value []byte) (rlp.Item, error) {
	if len(value) != c.length {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rlp.ErrLengthMismatch, c.length, len(value))
	}
	return rlp.Bytes(value), nil
}

func (c fixedBytesCodec) Decode(item rlp.Item) ([]byte, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return nil, err
	}
	if len(payload) != c.length {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", rlp.ErrLengthMismatch, c.length, len(payload))
	}
	return bytes.Clone(payload), nil
}

// Uint256 returns a codec mapping a 256-bit integer to its minimal
// big-endian byte representation, the canonical form used for balances
// and similar quantities in this domain.
func Uint256() Codec[uint256.Int] {
	return uint256Codec{}
}

type uint256Codec struct{}

func (uint256Codec) Encode(value uint256.Int) (rlp.Item, error) {
	return rlp.Bytes(value.Bytes()), nil
}

func (uint256Codec) Decode(item rlp.Item) (uint256.Int, error) {
	payload, err := leafPayload(item)
	if err != nil {
		return uint256.Int{}, err
	}
	if len(payload) > 0 && payload[0] == 0 {
		return uint256.Int{}, fmt.Errorf("%w: leading zero in integer payload", rlp.ErrNonCanonical)
	}
	if len(payload) > 32 {
		return uint256.Int{}, fmt.Errorf("%w: %d byte integer exceeds 256 bits",
			rlp.ErrUnsupportedValue, len(payload))
	}
	var value uint256.Int
	value.SetBytes(payload)
	return value, nil
}
