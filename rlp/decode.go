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

import "fmt"

// DefaultMaxDepth is the list nesting limit applied by Decode. It is far
// beyond any depth occurring in practice, while keeping the recursive
// decoder safe from stack exhaustion on adversarial inputs.
const DefaultMaxDepth = 1 << 16

// Decode parses exactly one item from the front of the given data and
// returns it together with the unconsumed remainder of the input. Whether
// trailing bytes are acceptable is up to the caller; DecodeComplete is the
// variant requiring the value to span the whole buffer.
//
// Decoding is strict: any input whose re-encoding would not reproduce the
// consumed bytes bit-for-bit is rejected with ErrNonCanonical. Byte string
// leaves of the result alias the input buffer; callers that mutate the
// input afterwards must copy.
func Decode(data []byte) (Item, []byte, error) {
	return DecodeDepthLimited(data, DefaultMaxDepth)
}

// DecodeDepthLimited behaves like Decode with a caller-chosen bound on
// list nesting. Inputs nesting deeper than maxDepth levels of lists are
// rejected with ErrNestingTooDeep.
func DecodeDepthLimited(data []byte, maxDepth int) (Item, []byte, error) {
	return decodeItem(data, maxDepth)
}

// DecodeComplete parses exactly one item covering the entire input.
// Trailing bytes after the item are reported as ErrTrailingBytes.
func DecodeComplete(data []byte) (Item, error) {
	item, rest, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: %d bytes after the value", ErrTrailingBytes, len(rest))
	}
	return item, nil
}

// DecodeBytes parses one item that is required to be a byte string and
// returns its payload together with the unconsumed remainder. A list at
// the front of the input is reported as ErrTypeMismatch.
func DecodeBytes(data []byte) ([]byte, []byte, error) {
	item, rest, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	value, ok := item.(Bytes)
	if !ok {
		return nil, nil, fmt.Errorf("%w: expected a byte string, found a list", ErrTypeMismatch)
	}
	return value, rest, nil
}

// DecodeList parses one item that is required to be a list and returns its
// elements together with the unconsumed remainder. A byte string at the
// front of the input is reported as ErrTypeMismatch.
func DecodeList(data []byte) (List, []byte, error) {
	item, rest, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}
	value, ok := item.(List)
	if !ok {
		return nil, nil, fmt.Errorf("%w: expected a list, found a byte string", ErrTypeMismatch)
	}
	return value, rest, nil
}

// header is the result of parsing the leading header bytes of an encoding:
// the announced payload length, the announced kind, and the number of
// bytes the header itself occupies. A single self-encoding byte parses as
// a header of size zero announcing a one-byte string payload.
type header struct {
	payloadLength uint64
	isList        bool
	size          int
}

func decodeItem(data []byte, depth int) (Item, []byte, error) {
	head, err := decodeHeader(data)
	if err != nil {
		return nil, nil, err
	}
	available := uint64(len(data) - head.size)
	if available < head.payloadLength {
		return nil, nil, fmt.Errorf("%w: payload of %d bytes announced, %d available",
			ErrInsufficientBytes, head.payloadLength, available)
	}
	payload := data[head.size : uint64(head.size)+head.payloadLength]
	rest := data[uint64(head.size)+head.payloadLength:]

	if !head.isList {
		return Bytes(payload), rest, nil
	}
	if depth <= 0 {
		return nil, nil, fmt.Errorf("%w: depth limit reached", ErrNestingTooDeep)
	}

	// The payload span is exactly the list's content. Elements are decoded
	// off its front until it is exhausted; an element announcing more bytes
	// than the span has left fails above, so decoding can never consume
	// bytes beyond the span boundary.
	items := List{}
	for len(payload) > 0 {
		var element Item
		element, payload, err = decodeItem(payload, depth-1)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, element)
	}
	return items, rest, nil
}

func decodeHeader(data []byte) (header, error) {
	if len(data) == 0 {
		return header{}, fmt.Errorf("%w: empty input", ErrInsufficientBytes)
	}
	first := data[0]
	switch {
	case first < shortStringBase:
		// The byte is its own payload.
		return header{payloadLength: 1, isList: false, size: 0}, nil

	case first <= longStringBase:
		length := uint64(first - shortStringBase)
		if length == 1 {
			if len(data) < 2 {
				return header{}, fmt.Errorf("%w: string header without payload", ErrInsufficientBytes)
			}
			if data[1] < shortStringBase {
				return header{}, fmt.Errorf("%w: single byte 0x%02x must encode itself", ErrNonCanonical, data[1])
			}
		}
		return header{payloadLength: length, isList: false, size: 1}, nil

	case first < shortListBase:
		return decodeLongHeader(data, first-longStringBase, false)

	case first <= longListBase:
		return header{payloadLength: uint64(first - shortListBase), isList: true, size: 1}, nil

	default:
		return decodeLongHeader(data, first-longListBase, true)
	}
}

// decodeLongHeader parses a long-form header whose first byte announces a
// length field of lengthSize bytes. Header ranges cap lengthSize at 8, so
// the length always fits a uint64.
func decodeLongHeader(data []byte, lengthSize byte, isList bool) (header, error) {
	if len(data) < 1+int(lengthSize) {
		return header{}, fmt.Errorf("%w: length field of %d bytes announced, %d available",
			ErrInsufficientBytes, lengthSize, len(data)-1)
	}
	if data[1] == 0 {
		return header{}, fmt.Errorf("%w: leading zero in length field", ErrNonCanonical)
	}
	var length uint64
	for _, b := range data[1 : 1+lengthSize] {
		length = length<<8 | uint64(b)
	}
	if length <= maxShortPayload {
		return header{}, fmt.Errorf("%w: long form used for a %d byte payload", ErrNonCanonical, length)
	}
	return header{payloadLength: length, isList: isList, size: 1 + int(lengthSize)}, nil
}
