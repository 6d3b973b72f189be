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
	"fmt"

	"github.com/0xsoniclabs/wire/rlp"
)

// Slice returns a codec mapping a slice to a list of its elements, each
// encoded with the given element codec. The list length is not fixed;
// use Struct for values with a statically known arity.
func Slice[T any](element Codec[T]) Codec[[]T] {
	return sliceCodec[T]{element}
}

type sliceCodec[T any] struct {
	element Codec[T]
}

func (c sliceCodec[T]) Encode(values []T) (rlp.Item, error) {
	items := make(rlp.List, len(values))
	for i, value := range values {
		item, err := c.element.Encode(value)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

func (c sliceCodec[T]) Decode(item rlp.Item) ([]T, error) {
	items, err := listItems(item)
	if err != nil {
		return nil, err
	}
	values := make([]T, len(items))
	for i, element := range items {
		value, err := c.element.Decode(element)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		values[i] = value
	}
	return values, nil
}

// Field binds one field of a structured value of type S to a per-field
// codec. Bindings are created with Bind and consumed by Struct.
type Field[S any] interface {
	encode(source *S) (rlp.Item, error)
	decode(item rlp.Item, target *S) error
}

// Bind creates a field binding from a codec for the field's type and a
// pair of accessors reading the field from and writing it back into the
// enclosing value.
func Bind[S, T any](codec Codec[T], get func(*S) T, set func(*S, T)) Field[S] {
	return &field[S, T]{codec: codec, get: get, set: set}
}

type field[S, T any] struct {
	codec Codec[T]
	get   func(*S) T
	set   func(*S, T)
}

func (f *field[S, T]) encode(source *S) (rlp.Item, error) {
	return f.codec.Encode(f.get(source))
}

func (f *field[S, T]) decode(item rlp.Item, target *S) error {
	value, err := f.codec.Decode(item)
	if err != nil {
		return err
	}
	f.set(target, value)
	return nil
}

// Struct returns a fixed-arity codec for a record-like value of type S.
// The value encodes as a list holding the bound fields in the given
// order. Decoding requires the list to contain exactly one element per
// field; any other element count fails with rlp.ErrLengthMismatch.
func Struct[S any](fields ...Field[S]) Codec[S] {
	return &structCodec[S]{fields}
}

type structCodec[S any] struct {
	fields []Field[S]
}

func (c *structCodec[S]) Encode(value S) (rlp.Item, error) {
	items := make(rlp.List, len(c.fields))
	for i, field := range c.fields {
		item, err := field.encode(&value)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		items[i] = item
	}
	return items, nil
}

func (c *structCodec[S]) Decode(item rlp.Item) (S, error) {
	var value S
	items, err := listItems(item)
	if err != nil {
		return value, err
	}
	if len(items) != len(c.fields) {
		return value, fmt.Errorf("%w: expected %d fields, got %d",
			rlp.ErrLengthMismatch, len(c.fields), len(items))
	}
	for i, field := range c.fields {
		if err := field.decode(items[i], &value); err != nil {
			return value, fmt.Errorf("field %d: %w", i, err)
		}
	}
	return value, nil
}
