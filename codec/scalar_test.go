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
	"testing"

	"github.com/0xsoniclabs/wire/rlp"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestUint_MarshalsToMinimalBigEndian(t *testing.T) {
	tests := map[string]struct {
		value   uint64
		encoded []byte
	}{
		"zero is the empty string": {0, []byte{0x80}},
		"small value self-encodes": {15, []byte{0x0f}},
		"byte boundary":            {0x80, []byte{0x81, 0x80}},
		"two byte value":           {1024, []byte{0x82, 0x04, 0x00}},
		"full width":               {0xffffffffffffffff, []byte{0x88, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			encoded, err := Marshal(Uint[uint64](), test.value)
			require.NoError(err)
			require.Equal(test.encoded, encoded)

			restored, err := Unmarshal(Uint[uint64](), encoded)
			require.NoError(err)
			require.Equal(test.value, restored)
		})
	}
}

func TestUint_DecodeEnforcesWidthAndCanonicality(t *testing.T) {
	require := require.New(t)

	// Works for every width up to the type's own.
	value, err := Uint[uint16]().Decode(rlp.Bytes{0x04, 0x00})
	require.NoError(err)
	require.Equal(uint16(1024), value)

	// A payload wider than the type has no representation in it.
	_, err = Uint[uint8]().Decode(rlp.Bytes{0x04, 0x00})
	require.ErrorIs(err, rlp.ErrUnsupportedValue)

	// Leading zeros would break canonical uniqueness.
	_, err = Uint[uint64]().Decode(rlp.Bytes{0x00, 0x01})
	require.ErrorIs(err, rlp.ErrNonCanonical)
	_, err = Uint[uint64]().Decode(rlp.Bytes{0x00})
	require.ErrorIs(err, rlp.ErrNonCanonical)

	// Integers are byte strings, never lists.
	_, err = Uint[uint64]().Decode(rlp.List{})
	require.ErrorIs(err, rlp.ErrTypeMismatch)
}

func TestBool_EncodesAsZeroOrOne(t *testing.T) {
	require := require.New(t)

	encoded, err := Marshal(Bool(), false)
	require.NoError(err)
	require.Equal([]byte{0x80}, encoded)

	encoded, err = Marshal(Bool(), true)
	require.NoError(err)
	require.Equal([]byte{0x01}, encoded)

	for _, value := range []bool{false, true} {
		encoded, err := Marshal(Bool(), value)
		require.NoError(err)
		restored, err := Unmarshal(Bool(), encoded)
		require.NoError(err)
		require.Equal(value, restored)
	}

	// An explicit zero byte is the non-canonical form of false.
	_, err = Bool().Decode(rlp.Bytes{0x00})
	require.ErrorIs(err, rlp.ErrNonCanonical)

	// Anything above one is not a boolean.
	_, err = Bool().Decode(rlp.Bytes{0x02})
	require.ErrorIs(err, rlp.ErrUnsupportedValue)
}

func TestRune_EncodesTheCodePoint(t *testing.T) {
	tests := map[string]struct {
		value   rune
		encoded []byte
	}{
		"ascii":         {'A', []byte{0x41}},
		"two bytes":     {'€', []byte{0x82, 0x20, 0xac}},
		"supplementary": {'𝄞', []byte{0x83, 0x01, 0xd1, 0x1e}},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			encoded, err := Marshal(Rune(), test.value)
			require.NoError(err)
			require.Equal(test.encoded, encoded)

			restored, err := Unmarshal(Rune(), encoded)
			require.NoError(err)
			require.Equal(test.value, restored)
		})
	}
}

func TestRune_RejectsValuesOutsideTheUnicodeRange(t *testing.T) {
	require := require.New(t)

	_, err := Rune().Encode(-1)
	require.ErrorIs(err, rlp.ErrUnsupportedValue)

	// 0x110000 is one beyond the last code point.
	_, err = Rune().Decode(rlp.Bytes{0x11, 0x00, 0x00})
	require.ErrorIs(err, rlp.ErrUnsupportedValue)
}

func TestString_PreservesRawBytes(t *testing.T) {
	require := require.New(t)
	for _, value := range []string{"", "dog", "héllo wörld", string([]byte{0xff, 0x00})} {
		encoded, err := Marshal(String(), value)
		require.NoError(err)
		restored, err := Unmarshal(String(), encoded)
		require.NoError(err)
		require.Equal(value, restored)
	}
}

func TestBytes_DecodedSlicesDoNotAliasTheInput(t *testing.T) {
	require := require.New(t)
	input := []byte{0x83, 'd', 'o', 'g'}
	restored, err := Unmarshal(Bytes(), input)
	require.NoError(err)
	input[1] = 'f'
	require.Equal([]byte("dog"), restored)
}

func TestFixedBytes_EnforcesTheLengthBothWays(t *testing.T) {
	require := require.New(t)
	hash := FixedBytes(4)

	encoded, err := Marshal(hash, []byte{1, 2, 3, 4})
	require.NoError(err)
	restored, err := Unmarshal(hash, encoded)
	require.NoError(err)
	require.Equal([]byte{1, 2, 3, 4}, restored)

	_, err = hash.Encode([]byte{1, 2, 3})
	require.ErrorIs(err, rlp.ErrLengthMismatch)

	_, err = hash.Decode(rlp.Bytes{1, 2, 3, 4, 5})
	require.ErrorIs(err, rlp.ErrLengthMismatch)
}

func TestUint256_MatchesTheGenericIntegerEncoding(t *testing.T) {
	require := require.New(t)

	for _, value := range []uint64{0, 1, 127, 128, 1024, 0xffffffffffffffff} {
		expected, err := Marshal(Uint[uint64](), value)
		require.NoError(err)
		actual, err := Marshal(Uint256(), *uint256.NewInt(value))
		require.NoError(err)
		require.Equal(expected, actual)
	}

	// A full 32-byte value survives the round trip.
	var big uint256.Int
	big.SetAllOne()
	encoded, err := Marshal(Uint256(), big)
	require.NoError(err)
	restored, err := Unmarshal(Uint256(), encoded)
	require.NoError(err)
	require.Equal(big, restored)

	_, err = Uint256().Decode(rlp.Bytes{0x00, 0x01})
	require.ErrorIs(err, rlp.ErrNonCanonical)

	tooWide := make(rlp.Bytes, 33)
	tooWide[0] = 1
	_, err = Uint256().Decode(tooWide)
	require.ErrorIs(err, rlp.ErrUnsupportedValue)
}

func TestUnmarshal_RejectsTrailingBytes(t *testing.T) {
	_, err := Unmarshal(Uint[uint64](), []byte{0x01, 0x02})
	require.ErrorIs(t, err, rlp.ErrTrailingBytes)
}
